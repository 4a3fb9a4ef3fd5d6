package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/session"
	"github.com/mmcdole/flixhub/internal/view"
)

// Command factories for async operations. Each runs off the update loop
// and reports back with a message; none of them touch session state.

const (
	listTimeout    = 30 * time.Second
	detailsTimeout = 45 * time.Second // similar, rating and episodes fan out
)

// LoadGenresCmd loads both genre maps for the discover form
func LoadGenresCmd(r *view.Renderer) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		defer cancel()
		return GenresLoadedMsg{Genres: r.Catalog().Genres(ctx)}
	}
}

// LoadHeroCmd picks and renders the featured title
func LoadHeroCmd(r *view.Renderer, tok session.Token) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), detailsTimeout)
		defer cancel()
		return HeroLoadedMsg{Token: tok, Hero: r.RenderHero(ctx)}
	}
}

// LoadRowsCmd fetches a set of category rows
func LoadRowsCmd(r *view.Renderer, tok session.Token, specs []view.RowSpec) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		defer cancel()
		return RowsLoadedMsg{Token: tok, Data: r.FetchRows(ctx, specs)}
	}
}

// LoadMoreCmd fetches one page for the load-more row. A non-nil filter
// pages through the advanced search instead.
func LoadMoreCmd(r *view.Renderer, tok session.Token, t domain.MediaType, filter *domain.DiscoverFilter, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		defer cancel()
		return MoreLoadedMsg{Token: tok, Items: r.FetchMore(ctx, t, filter, page), MediaType: t}
	}
}

// LoadResultsCmd fetches the first page of an advanced search
func LoadResultsCmd(r *view.Renderer, tok session.Token, filter domain.DiscoverFilter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		defer cancel()
		items := r.FetchMore(ctx, filter.MediaType, &filter, 1)
		return ResultsLoadedMsg{Token: tok, Items: items, MediaType: filter.MediaType}
	}
}

// SearchCmd runs a search box query
func SearchCmd(r *view.Renderer, tok session.Token, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		defer cancel()
		return SearchResultsMsg{Token: tok, Query: query, Results: r.RenderSearchResults(ctx, query)}
	}
}

// LoadDetailsCmd loads the details view of a title
func LoadDetailsCmd(r *view.Renderer, tok session.Token, key domain.MediaKey) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), detailsTimeout)
		defer cancel()
		return DetailsLoadedMsg{Token: tok, Key: key, Detail: r.LoadDetailView(ctx, key)}
	}
}

// SelectSeasonCmd loads the episodes of season n
func SelectSeasonCmd(r *view.Renderer, tok session.Token, detail view.DetailView, n int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		defer cancel()
		return SeasonLoadedMsg{Token: tok, Detail: r.SelectSeason(ctx, detail, n)}
	}
}

// PlayCmd opens the embed player for target
func PlayCmd(p Player, target domain.PlayTarget) tea.Cmd {
	return func() tea.Msg {
		url, err := p.Play(target)
		if err != nil {
			return PlaybackFailedMsg{Target: target, Err: err}
		}
		return PlaybackStartedMsg{Target: target, URL: url}
	}
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
