package view

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/session"
)

// Row keys and titles of the paginated rows
const (
	MoreRowKey      = "more-to-explore"
	MoreRowTitle    = "More to Explore"
	ResultsRowKey   = "search-results"
	ResultsRowTitle = "Search Results"
)

// MoreEndpoint is the list that feeds "More to Explore" for a media type
func MoreEndpoint(t domain.MediaType) string {
	if t == domain.MediaTypeTV {
		return "/trending/tv/week"
	}
	return "/movie/popular"
}

// FetchMore fetches the given page for the paginated row: the active
// advanced search when there is one, otherwise the media type's list.
func (r *Renderer) FetchMore(ctx context.Context, t domain.MediaType, advanced *domain.DiscoverFilter, page int) []domain.MediaSummary {
	if advanced != nil {
		return r.catalog.Discover(ctx, *advanced, page)
	}
	items := r.catalog.FetchList(ctx, MoreEndpoint(t), url.Values{"page": {strconv.Itoa(page)}})
	for i := range items {
		if items[i].Type == "" {
			items[i].Type = t
		}
	}
	return items
}

// RenderMore appends a fetched page to the paginated row. The page cursor
// advances only when at least one new card was added.
func (r *Renderer) RenderMore(state *session.State, items []domain.MediaSummary, key string, t domain.MediaType) Row {
	row := r.RenderRow(state, items, key, t, false)
	if !row.Empty() {
		state.Page++
	}
	return row
}

// RenderResults renders the first page of an advanced search. It replaces
// the results row and advances the page cursor like any other page.
func (r *Renderer) RenderResults(state *session.State, items []domain.MediaSummary, t domain.MediaType) Row {
	row := r.RenderRow(state, items, ResultsRowKey, t, true)
	row.Title = ResultsRowTitle
	if !row.Empty() {
		state.Page++
	}
	return row
}
