package tui

import (
	"github.com/mmcdole/flixhub/internal/catalog"
	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/session"
	"github.com/mmcdole/flixhub/internal/view"
)

// Message types for the TUI. Every load message carries the token it was
// issued with; Update drops it when the token is no longer current.

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// GenresLoadedMsg signals that the genre maps have been loaded
type GenresLoadedMsg struct {
	Genres catalog.GenreMaps
}

// HeroLoadedMsg carries the featured title. Hero is nil when no
// candidate was found.
type HeroLoadedMsg struct {
	Token session.Token
	Hero  *view.Hero
}

// RowsLoadedMsg carries the category rows of a view
type RowsLoadedMsg struct {
	Token session.Token
	Data  []view.RowData
}

// MoreLoadedMsg carries the next page for the load-more row
type MoreLoadedMsg struct {
	Token     session.Token
	Items     []domain.MediaSummary
	MediaType domain.MediaType
}

// ResultsLoadedMsg carries the first page of an advanced search
type ResultsLoadedMsg struct {
	Token     session.Token
	Items     []domain.MediaSummary
	MediaType domain.MediaType
}

// SearchResultsMsg signals that search box results are ready
type SearchResultsMsg struct {
	Token   session.Token
	Query   string
	Results []view.SearchResult
}

// DetailsLoadedMsg carries a details view. Detail is nil when the
// details could not be fetched.
type DetailsLoadedMsg struct {
	Token  session.Token
	Key    domain.MediaKey
	Detail *view.DetailView
}

// SeasonLoadedMsg carries a details view pointed at another season
type SeasonLoadedMsg struct {
	Token  session.Token
	Detail view.DetailView
}

// PlaybackStartedMsg signals that the embed URL was opened
type PlaybackStartedMsg struct {
	Target domain.PlayTarget
	URL    string
}

// PlaybackFailedMsg signals that the embed URL could not be opened
type PlaybackFailedMsg struct {
	Target domain.PlayTarget
	Err    error
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
