package domain

import (
	"context"
	"net/url"
)

// CatalogRepository: network operations against the media catalog
// (implemented by the tmdb client). Methods return errors; callers decide
// how failures surface.
type CatalogRepository interface {
	List(ctx context.Context, endpoint string, params url.Values) ([]MediaSummary, error)
	Details(ctx context.Context, key MediaKey) (*MediaDetails, error)
	Similar(ctx context.Context, key MediaKey) ([]MediaSummary, error)
	SeasonEpisodes(ctx context.Context, showID, season int) ([]Episode, error)
	ContentRatings(ctx context.Context, key MediaKey) ([]RegionRating, error)
	SearchType(ctx context.Context, mediaType MediaType, query string) ([]MediaSummary, error)
	Genres(ctx context.Context, mediaType MediaType) ([]Genre, error)
}

// Summarizer shortens a synopsis
type Summarizer interface {
	Summarize(ctx context.Context, instruction, text string) (string, error)
}

// URLLauncher opens a URL outside the terminal
type URLLauncher interface {
	Launch(url string) error
}
