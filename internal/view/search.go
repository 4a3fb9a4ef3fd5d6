package view

import (
	"context"

	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/tmdb"
)

// SearchLimit caps the quick search results
const SearchLimit = 10

// SearchResult is one line of the quick search list
type SearchResult struct {
	Media    domain.MediaSummary
	ThumbURL string
	Label    string // "Movie" or "TV Show"
	Year     string
}

// RenderSearchResults runs a merged search and keeps the top results
func (r *Renderer) RenderSearchResults(ctx context.Context, query string) []SearchResult {
	items := r.catalog.Search(ctx, query)
	if len(items) > SearchLimit {
		items = items[:SearchLimit]
	}
	results := make([]SearchResult, 0, len(items))
	for _, item := range items {
		results = append(results, SearchResult{
			Media:    item,
			ThumbURL: r.images.URL(tmdb.SizeThumb, item.PosterPath),
			Label:    item.Type.Label(),
			Year:     item.Year(),
		})
	}
	return results
}
