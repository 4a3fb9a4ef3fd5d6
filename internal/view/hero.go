package view

import (
	"context"
	"errors"
	"math"
	"unicode/utf8"

	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/summarize"
	"github.com/mmcdole/flixhub/internal/tmdb"
	"github.com/sourcegraph/conc/iter"
)

const (
	// SummarizeThreshold is the synopsis length above which the
	// summarizer is asked for a shorter version
	SummarizeThreshold = 220

	// popularityPerSlot is how much popularity buys one hero slot
	popularityPerSlot = 20
)

// Hero is the featured banner on the home view
type Hero struct {
	Media       domain.MediaSummary
	BackdropURL string
	Overview    string
}

type heroSource struct {
	endpoint  string
	mediaType domain.MediaType
}

var heroSources = []heroSource{
	{"/trending/movie/week", domain.MediaTypeMovie},
	{"/trending/tv/week", domain.MediaTypeTV},
	{"/movie/top_rated", domain.MediaTypeMovie},
	{"/tv/top_rated", domain.MediaTypeTV},
	{"/movie/popular", domain.MediaTypeMovie},
	{"/tv/popular", domain.MediaTypeTV},
}

// HeroSlots returns the weight of a candidate: one slot per 20 points of
// popularity, rounded up, and never less than one.
func HeroSlots(popularity float64) int {
	return int(math.Ceil(math.Max(popularity, 1) / popularityPerSlot))
}

// HeroPool fetches the six hero lists concurrently and returns the
// de-duplicated candidates that have a backdrop.
func (r *Renderer) HeroPool(ctx context.Context) []domain.MediaSummary {
	lists := iter.Map(heroSources, func(src *heroSource) []domain.MediaSummary {
		items := r.catalog.FetchList(ctx, src.endpoint, nil)
		for i := range items {
			items[i].Type = src.mediaType
		}
		return items
	})

	seen := make(map[domain.MediaKey]struct{})
	var pool []domain.MediaSummary
	for _, items := range lists {
		for _, item := range items {
			if item.BackdropPath == "" {
				continue
			}
			if _, dup := seen[item.Key()]; dup {
				continue
			}
			seen[item.Key()] = struct{}{}
			pool = append(pool, item)
		}
	}
	return pool
}

// PickHero draws one slot uniformly across the weighted pool
func (r *Renderer) PickHero(pool []domain.MediaSummary) (domain.MediaSummary, bool) {
	if len(pool) == 0 {
		return domain.MediaSummary{}, false
	}
	total := 0
	for _, item := range pool {
		total += HeroSlots(item.Popularity)
	}
	n := r.intn(total)
	for _, item := range pool {
		n -= HeroSlots(item.Popularity)
		if n < 0 {
			return item, true
		}
	}
	return pool[len(pool)-1], true
}

// RenderHero picks a featured title and prepares its banner. It returns
// nil when no candidate has a backdrop.
func (r *Renderer) RenderHero(ctx context.Context) *Hero {
	featured, ok := r.PickHero(r.HeroPool(ctx))
	if !ok {
		r.logger.Warn("no hero candidates with a backdrop")
		return nil
	}

	overview := featured.Overview
	if details := r.catalog.FetchDetails(ctx, featured.ID, featured.Type); details != nil && details.Overview != "" {
		overview = details.Overview
	}

	return &Hero{
		Media:       featured,
		BackdropURL: r.images.URL(tmdb.SizeOriginal, featured.BackdropPath),
		Overview:    r.Synopsis(ctx, overview),
	}
}

// Synopsis returns text, shortened by the summarizer when it is longer
// than SummarizeThreshold characters. Failures fall back to text.
func (r *Renderer) Synopsis(ctx context.Context, text string) string {
	if r.summarizer == nil || utf8.RuneCountInString(text) <= SummarizeThreshold {
		return text
	}
	short, err := r.summarizer.Summarize(ctx, summarize.Instruction, text)
	if err != nil {
		if !errors.Is(err, domain.ErrSummarizerDisabled) {
			r.logger.Error("error summarizing synopsis", "error", err)
		}
		return text
	}
	return short
}
