package view

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/session"
	"github.com/sourcegraph/conc/iter"
)

// Home section titles
const (
	SectionMovies = "Movies"
	SectionTV     = "TV Shows"
)

// RowSpec describes where a category row's items come from
type RowSpec struct {
	Key      string
	Title    string
	Section  string
	Type     domain.MediaType
	Endpoint string
	Params   url.Values
}

// RowData is a fetched, truncated row ready to render
type RowData struct {
	Spec  RowSpec
	Items []domain.MediaSummary
}

type category struct {
	title    string
	endpoint string // empty means discover
	genres   string
	recent   bool
}

func categoriesFor(t domain.MediaType) []category {
	noun := "Movies"
	action, scifi := "28", "878"
	if t == domain.MediaTypeTV {
		noun = "Shows"
		action, scifi = "10759", "10765"
	}
	prefix := "/" + string(t)
	return []category{
		{title: "Trending " + noun, endpoint: "/trending/" + string(t) + "/week"},
		{title: "Popular", endpoint: prefix + "/popular"},
		{title: "Top Rated " + noun, endpoint: prefix + "/top_rated"},
		{title: "Action & Adventure", genres: action},
		{title: "Comedy", genres: "35"},
		{title: "Drama", genres: "18"},
		{title: "Sci-Fi & Fantasy", genres: scifi},
		{title: "Recently Added", recent: true},
	}
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// RowKey derives the stable key of a category row
func RowKey(t domain.MediaType, title string) string {
	return string(t) + "-" + strings.ToLower(nonAlnum.ReplaceAllString(title, "-"))
}

// CategoryRows returns the eight category rows of a media type view
func (r *Renderer) CategoryRows(t domain.MediaType) []RowSpec {
	section := SectionMovies
	dateField := "primary_release_date.gte"
	if t == domain.MediaTypeTV {
		section = SectionTV
		dateField = "first_air_date.gte"
	}

	cats := categoriesFor(t)
	specs := make([]RowSpec, 0, len(cats))
	for _, c := range cats {
		params := url.Values{"sort_by": {domain.SortPopularityDesc}}
		endpoint := c.endpoint
		if endpoint == "" {
			endpoint = "/discover/" + string(t)
		}
		if c.genres != "" {
			params.Set("with_genres", c.genres)
		}
		if c.recent {
			params.Set(dateField, r.now().AddDate(-1, 0, 0).Format("2006-01-02"))
		}
		specs = append(specs, RowSpec{
			Key:      RowKey(t, c.title),
			Title:    c.title,
			Section:  section,
			Type:     t,
			Endpoint: endpoint,
			Params:   params,
		})
	}
	return specs
}

// HomeRows returns the dual-section home layout: trending, popular and top
// rated movies, then the same three for shows.
func (r *Renderer) HomeRows() []RowSpec {
	movies := r.CategoryRows(domain.MediaTypeMovie)[:3]
	shows := r.CategoryRows(domain.MediaTypeTV)[:3]
	return append(append([]RowSpec{}, movies...), shows...)
}

// FetchRows fetches every spec concurrently, keeping spec order and at
// most the row limit of items per row.
func (r *Renderer) FetchRows(ctx context.Context, specs []RowSpec) []RowData {
	return iter.Map(specs, func(spec *RowSpec) RowData {
		items := r.catalog.FetchList(ctx, spec.Endpoint, spec.Params)
		if len(items) > r.rowLimit {
			items = items[:r.rowLimit]
		}
		for i := range items {
			if items[i].Type == "" {
				items[i].Type = spec.Type
			}
		}
		return RowData{Spec: *spec, Items: items}
	})
}

// RenderRows renders fetched rows in order, each with clear set. Rows
// left without cards are omitted.
func (r *Renderer) RenderRows(state *session.State, data []RowData) []Row {
	rows := make([]Row, 0, len(data))
	for _, d := range data {
		row := r.RenderRow(state, d.Items, d.Spec.Key, d.Spec.Type, true)
		if row.Empty() {
			continue
		}
		row.Title = d.Spec.Title
		rows = append(rows, row)
	}
	return rows
}
