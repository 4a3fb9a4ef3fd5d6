package domain

import (
	"net/url"
	"strconv"
)

// Sort orders accepted by the discover endpoint
const (
	SortPopularityDesc = "popularity.desc"
	SortRatingDesc     = "vote_average.desc"
	SortNewestFirst    = "newest"
	SortOldestFirst    = "oldest"
)

// DiscoverFilter holds advanced search criteria. Zero-valued fields are
// omitted from the query rather than defaulted.
type DiscoverFilter struct {
	MediaType MediaType
	GenreID   int
	MinRating float64
	Country   string // ISO 3166-1 origin country
	YearFrom  int
	YearTo    int
	SortBy    string
}

// Query builds the discover query parameters for the given page
func (f DiscoverFilter) Query(page int) url.Values {
	q := url.Values{}
	q.Set("include_adult", "false")
	q.Set("page", strconv.Itoa(page))

	if f.GenreID > 0 {
		q.Set("with_genres", strconv.Itoa(f.GenreID))
	}
	if f.MinRating > 0 {
		q.Set("vote_average.gte", strconv.FormatFloat(f.MinRating, 'f', -1, 64))
	}
	if f.Country != "" {
		q.Set("with_origin_country", f.Country)
	}

	dateField := "first_air_date"
	if f.MediaType == MediaTypeMovie {
		dateField = "primary_release_date"
	}
	if f.YearFrom > 0 {
		q.Set(dateField+".gte", strconv.Itoa(f.YearFrom)+"-01-01")
	}
	if f.YearTo > 0 {
		q.Set(dateField+".lte", strconv.Itoa(f.YearTo)+"-12-31")
	}

	switch f.SortBy {
	case "":
	case SortNewestFirst:
		q.Set("sort_by", dateField+".desc")
	case SortOldestFirst:
		q.Set("sort_by", dateField+".asc")
	default:
		q.Set("sort_by", f.SortBy)
	}

	return q
}

// Endpoint returns the discover path for the filter's media type
func (f DiscoverFilter) Endpoint() string {
	if f.MediaType == MediaTypeMovie {
		return "/discover/movie"
	}
	return "/discover/tv"
}
