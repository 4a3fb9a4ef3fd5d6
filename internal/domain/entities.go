package domain

import (
	"fmt"
	"strings"
)

// MediaType distinguishes catalog content types. The string value is the
// path segment the catalog uses ("movie" or "tv").
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// Valid reports whether t is one of the known media types
func (t MediaType) Valid() bool {
	return t == MediaTypeMovie || t == MediaTypeTV
}

// Label returns the human label used in lists ("Movie" or "TV Show")
func (t MediaType) Label() string {
	if t == MediaTypeTV {
		return "TV Show"
	}
	return "Movie"
}

// MediaSummary is a single list entry as returned by list, search and
// discover endpoints.
type MediaSummary struct {
	ID           int
	Title        string // title for movies, name for shows
	Type         MediaType
	PosterPath   string
	BackdropPath string
	Popularity   float64
	Overview     string
	ReleaseDate  string // release_date or first_air_date, YYYY-MM-DD
	VoteAverage  float64
	GenreIDs     []int
}

// Year returns the four-digit year of the release date, or "" when unknown
func (m MediaSummary) Year() string {
	return yearOf(m.ReleaseDate)
}

// Key identifies an entry across media types
func (m MediaSummary) Key() MediaKey {
	return MediaKey{ID: m.ID, Type: m.Type}
}

// MediaKey is the (id, type) pair that uniquely names a catalog entry
type MediaKey struct {
	ID   int
	Type MediaType
}

// IsZero reports whether the key refers to nothing
func (k MediaKey) IsZero() bool {
	return k.ID == 0
}

// Genre is a catalog genre
type Genre struct {
	ID   int
	Name string
}

// CastMember is a credited actor
type CastMember struct {
	Name      string
	Character string
}

// Season describes one season of a show as listed on the show details
type Season struct {
	Number       int
	Name         string
	EpisodeCount int
}

// Valid reports whether the season can be offered for selection.
// Specials (season 0) and empty seasons are excluded.
func (s Season) Valid() bool {
	return s.Number > 0 && s.EpisodeCount > 0
}

// DisplayName returns the season name, falling back to "Season N"
func (s Season) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("Season %d", s.Number)
}

// Episode is a single episode of a season
type Episode struct {
	Number    int
	Name      string
	Overview  string
	StillPath string
}

// MediaDetails is the full record fetched when a details view opens
type MediaDetails struct {
	MediaSummary
	Genres       []Genre
	Cast         []CastMember
	Runtime      int // minutes, movies only
	SeasonCount  int // tv only
	EpisodeCount int // tv only
	Seasons      []Season
}

// FormattedRuntime returns the runtime as "Xh Ym", or "" when unknown
func (d MediaDetails) FormattedRuntime() string {
	if d.Runtime <= 0 {
		return ""
	}
	return fmt.Sprintf("%dh %dm", d.Runtime/60, d.Runtime%60)
}

// FormattedSeasons returns "N Season" or "N Seasons"
func (d MediaDetails) FormattedSeasons() string {
	if d.SeasonCount == 1 {
		return "1 Season"
	}
	return fmt.Sprintf("%d Seasons", d.SeasonCount)
}

// GenreNames joins genre names with ", "
func (d MediaDetails) GenreNames() string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

// TopCast returns the names of the first n cast members
func (d MediaDetails) TopCast(n int) []string {
	if n > len(d.Cast) {
		n = len(d.Cast)
	}
	names := make([]string, 0, n)
	for _, c := range d.Cast[:n] {
		names = append(names, c.Name)
	}
	return names
}

// ValidSeasons returns the seasons that can be selected, in catalog order
func (d MediaDetails) ValidSeasons() []Season {
	var out []Season
	for _, s := range d.Seasons {
		if s.Valid() {
			out = append(out, s)
		}
	}
	return out
}

// RegionRating is one region's certification entry
type RegionRating struct {
	Region        string // ISO 3166-1 code
	Certification string
}

func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	year, _, _ := strings.Cut(date, "-")
	return year
}
