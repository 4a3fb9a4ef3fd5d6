package tmdb

import (
	"github.com/mmcdole/flixhub/internal/domain"
)

// MapResults converts list results to domain summaries. fallback is used
// when an entry carries no media_type, which is the case for every
// endpoint but /trending/all and multi-search.
func MapResults(results []Result, fallback domain.MediaType) []domain.MediaSummary {
	items := make([]domain.MediaSummary, 0, len(results))
	for _, r := range results {
		items = append(items, mapResult(r, fallback))
	}
	return items
}

func mapResult(r Result, fallback domain.MediaType) domain.MediaSummary {
	mediaType := domain.MediaType(r.MediaType)
	if !mediaType.Valid() {
		mediaType = fallback
	}

	title := r.Title
	if title == "" {
		title = r.Name
	}

	date := r.ReleaseDate
	if date == "" {
		date = r.FirstAirDate
	}

	return domain.MediaSummary{
		ID:           r.ID,
		Title:        title,
		Type:         mediaType,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		Popularity:   r.Popularity,
		Overview:     r.Overview,
		ReleaseDate:  date,
		VoteAverage:  r.VoteAverage,
		GenreIDs:     r.GenreIDs,
	}
}

// MapDetails converts a details response to domain details
func MapDetails(d Details, mediaType domain.MediaType) *domain.MediaDetails {
	details := &domain.MediaDetails{
		MediaSummary: mapResult(d.Result, mediaType),
		Genres:       MapGenres(d.Genres),
		Runtime:      d.Runtime,
		SeasonCount:  d.NumberOfSeasons,
		EpisodeCount: d.NumberOfEpisodes,
	}
	details.Type = mediaType

	if d.Credits != nil {
		details.Cast = make([]domain.CastMember, 0, len(d.Credits.Cast))
		for _, c := range d.Credits.Cast {
			details.Cast = append(details.Cast, domain.CastMember{Name: c.Name, Character: c.Character})
		}
	}

	for _, s := range d.Seasons {
		details.Seasons = append(details.Seasons, domain.Season{
			Number:       s.SeasonNumber,
			Name:         s.Name,
			EpisodeCount: s.EpisodeCount,
		})
	}

	return details
}

// MapGenres converts genre DTOs
func MapGenres(genres []GenreDTO) []domain.Genre {
	out := make([]domain.Genre, 0, len(genres))
	for _, g := range genres {
		out = append(out, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return out
}

// MapEpisodes converts season episodes
func MapEpisodes(episodes []EpisodeDTO) []domain.Episode {
	out := make([]domain.Episode, 0, len(episodes))
	for _, e := range episodes {
		out = append(out, domain.Episode{
			Number:    e.EpisodeNumber,
			Name:      e.Name,
			Overview:  e.Overview,
			StillPath: e.StillPath,
		})
	}
	return out
}

// MapReleaseDates flattens movie release dates to one certification per
// region, taken from the region's first release date.
func MapReleaseDates(r ReleaseDates) []domain.RegionRating {
	out := make([]domain.RegionRating, 0, len(r.Results))
	for _, region := range r.Results {
		cert := ""
		if len(region.ReleaseDates) > 0 {
			cert = region.ReleaseDates[0].Certification
		}
		out = append(out, domain.RegionRating{Region: region.ISO31661, Certification: cert})
	}
	return out
}

// MapContentRatings converts tv content ratings
func MapContentRatings(r ContentRatings) []domain.RegionRating {
	out := make([]domain.RegionRating, 0, len(r.Results))
	for _, region := range r.Results {
		out = append(out, domain.RegionRating{Region: region.ISO31661, Certification: region.Rating})
	}
	return out
}
