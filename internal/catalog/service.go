package catalog

import (
	"context"
	"log/slog"
	"net/url"
	"sort"

	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/sourcegraph/conc"
)

const (
	// SimilarLimit caps the similar-media list
	SimilarLimit = 6

	// NotRated is returned when no certification is known
	NotRated = "NR"

	// PreferredRegion is the region whose certification wins
	PreferredRegion = "US"
)

// GenreMaps holds the genre lists of both media types
type GenreMaps struct {
	Movie []domain.Genre
	TV    []domain.Genre
}

// For returns the genre list of a media type
func (g GenreMaps) For(t domain.MediaType) []domain.Genre {
	if t == domain.MediaTypeTV {
		return g.TV
	}
	return g.Movie
}

// Service exposes catalog reads that never fail outward: every error is
// logged and converted into an empty list, a nil details value, or "NR".
type Service struct {
	repo   domain.CatalogRepository
	logger *slog.Logger
}

// NewService creates a new catalog service
func NewService(repo domain.CatalogRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: logger.With("component", "catalog"),
	}
}

// FetchList fetches any list endpoint
func (s *Service) FetchList(ctx context.Context, endpoint string, params url.Values) []domain.MediaSummary {
	items, err := s.repo.List(ctx, endpoint, params)
	if err != nil {
		s.logger.Error("error fetching media", "endpoint", endpoint, "error", err)
		return nil
	}
	return items
}

// FetchDetails fetches full details, or nil when absent or failed
func (s *Service) FetchDetails(ctx context.Context, id int, mediaType domain.MediaType) *domain.MediaDetails {
	details, err := s.repo.Details(ctx, domain.MediaKey{ID: id, Type: mediaType})
	if err != nil {
		s.logger.Error("error fetching media details", "id", id, "type", mediaType, "error", err)
		return nil
	}
	return details
}

// FetchSimilar fetches up to SimilarLimit similar titles
func (s *Service) FetchSimilar(ctx context.Context, id int, mediaType domain.MediaType) []domain.MediaSummary {
	items, err := s.repo.Similar(ctx, domain.MediaKey{ID: id, Type: mediaType})
	if err != nil {
		s.logger.Error("error fetching similar media", "id", id, "type", mediaType, "error", err)
		return nil
	}
	if len(items) > SimilarLimit {
		items = items[:SimilarLimit]
	}
	return items
}

// FetchEpisodes fetches the episodes of one season
func (s *Service) FetchEpisodes(ctx context.Context, showID, season int) []domain.Episode {
	episodes, err := s.repo.SeasonEpisodes(ctx, showID, season)
	if err != nil {
		s.logger.Error("error fetching episodes", "show", showID, "season", season, "error", err)
		return nil
	}
	return episodes
}

// FetchContentRating returns the US certification, else the first
// region's, else NotRated.
func (s *Service) FetchContentRating(ctx context.Context, id int, mediaType domain.MediaType) string {
	ratings, err := s.repo.ContentRatings(ctx, domain.MediaKey{ID: id, Type: mediaType})
	if err != nil {
		s.logger.Error("error fetching content rating", "id", id, "type", mediaType, "error", err)
		return NotRated
	}
	return PickRating(ratings)
}

// PickRating selects the certification to display from a region list
func PickRating(ratings []domain.RegionRating) string {
	if len(ratings) == 0 {
		return NotRated
	}
	chosen := ratings[0]
	for _, r := range ratings {
		if r.Region == PreferredRegion {
			chosen = r
			break
		}
	}
	if chosen.Certification == "" {
		return NotRated
	}
	return chosen.Certification
}

// Search queries movies and shows concurrently and merges them, movies
// first, sorted by popularity descending. Ties keep merge order.
// If either search fails the whole result is empty.
func (s *Service) Search(ctx context.Context, query string) []domain.MediaSummary {
	var (
		wg              conc.WaitGroup
		movies, shows   []domain.MediaSummary
		movieErr, tvErr error
	)
	wg.Go(func() {
		movies, movieErr = s.repo.SearchType(ctx, domain.MediaTypeMovie, query)
	})
	wg.Go(func() {
		shows, tvErr = s.repo.SearchType(ctx, domain.MediaTypeTV, query)
	})
	wg.Wait()

	if movieErr != nil || tvErr != nil {
		s.logger.Error("error performing search", "query", query, "movieError", movieErr, "tvError", tvErr)
		return nil
	}

	results := make([]domain.MediaSummary, 0, len(movies)+len(shows))
	results = append(results, movies...)
	results = append(results, shows...)
	SortByPopularity(results)
	return results
}

// SortByPopularity stable-sorts items by popularity, highest first
func SortByPopularity(items []domain.MediaSummary) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Popularity > items[j].Popularity
	})
}

// Discover runs an advanced search for one page
func (s *Service) Discover(ctx context.Context, filter domain.DiscoverFilter, page int) []domain.MediaSummary {
	if page < 1 {
		page = 1
	}
	items, err := s.repo.List(ctx, filter.Endpoint(), filter.Query(page))
	if err != nil {
		s.logger.Error("error performing advanced search", "filter", filter, "page", page, "error", err)
		return nil
	}
	for i := range items {
		items[i].Type = filter.MediaType
	}
	return items
}

// Genres fetches both genre maps concurrently. A failed side is left empty.
func (s *Service) Genres(ctx context.Context) GenreMaps {
	var (
		wg   conc.WaitGroup
		maps GenreMaps
	)
	wg.Go(func() {
		genres, err := s.repo.Genres(ctx, domain.MediaTypeMovie)
		if err != nil {
			s.logger.Error("error fetching genres", "type", domain.MediaTypeMovie, "error", err)
			return
		}
		maps.Movie = genres
	})
	wg.Go(func() {
		genres, err := s.repo.Genres(ctx, domain.MediaTypeTV)
		if err != nil {
			s.logger.Error("error fetching genres", "type", domain.MediaTypeTV, "error", err)
			return
		}
		maps.TV = genres
	})
	wg.Wait()
	return maps
}
