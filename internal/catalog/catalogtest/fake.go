// Package catalogtest provides an in-memory domain.CatalogRepository for tests.
package catalogtest

import (
	"context"
	"net/url"
	"sync"

	"github.com/mmcdole/flixhub/internal/domain"
)

// ListCall records one List invocation
type ListCall struct {
	Endpoint string
	Params   url.Values
}

// EpisodeKey identifies a (show, season) pair
type EpisodeKey struct {
	ShowID int
	Season int
}

// Repo is a canned-response catalog. Fail, when set, names methods that
// return Err instead of data ("List", "Details", "Similar", "SeasonEpisodes",
// "ContentRatings", "SearchType", "Genres").
type Repo struct {
	mu sync.Mutex

	Lists        map[string][]domain.MediaSummary
	DetailsByKey map[domain.MediaKey]*domain.MediaDetails
	SimilarByKey map[domain.MediaKey][]domain.MediaSummary
	Episodes     map[EpisodeKey][]domain.Episode
	Ratings      map[domain.MediaKey][]domain.RegionRating
	Searches     map[domain.MediaType][]domain.MediaSummary
	GenreSet     map[domain.MediaType][]domain.Genre

	Fail map[string]bool
	Err  error

	ListCalls    []ListCall
	EpisodeCalls []EpisodeKey
	calls        map[string]int
}

// New returns an empty repo
func New() *Repo {
	return &Repo{
		Lists:        map[string][]domain.MediaSummary{},
		DetailsByKey: map[domain.MediaKey]*domain.MediaDetails{},
		SimilarByKey: map[domain.MediaKey][]domain.MediaSummary{},
		Episodes:     map[EpisodeKey][]domain.Episode{},
		Ratings:      map[domain.MediaKey][]domain.RegionRating{},
		Searches:     map[domain.MediaType][]domain.MediaSummary{},
		GenreSet:     map[domain.MediaType][]domain.Genre{},
		Fail:         map[string]bool{},
		calls:        map[string]int{},
	}
}

// Calls returns how many times method was invoked
func (r *Repo) Calls(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[method]
}

func (r *Repo) enter(method string) error {
	r.calls[method]++
	if r.Fail[method] {
		if r.Err != nil {
			return r.Err
		}
		return domain.ErrCatalogUnreachable
	}
	return nil
}

func (r *Repo) List(_ context.Context, endpoint string, params url.Values) ([]domain.MediaSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ListCalls = append(r.ListCalls, ListCall{Endpoint: endpoint, Params: params})
	if err := r.enter("List"); err != nil {
		return nil, err
	}
	return clone(r.Lists[endpoint]), nil
}

func (r *Repo) Details(_ context.Context, key domain.MediaKey) (*domain.MediaDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("Details"); err != nil {
		return nil, err
	}
	d, ok := r.DetailsByKey[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *Repo) Similar(_ context.Context, key domain.MediaKey) ([]domain.MediaSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("Similar"); err != nil {
		return nil, err
	}
	return clone(r.SimilarByKey[key]), nil
}

func (r *Repo) SeasonEpisodes(_ context.Context, showID, season int) ([]domain.Episode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := EpisodeKey{ShowID: showID, Season: season}
	r.EpisodeCalls = append(r.EpisodeCalls, key)
	if err := r.enter("SeasonEpisodes"); err != nil {
		return nil, err
	}
	return append([]domain.Episode(nil), r.Episodes[key]...), nil
}

func (r *Repo) ContentRatings(_ context.Context, key domain.MediaKey) ([]domain.RegionRating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("ContentRatings"); err != nil {
		return nil, err
	}
	return append([]domain.RegionRating(nil), r.Ratings[key]...), nil
}

func (r *Repo) SearchType(_ context.Context, mediaType domain.MediaType, _ string) ([]domain.MediaSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("SearchType"); err != nil {
		return nil, err
	}
	items := clone(r.Searches[mediaType])
	for i := range items {
		items[i].Type = mediaType
	}
	return items, nil
}

func (r *Repo) Genres(_ context.Context, mediaType domain.MediaType) ([]domain.Genre, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter("Genres"); err != nil {
		return nil, err
	}
	return append([]domain.Genre(nil), r.GenreSet[mediaType]...), nil
}

// Summary is a shorthand constructor for list entries
func Summary(id int, title string, t domain.MediaType, popularity float64) domain.MediaSummary {
	return domain.MediaSummary{
		ID:           id,
		Title:        title,
		Type:         t,
		Popularity:   popularity,
		PosterPath:   "/p" + title + ".jpg",
		BackdropPath: "/b" + title + ".jpg",
	}
}

func clone(items []domain.MediaSummary) []domain.MediaSummary {
	if items == nil {
		return nil
	}
	return append([]domain.MediaSummary(nil), items...)
}
