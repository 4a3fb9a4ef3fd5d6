package view

import (
	"context"

	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/tmdb"
	"github.com/sourcegraph/conc"
)

// CastLimit is how many cast names the details view lists
const CastLimit = 5

// DetailView is the content of the details modal
type DetailView struct {
	Details     domain.MediaDetails
	Rating      string
	BackdropURL string
	PosterURL   string
	Similar     []Card

	// tv only
	Seasons  []domain.Season
	Season   int
	Episodes []domain.Episode

	Primary   domain.PlayTarget
	Secondary domain.PlayTarget
}

// Key returns the media key shown in the view
func (d *DetailView) Key() domain.MediaKey {
	return d.Details.Key()
}

// IsTV reports whether the view shows a series
func (d *DetailView) IsTV() bool {
	return d.Details.Type == domain.MediaTypeTV
}

// Runtime returns "Xh Ym" for movies and "N Season(s)" for shows
func (d *DetailView) Runtime() string {
	if d.IsTV() {
		return d.Details.FormattedSeasons()
	}
	return d.Details.FormattedRuntime()
}

// Cast returns the first CastLimit cast names
func (d *DetailView) Cast() []string {
	return d.Details.TopCast(CastLimit)
}

// Target returns the header play target for a server
func (d *DetailView) Target(s domain.Server) domain.PlayTarget {
	if s == domain.Server2 {
		return d.Secondary
	}
	return d.Primary
}

// EpisodeTarget returns the play target of one episode in the selected season
func (d *DetailView) EpisodeTarget(episode int, s domain.Server) domain.PlayTarget {
	return domain.PlayTarget{Media: d.Key(), Server: s, Season: d.Season, Episode: episode}
}

// pointAt aims both header targets at (season, episode)
func (d *DetailView) pointAt(season, episode int) {
	d.Primary = domain.PlayTarget{Media: d.Key(), Server: domain.Server1, Season: season, Episode: episode}
	d.Secondary = d.Primary.WithServer(domain.Server2)
}

// LoadDetailView fetches details and renders them. It returns nil when
// the media cannot be fetched.
func (r *Renderer) LoadDetailView(ctx context.Context, key domain.MediaKey) *DetailView {
	details := r.catalog.FetchDetails(ctx, key.ID, key.Type)
	if details == nil {
		return nil
	}
	return r.RenderDetailView(ctx, details, key.Type)
}

// RenderDetailView fetches similar titles and the content rating
// concurrently and assembles the modal content. Shows also load the
// episodes of their first valid season, which becomes the default.
func (r *Renderer) RenderDetailView(ctx context.Context, details *domain.MediaDetails, mediaType domain.MediaType) *DetailView {
	if details == nil {
		return nil
	}
	d := &DetailView{Details: *details}
	d.Details.Type = mediaType

	d.BackdropURL = r.images.URL(tmdb.SizeOriginal, details.BackdropPath)
	d.PosterURL = r.images.URL(tmdb.SizePoster, details.PosterPath)

	if mediaType == domain.MediaTypeTV {
		d.Seasons = details.ValidSeasons()
		d.pointAt(1, 1)
	} else {
		d.pointAt(0, 0)
	}

	var (
		wg      conc.WaitGroup
		similar []domain.MediaSummary
	)
	wg.Go(func() {
		similar = r.catalog.FetchSimilar(ctx, details.ID, mediaType)
	})
	wg.Go(func() {
		d.Rating = r.catalog.FetchContentRating(ctx, details.ID, mediaType)
	})
	if len(d.Seasons) > 0 {
		first := d.Seasons[0].Number
		wg.Go(func() {
			d.Episodes = r.catalog.FetchEpisodes(ctx, details.ID, first)
		})
		d.Season = first
	}
	wg.Wait()

	if d.Season > 0 {
		d.pointAt(d.Season, 1)
	}

	for _, s := range similar {
		if s.PosterPath == "" {
			continue
		}
		if s.Type == "" {
			s.Type = mediaType
		}
		d.Similar = append(d.Similar, Card{
			Media:     s,
			PosterURL: r.images.URL(tmdb.SizeSimilar, s.PosterPath),
		})
	}
	return d
}

// SelectSeason returns a copy of d showing season n: its episodes are
// fetched and both header targets point at (n, 1).
func (r *Renderer) SelectSeason(ctx context.Context, d DetailView, n int) DetailView {
	d.Season = n
	d.Episodes = r.catalog.FetchEpisodes(ctx, d.Details.ID, n)
	d.pointAt(n, 1)
	return d
}
