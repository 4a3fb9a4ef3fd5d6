// Package view turns catalog data and session state into view-models the
// terminal UI draws. Nothing here touches the terminal.
package view

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/mmcdole/flixhub/internal/catalog"
	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/tmdb"
)

// DefaultRowLimit caps the items of a category row
const DefaultRowLimit = 15

// Renderer builds view-models. It is safe for use from concurrent
// commands; session state passed in must only be touched by the caller's
// update loop.
type Renderer struct {
	catalog    *catalog.Service
	images     tmdb.Images
	summarizer domain.Summarizer
	logger     *slog.Logger

	rowLimit int
	now      func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option configures a Renderer
type Option func(*Renderer)

// WithSummarizer enables hero synopsis shortening
func WithSummarizer(s domain.Summarizer) Option {
	return func(r *Renderer) { r.summarizer = s }
}

// WithRand replaces the random source used for hero selection
func WithRand(rng *rand.Rand) Option {
	return func(r *Renderer) {
		if rng != nil {
			r.rng = rng
		}
	}
}

// WithClock replaces the clock used for date-relative rows
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// WithRowLimit sets how many items a category row keeps
func WithRowLimit(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.rowLimit = n
		}
	}
}

// NewRenderer creates a new view renderer
func NewRenderer(svc *catalog.Service, images tmdb.Images, logger *slog.Logger, opts ...Option) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Renderer{
		catalog:  svc,
		images:   images,
		logger:   logger.With("component", "view"),
		rowLimit: DefaultRowLimit,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog returns the catalog service the renderer reads from
func (r *Renderer) Catalog() *catalog.Service {
	return r.catalog
}

func (r *Renderer) intn(n int) int {
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return r.rng.Intn(n)
}
