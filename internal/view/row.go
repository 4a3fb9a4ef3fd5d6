package view

import (
	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/session"
	"github.com/mmcdole/flixhub/internal/tmdb"
)

// Card is one poster tile in a row or grid
type Card struct {
	Media     domain.MediaSummary
	PosterURL string
}

// Key returns the card's media key
func (c Card) Key() domain.MediaKey {
	return c.Media.Key()
}

// Row is a titled strip of cards. Replace marks a freshly rendered row;
// when false the cards extend the row already shown under Key.
type Row struct {
	Key     string
	Title   string
	Type    domain.MediaType
	Cards   []Card
	Replace bool
}

// Empty reports whether the row has no cards
func (r Row) Empty() bool {
	return len(r.Cards) == 0
}

// Merge applies an update to the row currently shown
func (r Row) Merge(update Row) Row {
	if update.Replace {
		return update
	}
	r.Cards = append(append([]Card(nil), r.Cards...), update.Cards...)
	return r
}

// RenderRow builds the cards for items under key. Items whose id is
// already displayed or that have no poster are skipped; emitted ids join
// the displayed set. With clear set, the displayed set is reset first and
// the row replaces whatever was shown.
func (r *Renderer) RenderRow(state *session.State, items []domain.MediaSummary, key string, mediaType domain.MediaType, clear bool) Row {
	if clear {
		state.Displayed.Clear()
	}

	row := Row{Key: key, Type: mediaType, Replace: clear}
	for _, item := range items {
		if state.Displayed.Has(item.ID) || item.PosterPath == "" {
			continue
		}
		if item.Type == "" {
			item.Type = mediaType
		}
		state.Displayed.Add(item.ID)
		row.Cards = append(row.Cards, Card{
			Media:     item,
			PosterURL: r.images.URL(tmdb.SizePoster, item.PosterPath),
		})
	}
	return row
}
