package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/i18n"
	"github.com/mmcdole/flixhub/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var en = i18n.Translator(i18n.English)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func card(id int, title string) view.Card {
	return view.Card{Media: domain.MediaSummary{ID: id, Title: title, Type: domain.MediaTypeMovie}}
}

func testRows() []view.Row {
	return []view.Row{
		{Key: "a", Title: "Popular", Cards: []view.Card{card(1, "Heat"), card(2, "Ronin")}, Replace: true},
		{Key: "b", Title: "Drama", Cards: []view.Card{card(3, "Alien")}, Replace: true},
	}
}

func TestBrowserNavigationActions(t *testing.T) {
	require := require.New(t)

	b := NewBrowser(en)
	b.SetSize(100, 30)
	b.SetRows(testRows())

	var act BrowserAction
	b, _, act = b.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(BrowserAbove, act)

	b, _, _ = b.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(2, b.Selected().Media.ID)

	b, _, act = b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(BrowserOpen, act)

	b, _, act = b.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(BrowserNone, act)
	require.Equal("b", b.FocusedRow().Key)

	_, _, act = b.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(BrowserLoadMore, act, "moving past the last row asks for more")

	_, _, act = b.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(BrowserLoadMore, act, "moving past the last card of the last row asks for more")
}

func TestBrowserApplyRow(t *testing.T) {
	require := require.New(t)

	b := NewBrowser(en)
	b.SetRows(testRows())

	b.ApplyRow(view.Row{Key: "a", Cards: []view.Card{card(4, "Dark")}})
	require.Len(b.Rows()[0].Cards, 3)
	require.Equal("Popular", b.Rows()[0].Title)

	b.ApplyRow(view.Row{Key: "more", Title: "More to Explore"})
	require.Equal(2, b.Len(), "empty new rows are ignored")

	b.ApplyRow(view.Row{Key: "more", Title: "More to Explore", Cards: []view.Card{card(5, "Lost")}})
	require.Equal(3, b.Len())
}

func TestBrowserFilter(t *testing.T) {
	require := require.New(t)

	b := NewBrowser(en)
	b.SetSize(100, 30)
	b.SetRows(testRows())

	b.StartFilter()
	require.True(b.IsFiltering())

	b, _, _ = b.Update(runes("ron"))
	require.True(b.IsFiltered())
	require.Equal(2, b.Selected().Media.ID)

	b, _, _ = b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(b.IsFiltering())
	require.True(b.IsFiltered(), "enter keeps the matches")

	b, _, _ = b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(b.IsFiltered())
}

func TestOmnibarSubmitThenSelect(t *testing.T) {
	require := require.New(t)

	o := NewOmnibar(en)
	o.Show()

	var act OmnibarAction
	o, _, act = o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(OmnibarNone, act, "empty query does nothing")

	o, _, _ = o.Update(runes("heat"))
	o, _, act = o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(OmnibarSubmit, act)
	require.Equal("heat", o.Query())

	o.SetResults("heat", []view.SearchResult{
		{Media: domain.MediaSummary{ID: 1, Title: "Heat"}, Label: "Movie"},
		{Media: domain.MediaSummary{ID: 2, Title: "Heat 2"}, Label: "Movie"},
	})
	o, _, _ = o.Update(tea.KeyMsg{Type: tea.KeyDown})
	o, _, act = o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(OmnibarSelect, act)
	require.Equal(2, o.SelectedResult().Media.ID)

	o, _, act = o.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(OmnibarClose, act)
	require.False(o.IsVisible())
}

func TestDiscoverFormFilter(t *testing.T) {
	genres := []domain.Genre{{ID: 28, Name: "Action"}, {ID: 18, Name: "Drama"}}

	tests := []struct {
		name   string
		values map[string]string
		want   domain.DiscoverFilter
		err    error
	}{
		{
			name:   "empty form",
			values: nil,
			want:   domain.DiscoverFilter{MediaType: domain.MediaTypeMovie, SortBy: domain.SortPopularityDesc},
		},
		{
			name:   "all fields",
			values: map[string]string{"Genre": "drama", "Minimum Rating": "7,5", "Country": "br", "Year From": "1990", "Year To": "2000"},
			want: domain.DiscoverFilter{
				MediaType: domain.MediaTypeMovie, GenreID: 18, MinRating: 7.5, Country: "BR",
				YearFrom: 1990, YearTo: 2000, SortBy: domain.SortPopularityDesc,
			},
		},
		{name: "unknown genre", values: map[string]string{"Genre": "qqqq"}, err: ErrGenreNotFound},
		{name: "rating out of range", values: map[string]string{"Minimum Rating": "11"}, err: ErrInvalidRating},
		{name: "year not a number", values: map[string]string{"Year From": "19x0"}, err: ErrInvalidYear},
		{name: "years reversed", values: map[string]string{"Year From": "2001", "Year To": "2000"}, err: ErrInvalidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewDiscoverForm(en)
			f.Show(domain.MediaTypeMovie)
			for label, v := range tt.values {
				f.SetValue(label, v)
			}
			got, err := f.Filter(genres)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscoverFormCyclesMediaType(t *testing.T) {
	f := NewDiscoverForm(en)
	f.Show(domain.MediaTypeMovie)

	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.MediaTypeTV, f.MediaType())

	_, _, act := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, FormCancel, act)
}

func showDetail() *view.DetailView {
	key := domain.MediaKey{ID: 9, Type: domain.MediaTypeTV}
	d := &view.DetailView{
		Details: domain.MediaDetails{MediaSummary: domain.MediaSummary{ID: 9, Title: "Dark", Type: domain.MediaTypeTV}},
		Seasons: []domain.Season{{Number: 1, EpisodeCount: 2}, {Number: 2, EpisodeCount: 3}},
		Season:  1,
		Episodes: []domain.Episode{
			{Number: 1, Name: "Secrets"},
			{Number: 2, Name: "Lies"},
		},
		Similar: []view.Card{card(11, "Lost")},
	}
	d.Primary = domain.PlayTarget{Media: key, Server: domain.Server1, Season: 1, Episode: 1}
	d.Secondary = d.Primary.WithServer(domain.Server2)
	return d
}

func TestDetailsModalZones(t *testing.T) {
	require := require.New(t)

	d := NewDetailsModal(en)
	d.SetSize(120, 40)
	d.SetDetail(showDetail())
	require.Equal(ZoneActions, d.Zone())

	var act DetailsAction
	d, _, act = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(DetailsPlay, act.Kind)
	require.Equal(domain.Server1, act.Target.Server)
	require.Equal(1, act.Target.Episode)

	d, _, _ = d.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(ZoneSeasons, d.Zone())
	d, _, act = d.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(DetailsSelectSeason, act.Kind)
	require.Equal(2, act.Season)

	d, _, _ = d.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(ZoneEpisodes, d.Zone())
	d, _, _ = d.Update(tea.KeyMsg{Type: tea.KeyDown})
	d, _, act = d.Update(runes("2"))
	require.Equal(DetailsPlay, act.Kind)
	require.Equal(domain.Server2, act.Target.Server)
	require.Equal(2, act.Target.Episode)

	d, _, _ = d.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(ZoneSimilar, d.Zone())
	d, _, act = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(DetailsOpenSimilar, act.Kind)
	require.Equal(11, act.Media.ID)

	d, _, _ = d.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(ZoneActions, d.Zone(), "focus wraps around")
}

func TestDetailsModalPlayerPanel(t *testing.T) {
	require := require.New(t)

	d := NewDetailsModal(en)
	d.SetSize(120, 40)
	d.SetDetail(showDetail())
	target := showDetail().Primary

	d.PlayerOpened(target, "https://vidsrc.to/embed/tv/9/1/1")
	require.Contains(d.View(), "Opened in browser")

	var act DetailsAction
	_, _, act = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(DetailsClosePlayer, act.Kind)

	d.PlayerFailed(target)
	require.Contains(d.View(), "Try the other server")
	_, _, act = d.Update(runes("s"))
	require.Equal(DetailsPlay, act.Kind)
	require.Equal(domain.Server2, act.Target.Server)

	d.ClosePlayer()
	_, _, act = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(DetailsClose, act.Kind)
	_, _, act = d.Update(runes("x"))
	require.Equal(DetailsCloseAll, act.Kind)
}

func TestNavbarMarksActiveTab(t *testing.T) {
	bar := Navbar(1, i18n.Portuguese, false, 100, i18n.Translator(i18n.Portuguese))
	assert.Contains(t, bar, "Filmes")
	assert.Contains(t, bar, "pt-BR")
}
