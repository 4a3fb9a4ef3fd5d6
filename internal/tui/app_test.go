package tui

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flixhub/internal/catalog"
	"github.com/mmcdole/flixhub/internal/catalog/catalogtest"
	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/i18n"
	"github.com/mmcdole/flixhub/internal/session"
	"github.com/mmcdole/flixhub/internal/tmdb"
	"github.com/mmcdole/flixhub/internal/tui/components"
	"github.com/mmcdole/flixhub/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	movie = domain.MediaTypeMovie
	tv    = domain.MediaTypeTV
)

type fakePlayer struct {
	mu      sync.Mutex
	targets []domain.PlayTarget
	fail    map[domain.Server]bool
}

func (p *fakePlayer) Play(target domain.PlayTarget) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.targets = append(p.targets, target)
	if p.fail[target.Server] {
		return "", errors.New("no browser")
	}
	return "https://example.test/embed", nil
}

func (p *fakePlayer) last() domain.PlayTarget {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.targets[len(p.targets)-1]
}

type fakeLanguage struct{ tags []string }

func (f *fakeLanguage) SetLanguage(tag string) { f.tags = append(f.tags, tag) }

func newTestModel(t *testing.T, repo *catalogtest.Repo) (Model, *fakePlayer, *fakeLanguage) {
	t.Helper()
	renderer := view.NewRenderer(
		catalog.NewService(repo, nil),
		tmdb.NewImages(""),
		nil,
		view.WithRand(rand.New(rand.NewSource(1))),
	)
	player := &fakePlayer{fail: map[domain.Server]bool{}}
	lang := &fakeLanguage{}
	m := NewModel(Deps{Renderer: renderer, Player: player, Language: lang, Lang: "en"})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, player, lang
}

// update feeds one message and drains the resulting commands
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return drain(t, next.(Model), cmd)
}

// drain runs cmd and feeds its messages back in. Commands that do not
// return promptly (ticks, blinks, status timers) are dropped.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		m = update(t, m, msg)
	}
	return m
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		switch msg := msg.(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			var out []tea.Msg
			for _, c := range msg {
				out = append(out, collect(c)...)
			}
			return out
		default:
			return []tea.Msg{msg}
		}
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func homeRepo() *catalogtest.Repo {
	repo := catalogtest.New()
	repo.Lists["/trending/movie/week"] = []domain.MediaSummary{catalogtest.Summary(1, "Heat", movie, 100)}
	repo.Lists["/movie/popular"] = []domain.MediaSummary{catalogtest.Summary(2, "Ronin", movie, 40)}
	repo.Lists["/movie/top_rated"] = []domain.MediaSummary{catalogtest.Summary(3, "Alien", movie, 30)}
	repo.Lists["/trending/tv/week"] = []domain.MediaSummary{catalogtest.Summary(4, "Dark", tv, 60)}
	repo.Lists["/tv/popular"] = []domain.MediaSummary{catalogtest.Summary(5, "Lost", tv, 50)}
	repo.Lists["/tv/top_rated"] = []domain.MediaSummary{catalogtest.Summary(6, "Wire", tv, 90)}
	return repo
}

func rowKeys(m Model) []string {
	var keys []string
	for _, r := range m.Browser.Rows() {
		keys = append(keys, r.Key)
	}
	return keys
}

func TestStartLoadsHomeRowsAndHero(t *testing.T) {
	require := require.New(t)

	m, _, _ := newTestModel(t, homeRepo())
	cmd := m.Start()
	m = drain(t, m, cmd)

	require.Equal(session.ViewHome, m.Session.View)
	require.Equal([]string{
		"movie-trending-movies", "movie-popular", "movie-top-rated-movies",
		"tv-trending-shows", "tv-popular", "tv-top-rated-shows",
	}, rowKeys(m))
	require.NotNil(m.Hero)
	require.False(m.Session.IsLoading())
	require.Contains(m.View(), "Heat")
}

func TestStaleRowsAreDropped(t *testing.T) {
	require := require.New(t)

	m, _, _ := newTestModel(t, homeRepo())
	stale := m.Session.SwitchView(session.ViewMovies)
	current := m.Session.SwitchView(session.ViewMovies)
	m.Session.InFlight.Begin(sectionRows)

	data := []view.RowData{{
		Spec:  view.RowSpec{Key: "movie-popular", Title: "Popular", Type: movie},
		Items: []domain.MediaSummary{catalogtest.Summary(2, "Ronin", movie, 40)},
	}}

	m = update(t, m, RowsLoadedMsg{Token: stale, Data: data})
	require.Zero(m.Browser.Len())
	require.True(m.Session.InFlight.Busy(sectionRows), "the newer load still owns the marker")

	m = update(t, m, RowsLoadedMsg{Token: current, Data: data})
	require.Equal(1, m.Browser.Len())
	require.False(m.Session.InFlight.Busy(sectionRows))
}

func TestRowsOfPreviousViewAreDropped(t *testing.T) {
	require := require.New(t)

	m, _, _ := newTestModel(t, homeRepo())
	homeTok := m.Session.SwitchView(session.ViewHome)
	moviesTok := m.Session.SwitchView(session.ViewMovies)
	m.Session.InFlight.Begin(sectionRows)

	m = update(t, m, RowsLoadedMsg{Token: moviesTok, Data: []view.RowData{{
		Spec:  view.RowSpec{Key: "movie-popular", Title: "Popular", Type: movie},
		Items: []domain.MediaSummary{catalogtest.Summary(2, "Ronin", movie, 40)},
	}}})
	m = update(t, m, RowsLoadedMsg{Token: homeTok, Data: []view.RowData{{
		Spec:  view.RowSpec{Key: "tv-trending-shows", Title: "Trending Shows", Type: tv},
		Items: []domain.MediaSummary{catalogtest.Summary(4, "Dark", tv, 60)},
	}}})

	require.Equal(session.ViewMovies, m.Session.View)
	require.Equal([]string{"movie-popular"}, rowKeys(m))
	require.False(m.Session.Displayed.Has(4))
}

func TestMorePageOfPreviousViewIsDropped(t *testing.T) {
	require := require.New(t)

	m, _, _ := newTestModel(t, homeRepo())
	m = press(t, m, "2")

	next, more := m.Update(keyMsg("m"))
	m = next.(Model)
	require.NotNil(more)

	m = press(t, m, "3")
	tvRows := rowKeys(m)
	m = drain(t, m, more)

	require.Equal(session.ViewTV, m.Session.View)
	require.Equal(1, m.Session.Page)
	require.Equal(tvRows, rowKeys(m))
	require.NotContains(rowKeys(m), view.MoreRowKey)
	require.False(m.Session.Displayed.Has(2), "the movie page never reached the tv view")
	require.False(m.Session.InFlight.Busy(sectionMore))
	for _, r := range m.Browser.Rows() {
		require.Equal(tv, r.Type)
	}
}

func TestResultsArrivingAfterLeavingAreDropped(t *testing.T) {
	require := require.New(t)

	repo := homeRepo()
	repo.Lists["/discover/tv"] = []domain.MediaSummary{catalogtest.Summary(30, "Fargo", tv, 5)}

	m, _, _ := newTestModel(t, repo)
	results := m.startAdvanced(domain.DiscoverFilter{MediaType: tv, GenreID: 18})

	m = press(t, m, "1")
	homeRows := rowKeys(m)
	m = drain(t, m, results)

	require.Equal(session.ViewHome, m.Session.View)
	require.Nil(m.Session.Advanced)
	require.Equal(1, m.Session.Page)
	require.Equal(homeRows, rowKeys(m))
	require.NotContains(rowKeys(m), view.ResultsRowKey)
}

func TestSwitchViewLoadsCategoryRows(t *testing.T) {
	require := require.New(t)

	repo := homeRepo()
	repo.Lists["/discover/tv"] = []domain.MediaSummary{catalogtest.Summary(7, "Fargo", tv, 20)}

	m, _, _ := newTestModel(t, repo)
	m = press(t, m, "3")

	require.Equal(session.ViewTV, m.Session.View)
	require.Equal(tv, m.Session.MediaType)
	require.Equal(8, m.Browser.Len())
	require.Equal("tv-recently-added", rowKeys(m)[7])
}

func TestLoadMoreIsGuardedAndPages(t *testing.T) {
	require := require.New(t)

	repo := catalogtest.New()
	repo.Lists["/movie/popular"] = []domain.MediaSummary{
		catalogtest.Summary(10, "Heat", movie, 10),
		catalogtest.Summary(11, "Ronin", movie, 9),
	}
	repo.Lists["/discover/movie"] = []domain.MediaSummary{catalogtest.Summary(20, "Alien", movie, 8)}

	m, _, _ := newTestModel(t, repo)
	m = press(t, m, "2")
	require.Equal(6, m.Browser.Len())

	next, first := m.Update(keyMsg("m"))
	m = next.(Model)
	require.NotNil(first)
	require.True(m.Session.InFlight.Busy(sectionMore))

	next, second := m.Update(keyMsg("m"))
	m = next.(Model)
	require.Nil(second, "load more refused while a page is in flight")

	m = drain(t, m, first)
	require.False(m.Session.InFlight.Busy(sectionMore))
	require.Equal(2, m.Session.Page)
	rows := m.Browser.Rows()
	more := rows[len(rows)-1]
	require.Equal(view.MoreRowKey, more.Key)
	require.Equal(view.MoreRowTitle, more.Title)
	require.Len(more.Cards, 2)

	// the next page repeats the same titles, so nothing is added
	m = press(t, m, "m")
	require.Equal(2, m.Session.Page)
	require.Len(m.Browser.Rows()[len(rows)-1].Cards, 2)

	last := repo.ListCalls[len(repo.ListCalls)-1]
	require.Equal("/movie/popular", last.Endpoint)
	require.Equal("2", last.Params.Get("page"))
}

func TestAdvancedSearchPagesThroughResults(t *testing.T) {
	require := require.New(t)

	repo := catalogtest.New()
	repo.Lists["/discover/tv"] = []domain.MediaSummary{
		catalogtest.Summary(30, "Dark", tv, 5),
		catalogtest.Summary(31, "Lost", tv, 4),
	}

	m, _, _ := newTestModel(t, repo)
	cmd := m.startAdvanced(domain.DiscoverFilter{MediaType: tv, GenreID: 18})
	m = drain(t, m, cmd)

	require.Equal(session.ViewResults, m.Session.View)
	require.Equal([]string{view.ResultsRowKey}, rowKeys(m))
	require.Equal(2, m.Session.Page)

	m = press(t, m, "m")
	last := repo.ListCalls[len(repo.ListCalls)-1]
	require.Equal("/discover/tv", last.Endpoint)
	require.Equal("2", last.Params.Get("page"))
	require.Equal("18", last.Params.Get("with_genres"))
}

func TestDiscoverFormSubmit(t *testing.T) {
	require := require.New(t)

	repo := catalogtest.New()
	repo.GenreSet[movie] = []domain.Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comedy"}}
	repo.Lists["/discover/movie"] = []domain.MediaSummary{catalogtest.Summary(40, "Heat", movie, 5)}

	m, _, _ := newTestModel(t, repo)
	m = drain(t, m, LoadGenresCmd(m.Renderer))
	m = press(t, m, "a")
	require.True(m.Form.IsVisible())

	m.Form.SetValue("Genre", "comedy")
	m = press(t, m, "enter")

	require.False(m.Form.IsVisible())
	require.Equal(session.ViewResults, m.Session.View)
	require.NotNil(m.Session.Advanced)
	require.Equal(35, m.Session.Advanced.GenreID)
	require.Equal(1, m.Browser.Len())
}

func TestDiscoverFormRejectsUnknownGenre(t *testing.T) {
	require := require.New(t)

	m, _, _ := newTestModel(t, catalogtest.New())
	m = press(t, m, "a")
	m.Form.SetValue("Genre", "zzzz")
	m = press(t, m, "enter")

	require.True(m.Form.IsVisible())
	require.Equal(session.ViewHome, m.Session.View)
	require.Contains(m.Form.View(), "Genre not found")
}

func showRepo() *catalogtest.Repo {
	repo := catalogtest.New()
	show := catalogtest.Summary(50, "Dark", tv, 60)
	repo.DetailsByKey[show.Key()] = &domain.MediaDetails{
		MediaSummary: show,
		SeasonCount:  2,
		Seasons: []domain.Season{
			{Number: 0, Name: "Specials", EpisodeCount: 0},
			{Number: 1, Name: "Season 1", EpisodeCount: 10},
			{Number: 2, Name: "Season 2", EpisodeCount: 8},
		},
	}
	repo.Episodes[catalogtest.EpisodeKey{ShowID: 50, Season: 1}] = []domain.Episode{{Number: 1, Name: "Secrets"}}
	repo.Episodes[catalogtest.EpisodeKey{ShowID: 50, Season: 2}] = []domain.Episode{{Number: 1, Name: "Beginnings"}, {Number: 2, Name: "Dark Matter"}}
	return repo
}

func TestDetailsSeasonSelectionAndPlayback(t *testing.T) {
	require := require.New(t)

	repo := showRepo()
	m, player, _ := newTestModel(t, repo)
	key := domain.MediaKey{ID: 50, Type: tv}

	cmd := m.openDetails(key, false)
	m = drain(t, m, cmd)
	require.Equal(session.ModalDetails, m.Session.Modal.State())
	detail := m.Details.Detail()
	require.NotNil(detail)
	require.Equal(1, detail.Season)
	require.Len(detail.Seasons, 2)

	// focus the season tabs and move to season 2
	m = press(t, m, "tab", "right")
	require.Equal(components.ZoneSeasons, m.Details.Zone())
	detail = m.Details.Detail()
	require.Equal(2, detail.Season)
	require.Len(detail.Episodes, 2)
	require.Equal(domain.PlayTarget{Media: key, Server: domain.Server1, Season: 2, Episode: 1}, detail.Primary)
	require.Equal(domain.Server2, detail.Secondary.Server)
	require.Contains(repo.EpisodeCalls, catalogtest.EpisodeKey{ShowID: 50, Season: 2})

	// play the second episode on server 2
	m = press(t, m, "tab", "down", "2")
	require.Equal(session.ModalPlayer, m.Session.Modal.State())
	require.Equal(domain.PlayTarget{Media: key, Server: domain.Server2, Season: 2, Episode: 2}, player.last())

	// closing the player returns to the details body
	m = press(t, m, "esc")
	require.Equal(session.ModalDetails, m.Session.Modal.State())

	m = press(t, m, "esc")
	require.False(m.Session.Modal.IsOpen())
	require.True(m.Session.CurrentMedia.IsZero())
}

func TestPlaybackFailureOffersOtherServer(t *testing.T) {
	require := require.New(t)

	repo := catalogtest.New()
	film := catalogtest.Summary(60, "Heat", movie, 10)
	repo.DetailsByKey[film.Key()] = &domain.MediaDetails{MediaSummary: film, Runtime: 170}

	m, player, _ := newTestModel(t, repo)
	player.fail[domain.Server1] = true

	cmd := m.openDetails(film.Key(), false)
	m = drain(t, m, cmd)
	m = press(t, m, "enter")

	require.Equal(session.ModalDetails, m.Session.Modal.State())
	failed, ok := m.Details.PlayerFailedTarget()
	require.True(ok)
	require.Equal(domain.Server1, failed.Server)
	require.Contains(m.Details.View(), "Unable to load player")

	m = press(t, m, "s")
	require.Equal(session.ModalPlayer, m.Session.Modal.State())
	require.Equal(domain.PlayTarget{Media: film.Key(), Server: domain.Server2}, player.last())
}

func TestBackWalksHistory(t *testing.T) {
	require := require.New(t)

	repo := catalogtest.New()
	a := catalogtest.Summary(70, "Heat", movie, 10)
	b := catalogtest.Summary(71, "Dark", tv, 10)
	repo.DetailsByKey[a.Key()] = &domain.MediaDetails{MediaSummary: a}
	repo.DetailsByKey[b.Key()] = &domain.MediaDetails{MediaSummary: b}
	repo.SimilarByKey[a.Key()] = []domain.MediaSummary{b}

	m, _, _ := newTestModel(t, repo)
	cmd := m.openDetails(a.Key(), false)
	m = drain(t, m, cmd)
	require.Len(m.Details.Detail().Similar, 1)

	// open the similar title from the grid
	m = press(t, m, "tab", "enter")
	require.Equal(b.Key(), m.Session.CurrentMedia)
	require.Equal(tv, m.Session.MediaType)

	m = press(t, m, "b")
	require.Equal(a.Key(), m.Session.CurrentMedia)
	require.Equal(a.Key(), m.Details.Detail().Key())

	// the first title was opened from a closed modal, so back closes
	require.Zero(m.Session.History.Len())
	m = press(t, m, "b")
	require.False(m.Session.Modal.IsOpen())
}

func TestHeroPlayOpensDetailsThenPlayer(t *testing.T) {
	require := require.New(t)

	repo := homeRepo()
	for _, items := range repo.Lists {
		for _, it := range items {
			repo.DetailsByKey[it.Key()] = &domain.MediaDetails{MediaSummary: it}
		}
	}

	m, player, _ := newTestModel(t, repo)
	cmd := m.Start()
	m = drain(t, m, cmd)
	require.NotNil(m.Hero)
	hero := m.Hero.Media.Key()

	m = press(t, m, "p")
	require.Equal(session.ModalPlayer, m.Session.Modal.State())
	require.Equal(hero, player.last().Media)
	require.Equal(domain.Server1, player.last().Server)
}

func TestHeroFocusFromFirstRow(t *testing.T) {
	require := require.New(t)

	repo := homeRepo()
	m, _, _ := newTestModel(t, repo)
	cmd := m.Start()
	m = drain(t, m, cmd)

	m = press(t, m, "up")
	require.True(m.HeroFocused)

	m = press(t, m, "down")
	require.False(m.HeroFocused)
}

func TestSearchBoxSubmitThenSelect(t *testing.T) {
	require := require.New(t)

	repo := catalogtest.New()
	hit := catalogtest.Summary(80, "Batman", movie, 90)
	repo.Searches[movie] = []domain.MediaSummary{hit}
	repo.DetailsByKey[hit.Key()] = &domain.MediaDetails{MediaSummary: hit}

	m, _, _ := newTestModel(t, repo)
	m = press(t, m, "f")
	require.True(m.Omnibar.IsVisible())

	m = press(t, m, "batman", "enter")
	require.NotNil(m.Omnibar.SelectedResult())
	require.Equal(80, m.Omnibar.SelectedResult().Media.ID)

	m = press(t, m, "enter")
	require.False(m.Omnibar.IsVisible())
	require.Equal(hit.Key(), m.Session.CurrentMedia)
	require.NotNil(m.Details.Detail())
}

func TestLanguageToggle(t *testing.T) {
	require := require.New(t)

	m, _, lang := newTestModel(t, homeRepo())
	cmd := m.Start()
	m = drain(t, m, cmd)
	heroGen := m.Session.Generations.Latest(sectionHero)

	m = press(t, m, "L")
	require.Equal(i18n.Portuguese, m.Session.Language)
	require.Equal([]string{i18n.English, i18n.Portuguese}, lang.tags)
	require.Equal(i18n.Translator(i18n.Portuguese), m.Translator())
	require.Greater(m.Session.Generations.Latest(sectionHero).Gen, heroGen.Gen)
	require.NotNil(m.Hero)
	assert.Contains(t, m.View(), "Início")
}

func TestRowFilterCapturesKeys(t *testing.T) {
	require := require.New(t)

	m, _, _ := newTestModel(t, homeRepo())
	cmd := m.Start()
	m = drain(t, m, cmd)

	m = press(t, m, "/", "q")
	require.True(m.Browser.IsFiltering(), "typing in the filter must not quit")

	m = press(t, m, "esc")
	require.False(m.Browser.IsFiltering())
}

func TestStatusMessages(t *testing.T) {
	m, _, _ := newTestModel(t, catalogtest.New())

	m = update(t, m, ErrMsg{Err: errors.New("boom"), Context: "loading"})
	assert.Equal(t, "loading: boom", m.StatusMsg)
	assert.True(t, m.StatusIsErr)

	m = update(t, m, ClearStatusMsg{})
	assert.Empty(t, m.StatusMsg)
}
