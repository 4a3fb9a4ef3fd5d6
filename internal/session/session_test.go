package session

import (
	"testing"

	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/stretchr/testify/require"
)

func movie(id int) domain.MediaKey { return domain.MediaKey{ID: id, Type: domain.MediaTypeMovie} }

func TestNewDefaults(t *testing.T) {
	require := require.New(t)

	s := New()
	require.Equal(domain.MediaTypeMovie, s.MediaType)
	require.Equal(1, s.Page)
	require.Empty(s.Displayed)
	require.Zero(s.History.Len())
	require.False(s.IsLoading())
	require.False(s.AdvancedActive())
	require.Equal(ModalClosed, s.Modal.State())
}

func TestHistoryEvictsOldest(t *testing.T) {
	require := require.New(t)

	h := NewHistory(MaxHistory)
	for i := 1; i <= 11; i++ {
		h.Push(movie(i))
	}

	require.Equal(10, h.Len())
	entries := h.Entries()
	require.Equal(2, entries[0].ID)
	require.Equal(11, entries[9].ID)

	top, ok := h.Pop()
	require.True(ok)
	require.Equal(11, top.ID)
	require.Equal(9, h.Len())
}

func TestHistoryNeverExceedsBound(t *testing.T) {
	h := NewHistory(MaxHistory)
	for i := 0; i < 100; i++ {
		h.Push(movie(i))
		require.LessOrEqual(t, h.Len(), MaxHistory)
	}
}

func TestHistoryPopEmpty(t *testing.T) {
	_, ok := NewHistory(3).Pop()
	require.False(t, ok)
}

func TestSwitchViewResetsDedupAndPaging(t *testing.T) {
	require := require.New(t)

	s := New()
	s.Displayed.Add(1)
	s.Page = 4
	s.Advanced = &domain.DiscoverFilter{MediaType: domain.MediaTypeMovie}

	s.SwitchView(ViewTV)
	require.Equal(ViewTV, s.View)
	require.Equal(domain.MediaTypeTV, s.MediaType)
	require.False(s.Displayed.Has(1))
	require.Equal(1, s.Page)
	require.Nil(s.Advanced)
}

func TestSwitchViewMakesOldTokensStale(t *testing.T) {
	require := require.New(t)

	s := New()
	first := s.SwitchView(ViewMovies)
	require.True(s.Generations.Current(first))

	second := s.SwitchView(ViewMovies)
	require.False(s.Generations.Current(first))
	require.True(s.Generations.Current(second))

	other := s.SwitchView(ViewTV)
	require.False(s.Generations.Current(second), "leaving a view makes its loads stale")
	require.True(s.Generations.Current(other))
	require.Equal(other, s.Generations.Latest(ViewTV.String()))

	// coming back issues a fresh token; the one from before the switch stays stale
	back := s.SwitchView(ViewMovies)
	require.False(s.Generations.Current(second))
	require.True(s.Generations.Current(back))
	require.False(s.Generations.Current(other))
}

func TestLanguageChangeKeepsViewAndReissues(t *testing.T) {
	require := require.New(t)

	s := New()
	before := s.SwitchView(ViewTV)
	after := s.SetLanguage("pt-BR")

	require.Equal(ViewTV, s.View)
	require.Equal(ViewTV.String(), after.View)
	require.False(s.Generations.Current(before))
	require.True(s.Generations.Current(after))
}

func TestStartAdvanced(t *testing.T) {
	require := require.New(t)

	s := New()
	s.Page = 3
	s.StartAdvanced(domain.DiscoverFilter{MediaType: domain.MediaTypeTV, GenreID: 18})

	require.Equal(ViewResults, s.View)
	require.True(s.AdvancedActive())
	require.Equal(18, s.Advanced.GenreID)
	require.Equal(domain.MediaTypeTV, s.MediaType)
	require.Equal(1, s.Page)
}

func TestOpenDetailsPushesPrevious(t *testing.T) {
	require := require.New(t)

	s := New()
	s.OpenDetails(movie(1), false)
	s.OpenDetails(domain.MediaKey{ID: 2, Type: domain.MediaTypeTV}, false)

	require.Equal(ModalDetails, s.Modal.State())
	require.Equal(2, s.CurrentMedia.ID)
	require.Equal(domain.MediaTypeTV, s.MediaType)
	require.Equal([]domain.MediaKey{movie(1)}, s.History.Entries(), "opening from a closed modal pushes nothing")

	prev, ok := s.Back()
	require.True(ok)
	require.Equal(movie(1), prev)

	s.OpenDetails(prev, true)
	require.Zero(s.History.Len(), "back navigation does not push")

	_, ok = s.Back()
	require.False(ok)
}

func TestReopeningAfterCloseKeepsHistorySlots(t *testing.T) {
	require := require.New(t)

	s := New()
	for id := 1; id <= MaxHistory+1; id++ {
		s.OpenDetails(movie(id), false)
		s.OpenDetails(movie(100+id), false)
		s.CloseModal()
	}

	entries := s.History.Entries()
	require.Len(entries, MaxHistory)
	for _, e := range entries {
		require.False(e.IsZero(), "closed-modal opens take no slot")
	}
	require.Equal(movie(MaxHistory+1), entries[len(entries)-1])
	require.Equal(movie(2), entries[0], "oldest real entry evicted first")
}

func TestCloseModalRestoresViewType(t *testing.T) {
	s := New()
	s.SwitchView(ViewMovies)
	s.OpenDetails(domain.MediaKey{ID: 5, Type: domain.MediaTypeTV}, false)
	s.CloseModal()

	require.Equal(t, ModalClosed, s.Modal.State())
	require.True(t, s.CurrentMedia.IsZero())
	require.Equal(t, domain.MediaTypeMovie, s.MediaType)
}

func TestModalTransitions(t *testing.T) {
	require := require.New(t)

	var m Modal
	require.Error(m.OpenPlayer(), "player needs details")

	m.OpenDetails()
	require.NoError(m.OpenPlayer())
	require.Equal(ModalPlayer, m.State())

	m.ClosePlayer()
	require.Equal(ModalDetails, m.State())

	require.NoError(m.OpenPlayer())
	m.Close()
	require.Equal(ModalClosed, m.State())
	require.False(m.IsOpen())
	require.Equal("player-open", ModalPlayer.String())
}

func TestInFlight(t *testing.T) {
	require := require.New(t)

	f := make(InFlight)
	require.True(f.Begin("more"))
	require.False(f.Begin("more"))
	require.True(f.Begin("hero"), "sections are independent")
	require.True(f.Any())

	f.Done("more")
	require.False(f.Busy("more"))
	require.True(f.Begin("more"))
}
