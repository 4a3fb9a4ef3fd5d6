package session

import "github.com/mmcdole/flixhub/internal/domain"

// View is a top-level, mutually exclusive screen
type View int

const (
	ViewHome View = iota
	ViewMovies
	ViewTV
	ViewResults
)

// String returns the view name, which doubles as its generation key
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewMovies:
		return "movies"
	case ViewTV:
		return "tv"
	case ViewResults:
		return "results"
	default:
		return "unknown"
	}
}

// MediaType returns the media type a view browses. Home and advanced
// results keep the current type.
func (v View) MediaType(current domain.MediaType) domain.MediaType {
	switch v {
	case ViewMovies:
		return domain.MediaTypeMovie
	case ViewTV:
		return domain.MediaTypeTV
	default:
		return current
	}
}

// State is the browsing session. It is owned by the navigation layer and
// mutated only from its update loop.
type State struct {
	View         View
	MediaType    domain.MediaType
	Page         int
	Displayed    DisplayedSet
	History      *History
	CurrentMedia domain.MediaKey
	Advanced     *domain.DiscoverFilter
	Language     string
	Modal        Modal
	Generations  *Generations
	InFlight     InFlight
}

// New returns the initial session state
func New() *State {
	return &State{
		View:        ViewHome,
		MediaType:   domain.MediaTypeMovie,
		Page:        1,
		Displayed:   make(DisplayedSet),
		History:     NewHistory(MaxHistory),
		Language:    "en-US",
		Generations: NewGenerations(),
		InFlight:    make(InFlight),
	}
}

// IsLoading reports whether any section load is in flight
func (s *State) IsLoading() bool {
	return s.InFlight.Any()
}

// AdvancedActive reports whether an advanced search drives pagination
func (s *State) AdvancedActive() bool {
	return s.Advanced != nil
}

// SwitchView makes v the shown view: the displayed set is cleared, the page
// cursor returns to 1 and outstanding loads of both the view left and v
// become stale. The returned token tags the loads for the fresh view.
func (s *State) SwitchView(v View) Token {
	if s.View != v {
		s.Generations.Invalidate(s.View.String())
	}
	s.View = v
	s.MediaType = v.MediaType(s.MediaType)
	s.Displayed.Clear()
	s.Page = 1
	if v != ViewResults {
		s.Advanced = nil
	}
	return s.Generations.Next(v.String())
}

// StartAdvanced activates an advanced search and switches to its results
func (s *State) StartAdvanced(filter domain.DiscoverFilter) Token {
	s.Advanced = &filter
	tok := s.SwitchView(ViewResults)
	s.MediaType = filter.MediaType
	return tok
}

// SetLanguage changes the UI language and resets the current view
func (s *State) SetLanguage(tag string) Token {
	s.Language = tag
	return s.SwitchView(s.View)
}

// OpenDetails records navigation to key. Unless fromHistory is set, the
// previously viewed entry (with the current media type) is pushed first.
// Nothing is pushed when the modal was closed.
func (s *State) OpenDetails(key domain.MediaKey, fromHistory bool) {
	if !fromHistory && !s.CurrentMedia.IsZero() {
		s.History.Push(domain.MediaKey{ID: s.CurrentMedia.ID, Type: s.MediaType})
	}
	s.CurrentMedia = key
	s.MediaType = key.Type
	s.Modal.OpenDetails()
}

// Back pops the previously viewed entry
func (s *State) Back() (domain.MediaKey, bool) {
	return s.History.Pop()
}

// CloseModal hides the modal and forgets the open media. The media type
// falls back to the shown view's.
func (s *State) CloseModal() {
	s.Modal.Close()
	s.CurrentMedia = domain.MediaKey{}
	s.MediaType = s.View.MediaType(s.MediaType)
}
