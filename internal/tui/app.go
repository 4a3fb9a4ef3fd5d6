package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flixhub/internal/catalog"
	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/i18n"
	"github.com/mmcdole/flixhub/internal/session"
	"github.com/mmcdole/flixhub/internal/tui/components"
	"github.com/mmcdole/flixhub/internal/tui/styles"
	"github.com/mmcdole/flixhub/internal/view"
)

// In-flight sections and generation keys besides the views themselves
const (
	sectionRows    = "rows"
	sectionMore    = "more"
	sectionHero    = "hero"
	sectionSearch  = "search"
	sectionDetails = "details"
	sectionSeason  = "season"
)

// statusTTL is how long a status message stays up
const statusTTL = 3 * time.Second

// Player opens play targets
type Player interface {
	Play(target domain.PlayTarget) (string, error)
}

// LanguageSetter receives the catalog language when the UI language changes
type LanguageSetter interface {
	SetLanguage(tag string)
}

// Deps are the collaborators of the model
type Deps struct {
	Renderer *view.Renderer
	Player   Player
	Language LanguageSetter // optional
	Logger   *slog.Logger
	Lang     string // initial UI language

	// DefaultServer is used when the featured title is played directly
	DefaultServer domain.Server
}

// Model is the main Bubble Tea model for the application. Session state is
// only mutated from Update and the helpers it calls.
type Model struct {
	Ready bool

	// Services
	Session  *session.State
	Renderer *view.Renderer
	Player   Player
	langSet  LanguageSetter
	logger   *slog.Logger
	tr       i18n.Translator
	server   domain.Server

	// UI Components
	Browser components.Browser
	Omnibar components.Omnibar
	Form    components.DiscoverForm
	Details components.DetailsModal
	Spinner spinner.Model
	Help    help.Model

	// Data
	Hero   *view.Hero
	Genres catalog.GenreMaps

	// Dimensions
	Width  int
	Height int

	// UI state
	HeroFocused bool
	ShowHelp    bool
	StatusMsg   string
	StatusIsErr bool

	pendingPlay *domain.MediaKey // hero play waiting for its details
}

// NewModel creates a new application model
func NewModel(deps Deps) Model {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	state := session.New()
	state.Language = i18n.Match(deps.Lang)
	tr := i18n.Translator(state.Language)
	if deps.Language != nil {
		deps.Language.SetLanguage(state.Language)
	}

	server := deps.DefaultServer
	if server != domain.Server2 {
		server = domain.Server1
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	return Model{
		Session:  state,
		Renderer: deps.Renderer,
		Player:   deps.Player,
		langSet:  deps.Language,
		logger:   logger.With("component", "tui"),
		tr:       tr,
		server:   server,
		Browser:  components.NewBrowser(tr),
		Omnibar:  components.NewOmnibar(tr),
		Form:     components.NewDiscoverForm(tr),
		Details:  components.NewDetailsModal(tr),
		Spinner:  sp,
		Help:     help.New(),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadGenresCmd(m.Renderer),
		m.Spinner.Tick,
		m.Start(),
	)
}

// Start issues the initial home load. It is split from Init so the load
// can be driven without the spinner tick.
func (m *Model) Start() tea.Cmd {
	return m.switchView(session.ViewHome)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case GenresLoadedMsg:
		m.Genres = msg.Genres
		return m, nil

	case HeroLoadedMsg:
		m.Session.InFlight.Done(sectionHero)
		if !m.Session.Generations.Current(msg.Token) {
			return m, nil
		}
		m.Hero = msg.Hero
		if m.Hero == nil {
			m.HeroFocused = false
		}
		m.updateLayout()
		return m, nil

	case RowsLoadedMsg:
		// A stale response leaves the marker to the load that superseded it
		if !m.shown(msg.Token) {
			m.logger.Debug("dropping stale rows", "view", msg.Token.View, "gen", msg.Token.Gen)
			return m, nil
		}
		m.Session.InFlight.Done(sectionRows)
		m.Browser.SetRows(m.Renderer.RenderRows(m.Session, msg.Data))
		return m, nil

	case ResultsLoadedMsg:
		if !m.shown(msg.Token) {
			m.logger.Debug("dropping stale results", "gen", msg.Token.Gen)
			return m, nil
		}
		m.Session.InFlight.Done(sectionRows)
		row := m.Renderer.RenderResults(m.Session, msg.Items, msg.MediaType)
		if row.Empty() {
			m.Browser.SetRows(nil)
			return m, m.setStatus(m.tr.T("No results found"), false)
		}
		m.Browser.SetRows([]view.Row{row})
		return m, nil

	case MoreLoadedMsg:
		m.Session.InFlight.Done(sectionMore)
		if !m.shown(msg.Token) {
			m.logger.Debug("dropping stale page", "view", msg.Token.View, "gen", msg.Token.Gen)
			return m, nil
		}
		return m, m.applyMore(msg)

	case SearchResultsMsg:
		m.Session.InFlight.Done(sectionSearch)
		if !m.Session.Generations.Current(msg.Token) || !m.Omnibar.IsVisible() {
			return m, nil
		}
		m.Omnibar.SetResults(msg.Query, msg.Results)
		return m, nil

	case DetailsLoadedMsg:
		m.Session.InFlight.Done(sectionDetails)
		if !m.Session.Generations.Current(msg.Token) || !m.Session.Modal.IsOpen() {
			return m, nil
		}
		return m, m.applyDetails(msg)

	case SeasonLoadedMsg:
		m.Session.InFlight.Done(sectionSeason)
		if !m.Session.Generations.Current(msg.Token) || !m.Session.Modal.IsOpen() {
			return m, nil
		}
		if d := m.Details.Detail(); d == nil || d.Key() != msg.Detail.Key() {
			return m, nil
		}
		m.Details.UpdateDetail(msg.Detail)
		return m, nil

	case PlaybackStartedMsg:
		if m.Session.Modal.State() != session.ModalPlayer {
			return m, nil
		}
		m.Details.PlayerOpened(msg.Target, msg.URL)
		return m, nil

	case PlaybackFailedMsg:
		m.logger.Error("playback failed", "id", msg.Target.Media.ID, "server", int(msg.Target.Server), "error", msg.Err)
		if !m.Session.Modal.IsOpen() {
			return m, nil
		}
		m.Session.Modal.ClosePlayer()
		m.Details.PlayerFailed(msg.Target)
		return m, nil

	case ErrMsg:
		m.logger.Error("operation failed", "context", msg.Context, "error", msg.Err)
		return m, m.setStatus(msg.Error(), true)

	case StatusMsg:
		return m, m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Forward everything else (cursor blink and the like) to the focused input
	var cmd tea.Cmd
	switch {
	case m.Omnibar.IsVisible():
		m.Omnibar, cmd, _ = m.Omnibar.Update(msg)
	case m.Form.IsVisible():
		m.Form, cmd, _ = m.Form.Update(msg)
	case m.Browser.IsFiltering():
		m.Browser, cmd, _ = m.Browser.Update(msg)
	}
	return m, cmd
}

// shown reports whether tok is current and belongs to the view on screen
func (m Model) shown(tok session.Token) bool {
	return tok.View == m.Session.View.String() && m.Session.Generations.Current(tok)
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(statusTTL)
}

// Translator returns the active UI translator
func (m Model) Translator() i18n.Translator {
	return m.tr
}
