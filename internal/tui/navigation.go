package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/i18n"
	"github.com/mmcdole/flixhub/internal/session"
	"github.com/mmcdole/flixhub/internal/tui/components"
	"github.com/mmcdole/flixhub/internal/view"
)

// viewOrder is the tab cycle order
var viewOrder = []session.View{session.ViewHome, session.ViewMovies, session.ViewTV}

// switchView shows v and starts its load
func (m *Model) switchView(v session.View) tea.Cmd {
	return m.loadView(m.Session.SwitchView(v))
}

// nextView cycles the tabs. The advanced results view continues at Home.
func (m *Model) nextView() tea.Cmd {
	for i, v := range viewOrder {
		if v == m.Session.View {
			return m.switchView(viewOrder[(i+1)%len(viewOrder)])
		}
	}
	return m.switchView(session.ViewHome)
}

// loadView clears the browser and fetches the rows of the current view
// under tok
func (m *Model) loadView(tok session.Token) tea.Cmd {
	m.Browser.SetRows(nil)
	m.HeroFocused = false
	m.Session.InFlight.Begin(sectionRows)

	var cmds []tea.Cmd
	switch m.Session.View {
	case session.ViewHome:
		cmds = append(cmds, LoadRowsCmd(m.Renderer, tok, m.Renderer.HomeRows()))
		if m.Hero == nil && !m.Session.InFlight.Busy(sectionHero) {
			cmds = append(cmds, m.reloadHero())
		}
	case session.ViewMovies, session.ViewTV:
		cmds = append(cmds, LoadRowsCmd(m.Renderer, tok, m.Renderer.CategoryRows(m.Session.MediaType)))
	case session.ViewResults:
		if m.Session.Advanced == nil {
			m.Session.InFlight.Done(sectionRows)
			return nil
		}
		cmds = append(cmds, LoadResultsCmd(m.Renderer, tok, *m.Session.Advanced))
	}

	m.updateLayout()
	return tea.Batch(cmds...)
}

// reloadHero drops the featured title and draws a new one
func (m *Model) reloadHero() tea.Cmd {
	m.Hero = nil
	m.HeroFocused = false
	m.Session.InFlight.Begin(sectionHero)
	return LoadHeroCmd(m.Renderer, m.Session.Generations.Next(sectionHero))
}

// startAdvanced shows the results of an advanced search
func (m *Model) startAdvanced(filter domain.DiscoverFilter) tea.Cmd {
	m.logger.Info("advanced search", "type", filter.MediaType, "genre", filter.GenreID, "sort", filter.SortBy)
	return m.loadView(m.Session.StartAdvanced(filter))
}

// setLanguage switches the UI and catalog language, then reloads the
// current view and the hero
func (m *Model) setLanguage(tag string) tea.Cmd {
	tag = i18n.Match(tag)
	m.tr = i18n.Translator(tag)
	m.Browser.SetTranslator(m.tr)
	m.Omnibar.SetTranslator(m.tr)
	m.Form.SetTranslator(m.tr)
	m.Details.SetTranslator(m.tr)
	if m.langSet != nil {
		m.langSet.SetLanguage(tag)
	}
	m.logger.Info("language changed", "language", tag)

	tok := m.Session.SetLanguage(tag)
	hero := m.reloadHero()
	return tea.Batch(
		hero,
		m.loadView(tok),
		LoadGenresCmd(m.Renderer),
	)
}

// loadMore requests the next page of the paginated row. It is refused
// while a previous page is still loading.
func (m *Model) loadMore() tea.Cmd {
	if m.Session.View == session.ViewResults && m.Session.Advanced == nil {
		return nil
	}
	if !m.Session.InFlight.Begin(sectionMore) {
		return nil
	}
	tok := m.Session.Generations.Latest(m.Session.View.String())
	return LoadMoreCmd(m.Renderer, tok, m.Session.MediaType, m.Session.Advanced, m.Session.Page)
}

func (m *Model) applyMore(msg MoreLoadedMsg) tea.Cmd {
	key, title := view.MoreRowKey, view.MoreRowTitle
	if m.Session.AdvancedActive() {
		key, title = view.ResultsRowKey, view.ResultsRowTitle
	}
	row := m.Renderer.RenderMore(m.Session, msg.Items, key, msg.MediaType)
	if row.Empty() {
		return m.setStatus(m.tr.T("No results found"), false)
	}
	row.Title = title
	m.Browser.ApplyRow(row)
	return nil
}

// openDetails shows the details modal for key. Back navigation passes
// fromHistory so the entry is not pushed again.
func (m *Model) openDetails(key domain.MediaKey, fromHistory bool) tea.Cmd {
	if key.IsZero() {
		return nil
	}
	m.Session.OpenDetails(key, fromHistory)
	m.Details.SetLoading(true)
	m.Session.InFlight.Begin(sectionDetails)
	tok := m.Session.Generations.Next(sectionDetails)
	return LoadDetailsCmd(m.Renderer, tok, key)
}

func (m *Model) applyDetails(msg DetailsLoadedMsg) tea.Cmd {
	pending := m.pendingPlay
	m.pendingPlay = nil

	if msg.Detail == nil {
		m.closeModal()
		return m.setStatus(m.tr.T("No results found"), true)
	}
	m.Details.SetDetail(msg.Detail)

	if pending != nil && *pending == msg.Key {
		return m.play(msg.Detail.Target(m.server))
	}
	return nil
}

// playHero opens the featured title and plays it on the default server
// once its details are in
func (m *Model) playHero() tea.Cmd {
	if m.Hero == nil {
		return nil
	}
	key := m.Hero.Media.Key()
	m.pendingPlay = &key
	return m.openDetails(key, false)
}

// play opens the player panel and launches target
func (m *Model) play(target domain.PlayTarget) tea.Cmd {
	if err := m.Session.Modal.OpenPlayer(); err != nil {
		m.logger.Warn("play refused", "error", err)
		return nil
	}
	m.logger.Info("playing", "id", target.Media.ID, "type", target.Media.Type,
		"server", int(target.Server), "season", target.Season, "episode", target.Episode)
	m.Details.PlayerOpening(target)
	return PlayCmd(m.Player, target)
}

// selectSeason loads another season of the open show
func (m *Model) selectSeason(n int) tea.Cmd {
	d := m.Details.Detail()
	if d == nil || !d.IsTV() {
		return nil
	}
	m.Session.InFlight.Begin(sectionSeason)
	tok := m.Session.Generations.Next(sectionSeason)
	return SelectSeasonCmd(m.Renderer, tok, *d, n)
}

// back reopens the previous entry of the history, or closes the modal
// when there is none
func (m *Model) back() tea.Cmd {
	key, ok := m.Session.Back()
	if !ok {
		m.closeModal()
		return nil
	}
	return m.openDetails(key, true)
}

func (m *Model) closeModal() {
	m.Session.CloseModal()
	m.Details.ClosePlayer()
	m.pendingPlay = nil
	m.Session.Generations.Invalidate(sectionDetails)
	m.Session.Generations.Invalidate(sectionSeason)
}

// handleDetailsAction applies a request from the details modal
func (m *Model) handleDetailsAction(act components.DetailsAction) tea.Cmd {
	switch act.Kind {
	case components.DetailsPlay:
		return m.play(act.Target)
	case components.DetailsSelectSeason:
		return m.selectSeason(act.Season)
	case components.DetailsOpenSimilar:
		return m.openDetails(act.Media, false)
	case components.DetailsBack:
		return m.back()
	case components.DetailsClosePlayer:
		m.Session.Modal.ClosePlayer()
		m.Details.ClosePlayer()
	case components.DetailsClose, components.DetailsCloseAll:
		m.closeModal()
	}
	return nil
}
