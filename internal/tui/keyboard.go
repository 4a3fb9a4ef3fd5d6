package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flixhub/internal/i18n"
	"github.com/mmcdole/flixhub/internal/session"
	"github.com/mmcdole/flixhub/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.ShowHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	// Route to active modal if any
	if handled, cmd := m.routeToModal(msg); handled {
		return m, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.Omnibar.Show()
		m.Omnibar.SetSize(m.Width, m.Height)
		return m, m.Omnibar.Init()

	case key.Matches(msg, Keys.Discover):
		m.Form.SetSize(m.Width, m.Height)
		return m, m.Form.Show(m.Session.MediaType)

	case key.Matches(msg, Keys.Filter):
		return m, m.Browser.StartFilter()

	case key.Matches(msg, Keys.Home):
		return m, m.switchView(session.ViewHome)

	case key.Matches(msg, Keys.Movies):
		return m, m.switchView(session.ViewMovies)

	case key.Matches(msg, Keys.TV):
		return m, m.switchView(session.ViewTV)

	case key.Matches(msg, Keys.NextTab):
		return m, m.nextView()

	case key.Matches(msg, Keys.Language):
		return m, m.setLanguage(i18n.Next(m.Session.Language))

	case key.Matches(msg, Keys.Play):
		if m.Session.View == session.ViewHome {
			return m, m.playHero()
		}
		return m, nil
	}

	if m.HeroFocused {
		switch {
		case key.Matches(msg, Keys.Down):
			m.HeroFocused = false
		case key.Matches(msg, Keys.Enter):
			if m.Hero != nil {
				return m, m.openDetails(m.Hero.Media.Key(), false)
			}
		}
		return m, nil
	}

	var (
		cmd    tea.Cmd
		action components.BrowserAction
	)
	m.Browser, cmd, action = m.Browser.Update(msg)
	switch action {
	case components.BrowserOpen:
		if card := m.Browser.Selected(); card != nil {
			return m, m.openDetails(card.Key(), false)
		}
	case components.BrowserLoadMore:
		return m, m.loadMore()
	case components.BrowserAbove:
		if m.Session.View == session.ViewHome && m.Hero != nil {
			m.HeroFocused = true
		}
	}
	return m, cmd
}

// routeToModal sends the key to the topmost overlay. It reports false when
// nothing captured input.
func (m *Model) routeToModal(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case m.Session.Modal.IsOpen():
		var (
			cmd tea.Cmd
			act components.DetailsAction
		)
		m.Details, cmd, act = m.Details.Update(msg)
		return true, tea.Batch(cmd, m.handleDetailsAction(act))

	case m.Omnibar.IsVisible():
		var (
			cmd tea.Cmd
			act components.OmnibarAction
		)
		m.Omnibar, cmd, act = m.Omnibar.Update(msg)
		switch act {
		case components.OmnibarSubmit:
			query := m.Omnibar.Query()
			m.Session.InFlight.Begin(sectionSearch)
			tok := m.Session.Generations.Next(sectionSearch)
			return true, SearchCmd(m.Renderer, tok, query)
		case components.OmnibarSelect:
			if r := m.Omnibar.SelectedResult(); r != nil {
				key := r.Media.Key()
				m.Omnibar.Hide()
				return true, m.openDetails(key, false)
			}
		case components.OmnibarClose:
			m.Session.Generations.Invalidate(sectionSearch)
		}
		return true, cmd

	case m.Form.IsVisible():
		var (
			cmd tea.Cmd
			act components.FormAction
		)
		m.Form, cmd, act = m.Form.Update(msg)
		switch act {
		case components.FormSubmit:
			filter, err := m.Form.Filter(m.Genres.For(m.Form.MediaType()))
			if err != nil {
				m.Form.SetError(err)
				return true, nil
			}
			m.Form.Hide()
			return true, m.startAdvanced(filter)
		case components.FormCancel:
			m.Form.Hide()
		}
		return true, cmd

	case m.Browser.IsFiltering():
		var cmd tea.Cmd
		m.Browser, cmd, _ = m.Browser.Update(msg)
		return true, cmd
	}
	return false, nil
}
