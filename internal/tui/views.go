package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/flixhub/internal/session"
	"github.com/mmcdole/flixhub/internal/tui/components"
	"github.com/mmcdole/flixhub/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return m.Spinner.View() + " " + m.tr.T("Loading...")
	}

	// Overlays take the whole screen
	switch {
	case m.ShowHelp:
		return m.renderHelp()
	case m.Session.Modal.IsOpen():
		return m.Details.View()
	case m.Omnibar.IsVisible():
		return m.Omnibar.View()
	case m.Form.IsVisible():
		return m.Form.View()
	}

	var b strings.Builder
	b.WriteString(m.renderNavbar())
	b.WriteString("\n\n")
	if m.showHero() {
		b.WriteString(m.renderHero())
		b.WriteString("\n")
	}
	b.WriteString(m.renderBody())

	body := lipgloss.NewStyle().
		Height(m.Height - FooterHeight).
		MaxHeight(m.Height - FooterHeight).
		Render(b.String())
	return body + "\n" + m.renderFooter()
}

func (m Model) showHero() bool {
	return m.Session.View == session.ViewHome && m.Hero != nil
}

func (m Model) renderNavbar() string {
	active := -1
	switch m.Session.View {
	case session.ViewHome:
		active = 0
	case session.ViewMovies:
		active = 1
	case session.ViewTV:
		active = 2
	}
	return components.Navbar(active, m.Session.Language, m.Session.IsLoading(), m.Width, m.tr)
}

func (m Model) renderHero() string {
	return components.HeroBanner(m.Hero, m.HeroFocused, m.Width, m.tr)
}

func (m Model) renderBody() string {
	if m.Browser.Len() == 0 {
		if m.Session.InFlight.Busy(sectionRows) {
			return "  " + m.Spinner.View() + " " + m.tr.T("Loading...")
		}
		return styles.DimStyle.Render("  " + m.tr.T("No results found"))
	}
	return m.Browser.View(!m.HeroFocused)
}

func (m Model) renderFooter() string {
	if m.StatusMsg != "" {
		style := styles.SuccessStyle
		if m.StatusIsErr {
			style = styles.ErrorStyle
		}
		return style.Render(" " + styles.Truncate(m.StatusMsg, m.Width-2))
	}
	return " " + m.Help.ShortHelpView(Keys.ShortHelp())
}

func (m Model) renderHelp() string {
	content := styles.ModalTitleStyle.Render(m.tr.T("Help")) + "\n" + m.Help.FullHelpView(Keys.FullHelp())
	modal := styles.ModalStyle.Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal)
}
