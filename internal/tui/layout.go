package tui

import "github.com/charmbracelet/lipgloss"

// Vertical chrome around the browser
const (
	NavbarHeight = 2 // bar plus spacer
	FooterHeight = 1
	MinBrowser   = 6
)

// heroHeight returns the rendered height of the hero banner, zero when it
// is not shown
func (m Model) heroHeight() int {
	if !m.showHero() {
		return 0
	}
	return lipgloss.Height(m.renderHero())
}

// updateLayout propagates the terminal size to the components
func (m *Model) updateLayout() {
	if !m.Ready {
		return
	}
	browserHeight := max(m.Height-NavbarHeight-FooterHeight-m.heroHeight(), MinBrowser)
	m.Browser.SetSize(m.Width, browserHeight)
	m.Omnibar.SetSize(m.Width, m.Height)
	m.Form.SetSize(m.Width, m.Height)
	m.Details.SetSize(m.Width, m.Height)
	m.Help.Width = m.Width
}
