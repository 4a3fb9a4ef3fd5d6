package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/flixhub/internal/i18n"
	"github.com/mmcdole/flixhub/internal/tui/styles"
	"github.com/mmcdole/flixhub/internal/view"
)

// NavTabs are the navbar labels, in view order
var NavTabs = []string{"Home", "Movies", "TV Shows"}

// Navbar renders the top bar. active indexes NavTabs; any other value
// (the advanced results view) highlights no tab.
func Navbar(active int, lang string, loading bool, width int, tr i18n.Translator) string {
	var tabs []string
	for i, label := range NavTabs {
		style := styles.TabStyle
		if i == active {
			style = styles.ActiveTabStyle
		}
		tabs = append(tabs, style.Render(tr.T(label)))
	}

	left := styles.LogoStyle.Render("FLIXHUB") + " " + strings.Join(tabs, "")
	right := styles.DimStyle.Render("f search • a filter • ") + styles.DimBadgeStyle.Render(lang)
	if loading {
		right = styles.SpinnerStyle.Render(tr.T("Loading...")) + "  " + right
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// HeroBanner renders the featured title above the home rows
func HeroBanner(h *view.Hero, focused bool, width int, tr i18n.Translator) string {
	if h == nil {
		return ""
	}

	style := styles.HeroStyle
	if focused {
		style = styles.HeroFocusedStyle
	}

	inner := max(width-6, 20)
	var meta []string
	if y := h.Media.Year(); y != "" {
		meta = append(meta, y)
	}
	meta = append(meta, tr.T(h.Media.Type.Label()))

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(h.Media.Title))
	b.WriteString("  ")
	b.WriteString(styles.DimStyle.Render(strings.Join(meta, " • ")))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(inner).MaxHeight(4).Render(h.Overview))
	b.WriteString("\n\n")

	play := styles.ButtonStyle
	info := styles.ButtonStyle
	if focused {
		play = styles.ButtonFocusedStyle
	}
	b.WriteString(play.Render("▶ " + tr.T("Play (Server 1)")))
	b.WriteString(" ")
	b.WriteString(info.Render("ⓘ " + tr.T("More Info")))
	return style.Render(b.String())
}
