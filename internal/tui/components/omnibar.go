package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/flixhub/internal/i18n"
	"github.com/mmcdole/flixhub/internal/tui/styles"
	"github.com/mmcdole/flixhub/internal/view"
)

// OmnibarAction is what the search box asks its owner to do
type OmnibarAction int

const (
	OmnibarNone OmnibarAction = iota
	OmnibarSubmit
	OmnibarSelect
	OmnibarClose
)

// Omnibar is the search modal: type a query, press enter to search, then
// pick one of the results.
type Omnibar struct {
	input     textinput.Model
	results   []view.SearchResult
	submitted string // query of the results shown
	cursor    int
	visible   bool
	loading   bool
	width     int
	height    int
	tr        i18n.Translator
}

// NewOmnibar creates a new omnibar component
func NewOmnibar(tr i18n.Translator) Omnibar {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	o := Omnibar{input: ti}
	o.SetTranslator(tr)
	return o
}

// SetTranslator switches the UI language
func (o *Omnibar) SetTranslator(tr i18n.Translator) {
	o.tr = tr
	o.input.Placeholder = tr.T("Search for movies or TV shows...")
}

// Show makes the omnibar visible and focuses the input
func (o *Omnibar) Show() {
	o.visible = true
	o.input.Focus()
	o.input.SetValue("")
	o.results = nil
	o.submitted = ""
	o.cursor = 0
	o.loading = false
}

// Hide hides the omnibar
func (o *Omnibar) Hide() {
	o.visible = false
	o.input.Blur()
}

// IsVisible returns true if the omnibar is visible
func (o Omnibar) IsVisible() bool {
	return o.visible
}

// SetResults sets the search results for query
func (o *Omnibar) SetResults(query string, results []view.SearchResult) {
	o.results = results
	o.submitted = query
	o.cursor = 0
	o.loading = false
}

// SetLoading sets the loading state
func (o *Omnibar) SetLoading(loading bool) {
	o.loading = loading
}

// SetSize updates the component dimensions
func (o *Omnibar) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.input.Width = max(width/2, 20)
}

// Query returns the trimmed search query
func (o Omnibar) Query() string {
	return strings.TrimSpace(o.input.Value())
}

// SelectedResult returns the highlighted result
func (o Omnibar) SelectedResult() *view.SearchResult {
	if len(o.results) == 0 || o.cursor >= len(o.results) {
		return nil
	}
	return &o.results[o.cursor]
}

// Init initializes the component
func (o Omnibar) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. Enter submits the typed query when it differs
// from the one whose results are shown, otherwise it selects the
// highlighted result.
func (o Omnibar) Update(msg tea.Msg) (Omnibar, tea.Cmd, OmnibarAction) {
	if !o.visible {
		return o, nil, OmnibarNone
	}

	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, OmnibarKeys.Escape):
			o.Hide()
			return o, nil, OmnibarClose

		case key.Matches(msg, OmnibarKeys.Enter):
			q := o.Query()
			if q != "" && q != o.submitted {
				o.loading = true
				return o, nil, OmnibarSubmit
			}
			if o.SelectedResult() != nil {
				return o, nil, OmnibarSelect
			}
			return o, nil, OmnibarNone

		case key.Matches(msg, OmnibarKeys.Down):
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
			return o, nil, OmnibarNone

		case key.Matches(msg, OmnibarKeys.Up):
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, OmnibarNone
		}
	}

	o.input, cmd = o.input.Update(msg)
	return o, cmd, OmnibarNone
}

// View renders the component
func (o Omnibar) View() string {
	if !o.visible {
		return ""
	}

	modalWidth := min(max(o.width*2/3, 40), 80)

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render(o.tr.T("Search")))
	b.WriteString("\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")

	switch {
	case o.loading:
		b.WriteString(styles.SpinnerStyle.Render(o.tr.T("Loading...")))
	case o.submitted != "" && len(o.results) == 0:
		b.WriteString(styles.DimStyle.Render(o.tr.T("No results found")))
	default:
		for i, r := range o.results {
			b.WriteString(o.renderResult(r, i == o.cursor, modalWidth-8))
			b.WriteString("\n")
		}
	}

	content := lipgloss.NewStyle().Width(modalWidth - 4).Render(b.String())
	modal := styles.ModalStyle.Width(modalWidth).Render(content)
	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, modal)
}

func (o Omnibar) renderResult(r view.SearchResult, selected bool, width int) string {
	badge := styles.DimBadgeStyle.Render(o.tr.T(r.Label))
	meta := ""
	if r.Year != "" {
		meta = " • " + r.Year
	}
	title := styles.Truncate(r.Media.Title, width-lipgloss.Width(badge)-len(meta)-2)

	style := styles.NormalItemStyle
	if selected {
		style = styles.SelectedItemStyle
	}
	return fmt.Sprintf("%s %s", badge, style.Render(title+styles.DimStyle.Render(meta)))
}
