package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/flixhub/internal/i18n"
	"github.com/mmcdole/flixhub/internal/search"
	"github.com/mmcdole/flixhub/internal/tui/styles"
	"github.com/mmcdole/flixhub/internal/view"
)

// BrowserAction is what the row browser asks its owner to do
type BrowserAction int

const (
	BrowserNone BrowserAction = iota
	BrowserOpen
	BrowserLoadMore
	BrowserAbove // cursor left the first row upward
)

// rowHeight is the rendered height of one row: header plus bordered card
const rowHeight = 6

// Browser shows category rows stacked vertically, each scrolled
// horizontally with its own cursor
type Browser struct {
	rows   []view.Row
	cols   []int // cursor per row
	row    int
	offset int // first visible row

	filtering bool
	filter    textinput.Model
	matches   []search.Match // filter hits of the focused row, nil when unfiltered

	width  int
	height int
	tr     i18n.Translator
}

// NewBrowser creates an empty browser
func NewBrowser(tr i18n.Translator) Browser {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.CharLimit = 60
	return Browser{filter: ti, tr: tr}
}

// SetTranslator switches the UI language
func (b *Browser) SetTranslator(tr i18n.Translator) {
	b.tr = tr
}

// SetSize updates the component dimensions
func (b *Browser) SetSize(width, height int) {
	b.width = width
	b.height = height
	b.clampOffset()
}

// SetRows replaces every row and resets the cursor
func (b *Browser) SetRows(rows []view.Row) {
	b.rows = rows
	b.cols = make([]int, len(rows))
	b.row = 0
	b.offset = 0
	b.ClearFilter()
}

// ApplyRow merges an update into the row with the same key, or appends
// it as a new row. Empty new rows are ignored.
func (b *Browser) ApplyRow(update view.Row) {
	for i, r := range b.rows {
		if r.Key == update.Key {
			b.rows[i] = r.Merge(update)
			if update.Replace {
				b.cols[i] = 0
			}
			b.clampCols(i)
			return
		}
	}
	if update.Empty() {
		return
	}
	b.rows = append(b.rows, update)
	b.cols = append(b.cols, 0)
}

// Rows returns the shown rows
func (b Browser) Rows() []view.Row {
	return b.rows
}

// Len returns the number of rows
func (b Browser) Len() int {
	return len(b.rows)
}

// FocusedRow returns the row under the cursor
func (b Browser) FocusedRow() *view.Row {
	if b.row < 0 || b.row >= len(b.rows) {
		return nil
	}
	return &b.rows[b.row]
}

// Selected returns the card under the cursor
func (b Browser) Selected() *view.Card {
	row := b.FocusedRow()
	if row == nil {
		return nil
	}
	idx := b.cols[b.row]
	if b.matches != nil {
		if idx >= len(b.matches) {
			return nil
		}
		idx = b.matches[idx].Index
	}
	if idx >= len(row.Cards) {
		return nil
	}
	return &row.Cards[idx]
}

// FocusRow moves the cursor to the row with key
func (b *Browser) FocusRow(key string) {
	for i, r := range b.rows {
		if r.Key == key {
			b.row = i
			b.clampOffset()
			return
		}
	}
}

// IsFiltering reports whether the filter input has focus
func (b Browser) IsFiltering() bool {
	return b.filtering
}

// IsFiltered reports whether the focused row is filtered
func (b Browser) IsFiltered() bool {
	return b.matches != nil
}

// StartFilter focuses the filter input for the focused row
func (b *Browser) StartFilter() tea.Cmd {
	if b.FocusedRow() == nil {
		return nil
	}
	b.filtering = true
	b.filter.Placeholder = b.tr.T("Filter")
	b.filter.SetValue("")
	b.matches = nil
	return b.filter.Focus()
}

// ClearFilter drops the filter
func (b *Browser) ClearFilter() {
	b.filtering = false
	b.filter.Blur()
	b.filter.SetValue("")
	b.matches = nil
}

func (b *Browser) applyFilter() {
	row := b.FocusedRow()
	q := strings.TrimSpace(b.filter.Value())
	if row == nil || q == "" {
		b.matches = nil
		return
	}
	titles := make([]string, len(row.Cards))
	for i, c := range row.Cards {
		titles[i] = c.Media.Title
	}
	b.matches = search.FilterTitles(q, titles)
	if b.matches == nil {
		b.matches = []search.Match{}
	}
	b.cols[b.row] = 0
}

func (b Browser) visibleCount(row int) int {
	if b.matches != nil && row == b.row {
		return len(b.matches)
	}
	return len(b.rows[row].Cards)
}

func (b *Browser) clampCols(i int) {
	if n := b.visibleCount(i); b.cols[i] >= n {
		b.cols[i] = max(n-1, 0)
	}
}

func (b *Browser) clampOffset() {
	per := b.rowsPerPage()
	if b.row < b.offset {
		b.offset = b.row
	}
	if b.row >= b.offset+per {
		b.offset = b.row - per + 1
	}
	if b.offset < 0 {
		b.offset = 0
	}
}

func (b Browser) rowsPerPage() int {
	return max(b.height/rowHeight, 1)
}

func (b *Browser) moveRow(delta int) {
	if b.matches != nil {
		b.ClearFilter()
	}
	b.row += delta
	b.clampOffset()
}

// Update handles messages
func (b Browser) Update(msg tea.Msg) (Browser, tea.Cmd, BrowserAction) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if b.filtering {
		if ok {
			switch {
			case key.Matches(keyMsg, BrowserKeys.Escape):
				b.ClearFilter()
				return b, nil, BrowserNone
			case key.Matches(keyMsg, BrowserKeys.Enter):
				b.filtering = false
				b.filter.Blur()
				return b, nil, BrowserNone
			}
		}
		var cmd tea.Cmd
		b.filter, cmd = b.filter.Update(msg)
		b.applyFilter()
		return b, cmd, BrowserNone
	}

	if !ok || len(b.rows) == 0 {
		return b, nil, BrowserNone
	}

	switch {
	case key.Matches(keyMsg, BrowserKeys.Up):
		if b.row == 0 {
			return b, nil, BrowserAbove
		}
		b.moveRow(-1)

	case key.Matches(keyMsg, BrowserKeys.Down):
		if b.row >= len(b.rows)-1 {
			return b, nil, BrowserLoadMore
		}
		b.moveRow(1)

	case key.Matches(keyMsg, BrowserKeys.Left):
		if b.cols[b.row] > 0 {
			b.cols[b.row]--
		}

	case key.Matches(keyMsg, BrowserKeys.Right):
		if b.cols[b.row] < b.visibleCount(b.row)-1 {
			b.cols[b.row]++
		} else if b.row == len(b.rows)-1 {
			return b, nil, BrowserLoadMore
		}

	case key.Matches(keyMsg, BrowserKeys.Home):
		b.cols[b.row] = 0

	case key.Matches(keyMsg, BrowserKeys.End):
		b.cols[b.row] = max(b.visibleCount(b.row)-1, 0)

	case key.Matches(keyMsg, BrowserKeys.More):
		return b, nil, BrowserLoadMore

	case key.Matches(keyMsg, BrowserKeys.Escape):
		if b.matches != nil {
			b.ClearFilter()
		}

	case key.Matches(keyMsg, BrowserKeys.Enter):
		if b.Selected() != nil {
			return b, nil, BrowserOpen
		}
	}
	return b, nil, BrowserNone
}

// View renders the visible rows. focused is false while something else
// (the hero) holds the cursor.
func (b Browser) View(focused bool) string {
	if len(b.rows) == 0 {
		return ""
	}

	var out []string
	end := min(b.offset+b.rowsPerPage(), len(b.rows))
	for i := b.offset; i < end; i++ {
		out = append(out, b.renderRow(i, focused && i == b.row))
	}
	return strings.Join(out, "\n")
}

func (b Browser) renderRow(i int, active bool) string {
	row := b.rows[i]

	header := styles.RowHeaderStyle
	if active {
		header = styles.ActiveRowHeaderStyle
	}
	title := b.tr.T(row.Title)
	if active && (b.filtering || b.matches != nil) {
		title += "  " + b.filter.View()
	}

	type shown struct {
		card    view.Card
		matched []int
	}
	var cards []shown
	if active && b.matches != nil {
		for _, m := range b.matches {
			cards = append(cards, shown{card: row.Cards[m.Index], matched: m.MatchedIndexes})
		}
	} else {
		for _, c := range row.Cards {
			cards = append(cards, shown{card: c})
		}
	}

	cardOuter := styles.CardWidth + 2
	perRow := max(b.width/cardOuter, 1)
	start := 0
	if c := b.cols[i]; c >= perRow {
		start = c - perRow + 1
	}

	var tiles []string
	for j := start; j < len(cards) && j < start+perRow; j++ {
		tiles = append(tiles, renderCard(cards[j].card, cards[j].matched, active && j == b.cols[i]))
	}
	if len(tiles) == 0 {
		tiles = append(tiles, styles.DimStyle.Render("  "+b.tr.T("No results found")))
	}

	count := styles.DimStyle.Render(fmt.Sprintf("(%d)", len(cards)))
	return header.Render(title) + " " + count + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func renderCard(c view.Card, matched []int, selected bool) string {
	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}

	title := styles.Truncate(c.Media.Title, styles.CardWidth-2)
	if len(matched) > 0 && title == c.Media.Title {
		title = styles.Highlight(title, matched)
	}

	meta := c.Media.Year()
	if c.Media.VoteAverage > 0 {
		meta += " " + styles.RatingStyle.Render(fmt.Sprintf("★ %.1f", c.Media.VoteAverage))
	}
	return style.Render(title + "\n" + styles.DimStyle.Render(meta))
}
