package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	FlixRed    = lipgloss.Color("#E50914")
	SlateDark  = lipgloss.Color("#141414")
	SlateLight = lipgloss.Color("#2F2F2F")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#B3B3B3")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#46D369")
	Gold       = lipgloss.Color("#F5C518")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(FlixRed)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(FlixRed).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	RatingStyle = lipgloss.NewStyle().
			Foreground(Gold)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(FlixRed).
			Padding(0, 1)
)

// Navbar styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(FlixRed).
			Bold(true).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			Underline(true).
			Padding(0, 1)
)

// Row and card styles
var (
	RowHeaderStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginLeft(1)

	ActiveRowHeaderStyle = lipgloss.NewStyle().
				Foreground(FlixRed).
				Bold(true).
				MarginLeft(1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1).
			Width(CardWidth)

	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FlixRed).
				Padding(0, 1).
				Width(CardWidth)
)

// CardWidth is the inner width of a poster card
const CardWidth = 20

// Hero styles
var (
	HeroStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(FlixRed).
			Padding(0, 2).
			MarginBottom(1)

	HeroFocusedStyle = HeroStyle.
				BorderForeground(White)
)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FlixRed).
			Padding(1, 2).
			Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(SlateDark).
			Background(LightGray).
			Padding(0, 2)

	ButtonFocusedStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(FlixRed).
				Bold(true).
				Padding(0, 2)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(FlixRed)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Badge styles
var (
	BadgeStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(FlixRed).
			Padding(0, 1)

	DimBadgeStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Background(SlateLight).
			Padding(0, 1)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(FlixRed)

	// SpinnerFrames animates spinners drawn outside bubbletea
	SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
)

// Filter styles
var (
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(FlixRed).
				Bold(true)

	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(FlixRed).
				Bold(true)
)

// Truncate shortens s to width cells, ending in an ellipsis when cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		return string(runes[:min(width, len(runes))])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// Pad pads s with spaces to width cells
func Pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Highlight renders the runes of s at the given indexes with the match style
func Highlight(s string, indexes []int) string {
	if len(indexes) == 0 {
		return s
	}
	marked := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		marked[i] = true
	}
	var b strings.Builder
	for i, r := range []rune(s) {
		if marked[i] {
			b.WriteString(MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
