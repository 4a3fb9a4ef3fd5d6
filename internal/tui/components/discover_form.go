package components

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/i18n"
	"github.com/mmcdole/flixhub/internal/search"
	"github.com/mmcdole/flixhub/internal/tui/styles"
)

// FormError is a validation failure shown inside the form. Key is the
// UI string it is displayed as.
type FormError struct {
	Key string
}

func (e *FormError) Error() string {
	return strings.ToLower(e.Key)
}

// Form validation errors
var (
	ErrGenreNotFound = &FormError{Key: "Genre not found"}
	ErrInvalidYear   = &FormError{Key: "Invalid year"}
	ErrInvalidRating = &FormError{Key: "Invalid rating"}
)

// FormAction is what the form asks its owner to do
type FormAction int

const (
	FormNone FormAction = iota
	FormSubmit
	FormCancel
)

type formField int

const (
	fieldMediaType formField = iota
	fieldGenre
	fieldRating
	fieldCountry
	fieldYearFrom
	fieldYearTo
	fieldSortBy
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldMediaType: "Media Type",
	fieldGenre:     "Genre",
	fieldRating:    "Minimum Rating",
	fieldCountry:   "Country",
	fieldYearFrom:  "Year From",
	fieldYearTo:    "Year To",
	fieldSortBy:    "Sort By",
}

// SortOption pairs a discover sort order with its label
type SortOption struct {
	Value string
	Label string
}

// SortOptions lists the selectable sort orders
var SortOptions = []SortOption{
	{domain.SortPopularityDesc, "Popularity (Descending)"},
	{domain.SortRatingDesc, "Rating (Descending)"},
	{domain.SortNewestFirst, "Year (Newest First)"},
	{domain.SortOldestFirst, "Year (Oldest First)"},
}

var formMediaTypes = []domain.MediaType{domain.MediaTypeMovie, domain.MediaTypeTV}

// DiscoverForm is the advanced search modal
type DiscoverForm struct {
	inputs    map[formField]*textinput.Model
	mediaType int
	sortBy    int
	focus     formField
	visible   bool
	err       error
	width     int
	height    int
	tr        i18n.Translator
}

// NewDiscoverForm creates a new advanced search form
func NewDiscoverForm(tr i18n.Translator) DiscoverForm {
	f := DiscoverForm{inputs: make(map[formField]*textinput.Model), tr: tr}
	for _, field := range []formField{fieldGenre, fieldRating, fieldCountry, fieldYearFrom, fieldYearTo} {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 24
		ti.PlaceholderStyle = styles.DimStyle
		switch field {
		case fieldRating:
			ti.CharLimit = 4
			ti.Placeholder = "7.5"
		case fieldCountry:
			ti.CharLimit = 2
		case fieldYearFrom, fieldYearTo:
			ti.CharLimit = 4
			ti.Placeholder = "YYYY"
		default:
			ti.CharLimit = 40
		}
		f.inputs[field] = &ti
	}
	f.SetTranslator(tr)
	return f
}

// SetTranslator switches the UI language
func (f *DiscoverForm) SetTranslator(tr i18n.Translator) {
	f.tr = tr
	f.inputs[fieldGenre].Placeholder = tr.T("All Genres")
	f.inputs[fieldCountry].Placeholder = tr.T("All Countries")
}

// Show opens the form, keeping the last entered values
func (f *DiscoverForm) Show(mediaType domain.MediaType) tea.Cmd {
	f.visible = true
	f.err = nil
	for i, t := range formMediaTypes {
		if t == mediaType {
			f.mediaType = i
		}
	}
	return f.setFocus(fieldMediaType)
}

// Hide closes the form
func (f *DiscoverForm) Hide() {
	f.visible = false
	for _, in := range f.inputs {
		in.Blur()
	}
}

// IsVisible returns true if the form is shown
func (f DiscoverForm) IsVisible() bool {
	return f.visible
}

// SetError shows a validation error
func (f *DiscoverForm) SetError(err error) {
	f.err = err
}

// SetSize updates the component dimensions
func (f *DiscoverForm) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// MediaType returns the selected media type
func (f DiscoverForm) MediaType() domain.MediaType {
	return formMediaTypes[f.mediaType]
}

// SetValue fills a text field by its label ("Genre", "Year From", ...)
func (f *DiscoverForm) SetValue(label, value string) {
	for field, l := range fieldLabels {
		if l == label {
			if in, ok := f.inputs[formField(field)]; ok {
				in.SetValue(value)
			}
		}
	}
}

func (f *DiscoverForm) setFocus(field formField) tea.Cmd {
	f.focus = field
	var cmd tea.Cmd
	for fld, in := range f.inputs {
		if fld == field {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

// Filter validates the entered values against the genres of the chosen
// media type and builds the discover filter
func (f DiscoverForm) Filter(genres []domain.Genre) (domain.DiscoverFilter, error) {
	filter := domain.DiscoverFilter{
		MediaType: f.MediaType(),
		SortBy:    SortOptions[f.sortBy].Value,
	}

	if g := strings.TrimSpace(f.inputs[fieldGenre].Value()); g != "" {
		genre, ok := search.ResolveGenre(g, genres)
		if !ok {
			return filter, ErrGenreNotFound
		}
		filter.GenreID = genre.ID
	}

	if r := strings.TrimSpace(f.inputs[fieldRating].Value()); r != "" {
		rating, err := strconv.ParseFloat(strings.ReplaceAll(r, ",", "."), 64)
		if err != nil || rating < 0 || rating > 10 {
			return filter, ErrInvalidRating
		}
		filter.MinRating = rating
	}

	filter.Country = strings.ToUpper(strings.TrimSpace(f.inputs[fieldCountry].Value()))

	var err error
	if filter.YearFrom, err = parseYear(f.inputs[fieldYearFrom].Value()); err != nil {
		return filter, err
	}
	if filter.YearTo, err = parseYear(f.inputs[fieldYearTo].Value()); err != nil {
		return filter, err
	}
	if filter.YearFrom > 0 && filter.YearTo > 0 && filter.YearFrom > filter.YearTo {
		return filter, ErrInvalidYear
	}
	return filter, nil
}

func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1870 || y > 2200 {
		return 0, ErrInvalidYear
	}
	return y, nil
}

// Update handles messages
func (f DiscoverForm) Update(msg tea.Msg) (DiscoverForm, tea.Cmd, FormAction) {
	if !f.visible {
		return f, nil, FormNone
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, FormKeys.Escape):
			f.Hide()
			return f, nil, FormCancel

		case key.Matches(keyMsg, FormKeys.Submit):
			f.err = nil
			return f, nil, FormSubmit

		case key.Matches(keyMsg, FormKeys.Next):
			return f, f.setFocus((f.focus + 1) % fieldCount), FormNone

		case key.Matches(keyMsg, FormKeys.Prev):
			return f, f.setFocus((f.focus + fieldCount - 1) % fieldCount), FormNone

		case key.Matches(keyMsg, FormKeys.Cycle) && (f.focus == fieldMediaType || f.focus == fieldSortBy):
			step := 1
			if keyMsg.String() == "left" {
				step = -1
			}
			if f.focus == fieldMediaType {
				f.mediaType = (f.mediaType + step + len(formMediaTypes)) % len(formMediaTypes)
			} else {
				f.sortBy = (f.sortBy + step + len(SortOptions)) % len(SortOptions)
			}
			return f, nil, FormNone
		}
	}

	if in, ok := f.inputs[f.focus]; ok {
		updated, cmd := in.Update(msg)
		*in = updated
		return f, cmd, FormNone
	}
	return f, nil, FormNone
}

// View renders the form
func (f DiscoverForm) View() string {
	if !f.visible {
		return ""
	}

	labelWidth := 0
	for _, l := range fieldLabels {
		labelWidth = max(labelWidth, lipgloss.Width(f.tr.T(l)))
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render(f.tr.T("Advanced Search")))
	b.WriteString("\n")

	for field := formField(0); field < fieldCount; field++ {
		label := styles.Pad(f.tr.T(fieldLabels[field]), labelWidth)
		labelStyle := styles.SubtitleStyle
		if field == f.focus {
			labelStyle = styles.AccentStyle
		}

		var value string
		switch field {
		case fieldMediaType:
			value = f.option(f.tr.T(formMediaTypes[f.mediaType].Label()), field)
		case fieldSortBy:
			value = f.option(f.tr.T(SortOptions[f.sortBy].Label), field)
		default:
			value = f.inputs[field].View()
		}
		b.WriteString(labelStyle.Render(label) + "  " + value + "\n")
	}

	if f.err != nil {
		msg := f.err.Error()
		var fe *FormError
		if errors.As(f.err, &fe) {
			msg = f.tr.T(fe.Key)
		}
		b.WriteString("\n" + styles.ErrorStyle.Render(msg))
	}
	b.WriteString("\n" + styles.DimStyle.Render("enter "+f.tr.T("Search")+" • esc "+f.tr.T("Cancel")))

	modal := styles.ModalStyle.Render(b.String())
	return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, modal)
}

func (f DiscoverForm) option(label string, field formField) string {
	if field == f.focus {
		return styles.HighlightStyle.Render("‹ " + label + " ›")
	}
	return styles.TitleStyle.Render(label)
}
