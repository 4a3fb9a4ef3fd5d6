package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/i18n"
	"github.com/mmcdole/flixhub/internal/tui/styles"
	"github.com/mmcdole/flixhub/internal/view"
)

// DetailsZone is the focusable section of the details modal
type DetailsZone int

const (
	ZoneActions DetailsZone = iota
	ZoneSeasons
	ZoneEpisodes
	ZoneSimilar
)

// DetailsActionKind is what the modal asks its owner to do
type DetailsActionKind int

const (
	DetailsNone DetailsActionKind = iota
	DetailsPlay
	DetailsSelectSeason
	DetailsOpenSimilar
	DetailsBack
	DetailsClose
	DetailsClosePlayer
	DetailsCloseAll
)

// DetailsAction carries the payload of a modal request
type DetailsAction struct {
	Kind   DetailsActionKind
	Target domain.PlayTarget // DetailsPlay
	Season int               // DetailsSelectSeason
	Media  domain.MediaKey   // DetailsOpenSimilar
}

type playerPhase int

const (
	playerHidden playerPhase = iota
	playerOpening
	playerOpen
	playerFailed
)

// DetailsModal shows a title's details, its seasons and episodes, similar
// titles, and the player panel
type DetailsModal struct {
	detail  *view.DetailView
	loading bool

	zone      DetailsZone
	action    int // 0 = server 1, 1 = server 2
	seasonIdx int
	episode   int
	similar   int

	phase        playerPhase
	playerTarget domain.PlayTarget
	playerURL    string

	body   viewport.Model
	width  int
	height int
	tr     i18n.Translator
}

// NewDetailsModal creates an empty details modal
func NewDetailsModal(tr i18n.Translator) DetailsModal {
	return DetailsModal{body: viewport.New(60, 20), tr: tr}
}

// SetTranslator switches the UI language
func (d *DetailsModal) SetTranslator(tr i18n.Translator) {
	d.tr = tr
	d.refresh()
}

// SetSize updates the component dimensions
func (d *DetailsModal) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.body.Width = d.modalWidth() - 6
	d.body.Height = max(height-12, 5)
	d.refresh()
}

func (d DetailsModal) modalWidth() int {
	return min(max(d.width*4/5, 50), 110)
}

// SetLoading shows the loading state for a details fetch
func (d *DetailsModal) SetLoading(loading bool) {
	d.loading = loading
	if loading {
		d.detail = nil
		d.phase = playerHidden
	}
	d.refresh()
}

// SetDetail shows a freshly loaded detail view
func (d *DetailsModal) SetDetail(v *view.DetailView) {
	d.detail = v
	d.loading = false
	d.zone = ZoneActions
	d.action = 0
	d.seasonIdx = 0
	d.episode = 0
	d.similar = 0
	d.phase = playerHidden
	d.body.GotoTop()
	d.refresh()
}

// UpdateDetail replaces the shown view after a season change, keeping focus
func (d *DetailsModal) UpdateDetail(v view.DetailView) {
	d.detail = &v
	d.episode = 0
	for i, s := range v.Seasons {
		if s.Number == v.Season {
			d.seasonIdx = i
		}
	}
	d.refresh()
}

// Detail returns the shown detail view
func (d DetailsModal) Detail() *view.DetailView {
	return d.detail
}

// PlayerOpening shows the player panel while the launch is pending
func (d *DetailsModal) PlayerOpening(target domain.PlayTarget) {
	d.phase = playerOpening
	d.playerTarget = target
	d.playerURL = ""
	d.refresh()
}

// PlayerOpened shows the launched URL
func (d *DetailsModal) PlayerOpened(target domain.PlayTarget, url string) {
	d.phase = playerOpen
	d.playerTarget = target
	d.playerURL = url
	d.refresh()
}

// PlayerFailed shows the error panel offering the other server
func (d *DetailsModal) PlayerFailed(target domain.PlayTarget) {
	d.phase = playerFailed
	d.playerTarget = target
	d.refresh()
}

// ClosePlayer hides the player panel
func (d *DetailsModal) ClosePlayer() {
	d.phase = playerHidden
	d.refresh()
}

// PlayerFailedTarget returns the target of a failed launch, if any
func (d DetailsModal) PlayerFailedTarget() (domain.PlayTarget, bool) {
	return d.playerTarget, d.phase == playerFailed
}

// Zone returns the focused section
func (d DetailsModal) Zone() DetailsZone {
	return d.zone
}

func (d DetailsModal) zones() []DetailsZone {
	zones := []DetailsZone{ZoneActions}
	if d.detail != nil && len(d.detail.Seasons) > 0 {
		zones = append(zones, ZoneSeasons)
		if len(d.detail.Episodes) > 0 {
			zones = append(zones, ZoneEpisodes)
		}
	}
	if d.detail != nil && len(d.detail.Similar) > 0 {
		zones = append(zones, ZoneSimilar)
	}
	return zones
}

func (d *DetailsModal) nextZone() {
	zones := d.zones()
	for i, z := range zones {
		if z == d.zone {
			d.zone = zones[(i+1)%len(zones)]
			return
		}
	}
	d.zone = ZoneActions
}

// Update handles messages
func (d DetailsModal) Update(msg tea.Msg) (DetailsModal, tea.Cmd, DetailsAction) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		d.body, cmd = d.body.Update(msg)
		return d, cmd, DetailsAction{}
	}

	switch {
	case key.Matches(keyMsg, DetailsKeys.Close):
		return d, nil, DetailsAction{Kind: DetailsCloseAll}
	case key.Matches(keyMsg, DetailsKeys.Escape):
		if d.phase == playerOpen || d.phase == playerOpening {
			return d, nil, DetailsAction{Kind: DetailsClosePlayer}
		}
		return d, nil, DetailsAction{Kind: DetailsClose}
	case key.Matches(keyMsg, DetailsKeys.Back):
		return d, nil, DetailsAction{Kind: DetailsBack}
	}

	if d.detail == nil {
		return d, nil, DetailsAction{}
	}

	if d.phase == playerFailed && key.Matches(keyMsg, DetailsKeys.Switch) {
		other := d.playerTarget.WithServer(d.playerTarget.Server.Other())
		return d, nil, DetailsAction{Kind: DetailsPlay, Target: other}
	}

	switch {
	case key.Matches(keyMsg, DetailsKeys.ScrollU):
		d.body.HalfViewUp()
		return d, nil, DetailsAction{}
	case key.Matches(keyMsg, DetailsKeys.ScrollD):
		d.body.HalfViewDown()
		return d, nil, DetailsAction{}

	case key.Matches(keyMsg, DetailsKeys.Play1):
		return d, nil, DetailsAction{Kind: DetailsPlay, Target: d.playTarget(domain.Server1)}
	case key.Matches(keyMsg, DetailsKeys.Play2):
		return d, nil, DetailsAction{Kind: DetailsPlay, Target: d.playTarget(domain.Server2)}

	case key.Matches(keyMsg, DetailsKeys.Focus):
		d.nextZone()

	case key.Matches(keyMsg, DetailsKeys.Left), key.Matches(keyMsg, DetailsKeys.Up):
		if act := d.move(-1, key.Matches(keyMsg, DetailsKeys.Up)); act.Kind != DetailsNone {
			d.refresh()
			return d, nil, act
		}

	case key.Matches(keyMsg, DetailsKeys.Right), key.Matches(keyMsg, DetailsKeys.Down):
		if act := d.move(1, key.Matches(keyMsg, DetailsKeys.Down)); act.Kind != DetailsNone {
			d.refresh()
			return d, nil, act
		}

	case key.Matches(keyMsg, DetailsKeys.Enter):
		return d, nil, d.activate()
	}

	d.refresh()
	return d, nil, DetailsAction{}
}

// playTarget is what the play keys start: the focused episode inside the
// episode list, otherwise the header target of the selected season
func (d DetailsModal) playTarget(s domain.Server) domain.PlayTarget {
	if d.zone == ZoneEpisodes && d.episode < len(d.detail.Episodes) {
		return d.detail.EpisodeTarget(d.detail.Episodes[d.episode].Number, s)
	}
	return d.detail.Target(s)
}

func (d *DetailsModal) move(delta int, vertical bool) DetailsAction {
	switch d.zone {
	case ZoneActions:
		if !vertical {
			d.action = clamp(d.action+delta, 0, 1)
		}
	case ZoneSeasons:
		next := clamp(d.seasonIdx+delta, 0, len(d.detail.Seasons)-1)
		if next != d.seasonIdx {
			d.seasonIdx = next
			return DetailsAction{Kind: DetailsSelectSeason, Season: d.detail.Seasons[next].Number}
		}
	case ZoneEpisodes:
		d.episode = clamp(d.episode+delta, 0, len(d.detail.Episodes)-1)
	case ZoneSimilar:
		d.similar = clamp(d.similar+delta, 0, len(d.detail.Similar)-1)
	}
	return DetailsAction{}
}

func (d DetailsModal) activate() DetailsAction {
	switch d.zone {
	case ZoneActions:
		server := domain.Server1
		if d.action == 1 {
			server = domain.Server2
		}
		return DetailsAction{Kind: DetailsPlay, Target: d.detail.Target(server)}
	case ZoneEpisodes:
		return DetailsAction{Kind: DetailsPlay, Target: d.playTarget(domain.Server1)}
	case ZoneSimilar:
		if d.similar < len(d.detail.Similar) {
			return DetailsAction{Kind: DetailsOpenSimilar, Media: d.detail.Similar[d.similar].Key()}
		}
	}
	return DetailsAction{}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// refresh re-renders the scrollable body and keeps the cursor in view
func (d *DetailsModal) refresh() {
	content, cursorLine := d.renderBody()
	d.body.SetContent(content)
	if cursorLine >= 0 && d.body.Height > 0 {
		if cursorLine < d.body.YOffset {
			d.body.SetYOffset(cursorLine)
		} else if cursorLine >= d.body.YOffset+d.body.Height {
			d.body.SetYOffset(cursorLine - d.body.Height + 1)
		}
	}
}

func (d DetailsModal) renderBody() (string, int) {
	if d.detail == nil {
		return "", -1
	}
	v := d.detail
	t := d.tr.T
	width := max(d.body.Width, 20)

	var lines []string
	cursor := -1
	add := func(s string) { lines = append(lines, s) }

	// meta line: year · rating · runtime
	var meta []string
	if y := v.Details.Year(); y != "" {
		meta = append(meta, y)
	}
	meta = append(meta, styles.DimBadgeStyle.Render(v.Rating))
	if rt := v.Runtime(); rt != "" {
		meta = append(meta, rt)
	}
	if v.Details.VoteAverage > 0 {
		meta = append(meta, styles.RatingStyle.Render(fmt.Sprintf("★ %.1f", v.Details.VoteAverage)))
	}
	add(strings.Join(meta, "  "))
	add("")

	if d.phase != playerHidden {
		for _, l := range strings.Split(d.renderPlayer(), "\n") {
			add(l)
		}
		add("")
	}

	// play buttons
	labels := []string{t("Play (Server 1)"), t("Play (Server 2)")}
	if v.IsTV() {
		labels = []string{
			fmt.Sprintf("%s S%d:E%d", t("Play Episode (Server 1)"), v.Primary.Season, v.Primary.Episode),
			fmt.Sprintf("%s S%d:E%d", t("Play Episode (Server 2)"), v.Secondary.Season, v.Secondary.Episode),
		}
	}
	var buttons []string
	for i, l := range labels {
		style := styles.ButtonStyle
		if d.zone == ZoneActions && d.action == i {
			style = styles.ButtonFocusedStyle
		}
		buttons = append(buttons, style.Render(l))
	}
	if d.zone == ZoneActions {
		cursor = len(lines)
	}
	add(strings.Join(buttons, " "))
	add("")

	if v.Details.Overview != "" {
		add(lipgloss.NewStyle().Width(width).Render(v.Details.Overview))
		add("")
	}
	if cast := v.Cast(); len(cast) > 0 {
		add(styles.DimStyle.Render(t("Cast")+": ") + strings.Join(cast, ", "))
	}
	if g := v.Details.GenreNames(); g != "" {
		add(styles.DimStyle.Render(t("Genre")+": ") + g)
	}

	if len(v.Seasons) > 0 {
		add("")
		var tabs []string
		for i, s := range v.Seasons {
			style := styles.TabStyle
			if i == d.seasonIdx {
				style = styles.ActiveTabStyle
				if d.zone == ZoneSeasons {
					style = style.Foreground(styles.FlixRed)
				}
			}
			tabs = append(tabs, style.Render(s.DisplayName()))
		}
		if d.zone == ZoneSeasons {
			cursor = len(lines)
		}
		add(styles.SubtitleStyle.Render(t("Seasons")+": ") + strings.Join(tabs, ""))

		if len(v.Episodes) == 0 {
			add(styles.DimStyle.Render("  " + t("No results found")))
		}
		for i, ep := range v.Episodes {
			line := fmt.Sprintf("%2d. %s", ep.Number, ep.Name)
			style := styles.NormalItemStyle
			if d.zone == ZoneEpisodes && i == d.episode {
				style = styles.SelectedItemStyle
				cursor = len(lines)
			}
			add(style.Render(styles.Truncate(line, width-4)))
		}
	}

	if len(v.Similar) > 0 {
		add("")
		if d.zone == ZoneSimilar {
			cursor = len(lines)
		}
		add(styles.TitleStyle.Render(t("More Like This")))
		var tiles []string
		perRow := max(width/(styles.CardWidth+2), 1)
		start := 0
		if d.similar >= perRow {
			start = d.similar - perRow + 1
		}
		for i := start; i < len(v.Similar) && i < start+perRow; i++ {
			tiles = append(tiles, renderCard(v.Similar[i], nil, d.zone == ZoneSimilar && i == d.similar))
		}
		for _, l := range strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, tiles...), "\n") {
			add(l)
		}
	}

	return strings.Join(lines, "\n"), cursor
}

func (d DetailsModal) renderPlayer() string {
	t := d.tr.T
	target := d.playerTarget
	where := fmt.Sprintf("%s %d", t("Server"), int(target.Server))
	if target.Media.Type == domain.MediaTypeTV {
		where = fmt.Sprintf("S%d:E%d • %s", target.Season, target.Episode, where)
	}

	switch d.phase {
	case playerOpening:
		return styles.SpinnerStyle.Render(t("Loading...")) + " " + styles.DimStyle.Render(where)
	case playerOpen:
		return styles.SuccessStyle.Render("▶ "+t("Opened in browser")) + "  " + styles.DimStyle.Render(where) +
			"\n" + styles.DimStyle.Render(d.playerURL) +
			"\n" + styles.DimStyle.Render("esc "+t("Close"))
	case playerFailed:
		return styles.ErrorStyle.Render(t("Unable to load player")) + "  " + styles.DimStyle.Render(where) +
			"\n" + styles.DimStyle.Render("s "+t("Try the other server"))
	}
	return ""
}

// View renders the modal
func (d DetailsModal) View() string {
	var b strings.Builder
	switch {
	case d.loading || d.detail == nil:
		b.WriteString(styles.SpinnerStyle.Render(d.tr.T("Loading...")))
	default:
		b.WriteString(styles.ModalTitleStyle.Render(d.detail.Details.Title))
		b.WriteString("\n")
		b.WriteString(d.body.View())
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("tab section • p/P play • b " + d.tr.T("Back") + " • esc " + d.tr.T("Close")))
	}

	modal := styles.ModalStyle.Width(d.modalWidth()).Render(b.String())
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, modal)
}
