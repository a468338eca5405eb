// Package bandlist renders the scrollable list of bands shown on startup.
package bandlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/turntable/internal/bandapi"
	"github.com/llehouerou/turntable/internal/errmsg"
	"github.com/llehouerou/turntable/internal/icons"
	"github.com/llehouerou/turntable/internal/state"
	"github.com/llehouerou/turntable/internal/ui"
	"github.com/llehouerou/turntable/internal/ui/render"
	"github.com/llehouerou/turntable/internal/ui/styles"
)

// recentRows is the number of play history rows shown under the list.
const recentRows = 5

// Model holds the band list state. The parent resolves keys to actions and
// calls the navigation methods.
type Model struct {
	ui.Base
	bands   []bandapi.Band
	cursor  int
	offset  int
	today   int
	loading bool
	err     error

	recent     []state.Play
	showRecent bool
}

// New creates an empty list waiting for bands.
func New() Model {
	return Model{today: -1, loading: true}
}

// SetBands replaces the bands. today is the index of the band of the day,
// or -1.
func (m *Model) SetBands(bands []bandapi.Band, today int) {
	m.bands = bands
	m.today = today
	m.loading = false
	m.err = nil
	m.cursor = min(m.cursor, max(len(bands)-1, 0))
	m.ensureVisible()
}

// SetLoading marks the list as waiting for the API.
func (m *Model) SetLoading() {
	m.loading = true
	m.err = nil
}

// SetError shows a load failure in place of the list.
func (m *Model) SetError(err error) {
	m.loading = false
	m.err = err
}

// SetRecent replaces the play history shown under the list.
func (m *Model) SetRecent(plays []state.Play) {
	m.recent = plays
}

// ToggleRecent shows or hides the play history.
func (m *Model) ToggleRecent() {
	m.showRecent = !m.showRecent
}

// ShowRecent reports whether the play history is shown.
func (m Model) ShowRecent() bool {
	return m.showRecent
}

// Len returns the number of bands.
func (m Model) Len() int {
	return len(m.bands)
}

// Cursor returns the highlighted row.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the highlighted band.
func (m Model) Selected() (bandapi.Band, bool) {
	if m.cursor < 0 || m.cursor >= len(m.bands) {
		return bandapi.Band{}, false
	}
	return m.bands[m.cursor], true
}

// Today returns the band of the day.
func (m Model) Today() (bandapi.Band, bool) {
	if m.today < 0 || m.today >= len(m.bands) {
		return bandapi.Band{}, false
	}
	return m.bands[m.today], true
}

// IndexOf returns the row of the band with the given id, or -1.
func (m Model) IndexOf(id int) int {
	for i, b := range m.bands {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Move shifts the cursor by delta rows, clamped to the list.
func (m *Model) Move(delta int) {
	m.Jump(m.cursor + delta)
}

// Jump moves the cursor to row i, clamped to the list.
func (m *Model) Jump(i int) {
	if len(m.bands) == 0 {
		return
	}
	m.cursor = min(max(i, 0), len(m.bands)-1)
	m.ensureVisible()
}

// JumpStart moves the cursor to the first band.
func (m *Model) JumpStart() {
	m.Jump(0)
}

// JumpEnd moves the cursor to the last band.
func (m *Model) JumpEnd() {
	m.Jump(len(m.bands) - 1)
}

func (m Model) listHeight() int {
	overhead := ui.PanelOverhead + ui.FooterHeight
	if m.showRecent {
		overhead += recentRows + ui.PanelOverhead
	}
	return m.ListHeight(overhead)
}

// ensureVisible scrolls so the cursor keeps ScrollMargin rows of context.
func (m *Model) ensureVisible() {
	height := m.listHeight()
	margin := min(ui.ScrollMargin, (height-1)/2)

	if m.cursor < m.offset+margin {
		m.offset = m.cursor - margin
	}
	if m.cursor >= m.offset+height-margin {
		m.offset = m.cursor - height + margin + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.bands)-height, 0))
}

// VisibleRange returns the [start, end) rows currently on screen.
func (m Model) VisibleRange() (start, end int) {
	return m.offset, min(m.offset+m.listHeight(), len(m.bands))
}

// View renders the list panel, and the play history panel when shown.
func (m Model) View() string {
	width := m.Width()
	if width == 0 {
		return ""
	}
	s := styles.T().S()
	inner := max(width-4, 10)

	var body []string
	switch {
	case m.err != nil:
		body = append(body, s.Error.Render(render.Truncate(errmsg.Format(errmsg.OpBandsLoad, m.err), inner)))
	case m.loading:
		body = append(body, s.Muted.Render("Loading bands…"))
	case len(m.bands) == 0:
		body = append(body, s.Muted.Render("No bands"))
	default:
		start, end := m.VisibleRange()
		for i := start; i < end; i++ {
			body = append(body, m.renderRow(i, inner))
		}
	}

	title := styles.Title(fmt.Sprintf("Bands (%d)", len(m.bands)))
	out := styles.Panel(width, true).Render(title + "\n" + s.Subtle.Render(render.Separator(inner)) + "\n" + strings.Join(body, "\n"))

	if m.showRecent {
		out += "\n" + m.renderRecent(width, inner)
	}
	return out
}

func (m Model) renderRow(i, width int) string {
	s := styles.T().S()
	b := m.bands[i]

	name := icons.FormatBand(b.Name)
	if i == m.today {
		name = icons.FormatToday(name)
	}
	songs := b.Tracks().Len()
	right := fmt.Sprintf("%s  %s", strings.Join(b.GenreNames(), ", "), pluralSongs(songs))

	nameWidth := max(width-lipgloss.Width(right)-2, width/2)
	line := render.Row(render.TruncateAndPad(name, nameWidth), render.Truncate(right, width-nameWidth-1), width)

	switch {
	case i == m.cursor:
		return s.Cursor.Render(line)
	case i == m.today:
		return s.Playing.Render(line)
	default:
		return s.Base.Render(line)
	}
}

func (m Model) renderRecent(width, inner int) string {
	s := styles.T().S()

	var body []string
	if len(m.recent) == 0 {
		body = append(body, s.Muted.Render("Nothing played yet"))
	}
	for _, p := range m.recent[:min(len(m.recent), recentRows)] {
		left := render.Truncate(icons.FormatSong(p.TrackTitle)+" · "+p.BandName, inner-16)
		when := s.Muted.Render(humanize.Time(p.PlayedAt))
		body = append(body, render.Row(s.Base.Render(left), when, inner))
	}

	title := styles.Title("Recently played")
	return styles.Panel(width, false).Render(title + "\n" + s.Subtle.Render(render.Separator(inner)) + "\n" + strings.Join(body, "\n"))
}

func pluralSongs(n int) string {
	if n == 1 {
		return "1 song"
	}
	return fmt.Sprintf("%d songs", n)
}
