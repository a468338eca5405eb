package turntableview

import "github.com/llehouerou/turntable/internal/turntable"

// Menu is the song menu state owned by the view: whether it is shown and
// which song of the visible page is highlighted.
type Menu struct {
	open   bool
	cursor int
}

// Open reports whether the menu is shown.
func (m Menu) Open() bool { return m.open }

// Cursor returns the highlighted song index.
func (m Menu) Cursor() int { return m.cursor }

// Toggle shows or hides the menu. Opening it highlights the current song
// when it is on the visible page.
func (m *Menu) Toggle(s turntable.State) {
	m.open = !m.open
	if m.open {
		if s.HasTrack() && s.OnPage(s.CurrentIndex) {
			m.cursor = s.CurrentIndex
		}
		m.Sync(s)
	}
}

// Move shifts the highlight by delta, staying on the visible page.
func (m *Menu) Move(delta int, s turntable.State) {
	m.cursor += delta
	m.Sync(s)
}

// Sync clamps the highlight into the visible page, e.g. after a page change.
func (m *Menu) Sync(s turntable.State) {
	if s.TrackCount == 0 || s.PageLength <= 0 {
		m.cursor = 0
		return
	}
	start := s.Page * s.PageLength
	end := min(start+s.PageLength, s.TrackCount) - 1
	m.cursor = min(max(m.cursor, start), end)
}
