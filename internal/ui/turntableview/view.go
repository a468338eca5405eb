// Package turntableview renders the turntable widget: the spinning disc,
// the transport controls, the volume bar and the paginated song menu.
package turntableview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/turntable/internal/audio"
	"github.com/llehouerou/turntable/internal/errmsg"
	"github.com/llehouerou/turntable/internal/icons"
	"github.com/llehouerou/turntable/internal/tracklist"
	"github.com/llehouerou/turntable/internal/turntable"
	"github.com/llehouerou/turntable/internal/ui/render"
	"github.com/llehouerou/turntable/internal/ui/styles"
)

// VolumeBarWidth is the number of cells of the volume bar.
const VolumeBarWidth = 20

// Props is everything needed to render the widget.
type Props struct {
	BandName string
	State    turntable.State
	List     *tracklist.List
	Info     audio.Info
	Menu     Menu
	Width    int
}

// Render draws the widget centered in Width cells.
func Render(p Props) string {
	s := styles.T().S()
	width := max(p.Width, 30)

	var lines []string
	lines = append(lines, render.Center(styles.Title(render.Truncate(p.BandName, width)), width), "")

	if p.List.IsEmpty() {
		lines = append(lines, render.Center(s.Muted.Render("No songs for this band"), width))
		return strings.Join(lines, "\n")
	}

	track, _ := p.List.At(p.State.CurrentIndex)

	for line := range strings.SplitSeq(RenderDisc(p.State.DiscAngle(), track.HasArtwork()), "\n") {
		lines = append(lines, render.Center(line, width))
	}
	lines = append(lines,
		render.Center(carousel(p, width), width),
		render.Center(nowPlaying(p, width), width),
		"",
		render.Center(transport(p.State), width),
		render.Center(volumeBar(p.State.Volume), width),
	)

	if p.Menu.Open() {
		lines = append(lines, "")
		for _, line := range menuLines(p, width) {
			lines = append(lines, render.Center(line, width))
		}
	}

	if p.State.LastError != nil {
		msg := errmsg.FormatWith(errmsg.OpPlaybackStart, track.Title, p.State.LastError)
		lines = append(lines, "", render.Center(s.Error.Render(render.Truncate(msg, width)), width))
	}

	return strings.Join(lines, "\n")
}

// carousel shows the current song between its neighbors. The arrow points
// the way the records slid on the last skip.
func carousel(p Props, width int) string {
	s := styles.T().S()
	n := p.List.Len()
	cur := p.State.CurrentIndex
	slot := max((width-8)/3, 4)

	current, _ := p.List.At(cur)
	middle := s.Playing.Render(render.Truncate(current.Title, slot))
	if n == 1 {
		return middle
	}

	prev, _ := p.List.At((cur - 1 + n) % n)
	next, _ := p.List.At((cur + 1) % n)
	left := s.Subtle.Render(render.TruncateAndPad(prev.Title, slot))
	right := s.Subtle.Render(render.TruncateAndPad(next.Title, slot))

	arrow := "›"
	if p.State.Frame((cur+1)%n).Offset < 0 {
		arrow = "‹"
	}
	arrow = s.Muted.Render(arrow)
	return left + " " + arrow + " " + render.Center(middle, slot) + " " + arrow + " " + right
}

func nowPlaying(p Props, width int) string {
	s := styles.T().S()

	var status string
	switch {
	case p.State.Starting:
		status = s.Warning.Render("Starting…")
	case p.State.Phase() == turntable.Playing:
		status = s.Success.Render("Playing")
	case p.State.Phase() == turntable.Paused:
		status = s.Muted.Render("Paused")
	default:
		status = s.Subtle.Render("Stopped")
	}

	var meta []string
	if p.Info.Artist != "" {
		meta = append(meta, p.Info.Artist)
	}
	if p.Info.Album != "" {
		meta = append(meta, p.Info.Album)
	}
	if p.Info.Duration > 0 {
		meta = append(meta, formatDuration(p.Info.Position)+" / "+formatDuration(p.Info.Duration))
	}
	pos := fmt.Sprintf("%d/%d", p.State.CurrentIndex+1, p.State.TrackCount)

	line := status + s.Subtle.Render("  "+pos)
	if len(meta) > 0 {
		line += s.Muted.Render("  " + render.Truncate(strings.Join(meta, " · "), width-20))
	}
	return line
}

func transport(st turntable.State) string {
	s := styles.T().S()
	button := func(icon string, active bool) string {
		if active {
			return s.Playing.Render(icon)
		}
		return s.Base.Render(icon)
	}
	parts := []string{
		button(icons.Back(), false),
		button(icons.PlayPause(st.IsPlaying || st.Starting), st.IsPlaying),
		button(icons.Forward(), false),
		s.Muted.Render(icons.List()),
	}
	return strings.Join(parts, "   ")
}

func volumeBar(level int) string {
	s := styles.T().S()
	filled := level * VolumeBarWidth / 100
	return s.Muted.Render(icons.Volume(level)) + " " +
		styles.GradientBar(VolumeBarWidth, filled, "█", "░") +
		s.Muted.Render(fmt.Sprintf(" %3d%%", level))
}

func menuLines(p Props, width int) []string {
	s := styles.T().S()
	st := p.State
	win := p.List.Page(st.Page, st.PageLength)
	inner := min(width-4, 48)

	lines := []string{s.Title.Render(icons.List() + " Songs")}
	for i, t := range win.Tracks {
		idx := win.Start + i
		marker := "  "
		if idx == st.CurrentIndex {
			// play glyph while playing, pause glyph while paused
			marker = icons.PlayPause(!st.IsPlaying) + " "
			if lipgloss.Width(marker) < 2 {
				marker += " "
			}
		}
		text := render.TruncateAndPad(fmt.Sprintf("%2d. %s", idx+1, t.Title), inner-lipgloss.Width(marker))
		line := marker + text
		switch {
		case idx == p.Menu.Cursor():
			line = s.Cursor.Render(line)
		case idx == st.CurrentIndex:
			line = s.Playing.Render(line)
		default:
			line = s.Base.Render(line)
		}
		lines = append(lines, line)
	}

	var prev, next string
	if st.Page > 0 {
		prev = "[ prev"
	}
	if st.Page < st.PageCount-1 {
		next = "next ]"
	}
	footer := render.Row(prev, fmt.Sprintf("page %d/%d", st.Page+1, max(st.PageCount, 1))+"  "+next, inner)
	lines = append(lines, s.Subtle.Render(footer))
	return lines
}

func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
