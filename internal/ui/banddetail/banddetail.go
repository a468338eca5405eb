// Package banddetail renders the facts panel of the band detail view.
package banddetail

import (
	"strings"

	"github.com/llehouerou/turntable/internal/bandapi"
	"github.com/llehouerou/turntable/internal/ui/render"
	"github.com/llehouerou/turntable/internal/ui/styles"
)

// field is one labeled fact. Empty values are skipped.
type field struct {
	label string
	value string
}

// Render draws the band facts in a panel of the given width. Long text is
// wrapped; list fields are shown one entry per line.
func Render(b *bandapi.Band, width int) string {
	if b == nil || width <= 0 {
		return ""
	}
	s := styles.T().S()
	inner := max(width-4, 10)
	labelWidth := 10

	facts := []field{
		{"Formed", b.FormationDate},
		{"Debut", b.DebutDate},
		{"Genre", strings.Join(b.GenreNames(), ", ")},
		{"Members", strings.Join(b.MemberNames(), ", ")},
	}

	lines := []string{styles.Title(render.Truncate(b.Name, inner)), s.Subtle.Render(render.Separator(inner))}
	for _, f := range facts {
		if strings.TrimSpace(f.value) == "" {
			continue
		}
		lines = append(lines, labeled(f.label, f.value, labelWidth, inner)...)
	}

	for _, section := range []struct {
		title string
		items []string
	}{
		{"Members", b.MemberDetails()},
		{"Albums", splitList(b.Albums)},
		{"Awards", splitList(b.Awards)},
	} {
		if len(section.items) == 0 {
			continue
		}
		lines = append(lines, "", s.Title.Render(section.title))
		for _, item := range section.items {
			for l := range strings.SplitSeq(render.Wrap("• "+item, inner), "\n") {
				lines = append(lines, s.Base.Render(l))
			}
		}
	}

	if intro := strings.TrimSpace(b.Introduction); intro != "" {
		lines = append(lines, "", s.Title.Render("About"))
		for l := range strings.SplitSeq(render.Wrap(intro, inner), "\n") {
			lines = append(lines, s.Muted.Render(l))
		}
	}

	return styles.Panel(width, false).Render(strings.Join(lines, "\n"))
}

// labeled renders "Label     value", wrapping value under itself.
func labeled(label, value string, labelWidth, width int) []string {
	s := styles.T().S()
	valueWidth := max(width-labelWidth, 5)
	wrapped := strings.Split(render.Wrap(value, valueWidth), "\n")

	lines := make([]string, 0, len(wrapped))
	for i, v := range wrapped {
		prefix := strings.Repeat(" ", labelWidth)
		if i == 0 {
			prefix = render.Pad(label, labelWidth)
		}
		lines = append(lines, s.Muted.Render(prefix)+s.Base.Render(v))
	}
	return lines
}

// splitList splits a comma separated field, skipping blanks.
func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
