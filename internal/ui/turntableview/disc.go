package turntableview

import (
	"strings"

	"github.com/llehouerou/turntable/internal/icons"
	"github.com/llehouerou/turntable/internal/ui/render"
	"github.com/llehouerou/turntable/internal/ui/styles"
)

// DiscSteps is the number of distinct marker positions around the disc.
const DiscSteps = 8

const (
	discWidth = 13
	discRows  = 3

	// Middle row cells reserved for the center label.
	labelStart = 4
	labelWidth = 5
)

// ring lists the groove marker cells clockwise from twelve o'clock.
var ring = [DiscSteps][2]int{
	{0, 6}, {0, 9}, {1, 11}, {2, 9}, {2, 6}, {2, 3}, {1, 1}, {0, 3},
}

// DiscStep maps an angle in [0, 360) to the lit marker position.
func DiscStep(angle int) int {
	angle %= 360
	if angle < 0 {
		angle += 360
	}
	return angle * DiscSteps / 360
}

// RenderDisc draws the record with the marker at the given angle. The
// center label is highlighted when the song has artwork.
func RenderDisc(angle int, hasArtwork bool) string {
	s := styles.T().S()

	grid := make([][]string, discRows)
	for r := range grid {
		grid[r] = make([]string, discWidth)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	lit := DiscStep(angle)
	for i, cell := range ring {
		if i == lit {
			grid[cell[0]][cell[1]] = s.Needle.Render("●")
		} else {
			grid[cell[0]][cell[1]] = s.Vinyl.Render("·")
		}
	}

	label := s.NoArt.Render(icons.Disc())
	if hasArtwork {
		label = s.Label.Render(icons.Disc())
	}

	lines := make([]string, 0, discRows)
	for r, row := range grid {
		line := strings.Join(row, "")
		if r == 1 {
			line = strings.Join(row[:labelStart], "") +
				render.Center(label, labelWidth) +
				strings.Join(row[labelStart+labelWidth:], "")
		}
		lines = append(lines, line)
	}
	return styles.Panel(discWidth+4, false).Render(strings.Join(lines, "\n"))
}
