package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/turntable/internal/icons"
	"github.com/llehouerou/turntable/internal/ui"
	"github.com/llehouerou/turntable/internal/ui/banddetail"
	"github.com/llehouerou/turntable/internal/ui/render"
	"github.com/llehouerou/turntable/internal/ui/styles"
	"github.com/llehouerou/turntable/internal/ui/turntableview"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	if m.ShowHelp {
		return m.Help.View()
	}

	var body string
	if m.Screen == ScreenBand && m.Band != nil {
		body = m.renderBand()
	} else {
		body = m.BandList.View()
	}

	bodyHeight := max(m.Height-ui.HeaderHeight-ui.FooterHeight, 1)
	return m.renderHeader() + "\n" + clip(body, bodyHeight) + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	s := styles.T().S()
	title := styles.Title(icons.Disc() + " Turntable")
	right := ""
	if m.loadingBand != 0 {
		right = s.Muted.Render("Loading band…")
	}
	return render.Row(title, right, m.Width) + "\n" + s.Subtle.Render(render.Separator(m.Width))
}

func (m Model) renderFooter() string {
	s := styles.T().S()
	if m.Status != "" {
		return s.Error.Render(render.Truncate(m.Status, m.Width))
	}

	var hints []string
	if m.Screen == ScreenBand {
		hints = []string{"space play", "n/p skip", "+/- volume", "m songs", "esc back", "? help"}
	} else {
		hints = []string{"enter open", "t today", "R recent", "? help", "q quit"}
	}
	return s.Subtle.Render(render.Truncate(strings.Join(hints, " · "), m.Width))
}

// renderBand places the band facts beside the turntable on wide terminals
// and below it otherwise.
func (m Model) renderBand() string {
	props := turntableview.Props{
		BandName: m.Band.Name,
		List:     m.Band.Tracks(),
		Menu:     m.Menu,
		Width:    m.Width,
	}
	if m.Turntable != nil {
		props.State = m.Turntable.State()
		props.List = m.Turntable.List()
		props.Info = m.Turntable.Info()
	}

	if m.Width < ui.MinSideBySideWidth {
		return turntableview.Render(props) + "\n\n" + banddetail.Render(m.Band, m.Width)
	}

	detailWidth := m.Width * 2 / 5
	props.Width = m.Width - detailWidth
	return lipgloss.JoinHorizontal(lipgloss.Top,
		banddetail.Render(m.Band, detailWidth),
		turntableview.Render(props),
	)
}

// clip keeps the first height lines of s.
func clip(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
