package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/turntable/internal/ui"
)

// Update handles messages and returns updated model and commands.
// The desktop snapshot is republished after every message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.publish()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case ErrorMsg:
		m.Status = msg.Text
		return m, nil
	}

	// Route by message category
	if pm, ok := msg.(PlaybackMessage); ok {
		return m.handlePlaybackMsg(pm)
	}
	if lm, ok := msg.(LoadingMessage); ok {
		return m.handleLoadingMsg(lm)
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.BandList.SetSize(msg.Width, max(msg.Height-ui.HeaderHeight-ui.FooterHeight, 1))
	m.Help.SetSize(msg.Width, msg.Height)
	return m, nil
}
