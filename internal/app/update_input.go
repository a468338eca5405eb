package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/turntable/internal/keymap"
	"github.com/llehouerou/turntable/internal/ui/helpbindings"
)

// keyContext returns the binding context of the visible screen.
func (m Model) keyContext() string {
	if m.Screen == ScreenBand {
		return keymap.ContextTurntable
	}
	return keymap.ContextBands
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	if m.ShowHelp {
		if key == "ctrl+c" {
			return m.quit()
		}
		if m.Help.HandleKey(key) == helpbindings.Closed {
			m.ShowHelp = false
		}
		return m, nil
	}

	ctx := m.keyContext()
	action := m.Keys.Resolve(ctx, key)

	switch action {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		m.Help = helpbindings.New(keymap.ContextGlobal, ctx)
		m.Help.SetSize(m.Width, m.Height)
		m.ShowHelp = true
		return m, nil
	case keymap.ActionBack:
		return m.handleBack()
	}

	if m.Screen == ScreenBand {
		return m.handleTurntableAction(action)
	}
	return m.handleBandsAction(action)
}

func (m Model) quit() (Model, tea.Cmd) {
	m.Shutdown()
	return m, tea.Quit
}

func (m Model) handleBack() (Model, tea.Cmd) {
	switch {
	case m.Screen == ScreenBand:
		m.unmountBand()
	case m.BandList.ShowRecent():
		m.BandList.ToggleRecent()
	}
	m.Status = ""
	return m, nil
}

func (m Model) handleBandsAction(action keymap.Action) (Model, tea.Cmd) {
	switch action {
	case keymap.ActionMoveUp:
		m.BandList.Move(-1)
	case keymap.ActionMoveDown:
		m.BandList.Move(1)
	case keymap.ActionJumpStart:
		m.BandList.JumpStart()
	case keymap.ActionJumpEnd:
		m.BandList.JumpEnd()
	case keymap.ActionOpen:
		if b, ok := m.BandList.Selected(); ok {
			return m.openBand(b.ID)
		}
	case keymap.ActionToday:
		if b, ok := m.BandList.Today(); ok {
			m.BandList.Jump(m.BandList.IndexOf(b.ID))
			return m.openBand(b.ID)
		}
	case keymap.ActionRefresh:
		m.BandList.SetLoading()
		return m, m.loadBandsCmd()
	case keymap.ActionRecent:
		m.refreshRecent()
		m.BandList.ToggleRecent()
	}
	return m, nil
}

func (m Model) handleTurntableAction(action keymap.Action) (Model, tea.Cmd) {
	c := m.Turntable
	if c == nil {
		return m, nil
	}

	var cmd tea.Cmd
	switch action {
	case keymap.ActionPlayPause:
		cmd = m.track(c.TogglePlay())
	case keymap.ActionNextTrack:
		cmd = m.track(c.SkipForward())
	case keymap.ActionPrevTrack:
		cmd = m.track(c.SkipBack())
	case keymap.ActionVolumeUp:
		m.setVolume(c.State().Volume + volumeStep)
	case keymap.ActionVolumeDown:
		m.setVolume(c.State().Volume - volumeStep)
	case keymap.ActionToggleMenu:
		m.Menu.Toggle(c.State())
		return m, nil
	case keymap.ActionMenuUp:
		m.Menu.Move(-1, c.State())
		return m, nil
	case keymap.ActionMenuDown:
		m.Menu.Move(1, c.State())
		return m, nil
	case keymap.ActionSelect:
		if m.Menu.Open() {
			cmd = m.track(c.SelectTrack(m.Menu.Cursor()))
		}
	case keymap.ActionPageNext:
		c.ChangePage(1)
	case keymap.ActionPagePrev:
		c.ChangePage(-1)
	}
	m.Menu.Sync(c.State())
	return m, cmd
}
