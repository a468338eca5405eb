package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/turntable/internal/mpris"
	"github.com/llehouerou/turntable/internal/turntable"
)

func (m Model) handlePlaybackMsg(msg PlaybackMessage) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PlayResultMsg:
		return m.handlePlayResult(msg)
	case TrackEndedMsg:
		return m.handleTrackEnded(msg)
	case FrameMsg:
		return m.handleFrame(msg)
	case RemoteMsg:
		return m.handleRemote(mpris.Request(msg))
	}
	return m, nil
}

// owns reports whether instance is the mounted controller.
func (m Model) owns(instance string) bool {
	return m.Turntable != nil && m.Turntable.ID() == instance
}

func (m Model) handlePlayResult(msg PlayResultMsg) (Model, tea.Cmd) {
	if !m.owns(msg.Instance) {
		m.Log.Debug("dropped play result of unmounted turntable", zap.String("turntable", msg.Instance))
		return m, nil
	}
	if !m.Turntable.CompletePlay(msg.Gen, msg.Err) {
		return m, nil
	}
	if msg.Err == nil {
		m.recordPlay()
		m.sendNowPlayingNotification()
	}
	return m, nil
}

func (m Model) handleTrackEnded(msg TrackEndedMsg) (Model, tea.Cmd) {
	if !m.owns(msg.Instance) {
		return m, nil
	}
	cmd := m.track(m.Turntable.OnTrackEnded())
	m.Menu.Sync(m.Turntable.State())
	return m, tea.Batch(cmd, watchEndedCmd(m.Turntable, m.unmounted))
}

func (m Model) handleFrame(msg FrameMsg) (Model, tea.Cmd) {
	if !m.owns(msg.Instance) {
		return m, nil
	}
	st := m.Turntable.State()
	if !st.IsPlaying && !st.Starting {
		m.framing = false
		return m, nil
	}
	return m, frameCmd(msg.Instance, m.rotationInterval())
}

// track follows a play started by the controller. Nil when nothing started.
func (m *Model) track(p *turntable.Pending) tea.Cmd {
	if p == nil {
		return nil
	}
	cmds := []tea.Cmd{waitPlayCmd(m.Turntable.ID(), p)}
	if !m.framing {
		m.framing = true
		cmds = append(cmds, frameCmd(m.Turntable.ID(), m.rotationInterval()))
	}
	return tea.Batch(cmds...)
}

func (m Model) handleRemote(req mpris.Request) (Model, tea.Cmd) {
	c := m.Turntable
	if c == nil {
		return m, nil
	}
	m.Log.Debug("remote request", zap.Stringer("cmd", req.Cmd))

	st := c.State()
	busy := st.IsPlaying || st.Starting

	var cmd tea.Cmd
	switch req.Cmd {
	case mpris.CmdPlayPause:
		cmd = m.track(c.TogglePlay())
	case mpris.CmdPlay:
		if !busy {
			cmd = m.track(c.TogglePlay())
		}
	case mpris.CmdPause:
		if busy {
			cmd = m.track(c.TogglePlay())
		}
	case mpris.CmdNext:
		cmd = m.track(c.SkipForward())
	case mpris.CmdPrevious:
		cmd = m.track(c.SkipBack())
	case mpris.CmdVolume:
		m.setVolume(req.Volume)
	}
	m.Menu.Sync(c.State())
	return m, cmd
}

// setVolume applies level to the turntable and remembers it.
func (m *Model) setVolume(level int) {
	if m.Turntable == nil {
		return
	}
	m.Turntable.SetVolume(level)
	m.volume = m.Turntable.State().Volume
	if m.rememberVolume() {
		m.StateMgr.SaveVolume(m.volume)
	}
}
