package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/turntable/internal/bandapi"
	"github.com/llehouerou/turntable/internal/errmsg"
	"github.com/llehouerou/turntable/internal/rotation"
	"github.com/llehouerou/turntable/internal/turntable"
	"github.com/llehouerou/turntable/internal/ui/turntableview"
)

func (m Model) handleLoadingMsg(msg LoadingMessage) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BandsLoadedMsg:
		return m.handleBandsLoaded(msg)
	case BandLoadedMsg:
		return m.handleBandLoaded(msg)
	}
	return m, nil
}

func (m Model) handleBandsLoaded(msg BandsLoadedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.Log.Warn("load bands", zap.Error(msg.Err))
		m.BandList.SetError(msg.Err)
		return m, nil
	}

	today := -1
	if len(msg.Bands) > 0 {
		today = bandapi.ForToday(len(msg.Bands), m.now())
	}
	m.BandList.SetBands(msg.Bands, today)

	// Startup requests are honored once.
	startBand, openToday := m.startBand, m.today
	m.startBand, m.today = 0, false

	switch {
	case startBand != 0:
		if i := m.BandList.IndexOf(startBand); i >= 0 {
			m.BandList.Jump(i)
		}
		return m.openBand(startBand)
	case openToday:
		if b, ok := m.BandList.Today(); ok {
			m.BandList.Jump(today)
			return m.openBand(b.ID)
		}
	default:
		m.restoreCursor()
	}
	return m, nil
}

// restoreCursor places the cursor on the band of the last session.
func (m *Model) restoreCursor() {
	session, err := m.StateMgr.GetSession()
	if err != nil {
		m.Log.Warn("read session", zap.Error(err))
		m.Status = errmsg.Format(errmsg.OpBandRestore, err)
		return
	}
	if session == nil {
		return
	}
	if i := m.BandList.IndexOf(session.BandID); i >= 0 {
		m.BandList.Jump(i)
	}
}

// openBand requests a band record. Only the latest request is mounted.
func (m Model) openBand(id int) (Model, tea.Cmd) {
	m.loadingBand = id
	m.Status = ""
	return m, m.loadBandCmd(id)
}

func (m Model) handleBandLoaded(msg BandLoadedMsg) (Model, tea.Cmd) {
	if msg.ID != m.loadingBand {
		m.Log.Debug("dropped stale band", zap.Int("id", msg.ID))
		return m, nil
	}
	m.loadingBand = 0

	if msg.Err != nil {
		m.Log.Warn("load band", zap.Int("id", msg.ID), zap.Error(msg.Err))
		m.Status = errmsg.Format(errmsg.OpBandLoad, msg.Err)
		return m, nil
	}

	return m, m.mountBand(msg.Band)
}

// mountBand opens the detail screen of band with a fresh turntable.
func (m *Model) mountBand(band *bandapi.Band) tea.Cmd {
	m.unmountBand()

	c := turntable.New(band.Tracks(), m.NewResource(),
		turntable.WithLogger(m.Log),
		turntable.WithPageLength(m.player.PageLength),
		turntable.WithSelectPolicy(m.policy),
		turntable.WithFollowCurrent(m.player.FollowCurrent),
		turntable.WithVolume(m.volume),
		turntable.WithAnimator(rotation.New(m.rotationInterval())),
	)

	m.Band = band
	m.Turntable = c
	m.Menu = turntableview.Menu{}
	m.Screen = ScreenBand
	m.ShowHelp = false
	m.unmounted = make(chan struct{})

	m.saveSession()
	m.Log.Info("opened band", zap.Int("id", band.ID), zap.String("name", band.Name),
		zap.Int("songs", c.List().Len()))

	return watchEndedCmd(c, m.unmounted)
}

// unmountBand disposes the turntable and returns to the band list. Results
// still in flight for the disposed controller are dropped on arrival.
func (m *Model) unmountBand() {
	if m.Turntable == nil {
		return
	}
	m.Turntable.Dispose()
	close(m.unmounted)
	m.Turntable = nil
	m.Band = nil
	m.Menu = turntableview.Menu{}
	m.framing = false
	m.Screen = ScreenBands
}

// rotationInterval is the disc tick. Unset values fall back to the default
// so frames never tick back to back.
func (m Model) rotationInterval() time.Duration {
	if m.player.RotationIntervalMs <= 0 {
		return rotation.DefaultInterval
	}
	return time.Duration(m.player.RotationIntervalMs) * time.Millisecond
}
