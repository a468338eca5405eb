package app

import (
	"go.uber.org/zap"

	"github.com/llehouerou/turntable/internal/mpris"
	"github.com/llehouerou/turntable/internal/state"
)

// saveSession remembers the open band for the next run.
func (m *Model) saveSession() {
	if m.Band == nil {
		return
	}
	err := m.StateMgr.SaveSession(state.Session{
		BandID:    m.Band.ID,
		BandName:  m.Band.Name,
		UpdatedAt: m.now(),
	})
	if err != nil {
		m.Log.Warn("save session", zap.Error(err))
	}
}

// recordPlay adds the current song to the play history.
func (m *Model) recordPlay() {
	if m.Turntable == nil || m.Band == nil {
		return
	}
	track, ok := m.Turntable.Current()
	if !ok {
		return
	}
	err := m.StateMgr.RecordPlay(state.Play{
		BandID:     m.Band.ID,
		BandName:   m.Band.Name,
		TrackTitle: track.Title,
		PlayedAt:   m.now(),
	})
	if err != nil {
		m.Log.Warn("record play", zap.Error(err))
		return
	}
	m.refreshRecent()
}

// refreshRecent reloads the history panel of the band list.
func (m *Model) refreshRecent() {
	plays, err := m.StateMgr.RecentPlays(recentLimit)
	if err != nil {
		m.Log.Warn("read play history", zap.Error(err))
		return
	}
	m.BandList.SetRecent(plays)
}

// publish exposes the turntable status to the desktop.
func (m Model) publish() {
	if m.Publisher == nil {
		return
	}
	if m.Turntable == nil || m.Band == nil {
		m.Publisher.Clear()
		return
	}
	track, _ := m.Turntable.Current()
	m.Publisher.Publish(mpris.NewSnapshot(m.Band.ID, m.Band.Name, m.Turntable.State(), track, m.Turntable.Info()))
}
