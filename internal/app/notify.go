package app

import (
	"go.uber.org/zap"

	"github.com/llehouerou/turntable/internal/notify"
)

// sendNowPlayingNotification announces the current song on the desktop.
// Successive songs replace the same notification.
func (m *Model) sendNowPlayingNotification() {
	if m.notifier == nil || !m.notificationsConfig.NowPlayingEnabled() {
		return
	}
	if m.Turntable == nil || m.Band == nil {
		return
	}
	track, ok := m.Turntable.Current()
	if !ok {
		return
	}

	n := notify.NowPlaying(m.Band.Name, track.Title, m.Turntable.Info().Album,
		m.notificationsConfig.Timeout, m.lastNowPlayingID)
	id, err := m.notifier.Notify(n)
	if err != nil {
		m.Log.Debug("now playing notification", zap.Error(err))
		return
	}
	m.lastNowPlayingID = id
}
