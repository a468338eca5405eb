// Package notify sends freedesktop desktop notifications over D-Bus.
package notify

// Urgency is the freedesktop notification priority.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string // summary, required
	Body       string
	Icon       string  // file path or icon name
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID, 0 when notifications
	// are unavailable.
	Notify(n Notification) (uint32, error)
	// Close withdraws a notification by ID.
	Close(id uint32) error
}

// nowPlayingIcon is the freedesktop icon name shown beside song starts.
const nowPlayingIcon = "media-playback-start"

// NowPlaying builds the notification of a song that started on a band's
// turntable. replaces is the ID of the previous one so that skips update a
// single bubble.
func NowPlaying(band, title, album string, timeoutMs int, replaces uint32) Notification {
	body := band
	if album != "" {
		body += " · " + album
	}
	return Notification{
		Title:      title,
		Body:       body,
		Icon:       nowPlayingIcon,
		Timeout:    int32(timeoutMs), //nolint:gosec // bounded by config
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}
