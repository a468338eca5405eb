//go:build linux

package mpris

import (
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"go.uber.org/zap"

	"github.com/llehouerou/turntable/internal/turntable"
)

// Adapter serves the published snapshot over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts an MPRIS server named after the application.
// Calls from the desktop are passed to send.
func New(name string, pub *Publisher, send func(Request), log *zap.Logger) (*Adapter, error) {
	if pub == nil || send == nil {
		return nil, errors.New("mpris: publisher and send function are required")
	}
	a := &Adapter{
		server: server.NewServer(name, &rootAdapter{}, &playerAdapter{pub: pub, send: send}),
	}

	go func() {
		if err := a.server.Listen(); err != nil {
			log.Warn("mpris server stopped", zap.Error(err))
		}
	}()

	return a, nil
}

// Close stops the server and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil // the terminal owns the lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Turntable", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/mp3"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	pub  *Publisher
	send func(Request)
}

func (p *playerAdapter) Next() error {
	p.send(Request{Cmd: CmdNext})
	return nil
}

func (p *playerAdapter) Previous() error {
	p.send(Request{Cmd: CmdPrevious})
	return nil
}

func (p *playerAdapter) Pause() error {
	p.send(Request{Cmd: CmdPause})
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.send(Request{Cmd: CmdPlayPause})
	return nil
}

// Stop pauses; a turntable has no separate stopped state.
func (p *playerAdapter) Stop() error {
	p.send(Request{Cmd: CmdPause})
	return nil
}

func (p *playerAdapter) Play() error {
	p.send(Request{Cmd: CmdPlay})
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // previews are not seekable
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.pub.Load()), nil
}

func playbackStatus(s Snapshot) types.PlaybackStatus {
	if !s.Active {
		return types.PlaybackStatusStopped
	}
	switch s.Phase {
	case turntable.Playing:
		return types.PlaybackStatusPlaying
	case turntable.Paused:
		return types.PlaybackStatusPaused
	default:
		return types.PlaybackStatusStopped
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.pub.Load()
	if !s.Active || s.Title == "" {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(s.BandID, s.Title)),
		Length:  types.Microseconds(s.Duration.Microseconds()),
		Title:   s.Title,
		Artist:  []string{s.BandName},
		Album:   s.Album,
		ArtUrl:  s.ArtworkURL,
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.pub.Load().Volume) / 100, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.send(Request{Cmd: CmdVolume, Volume: int(v*100 + 0.5)})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.pub.Load().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

// Skips wrap around, so both directions are available with two songs or more.
func (p *playerAdapter) CanGoNext() (bool, error) {
	s := p.pub.Load()
	return s.Active && s.TrackCount > 1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.CanGoNext()
}

func (p *playerAdapter) CanPlay() (bool, error) {
	s := p.pub.Load()
	return s.Active && s.TrackCount > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.CanPlay()
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(bandID int, title string) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d/%s", bandID, title)
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
