// Package audio owns the single playable handle behind the turntable widget.
package audio

import (
	"errors"
	"time"

	"github.com/llehouerou/turntable/internal/tracklist"
)

var (
	// ErrSuperseded is returned by a play attempt whose source was replaced
	// by a later Load before it became audible.
	ErrSuperseded = errors.New("audio: play superseded by a newer track")

	// ErrDisposed is returned by play attempts after Dispose.
	ErrDisposed = errors.New("audio: resource disposed")

	// ErrNoHandle is returned by Play when nothing was loaded.
	ErrNoHandle = errors.New("audio: no track loaded")

	// ErrNotFound is returned when the song file does not exist.
	ErrNotFound = errors.New("audio: song not found")
)

// Resource is the playback contract used by the turntable controller.
//
// All methods except Play complete synchronously. Play reports its outcome
// on the returned channel, which receives exactly one value and is closed.
type Resource interface {
	// Load pauses the current handle and points it at track, allocating a
	// handle on first use. It never starts playback.
	Load(track tracklist.Track)
	Play() <-chan error
	Pause()
	// SetVolume sets the output gain to level/100. Level is clamped to [0,100].
	SetVolume(level int)
	ResetToStart()
	// Dispose pauses, rewinds and releases the handle. Idempotent.
	Dispose()
	// Ended receives a value when the loaded track plays to its end.
	Ended() <-chan struct{}
	Info() Info
}

// Info describes the loaded track for display.
type Info struct {
	Title      string
	Path       string
	Loaded     bool // decoded and attached to the output
	Artist     string
	Album      string
	Size       int64
	SampleRate int
	Position   time.Duration
	Duration   time.Duration
}

// resolved returns a closed channel carrying err.
func resolved(err error) <-chan error {
	ch := make(chan error, 1)
	ch <- err
	close(ch)
	return ch
}
