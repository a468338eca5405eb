package turntable

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/llehouerou/turntable/internal/rotation"
)

// SelectPolicy decides what picking a song from the menu does.
type SelectPolicy int

const (
	// SelectToggle inverts the playing state: picking a song while playing
	// switches to it paused, picking while paused or idle plays it.
	SelectToggle SelectPolicy = iota
	// SelectPlay always plays the picked song.
	SelectPlay
)

func (p SelectPolicy) String() string {
	switch p {
	case SelectToggle:
		return "toggle"
	case SelectPlay:
		return "play"
	default:
		return "unknown"
	}
}

// ParseSelectPolicy accepts "toggle" or "play". Empty selects SelectToggle.
func ParseSelectPolicy(s string) (SelectPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "toggle":
		return SelectToggle, nil
	case "play":
		return SelectPlay, nil
	default:
		return SelectToggle, fmt.Errorf("unknown select policy %q", s)
	}
}

// DefaultVolume is the volume of a fresh controller.
const DefaultVolume = 50

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithPageLength sets the song menu page size.
func WithPageLength(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.pageLength = n
		}
	}
}

// WithSelectPolicy sets the SelectTrack behavior.
func WithSelectPolicy(p SelectPolicy) Option {
	return func(c *Controller) { c.policy = p }
}

// WithFollowCurrent makes skips move the menu page to the current song.
func WithFollowCurrent(follow bool) Option {
	return func(c *Controller) { c.followCurrent = follow }
}

// WithVolume sets the initial volume.
func WithVolume(level int) Option {
	return func(c *Controller) { c.volume = level }
}

// WithAnimator replaces the rotation animator.
func WithAnimator(a *rotation.Animator) Option {
	return func(c *Controller) { c.anim = a }
}
