// Package turntable coordinates one playback resource with a song list, a
// carousel and a rotating disc.
//
// A Controller is not safe for concurrent use. It is owned by a single event
// loop; the only asynchronous edge is the outcome of a play, which the loop
// feeds back through CompletePlay.
package turntable

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/llehouerou/turntable/internal/audio"
	"github.com/llehouerou/turntable/internal/rotation"
	"github.com/llehouerou/turntable/internal/tracklist"
)

// Pending is a play in flight. The event loop waits on Done and hands the
// result to CompletePlay together with Gen.
type Pending struct {
	Gen  uint64
	Done <-chan error
}

// Controller is the turntable state machine.
type Controller struct {
	id   string
	list *tracklist.List
	res  audio.Resource
	anim *rotation.Animator
	log  *zap.Logger

	policy        SelectPolicy
	followCurrent bool
	pageLength    int

	current  int
	playing  bool
	starting bool
	loaded   bool
	volume   int
	slide    Slide
	page     int
	gen      uint64
	lastErr  error
	disposed bool
}

// New creates a controller positioned on the first track. Nothing is loaded
// until the first transport operation.
func New(list *tracklist.List, res audio.Resource, opts ...Option) *Controller {
	c := &Controller{
		id:         uuid.NewString(),
		list:       list,
		res:        res,
		log:        zap.NewNop(),
		policy:     SelectToggle,
		pageLength: tracklist.DefaultPageLength,
		current:    NoTrack,
		volume:     DefaultVolume,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.anim == nil {
		c.anim = rotation.New(rotation.DefaultInterval)
	}
	c.log = c.log.With(zap.String("turntable", c.id))

	if !list.IsEmpty() {
		c.current = 0
	}
	c.volume = audio.ClampVolume(c.volume)
	c.res.SetVolume(c.volume)
	return c
}

// ID identifies this controller instance.
func (c *Controller) ID() string { return c.id }

// List returns the song list.
func (c *Controller) List() *tracklist.List { return c.list }

// Gen returns the current generation token.
func (c *Controller) Gen() uint64 { return c.gen }

// Ended forwards the resource's end-of-media notifications.
func (c *Controller) Ended() <-chan struct{} { return c.res.Ended() }

// Info describes the loaded source.
func (c *Controller) Info() audio.Info { return c.res.Info() }

// Current returns the current track.
func (c *Controller) Current() (tracklist.Track, bool) {
	return c.list.At(c.current)
}

// State returns a snapshot.
func (c *Controller) State() State {
	return State{
		CurrentIndex:  c.current,
		IsPlaying:     c.playing,
		Starting:      c.starting,
		Volume:        c.volume,
		RotationAngle: c.anim.Angle(),
		Slide:         c.slide,
		Page:          c.page,
		PageLength:    c.pageLength,
		PageCount:     c.list.PageCount(c.pageLength),
		TrackCount:    c.list.Len(),
		Gen:           c.gen,
		LastError:     c.lastErr,
		loaded:        c.loaded,
		disposed:      c.disposed,
	}
}

func (c *Controller) inert() bool {
	return c.disposed || c.list.IsEmpty()
}

// TogglePlay plays when idle or paused and pauses when playing. Toggling
// while a play is in flight cancels it.
func (c *Controller) TogglePlay() *Pending {
	if c.inert() {
		return nil
	}

	if c.playing || c.starting {
		c.stop()
		return nil
	}

	if !c.loaded {
		c.load(c.current)
	}
	return c.startPlay()
}

// SkipForward moves to the next song, wrapping to the first, and plays it.
func (c *Controller) SkipForward() *Pending {
	return c.skip(Forward)
}

// SkipBack moves to the previous song, wrapping to the last, and plays it.
func (c *Controller) SkipBack() *Pending {
	return c.skip(Backward)
}

// OnTrackEnded advances like SkipForward, also when the end is handled after
// a pause. Nothing has ended before the first load.
func (c *Controller) OnTrackEnded() *Pending {
	if c.inert() || !c.loaded {
		c.log.Debug("ignored track end", zap.Bool("loaded", c.loaded))
		return nil
	}
	return c.skip(Forward)
}

func (c *Controller) skip(dir Slide) *Pending {
	if c.inert() {
		return nil
	}

	n := c.list.Len()
	next := c.current + 1
	if dir == Backward {
		next = c.current - 1 + n
	}
	next %= n

	c.slide = dir
	c.load(next)
	if c.followCurrent {
		c.page = c.list.PageOf(c.current, c.pageLength)
	}
	return c.startPlay()
}

// SelectTrack makes index current. Out-of-range indexes are clamped.
func (c *Controller) SelectTrack(index int) *Pending {
	if c.inert() {
		return nil
	}
	index = min(max(index, 0), c.list.Len()-1)
	same := index == c.current && c.loaded

	if c.policy == SelectPlay {
		if same && (c.playing || c.starting) {
			return nil
		}
		if !same {
			c.load(index)
		}
		return c.startPlay()
	}

	if c.playing || c.starting {
		if same {
			c.stop()
			return nil
		}
		// Load pauses the old source; the selection stays paused.
		c.load(index)
		return nil
	}
	if !same {
		c.load(index)
	}
	return c.startPlay()
}

// SetVolume stores level clamped to [0,100] and applies it.
func (c *Controller) SetVolume(level int) {
	if c.disposed {
		return
	}
	c.volume = audio.ClampVolume(level)
	c.res.SetVolume(c.volume)
}

// ChangePage moves the song menu by delta pages, clamped to the valid range.
func (c *Controller) ChangePage(delta int) {
	if c.disposed {
		return
	}
	c.page = min(max(c.page+delta, 0), c.list.PageCount(c.pageLength)-1)
}

// CompletePlay applies the outcome of the play started at gen. It reports
// whether the result was applied; results for an older generation or
// arriving after Dispose are dropped.
func (c *Controller) CompletePlay(gen uint64, err error) bool {
	if c.disposed || gen != c.gen || !c.starting {
		c.log.Debug("dropped stale play result",
			zap.Uint64("gen", gen),
			zap.Uint64("current_gen", c.gen),
			zap.Bool("disposed", c.disposed),
			zap.Error(err))
		return false
	}

	c.starting = false
	if err != nil {
		c.playing = false
		c.lastErr = err
		c.anim.Stop()
		level := zap.WarnLevel
		if errors.Is(err, audio.ErrSuperseded) {
			level = zap.DebugLevel
		}
		c.log.Log(level, "play failed", zap.Int("index", c.current), zap.Error(err))
		return true
	}

	c.playing = true
	c.lastErr = nil
	c.anim.Start()
	c.log.Debug("playing", zap.Int("index", c.current), zap.Uint64("gen", gen))
	return true
}

// Dispose releases the resource and the animator. Later operations are
// no-ops and pending results are dropped.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.gen++
	c.playing = false
	c.starting = false
	c.anim.Dispose()
	c.res.Dispose()
	c.log.Debug("disposed")
}

// load repoints the resource at track index and invalidates any play in
// flight.
func (c *Controller) load(index int) {
	track, ok := c.list.At(index)
	if !ok {
		return
	}
	c.current = index
	c.res.Load(track)
	c.loaded = true
	c.gen++
	c.playing = false
	c.starting = false
	c.anim.Stop()
	c.log.Debug("loaded", zap.Int("index", index), zap.String("title", track.Title), zap.Uint64("gen", c.gen))
}

func (c *Controller) startPlay() *Pending {
	c.starting = true
	c.lastErr = nil
	return &Pending{Gen: c.gen, Done: c.res.Play()}
}

// stop pauses and cancels any play in flight.
func (c *Controller) stop() {
	if c.starting {
		c.gen++
	}
	c.res.Pause()
	c.playing = false
	c.starting = false
	c.anim.Stop()
}
