package audio

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"go.uber.org/zap"

	"github.com/llehouerou/turntable/internal/tracklist"
)

// Verify Handle implements Resource at compile time.
var _ Resource = (*Handle)(nil)

// Handle plays one song at a time through an Output.
//
// Lock order: h.mu before the output lock. Output callbacks run under the
// output lock and therefore never take h.mu directly.
type Handle struct {
	mu sync.Mutex

	opener Opener
	decode Decoder
	out    Output
	log    *zap.Logger

	slot     *slot // nil until the first Load
	gen      uint64
	level    int
	disposed bool

	ended chan struct{}
}

// slot is the handle's current source. It is repointed, not reallocated,
// on every Load.
type slot struct {
	track tracklist.Track
	gen   uint64

	loading  bool
	cancel   context.CancelFunc
	waiters  []chan error
	wantPlay bool

	stream beep.StreamSeekCloser
	format beep.Format
	ctrl   *beep.Ctrl
	volume *effects.Volume
	size   int64
	artist string
	album  string

	// drained is set once the output finished the stream and dropped it.
	drained bool
}

// Option configures a Handle.
type Option func(*Handle)

// WithDecoder replaces the MP3 decoder.
func WithDecoder(d Decoder) Option {
	return func(h *Handle) { h.decode = d }
}

// WithOutput replaces the system speaker.
func WithOutput(o Output) Option {
	return func(h *Handle) { h.out = o }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Handle) { h.log = l }
}

// WithVolume sets the initial volume level.
func WithVolume(level int) Option {
	return func(h *Handle) { h.level = ClampVolume(level) }
}

// NewHandle creates a handle reading songs through opener.
func NewHandle(opener Opener, opts ...Option) *Handle {
	h := &Handle{
		opener: opener,
		decode: DecodeMP3,
		out:    Speaker,
		log:    zap.NewNop(),
		level:  MaxVolume,
		ended:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Load points the handle at track. The previous source is paused, detached
// from the output and any play still waiting on it fails with ErrSuperseded.
func (h *Handle) Load(track tracklist.Track) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed {
		return
	}

	if h.slot == nil {
		h.slot = &slot{}
	} else {
		h.pauseLocked()
		h.releaseLocked(ErrSuperseded)
	}

	h.gen++
	h.slot.track = track
	h.slot.gen = h.gen
	h.slot.wantPlay = false

	// Drain any stale end signal from the previous source
	select {
	case <-h.ended:
	default:
	}

	h.log.Debug("track loaded",
		zap.String("title", track.Title),
		zap.Uint64("source_gen", h.gen))
}

// Play starts or resumes playback. The first play of a source fetches and
// decodes it in the background.
func (h *Handle) Play() <-chan error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed {
		return resolved(ErrDisposed)
	}
	s := h.slot
	if s == nil {
		return resolved(ErrNoHandle)
	}

	s.wantPlay = true

	if s.stream != nil && s.drained {
		return resolved(h.reattachLocked(s))
	}
	if s.stream != nil {
		h.out.Lock()
		s.ctrl.Paused = false
		h.out.Unlock()
		return resolved(nil)
	}

	ch := make(chan error, 1)
	s.waiters = append(s.waiters, ch)
	if !s.loading {
		ctx, cancel := context.WithCancel(context.Background())
		s.loading = true
		s.cancel = cancel
		go h.open(ctx, s.gen, s.track)
	}
	return ch
}

// open fetches and decodes a source, then attaches it to the output if the
// source is still current.
func (h *Handle) open(ctx context.Context, gen uint64, track tracklist.Track) {
	stream, format, meta, size, err := h.fetch(ctx, track)

	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.slot
	if h.disposed || s == nil || s.gen != gen {
		// Waiters were already failed by Load or Dispose.
		if stream != nil {
			stream.Close()
		}
		h.log.Debug("discarded stale source", zap.String("title", track.Title), zap.Uint64("source_gen", gen))
		return
	}

	s.loading = false
	s.cancel = nil

	if err == nil {
		err = h.attachLocked(s, stream, format)
	}
	if err != nil {
		if stream != nil {
			stream.Close()
		}
		s.wantPlay = false
		h.log.Warn("play failed", zap.String("title", track.Title), zap.Error(err))
		h.notifyLocked(s, err)
		return
	}

	s.size = size
	if meta != nil {
		s.artist = meta.Artist()
		s.album = meta.Album()
	}
	h.notifyLocked(s, nil)
}

func (h *Handle) fetch(ctx context.Context, track tracklist.Track) (beep.StreamSeekCloser, beep.Format, tag.Metadata, int64, error) {
	rc, err := h.opener.Open(ctx, track)
	if err != nil {
		return nil, beep.Format{}, nil, 0, err
	}
	data, err := readAll(rc)
	if err != nil {
		return nil, beep.Format{}, nil, 0, err
	}

	// Tags are optional; a song without ID3 data still plays.
	meta, _ := tag.ReadFrom(bytes.NewReader(data))

	stream, format, err := h.decode(bytes.NewReader(data))
	if err != nil {
		return nil, beep.Format{}, nil, 0, fmt.Errorf("decode %s: %w", track.Title, err)
	}
	return stream, format, meta, int64(len(data)), nil
}

// attachLocked chains the stream into the output, paused unless a play is
// still wanted.
func (h *Handle) attachLocked(s *slot, stream beep.StreamSeekCloser, format beep.Format) error {
	rate, err := h.out.Init(format.SampleRate)
	if err != nil {
		return fmt.Errorf("init output: %w", err)
	}

	var playStreamer beep.Streamer = stream
	if format.SampleRate != rate {
		playStreamer = beep.Resample(4, format.SampleRate, rate, stream)
	}

	s.stream = stream
	s.format = format
	s.drained = false
	s.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: !s.wantPlay}
	s.volume = &effects.Volume{Streamer: s.ctrl}
	applyVolume(s.volume, h.level)

	gen := s.gen
	h.out.Play(beep.Seq(s.volume, beep.Callback(func() {
		// Runs under the output lock.
		go h.signalEnded(gen)
	})))
	return nil
}

// reattachLocked rewinds a drained stream and hands it back to the output,
// which dropped it when it ended.
func (h *Handle) reattachLocked(s *slot) error {
	if err := s.stream.Seek(0); err != nil {
		h.log.Debug("rewind failed", zap.Error(err))
	}
	if err := h.attachLocked(s, s.stream, s.format); err != nil {
		s.wantPlay = false
		h.log.Warn("replay failed", zap.String("title", s.track.Title), zap.Error(err))
		return err
	}
	h.log.Debug("replaying drained source", zap.String("title", s.track.Title))
	return nil
}

func (h *Handle) signalEnded(gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed || h.slot == nil || h.slot.gen != gen {
		return
	}
	h.slot.wantPlay = false
	h.slot.drained = true
	select {
	case h.ended <- struct{}{}:
	default:
	}
}

func (h *Handle) notifyLocked(s *slot, err error) {
	for _, ch := range s.waiters {
		ch <- err
		close(ch)
	}
	s.waiters = nil
}

// Pause stops playback. A play still decoding stays paused once attached.
func (h *Handle) Pause() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pauseLocked()
}

func (h *Handle) pauseLocked() {
	s := h.slot
	if s == nil {
		return
	}
	s.wantPlay = false
	if s.ctrl != nil {
		h.out.Lock()
		s.ctrl.Paused = true
		h.out.Unlock()
	}
}

// releaseLocked detaches the stream, cancels any fetch and fails waiters.
func (h *Handle) releaseLocked(reason error) {
	s := h.slot
	if s == nil {
		return
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.loading = false
	h.notifyLocked(s, reason)

	if s.stream != nil {
		h.out.Clear()
		s.stream.Close()
	}
	s.stream = nil
	s.ctrl = nil
	s.volume = nil
	s.drained = false
	s.size = 0
	s.artist = ""
	s.album = ""
}

// SetVolume sets the output gain to level/100. The level is kept for
// later sources.
func (h *Handle) SetVolume(level int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.level = ClampVolume(level)
	if h.slot != nil && h.slot.volume != nil {
		h.out.Lock()
		applyVolume(h.slot.volume, h.level)
		h.out.Unlock()
	}
}

// ResetToStart rewinds the attached stream.
func (h *Handle) ResetToStart() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.resetLocked()
}

func (h *Handle) resetLocked() {
	if h.slot == nil || h.slot.stream == nil {
		return
	}
	h.out.Lock()
	err := h.slot.stream.Seek(0)
	h.out.Unlock()
	if err != nil {
		h.log.Debug("rewind failed", zap.Error(err))
	}
}

// Dispose pauses, rewinds and releases the handle.
func (h *Handle) Dispose() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed {
		return
	}
	h.pauseLocked()
	h.resetLocked()
	h.releaseLocked(ErrDisposed)
	h.slot = nil
	h.disposed = true
	h.log.Debug("handle disposed")
}

// Ended receives a value when the current source plays to its end.
func (h *Handle) Ended() <-chan struct{} {
	return h.ended
}

// Info describes the current source.
func (h *Handle) Info() Info {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.slot
	if s == nil {
		return Info{}
	}
	info := Info{
		Title:  s.track.Title,
		Path:   s.track.SourcePath(),
		Artist: s.artist,
		Album:  s.album,
		Size:   s.size,
	}
	if s.stream != nil {
		sr := s.format.SampleRate
		info.Loaded = true
		info.SampleRate = int(sr)
		// The output goroutine advances the decoder under its lock.
		h.out.Lock()
		length, pos := s.stream.Len(), s.stream.Position()
		h.out.Unlock()
		info.Duration = sr.D(length)
		info.Position = sr.D(pos)
	}
	return info
}

// Volume returns the current level.
func (h *Handle) Volume() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.level
}
