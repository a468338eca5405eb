package audio

import (
	"sync"

	"github.com/llehouerou/turntable/internal/tracklist"
)

// Mock is a test double for Resource. Plays stay pending until the test
// resolves them, unless auto-resolve is enabled.
type Mock struct {
	mu sync.Mutex

	loaded   *tracklist.Track
	playing  bool
	level    int
	disposed bool

	autoResolve bool
	playErr     error
	pending     []chan error

	loadCalls  []string
	playCalls  int
	pauseCalls int
	resetCalls int
	volumes    []int

	ended chan struct{}
}

// NewMock creates a mock resource whose plays stay pending.
func NewMock() *Mock {
	return &Mock{
		level: MaxVolume,
		ended: make(chan struct{}, 1),
	}
}

func (m *Mock) Load(track tracklist.Track) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disposed {
		return
	}
	m.playing = false
	m.failPendingLocked(ErrSuperseded)
	t := track
	m.loaded = &t
	m.loadCalls = append(m.loadCalls, track.Title)
}

func (m *Mock) Play() <-chan error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.disposed {
		return resolved(ErrDisposed)
	}
	if m.loaded == nil {
		return resolved(ErrNoHandle)
	}
	if m.autoResolve {
		if m.playErr == nil {
			m.playing = true
		}
		return resolved(m.playErr)
	}
	ch := make(chan error, 1)
	m.pending = append(m.pending, ch)
	return ch
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
	m.playing = false
}

func (m *Mock) SetVolume(level int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.level = ClampVolume(level)
	m.volumes = append(m.volumes, m.level)
}

func (m *Mock) ResetToStart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetCalls++
}

func (m *Mock) Dispose() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disposed {
		return
	}
	m.playing = false
	m.failPendingLocked(ErrDisposed)
	m.loaded = nil
	m.disposed = true
}

func (m *Mock) Ended() <-chan struct{} { return m.ended }

func (m *Mock) Info() Info {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loaded == nil {
		return Info{}
	}
	return Info{
		Title:  m.loaded.Title,
		Path:   m.loaded.SourcePath(),
		Loaded: m.playing,
	}
}

func (m *Mock) failPendingLocked(err error) {
	for _, ch := range m.pending {
		ch <- err
		close(ch)
	}
	m.pending = nil
}

// Test helpers

// SetAutoResolve makes every later Play resolve immediately with err.
func (m *Mock) SetAutoResolve(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoResolve = true
	m.playErr = err
}

// ResolvePending resolves the oldest pending play with err.
// It reports false when nothing is pending.
func (m *Mock) ResolvePending(err error) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return false
	}
	ch := m.pending[0]
	m.pending = m.pending[1:]
	if err == nil {
		m.playing = true
	}
	ch <- err
	close(ch)
	return true
}

// PendingCount returns the number of unresolved plays.
func (m *Mock) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// SimulateEnded signals the end of the loaded track.
func (m *Mock) SimulateEnded() {
	m.mu.Lock()
	m.playing = false
	m.mu.Unlock()
	select {
	case m.ended <- struct{}{}:
	default:
	}
}

func (m *Mock) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

func (m *Mock) Disposed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.disposed
}

func (m *Mock) Level() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) ResetCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resetCalls
}

func (m *Mock) Volumes() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.volumes...)
}

// Verify Mock implements Resource at compile time.
var _ Resource = (*Mock)(nil)
