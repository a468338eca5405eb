package state

import "sync"

// Mock is a test double for Manager.
type Mock struct {
	mu       sync.Mutex
	volume   *int
	session  *Session
	plays    []Play
	closed   bool
	saveErr  error
	volSaves []int
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetVolume() (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.volume == nil {
		return 0, false, nil
	}
	return *m.volume, true, nil
}

func (m *Mock) SaveVolume(level int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = &level
	m.volSaves = append(m.volSaves, level)
}

func (m *Mock) GetSession() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, nil //nolint:nilnil // mirrors Manager on first run
	}
	s := *m.session
	return &s, nil
}

func (m *Mock) SaveSession(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.session = &s
	return nil
}

func (m *Mock) RecordPlay(p Play) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.plays = append([]Play{p}, m.plays...)
	if m.session != nil && m.session.BandID == p.BandID {
		m.session.TrackTitle = p.TrackTitle
	}
	return nil
}

func (m *Mock) RecentPlays(limit int) ([]Play, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := min(limit, len(m.plays))
	return append([]Play(nil), m.plays[:n]...), nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *Mock) VolumeSaves() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.volSaves...)
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
