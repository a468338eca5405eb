// Package rotation drives the cosmetic spin of the turntable disc.
package rotation

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the time between two one-degree increments.
const DefaultInterval = 40 * time.Millisecond

// Animator increments an angle by one on every tick while running.
// The angle is unbounded; renderers take it modulo 360.
type Animator struct {
	interval time.Duration
	angle    atomic.Int64

	mu       sync.Mutex
	stop     chan struct{}
	wg       sync.WaitGroup
	disposed bool
}

// New creates a stopped animator. A non-positive interval selects
// DefaultInterval.
func New(interval time.Duration) *Animator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Animator{interval: interval}
}

// Interval returns the tick interval.
func (a *Animator) Interval() time.Duration {
	return a.interval
}

// Start begins ticking. It is a no-op when already running or disposed.
func (a *Animator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.disposed || a.stop != nil {
		return
	}
	stop := make(chan struct{})
	a.stop = stop
	a.wg.Add(1)
	go a.run(stop)
}

func (a *Animator) run(stop <-chan struct{}) {
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.angle.Add(1)
		case <-stop:
			return
		}
	}
}

// Stop cancels the ticker. When Stop returns no further increment happens
// until the next Start.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

func (a *Animator) stopLocked() {
	if a.stop == nil {
		return
	}
	close(a.stop)
	a.stop = nil
	a.wg.Wait()
}

// Dispose stops the animator for good. Idempotent.
func (a *Animator) Dispose() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
	a.disposed = true
}

// Running reports whether the ticker is active.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stop != nil
}

// Angle returns the accumulated rotation in degrees.
func (a *Animator) Angle() int64 {
	return a.angle.Load()
}
