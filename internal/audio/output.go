package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Output is the audio device. The default implementation is the process-wide
// beep speaker; tests substitute a fake.
type Output interface {
	// Init prepares the device for the given source rate and returns the
	// device rate. Calls after the first return the existing device rate.
	Init(sr beep.SampleRate) (beep.SampleRate, error)
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

type speakerOutput struct {
	mu   sync.Mutex
	rate beep.SampleRate
}

// Speaker is the shared system speaker. beep supports a single speaker per
// process, so every Handle uses the same instance by default.
var Speaker Output = &speakerOutput{}

func (s *speakerOutput) Init(sr beep.SampleRate) (beep.SampleRate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rate != 0 {
		return s.rate, nil
	}
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return 0, err
	}
	s.rate = sr
	return sr, nil
}

func (s *speakerOutput) Play(st beep.Streamer) { speaker.Play(st) }

func (s *speakerOutput) Clear() { speaker.Clear() }

func (s *speakerOutput) Lock() { speaker.Lock() }

func (s *speakerOutput) Unlock() { speaker.Unlock() }
