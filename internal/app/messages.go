package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/turntable/internal/bandapi"
	"github.com/llehouerou/turntable/internal/mpris"
)

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these interfaces,
// so they are handled separately in the Update() switch.

// PlaybackMessage is implemented by messages related to the turntable.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// LoadingMessage is implemented by messages carrying band data.
type LoadingMessage interface {
	tea.Msg
	loadingMessage()
}

// BandsLoadedMsg carries the band list fetched at startup or on refresh.
type BandsLoadedMsg struct {
	Bands []bandapi.Band
	Err   error
}

func (BandsLoadedMsg) loadingMessage() {}

// BandLoadedMsg carries one band record. ID is the requested band so that
// answers to superseded requests can be dropped.
type BandLoadedMsg struct {
	ID   int
	Band *bandapi.Band
	Err  error
}

func (BandLoadedMsg) loadingMessage() {}

// PlayResultMsg is the outcome of a play started by the controller
// identified by Instance at generation Gen.
type PlayResultMsg struct {
	Instance string
	Gen      uint64
	Err      error
}

func (PlayResultMsg) playbackMessage() {}

// TrackEndedMsg reports that the loaded song of Instance played to its end.
type TrackEndedMsg struct {
	Instance string
}

func (TrackEndedMsg) playbackMessage() {}

// FrameMsg redraws the spinning disc while a controller plays.
type FrameMsg struct {
	Instance string
	Time     time.Time
}

func (FrameMsg) playbackMessage() {}

// RemoteMsg is a media key request from the desktop.
type RemoteMsg mpris.Request

func (RemoteMsg) playbackMessage() {}

// ErrorMsg shows a transient error in the status line.
type ErrorMsg struct {
	Text string
}
