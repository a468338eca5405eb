// Package mpris exposes the turntable to desktop media keys over the MPRIS
// D-Bus interface. Requests are forwarded to the event loop through a send
// function; status is read from an atomically published snapshot so D-Bus
// goroutines never touch the controller.
package mpris

import (
	"sync/atomic"
	"time"

	"github.com/llehouerou/turntable/internal/audio"
	"github.com/llehouerou/turntable/internal/tracklist"
	"github.com/llehouerou/turntable/internal/turntable"
)

// Command is a media key request.
type Command int

const (
	CmdPlayPause Command = iota
	CmdPlay
	CmdPause
	CmdNext
	CmdPrevious
	CmdVolume
)

func (c Command) String() string {
	switch c {
	case CmdPlayPause:
		return "PlayPause"
	case CmdPlay:
		return "Play"
	case CmdPause:
		return "Pause"
	case CmdNext:
		return "Next"
	case CmdPrevious:
		return "Previous"
	case CmdVolume:
		return "Volume"
	default:
		return "Unknown"
	}
}

// Request is sent to the event loop. Volume is set for CmdVolume only.
type Request struct {
	Cmd    Command
	Volume int
}

// Snapshot is the player status visible to the desktop.
type Snapshot struct {
	Active     bool // a band detail view is open
	BandID     int
	BandName   string
	Title      string
	ArtworkURL string
	Album      string
	Phase      turntable.Phase
	Starting   bool
	Volume     int
	TrackCount int
	Position   time.Duration
	Duration   time.Duration
}

// NewSnapshot derives the published status of an open turntable.
func NewSnapshot(bandID int, bandName string, st turntable.State, track tracklist.Track, info audio.Info) Snapshot {
	return Snapshot{
		Active:     true,
		BandID:     bandID,
		BandName:   bandName,
		Title:      track.Title,
		ArtworkURL: track.ArtworkURL,
		Album:      info.Album,
		Phase:      st.Phase(),
		Starting:   st.Starting,
		Volume:     st.Volume,
		TrackCount: st.TrackCount,
		Position:   info.Position,
		Duration:   info.Duration,
	}
}

// Publisher holds the latest snapshot for concurrent readers.
type Publisher struct {
	snap atomic.Pointer[Snapshot]
}

// Publish replaces the snapshot.
func (p *Publisher) Publish(s Snapshot) {
	p.snap.Store(&s)
}

// Clear publishes the inactive snapshot.
func (p *Publisher) Clear() {
	p.snap.Store(&Snapshot{})
}

// Load returns the latest snapshot, inactive before the first Publish.
func (p *Publisher) Load() Snapshot {
	if s := p.snap.Load(); s != nil {
		return *s
	}
	return Snapshot{}
}
