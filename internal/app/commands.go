package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/turntable/internal/turntable"
)

// fetchTimeout bounds one band API request.
const fetchTimeout = 15 * time.Second

func (m Model) loadBandsCmd() tea.Cmd {
	src := m.Bands
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		bands, err := src.Bands(ctx)
		return BandsLoadedMsg{Bands: bands, Err: err}
	}
}

func (m Model) loadBandCmd(id int) tea.Cmd {
	src := m.Bands
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		band, err := src.Band(ctx, id)
		return BandLoadedMsg{ID: id, Band: band, Err: err}
	}
}

// waitPlayCmd waits for the outcome of a play in flight.
func waitPlayCmd(instance string, p *turntable.Pending) tea.Cmd {
	return func() tea.Msg {
		err := <-p.Done
		return PlayResultMsg{Instance: instance, Gen: p.Gen, Err: err}
	}
}

// watchEndedCmd waits for the end of the loaded song. It returns nil once
// the controller is unmounted.
func watchEndedCmd(c *turntable.Controller, unmounted <-chan struct{}) tea.Cmd {
	ended := c.Ended()
	instance := c.ID()
	return func() tea.Msg {
		select {
		case <-ended:
			return TrackEndedMsg{Instance: instance}
		case <-unmounted:
			return nil
		}
	}
}

// frameCmd schedules the next disc redraw.
func frameCmd(instance string, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Instance: instance, Time: t}
	})
}
