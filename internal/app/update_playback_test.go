package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/turntable/internal/audio"
	"github.com/llehouerou/turntable/internal/config"
	"github.com/llehouerou/turntable/internal/mpris"
	"github.com/llehouerou/turntable/internal/turntable"
	"github.com/llehouerou/turntable/internal/ui/testutil"
)

// resolve completes the oldest pending play and feeds the outcome back.
func resolve(t *testing.T, m Model, mock *audio.Mock, err error) Model {
	t.Helper()
	gen := m.Turntable.Gen()
	require.True(t, mock.ResolvePending(err), "no play pending")
	m, _ = update(t, m, PlayResultMsg{Instance: m.Turntable.ID(), Gen: gen, Err: err})
	return m
}

func TestPlayPause_StartsAndRecordsPlay(t *testing.T) {
	h := newHarness()
	m := h.opened(t, 1)
	mock := h.lastMock(t)

	m, cmd := press(t, m, " ")
	require.NotNil(t, cmd, "a play should be tracked")
	assert.True(t, m.Turntable.State().Starting)
	assert.True(t, m.framing)

	m = resolve(t, m, mock, nil)

	st := m.Turntable.State()
	assert.True(t, st.IsPlaying)
	assert.Equal(t, turntable.Playing, st.Phase())

	plays, err := h.state.RecentPlays(5)
	require.NoError(t, err)
	require.Len(t, plays, 1)
	assert.Equal(t, "A", plays[0].TrackTitle)
	assert.Equal(t, "The Rollers", plays[0].BandName)
	assert.Equal(t, turntable.Playing, h.pub.Load().Phase)
}

func TestPlayPause_FailureShownNotRecorded(t *testing.T) {
	h := newHarness()
	m := h.opened(t, 1)
	mock := h.lastMock(t)

	m, _ = press(t, m, " ")
	m = resolve(t, m, mock, audio.ErrNotFound)

	st := m.Turntable.State()
	assert.False(t, st.IsPlaying)
	assert.ErrorIs(t, st.LastError, audio.ErrNotFound)
	assert.True(t, testutil.ContainsLine(m.View(), "song file not found"))

	plays, _ := h.state.RecentPlays(5)
	assert.Empty(t, plays)
}

func TestBack_DisposesAndDropsLateResult(t *testing.T) {
	h := newHarness()
	m := h.opened(t, 1)
	mock := h.lastMock(t)

	m, _ = press(t, m, " ")
	instance, gen := m.Turntable.ID(), m.Turntable.Gen()

	m, _ = press(t, m, "esc")
	assert.Equal(t, ScreenBands, m.Screen)
	assert.Nil(t, m.Turntable)
	assert.True(t, mock.Disposed())
	assert.False(t, h.pub.Load().Active)

	// The disposed resource fails its pending play; the result is dropped.
	m, _ = update(t, m, PlayResultMsg{Instance: instance, Gen: gen})
	assert.Nil(t, m.Turntable)
	plays, _ := h.state.RecentPlays(5)
	assert.Empty(t, plays)
}

func TestBack_StopsEndWatcher(t *testing.T) {
	h := newHarness()
	m := h.loaded(t)

	m, cmd := m.openBand(1)
	m, watch := update(t, m, testutil.ExecuteCmd(cmd))
	require.NotNil(t, watch)

	_, _ = press(t, m, "esc")

	done := make(chan any, 1)
	go func() { done <- watch() }()
	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("end watcher still blocked after unmount")
	}
}

func TestReopen_StaleMessagesIgnored(t *testing.T) {
	h := newHarness()
	m := h.opened(t, 1)
	old := m.Turntable.ID()

	m, _ = press(t, m, "esc")
	m, cmd := m.openBand(7)
	m, _ = update(t, m, testutil.ExecuteCmd(cmd))
	require.NotEqual(t, old, m.Turntable.ID())

	m, cmd = update(t, m, TrackEndedMsg{Instance: old})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Turntable.State().CurrentIndex)

	m, cmd = update(t, m, FrameMsg{Instance: old})
	assert.Nil(t, cmd)
}

func TestTrackEnded_AdvancesWhilePlaying(t *testing.T) {
	h := newHarness()
	m := h.opened(t, 1)
	mock := h.lastMock(t)

	m, _ = press(t, m, " ")
	m = resolve(t, m, mock, nil)

	m, cmd := update(t, m, TrackEndedMsg{Instance: m.Turntable.ID()})
	require.NotNil(t, cmd)

	st := m.Turntable.State()
	assert.Equal(t, 1, st.CurrentIndex)
	assert.Equal(t, turntable.Forward, st.Slide)
	assert.True(t, st.Starting)
}

func TestSkipKeys(t *testing.T) {
	h := newHarness()
	m := h.opened(t, 1)

	m, _ = press(t, m, "p")
	st := m.Turntable.State()
	assert.Equal(t, 2, st.CurrentIndex)
	assert.Equal(t, turntable.Backward, st.Slide)

	m, _ = press(t, m, "n")
	st = m.Turntable.State()
	assert.Equal(t, 0, st.CurrentIndex)
	assert.Equal(t, turntable.Forward, st.Slide)
}

func TestVolumeKeys_Persist(t *testing.T) {
	h := newHarness()
	m := h.opened(t, 1)

	m, _ = press(t, m, "+")
	assert.Equal(t, 55, m.Turntable.State().Volume)
	assert.Equal(t, 55, m.Volume())
	assert.Equal(t, []int{55}, h.state.VolumeSaves())

	for range 30 {
		m, _ = press(t, m, "-")
	}
	assert.Equal(t, 0, m.Turntable.State().Volume)
}

func TestVolumeKeys_NotPersistedWhenDisabled(t *testing.T) {
	h := newHarness()
	off := false
	player := (&config.Config{}).GetPlayerConfig()
	player.RememberVolume = &off
	m := h.model(Options{Player: player})
	m, _ = update(t, m, BandsLoadedMsg{Bands: testBands})
	m, cmd := m.openBand(1)
	m, _ = update(t, m, testutil.ExecuteCmd(cmd))

	m, _ = press(t, m, "+")
	assert.Equal(t, 55, m.Turntable.State().Volume)
	assert.Empty(t, h.state.VolumeSaves())

	// The level still carries over to the next band in this run.
	m, _ = press(t, m, "esc")
	m, cmd = m.openBand(7)
	m, _ = update(t, m, testutil.ExecuteCmd(cmd))
	assert.Equal(t, 55, m.Turntable.State().Volume)
}

func TestMenu_SelectPlaysHighlightedSong(t *testing.T) {
	h := newHarness()
	m := h.opened(t, 1)

	m, _ = press(t, m, "m")
	require.True(t, m.Menu.Open())
	assert.Equal(t, 0, m.Menu.Cursor())

	m, _ = press(t, m, "j")
	m, _ = press(t, m, "j")
	assert.Equal(t, 2, m.Menu.Cursor())

	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)
	st := m.Turntable.State()
	assert.Equal(t, 2, st.CurrentIndex)
	assert.True(t, st.Starting)
}

func TestMenu_EnterIgnoredWhenClosed(t *testing.T) {
	h := newHarness()
	m := h.opened(t, 1)

	m, cmd := press(t, m, "enter")
	assert.Nil(t, cmd)
	assert.Equal(t, turntable.Idle, m.Turntable.State().Phase())
}

func TestEmptyBand_TransportIsNoop(t *testing.T) {
	h := newHarness()
	m := h.opened(t, 2)

	for _, key := range []string{" ", "n", "p", "m", "enter"} {
		var cmd tea.Cmd
		m, cmd = press(t, m, key)
		assert.Nil(t, cmd, "key %q", key)
	}
	assert.Equal(t, turntable.NoTrack, m.Turntable.State().CurrentIndex)
	assert.True(t, testutil.ContainsLine(m.View(), "No songs for this band"))
}

func TestFrame_StopsWhenPaused(t *testing.T) {
	h := newHarness()
	m := h.opened(t, 1)
	mock := h.lastMock(t)

	m, _ = press(t, m, " ")
	m = resolve(t, m, mock, nil)

	m, cmd := update(t, m, FrameMsg{Instance: m.Turntable.ID()})
	assert.NotNil(t, cmd, "frames continue while playing")

	m, _ = press(t, m, " ")
	m, cmd = update(t, m, FrameMsg{Instance: m.Turntable.ID()})
	assert.Nil(t, cmd)
	assert.False(t, m.framing)
}

func TestRemote(t *testing.T) {
	h := newHarness()
	m := h.opened(t, 1)
	mock := h.lastMock(t)

	// Pause while idle does nothing.
	m, cmd := update(t, m, RemoteMsg{Cmd: mpris.CmdPause})
	assert.Nil(t, cmd)

	m, cmd = update(t, m, RemoteMsg{Cmd: mpris.CmdPlay})
	require.NotNil(t, cmd)
	m = resolve(t, m, mock, nil)

	// Play while playing does nothing.
	m, cmd = update(t, m, RemoteMsg{Cmd: mpris.CmdPlay})
	assert.Nil(t, cmd)
	assert.True(t, m.Turntable.State().IsPlaying)

	m, _ = update(t, m, RemoteMsg{Cmd: mpris.CmdNext})
	assert.Equal(t, 1, m.Turntable.State().CurrentIndex)

	m, _ = update(t, m, RemoteMsg{Cmd: mpris.CmdPrevious})
	assert.Equal(t, 0, m.Turntable.State().CurrentIndex)

	m, _ = update(t, m, RemoteMsg{Cmd: mpris.CmdVolume, Volume: 80})
	assert.Equal(t, 80, m.Turntable.State().Volume)
	assert.Equal(t, 80, h.pub.Load().Volume)

	m, _ = update(t, m, RemoteMsg{Cmd: mpris.CmdPause})
	assert.False(t, m.Turntable.State().IsPlaying)
	assert.False(t, m.Turntable.State().Starting)
}

func TestRemote_IgnoredWithoutTurntable(t *testing.T) {
	h := newHarness()
	m := h.loaded(t)

	_, cmd := update(t, m, RemoteMsg{Cmd: mpris.CmdPlayPause})
	assert.Nil(t, cmd)
}

func TestErrorMsg_ShownInFooter(t *testing.T) {
	h := newHarness()
	m := h.loaded(t)

	m, _ = update(t, m, ErrorMsg{Text: "Failed to save volume: boom"})
	assert.True(t, testutil.ContainsLine(m.View(), "boom"))
}
