package app

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/turntable/internal/audio"
	"github.com/llehouerou/turntable/internal/bandapi"
	"github.com/llehouerou/turntable/internal/config"
	"github.com/llehouerou/turntable/internal/mpris"
	"github.com/llehouerou/turntable/internal/rotation"
	"github.com/llehouerou/turntable/internal/state"
	"github.com/llehouerou/turntable/internal/ui/testutil"
)

type fakeBands struct {
	bands []bandapi.Band
	err   error
}

func (f *fakeBands) Bands(context.Context) ([]bandapi.Band, error) {
	return f.bands, f.err
}

func (f *fakeBands) Band(_ context.Context, id int) (*bandapi.Band, error) {
	for i := range f.bands {
		if f.bands[i].ID == id {
			b := f.bands[i]
			return &b, nil
		}
	}
	return nil, bandapi.ErrNotFound
}

var testBands = []bandapi.Band{
	{ID: 1, Name: "The Rollers", HitSongs: "A, B, C", MusicPhoto: "i1, i2, i3"},
	{ID: 2, Name: "Quiet Hours", HitSongs: ""},
	{ID: 7, Name: "Northbound", HitSongs: "North, South"},
}

type harness struct {
	src   *fakeBands
	state *state.Mock
	pub   *mpris.Publisher
	mocks []*audio.Mock
}

func (h *harness) newResource() audio.Resource {
	m := audio.NewMock()
	h.mocks = append(h.mocks, m)
	return m
}

// lastMock returns the resource of the most recently opened band.
func (h *harness) lastMock(t *testing.T) *audio.Mock {
	t.Helper()
	require.NotEmpty(t, h.mocks, "no band was opened")
	return h.mocks[len(h.mocks)-1]
}

func newHarness() *harness {
	return &harness{
		src:   &fakeBands{bands: testBands},
		state: state.NewMock(),
		pub:   &mpris.Publisher{},
	}
}

func (h *harness) model(opts Options) Model {
	cfg := &config.Config{}
	if opts.Player.PageLength == 0 {
		opts.Player = cfg.GetPlayerConfig()
	}
	opts.Publisher = h.pub
	opts.Now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	m := New(h.src, h.newResource, h.state, opts)
	m, _ = m.update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	if !ok {
		t.Fatal("Update should return Model")
	}
	return result, cmd
}

// press sends a key through Update.
func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, testutil.Key(key))
}

// loaded returns a model with the band list loaded.
func (h *harness) loaded(t *testing.T) Model {
	t.Helper()
	m := h.model(Options{})
	m, _ = update(t, m, BandsLoadedMsg{Bands: testBands})
	return m
}

// opened returns a model showing band id.
func (h *harness) opened(t *testing.T, id int) Model {
	t.Helper()
	m := h.loaded(t)
	m, cmd := m.openBand(id)
	msg := testutil.ExecuteCmd(cmd)
	m, _ = update(t, m, msg)
	require.Equal(t, ScreenBand, m.Screen)
	require.NotNil(t, m.Turntable)
	return m
}

func TestUpdate_WindowSizeMsg_ResizesComponents(t *testing.T) {
	h := newHarness()
	m := h.model(Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})

	assert.Equal(t, 90, m.Width)
	assert.Equal(t, 30, m.Height)
	assert.Equal(t, 90, m.BandList.Width())
}

func TestInit_LoadsBands(t *testing.T) {
	h := newHarness()
	m := h.model(Options{})

	msg := testutil.ExecuteCmd(m.Init())
	loaded, ok := msg.(BandsLoadedMsg)
	require.True(t, ok, "Init should fetch the band list, got %T", msg)
	assert.Len(t, loaded.Bands, len(testBands))
	assert.NoError(t, loaded.Err)
}

func TestBandsLoaded_Error(t *testing.T) {
	h := newHarness()
	m := h.model(Options{})

	m, _ = update(t, m, BandsLoadedMsg{Err: context.DeadlineExceeded})

	assert.True(t, testutil.ContainsLine(m.View(), "request timed out"))
}

func TestBandsLoaded_RestoresSessionCursor(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.state.SaveSession(state.Session{BandID: 7, BandName: "Northbound"}))
	m := h.model(Options{})

	m, cmd := update(t, m, BandsLoadedMsg{Bands: testBands})

	assert.Nil(t, cmd, "restoring the cursor should not open the band")
	assert.Equal(t, 2, m.BandList.Cursor())
	assert.Equal(t, ScreenBands, m.Screen)
}

func TestBandsLoaded_StartBandOpensOnce(t *testing.T) {
	h := newHarness()
	m := h.model(Options{StartBand: 7})

	m, cmd := update(t, m, BandsLoadedMsg{Bands: testBands})
	require.NotNil(t, cmd)
	msg := testutil.ExecuteCmd(cmd)
	band, ok := msg.(BandLoadedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, 7, band.ID)

	// A refresh does not reopen the band.
	_, cmd = update(t, m, BandsLoadedMsg{Bands: testBands})
	assert.Nil(t, cmd)
}

func TestBandsLoaded_TodayOpensBandForToday(t *testing.T) {
	h := newHarness()
	m := h.model(Options{Today: true})

	m, cmd := update(t, m, BandsLoadedMsg{Bands: testBands})
	require.NotNil(t, cmd)
	msg, ok := testutil.ExecuteCmd(cmd).(BandLoadedMsg)
	require.True(t, ok)

	want := testBands[bandapi.ForToday(len(testBands), m.now())].ID
	assert.Equal(t, want, msg.ID)
}

func TestOpenBand_MountsTurntable(t *testing.T) {
	h := newHarness()
	h.state.SaveVolume(30)
	m := h.opened(t, 1)

	assert.Equal(t, "The Rollers", m.Band.Name)
	assert.Equal(t, 3, m.Turntable.List().Len())
	assert.Equal(t, 30, m.Turntable.State().Volume, "saved volume applies")

	session, err := h.state.GetSession()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, 1, session.BandID)

	snap := h.pub.Load()
	assert.True(t, snap.Active)
	assert.Equal(t, "The Rollers", snap.BandName)
	assert.Equal(t, "A", snap.Title)
}

func TestOpenBand_StaleResultDropped(t *testing.T) {
	h := newHarness()
	m := h.loaded(t)

	m, _ = m.openBand(1)
	m, _ = m.openBand(7)

	m, _ = update(t, m, BandLoadedMsg{ID: 1, Band: &testBands[0]})
	assert.Equal(t, ScreenBands, m.Screen)
	assert.Empty(t, h.mocks)

	m, _ = update(t, m, BandLoadedMsg{ID: 7, Band: &testBands[2]})
	assert.Equal(t, ScreenBand, m.Screen)
	assert.Equal(t, 7, m.Band.ID)
}

func TestOpenBand_NotFound(t *testing.T) {
	h := newHarness()
	m := h.loaded(t)

	m, cmd := m.openBand(99)
	m, _ = update(t, m, testutil.ExecuteCmd(cmd))

	assert.Equal(t, ScreenBands, m.Screen)
	assert.Contains(t, m.Status, "band not found")
	assert.True(t, testutil.ContainsLine(m.View(), "band not found"))
}

func TestKeys_EnterOpensSelectedBand(t *testing.T) {
	h := newHarness()
	m := h.loaded(t)

	m, _ = press(t, m, "j")
	m, cmd := press(t, m, "enter")

	msg, ok := testutil.ExecuteCmd(cmd).(BandLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, 2, msg.ID)
}

func TestKeys_RecentToggle(t *testing.T) {
	h := newHarness()
	m := h.loaded(t)

	m, _ = press(t, m, "R")
	assert.True(t, m.BandList.ShowRecent())

	m, _ = press(t, m, "esc")
	assert.False(t, m.BandList.ShowRecent())
}

func TestKeys_Refresh(t *testing.T) {
	h := newHarness()
	m := h.loaded(t)

	_, cmd := press(t, m, "r")
	_, ok := testutil.ExecuteCmd(cmd).(BandsLoadedMsg)
	assert.True(t, ok)
}

func TestKeys_Help(t *testing.T) {
	h := newHarness()
	m := h.loaded(t)

	m, _ = press(t, m, "?")
	require.True(t, m.ShowHelp)
	assert.True(t, testutil.ContainsLine(m.View(), "Band List"))

	// q closes the overlay instead of quitting.
	m, cmd := press(t, m, "q")
	assert.False(t, m.ShowHelp)
	assert.Nil(t, cmd)
}

func TestKeys_QuitDisposesTurntable(t *testing.T) {
	h := newHarness()
	m := h.opened(t, 1)
	mock := h.lastMock(t)

	m, cmd := press(t, m, "q")

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.True(t, mock.Disposed())
	assert.Nil(t, m.Turntable)
}

func TestView_BandList(t *testing.T) {
	h := newHarness()
	m := h.loaded(t)

	out := m.View()
	for _, want := range []string{"Turntable", "The Rollers", "Northbound", "enter open"} {
		assert.True(t, testutil.ContainsLine(out, want), "expected %q in:\n%s", want, testutil.StripANSI(out))
	}
	assert.LessOrEqual(t, testutil.CountLines(out), 40)
}

func TestView_BandDetail(t *testing.T) {
	for _, width := range []int{80, 140} {
		h := newHarness()
		m := h.opened(t, 1)
		m, _ = update(t, m, tea.WindowSizeMsg{Width: width, Height: 50})

		out := m.View()
		for _, want := range []string{"The Rollers", "esc back"} {
			assert.True(t, testutil.ContainsLine(out, want), "width %d: expected %q in:\n%s", width, want, testutil.StripANSI(out))
		}
	}
}

func TestView_EmptyBeforeSize(t *testing.T) {
	h := newHarness()
	m := New(h.src, h.newResource, h.state, Options{})
	assert.Empty(t, m.View())
}

func TestRotationInterval(t *testing.T) {
	tests := []struct {
		name string
		ms   int
		want time.Duration
	}{
		{"configured", 25, 25 * time.Millisecond},
		{"unset", 0, rotation.DefaultInterval},
		{"negative", -10, rotation.DefaultInterval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := (&config.Config{}).GetPlayerConfig()
			player.RotationIntervalMs = tt.ms
			m := newHarness().model(Options{Player: player})
			assert.Equal(t, tt.want, m.rotationInterval())
		})
	}
}
