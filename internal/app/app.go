// Package app is the bubbletea model of the band browser: a band list and a
// band detail screen hosting the turntable.
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/turntable/internal/audio"
	"github.com/llehouerou/turntable/internal/bandapi"
	"github.com/llehouerou/turntable/internal/config"
	"github.com/llehouerou/turntable/internal/keymap"
	"github.com/llehouerou/turntable/internal/mpris"
	"github.com/llehouerou/turntable/internal/notify"
	"github.com/llehouerou/turntable/internal/state"
	"github.com/llehouerou/turntable/internal/turntable"
	"github.com/llehouerou/turntable/internal/ui/bandlist"
	"github.com/llehouerou/turntable/internal/ui/helpbindings"
	"github.com/llehouerou/turntable/internal/ui/turntableview"
)

// recentLimit is the number of plays shown in the history panel.
const recentLimit = 5

// volumeStep is the change of one volume key press.
const volumeStep = 5

// Screen is the visible top-level screen.
type Screen int

const (
	ScreenBands Screen = iota
	ScreenBand
)

// BandSource fetches band records.
type BandSource interface {
	Bands(ctx context.Context) ([]bandapi.Band, error)
	Band(ctx context.Context, id int) (*bandapi.Band, error)
}

// Verify Client implements BandSource at compile time.
var _ BandSource = (*bandapi.Client)(nil)

// ResourceFactory creates the playback resource of a newly opened band.
type ResourceFactory func() audio.Resource

// Options configures a Model.
type Options struct {
	Player    config.PlayerConfig
	StartBand int  // band opened once the list is loaded, 0 for none
	Today     bool // open the band for today once the list is loaded
	Publisher *mpris.Publisher
	Logger    *zap.Logger
	Now       func() time.Time

	Notifier      notify.Notifier // nil disables desktop notifications
	Notifications config.NotificationsConfig
}

// Model is the application state.
type Model struct {
	Bands       BandSource
	NewResource ResourceFactory
	StateMgr    state.Interface
	Publisher   *mpris.Publisher
	Log         *zap.Logger
	Keys        *keymap.Resolver

	Screen   Screen
	BandList bandlist.Model
	Help     helpbindings.Model
	ShowHelp bool

	// Band detail screen. Turntable is nil on the band list.
	Band      *bandapi.Band
	Turntable *turntable.Controller
	Menu      turntableview.Menu
	unmounted chan struct{}
	framing   bool

	Status      string // last transient error
	loadingBand int

	notifier            notify.Notifier
	notificationsConfig config.NotificationsConfig
	lastNowPlayingID    uint32

	Width  int
	Height int

	player    config.PlayerConfig
	policy    turntable.SelectPolicy
	volume    int
	startBand int
	today     bool
	now       func() time.Time
}

// New creates the application model. Player settings must already have
// their defaults applied.
func New(bands BandSource, newResource ResourceFactory, stateMgr state.Interface, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	policy, err := turntable.ParseSelectPolicy(opts.Player.SelectPolicy)
	if err != nil {
		log.Warn("invalid select policy, using toggle", zap.Error(err))
		policy = turntable.SelectToggle
	}

	m := Model{
		Bands:       bands,
		NewResource: newResource,
		StateMgr:    stateMgr,
		Publisher:   opts.Publisher,
		Log:         log,
		Keys:        keymap.NewResolver(keymap.Bindings),
		Screen:      ScreenBands,
		BandList:    bandlist.New(),
		player:      opts.Player,
		policy:      policy,
		volume:      turntable.DefaultVolume,
		startBand:   opts.StartBand,
		today:       opts.Today,
		now:         now,

		notifier:            opts.Notifier,
		notificationsConfig: opts.Notifications,
	}
	if opts.Player.InitialVolume != nil {
		m.volume = *opts.Player.InitialVolume
	}
	if m.rememberVolume() {
		if level, ok, err := stateMgr.GetVolume(); err != nil {
			log.Warn("read saved volume", zap.Error(err))
		} else if ok {
			m.volume = level
		}
	}
	m.refreshRecent()
	return m
}

// Init starts loading the band list.
func (m Model) Init() tea.Cmd {
	return m.loadBandsCmd()
}

// Shutdown disposes the open turntable. Safe to call more than once.
func (m *Model) Shutdown() {
	m.unmountBand()
}

func (m Model) rememberVolume() bool {
	return m.player.RememberVolume == nil || *m.player.RememberVolume
}

// Volume is the level applied to the next opened turntable.
func (m Model) Volume() int {
	return m.volume
}
