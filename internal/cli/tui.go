package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/turntable/internal/app"
	"github.com/llehouerou/turntable/internal/audio"
	"github.com/llehouerou/turntable/internal/bandapi"
	"github.com/llehouerou/turntable/internal/config"
	"github.com/llehouerou/turntable/internal/errmsg"
	"github.com/llehouerou/turntable/internal/icons"
	"github.com/llehouerou/turntable/internal/logger"
	"github.com/llehouerou/turntable/internal/mpris"
	"github.com/llehouerou/turntable/internal/notify"
	"github.com/llehouerou/turntable/internal/state"
	"github.com/llehouerou/turntable/internal/stderr"
)

// newLogger opens the log file described by cfg.
func newLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	lc := cfg.GetLogConfig()
	return logger.Init(logger.Config{
		Level:      lc.Level,
		File:       lc.File,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAgeDays: lc.MaxAgeDays,
		Compress:   *lc.Compress,
	})
}

func runTUI(cfg *config.Config, f *flags) error {
	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()

	// Decoder and audio backend warnings would corrupt the screen.
	if err := stderr.Start(log); err != nil {
		log.Warn("redirect stderr", zap.Error(err))
	}
	defer stderr.Stop()

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			log.Warn("close state", zap.Error(err))
		}
	}()

	player := cfg.GetPlayerConfig()
	opener := audio.NewOpener(cfg.SongsURL)
	newResource := func() audio.Resource {
		return audio.NewHandle(opener, audio.WithLogger(log))
	}

	notifier, err := notify.New()
	if err != nil {
		log.Warn("desktop notifications", zap.Error(err))
		notifier = nil
	}

	pub := &mpris.Publisher{}
	m := app.New(bandapi.New(cfg.APIURL), newResource, stateMgr, app.Options{
		Player:        player,
		StartBand:     f.band,
		Today:         f.today,
		Publisher:     pub,
		Logger:        log,
		Notifier:      notifier,
		Notifications: cfg.GetNotificationsConfig(),
	})

	log.Info("starting",
		zap.String("api_url", cfg.APIURL),
		zap.String("songs_url", cfg.SongsURL),
		zap.Int("band", f.band),
		zap.Bool("today", f.today))

	p := tea.NewProgram(m, tea.WithAltScreen())

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New("turntable", pub, func(r mpris.Request) { p.Send(app.RemoteMsg(r)) }, log)
		if err != nil {
			log.Warn("start mpris", zap.Error(err))
			go p.Send(app.ErrorMsg{Text: errmsg.Format(errmsg.OpInitialize, err)})
		} else {
			defer func() {
				if err := adapter.Close(); err != nil {
					log.Debug("close mpris", zap.Error(err))
				}
			}()
		}
	}

	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Shutdown()
	}
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
