package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultAPIURL   = "http://127.0.0.1:8000/api/v1"
	DefaultSongsURL = "http://127.0.0.1:8000"
)

type Config struct {
	APIURL   string `koanf:"api_url"`   // band REST API root
	SongsURL string `koanf:"songs_url"` // http(s) base or local directory holding songs/
	Icons    string `koanf:"icons"`     // "nerd", "unicode", or "none"

	Player        PlayerConfig        `koanf:"player"`
	Log           LogConfig           `koanf:"log"`
	MPRIS         MPRISConfig         `koanf:"mpris"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

// PlayerConfig holds turntable behavior settings.
type PlayerConfig struct {
	PageLength         int    `koanf:"page_length"`          // songs per menu page (default: 5)
	RotationIntervalMs int    `koanf:"rotation_interval_ms"` // disc tick (default: 40)
	InitialVolume      *int   `koanf:"initial_volume"`       // 0-100 (default: 50)
	SelectPolicy       string `koanf:"select_policy"`        // "toggle" or "play" (default: "toggle")
	FollowCurrent      bool   `koanf:"follow_current"`       // menu page follows skips
	RememberVolume     *bool  `koanf:"remember_volume"`      // persist volume across runs (default: true)
}

// LogConfig holds log file settings.
type LogConfig struct {
	Level      string `koanf:"level"`        // debug, info, warn, error (default: info)
	File       string `koanf:"file"`         // default: $XDG_STATE_HOME/turntable/turntable.log
	MaxSizeMB  int    `koanf:"max_size_mb"`  // default: 10
	MaxBackups int    `koanf:"max_backups"`  // default: 3
	MaxAgeDays int    `koanf:"max_age_days"` // default: 28
	Compress   *bool  `koanf:"compress"`     // default: true
}

// MPRISConfig holds desktop media key integration settings.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled    *bool `koanf:"enabled"`     // default: true
	NowPlaying *bool `koanf:"now_playing"` // notify when a song starts (default: true)
	Timeout    int   `koanf:"timeout_ms"`  // default: 5000
}

// Load reads the default config files.
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles reads the given TOML files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		APIURL:   DefaultAPIURL,
		SongsURL: DefaultSongsURL,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize trims URLs and expands ~ in paths. Call it again after
// overriding fields.
func (c *Config) Normalize() {
	c.APIURL = strings.TrimSuffix(c.APIURL, "/")
	c.SongsURL = strings.TrimSuffix(c.SongsURL, "/")
	if !isHTTP(c.SongsURL) {
		c.SongsURL = expandPath(c.SongsURL)
	}
	if c.Log.File != "" {
		c.Log.File = expandPath(c.Log.File)
	}
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/turntable/config.toml
		filepath.Join(xdg.ConfigHome, "turntable", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func isHTTP(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player

	if cfg.PageLength <= 0 {
		cfg.PageLength = 5
	}
	if cfg.RotationIntervalMs <= 0 {
		cfg.RotationIntervalMs = 40
	}
	if cfg.InitialVolume == nil {
		v := 50
		cfg.InitialVolume = &v
	} else {
		v := min(max(*cfg.InitialVolume, 0), 100)
		cfg.InitialVolume = &v
	}
	if cfg.SelectPolicy == "" {
		cfg.SelectPolicy = "toggle"
	}
	if cfg.RememberVolume == nil {
		t := true
		cfg.RememberVolume = &t
	}

	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, "turntable", "turntable.log")
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 28
	}
	if cfg.Compress == nil {
		t := true
		cfg.Compress = &t
	}

	return cfg
}

// MPRISEnabled reports whether media key integration is on.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}

// GetNotificationsConfig returns the notification configuration with
// defaults applied.
func (c *Config) GetNotificationsConfig() NotificationsConfig {
	cfg := c.Notifications

	if cfg.Enabled == nil {
		t := true
		cfg.Enabled = &t
	}
	if cfg.NowPlaying == nil {
		t := true
		cfg.NowPlaying = &t
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5000
	}

	return cfg
}

// NowPlayingEnabled reports whether song start notifications are sent.
func (n NotificationsConfig) NowPlayingEnabled() bool {
	return n.Enabled != nil && *n.Enabled && n.NowPlaying != nil && *n.NowPlaying
}
