package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DefaultFolder string `koanf:"default_folder"` // where the load prompt starts

	// Playback engine settings
	Playback PlaybackConfig `koanf:"playback"`

	// Log file settings
	Log LogConfig `koanf:"log"`

	// Desktop notifications on song change
	Notifications NotificationsConfig `koanf:"notifications"`

	// Interface appearance
	UI UIConfig `koanf:"ui"`
}

// PlaybackConfig holds engine timing and output volume.
type PlaybackConfig struct {
	TickInterval time.Duration `koanf:"tick_interval"` // position tick period (default: 50ms)
	StopTimeout  time.Duration `koanf:"stop_timeout"`  // pause handshake bound (default: 500ms)
	Volume       *float64      `koanf:"volume"`        // 0.0-1.0 (default: 1.0)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `koanf:"level"`  // "debug", "info", "warn", "error" (default: "info")
	Format string `koanf:"format"` // "text" or "json" (default: "text")
	File   string `koanf:"file"`   // empty means $XDG_STATE_HOME/jamp/jamp.log
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// UIConfig holds interface appearance settings.
type UIConfig struct {
	Icons string `koanf:"icons"` // "nerd", "unicode" or "none" (default: "unicode")
}

const (
	defaultTickInterval = 50 * time.Millisecond
	defaultStopTimeout  = 500 * time.Millisecond
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultIconStyle    = "unicode"
)

// Load reads the user and working-directory config files. Missing files are
// skipped.
func Load() (*Config, error) {
	return load(getConfigPaths(), "")
}

// LoadFile reads the user config, then path on top of it. Unlike the default
// locations, path must exist.
func LoadFile(path string) (*Config, error) {
	path = expandPath(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	return load(getConfigPaths()[:1], path)
}

func load(paths []string, explicit string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	if explicit != "" {
		paths = append(paths, explicit)
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		DefaultFolder: "", // empty means use cwd
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in paths
	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	cfg.UI.Icons = strings.ToLower(strings.TrimSpace(cfg.UI.Icons))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/jamp/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "jamp", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetPlaybackConfig returns the playback configuration with defaults applied.
func (c *Config) GetPlaybackConfig() PlaybackConfig {
	cfg := c.Playback

	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = defaultStopTimeout
	}
	volume := 1.0
	if cfg.Volume != nil && *cfg.Volume >= 0 && *cfg.Volume <= 1 {
		volume = *cfg.Volume
	}
	cfg.Volume = &volume

	return cfg
}

// VolumeLevel returns the configured volume, 1.0 when unset or out of range.
func (c *Config) VolumeLevel() float64 {
	return *c.GetPlaybackConfig().Volume
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Level = defaultLogLevel
	}
	if cfg.Format != "json" {
		cfg.Format = defaultLogFormat
	}

	return cfg
}

// NotificationsEnabled returns true unless notifications are explicitly disabled.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// IconStyle returns the configured icon set, "unicode" when unset or unknown.
func (c *Config) IconStyle() string {
	switch c.UI.Icons {
	case "nerd", "unicode", "none":
		return c.UI.Icons
	}
	return defaultIconStyle
}
