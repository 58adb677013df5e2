//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/music/playlists/road.txt",
			expected: filepath.Join(home, "music", "playlists", "road.txt"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "jamp", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestGetPlaybackConfig_Defaults(t *testing.T) {
	cfg := Config{}

	pb := cfg.GetPlaybackConfig()

	if pb.TickInterval != 50*time.Millisecond {
		t.Errorf("TickInterval = %v, want 50ms", pb.TickInterval)
	}
	if pb.StopTimeout != 500*time.Millisecond {
		t.Errorf("StopTimeout = %v, want 500ms", pb.StopTimeout)
	}
	if pb.Volume == nil || *pb.Volume != 1.0 {
		t.Errorf("Volume = %v, want 1.0", pb.Volume)
	}
}

func TestGetPlaybackConfig_Volume(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		want   float64
	}{
		{"in range", 0.4, 0.4},
		{"zero is valid", 0, 0},
		{"negative falls back", -0.5, 1.0},
		{"above one falls back", 1.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.volume
			cfg := Config{Playback: PlaybackConfig{Volume: &v}}

			if got := cfg.VolumeLevel(); got != tt.want {
				t.Errorf("VolumeLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetPlaybackConfig_DoesNotMutate(t *testing.T) {
	cfg := Config{}

	_ = cfg.GetPlaybackConfig()

	if cfg.Playback.Volume != nil {
		t.Error("GetPlaybackConfig() modified the receiver")
	}
}

func TestGetLogConfig(t *testing.T) {
	tests := []struct {
		name       string
		log        LogConfig
		wantLevel  string
		wantFormat string
	}{
		{"defaults", LogConfig{}, "info", "text"},
		{"debug json", LogConfig{Level: "debug", Format: "json"}, "debug", "json"},
		{"unknown level", LogConfig{Level: "verbose"}, "info", "text"},
		{"unknown format", LogConfig{Format: "xml"}, "info", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Log: tt.log}

			got := cfg.GetLogConfig()

			if got.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", got.Level, tt.wantLevel)
			}
			if got.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", got.Format, tt.wantFormat)
			}
		})
	}
}

func TestNotificationsEnabled(t *testing.T) {
	enabled, disabled := true, false

	tests := []struct {
		name     string
		value    *bool
		expected bool
	}{
		{"unset defaults to enabled", nil, true},
		{"explicitly enabled", &enabled, true},
		{"explicitly disabled", &disabled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Notifications: NotificationsConfig{Enabled: tt.value}}
			if got := cfg.NotificationsEnabled(); got != tt.expected {
				t.Errorf("NotificationsEnabled() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIconStyle(t *testing.T) {
	tests := []struct {
		icons    string
		expected string
	}{
		{"", "unicode"},
		{"nerd", "nerd"},
		{"none", "none"},
		{"emoji", "unicode"},
	}

	for _, tt := range tests {
		cfg := Config{UI: UIConfig{Icons: tt.icons}}
		if got := cfg.IconStyle(); got != tt.expected {
			t.Errorf("IconStyle() with %q = %q, want %q", tt.icons, got, tt.expected)
		}
	}
}

// chdirTemp runs the test from an empty temporary directory.
func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func TestLoad_EmptyConfig(t *testing.T) {
	chdirTemp(t)

	if err := os.WriteFile("config.toml", []byte(""), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	chdirTemp(t)

	configContent := `
default_folder = "/srv/music"

[playback]
tick_interval = "100ms"
stop_timeout = "2s"
volume = 0.5

[log]
level = "DEBUG"
format = "json"

[notifications]
enabled = false

[ui]
icons = " Nerd "
`
	if err := os.WriteFile("config.toml", []byte(configContent), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DefaultFolder != "/srv/music" {
		t.Errorf("DefaultFolder = %q, want %q", cfg.DefaultFolder, "/srv/music")
	}

	pb := cfg.GetPlaybackConfig()
	if pb.TickInterval != 100*time.Millisecond {
		t.Errorf("TickInterval = %v, want 100ms", pb.TickInterval)
	}
	if pb.StopTimeout != 2*time.Second {
		t.Errorf("StopTimeout = %v, want 2s", pb.StopTimeout)
	}
	if *pb.Volume != 0.5 {
		t.Errorf("Volume = %v, want 0.5", *pb.Volume)
	}

	// Level is normalized to lower case
	if got := cfg.GetLogConfig().Level; got != "debug" {
		t.Errorf("Log.Level = %q, want %q", got, "debug")
	}
	if got := cfg.GetLogConfig().Format; got != "json" {
		t.Errorf("Log.Format = %q, want %q", got, "json")
	}

	if cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = true, want false")
	}

	if got := cfg.IconStyle(); got != "nerd" {
		t.Errorf("IconStyle() = %q, want %q", got, "nerd")
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	chdirTemp(t)

	if err := os.WriteFile("config.toml", []byte("invalid = [[["), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for invalid TOML, got nil")
	}
}

func TestLoad_PathExpansion(t *testing.T) {
	chdirTemp(t)

	configContent := `
default_folder = "~/music"

[log]
file = "~/logs/jamp.log"
`
	if err := os.WriteFile("config.toml", []byte(configContent), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	home, _ := os.UserHomeDir()
	if expected := filepath.Join(home, "music"); cfg.DefaultFolder != expected {
		t.Errorf("DefaultFolder = %q, want %q", cfg.DefaultFolder, expected)
	}
	if expected := filepath.Join(home, "logs", "jamp.log"); cfg.Log.File != expected {
		t.Errorf("Log.File = %q, want %q", cfg.Log.File, expected)
	}
}

func TestLoadFile(t *testing.T) {
	chdirTemp(t)

	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[playback]\nstop_timeout = \"1s\"\n"), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got := cfg.GetPlaybackConfig().StopTimeout; got != time.Second {
		t.Errorf("StopTimeout = %v, want 1s", got)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("LoadFile() expected error for missing file, got nil")
	}
}
