package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/jamp/internal/config"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}
	for _, tt := range tests {
		log := New(&bytes.Buffer{}, config.LogConfig{Level: tt.level})
		if got := log.GetLevel(); got != tt.want {
			t.Errorf("New(level %q).GetLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, config.LogConfig{Level: "info", Format: "json"})

	WithComponent(log, "playback").WithField("frame", 42).Info("pause")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pause", entry["msg"])
	assert.Equal(t, "playback", entry["component"])
	assert.InDelta(t, 42, entry["frame"], 0)
}

func TestNew_TextFormatFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, config.LogConfig{Level: "warn"})

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestSetup_WritesToConfiguredFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	log, closer, err := Setup(fs, config.LogConfig{Level: "debug", File: "/state/jamp/jamp.log"})
	require.NoError(t, err)

	log.Debug("started")
	require.NoError(t, closer.Close())

	data, err := afero.ReadFile(fs, "/state/jamp/jamp.log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=started")
}

func TestSetup_Appends(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/logs/jamp.log", []byte("previous\n"), 0o644))

	log, closer, err := Setup(fs, config.LogConfig{File: "/logs/jamp.log"})
	require.NoError(t, err)
	log.Info("next")
	require.NoError(t, closer.Close())

	data, err := afero.ReadFile(fs, "/logs/jamp.log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "previous\n")
	assert.Contains(t, string(data), "msg=next")
}

func TestSetup_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, _, err := Setup(fs, config.LogConfig{File: "/logs/jamp.log"})

	assert.Error(t, err)
}
