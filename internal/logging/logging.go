// Package logging sets up the logrus logger. Logs go to a file because the
// TUI owns the terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/llehouerou/jamp/internal/config"
)

// DefaultFile is the log file path relative to the XDG state directory.
const DefaultFile = "jamp/jamp.log"

// Setup opens the log file described by cfg on fs and returns a logger
// writing to it. The caller closes the returned closer on exit.
func Setup(fs afero.Fs, cfg config.LogConfig) (*logrus.Logger, io.Closer, error) {
	path := cfg.File
	if path == "" {
		p, err := xdg.StateFile(DefaultFile)
		if err != nil {
			return nil, nil, fmt.Errorf("log path: %w", err)
		}
		path = p
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log := New(f, cfg)
	return log, f, nil
}

// New returns a logger writing to w with the level and format from cfg.
// Unknown levels fall back to info.
func New(w io.Writer, cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// WithComponent tags entries with the emitting component.
func WithComponent(log logrus.FieldLogger, component string) *logrus.Entry {
	return log.WithField("component", component)
}
