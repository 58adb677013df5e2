package playback

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/llehouerou/jamp/internal/playlist"
)

const (
	// DefaultTickInterval coalesces the nominal 1ms position quantum.
	DefaultTickInterval = 50 * time.Millisecond

	// DefaultStopTimeout bounds the pause handshake.
	DefaultStopTimeout = 500 * time.Millisecond
)

// Option configures an Engine.
type Option func(*Engine)

// WithTickInterval sets how often position ticks are emitted.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.tickInterval = d
		}
	}
}

// WithStopTimeout sets how long a stop waits for the decoder's frame report.
func WithStopTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.stopTimeout = d
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTrackReader sets the reader used by LoadFile and LoadPlaylistFile.
func WithTrackReader(r playlist.TrackReader) Option {
	return func(e *Engine) {
		if r != nil {
			e.reader = r
		}
	}
}

// WithFs sets the filesystem playlist files are read from.
func WithFs(fs afero.Fs) Option {
	return func(e *Engine) {
		if fs != nil {
			e.fs = fs
		}
	}
}
