package playback

import (
	"errors"
	"fmt"

	"github.com/llehouerou/jamp/internal/playlist"
)

// ErrorKind classifies errors published on the Error channel.
type ErrorKind int

const (
	KindTrackLoad ErrorKind = iota + 1
	KindEmptyPlaylist
	KindDecode
	KindStopTimeout
)

func (k ErrorKind) String() string {
	switch k {
	case KindTrackLoad:
		return "TrackLoad"
	case KindEmptyPlaylist:
		return "EmptyPlaylist"
	case KindDecode:
		return "Decode"
	case KindStopTimeout:
		return "StopTimeout"
	default:
		return "Unknown"
	}
}

var (
	// ErrEmptyPlaylist is returned when loading a playlist with no tracks.
	ErrEmptyPlaylist = fmt.Errorf("load playlist: %w", playlist.ErrEmpty)

	// ErrStopTimeout is published when a stream does not confirm a stop in time.
	ErrStopTimeout = errors.New("playback did not stop in time")

	// ErrClosed is returned by commands issued after Close.
	ErrClosed = errors.New("engine closed")
)

// TrackLoadError reports a track that could not be read or is unplayable.
// The engine state is left as it was.
type TrackLoadError struct {
	Path string
	Err  error
}

func (e *TrackLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *TrackLoadError) Unwrap() error { return e.Err }

// DecodeError reports a stream that failed to open or failed mid-playback.
// The engine moves to Stopped and does not retry.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// kindOf maps an error returned by a command to its ErrorKind.
func kindOf(err error) ErrorKind {
	var loadErr *TrackLoadError
	var decodeErr *DecodeError
	switch {
	case errors.As(err, &loadErr):
		return KindTrackLoad
	case errors.As(err, &decodeErr):
		return KindDecode
	case errors.Is(err, playlist.ErrEmpty):
		return KindEmptyPlaylist
	case errors.Is(err, ErrStopTimeout):
		return KindStopTimeout
	default:
		return 0
	}
}
