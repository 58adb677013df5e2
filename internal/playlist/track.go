package playlist

import (
	"errors"
	"fmt"
	"time"
)

// Track is one playable MP3 file with the metadata needed to address it by frame.
// Tracks are values and are never mutated after construction.
type Track struct {
	Path        string
	Title       string
	Artist      string
	Duration    time.Duration
	TotalFrames int
	FrameRate   float64 // decodable frames per millisecond
}

var (
	errNoPath      = errors.New("track has no path")
	errNoFrameRate = errors.New("track has no frame rate")
)

// NewTrack builds a track and derives its frame rate from the frame count and duration.
func NewTrack(path, title, artist string, duration time.Duration, totalFrames int) Track {
	t := Track{
		Path:        path,
		Title:       title,
		Artist:      artist,
		Duration:    duration,
		TotalFrames: totalFrames,
	}
	if ms := duration.Milliseconds(); ms > 0 {
		t.FrameRate = float64(totalFrames) / float64(ms)
	}
	return t
}

// Validate reports whether the track can be addressed by frame.
func (t Track) Validate() error {
	if t.Path == "" {
		return errNoPath
	}
	if t.FrameRate <= 0 {
		return fmt.Errorf("%s: %w", t.Path, errNoFrameRate)
	}
	return nil
}

// FrameAt converts an elapsed playback time to a frame index.
func (t Track) FrameAt(elapsed time.Duration) int {
	return int(float64(elapsed.Milliseconds()) * t.FrameRate)
}

// ElapsedAt converts a frame index to elapsed playback time.
func (t Track) ElapsedAt(frame int) time.Duration {
	if t.FrameRate <= 0 {
		return 0
	}
	return time.Duration(float64(frame)/t.FrameRate) * time.Millisecond
}

// Length formats the duration as mm:ss.
func (t Track) Length() string {
	total := int(t.Duration.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
