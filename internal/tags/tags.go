// Package tags reads the metadata needed to play an MP3 file: its title and
// artist tags and the audio properties that map time to frames.
package tags

import (
	"path/filepath"
	"strings"
	"time"
)

// ExtMP3 is the only extension the player accepts.
const ExtMP3 = ".mp3"

// Unknown replaces a missing title or artist.
const Unknown = "Unknown"

// Tag contains the tag metadata shown for a track.
type Tag struct {
	Path   string
	Title  string
	Artist string
	Album  string
}

// withDefaults fills empty fields with Unknown.
func (t *Tag) withDefaults() *Tag {
	if strings.TrimSpace(t.Title) == "" {
		t.Title = Unknown
	}
	if strings.TrimSpace(t.Artist) == "" {
		t.Artist = Unknown
	}
	return t
}

// AudioInfo contains audio stream properties (not tags).
type AudioInfo struct {
	Duration     time.Duration
	SampleRate   int
	TotalSamples int64
	TotalFrames  int
}

// IsMP3 returns true if path has an .mp3 extension.
func IsMP3(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ExtMP3
}

// taglibTags wraps a taglib result map with helper methods.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or empty string if not found.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}
