//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpTrackLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpTrackLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load track: file not found",
		},
		{
			name:     "playlist operation",
			op:       OpPlaylistLoad,
			err:      errors.New("playlist is empty"),
			expected: "Failed to load playlist: playlist is empty",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpTrackLoad,
			context:  "song.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpTrackLoad,
			context:  "song.mp3",
			err:      errors.New("permission denied"),
			expected: "Failed to load track 'song.mp3': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpTrackLoad,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to load track: permission denied",
		},
		{
			name:     "decode with filename context",
			op:       OpDecode,
			context:  "broken.mp3",
			err:      errors.New("invalid frame header"),
			expected: "Failed to decode audio 'broken.mp3': invalid frame header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpTrackLoad, OpPlaylistLoad,
		OpPlaylistCreate, OpPlaylistShow,
		OpPlaybackStart, OpPlaybackPause, OpPlaybackStop,
		OpPlaybackSeek, OpPlaybackSkip, OpDecode,
		OpHistoryLoad, OpHistorySave,
		OpConfigLoad, OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
