// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Loading
	OpTrackLoad    Op = "load track"
	OpPlaylistLoad Op = "load playlist"

	// Playlist files
	OpPlaylistCreate Op = "create playlist"
	OpPlaylistShow   Op = "read playlist"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackPause Op = "pause playback"
	OpPlaybackStop  Op = "stop playback"
	OpPlaybackSeek  Op = "seek"
	OpPlaybackSkip  Op = "change track"
	OpDecode        Op = "decode audio"

	// History
	OpHistoryLoad Op = "load history"
	OpHistorySave Op = "save history"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
