package playback

import (
	"time"

	"github.com/llehouerou/jamp/internal/errmsg"
	"github.com/llehouerou/jamp/internal/playlist"
)

// StateChange is emitted when the phase changes.
type StateChange struct {
	Previous Phase
	Current  Phase
}

// SongChange is emitted when a different track becomes current.
//
// Emitted by:
//   - LoadTrack/LoadFile: Index is -1
//   - LoadPlaylist/LoadPlaylistFile: Index is 0
//   - Next/Previous and auto-advance at the end of a track
//
// NOT emitted by:
//   - Next/Previous at a playlist boundary
//   - Play/Pause/Stop/Seek
type SongChange struct {
	Track playlist.Track
	Index int
}

// PositionTick is emitted by the ticker while playing. Frame is an estimate
// derived from wall-clock elapsed time, not a decoder report, so it can drift
// from the audible position until the next pause or seek realigns it.
type PositionTick struct {
	Frame   int
	Elapsed time.Duration
}

// ErrorEvent is emitted when a command or a playback episode fails.
type ErrorEvent struct {
	Kind ErrorKind
	Op   errmsg.Op
	Path string // track or playlist path if applicable
	Err  error
}
