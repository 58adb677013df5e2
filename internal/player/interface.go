// internal/player/interface.go
package player

// Unbounded is the frame limit that plays a stream to its end.
const Unbounded = -1

// Decoder opens MP3 files for frame-addressed playback.
type Decoder interface {
	Open(path string) (Stream, error)
}

// Stream is one opened file. PlayFrom blocks while audio is output and
// returns the frame at which output stopped, either because the stream or
// the frame limit ended, or because RequestStop interrupted it.
//
// RequestStop may be called from any goroutine. It returns the frame
// reached so far, or -1 when the position is unknown.
type Stream interface {
	PlayFrom(startFrame, frameLimit int) (int, error)
	RequestStop() int
	Close() error
}

// Verify implementations at compile time.
var (
	_ Decoder = (*Output)(nil)
	_ Stream  = (*outputStream)(nil)
	_ Decoder = (*Mock)(nil)
	_ Stream  = (*MockStream)(nil)
)
