package playback

import (
	"time"

	"github.com/llehouerou/jamp/internal/playlist"
)

// Service defines the playback contract used by the UI and the media-key
// adapters.
type Service interface {
	// Loading (starts playback)
	LoadTrack(track playlist.Track) error
	LoadFile(path string) error
	LoadPlaylist(p *playlist.Playlist) error
	LoadPlaylistFile(path string) error

	// Playback control
	Play() error
	Pause() error
	Toggle() error
	Stop() error
	Next() error
	Previous() error
	Seek(frame int) error
	SeekBy(delta time.Duration) error

	// State queries
	Phase() Phase
	CurrentTrack() *playlist.Track
	ResumeFrame() int
	Elapsed() time.Duration
	EstimatedFrame() int
	Epoch() uint64
	PlaylistIndex() int
	PlaylistLen() int
	HasNext() bool
	HasPrevious() bool
	Snapshot() Snapshot

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}

// Verify Engine implements Service at compile time.
var _ Service = (*Engine)(nil)
