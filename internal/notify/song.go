package notify

import (
	"fmt"
	"sync"

	"github.com/llehouerou/jamp/internal/playlist"
)

// songTimeout is how long a song notification stays on screen.
const songTimeout = 5000

// SongAnnouncer shows one notification per song change, replacing the
// previous one instead of stacking them.
type SongAnnouncer struct {
	n Notifier

	mu     sync.Mutex
	lastID uint32
}

// NewSongAnnouncer creates an announcer sending through n.
func NewSongAnnouncer(n Notifier) *SongAnnouncer {
	return &SongAnnouncer{n: n}
}

// Announce shows the track that just became current. index is its playlist
// position, or -1 for a single track; total is the playlist length.
func (a *SongAnnouncer) Announce(track playlist.Track, index, total int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.n.Notify(SongNotification(track, index, total, a.lastID))
	if err != nil {
		return err
	}
	a.lastID = id
	return nil
}

// Dismiss closes the last song notification, if any.
func (a *SongAnnouncer) Dismiss() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.lastID == 0 {
		return nil
	}
	id := a.lastID
	a.lastID = 0
	return a.n.Close(id)
}

// SongNotification builds the notification for track.
func SongNotification(track playlist.Track, index, total int, replaces uint32) Notification {
	body := fmt.Sprintf("%s · %s", track.Artist, track.Length())
	if index >= 0 && total > 0 {
		body = fmt.Sprintf("%s\nTrack %d of %d", body, index+1, total)
	}
	return Notification{
		Title:      track.Title,
		Body:       body,
		Icon:       "audio-x-generic",
		Timeout:    songTimeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
		Transient:  true,
	}
}
