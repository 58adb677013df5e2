package playlist

import "errors"

// ErrEmpty is returned when a playlist would hold no tracks.
var ErrEmpty = errors.New("playlist is empty")

// Playlist is an ordered, fixed sequence of tracks with a cursor.
// The track list never changes after New; only the cursor moves.
type Playlist struct {
	tracks []Track
	cursor int
}

// New creates a playlist positioned on its first track.
func New(tracks []Track) (*Playlist, error) {
	if len(tracks) == 0 {
		return nil, ErrEmpty
	}
	t := make([]Track, len(tracks))
	copy(t, tracks)
	return &Playlist{tracks: t}, nil
}

// Current returns the track under the cursor.
func (p *Playlist) Current() Track {
	return p.tracks[p.cursor]
}

// Index returns the cursor position.
func (p *Playlist) Index() int {
	return p.cursor
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// HasNext returns true if there's a track after the current one.
func (p *Playlist) HasNext() bool {
	return p.cursor < len(p.tracks)-1
}

// HasPrevious returns true if there's a track before the current one.
func (p *Playlist) HasPrevious() bool {
	return p.cursor > 0
}

// Advance moves the cursor by delta and returns the new current track.
// Returns false and leaves the cursor alone if the move would leave the playlist.
func (p *Playlist) Advance(delta int) (Track, bool) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.tracks) {
		return Track{}, false
	}
	p.cursor = next
	return p.tracks[next], true
}

// Rewind puts the cursor back on the first track.
func (p *Playlist) Rewind() {
	p.cursor = 0
}
