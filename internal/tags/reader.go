package tags

import (
	"fmt"

	"github.com/llehouerou/jamp/internal/playlist"
)

// Reader builds playlist tracks from MP3 files.
type Reader struct{}

var _ playlist.TrackReader = Reader{}

// NewReader returns a Reader.
func NewReader() Reader {
	return Reader{}
}

// ReadTrack reads tags and audio properties for path.
func (Reader) ReadTrack(path string) (playlist.Track, error) {
	if !IsMP3(path) {
		return playlist.Track{}, fmt.Errorf("%s: %w", path, ErrNotMP3)
	}

	info, err := ReadAudioInfo(path)
	if err != nil {
		return playlist.Track{}, err
	}
	t, err := ReadTags(path)
	if err != nil {
		return playlist.Track{}, err
	}

	track := playlist.NewTrack(path, t.Title, t.Artist, info.Duration, info.TotalFrames)
	if err := track.Validate(); err != nil {
		return playlist.Track{}, err
	}
	return track, nil
}
