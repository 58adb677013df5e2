//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/jamp/internal/playback"
)

// Adapter connects the playback engine to MPRIS over D-Bus so media keys
// and desktop widgets can drive it.
type Adapter struct {
	server *server.Server
	log    logrus.FieldLogger
}

// New creates and starts a new MPRIS adapter. vol may be nil.
func New(service playback.Service, vol Volume, log logrus.FieldLogger) (*Adapter, error) {
	a := &Adapter{log: log}
	a.server = server.NewServer("jamp", &rootAdapter{}, &playerAdapter{service: service, volume: vol})

	go func() {
		if err := a.server.Listen(); err != nil {
			a.log.WithError(err).Warn("mpris listen")
		}
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "JAmp", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/mp3"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	service playback.Service
	volume  Volume
}

func (p *playerAdapter) Next() error {
	return p.service.Next()
}

func (p *playerAdapter) Previous() error {
	return p.service.Previous()
}

func (p *playerAdapter) Pause() error {
	return p.service.Pause()
}

func (p *playerAdapter) PlayPause() error {
	return p.service.Toggle()
}

func (p *playerAdapter) Stop() error {
	return p.service.Stop()
}

func (p *playerAdapter) Play() error {
	return p.service.Play()
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.service.SeekBy(time.Duration(offset) * time.Microsecond)
}

// SetPosition ignores requests for a track that is no longer current.
func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	track := p.service.CurrentTrack()
	if track == nil || trackID != formatTrackID(track.Path) {
		return nil
	}
	return p.service.Seek(track.FrameAt(time.Duration(position) * time.Microsecond))
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.service.Phase()), nil
}

func playbackStatus(phase playback.Phase) types.PlaybackStatus {
	switch phase {
	case playback.PhasePlaying:
		return types.PlaybackStatusPlaying
	case playback.PhasePaused:
		return types.PlaybackStatusPaused
	case playback.PhaseIdle, playback.PhaseStopped, playback.PhaseFinished:
		return types.PlaybackStatusStopped
	}
	return types.PlaybackStatusStopped
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	track := p.service.CurrentTrack()
	if track == nil {
		return types.Metadata{}, nil
	}

	return types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(track.Path)),
		Length:  types.Microseconds(track.Duration.Microseconds()),
		Title:   track.Title,
		Artist:  []string{track.Artist},
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	if p.volume == nil {
		return 1.0, nil
	}
	if p.volume.Muted() {
		return 0, nil
	}
	return p.volume.Volume(), nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	if p.volume == nil {
		return nil
	}
	p.volume.SetMuted(false)
	p.volume.SetVolume(v)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.service.Elapsed().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.service.HasNext(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.service.HasPrevious(), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.service.CurrentTrack() != nil, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.service.Phase() == playback.PhasePlaying, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.service.CurrentTrack() != nil, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
