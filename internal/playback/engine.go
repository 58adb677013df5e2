// Package playback implements the playback engine: the state machine that
// owns the current track, playlist, phase and frame position, and runs one
// decode goroutine and one position ticker per playback episode.
//
// Every transition that supersedes running playback increments the engine's
// epoch. Goroutines capture the epoch they were started for and become no-ops
// as soon as it changes, so a late completion from a replaced track can never
// mutate state or trigger auto-advance.
package playback

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/llehouerou/jamp/internal/errmsg"
	"github.com/llehouerou/jamp/internal/player"
	"github.com/llehouerou/jamp/internal/playlist"
	"github.com/llehouerou/jamp/internal/tags"
)

// Engine is the playback state machine. All methods are safe for concurrent use.
type Engine struct {
	dec    player.Decoder
	reader playlist.TrackReader
	fs     afero.Fs
	log    logrus.FieldLogger

	tickInterval time.Duration
	stopTimeout  time.Duration

	mu          sync.Mutex
	track       *playlist.Track
	list        *playlist.Playlist
	phase       Phase
	resumeFrame int
	elapsed     time.Duration
	epoch       uint64
	ep          *episode
	subs        []*Subscription
	closed      bool
}

// Snapshot is a consistent copy of the engine state.
type Snapshot struct {
	Phase          Phase
	Track          *playlist.Track
	ResumeFrame    int
	Elapsed        time.Duration
	EstimatedFrame int
	Epoch          uint64
	PlaylistIndex  int
	PlaylistLen    int
}

// New creates an idle engine that plays through dec.
func New(dec player.Decoder, opts ...Option) *Engine {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	e := &Engine{
		dec:          dec,
		reader:       tags.NewReader(),
		fs:           afero.NewOsFs(),
		log:          discard,
		tickInterval: DefaultTickInterval,
		stopTimeout:  DefaultStopTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithField("component", "playback")
	return e
}

// LoadTrack replaces the playlist with a single track and plays it.
// An invalid track returns a TrackLoadError and leaves the state untouched.
func (e *Engine) LoadTrack(track playlist.Track) error {
	if err := track.Validate(); err != nil {
		return e.fail(errmsg.OpTrackLoad, track.Path, &TrackLoadError{Path: track.Path, Err: err})
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}

	e.cancelLocked(errmsg.OpTrackLoad)
	e.list = nil
	e.setTrackLocked(track, -1)
	return e.playLocked()
}

// LoadFile reads path through the track reader and loads it.
func (e *Engine) LoadFile(path string) error {
	track, err := e.reader.ReadTrack(path)
	if err != nil {
		return e.fail(errmsg.OpTrackLoad, path, &TrackLoadError{Path: path, Err: err})
	}
	return e.LoadTrack(track)
}

// LoadPlaylist takes ownership of p, rewinds it and plays its first track.
// A nil or empty playlist returns ErrEmptyPlaylist and leaves the state untouched.
func (e *Engine) LoadPlaylist(p *playlist.Playlist) error {
	if p == nil || p.Len() == 0 {
		return e.fail(errmsg.OpPlaylistLoad, "", ErrEmptyPlaylist)
	}
	for _, t := range p.Tracks() {
		if err := t.Validate(); err != nil {
			return e.fail(errmsg.OpPlaylistLoad, t.Path, &TrackLoadError{Path: t.Path, Err: err})
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}

	e.cancelLocked(errmsg.OpPlaylistLoad)
	p.Rewind()
	e.list = p
	e.setTrackLocked(p.Current(), p.Index())
	return e.playLocked()
}

// LoadPlaylistFile reads a playlist file and loads it.
func (e *Engine) LoadPlaylistFile(path string) error {
	p, err := playlist.Load(e.fs, path, e.reader)
	if err != nil {
		var entryErr *playlist.EntryError
		switch {
		case errors.Is(err, playlist.ErrEmpty):
			return e.fail(errmsg.OpPlaylistLoad, path, ErrEmptyPlaylist)
		case errors.As(err, &entryErr):
			return e.fail(errmsg.OpPlaylistLoad, path, &TrackLoadError{Path: entryErr.Path, Err: err})
		default:
			return e.fail(errmsg.OpPlaylistLoad, path, &TrackLoadError{Path: path, Err: err})
		}
	}
	return e.LoadPlaylist(p)
}

// Play starts the current track, from the resume frame when paused and from
// the beginning otherwise. It does nothing without a track or when already
// playing.
func (e *Engine) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	return e.playLocked()
}

func (e *Engine) playLocked() error {
	if e.track == nil || e.phase == PhasePlaying {
		return nil
	}

	start := 0
	if e.phase == PhasePaused {
		start = e.resumeFrame
	} else {
		e.resumeFrame = 0
		e.elapsed = 0
	}
	return e.startLocked(start)
}

// startLocked opens the current track and starts a new episode at start.
func (e *Engine) startLocked(start int) error {
	stream, err := e.dec.Open(e.track.Path)
	if err != nil {
		derr := &DecodeError{Path: e.track.Path, Err: err}
		e.log.WithError(err).WithField("path", e.track.Path).Error("open stream")
		e.setPhaseLocked(PhaseStopped)
		e.emitErrorLocked(errmsg.OpPlaybackStart, e.track.Path, derr)
		return derr
	}

	e.epoch++
	ep := newEpisode(e.epoch, stream)
	e.ep = ep
	e.setPhaseLocked(PhasePlaying)
	e.log.WithFields(logrus.Fields{
		"path":  e.track.Path,
		"frame": start,
		"epoch": ep.token,
	}).Debug("play")

	go e.run(ep, start)
	go e.tick(ep)
	return nil
}

// Pause stops output and records the exact frame reported by the decoder.
// It does nothing unless a track is playing. Pause returns only after the
// frame is known, so an immediate Play resumes from it.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	e.pauseLocked()
	return nil
}

func (e *Engine) pauseLocked() {
	if e.ep == nil || e.phase != PhasePlaying {
		return
	}
	frame, _ := e.cancelLocked(errmsg.OpPlaybackPause)
	e.resumeFrame = frame
	e.elapsed = e.track.ElapsedAt(frame)
	e.setPhaseLocked(PhasePaused)
	e.log.WithField("frame", frame).Debug("pause")
}

// Toggle pauses when playing and plays otherwise.
func (e *Engine) Toggle() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if e.phase == PhasePlaying {
		e.pauseLocked()
		return nil
	}
	return e.playLocked()
}

// Stop halts playback and discards the resume frame.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}

	e.cancelLocked(errmsg.OpPlaybackStop)
	e.resumeFrame = 0
	e.elapsed = 0
	if e.track != nil {
		e.setPhaseLocked(PhaseStopped)
	}
	return nil
}

// Next plays the following playlist track. It does nothing without a
// playlist or on its last track.
func (e *Engine) Next() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	return e.stepLocked(1)
}

// Previous plays the preceding playlist track. It does nothing without a
// playlist or on its first track.
func (e *Engine) Previous() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	return e.stepLocked(-1)
}

func (e *Engine) stepLocked(delta int) error {
	if e.list == nil {
		return nil
	}
	if (delta > 0 && !e.list.HasNext()) || (delta < 0 && !e.list.HasPrevious()) {
		return nil
	}

	// The epoch moves before teardown so the outgoing episode's completion
	// is already stale when it lands.
	e.cancelLocked(errmsg.OpPlaybackSkip)
	track, _ := e.list.Advance(delta)
	e.setTrackLocked(track, e.list.Index())
	return e.playLocked()
}

// Seek restarts playback at frame, clamped to the track. The outgoing
// episode is fully stopped before the new one starts. Seeking while playing
// emits no phase change; from any other phase it goes straight to Playing.
func (e *Engine) Seek(frame int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	return e.seekLocked(frame)
}

// SeekBy seeks relative to the current position.
func (e *Engine) SeekBy(delta time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if e.track == nil {
		return nil
	}
	frames := int(float64(delta.Milliseconds()) * e.track.FrameRate)
	return e.seekLocked(e.positionLocked() + frames)
}

func (e *Engine) seekLocked(frame int) error {
	if e.track == nil {
		return nil
	}
	e.cancelLocked(errmsg.OpPlaybackSeek)

	frame = max(frame, 0)
	if e.track.TotalFrames > 0 {
		frame = min(frame, e.track.TotalFrames)
	}
	e.resumeFrame = frame
	e.elapsed = e.track.ElapsedAt(frame)
	e.log.WithField("frame", frame).Debug("seek")
	return e.startLocked(frame)
}

// Subscribe creates a new event subscription.
func (e *Engine) Subscribe() *Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	sub := newSubscription()
	if e.closed {
		sub.close()
		return sub
	}
	e.subs = append(e.subs, sub)
	return sub
}

// Close halts playback and closes all subscriptions. It is idempotent.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}

	e.cancelLocked(errmsg.OpPlaybackStop)
	e.closed = true
	for _, sub := range e.subs {
		sub.close()
	}
	e.subs = nil
	return nil
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// CurrentTrack returns a copy of the current track, or nil.
func (e *Engine) CurrentTrack() *playlist.Track {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trackCopyLocked()
}

// ResumeFrame returns the frame the next Play starts from when paused.
func (e *Engine) ResumeFrame() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resumeFrame
}

// Elapsed returns the accumulated playback time of the current track.
func (e *Engine) Elapsed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.elapsed
}

// EstimatedFrame returns the best known position in frames.
func (e *Engine) EstimatedFrame() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.positionLocked()
}

// Epoch returns the current epoch token.
func (e *Engine) Epoch() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.epoch
}

// PlaylistIndex returns the playlist cursor, or -1 without a playlist.
func (e *Engine) PlaylistIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.list == nil {
		return -1
	}
	return e.list.Index()
}

// PlaylistLen returns the number of playlist tracks, or 0 without a playlist.
func (e *Engine) PlaylistLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.list == nil {
		return 0
	}
	return e.list.Len()
}

// HasNext returns true if Next would change track.
func (e *Engine) HasNext() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.list != nil && e.list.HasNext()
}

// HasPrevious returns true if Previous would change track.
func (e *Engine) HasPrevious() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.list != nil && e.list.HasPrevious()
}

// Snapshot returns all queryable state read under one lock.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{
		Phase:          e.phase,
		Track:          e.trackCopyLocked(),
		ResumeFrame:    e.resumeFrame,
		Elapsed:        e.elapsed,
		EstimatedFrame: e.positionLocked(),
		Epoch:          e.epoch,
		PlaylistIndex:  -1,
	}
	if e.list != nil {
		s.PlaylistIndex = e.list.Index()
		s.PlaylistLen = e.list.Len()
	}
	return s
}

func (e *Engine) trackCopyLocked() *playlist.Track {
	if e.track == nil {
		return nil
	}
	t := *e.track
	return &t
}

// setTrackLocked makes track current, resets the position and announces it.
func (e *Engine) setTrackLocked(track playlist.Track, index int) {
	e.track = &track
	e.resumeFrame = 0
	e.elapsed = 0
	e.setPhaseLocked(PhaseStopped)
	e.log.WithFields(logrus.Fields{"path": track.Path, "index": index}).Debug("song change")
	for _, sub := range e.subs {
		sub.sendSong(SongChange{Track: track, Index: index})
	}
}

// setPhaseLocked changes the phase and emits a StateChange if it differs.
func (e *Engine) setPhaseLocked(p Phase) {
	if e.phase == p {
		return
	}
	change := StateChange{Previous: e.phase, Current: p}
	e.phase = p
	for _, sub := range e.subs {
		sub.sendState(change)
	}
}

// positionLocked returns the estimated frame while playing and the resume
// frame otherwise.
func (e *Engine) positionLocked() int {
	if e.phase == PhasePlaying {
		return e.estimateLocked()
	}
	return e.resumeFrame
}

// estimateLocked converts elapsed time to a frame, clamped to the track.
func (e *Engine) estimateLocked() int {
	if e.track == nil {
		return 0
	}
	frame := max(e.track.FrameAt(e.elapsed), 0)
	if e.track.TotalFrames > 0 {
		frame = min(frame, e.track.TotalFrames)
	}
	return frame
}

func (e *Engine) emitErrorLocked(op errmsg.Op, path string, err error) {
	ev := ErrorEvent{Kind: kindOf(err), Op: op, Path: path, Err: err}
	for _, sub := range e.subs {
		sub.sendError(ev)
	}
}

// fail publishes err as an ErrorEvent and returns it.
func (e *Engine) fail(op errmsg.Op, path string, err error) error {
	e.log.WithError(err).WithField("op", op).Warn("command failed")
	e.mu.Lock()
	defer e.mu.Unlock()
	e.emitErrorLocked(op, path, err)
	return err
}
