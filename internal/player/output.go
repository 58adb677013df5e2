package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

const extMP3 = ".mp3"

// ErrUnsupportedFormat is returned by Open for anything but MP3 files.
var ErrUnsupportedFormat = errors.New("unsupported format")

var (
	speakerMu         sync.Mutex
	speakerSampleRate beep.SampleRate
	speakerReady      bool
)

// initSpeaker opens the audio device once, at the rate of the first track.
// Later tracks are resampled to that rate.
func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerReady {
		return speakerSampleRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, err
	}
	speakerSampleRate = rate
	speakerReady = true
	return rate, nil
}

// Output decodes MP3 files with go-mp3 and plays them on the beep speaker.
type Output struct {
	mu          sync.Mutex
	volumeLevel float64
	muted       bool
	active      *outputStream
}

// NewOutput creates an output at full volume.
func NewOutput() *Output {
	return &Output{volumeLevel: 1}
}

// Open opens an MP3 file and reads its stream header.
func (o *Output) Open(path string) (Stream, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != extMP3 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	src, err := decodeGoMP3(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	rate, err := initSpeaker(src.format.SampleRate)
	if err != nil {
		src.Close()
		return nil, err
	}
	return &outputStream{out: o, src: src, speakerRate: rate}, nil
}

// outputStream plays one file. Only one PlayFrom runs at a time.
type outputStream struct {
	out         *Output
	src         *mp3Source
	speakerRate beep.SampleRate

	mu      sync.Mutex
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	stopped bool
	closed  bool
}

// PlayFrom returns at once, without touching the speaker, when RequestStop
// came first.
func (s *outputStream) PlayFrom(startFrame, frameLimit int) (int, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return startFrame, os.ErrClosed
	}
	if s.stopped {
		s.mu.Unlock()
		return startFrame, nil
	}
	if err := s.src.SeekFrame(startFrame); err != nil {
		s.mu.Unlock()
		return startFrame, err
	}

	var streamer beep.Streamer = s.src
	if frameLimit != Unbounded {
		streamer = beep.Take(frameLimit*s.src.spf, streamer)
	}
	if s.src.format.SampleRate != s.speakerRate {
		streamer = beep.Resample(4, s.src.format.SampleRate, s.speakerRate, streamer)
	}

	s.ctrl = &beep.Ctrl{Streamer: streamer}
	s.volume = &effects.Volume{Streamer: s.ctrl, Base: 2}
	s.out.attach(s)
	s.mu.Unlock()

	done := make(chan struct{})
	speaker.Play(beep.Seq(s.volume, beep.Callback(func() {
		close(done)
	})))
	<-done

	s.out.detach(s)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Frame(), s.src.Err()
}

// RequestStop detaches the decoder from the speaker. A Ctrl without a
// streamer reports itself drained, so the Seq moves on to its callback and
// PlayFrom returns. The stop is remembered, so a PlayFrom that has not
// started yet never plays. It reports -1 when nothing was playing.
func (s *outputStream) RequestStop() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	if s.ctrl == nil || s.closed {
		return -1
	}
	speaker.Lock()
	defer speaker.Unlock()
	s.ctrl.Streamer = nil
	return s.src.Frame()
}

func (s *outputStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.src.Close()
}

func (o *Output) attach(s *outputStream) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.active = s
	o.applyLocked()
}

func (o *Output) detach(s *outputStream) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.active == s {
		o.active = nil
	}
}
