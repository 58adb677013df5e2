package tags

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/llehouerou/go-mp3"

	"github.com/llehouerou/jamp/internal/player"
)

// ErrNotMP3 is returned for files without an .mp3 extension.
var ErrNotMP3 = errors.New("not an mp3 file")

var errInvalidSampleRate = errors.New("mp3: invalid sample rate")

// ReadAudioInfo reads duration, sample rate and frame count from an MP3 file.
func ReadAudioInfo(path string) (*AudioInfo, error) {
	if !IsMP3(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotMP3, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}

	sampleRate := decoder.SampleRate()
	if sampleRate == 0 {
		return nil, errInvalidSampleRate
	}

	sampleCount := max(decoder.SampleCount(), 0)
	duration := time.Duration(float64(sampleCount) / float64(sampleRate) * float64(time.Second))

	return &AudioInfo{
		Duration:     duration,
		SampleRate:   sampleRate,
		TotalSamples: sampleCount,
		TotalFrames:  player.FrameCount(sampleCount, sampleRate),
	}, nil
}
