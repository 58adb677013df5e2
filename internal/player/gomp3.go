package player

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

var errInvalidSampleRate = errors.New("mp3: invalid sample rate")

// mp3Source wraps llehouerou/go-mp3 as a beep.StreamSeekCloser that also
// knows its position in MP3 frames.
type mp3Source struct {
	decoder *mp3.Decoder
	closer  io.Closer
	format  beep.Format
	spf     int
	err     error
	readBuf []byte
}

// decodeGoMP3 prepares rc for streaming. rc is owned by the returned source.
func decodeGoMP3(rc io.ReadCloser) (*mp3Source, error) {
	decoder, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, err
	}

	sampleRate := decoder.SampleRate()
	if sampleRate == 0 {
		return nil, errInvalidSampleRate
	}

	return &mp3Source{
		decoder: decoder,
		closer:  rc,
		format: beep.Format{
			SampleRate:  beep.SampleRate(sampleRate),
			NumChannels: 2, // go-mp3 always outputs stereo
			Precision:   2,
		},
		spf:     SamplesPerFrame(sampleRate),
		readBuf: make([]byte, 8192),
	}, nil
}

// Stream reads audio samples into the provided buffer.
func (d *mp3Source) Stream(samples [][2]float64) (n int, ok bool) {
	if d.err != nil {
		return 0, false
	}

	// 4 bytes per stereo 16-bit sample
	bytesNeeded := len(samples) * 4
	if len(d.readBuf) < bytesNeeded {
		d.readBuf = make([]byte, bytesNeeded)
	}

	bytesRead, err := io.ReadFull(d.decoder, d.readBuf[:bytesNeeded])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		d.err = err
		return 0, false
	}

	n = bytesRead / 4
	if n == 0 {
		return 0, false
	}
	for i := range n {
		off := i * 4
		left := int16(binary.LittleEndian.Uint16(d.readBuf[off:]))    //nolint:gosec // audio samples
		right := int16(binary.LittleEndian.Uint16(d.readBuf[off+2:])) //nolint:gosec // audio samples
		samples[i][0] = float64(left) / 32768.0
		samples[i][1] = float64(right) / 32768.0
	}
	return n, true
}

func (d *mp3Source) Err() error {
	return d.err
}

// Len returns the total number of samples.
func (d *mp3Source) Len() int {
	count := d.decoder.SampleCount()
	if count < 0 {
		return 0
	}
	return int(count)
}

// Position returns the current sample position.
func (d *mp3Source) Position() int {
	return int(d.decoder.SamplePosition())
}

// Seek seeks to the given sample position, clamped to the stream.
func (d *mp3Source) Seek(p int) error {
	p = max(0, min(p, d.Len()))
	if err := d.decoder.SeekToSample(int64(p)); err != nil {
		return err
	}
	d.err = nil
	return nil
}

// Frame returns the current position in MP3 frames.
func (d *mp3Source) Frame() int {
	return d.Position() / d.spf
}

// SeekFrame positions the decoder at the first sample of frame.
func (d *mp3Source) SeekFrame(frame int) error {
	return d.Seek(frame * d.spf)
}

// Close closes the underlying file.
func (d *mp3Source) Close() error {
	return d.closer.Close()
}
