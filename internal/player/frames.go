package player

// MPEG-1 Layer III frames carry 1152 samples; MPEG-2 and 2.5 (sample rates
// below 32kHz) carry half as many.
const (
	samplesPerFrameMPEG1 = 1152
	samplesPerFrameMPEG2 = 576
)

// SamplesPerFrame returns the PCM samples per channel in one MP3 frame.
func SamplesPerFrame(sampleRate int) int {
	if sampleRate >= 32000 {
		return samplesPerFrameMPEG1
	}
	return samplesPerFrameMPEG2
}

// FrameCount converts a sample count to whole frames, rounding up so a
// trailing partial frame is still addressable.
func FrameCount(samples int64, sampleRate int) int {
	if samples <= 0 {
		return 0
	}
	spf := int64(SamplesPerFrame(sampleRate))
	return int((samples + spf - 1) / spf)
}
