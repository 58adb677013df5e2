package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the volume level (0.0 to 1.0).
// If muted, only stores the level without applying it.
func (o *Output) SetVolume(level float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.volumeLevel = max(0, min(level, 1))
	o.applyLocked()
}

// Volume returns the current volume level (0.0 to 1.0).
func (o *Output) Volume() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.volumeLevel
}

// SetMuted sets the muted state. Unmuting restores the previous level.
func (o *Output) SetMuted(muted bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.muted = muted
	o.applyLocked()
}

// Muted returns true if audio is muted.
func (o *Output) Muted() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.muted
}

func (o *Output) applyLocked() {
	if o.active == nil || o.active.volume == nil {
		return
	}
	speaker.Lock()
	o.active.volume.Volume = levelToVolume(o.volumeLevel)
	o.active.volume.Silent = o.muted
	speaker.Unlock()
}

// levelToVolume converts a 0.0-1.0 level to beep's base-2 Volume value.
// 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (essentially silent).
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
