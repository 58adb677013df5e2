// internal/playback/state.go
package playback

// Phase is the engine's playback state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseStopped
	PhaseFinished
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseStopped:
		return "Stopped"
	case PhaseFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// HasTrack returns true for every phase except Idle.
func (p Phase) HasTrack() bool {
	return p != PhaseIdle
}

// IsActive returns true if playback is active (playing or paused).
func (p Phase) IsActive() bool {
	return p == PhasePlaying || p == PhasePaused
}
