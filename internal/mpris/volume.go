package mpris

// Volume is the output volume control exposed over MPRIS.
type Volume interface {
	Volume() float64
	SetVolume(level float64)
	Muted() bool
	SetMuted(muted bool)
}
