package state

// Playback is the result of advancing a cutscene scene by one tick
type Playback int

const (
	// Running means the scene wants more ticks
	Running Playback = iota
	// Finished means the scene is done and can be discarded
	Finished
)

// String returns the string representation of the playback state
func (p Playback) String() string {
	switch p {
	case Running:
		return "Running"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Done reports whether the scene has finished
func (p Playback) Done() bool {
	return p == Finished
}
