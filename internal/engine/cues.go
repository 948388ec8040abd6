package engine

// Cue is a discrete audio event emitted by the simulation. The engine never
// blocks on cue playback; sinks are fire-and-forget.
type Cue int

const (
	CueLaser Cue = iota
	CueExplosion
	CueError
	CueSelect
)

// String returns the cue's name, also used as its sound identifier.
func (c Cue) String() string {
	switch c {
	case CueLaser:
		return "laser"
	case CueExplosion:
		return "explosion"
	case CueError:
		return "error"
	case CueSelect:
		return "select"
	default:
		return "unknown"
	}
}

// CueSink consumes cues emitted by the engine.
type CueSink interface {
	Play(Cue)
}

// NopCues discards all cues. Used in tests and headless runs.
type NopCues struct{}

// Play implements CueSink.
func (NopCues) Play(Cue) {}
