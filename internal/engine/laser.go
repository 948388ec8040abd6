package engine

import (
	"github.com/vovakirdan/typestorm/internal/core"
)

// laserSpeed is the segment travel speed in world units per time unit.
const laserSpeed = 10.0

// Laser is a transient projectile: a short segment travelling from the
// player toward the position an enemy held when the shot was fired. It
// carries no destruction state and spawns no debris.
type Laser struct {
	Target    core.Vec2 // enemy position at creation
	Direction core.Vec2 // unit vector toward the target
	Start     core.Vec2
	End       core.Vec2
}

// NewLaser creates a laser aimed at the given world position.
func NewLaser(target core.Vec2) *Laser {
	dir := target.Norm()
	return &Laser{
		Target:    target,
		Direction: dir,
		Start:     dir.Scale(0.5),
		End:       dir.Scale(2.5),
	}
}

// Update advances both segment endpoints. The leading end clamps to the
// target so the beam visually terminates on impact.
func (l *Laser) Update(dt float64) {
	step := l.Direction.Scale(laserSpeed * dt)
	l.Start = l.Start.Add(step)
	l.End = l.End.Add(step)
	if l.End.Len() > l.Target.Len() {
		l.End = l.Target
	}
}

// Done reports whether the trailing end has reached the target distance,
// at which point the laser is removed.
func (l *Laser) Done() bool {
	return l.Start.Len() > l.Target.Len()
}
