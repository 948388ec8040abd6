package engine

import (
	"github.com/vovakirdan/typestorm/internal/core"
)

// debrisDecay is the linear radius decay rate per time unit.
const debrisDecay = 0.1

// Debris is a decorative decaying particle spawned on damage and destruction
// events. It is owned exclusively by the entity that spawned it and is
// removed once its radius reaches zero, independently of the owner's own
// liveness.
type Debris struct {
	Position core.Vec2
	Velocity core.Vec2
	Radius   float64
	Color    core.Color
	Shading  float64
}

// NewDebris creates a particle with the default shading factor.
func NewDebris(position, velocity core.Vec2, radius float64, color core.Color) Debris {
	return Debris{
		Position: position,
		Velocity: velocity,
		Radius:   radius,
		Color:    color,
		Shading:  0.3,
	}
}

// Update integrates the particle and decays its radius, floored at zero.
func (d *Debris) Update(dt float64) {
	d.Position = d.Position.Add(d.Velocity.Scale(dt))
	d.Radius = d.Radius - debrisDecay*dt
	if d.Radius < 0 {
		d.Radius = 0
	}
}

// Done reports whether the particle has fully decayed.
func (d *Debris) Done() bool {
	return d.Radius <= 0
}
