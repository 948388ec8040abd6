package engine

import (
	"math/rand"

	"github.com/vovakirdan/typestorm/internal/core"
)

// Object is the shared entity base for Player and Enemy: a circle in world
// space with an exclusive list of debris particles. Once alive is false the
// entity renders only its debris and becomes eligible for removal when the
// debris is gone, so destruction animations always finish.
type Object struct {
	position core.Vec2
	radius   float64
	color    core.Color
	alive    bool
	debris   []Debris
}

func newObject(position core.Vec2, radius float64, color core.Color) Object {
	return Object{
		position: position,
		radius:   radius,
		color:    color,
		alive:    true,
	}
}

// Position returns the entity's world position.
func (o *Object) Position() core.Vec2 {
	return o.position
}

// Radius returns the collision and render radius.
func (o *Object) Radius() float64 {
	return o.radius
}

// Color returns the entity's palette slot.
func (o *Object) Color() core.Color {
	return o.color
}

// Alive reports whether the entity is still live.
func (o *Object) Alive() bool {
	return o.alive
}

// Debris returns the entity's particles for rendering. The slice is shared;
// callers must treat it as read-only.
func (o *Object) Debris() []Debris {
	return o.debris
}

// Removable reports whether the entity can be dropped from the active set:
// destroyed and with all destruction particles fully decayed.
func (o *Object) Removable() bool {
	return !o.alive && len(o.debris) == 0
}

// Destroy marks the entity dead and bursts it into ten particles: five in
// the neutral accent color and five in the entity's own color, flung in
// random directions scaled by the entity's radius.
func (o *Object) Destroy(rng *rand.Rand) {
	o.alive = false
	for i := 0; i < 5; i++ {
		o.debris = append(o.debris, NewDebris(o.position, core.RandUnit(rng).Scale(0.5), 0.75*o.radius, core.ColorLaser))
	}
	for i := 0; i < 5; i++ {
		o.debris = append(o.debris, NewDebris(o.position, core.RandUnit(rng).Scale(0.5), 0.75*o.radius, o.color))
	}
}

// updateDebris advances owned particles and compacts out the decayed ones.
func (o *Object) updateDebris(dt float64) {
	live := o.debris[:0]
	for i := range o.debris {
		o.debris[i].Update(dt)
		if !o.debris[i].Done() {
			live = append(live, o.debris[i])
		}
	}
	o.debris = live
}
