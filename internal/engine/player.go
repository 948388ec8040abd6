package engine

import (
	"math/rand"

	"github.com/vovakirdan/typestorm/internal/core"
)

// playerRadius is the player's fixed render and collision radius.
const playerRadius = 0.5

// Player is the singleton entity at the world origin. It never moves; its
// direction tracks the last aim, used for the decorative pointer and debris
// kickback.
type Player struct {
	Object
	health    int
	direction core.Vec2
}

// NewPlayer creates the player at the origin, aimed along +X.
func NewPlayer() *Player {
	return &Player{
		Object:    newObject(core.Vec2{}, playerRadius, core.ColorPlayer),
		health:    1,
		direction: core.Vec2{X: 1, Y: 0},
	}
}

// Health returns the remaining health (0 or 1).
func (p *Player) Health() int {
	return p.health
}

// Direction returns the current aim direction.
func (p *Player) Direction() core.Vec2 {
	return p.direction
}

// Aim points the player toward a world direction. Callers pass a unit
// vector; the value is also used to kick back damage debris.
func (p *Player) Aim(dir core.Vec2) {
	p.direction = dir
}

// Damage decrements health and destroys the player at zero, upholding the
// invariant that zero health implies not alive.
func (p *Player) Damage(rng *rand.Rand) {
	p.health--
	if p.health <= 0 {
		p.Destroy(rng)
	}
}

// Kickback spawns the single recoil particle fired opposite a shot.
func (p *Player) Kickback(dir core.Vec2) {
	p.debris = append(p.debris, NewDebris(
		dir.Scale(1.5*p.radius),
		dir.Scale(0.25),
		0.5*p.radius,
		core.ColorLaser,
	))
}

// Update advances the player's owned debris. Position is fixed.
func (p *Player) Update(dt float64) {
	p.updateDebris(dt)
}
