package engine

import (
	"math/rand"

	"github.com/vovakirdan/typestorm/internal/core"
)

const (
	enemySpawnX   = 12.0 // just past the right edge of the view
	enemyFlashFor = 0.5  // hit-flash window after taking damage
)

// Enemy is a word carrier drifting toward the player at the origin. Its
// word shrinks from the front as it is typed; speed is inversely
// proportional to the original word length and radius grows with it, both
// fixed at spawn.
type Enemy struct {
	Object
	id       uint64
	word     []rune
	speed    float64
	velocity core.Vec2
	selected bool
	timer    float64 // hit-flash cooldown
}

// NewEnemy spawns an enemy with the given word at the right edge, at a
// random height.
func NewEnemy(id uint64, word string, rng *rand.Rand) *Enemy {
	runes := []rune(word)
	pos := core.Vec2{X: enemySpawnX, Y: 8*rng.Float64() - 4}

	return &Enemy{
		Object: newObject(pos, float64(len(runes))/20, core.ColorEnemy),
		id:     id,
		word:   runes,
		speed:  2 / float64(len(runes)),
	}
}

// ID returns the enemy's stable handle, used for selection references.
func (e *Enemy) ID() uint64 {
	return e.id
}

// Word returns the remaining letters.
func (e *Enemy) Word() string {
	return string(e.word)
}

// FirstLetter returns the next letter to type, or 0 for an empty word.
func (e *Enemy) FirstLetter() rune {
	if len(e.word) == 0 {
		return 0
	}
	return e.word[0]
}

// Selected reports whether this enemy is the current typing target.
func (e *Enemy) Selected() bool {
	return e.selected
}

// Flashing reports whether the hit-flash window is active.
func (e *Enemy) Flashing() bool {
	return e.timer > 0
}

// Update accelerates the enemy toward the origin at unit rate, clamps its
// speed, integrates position and runs down the hit-flash timer. Debris is
// advanced even after death so destruction particles finish animating.
func (e *Enemy) Update(dt float64) {
	if e.alive {
		toward := e.position.Scale(-1).Norm()
		e.velocity = e.velocity.Add(toward.Scale(dt))
		if sp := e.velocity.Len(); sp > e.speed {
			e.velocity = e.velocity.Scale(e.speed / sp)
		}
		e.position = e.position.Add(e.velocity.Scale(dt))

		e.timer -= dt
		if e.timer < 0 {
			e.timer = 0
		}
	}

	e.updateDebris(dt)
}

// Damage pops the first letter, recoils the enemy away from the origin,
// opens the hit-flash window and sprays five particles from the rim point
// nearest the origin. Emptying the word destroys the enemy in its kill
// color. Callers guarantee the word is non-empty.
func (e *Enemy) Damage(rng *rand.Rand) {
	e.word = e.word[1:]

	away := e.position.Norm()
	e.velocity = e.velocity.Add(away)
	e.timer = enemyFlashFor

	rim := e.position.Sub(away.Scale(e.radius))
	for i := 0; i < 5; i++ {
		e.debris = append(e.debris, NewDebris(rim, core.RandUnit(rng).Scale(0.3), 0.5*e.radius, core.ColorLaser))
	}

	if len(e.word) == 0 {
		e.color = core.ColorEnemy
		e.Destroy(rng)
	}
}
