package engine

import (
	"math/rand"

	"github.com/vovakirdan/typestorm/internal/core"
)

const (
	// cameraSnap is the threshold below which the spring settles exactly.
	cameraSnap = 0.01
	// brightnessDecay is the flash fade rate per time unit.
	brightnessDecay = 0.5
)

// cameraAnchor is the rest point of the camera spring. The view centers
// mid-field, leaving the player at the left edge and the spawn line just
// past the right one.
var cameraAnchor = core.Vec2{X: 5, Y: 0}

// Camera converts world coordinates to screen cells. Its position follows a
// damped spring anchored mid-field, so impulses from Shake translate into a
// decaying wobble of the whole view. Brightness is a full-screen flash
// level that fades linearly.
type Camera struct {
	Origin     core.Vec2
	Position   core.Vec2
	Velocity   core.Vec2
	Brightness float64
	zoom       float64
}

// NewCamera creates a settled camera at the given zoom level.
func NewCamera(zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{
		Origin:   cameraAnchor,
		Position: cameraAnchor,
		zoom:     zoom,
	}
}

// SetZoom changes the view scale. Values at or below zero are ignored.
func (c *Camera) SetZoom(zoom float64) {
	if zoom > 0 {
		c.zoom = zoom
	}
}

// Zoom returns the current view scale.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// Shake kicks the camera in a random direction with the given intensity.
func (c *Camera) Shake(intensity float64, rng *rand.Rand) {
	c.Velocity = c.Velocity.Add(core.RandUnit(rng).Scale(intensity))
}

// Flash raises the full-screen brightness to at least the given level.
func (c *Camera) Flash(level float64) {
	if level > c.Brightness {
		c.Brightness = level
	}
}

// Update advances the spring and fades the flash. Velocity snaps to exactly
// zero whenever it dips under the threshold, even mid-oscillation; the
// spring re-kicks it until the displacement is small enough to settle, at
// which point the position snaps onto the anchor too.
func (c *Camera) Update(dt float64) {
	r := c.Position.Sub(c.Origin)
	c.Velocity = c.Velocity.Add(r.Scale(5).Add(c.Velocity).Scale(-2 * dt))
	if c.Velocity.Len() < cameraSnap {
		c.Velocity = core.Vec2{}
	}
	c.Position = c.Position.Add(c.Velocity.Scale(dt))
	if c.Velocity.Len() == 0 && c.Position.Sub(c.Origin).Len() < cameraSnap {
		c.Position = c.Origin
	}

	c.Brightness -= brightnessDecay * dt
	if c.Brightness < 0 {
		c.Brightness = 0
	}
}

// Scale returns the number of screen rows per world unit for a screen of
// the given height. Columns use twice the row scale to compensate for the
// 2:1 aspect of terminal cells.
func (c *Camera) Scale(h int) float64 {
	return float64(h) / 7.2 * c.zoom
}

// WorldToScreen maps a world position to a screen cell. World +Y points up;
// the view is centered on the camera position so spring wobble shifts
// everything on screen together.
func (c *Camera) WorldToScreen(p core.Vec2, w, h int) (int, int) {
	rows := c.Scale(h)
	cols := 2 * rows
	rel := p.Sub(c.Position)
	x := int(rel.X*cols) + w/2
	y := h/2 - int(rel.Y*rows)
	return x, y
}
