package core

// Color identifies a palette slot for a screen cell. The engine never deals
// in concrete RGB values; it tags cells with a semantic slot and the platform
// resolves slots against the active palette, applying the camera's flash
// brightness.
type Color uint8

// Palette slots, matching the five-color palette order used throughout the
// engine: text, player, enemy, laser/accent, background.
const (
	ColorText Color = iota
	ColorPlayer
	ColorEnemy
	ColorLaser
	ColorBackground
)

// Variant bits. Dim shades the slot toward black, Bright tints it toward
// white. At most one variant is meaningful per cell.
const (
	colorSlotMask Color = 0x0F
	ColorDim      Color = 0x10
	ColorBright   Color = 0x20
)

// Slot returns the palette slot with variant bits stripped.
func (c Color) Slot() Color {
	return c & colorSlotMask
}

// Dim returns the dimmed variant of c.
func (c Color) Dim() Color {
	return c.Slot() | ColorDim
}

// Bright returns the tinted variant of c.
func (c Color) Bright() Color {
	return c.Slot() | ColorBright
}

// IsDim reports whether the dim variant bit is set.
func (c Color) IsDim() bool {
	return c&ColorDim != 0
}

// IsBright reports whether the bright variant bit is set.
func (c Color) IsBright() bool {
	return c&ColorBright != 0
}
