package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/typestorm/internal/config"
	"github.com/vovakirdan/typestorm/internal/core"
)

// Theme resolves the engine's palette-slot colors to concrete terminal
// colors for one named palette. Dim variants blend toward the background,
// bright variants toward white.
type Theme struct {
	foregrounds map[core.Color]string
	background  string
}

// NewTheme builds the color table for a palette.
func NewTheme(p config.Palette) *Theme {
	slots := map[core.Color]string{
		core.ColorText:       p.Text,
		core.ColorPlayer:     p.Player,
		core.ColorEnemy:      p.Enemy,
		core.ColorLaser:      p.Laser,
		core.ColorBackground: p.Background,
	}

	t := &Theme{
		foregrounds: make(map[core.Color]string, len(slots)*3),
		background:  p.Background,
	}
	for slot, hex := range slots {
		t.foregrounds[slot] = hex
		t.foregrounds[slot.Dim()] = blendHex(hex, p.Background, 0.5)
		t.foregrounds[slot.Bright()] = blendHex(hex, "#FFFFFF", 0.4)
	}
	return t
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences. brightness in (0,1] whitens every color for the kill and
// death flashes.
func (t *Theme) RenderScreen(s *core.Screen, brightness float64) string {
	bg := t.background
	if brightness > 0 {
		bg = blendHex(bg, "#FFFFFF", brightness)
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			fg, ok := t.foregrounds[startColor]
			if !ok {
				fg = t.foregrounds[core.ColorText]
			}
			if brightness > 0 {
				fg = blendHex(fg, "#FFFFFF", brightness)
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fg)).
				Background(lipgloss.Color(bg))
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// blendHex linearly interpolates two #RRGGBB colors. t=0 returns a, t=1
// returns b; malformed input returns a unchanged.
func blendHex(a, b string, t float64) string {
	ar, ag, ab, ok := parseHex(a)
	if !ok {
		return a
	}
	br, bg2, bb, ok := parseHex(b)
	if !ok {
		return a
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	mix := func(x, y int) int {
		return int(float64(x) + (float64(y)-float64(x))*t)
	}
	return fmt.Sprintf("#%02X%02X%02X", mix(ar, br), mix(ag, bg2), mix(ab, bb))
}

func parseHex(s string) (r, g, b int, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseUint(s[1:3], 16, 8)
	gv, err2 := strconv.ParseUint(s[3:5], 16, 8)
	bv, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return int(rv), int(gv), int(bv), true
}
