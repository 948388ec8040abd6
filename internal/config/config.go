// Package config provides YAML-based configuration loading and the named
// color palettes for typestorm.
package config

import (
	"fmt"
	"sort"
)

// Config is the full options snapshot consumed by the platform and, read-only,
// by the engine at session start. All fields are explicit; there is no
// open-ended key lookup, and enum membership is validated at load time.
type Config struct {
	Palette     string  `yaml:"palette"`      // named palette, see Palettes
	Language    string  `yaml:"language"`     // word-list language
	Zoom        float64 `yaml:"zoom"`         // world-to-screen scale multiplier
	HardUnlock  int     `yaml:"hard_unlock"`  // normal-mode best required to unlock hard
	SFXVolume   int     `yaml:"sfx_volume"`   // 0..100
	MusicVolume int     `yaml:"music_volume"` // 0..100, not consumed by the engine
}

// Palette is a five-color table: text, player, enemy, laser/accent,
// background. Colors are hex strings understood by lipgloss.
type Palette struct {
	Text       string
	Player     string
	Enemy      string
	Laser      string
	Background string
}

// Palettes holds the built-in named palettes.
var Palettes = map[string]Palette{
	"default":  {Text: "#FFDD4A", Player: "#17BEBB", Enemy: "#F17105", Laser: "#B118C8", Background: "#003049"},
	"negative": {Text: "#0022B5", Player: "#E84144", Enemy: "#0E8EFA", Laser: "#4EE737", Background: "#FFCFB6"},
	"autumn":   {Text: "#F3BC2E", Player: "#D45B51", Enemy: "#9C2706", Laser: "#5F5426", Background: "#603C14"},
	"winter":   {Text: "#070600", Player: "#048A81", Enemy: "#3454D1", Laser: "#C0E8F9", Background: "#FCFCFF"},
}

// PaletteNames returns the palette names in stable sorted order,
// for options cycling and validation messages.
func PaletteNames() []string {
	names := make([]string, 0, len(Palettes))
	for name := range Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ZoomLevels are the selectable world-to-screen scale multipliers.
var ZoomLevels = []float64{0.75, 1.0, 1.25, 1.5}

// Validate checks enum membership and numeric ranges. The languages argument
// is the set of word lists actually available; an unknown language is a
// configuration error (fatal to launching play, per the loader's caller).
func (c Config) Validate(languages []string) error {
	if _, ok := Palettes[c.Palette]; !ok {
		return fmt.Errorf("config: unknown palette %q (have %v)", c.Palette, PaletteNames())
	}

	found := false
	for _, lang := range languages {
		if lang == c.Language {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config: unknown language %q (have %v)", c.Language, languages)
	}

	if c.Zoom <= 0 {
		return fmt.Errorf("config: zoom must be positive, got %g", c.Zoom)
	}
	if c.HardUnlock < 0 {
		return fmt.Errorf("config: hard_unlock must be non-negative, got %d", c.HardUnlock)
	}
	if c.SFXVolume < 0 || c.SFXVolume > 100 {
		return fmt.Errorf("config: sfx_volume must be in [0,100], got %d", c.SFXVolume)
	}
	if c.MusicVolume < 0 || c.MusicVolume > 100 {
		return fmt.Errorf("config: music_volume must be in [0,100], got %d", c.MusicVolume)
	}
	return nil
}

// ActivePalette resolves the configured palette. The config must have been
// validated; an unknown name falls back to "default".
func (c Config) ActivePalette() Palette {
	if p, ok := Palettes[c.Palette]; ok {
		return p
	}
	return Palettes["default"]
}
