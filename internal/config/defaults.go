package config

import (
	_ "embed"
)

//go:embed defaults/typestorm.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Palette:     "default",
		Language:    "english",
		Zoom:        1.0,
		HardUnlock:  50,
		SFXVolume:   100,
		MusicVolume: 80,
	}
}

// DefaultYAML returns the embedded default YAML, for `typestorm config init`
// style tooling and tests.
func DefaultYAML() []byte {
	return defaultYAML
}
