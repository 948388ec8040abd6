package config

import (
	"os"
	"path/filepath"
	"testing"
)

var testLanguages = []string{"english", "deutsch", "suomi"}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(testLanguages); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
}

func TestValidateRejectsUnknownEnums(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown palette", func(c *Config) { c.Palette = "neon" }},
		{"unknown language", func(c *Config) { c.Language = "klingon" }},
		{"zero zoom", func(c *Config) { c.Zoom = 0 }},
		{"negative unlock", func(c *Config) { c.HardUnlock = -1 }},
		{"sfx out of range", func(c *Config) { c.SFXVolume = 150 }},
		{"music out of range", func(c *Config) { c.MusicVolume = -10 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(testLanguages); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestPalettesHaveFiveColors(t *testing.T) {
	for name, p := range Palettes {
		for _, c := range []string{p.Text, p.Player, p.Enemy, p.Laser, p.Background} {
			if len(c) != 7 || c[0] != '#' {
				t.Errorf("palette %q has malformed color %q", name, c)
			}
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cfg.yaml")

	data := []byte("palette: winter\nlanguage: suomi\nzoom: 1.5\nhard_unlock: 25\nsfx_volume: 50\nmusic_volume: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Palette != "winter" || cfg.Language != "suomi" || cfg.Zoom != 1.5 {
		t.Errorf("Load() = %+v, fields not parsed", cfg)
	}
	if err := cfg.Validate(testLanguages); err != nil {
		t.Errorf("loaded config should validate, got %v", err)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "cfg.yaml")

	cfg := Default()
	cfg.Palette = "autumn"
	cfg.SFXVolume = 30

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("round trip mismatch: saved %+v, loaded %+v", cfg, loaded)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Loading with no paths available falls through to the embedded YAML,
	// which must agree with Default().
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Palette == "" || cfg.Language == "" {
		t.Errorf("embedded default incomplete: %+v", cfg)
	}
}

func TestActivePaletteFallback(t *testing.T) {
	cfg := Default()
	cfg.Palette = "missing"
	if got := cfg.ActivePalette(); got != Palettes["default"] {
		t.Errorf("ActivePalette() fallback = %+v, expected default palette", got)
	}
}
