package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typestorm/internal/audio"
	"github.com/vovakirdan/typestorm/internal/config"
	"github.com/vovakirdan/typestorm/internal/core"
	"github.com/vovakirdan/typestorm/internal/engine"
	"github.com/vovakirdan/typestorm/internal/platform/tui"
	"github.com/vovakirdan/typestorm/internal/storage"
	"github.com/vovakirdan/typestorm/internal/words"
)

var flagWordsDir string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start typestorm: menu, options and play.

Controls:
  letters     - Select and shoot the enemy whose word starts with that letter
  Up/Down     - Move through menus
  Left/Right  - Change an option value
  Enter       - Confirm / apply options
  Esc         - Back (in the menu: quit)
  Ctrl+C      - Quit

Typing ; ' [ produces the letters ö ä å for the non-English word lists.

Examples:
  typestorm play
  typestorm play --fps 120
  typestorm play --seed 7
  typestorm play --words ./my-wordlists`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagWordsDir, "words", "", "Directory with extra word lists (<language>.txt)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	provider := words.NewProvider(flagWordsDir)
	if err := cfg.Validate(provider.Languages()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rtc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var scores engine.ScoreStore = nopScoreStore{}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without persistence - the game still works
	} else {
		scores = store
		defer store.Close()
	}

	sfx := audio.NewPlayer(cfg.SFXVolume)
	if err := sfx.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", err)
		// sfx drops cues while uninitialized
	}
	defer sfx.Close()

	session := engine.NewSession(cfg, rtc, engine.Deps{
		Words:  provider,
		Scores: scores,
		Cues:   sfx,
		Config: configSink{path: flagConfig, sfx: sfx},
	})

	if err := tui.Run(session, rtc); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// configSink persists applied options and keeps the audio volume in sync.
type configSink struct {
	path string
	sfx  *audio.Player
}

func (s configSink) Apply(cfg config.Config) error {
	s.sfx.SetVolume(cfg.SFXVolume)
	return config.Save(cfg, s.path)
}

// nopScoreStore keeps the game playable when the database is unavailable.
type nopScoreStore struct{}

func (nopScoreStore) Best(string, string) (int, error)   { return 0, nil }
func (nopScoreStore) SaveBest(string, string, int) error { return nil }
func (nopScoreStore) RecordSession(string, string, int, int, int, float64) error {
	return nil
}
