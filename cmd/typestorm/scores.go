package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typestorm/internal/platform/tui"
	"github.com/vovakirdan/typestorm/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "View best scores and recent sessions",
	Long: `Show the best score for every language and difficulty, plus the
recent session history. Tab switches between the two views.

Examples:
  typestorm scores
  typestorm scores --db ./scores.db`,
	Run: runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}
