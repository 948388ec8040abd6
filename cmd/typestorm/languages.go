package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typestorm/internal/words"
)

var flagLanguagesDir string

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List available word-list languages",
	Long: `List the word-list languages the game can use: the built-in lists
plus any <language>.txt files in the given directory.

Examples:
  typestorm languages
  typestorm languages --words ./my-wordlists`,
	Run: runLanguages,
}

func init() {
	languagesCmd.Flags().StringVar(&flagLanguagesDir, "words", "", "Directory with extra word lists (<language>.txt)")
}

func runLanguages(_ *cobra.Command, _ []string) {
	provider := words.NewProvider(flagLanguagesDir)
	for _, name := range provider.Languages() {
		marker := " "
		if _, err := provider.Source(name); err != nil {
			marker = "!" // list exists but is incomplete or unreadable
		}
		fmt.Printf("%s %s\n", marker, name)
	}
}
