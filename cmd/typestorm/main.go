// typestorm is a typing-defense arcade game for the terminal: enemies carry
// words toward your turret and you shoot them down letter by letter.
//
// Usage:
//
//	typestorm play            - Start the game (menu, options, play)
//	typestorm scores          - Show best scores and session history
//	typestorm languages       - List available word-list languages
//	typestorm serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.typestorm/scores.db)
//	--config <path> - Use a specific config file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typestorm",
	Short: "Typestorm - type fast, shoot faster",
	Long: `Typestorm is a terminal typing-defense game. Enemies drift toward your
turret carrying words; typing a word's letters fires lasers at its carrier.
Clear the word to destroy the enemy. Let one touch you and the run is over.

Available commands:
  play       - Start the game
  scores     - View best scores and recent sessions
  languages  - List available word-list languages
  serve      - Start SSH server for remote play

Examples:
  typestorm play
  typestorm play --fps 120
  typestorm scores
  typestorm serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.typestorm/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(serveCmd)
}
