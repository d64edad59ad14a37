// nostalgikit is a retro handheld console for the terminal: a hub of small
// games played over a shared character screen.
//
// Usage:
//
//	nostalgikit list              - List available games
//	nostalgikit play <game>       - Play a game
//	nostalgikit menu              - Start the hub menu to pick games
//	nostalgikit serve             - Start the SSH server for remote play
//	nostalgikit scores <game>     - Show high scores for a game
//	nostalgikit config <game>     - Print a game's default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.nostalgikit/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/nostalgik/nostalgikit/internal/games/blockstack"
	_ "github.com/nostalgik/nostalgikit/internal/games/crakers"
	_ "github.com/nostalgik/nostalgikit/internal/games/oracle"
	_ "github.com/nostalgik/nostalgikit/internal/games/river"
	_ "github.com/nostalgik/nostalgikit/internal/games/wargame"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nostalgikit",
	Short: "NostalgiKit - A retro game console in your terminal",
	Long: `NostalgiKit is a terminal-based retro console with a hub of small
classic-style games.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print a game's default config YAML

Examples:
  nostalgikit list
  nostalgikit play blockstack
  nostalgikit menu
  nostalgikit serve --ssh :2222
  nostalgikit scores blockstack`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nostalgikit/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
