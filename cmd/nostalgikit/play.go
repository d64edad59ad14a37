package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nostalgik/nostalgikit/internal/core"
	"github.com/nostalgik/nostalgikit/internal/games/blockstack"
	"github.com/nostalgik/nostalgikit/internal/games/wargame"
	"github.com/nostalgik/nostalgikit/internal/platform/tui"
	"github.com/nostalgik/nostalgikit/internal/registry"
	"github.com/nostalgik/nostalgikit/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows - Move
  X           - Red button (rotate, yes, select)
  Y           - Purple button (no, alternate)
  Space       - Hard drop / dash
  Enter       - Confirm
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower pacing / weaker opponents
  normal - The default balance
  hard   - Faster pacing / stronger opponents
  fixed  - No speed progression

Examples:
  nostalgikit play blockstack
  nostalgikit play blockstack --difficulty hard
  nostalgikit play wargame --difficulty easy
  nostalgikit play blockstack --config ./my-blockstack.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags pushes the --config/--difficulty flags into the games that
// support them, before the game instance is created.
func applyGameFlags(gameID string) {
	switch gameID {
	case "blockstack":
		blockstack.SetConfigPath(flagConfig)
		blockstack.SetDifficultyPreset(flagDifficulty)
	case "wargame":
		wargame.SetConfigPath(flagConfig)
		wargame.SetDifficultyPreset(flagDifficulty)
	}
}

// terminalSize returns the current terminal dimensions, or 80x24 when they
// cannot be determined.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'nostalgikit list' to see available games.")
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyGameFlags(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
