package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nostalgik/nostalgikit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default config YAML",
	Long: `Print the built-in default configuration for a game.

Redirect the output to a file, edit it, and pass it back with
'play --config', or drop it into ~/.nostalgikit/configs/<game>.yaml
to apply it automatically.

Examples:
  nostalgikit config blockstack > my-blockstack.yaml
  nostalgikit config wargame > ~/.nostalgikit/configs/wargame.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: game %q has no tunable config\n", args[0])
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
