package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the default config for a game",
	Long: `Print the built-in YAML config for a game.

Save the output to ~/.puzzles/configs/<game>.yaml or ./configs/<game>.yaml
and edit it to change the defaults, or pass it with --config.

Examples:
  puzzles config 2048 > ~/.puzzles/configs/2048.yaml
  puzzles config fifteen`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no config for game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'puzzles list' to see available games.")
		os.Exit(1)
	}
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(data)
}
