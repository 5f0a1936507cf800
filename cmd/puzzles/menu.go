package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/platform/tui"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Results for the highlighted game
  Q            - Quit

Examples:
  puzzles menu
  puzzles menu --db ./results.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsResults {
			goBack, resErr := tui.RunResults(store, menuResult.GameID, cfg.ScreenW, cfg.ScreenH)
			if resErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", resErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from results
		}

		// A fixed --seed applies to the first game only
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		game, err := registry.Create(menuResult.GameID, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if err := tui.Run(game, store, logger, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		cfg.Seed = 0
	}

	if store != nil {
		store.Close()
	}
}
