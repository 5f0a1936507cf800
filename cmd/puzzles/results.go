package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/platform/tui"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
	"github.com/vovakirdan/tui-puzzles/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var resultsCmd = &cobra.Command{
	Use:   "results <game>",
	Short: "Show recent results for a game",
	Long: `Display how recent sessions of a game ended, newest first.

Examples:
  puzzles results 2048
  puzzles results fifteen --limit 20
  puzzles results 2048 --interactive
  puzzles results 2048 --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	resultsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a table")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the game")
}

func runResults(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'puzzles list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			return
		}
		fmt.Printf("Cleared results for %s.\n", gameID)
		return
	}

	if flagInteractive {
		cfg := runtimeConfig()
		if _, err := tui.RunResults(store, gameID, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	results, err := store.RecentResults(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}
	stats, err := store.GameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	var title string
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	fmt.Printf("Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'puzzles play %s' to record one.\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "#", "Outcome", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "-", "-------", "-----", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-8s  %-6d  %s\n", i+1, r.Outcome, r.Moves, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println(tui.FormatStats(stats))
}
