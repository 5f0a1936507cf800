package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/platform/tui"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every registered puzzle with how often it was played and won.

Examples:
  puzzles list
  puzzles list --db ./results.db`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	writeGameList(os.Stdout, registry.List(), func(id string) string {
		return tui.StatsSummary(store, id)
	})
}

// writeGameList prints one line per game: ID, title and the history
// summary returned by history, which may be empty.
func writeGameList(w io.Writer, games []registry.GameInfo, history func(id string) string) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No puzzles registered.")
		return
	}

	idWidth, titleWidth := len("ID"), len("Title")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
		titleWidth = max(titleWidth, len(g.Title))
	}

	fmt.Fprintf(w, "%-*s  %-*s  %s\n", idWidth, "ID", titleWidth, "Title", "History")
	for _, g := range games {
		summary := history(g.ID)
		if summary == "" {
			summary = "not played"
		}
		fmt.Fprintf(w, "%-*s  %-*s  %s\n", idWidth, g.ID, titleWidth, g.Title, summary)
	}

	fmt.Fprintf(w, "\n%d puzzles. Start one with 'puzzles play <id>'.\n", len(games))
}
