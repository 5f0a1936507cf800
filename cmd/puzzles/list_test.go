package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

func TestWriteGameList(t *testing.T) {
	games := []registry.GameInfo{
		{ID: "2048", Title: "2048"},
		{ID: "fifteen", Title: "Game of Fifteen"},
	}
	history := map[string]string{"2048": "3 played, 1 won"}

	var buf bytes.Buffer
	writeGameList(&buf, games, func(id string) string { return history[id] })

	lines := strings.Split(buf.String(), "\n")
	want := []string{
		"ID       Title            History",
		"2048     2048             3 played, 1 won",
		"fifteen  Game of Fifteen  not played",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	if !strings.Contains(buf.String(), "2 puzzles.") {
		t.Errorf("missing footer:\n%s", buf.String())
	}
}

func TestWriteGameListEmpty(t *testing.T) {
	var buf bytes.Buffer
	writeGameList(&buf, nil, func(string) string { return "" })

	if got := buf.String(); got != "No puzzles registered.\n" {
		t.Errorf("output = %q", got)
	}
}
