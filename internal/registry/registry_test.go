package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/board"
	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// fakeGame is the smallest Game the registry can hand out.
type fakeGame struct {
	seed int64
}

func (fakeGame) ID() string { return "fake" }
func (fakeGame) Title() string { return "Fake" }
func (fakeGame) Initialize() {}
func (fakeGame) CanMove() bool { return true }
func (fakeGame) HasWon() bool { return false }
func (fakeGame) ProcessMove(board.Direction) {}
func (fakeGame) Width() int { return 1 }

func (fakeGame) Get(i, j int) (board.Slot[int], error) {
	return board.Slot[int]{}, nil
}

func TestRegisterDoesNotCallFactory(t *testing.T) {
	calls := 0
	Register("lazy", "Lazy Game", func(cfg core.RuntimeConfig) (Game, error) {
		calls++
		return fakeGame{seed: cfg.Seed}, nil
	})

	if calls != 0 {
		t.Fatalf("factory called %d times during Register, want 0", calls)
	}
	if !Exists("lazy") {
		t.Fatal("Exists(lazy) = false after Register")
	}

	var title string
	for _, g := range List() {
		if g.ID == "lazy" {
			title = g.Title
		}
	}
	if title != "Lazy Game" {
		t.Errorf("List() title = %q, want %q", title, "Lazy Game")
	}

	g, err := Create("lazy", core.RuntimeConfig{Seed: 7})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("factory called %d times after Create, want 1", calls)
	}
	if g.(fakeGame).seed != 7 {
		t.Errorf("factory got seed %d, want 7", g.(fakeGame).seed)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	factory := func(core.RuntimeConfig) (Game, error) { return fakeGame{}, nil }
	Register("dup", "Dup", factory)

	defer func() {
		if recover() == nil {
			t.Error("second Register with the same ID should panic")
		}
	}()
	Register("dup", "Dup", factory)
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("missing", core.DefaultConfig()); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(missing) error = %v, want ErrUnknownGame", err)
	}

	failure := errors.New("bad config")
	Register("broken", "Broken", func(core.RuntimeConfig) (Game, error) {
		return nil, failure
	})
	if _, err := Create("broken", core.DefaultConfig()); !errors.Is(err, failure) {
		t.Errorf("Create(broken) error = %v, want wrapped factory error", err)
	}
}
