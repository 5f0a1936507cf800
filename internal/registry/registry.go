// Package registry provides a global registry for puzzle game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-puzzles/internal/board"
	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered game ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every puzzle implements.
// A driver calls Initialize once, then alternates ProcessMove with
// CanMove/HasWon polls, reading cells through Get for display.
type Game interface {
	// ID returns a unique identifier (e.g., "2048", "fifteen").
	// Used for CLI commands and result storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Initialize populates the board with its starting state.
	// Must be called exactly once before any other operation.
	Initialize()

	// CanMove returns true if further moves are possible.
	CanMove() bool

	// HasWon returns true if the win condition currently holds.
	HasWon() bool

	// ProcessMove applies one move. Moves that cannot apply are no-ops.
	ProcessMove(dir board.Direction)

	// Get returns the slot at (i, j), 1-indexed.
	// Fails with board.ErrInvalidCoordinate outside the board.
	Get(i, j int) (board.Slot[int], error)

	// Width returns the board width.
	Width() int
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, uninitialized instance of a game.
type Factory func(cfg core.RuntimeConfig) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry under a display title.
// Typically called from a game's init() function. The factory is not
// called until Create, so registration does no config I/O.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error wrapping ErrUnknownGame if the ID is not registered.
func Create(id string, cfg core.RuntimeConfig) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	g, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
