// Package core holds the small set of types shared between the puzzle games
// and the platform that drives them. It has no UI dependencies.
package core

// RuntimeConfig contains configuration passed to game factories.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	Seed       int64  // RNG seed for reproducible games
	ConfigPath string // Optional path to a game config YAML
	Difficulty string // Optional difficulty preset name
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Outcome describes how a game session ended.
type Outcome string

const (
	OutcomeWon   Outcome = "won"
	OutcomeStuck Outcome = "stuck"
	OutcomeQuit  Outcome = "quit"
)

// Status is the state a driver polls after each move.
type Status struct {
	Moves   int  // Moves that changed the board
	Won     bool // Win condition holds
	CanMove bool // Further moves are possible
}

// Finished returns true once the game has been won or cannot continue.
func (s Status) Finished() bool {
	return s.Won || !s.CanMove
}

// Outcome returns the outcome for a finished status, or OutcomeQuit otherwise.
func (s Status) Outcome() Outcome {
	switch {
	case s.Won:
		return OutcomeWon
	case !s.CanMove:
		return OutcomeStuck
	default:
		return OutcomeQuit
	}
}
