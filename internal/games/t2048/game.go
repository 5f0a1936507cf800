// Package t2048 implements the 2048 sliding and merging puzzle on a 4x4 board.
package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-puzzles/internal/board"
	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

// GameTitle is the display name.
const GameTitle = "2048"

// GameID is the registry identifier of 2048.
const GameID = "2048"

// Game implements the 2048 puzzle game.
type Game struct {
	board        *Board
	initializer  Initializer
	target       int // Tile value that wins
	initialTiles int // Tiles placed by Initialize
}

// New creates a classic 2048 game (target 2048, two starting tiles)
// whose tiles come from spawner.
func New(spawner Initializer) *Game {
	return NewWithConfig(config.DefaultGame2048Config(), spawner)
}

// NewWithConfig creates a 2048 game using the target and starting tile
// count from cfg. Tile placement is left entirely to spawner.
func NewWithConfig(cfg config.Game2048Config, spawner Initializer) *Game {
	cfg.Validate()
	return &Game{
		board:        board.NewGameBoard[int](BoardSize),
		initializer:  spawner,
		target:       cfg.Target,
		initialTiles: cfg.Spawn.InitialTiles,
	}
}

func init() {
	registry.Register(GameID, GameTitle, func(rc core.RuntimeConfig) (registry.Game, error) {
		cfg, err := config.LoadGame2048(rc.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyGame2048Preset(&cfg, config.DifficultyPreset(rc.Difficulty))

		rng := rand.New(rand.NewSource(rc.Seed))
		return NewWithConfig(cfg, NewRandomInitializer(rng, cfg.Spawn.FourProbability)), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return GameTitle
}

// Width returns the board width.
func (g *Game) Width() int {
	return g.board.Width()
}

// Initialize places the starting tiles.
func (g *Game) Initialize() {
	for range g.initialTiles {
		AddNewValue(g.board, g.initializer)
	}
}

// CanMove returns true while at least one cell is empty.
// A full board with a merge still available counts as stuck.
func (g *Game) CanMove() bool {
	return HasEmptyCell(g.board)
}

// HasPossibleMerge returns true if two adjacent tiles hold the same value.
// On a full board this tells a player that a merge was still available.
func (g *Game) HasPossibleMerge() bool {
	return HasPossibleMerge(g.board)
}

// HasWon returns true if any tile holds the target value.
func (g *Game) HasWon() bool {
	return g.board.Any(board.Holding(g.target))
}

// ProcessMove slides the tiles in dir and, if anything moved,
// adds one new tile.
func (g *Game) ProcessMove(dir board.Direction) {
	if !MoveValues(g.board, dir) {
		// Board didn't change - don't spawn new tile
		return
	}
	AddNewValue(g.board, g.initializer)
}

// Get returns the slot at (i, j); it is empty where there is no tile.
func (g *Game) Get(i, j int) (board.Slot[int], error) {
	c, err := g.board.Cell(i, j)
	if err != nil {
		return board.Slot[int]{}, err
	}
	return g.board.Get(c), nil
}
