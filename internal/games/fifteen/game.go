// Package fifteen implements the 15-puzzle: fifteen numbered tiles and one
// gap on a 4x4 board, solved when the tiles read 1..15 in row-major order.
package fifteen

import (
	"math/rand"

	"github.com/vovakirdan/tui-puzzles/internal/board"
	"github.com/vovakirdan/tui-puzzles/internal/config"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

// GameTitle is the display name.
const GameTitle = "Game of Fifteen"

// GameID is the registry identifier of the 15-puzzle.
const GameID = "fifteen"

// BoardSize is the board dimension.
const BoardSize = 4

// Board is the 15-puzzle board. The gap is the single empty cell.
type Board = board.GameBoard[int]

// Game implements the 15-puzzle.
type Game struct {
	board       *Board
	initializer Initializer
}

// New creates a 15-puzzle whose starting layout comes from layout.
func New(layout Initializer) *Game {
	return &Game{
		board:       board.NewGameBoard[int](BoardSize),
		initializer: layout,
	}
}

func init() {
	registry.Register(GameID, GameTitle, func(rc core.RuntimeConfig) (registry.Game, error) {
		cfg, err := config.LoadFifteen(rc.ConfigPath)
		if err != nil {
			return nil, err
		}
		if !cfg.Shuffle {
			return New(DemoPermutation), nil
		}
		return New(NewRandomInitializer(rand.New(rand.NewSource(rc.Seed)))), nil
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

// Initialize lays out the initializer's permutation.
func (g *Game) Initialize() {
	AddValues(g.board, g.initializer)
}

// CanMove always returns true: some tile always borders the gap.
func (g *Game) CanMove() bool {
	return true
}

// HasWon returns true if the tiles read 1..15 in row-major order.
func (g *Game) HasWon() bool {
	return IsSolved(g.board)
}

// ProcessMove slides the tile on the far side of the gap into it.
// Pressing Left moves the tile to the right of the gap; a gap on the
// right edge makes that a no-op.
func (g *Game) ProcessMove(dir board.Direction) {
	MoveValues(g.board, dir)
}

// Get returns the slot at (i, j); the gap is the empty slot.
func (g *Game) Get(i, j int) (board.Slot[int], error) {
	c, err := g.board.Cell(i, j)
	if err != nil {
		return board.Slot[int]{}, err
	}
	return g.board.Get(c), nil
}


// AddValues writes the initializer's permutation onto the board in
// row-major order. Cells past the end of the permutation are left empty
// and surplus values are dropped, so a short permutation yields extra gaps
// rather than an error.
func AddValues(b *Board, layout Initializer) {
	perm := layout.InitialPermutation()
	for i, c := range b.AllCells() {
		if i < len(perm) && i < Tiles {
			b.Put(c, perm[i])
		} else {
			b.Clear(c)
		}
	}
}

// MoveValues slides the tile opposite dir into the gap.
// Returns true if a tile moved.
func MoveValues(b *Board, dir board.Direction) bool {
	gap, ok := b.Find(board.IsEmpty[int])
	if !ok {
		return false
	}

	from, ok := b.Neighbour(gap, dir.Reversed())
	if !ok {
		return false
	}

	b.Set(gap, b.Get(from))
	b.Clear(from)
	return true
}

// IsSolved reports whether the filled cells read exactly 1..15 in row-major order.
func IsSolved(b *Board) bool {
	next := 1
	for _, s := range b.Values() {
		if !s.Filled {
			continue
		}
		if s.Value != next {
			return false
		}
		next++
	}
	return next == Tiles+1
}
