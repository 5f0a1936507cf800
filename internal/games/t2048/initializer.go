package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-puzzles/internal/board"
)

// Initializer supplies the values placed on the board at start and after
// every move. NextValue returns false when there is nowhere to put a value.
type Initializer interface {
	NextValue(b *Board) (board.Cell, int, bool)
}

// RandomInitializer places a 2 or a 4 in a uniformly chosen empty cell.
type RandomInitializer struct {
	rng        *rand.Rand
	spawn4Prob float64
}

// NewRandomInitializer creates an initializer drawing from rng.
// spawn4Prob is the chance of a 4 instead of a 2 (0.10 in classic 2048).
func NewRandomInitializer(rng *rand.Rand, spawn4Prob float64) *RandomInitializer {
	return &RandomInitializer{rng: rng, spawn4Prob: spawn4Prob}
}

// NextValue picks the cell and value for a new tile.
func (r *RandomInitializer) NextValue(b *Board) (board.Cell, int, bool) {
	emptyCells := EmptyCells(b)
	if len(emptyCells) == 0 {
		return board.Cell{}, 0, false
	}

	// Pick random empty cell
	cell := emptyCells[r.rng.Intn(len(emptyCells))]

	// Determine value (90% 2, 10% 4 by default)
	value := 2
	if r.rng.Float64() < r.spawn4Prob {
		value = 4
	}

	return cell, value, true
}

// EmptyCells returns all empty cells in row-major order.
func EmptyCells(b *Board) []board.Cell {
	var cells []board.Cell
	for _, c := range b.AllCells() {
		if !b.Get(c).Filled {
			cells = append(cells, c)
		}
	}
	return cells
}

// AddNewValue places one value from spawner on the board, if it supplies one.
func AddNewValue(b *Board, spawner Initializer) {
	if c, v, ok := spawner.NextValue(b); ok {
		b.Put(c, v)
	}
}
