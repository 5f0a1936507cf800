// Package board provides the square-grid abstraction shared by the puzzle
// games: cell addressing, directional traversal, neighbour lookup and a
// value-carrying game board.
//
// It contains no external UI dependencies so game logic stays pure and
// testable.
package board

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate is returned when a coordinate lies outside the board.
var ErrInvalidCoordinate = errors.New("board: invalid coordinate")

// Cell is a single grid position. Rows and columns are 1-indexed.
// Cells are plain values: two cells with the same coordinates are equal
// and may be used interchangeably as map keys.
type Cell struct {
	I int // Row
	J int // Column
}

// String returns the cell as "(i, j)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.I, c.J)
}

// Direction is a move direction on the board.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all four directions.
var Directions = []Direction{Up, Down, Left, Right}

// Reversed returns the opposite direction.
func (d Direction) Reversed() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// delta returns the row and column offset of one step in d.
func (d Direction) delta() (di, dj int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}
