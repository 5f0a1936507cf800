package board

import "fmt"

// SquareBoard is a fixed width x width grid of cells.
type SquareBoard struct {
	width int
	cells [][]Cell // cells[i-1][j-1] holds Cell{i, j}
}

// NewSquareBoard creates a board with one cell per coordinate in [1..width]^2.
func NewSquareBoard(width int) *SquareBoard {
	if width < 0 {
		width = 0
	}

	cells := make([][]Cell, width)
	for i := range width {
		cells[i] = make([]Cell, width)
		for j := range width {
			cells[i][j] = Cell{I: i + 1, J: j + 1}
		}
	}

	return &SquareBoard{width: width, cells: cells}
}

// Width returns the number of rows (and columns).
func (b *SquareBoard) Width() int {
	return b.width
}

// contains reports whether (i, j) lies on the board.
func (b *SquareBoard) contains(i, j int) bool {
	return i >= 1 && i <= b.width && j >= 1 && j <= b.width
}

// Lookup returns the cell at (i, j), or false if it is out of range.
func (b *SquareBoard) Lookup(i, j int) (Cell, bool) {
	if !b.contains(i, j) {
		return Cell{}, false
	}
	return b.cells[i-1][j-1], true
}

// Cell returns the cell at (i, j).
// Returns an error wrapping ErrInvalidCoordinate if it is out of range.
func (b *SquareBoard) Cell(i, j int) (Cell, error) {
	c, ok := b.Lookup(i, j)
	if !ok {
		return Cell{}, fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrInvalidCoordinate, i, j, b.width, b.width)
	}
	return c, nil
}

// AllCells returns every cell in row-major order.
func (b *SquareBoard) AllCells() []Cell {
	all := make([]Cell, 0, b.width*b.width)
	for _, row := range b.cells {
		all = append(all, row...)
	}
	return all
}

// Row returns the cells of row i at the given columns, in the order given.
// Traversal stops at the first column that is off the board.
func (b *SquareBoard) Row(i int, js []int) []Cell {
	result := make([]Cell, 0, len(js))
	for _, j := range js {
		c, ok := b.Lookup(i, j)
		if !ok {
			break
		}
		result = append(result, c)
	}
	return result
}

// Column returns the cells of column j at the given rows, in the order given.
// Traversal stops at the first row that is off the board.
func (b *SquareBoard) Column(is []int, j int) []Cell {
	result := make([]Cell, 0, len(is))
	for _, i := range is {
		c, ok := b.Lookup(i, j)
		if !ok {
			break
		}
		result = append(result, c)
	}
	return result
}

// Neighbour returns the cell one step from c in direction d,
// or false if that step leaves the board.
func (b *SquareBoard) Neighbour(c Cell, d Direction) (Cell, bool) {
	di, dj := d.delta()
	if di == 0 && dj == 0 {
		return Cell{}, false
	}
	return b.Lookup(c.I+di, c.J+dj)
}

// Range returns the inclusive sequence from..to, counting down when to < from.
// Range(1, 4) is [1 2 3 4]; Range(4, 1) is [4 3 2 1].
func Range(from, to int) []int {
	step := 1
	n := to - from + 1
	if to < from {
		step = -1
		n = from - to + 1
	}

	seq := make([]int, 0, n)
	for v := from; len(seq) < n; v += step {
		seq = append(seq, v)
	}
	return seq
}
