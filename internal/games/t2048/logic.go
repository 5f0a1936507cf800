package t2048

import "github.com/vovakirdan/tui-puzzles/internal/board"

// BoardSize is the board dimension.
const BoardSize = 4

// Board is the 2048 game board. Empty cells hold no value.
type Board = board.GameBoard[int]

// double is the 2048 merge rule.
func double(v int) int {
	return v + v
}

// MoveAndMergeEqual compacts a line read in move order (index 0 is the edge
// tiles slide toward). Empty slots are dropped, then adjacent equal values
// are combined with merge. A value produced by a merge does not merge again
// in the same pass, so [2 2 2 2] becomes [4 4], not [8].
// The result is never longer than the line; callers pad it with empty cells.
func MoveAndMergeEqual[T comparable](line []board.Slot[T], merge func(T) T) []T {
	result := make([]T, 0, len(line))
	canMerge := false // Whether the last written value may still merge

	for _, s := range line {
		if !s.Filled {
			continue
		}

		if canMerge && result[len(result)-1] == s.Value {
			// Merge with previous tile
			result[len(result)-1] = merge(s.Value)
			canMerge = false
		} else {
			// Move tile
			result = append(result, s.Value)
			canMerge = true
		}
	}

	return result
}

// lines returns the rows or columns a move in dir operates on,
// each ordered from the edge tiles slide toward.
func lines(b *Board, dir board.Direction) [][]board.Cell {
	w := b.Width()
	result := make([][]board.Cell, 0, w)

	switch dir {
	case board.Left:
		for i := 1; i <= w; i++ {
			result = append(result, b.Row(i, board.Range(1, w)))
		}
	case board.Right:
		for i := w; i >= 1; i-- {
			result = append(result, b.Row(i, board.Range(w, 1)))
		}
	case board.Up:
		for j := 1; j <= w; j++ {
			result = append(result, b.Column(board.Range(1, w), j))
		}
	case board.Down:
		for j := w; j >= 1; j-- {
			result = append(result, b.Column(board.Range(w, 1), j))
		}
	}

	return result
}

// moveLine slides and merges the values stored in one row or column.
// Returns true if any cell of the line changed.
func moveLine(b *Board, cells []board.Cell) bool {
	current := b.Line(cells)
	merged := MoveAndMergeEqual(current, double)

	if len(merged) == 0 {
		// No tiles in this line
		return false
	}

	changed := false
	for i := range cells {
		next := board.Empty[int]()
		if i < len(merged) {
			next = board.Filled(merged[i])
		}
		if next != current[i] {
			changed = true
		}
	}

	if !changed {
		return false
	}

	for i, c := range cells {
		if i < len(merged) {
			b.Put(c, merged[i])
		} else {
			b.Clear(c)
		}
	}
	return true
}

// MoveValues slides all tiles in dir and merges equal neighbours.
// Returns true if the board changed. A line whose tiles already sit packed
// against the edge with no equal neighbours is left as it is and does not
// count as a change, so [2 4 _ _] moved Left is a no-op.
func MoveValues(b *Board, dir board.Direction) bool {
	moved := false
	for _, line := range lines(b, dir) {
		if moveLine(b, line) {
			moved = true
		}
	}
	return moved
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(b *Board) bool {
	return b.Any(board.IsEmpty[int])
}

// HasPossibleMerge returns true if any two adjacent tiles hold the same value.
func HasPossibleMerge(b *Board) bool {
	for _, c := range b.AllCells() {
		s := b.Get(c)
		if !s.Filled {
			continue
		}
		for _, dir := range []board.Direction{board.Right, board.Down} {
			if n, ok := b.Neighbour(c, dir); ok && b.Get(n) == s {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(b *Board) int {
	maxVal := 0
	for _, s := range b.Values() {
		if s.Filled && s.Value > maxVal {
			maxVal = s.Value
		}
	}
	return maxVal
}
