package board

import (
	"errors"
	"slices"
	"testing"
)

func TestLookupInRange(t *testing.T) {
	b := NewSquareBoard(4)

	for i := 1; i <= 4; i++ {
		for j := 1; j <= 4; j++ {
			c, ok := b.Lookup(i, j)
			if !ok {
				t.Fatalf("Lookup(%d, %d) not found", i, j)
			}
			if c.I != i || c.J != j {
				t.Errorf("Lookup(%d, %d) = %v", i, j, c)
			}
		}
	}
}

func TestLookupOutOfRange(t *testing.T) {
	b := NewSquareBoard(4)

	tests := []struct{ i, j int }{
		{0, 1}, {1, 0}, {5, 1}, {1, 5}, {-1, -1}, {0, 0}, {5, 5},
	}

	for _, tc := range tests {
		if c, ok := b.Lookup(tc.i, tc.j); ok {
			t.Errorf("Lookup(%d, %d) = %v, expected not found", tc.i, tc.j, c)
		}
	}
}

func TestCellInvalidCoordinate(t *testing.T) {
	b := NewSquareBoard(2)

	if _, err := b.Cell(2, 2); err != nil {
		t.Fatalf("Cell(2, 2) returned error: %v", err)
	}

	_, err := b.Cell(3, 1)
	if err == nil {
		t.Fatal("Cell(3, 1) should fail on a 2x2 board")
	}
	if !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("Cell(3, 1) error = %v, expected ErrInvalidCoordinate", err)
	}
}

func TestCellsCompareByCoordinates(t *testing.T) {
	b := NewSquareBoard(3)

	c, _ := b.Lookup(2, 3)
	if c != (Cell{I: 2, J: 3}) {
		t.Errorf("board cell %v should equal a freshly built Cell{2, 3}", c)
	}

	m := map[Cell]int{c: 7}
	if m[Cell{2, 3}] != 7 {
		t.Error("equal cells should hash to the same map key")
	}
}

func TestAllCells(t *testing.T) {
	b := NewSquareBoard(3)
	all := b.AllCells()

	if len(all) != 9 {
		t.Fatalf("AllCells() length = %d, expected 9", len(all))
	}

	seen := make(map[Cell]bool)
	for _, c := range all {
		if seen[c] {
			t.Errorf("cell %v returned twice", c)
		}
		seen[c] = true
	}

	if !slices.Equal(all, b.AllCells()) {
		t.Error("AllCells() order should be stable")
	}

	if all[0] != (Cell{1, 1}) || all[1] != (Cell{1, 2}) || all[3] != (Cell{2, 1}) {
		t.Errorf("AllCells() should be row-major, got %v", all)
	}
}

func TestRowAndColumn(t *testing.T) {
	b := NewSquareBoard(2)

	tests := []struct {
		name     string
		got      []Cell
		expected []Cell
	}{
		{
			name:     "row ascending",
			got:      b.Row(1, Range(1, 2)),
			expected: []Cell{{1, 1}, {1, 2}},
		},
		{
			name:     "row descending",
			got:      b.Row(2, Range(2, 1)),
			expected: []Cell{{2, 2}, {2, 1}},
		},
		{
			name:     "row truncated past width",
			got:      b.Row(1, Range(1, 10)),
			expected: []Cell{{1, 1}, {1, 2}},
		},
		{
			name:     "column ascending",
			got:      b.Column(Range(1, 2), 2),
			expected: []Cell{{1, 2}, {2, 2}},
		},
		{
			name:     "column descending",
			got:      b.Column(Range(2, 1), 1),
			expected: []Cell{{2, 1}, {1, 1}},
		},
		{
			name:     "column descending from off-board stops immediately",
			got:      b.Column(Range(3, 1), 1),
			expected: []Cell{},
		},
		{
			name:     "row truncated at first bad index",
			got:      b.Row(1, []int{2, 0, 1}),
			expected: []Cell{{1, 2}},
		},
		{
			name:     "row off the board",
			got:      b.Row(3, Range(1, 2)),
			expected: []Cell{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !slices.Equal(tc.got, tc.expected) {
				t.Errorf("got %v, expected %v", tc.got, tc.expected)
			}
		})
	}
}

func TestNeighbour(t *testing.T) {
	b := NewSquareBoard(2)
	c := Cell{1, 1}

	tests := []struct {
		dir      Direction
		expected Cell
		ok       bool
	}{
		{Up, Cell{}, false},
		{Left, Cell{}, false},
		{Down, Cell{2, 1}, true},
		{Right, Cell{1, 2}, true},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			n, ok := b.Neighbour(c, tc.dir)
			if ok != tc.ok || n != tc.expected {
				t.Errorf("Neighbour(%v, %v) = %v, %v; expected %v, %v", c, tc.dir, n, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestNeighbourSymmetry(t *testing.T) {
	b := NewSquareBoard(4)

	for _, a := range b.AllCells() {
		for _, d := range Directions {
			n, ok := b.Neighbour(a, d)
			if !ok {
				continue
			}
			back, ok := b.Neighbour(n, d.Reversed())
			if !ok || back != a {
				t.Errorf("Neighbour(%v, %v) = %v but Neighbour(%v, %v) = %v", a, d, n, n, d.Reversed(), back)
			}
		}
	}
}

func TestReversedIsInvolution(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}

	for d, expected := range pairs {
		if d.Reversed() != expected {
			t.Errorf("%v.Reversed() = %v, expected %v", d, d.Reversed(), expected)
		}
		if d.Reversed().Reversed() != d {
			t.Errorf("%v reversed twice should be itself", d)
		}
	}
}

func TestRange(t *testing.T) {
	if got := Range(1, 4); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("Range(1, 4) = %v", got)
	}
	if got := Range(4, 1); !slices.Equal(got, []int{4, 3, 2, 1}) {
		t.Errorf("Range(4, 1) = %v", got)
	}
	if got := Range(3, 3); !slices.Equal(got, []int{3}) {
		t.Errorf("Range(3, 3) = %v", got)
	}
}
