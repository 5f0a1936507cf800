package fifteen

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/board"
	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

var solved = Permutation{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

// rowsOf reads the board into rows; 0 is the gap.
func rowsOf(g *Game) [BoardSize][BoardSize]int {
	var rows [BoardSize][BoardSize]int
	for _, c := range g.board.AllCells() {
		rows[c.I-1][c.J-1] = g.board.Get(c).Value
	}
	return rows
}

func TestInitialize(t *testing.T) {
	g := New(solved)
	g.Initialize()

	expected := [BoardSize][BoardSize]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 0},
	}
	if got := rowsOf(g); got != expected {
		t.Errorf("Initialize(): got\n%v\nwant\n%v", got, expected)
	}

	gap, ok := g.board.Find(board.IsEmpty[int])
	if !ok || gap != (board.Cell{I: 4, J: 4}) {
		t.Errorf("gap = %v, %v; want (4, 4)", gap, ok)
	}
}

func TestInitializeShortPermutation(t *testing.T) {
	g := New(Permutation{3, 1, 2})
	g.Initialize()

	if g.board.Filter(board.IsEmpty[int]).Size() != 13 {
		t.Errorf("short permutation should leave 13 empty cells, got %d",
			g.board.Filter(board.IsEmpty[int]).Size())
	}
	if s, _ := g.Get(1, 1); s != board.Filled(3) {
		t.Errorf("Get(1, 1) = %+v, want 3", s)
	}
	if g.HasWon() {
		t.Error("a board with missing tiles is not solved")
	}
}

func TestInitializeLongPermutation(t *testing.T) {
	long := append(Permutation{}, solved...)
	long = append(long, 16)

	g := New(long)
	g.Initialize()

	if s, _ := g.Get(4, 4); s.Filled {
		t.Errorf("last cell = %d, should stay empty", s.Value)
	}
	if !g.HasWon() {
		t.Error("surplus values should be ignored")
	}
}

func TestProcessMove(t *testing.T) {
	tests := []struct {
		name     string
		dir      board.Direction
		expected [BoardSize][BoardSize]int
	}{
		{
			name: "left with gap on right edge is a no-op",
			dir:  board.Left,
			expected: [BoardSize][BoardSize]int{
				{1, 2, 3, 4},
				{5, 6, 7, 8},
				{9, 10, 11, 12},
				{13, 14, 15, 0},
			},
		},
		{
			name: "up with gap on bottom edge is a no-op",
			dir:  board.Up,
			expected: [BoardSize][BoardSize]int{
				{1, 2, 3, 4},
				{5, 6, 7, 8},
				{9, 10, 11, 12},
				{13, 14, 15, 0},
			},
		},
		{
			name: "right pulls the tile left of the gap",
			dir:  board.Right,
			expected: [BoardSize][BoardSize]int{
				{1, 2, 3, 4},
				{5, 6, 7, 8},
				{9, 10, 11, 12},
				{13, 14, 0, 15},
			},
		},
		{
			name: "down pulls the tile above the gap",
			dir:  board.Down,
			expected: [BoardSize][BoardSize]int{
				{1, 2, 3, 4},
				{5, 6, 7, 8},
				{9, 10, 11, 0},
				{13, 14, 15, 12},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(solved)
			g.Initialize()
			g.ProcessMove(tt.dir)

			if got := rowsOf(g); got != tt.expected {
				t.Errorf("ProcessMove(%v): got\n%v\nwant\n%v", tt.dir, got, tt.expected)
			}
		})
	}
}

func TestMoveRoundTrip(t *testing.T) {
	g := New(solved)
	g.Initialize()

	g.ProcessMove(board.Right)
	g.ProcessMove(board.Down)
	if g.HasWon() {
		t.Error("moved board should not be solved")
	}

	g.ProcessMove(board.Up)
	g.ProcessMove(board.Left)
	if !g.HasWon() {
		t.Errorf("undoing the moves should solve the board:\n%v", rowsOf(g))
	}
}

func TestMoveValuesReportsChange(t *testing.T) {
	g := New(solved)
	g.Initialize()

	if MoveValues(g.board, board.Left) {
		t.Error("MoveValues(Left) should report no change with the gap on the right edge")
	}
	if !MoveValues(g.board, board.Right) {
		t.Error("MoveValues(Right) should report a change")
	}
}

func TestHasWon(t *testing.T) {
	g := New(solved)
	g.Initialize()
	if !g.HasWon() {
		t.Error("solved layout should be a win")
	}

	transposed := append(Permutation{}, solved...)
	transposed[13], transposed[14] = transposed[14], transposed[13]
	g = New(transposed)
	g.Initialize()
	if g.HasWon() {
		t.Error("two swapped tiles should not be a win")
	}

	// Gap in the middle still wins if the tiles read 1..15
	g = New(solved)
	g.Initialize()
	g.ProcessMove(board.Right)
	if !g.HasWon() {
		t.Error("gap position does not matter when the order is 1..15")
	}
}

func TestCanMoveAlwaysTrue(t *testing.T) {
	g := New(DemoPermutation)
	g.Initialize()

	for _, dir := range board.Directions {
		g.ProcessMove(dir)
		if !g.CanMove() {
			t.Errorf("CanMove() false after %v", dir)
		}
	}
}

func TestGetInvalidCoordinate(t *testing.T) {
	g := New(solved)
	g.Initialize()

	if _, err := g.Get(0, 4); !errors.Is(err, board.ErrInvalidCoordinate) {
		t.Errorf("Get(0, 4) error = %v, want ErrInvalidCoordinate", err)
	}
	if s, err := g.Get(2, 3); err != nil || s != board.Filled(7) {
		t.Errorf("Get(2, 3) = %+v, %v; want 7, nil", s, err)
	}
}

func TestInversions(t *testing.T) {
	tests := []struct {
		perm     []int
		expected int
	}{
		{[]int{}, 0},
		{[]int{1, 2, 3}, 0},
		{[]int{2, 1, 3}, 1},
		{[]int{3, 2, 1}, 3},
		{[]int{2, 3, 1}, 2},
	}

	for _, tc := range tests {
		if got := Inversions(tc.perm); got != tc.expected {
			t.Errorf("Inversions(%v) = %d, want %d", tc.perm, got, tc.expected)
		}
	}

	if !IsEven(DemoPermutation) {
		t.Error("DemoPermutation must be even")
	}
	if IsEven([]int{2, 1, 3}) {
		t.Error("a single swap is odd")
	}
}

func TestShuffleAlwaysEven(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	for n := 0; n < 10000; n++ {
		perm := Shuffle(rng)
		if !IsEven(perm) {
			t.Fatalf("draw %d: %v is odd", n, perm)
		}

		sorted := slices.Clone(perm)
		slices.Sort(sorted)
		if !slices.Equal(sorted, want) {
			t.Fatalf("draw %d: %v is not a permutation of 1..15", n, perm)
		}
	}
}

func TestRandomInitializerCachesPermutation(t *testing.T) {
	r := NewRandomInitializer(rand.New(rand.NewSource(5)))

	first := r.InitialPermutation()
	second := r.InitialPermutation()
	if !slices.Equal(first, second) {
		t.Errorf("InitialPermutation() changed between calls: %v vs %v", first, second)
	}
}

func TestRegistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	g, err := registry.Create(GameID, core.RuntimeConfig{Seed: 9})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	g.Initialize()

	var values []int
	for i := 1; i <= BoardSize; i++ {
		for j := 1; j <= BoardSize; j++ {
			s, err := g.Get(i, j)
			if err != nil {
				t.Fatal(err)
			}
			if s.Filled {
				values = append(values, s.Value)
			}
		}
	}

	if len(values) != Tiles || !IsEven(values) {
		t.Errorf("registered game started with %v", values)
	}
	if s, _ := g.Get(4, 4); s.Filled {
		t.Errorf("gap should start in the last cell, found %d", s.Value)
	}
}
