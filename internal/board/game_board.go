package board

import "github.com/zyedidia/generic/mapset"

// Slot is the optional content of a cell. The zero Slot is an empty cell.
type Slot[T any] struct {
	Value  T
	Filled bool
}

// Filled returns a slot holding v.
func Filled[T any](v T) Slot[T] {
	return Slot[T]{Value: v, Filled: true}
}

// Empty returns an empty slot.
func Empty[T any]() Slot[T] {
	return Slot[T]{}
}

// Holding returns a predicate matching slots that hold exactly v.
func Holding[T comparable](v T) func(Slot[T]) bool {
	return func(s Slot[T]) bool {
		return s.Filled && s.Value == v
	}
}

// IsEmpty is a predicate matching empty slots.
func IsEmpty[T any](s Slot[T]) bool {
	return !s.Filled
}

// GameBoard is a SquareBoard with one mutable value slot per cell.
// The set of cells never changes after construction; only slot contents do.
type GameBoard[T any] struct {
	*SquareBoard
	slots map[Cell]Slot[T]
}

// NewGameBoard creates a width x width board with every cell empty.
func NewGameBoard[T any](width int) *GameBoard[T] {
	sq := NewSquareBoard(width)
	slots := make(map[Cell]Slot[T], width*width)
	for _, c := range sq.AllCells() {
		slots[c] = Slot[T]{}
	}
	return &GameBoard[T]{SquareBoard: sq, slots: slots}
}

// Get returns the slot of cell c.
func (b *GameBoard[T]) Get(c Cell) Slot[T] {
	return b.slots[c]
}

// Set replaces the slot of cell c. Cells that are not on the board are ignored.
func (b *GameBoard[T]) Set(c Cell, s Slot[T]) {
	if _, ok := b.slots[c]; !ok {
		return
	}
	b.slots[c] = s
}

// Put stores v in cell c.
func (b *GameBoard[T]) Put(c Cell, v T) {
	b.Set(c, Filled(v))
}

// Clear empties cell c.
func (b *GameBoard[T]) Clear(c Cell) {
	b.Set(c, Slot[T]{})
}

// All reports whether pred holds for every cell, empty cells included.
func (b *GameBoard[T]) All(pred func(Slot[T]) bool) bool {
	for _, s := range b.slots {
		if !pred(s) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one cell, empty cells included.
func (b *GameBoard[T]) Any(pred func(Slot[T]) bool) bool {
	for _, s := range b.slots {
		if pred(s) {
			return true
		}
	}
	return false
}

// Find returns the first cell in AllCells order whose slot satisfies pred.
func (b *GameBoard[T]) Find(pred func(Slot[T]) bool) (Cell, bool) {
	for _, c := range b.AllCells() {
		if pred(b.slots[c]) {
			return c, true
		}
	}
	return Cell{}, false
}

// Filter returns the set of cells whose slot satisfies pred.
func (b *GameBoard[T]) Filter(pred func(Slot[T]) bool) mapset.Set[Cell] {
	matches := mapset.New[Cell]()
	for c, s := range b.slots {
		if pred(s) {
			matches.Put(c)
		}
	}
	return matches
}

// Values returns the slots of all cells in AllCells order.
func (b *GameBoard[T]) Values() []Slot[T] {
	cells := b.AllCells()
	values := make([]Slot[T], len(cells))
	for i, c := range cells {
		values[i] = b.slots[c]
	}
	return values
}

// Line returns the slots of the given cells, in order.
func (b *GameBoard[T]) Line(cells []Cell) []Slot[T] {
	line := make([]Slot[T], len(cells))
	for i, c := range cells {
		line[i] = b.slots[c]
	}
	return line
}
