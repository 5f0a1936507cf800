package fifteen

import "math/rand"

// Tiles is the number of numbered tiles on the board.
const Tiles = BoardSize*BoardSize - 1

// Initializer supplies the starting layout: a permutation of 1..15 written
// onto the first 15 cells in row-major order, leaving the last cell empty.
type Initializer interface {
	InitialPermutation() []int
}

// Permutation is an Initializer that always returns itself.
type Permutation []int

// InitialPermutation returns p.
func (p Permutation) InitialPermutation() []int {
	return p
}

// DemoPermutation is a fixed, solvable start: the solved layout with the
// last three tiles rotated.
var DemoPermutation = Permutation{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 14, 15, 13}

// RandomInitializer draws a uniformly random solvable permutation.
// The permutation is drawn once and reused on later calls.
type RandomInitializer struct {
	rng  *rand.Rand
	perm []int
}

// NewRandomInitializer creates an initializer drawing from rng.
func NewRandomInitializer(rng *rand.Rand) *RandomInitializer {
	return &RandomInitializer{rng: rng}
}

// InitialPermutation returns an even permutation of 1..15.
func (r *RandomInitializer) InitialPermutation() []int {
	if r.perm == nil {
		r.perm = Shuffle(r.rng)
	}
	return r.perm
}

// Shuffle returns a uniformly random even permutation of 1..15.
// Odd draws are rejected; half of all permutations are even, so this
// takes two draws on average.
func Shuffle(rng *rand.Rand) []int {
	perm := make([]int, Tiles)
	for {
		for i := range perm {
			perm[i] = i + 1
		}
		rng.Shuffle(len(perm), func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})
		if IsEven(perm) {
			return perm
		}
	}
}
