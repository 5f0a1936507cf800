package fifteen

// Inversions counts the pairs (a, b) where a appears before b in perm
// and a > b.
func Inversions(perm []int) int {
	count := 0
	for i := range perm {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				count++
			}
		}
	}
	return count
}

// IsEven reports whether perm is an even permutation. With the gap in the
// last cell, exactly the even permutations of 1..15 are solvable.
func IsEven(perm []int) bool {
	return Inversions(perm)%2 == 0
}
