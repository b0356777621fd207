package tsp

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0] == tour[n],
//	each node v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// Unlike fixed-start solvers, the start node is free.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}
