package tsp

import (
	"fmt"
	"math"

	"github.com/wcjunkins/tspmerge/matrix"
)

// TSPBrute returns a minimum-cost tour by trying every ordering of nodes
// 1..n-1 behind a fixed node 0, in lexicographic order. The first ordering
// reaching the minimum wins, so the tour is reproducible on ties.
//
// Errors: ErrDimensionMismatch for a nil matrix; ErrTooLarge when n exceeds
// opts.MaxBruteNodes (DefaultMaxBruteNodes when zero).
//
// Complexity: O(n!·n) time, O(n) memory.
func TSPBrute(d *matrix.Distance, opts Options) (TSResult, error) {
	if d == nil {
		return TSResult{}, ErrDimensionMismatch
	}
	var (
		n     = d.Len()
		limit = opts.MaxBruteNodes
	)
	if limit <= 0 {
		limit = DefaultMaxBruteNodes
	}
	if n > limit {
		return TSResult{}, fmt.Errorf("%d nodes, brute force limit is %d: %w", n, limit, ErrTooLarge)
	}

	var (
		perm = make([]int, n)
		best = make([]int, n)
		low  = math.Inf(1)
		c    float64
		i    int
	)
	for i = range perm {
		perm[i] = i
	}

	for {
		c = d.MustAt(perm[n-1], perm[0])
		for i = 0; i < n-1; i++ {
			c += d.MustAt(perm[i], perm[i+1])
		}
		if c < low {
			low = c
			copy(best, perm)
		}
		if !nextPermutation(perm[1:]) {
			break
		}
	}

	return TSResult{Tour: append(best, best[0]), Cost: low}, nil
}

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed. On false p is left sorted descending.
func nextPermutation(p []int) bool {
	// Longest non-increasing suffix starts after i.
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
