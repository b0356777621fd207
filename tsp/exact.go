package tsp

import (
	"fmt"
	"math"

	"github.com/wcjunkins/tspmerge/matrix"
)

// TSPExact solves the instance exactly with Held–Karp dynamic programming.
//
// dp[mask][j] is the cheapest path that starts at 0, visits exactly the nodes
// in mask (bit 0 always set) and ends at j. The tour is closed by the
// cheapest return j→0 and rebuilt from the parent table. Among equal-cost
// candidates the lowest predecessor / last node wins.
//
// It returns a TSResult whose Tour starts and ends at 0.
//
// Errors: ErrDimensionMismatch for a nil matrix; ErrTooLarge when n exceeds
// opts.MaxExactNodes (DefaultMaxExactNodes when zero).
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func TSPExact(d *matrix.Distance, opts Options) (TSResult, error) {
	if d == nil {
		return TSResult{}, ErrDimensionMismatch
	}
	var (
		n     = d.Len()
		limit = opts.MaxExactNodes
	)
	if limit <= 0 {
		limit = DefaultMaxExactNodes
	}
	if n > limit {
		return TSResult{}, fmt.Errorf("%d nodes, Held–Karp limit is %d: %w", n, limit, ErrTooLarge)
	}

	// Maximum subset mask: all n bits set.
	allMask := (1 << n) - 1

	// --- 1. Allocate DP and parent tables ---
	dp := make([][]float64, 1<<n)
	parent := make([][]int, 1<<n)
	for mask := 0; mask <= allMask; mask++ {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j := 0; j < n; j++ {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	// Base case: only node 0 visited, standing at 0.
	const startMask = 1
	dp[startMask][0] = 0

	// --- 2. Fill DP for all masks that include node 0 ---
	for mask := startMask; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j := 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prevMask := mask ^ (1 << j)
			for k := 0; k < n; k++ {
				if prevMask&(1<<k) == 0 || math.IsInf(dp[prevMask][k], 1) {
					continue
				}
				cand := dp[prevMask][k] + d.MustAt(k, j)
				if cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// --- 3. Close the tour by returning to 0 ---
	bestCost := math.Inf(1)
	last := -1
	for j := 1; j < n; j++ {
		total := dp[allMask][j] + d.MustAt(j, 0)
		if total < bestCost {
			bestCost = total
			last = j
		}
	}

	// --- 4. Reconstruct tour from parent table ---
	tour := make([]int, n+1)
	mask := allMask
	j := last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}
	tour[0], tour[n] = 0, 0

	return TSResult{Tour: tour, Cost: bestCost}, nil
}
