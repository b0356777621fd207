package tsp

import (
	"math"

	"github.com/wcjunkins/tspmerge/matrix"
)

// TSPNearest walks from node 0, always moving to the closest unvisited node
// (the lowest id wins ties), then returns to 0. Every hop is reported to
// opts.OnAccept and recorded in the trace.
//
// Errors: ErrDimensionMismatch for a nil matrix.
//
// Complexity: O(n²) time, O(n) memory.
func TSPNearest(d *matrix.Distance, opts Options) (TSResult, error) {
	if d == nil {
		return TSResult{}, ErrDimensionMismatch
	}
	var (
		n       = d.Len()
		visited = make([]bool, n)
		tour    = make([]int, 0, n+1)
		trace   = make([]Step, 0, n)
		cost    float64
		cur     int
	)

	hop := func(to int) {
		step := Step{From: cur, Weight: d.MustAt(cur, to), To: to}
		trace = append(trace, step)
		cost += step.Weight
		tour = append(tour, cur)
		if opts.OnAccept != nil {
			opts.OnAccept(step)
		}
		cur = to
	}

	visited[0] = true
	for k := 1; k < n; k++ {
		var (
			next = -1
			low  = math.Inf(1)
		)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if w := d.MustAt(cur, j); w < low {
				low, next = w, j
			}
		}
		visited[next] = true
		hop(next)
	}
	hop(0)

	return TSResult{Tour: append(tour, 0), Cost: cost, Trace: trace}, nil
}
