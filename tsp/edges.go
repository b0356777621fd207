package tsp

import (
	"sort"

	"github.com/wcjunkins/tspmerge/matrix"
)

// EdgeIndex lists every node pair of d with a non-zero distance, cheapest
// first.
//
// Pairs are discovered row-major over the lower triangle: (1,0), (2,0),
// (2,1), (3,0), ... and the sort is stable, so equal weights keep that
// discovery order. This tie-break is deterministic but carries no meaning of
// its own.
//
// A zero distance between distinct nodes is read as "no edge" and skipped.
//
// Complexity: O(E log E) time, O(E) memory, E = n(n-1)/2.
func EdgeIndex(d *matrix.Distance) []Edge {
	var (
		n     = d.Len()
		edges = make([]Edge, 0, n*(n-1)/2)
		i, j  int
		w     float64
	)
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			w = d.MustAt(i, j)
			if w == 0 {
				continue
			}
			edges = append(edges, Edge{From: i, To: j, Weight: w})
		}
	}

	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Weight < edges[b].Weight
	})

	return edges
}
