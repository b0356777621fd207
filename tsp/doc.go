// Package tsp solves or approximates the symmetric Travelling Salesman
// Problem on a *matrix.Distance.
//
// Algorithms (select with Options.Algo, or call directly):
//
//	TSPMerge    greedy fragment merging ("original"), O(n² log n)
//	TSPBrute    permutation search with node 0 fixed, O(n!·n), capped by MaxBruteNodes
//	TSPExact    Held–Karp dynamic programming, O(n²·2ⁿ), capped by MaxExactNodes
//	TSPNearest  nearest-neighbour walk from node 0, O(n²)
//
// TSPMerge takes edges cheapest first and accepts one only while both
// endpoints have fewer than two edges and it does not close a fragment onto
// itself. The two path endpoints left at the end are joined to close the
// cycle.
//
// PathCost sums a caller-supplied node sequence ("check").
//
// Every solver returns a TSResult whose Tour has n+1 entries and repeats its
// first node at the end. The merge heuristic starts its tour at the first
// remaining path endpoint, so Tour[0] is not necessarily 0.
//
// Zero-weight convention: TSPMerge reads a zero distance between two distinct
// nodes as "no edge". An instance whose zeros leave a node unreachable fails
// with ErrInconsistent. The exact and nearest-neighbour solvers treat zero as
// an ordinary distance.
//
// All solvers are deterministic and single-threaded. No package-level state is
// mutated, so independent runs may proceed in parallel.
package tsp
