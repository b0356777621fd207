package tsp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDimensionMismatch is returned for a nil matrix, a tour of the wrong
	// shape, or a path that names a node outside the matrix.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrTooLarge is returned when an exhaustive solver is asked to handle more
	// nodes than its configured ceiling.
	ErrTooLarge = errors.New("tsp: instance too large for exhaustive search")

	// ErrInconsistent signals a broken internal invariant of the merge
	// heuristic: an unexpected number of path endpoints, an unreachable node,
	// or a missing connection while retracing the cycle. On a complete matrix
	// without zero off-diagonal entries this never happens.
	ErrInconsistent = errors.New("tsp: internal consistency error")
)

// Algorithm selects a solver in Solve.
type Algorithm int

const (
	// Merge is the greedy fragment-merging heuristic (default).
	Merge Algorithm = iota
	// Brute is exhaustive permutation search.
	Brute
	// Exact is Held–Karp dynamic programming.
	Exact
	// Nearest is the nearest-neighbour walk.
	Nearest
)

// String returns the CLI name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Merge:
		return "original"
	case Brute:
		return "brute"
	case Exact:
		return "exact"
	case Nearest:
		return "nearest"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm. "merge" is
// accepted as an alias of "original".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "original", "merge":
		return Merge, nil
	case "brute":
		return Brute, nil
	case "exact":
		return Exact, nil
	case "nearest":
		return Nearest, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedAlgorithm)
	}
}

// Default ceilings for the exhaustive solvers.
const (
	DefaultMaxBruteNodes = 12
	DefaultMaxExactNodes = 16
)

// Options configures Solve and the individual solvers.
type Options struct {
	// Algo picks the solver used by Solve.
	Algo Algorithm

	// MaxBruteNodes caps TSPBrute; 0 means DefaultMaxBruteNodes.
	MaxBruteNodes int

	// MaxExactNodes caps TSPExact; 0 means DefaultMaxExactNodes.
	MaxExactNodes int

	// OnAccept, if set, is called for every edge a constructive solver
	// commits to, in commit order (TSPMerge, TSPNearest).
	OnAccept func(Step)
}

// DefaultOptions returns Options for the merge heuristic with default ceilings.
func DefaultOptions() Options {
	return Options{
		Algo:          Merge,
		MaxBruteNodes: DefaultMaxBruteNodes,
		MaxExactNodes: DefaultMaxExactNodes,
	}
}

// Edge is a weighted node pair taken from the distance matrix. Edges are
// discovered row by row, so From is the row (larger id) and To the column.
type Edge struct {
	From, To int
	Weight   float64
}

// Connection is an accepted edge of the merge heuristic. Checked is set once
// the edge has been walked while retracing the cycle.
type Connection struct {
	Left, Right int
	Checked     bool
}

// Step is one committed edge in a solver's trace.
type Step struct {
	From   int     `yaml:"from"`
	Weight float64 `yaml:"weight"`
	To     int     `yaml:"to"`
}

// String renders the step as "from---weight-->to".
func (s Step) String() string {
	return fmt.Sprintf("%d---%s-->%d", s.From, FormatCost(s.Weight), s.To)
}

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the closed visiting order; len(Tour) == n+1, Tour[0] == Tour[n].
	Tour []int

	// Cost is the total distance of the cycle.
	Cost float64

	// Trace lists committed edges in commit order. Exhaustive solvers leave
	// it empty.
	Trace []Step
}
