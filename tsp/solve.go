package tsp

import (
	"fmt"

	"github.com/wcjunkins/tspmerge/matrix"
)

// Solve routes d to the solver named by opts.Algo, checks that the returned
// tour is a Hamiltonian cycle, and stabilizes its cost to 1e-9.
//
// Errors: ErrDimensionMismatch for a nil matrix, ErrUnsupportedAlgorithm for
// an unknown Algo, the solver's own errors, and ErrInconsistent if a solver
// returns a malformed tour.
func Solve(d *matrix.Distance, opts Options) (TSResult, error) {
	if d == nil {
		return TSResult{}, ErrDimensionMismatch
	}

	var (
		res TSResult
		err error
	)
	switch opts.Algo {
	case Merge:
		res, err = TSPMerge(d, opts)
	case Brute:
		res, err = TSPBrute(d, opts)
	case Exact:
		res, err = TSPExact(d, opts)
	case Nearest:
		res, err = TSPNearest(d, opts)
	default:
		return TSResult{}, fmt.Errorf("%v: %w", opts.Algo, ErrUnsupportedAlgorithm)
	}
	if err != nil {
		return TSResult{}, fmt.Errorf("%v: %w", opts.Algo, err)
	}

	if verr := ValidateTour(res.Tour, d.Len()); verr != nil {
		return TSResult{}, fmt.Errorf("%v returned tour %v: %w", opts.Algo, res.Tour, ErrInconsistent)
	}
	res.Cost = round1e9(res.Cost)

	return res, nil
}
