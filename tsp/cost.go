package tsp

import (
	"fmt"
	"math"
	"strconv"

	"github.com/wcjunkins/tspmerge/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 removes floating-point noise below 1e-9 from summed costs.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// FormatCost renders a cost without trailing zeros: 80, 12.5.
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

// PathCost sums d along consecutive pairs of path, exactly as given; it does
// not close the path or check that it is a tour. A single-node path costs 0.
// The returned steps list every hop in order.
//
// Errors: ErrDimensionMismatch (wrapping matrix.ErrOutOfRange) when path is
// empty or names a node outside d.
//
// Complexity: O(len(path)).
func PathCost(d *matrix.Distance, path []int) (float64, []Step, error) {
	if d == nil || len(path) == 0 {
		return 0, nil, ErrDimensionMismatch
	}
	var (
		sum   float64
		steps = make([]Step, 0, len(path)-1)
		w     float64
		err   error
	)
	if _, err = d.At(path[0], path[0]); err != nil {
		return 0, nil, fmt.Errorf("path[0]=%d: %w", path[0], joinDim(err))
	}
	for i := 1; i < len(path); i++ {
		w, err = d.At(path[i-1], path[i])
		if err != nil {
			return 0, nil, fmt.Errorf("path[%d]=%d: %w", i, path[i], joinDim(err))
		}
		sum += w
		steps = append(steps, Step{From: path[i-1], Weight: w, To: path[i]})
	}

	return round1e9(sum), steps, nil
}

// TourCost is PathCost without the steps.
func TourCost(d *matrix.Distance, tour []int) (float64, error) {
	c, _, err := PathCost(d, tour)

	return c, err
}

// joinDim tags a matrix lookup failure with ErrDimensionMismatch while keeping
// the original sentinel matchable.
func joinDim(err error) error {
	return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
}
