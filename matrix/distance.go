// SPDX-License-Identifier: MIT
// Package: matrix
//
// distance.go - lower-triangular symmetric distance table.
//
// Contract:
//   - n ≥ 2 nodes.
//   - At(i,i) == 0, At(i,j) == At(j,i), every value finite and ≥ 0.
//   - Immutable after construction; safe for concurrent readers.
//
// Complexity:
//   - Build: O(n²) time, n(n+1)/2 floats of memory.
//   - At/MustAt: O(1).

package matrix

import "math"

// MinNodes is the smallest table NewDistance accepts.
const MinNodes = 2

// Distance is an immutable symmetric distance table stored as a packed lower
// triangle (row-major, diagonal included).
type Distance struct {
	n    int
	data []float64 // len == n*(n+1)/2; entry (i,j), j ≤ i, lives at i*(i+1)/2 + j
}

// offset returns the packed index of (i, j) assuming 0 ≤ j ≤ i < n.
func offset(i, j int) int {
	return i*(i+1)/2 + j
}

// NewDistance validates rows and packs their lower triangle.
//
// Row i must hold at least i+1 values: distances to nodes 0..i, the last one
// being the zero diagonal. Values past the diagonal are optional; when present
// they must not run past column n-1 and must equal the mirrored lower-triangle
// entry rows[j][i]. This lets callers hand over either a triangular file or a
// full square matrix.
//
// Errors: ErrMalformedInput (wrapped with row/column context).
//
// Complexity: O(n²).
func NewDistance(rows [][]float64) (*Distance, error) {
	var n = len(rows)
	if n < MinNodes {
		return nil, malformedf("%d row(s), need at least %d", n, MinNodes)
	}

	var (
		i, j int
		v    float64
		row  []float64
	)

	// Stage 1: shape.
	for i, row = range rows {
		if len(row) < i+1 {
			return nil, malformedf("row %d: %d value(s), need at least %d", i, len(row), i+1)
		}
		if len(row) > n {
			return nil, malformedf("row %d: %d value(s), table has only %d columns", i, len(row), n)
		}
	}

	// Stage 2: values in the lower triangle, packed as we go.
	d := &Distance{n: n, data: make([]float64, n*(n+1)/2)}
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, malformedf("row %d col %d: non-finite value %v", i, j, v)
			}
			if v < 0 {
				return nil, malformedf("row %d col %d: negative distance %v", i, j, v)
			}
			if j == i && v != 0 {
				return nil, malformedf("row %d: diagonal is %v, want 0", i, v)
			}
			d.data[offset(i, j)] = v
		}
	}

	// Stage 3: optional upper-triangle entries must mirror the lower triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < len(rows[i]); j++ {
			if rows[i][j] != d.data[offset(j, i)] {
				return nil, malformedf("row %d col %d: %v does not mirror %v", i, j, rows[i][j], d.data[offset(j, i)])
			}
		}
	}

	return d, nil
}

// Len returns the number of nodes.
func (d *Distance) Len() int {
	return d.n
}

// At returns the distance between nodes i and j.
//
// Errors: ErrOutOfRange if either index is outside [0, n).
func (d *Distance) At(i, j int) (float64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, ErrOutOfRange
	}

	return d.MustAt(i, j), nil
}

// MustAt is the unchecked form of At for hot loops whose indices are already
// known to be in range. An out-of-range index panics like slice indexing.
func (d *Distance) MustAt(i, j int) float64 {
	if i < j {
		i, j = j, i
	}

	return d.data[offset(i, j)]
}

// Lower returns a fresh copy of the lower triangle, row i holding i+1 values.
func (d *Distance) Lower() [][]float64 {
	out := make([][]float64, d.n)
	for i := range out {
		out[i] = append([]float64(nil), d.data[offset(i, 0):offset(i, i)+1]...)
	}

	return out
}
