// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - Generate and WriteTo.
//
// Determinism: pairs are drawn row by row, (1,0), (2,0), (2,1), ...

package builder

import (
	"bufio"
	"io"
	"math"
	"strconv"
)

const (
	methodGenerate = "Generate"
	methodWriteTo  = "WriteTo"
	minNodes       = 2
)

// Generate returns the lower triangle of a random complete n-node distance
// table: row i has i weights followed by a 0 diagonal.
//
// Errors: ErrTooFewVertices for n < 2; ErrInvalidWeight if the weight
// function yields a negative or non-finite value.
//
// Complexity: O(n²) time and memory.
func Generate(n int, opts ...Option) ([][]float64, error) {
	if n < minNodes {
		return nil, builderErrorf(methodGenerate, "n=%d < min=%d", ErrTooFewVertices, n, minNodes)
	}
	cfg := newBuilderConfig(opts...)

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, i+1) // row[i] stays 0: the diagonal
		for j := 0; j < i; j++ {
			w := cfg.weightFn(cfg.rng)
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, builderErrorf(methodGenerate, "row %d col %d: %v", ErrInvalidWeight, i, j, w)
			}
			row[j] = w
		}
		rows[i] = row
	}

	return rows, nil
}

// WriteTo writes rows in the text format understood by matrix.Parse: values
// separated by single spaces, one row per line.
func WriteTo(w io.Writer, rows [][]float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return builderErrorf(methodWriteTo, "write", err)
				}
			}
			buf = strconv.AppendFloat(buf[:0], v, 'f', -1, 64)
			if _, err := bw.Write(buf); err != nil {
				return builderErrorf(methodWriteTo, "write", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return builderErrorf(methodWriteTo, "write", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return builderErrorf(methodWriteTo, "flush", err)
	}

	return nil
}
