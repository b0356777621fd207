// SPDX-License-Identifier: MIT
// Package: matrix
//
// parse.go - text reader for distance tables.
//
// Format: one row per line, whitespace-separated numbers (integers or reals).
// Trailing blank lines are ignored; a blank line in the middle of the table is
// an empty row and therefore malformed. Lines are read without a length cap,
// so very wide rows (tens of thousands of values) are fine.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a distance table from r and validates it with NewDistance.
//
// Errors:
//   - ErrMalformedInput for non-numeric tokens (with line/field position) and
//     for every shape/value violation reported by NewDistance.
//   - Any read error from r, wrapped with the line number.
//
// Complexity: O(total tokens).
func Parse(r io.Reader) (*Distance, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}

	return NewDistance(rows)
}

// ReadRows tokenizes r into raw rows without any shape validation.
func ReadRows(r io.Reader) ([][]float64, error) {
	var (
		br   = bufio.NewReader(r)
		rows [][]float64
		line string
		err  error
		no   int
	)
	for {
		line, err = br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("matrix: read line %d: %w", no+1, err)
		}
		if len(line) > 0 {
			no++
			row, perr := parseRow(line, no)
			if perr != nil {
				return nil, perr
			}
			rows = append(rows, row)
		}
		if err != nil { // io.EOF
			break
		}
	}

	// Drop trailing blank lines.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	return rows, nil
}

// parseRow converts one text line into values; no is the 1-based line number.
func parseRow(line string, no int) ([]float64, error) {
	fields := strings.Fields(line)
	row := make([]float64, 0, len(fields))
	for k, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, malformedf("line %d field %d: %q is not a number", no, k+1, f)
		}
		row = append(row, v)
	}

	return row, nil
}
