// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors.
//
// Every message is prefixed with "matrix: ". Context (row, column, value) is
// attached by wrapping with %w at the detection site; callers branch with
// errors.Is only.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is returned when the rows handed to NewDistance (or read
	// by Parse) do not describe a valid symmetric distance table: fewer than two
	// rows, a row shorter than its index+1, a non-zero diagonal, a negative or
	// non-finite value, a non-numeric token, or a mirrored entry that disagrees
	// with the lower triangle.
	ErrMalformedInput = errors.New("matrix: malformed input")

	// ErrOutOfRange indicates a node index outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// malformedf wraps ErrMalformedInput with a formatted location/context.
func malformedf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrMalformedInput)
}
