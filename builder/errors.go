// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context is attached with %w at the failure site (see builderErrorf).
//   • Generate never panics at runtime; validation panics are confined to
//     option and weight-function constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that fewer than two nodes were requested.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidWeight indicates that a weight function produced a negative or
// non-finite value.
var ErrInvalidWeight = errors.New("builder: invalid weight")

// builderErrorf wraps err as "<method>: <message>: <err>".
func builderErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
