// SPDX-License-Identifier: MIT
// Package: builder
//
// weight_fn.go - edge-weight distributions.

package builder

import (
	"fmt"
	"math/rand"
)

// Default integer weight range, matching the classic generator script.
const (
	DefaultMinWeight = 1
	DefaultMaxWeight = 1000
)

// WeightFn produces one edge weight from the given RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// UniformIntWeightFn returns a WeightFn sampling whole numbers uniformly in
// [min, max] inclusive. Panics if min < 0 or max < min.
// Complexity: O(1).
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) float64 {
		return float64(min + rng.Intn(span))
	}
}

// UniformWeightFn returns a WeightFn sampling reals uniformly in [min, max).
// Panics if min < 0 or max < min.
// Complexity: O(1).
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// ConstantWeightFn returns a WeightFn that always yields value. Useful for
// all-ties fixtures. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// DefaultWeightFn samples whole numbers in [DefaultMinWeight, DefaultMaxWeight].
var DefaultWeightFn = UniformIntWeightFn(DefaultMinWeight, DefaultMaxWeight)
