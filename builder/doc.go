// SPDX-License-Identifier: MIT
// Package builder generates random, complete, symmetric distance tables in
// the lower-triangular text format read by matrix.Parse.
//
// Row i holds i random weights (distances to nodes 0..i-1) followed by the
// zero diagonal:
//
//	0
//	412 0
//	17 988 0
//
// Determinism: a fixed seed (WithSeed) and weight function always yield the
// same table. Without a seed the generator draws from a time-seeded source.
//
// Weights are whole numbers in [1, 1000] by default, so no generated pair is
// ever read as a missing (zero) edge.
package builder
