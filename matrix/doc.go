// Package matrix holds the immutable, symmetric distance table that every
// solver in this module reads its edge weights from.
//
// A Distance is built from the lower triangle of an n×n matrix (diagonal
// included). Lookups are symmetric: At(i, j) == At(j, i) and At(i, i) == 0.
// Storage is a single flat slice of n(n+1)/2 values, so a 25 000-node graph
// costs roughly 2.5 GB instead of 5 GB for a dense square layout.
//
// Input format understood by Parse:
//
//	0
//	10 0
//	15 35 0
//	20 25 30 0
//
// Row i carries the distances from node i to nodes 0..i. Rows may be longer
// (a full square matrix is accepted) as long as the extra entries mirror the
// lower triangle.
//
// All validation failures wrap ErrMalformedInput; match with errors.Is.
package matrix
