package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcjunkins/tspmerge/tsp"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want tsp.Algorithm
	}{
		{"original", tsp.Merge},
		{"merge", tsp.Merge},
		{"Brute", tsp.Brute},
		{" exact ", tsp.Exact},
		{"NEAREST", tsp.Nearest},
	}
	for _, tc := range tests {
		got, err := tsp.ParseAlgorithm(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := tsp.ParseAlgorithm("christofides")
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}

func TestAlgorithm_String(t *testing.T) {
	for _, a := range []tsp.Algorithm{tsp.Merge, tsp.Brute, tsp.Exact, tsp.Nearest} {
		back, err := tsp.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}
	assert.Equal(t, "Algorithm(9)", tsp.Algorithm(9).String())
}

func TestSolve_Dispatch(t *testing.T) {
	d := fourNodes(t)
	for _, algo := range []tsp.Algorithm{tsp.Merge, tsp.Brute, tsp.Exact, tsp.Nearest} {
		opts := tsp.DefaultOptions()
		opts.Algo = algo

		res, err := tsp.Solve(d, opts)
		require.NoError(t, err, algo.String())
		requireCycle(t, res.Tour, 4)
		assert.Equal(t, 80.0, res.Cost, algo.String())
	}
}

func TestSolve_Errors(t *testing.T) {
	d := randomInstance(t, 6, seedDet)

	opts := tsp.DefaultOptions()
	opts.Algo = tsp.Algorithm(42)
	_, err := tsp.Solve(d, opts)
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)

	opts = tsp.DefaultOptions()
	opts.Algo = tsp.Brute
	opts.MaxBruteNodes = 3
	_, err = tsp.Solve(d, opts)
	require.ErrorIs(t, err, tsp.ErrTooLarge)
	assert.Contains(t, err.Error(), "brute")
}

func TestValidateTour(t *testing.T) {
	require.NoError(t, tsp.ValidateTour([]int{2, 0, 1, 3, 2}, 4))

	bad := [][]int{
		{},
		{0, 1, 2, 3},
		{0, 1, 2, 3, 1},
		{0, 1, 1, 3, 0},
		{0, 1, 4, 3, 0},
		{0, -1, 2, 3, 0},
	}
	for _, tour := range bad {
		assert.ErrorIs(t, tsp.ValidateTour(tour, 4), tsp.ErrDimensionMismatch, "%v", tour)
	}
}

func TestEdgeIndex(t *testing.T) {
	edges := tsp.EdgeIndex(fourNodes(t))
	assert.Equal(t, []tsp.Edge{
		{From: 1, To: 0, Weight: 10},
		{From: 2, To: 0, Weight: 15},
		{From: 3, To: 0, Weight: 20},
		{From: 3, To: 1, Weight: 25},
		{From: 3, To: 2, Weight: 30},
		{From: 2, To: 1, Weight: 35},
	}, edges)
}

func TestEdgeIndex_SkipsZeroAndKeepsDiscoveryOrder(t *testing.T) {
	d := mustDistance(t, [][]float64{
		{0},
		{3, 0},
		{0, 3, 0},
		{1, 3, 3, 0},
	})
	assert.Equal(t, []tsp.Edge{
		{From: 3, To: 0, Weight: 1},
		{From: 1, To: 0, Weight: 3},
		{From: 2, To: 1, Weight: 3},
		{From: 3, To: 1, Weight: 3},
		{From: 3, To: 2, Weight: 3},
	}, tsp.EdgeIndex(d))
}
