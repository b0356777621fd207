package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcjunkins/tspmerge/tsp"
)

func TestTSPBrute_FourNodes(t *testing.T) {
	res, err := tsp.TSPBrute(fourNodes(t), tsp.DefaultOptions())
	require.NoError(t, err)
	// 0-1-3-2 and its mirror 0-2-3-1 both cost 80; the first ordering wins.
	assert.Equal(t, []int{0, 1, 3, 2, 0}, res.Tour)
	assert.Equal(t, 80.0, res.Cost)
	assert.Empty(t, res.Trace)
}

func TestTSPBrute_TooLarge(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.MaxBruteNodes = 4

	_, err := tsp.TSPBrute(randomInstance(t, 5, seedDet), opts)
	require.ErrorIs(t, err, tsp.ErrTooLarge)
}

func TestTSPExact_MatchesBrute(t *testing.T) {
	for _, n := range []int{2, 3, 4, 6, 8} {
		for seed := int64(0); seed < 4; seed++ {
			d := randomInstance(t, n, seed)

			hk, err := tsp.TSPExact(d, tsp.DefaultOptions())
			require.NoError(t, err)
			bf, err := tsp.TSPBrute(d, tsp.DefaultOptions())
			require.NoError(t, err)

			requireCycle(t, hk.Tour, n)
			assert.Equal(t, 0, hk.Tour[0])
			require.InDelta(t, bf.Cost, hk.Cost, 1e-9, "n=%d seed=%d", n, seed)

			cost, err := tsp.TourCost(d, hk.Tour)
			require.NoError(t, err)
			require.InDelta(t, hk.Cost, cost, 1e-9)
		}
	}
}

func TestTSPExact_TooLarge(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.MaxExactNodes = 5

	_, err := tsp.TSPExact(randomInstance(t, 6, seedDet), opts)
	require.ErrorIs(t, err, tsp.ErrTooLarge)
}

func TestTSPNearest_FourNodes(t *testing.T) {
	var hops int
	opts := tsp.DefaultOptions()
	opts.OnAccept = func(tsp.Step) { hops++ }

	res, err := tsp.TSPNearest(fourNodes(t), opts)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 0}, res.Tour)
	assert.Equal(t, 80.0, res.Cost)
	assert.Len(t, res.Trace, 4)
	assert.Equal(t, 4, hops)
}

func TestTSPNearest_RandomInstances(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		d := randomInstance(t, 30, seed)

		res, err := tsp.TSPNearest(d, tsp.DefaultOptions())
		require.NoError(t, err)
		requireCycle(t, res.Tour, 30)
		assert.Equal(t, 0, res.Tour[0])

		cost, err := tsp.TourCost(d, res.Tour)
		require.NoError(t, err)
		require.InDelta(t, cost, res.Cost, 1e-9)
	}
}

func TestSolvers_Nil(t *testing.T) {
	solvers := map[string]func() error{
		"brute":   func() error { _, err := tsp.TSPBrute(nil, tsp.Options{}); return err },
		"exact":   func() error { _, err := tsp.TSPExact(nil, tsp.Options{}); return err },
		"nearest": func() error { _, err := tsp.TSPNearest(nil, tsp.Options{}); return err },
		"solve":   func() error { _, err := tsp.Solve(nil, tsp.Options{}); return err },
	}
	for name, run := range solvers {
		assert.ErrorIs(t, run(), tsp.ErrDimensionMismatch, name)
	}
}
