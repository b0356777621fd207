package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wcjunkins/tspmerge/builder"
	"github.com/wcjunkins/tspmerge/matrix"
)

// seedDet fixes every random fixture in this package.
const seedDet = int64(42)

// fourNodes is the canonical 4-node instance:
// d(0,1)=10, d(0,2)=15, d(1,2)=35, d(0,3)=20, d(1,3)=25, d(2,3)=30.
func fourNodes(t testing.TB) *matrix.Distance {
	t.Helper()

	return mustDistance(t, [][]float64{
		{0},
		{10, 0},
		{15, 35, 0},
		{20, 25, 30, 0},
	})
}

// uniform returns an n-node instance where every distance equals w.
func uniform(t testing.TB, n int, w float64) *matrix.Distance {
	t.Helper()
	rows, err := builder.Generate(n, builder.WithSeed(seedDet), builder.WithWeightFn(builder.ConstantWeightFn(w)))
	require.NoError(t, err)

	return mustDistance(t, rows)
}

// randomInstance returns a seeded n-node instance with integer weights in
// [1, 1000].
func randomInstance(t testing.TB, n int, seed int64) *matrix.Distance {
	t.Helper()
	rows, err := builder.Generate(n, builder.WithSeed(seed))
	require.NoError(t, err)

	return mustDistance(t, rows)
}

func mustDistance(t testing.TB, rows [][]float64) *matrix.Distance {
	t.Helper()
	d, err := matrix.NewDistance(rows)
	require.NoError(t, err)

	return d
}

// requireCycle asserts that tour visits all n nodes once and returns home.
func requireCycle(t *testing.T, tour []int, n int) {
	t.Helper()
	require.Len(t, tour, n+1)
	require.Equal(t, tour[0], tour[n], "tour must return to its start")

	seen := make([]bool, n)
	for _, v := range tour[:n] {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "node %d visited twice", v)
		seen[v] = true
	}
}
