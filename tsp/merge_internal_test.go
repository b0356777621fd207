package tsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcjunkins/tspmerge/cluster"
	"github.com/wcjunkins/tspmerge/matrix"
)

func fourNodesInternal(t *testing.T) *matrix.Distance {
	t.Helper()
	d, err := matrix.NewDistance([][]float64{
		{0},
		{10, 0},
		{15, 35, 0},
		{20, 25, 30, 0},
	})
	require.NoError(t, err)

	return d
}

func TestTransitions_Symmetric(t *testing.T) {
	states := []cluster.State{cluster.Untouched, cluster.Leader, cluster.Inside}
	for _, a := range states {
		for _, b := range states {
			assert.Equal(t, transitions[a][b], transitions[b][a], "%v/%v", a, b)
		}
		assert.Equal(t, reject, transitions[cluster.Inside][a], "inside/%v", a)
	}
}

func TestOffer_RefusesSubCycle(t *testing.T) {
	b := newCycleBuilder(fourNodesInternal(t), nil)

	require.True(t, b.offer(Edge{From: 1, To: 0, Weight: 10}))
	require.True(t, b.offer(Edge{From: 2, To: 0, Weight: 15}))
	// 1 and 2 lead the same path; joining them would close a triangle.
	require.False(t, b.offer(Edge{From: 2, To: 1, Weight: 35}))
	// 0 is interior.
	require.False(t, b.offer(Edge{From: 3, To: 0, Weight: 20}))

	assert.Len(t, b.conns, 2)
	assert.Equal(t, 25.0, b.cost)
}

func TestOffer_JoinKeepsSmallerGroup(t *testing.T) {
	d, err := matrix.NewDistance([][]float64{
		{0},
		{1, 0},
		{9, 9, 0},
		{9, 9, 2, 0},
	})
	require.NoError(t, err)
	b := newCycleBuilder(d, nil)

	require.True(t, b.offer(Edge{From: 1, To: 0, Weight: 1}))
	require.True(t, b.offer(Edge{From: 3, To: 2, Weight: 2}))
	require.Equal(t, 1, b.nodes.Group(0))
	require.Equal(t, 2, b.nodes.Group(3))

	require.True(t, b.offer(Edge{From: 2, To: 1, Weight: 9}))
	for _, v := range []int{0, 1, 2, 3} {
		assert.Equal(t, 1, b.nodes.Group(v), "node %d", v)
	}
	assert.Equal(t, []int{0, 3}, b.nodes.Leaders())
}

func TestClose_Errors(t *testing.T) {
	t.Run("untouched node", func(t *testing.T) {
		b := newCycleBuilder(fourNodesInternal(t), nil)
		b.offer(Edge{From: 1, To: 0, Weight: 10})

		_, err := b.close()
		require.ErrorIs(t, err, ErrInconsistent)
	})

	t.Run("four leaders", func(t *testing.T) {
		b := newCycleBuilder(fourNodesInternal(t), nil)
		b.offer(Edge{From: 1, To: 0, Weight: 10})
		b.offer(Edge{From: 3, To: 2, Weight: 30})

		_, err := b.close()
		require.ErrorIs(t, err, ErrInconsistent)
		assert.Contains(t, err.Error(), "4 leader(s)")
	})
}

func TestConsume_StopsAtSpanningPath(t *testing.T) {
	d := fourNodesInternal(t)
	b := newCycleBuilder(d, nil)
	b.consume(EdgeIndex(d))

	assert.Len(t, b.conns, d.Len()-1)
	assert.Equal(t, 2, b.nodes.Count(cluster.Leader))
	assert.Equal(t, 0, b.nodes.Count(cluster.Untouched))
}

func TestReconstruct(t *testing.T) {
	conns := []Connection{
		{Left: 1, Right: 0},
		{Left: 2, Right: 0},
		{Left: 3, Right: 1},
		{Left: 2, Right: 3},
	}
	tour, err := reconstruct(conns, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1, 3, 2}, tour)
	for i, c := range conns {
		assert.True(t, c.Checked, "connection %d", i)
	}
}

func TestReconstruct_Errors(t *testing.T) {
	tests := []struct {
		name  string
		conns []Connection
		start int
		n     int
	}{
		{
			name:  "degree above two",
			conns: []Connection{{Left: 0, Right: 1}, {Left: 0, Right: 2}, {Left: 0, Right: 3}},
			n:     4,
		},
		{
			name:  "open path",
			conns: []Connection{{Left: 0, Right: 1}, {Left: 1, Right: 2}},
			n:     3,
		},
		{
			name:  "two sub-cycles",
			conns: []Connection{{Left: 0, Right: 1}, {Left: 1, Right: 0}, {Left: 2, Right: 3}, {Left: 3, Right: 2}},
			n:     4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reconstruct(tc.conns, tc.start, tc.n)
			require.ErrorIs(t, err, ErrInconsistent)
		})
	}
}
