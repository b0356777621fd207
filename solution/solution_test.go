package solution_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcjunkins/tspmerge/solution"
	"github.com/wcjunkins/tspmerge/tsp"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		algo  tsp.Algorithm
		total float64
		want  string
	}{
		{tsp.Merge, 80, "S80_wcjunkins.sol"},
		{tsp.Brute, 80, "S[BRUTE]80_wcjunkins.sol"},
		{tsp.Nearest, 12.5, "S[NEAREST]12.5_wcjunkins.sol"},
		{tsp.Exact, 7, "S[EXACT]7_wcjunkins.sol"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, solution.FileName(tc.algo, tc.total, "wcjunkins"))
	}
}

func TestWrite_ReadPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	tour := []int{2, 0, 1, 3, 2}

	path, err := solution.Write(dir, solution.FileName(tsp.Merge, 80, "x"), tour)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "S80_x.sol"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2 0 1 3 2\n", string(raw))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := solution.ReadPath(f)
	require.NoError(t, err)
	assert.Equal(t, tour, got)
}

func TestReadPath(t *testing.T) {
	got, err := solution.ReadPath(strings.NewReader(" 0 1\n\n3  2 0 \n"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 0}, got)

	got, err = solution.ReadPath(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = solution.ReadPath(strings.NewReader("0 1 x 2"))
	require.ErrorIs(t, err, solution.ErrMalformedPath)
	assert.Contains(t, err.Error(), `token 3: "x"`)
}

func TestWrite_BadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := solution.Write(file, "S1_x.sol", []int{0, 1, 0})
	require.Error(t, err)
}

func TestReport_RoundTrip(t *testing.T) {
	in := solution.Report{
		RunID: "3f0c4d2e-8d7a-4a55-9d8e-0b3e1b1f2a77",
		Mode:  "original",
		Input: "graph.txt",
		Nodes: 4,
		Total: 80,
		Tour:  []int{2, 0, 1, 3, 2},
		Trace: []tsp.Step{
			{From: 1, Weight: 10, To: 0},
			{From: 2, Weight: 15, To: 0},
		},
		Output:   "S80_x.sol",
		Elapsed:  1500 * time.Millisecond,
		Finished: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, solution.WriteReport(&buf, in))
	assert.Contains(t, buf.String(), "tour: [2, 0, 1, 3, 2]")
	assert.Contains(t, buf.String(), "elapsed: 1.5s")

	out, err := solution.ReadReport(&buf)
	require.NoError(t, err)
	assert.True(t, in.Finished.Equal(out.Finished))
	out.Finished = in.Finished
	assert.Equal(t, in, out)
}
