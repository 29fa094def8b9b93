package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/percolate/percolation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrid(t *testing.T, n int) *percolation.Grid {
	t.Helper()
	g, err := percolation.New(n)
	require.NoError(t, err)
	return g
}

func openAll(t *testing.T, g *percolation.Grid) {
	t.Helper()
	for row := 1; row <= g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			require.NoError(t, g.Open(row, col))
		}
	}
}

// TestNew_InvalidSize verifies New rejects non-positive N.
func TestNew_InvalidSize(t *testing.T) {
	_, err := percolation.New(0)
	assert.ErrorIs(t, err, percolation.ErrInvalidSize)
	_, err = percolation.New(-3)
	assert.ErrorIs(t, err, percolation.ErrInvalidSize)
}

// TestPercolates_EmptyAndFull checks the two extremes for several sizes:
// nothing open never percolates, everything open always does.
func TestPercolates_EmptyAndFull(t *testing.T) {
	for n := 1; n <= 8; n++ {
		g := newGrid(t, n)
		assert.False(t, g.Percolates(), "n=%d empty grid", n)
		assert.Zero(t, g.OpenFraction(), "n=%d empty grid", n)

		openAll(t, g)
		assert.True(t, g.Percolates(), "n=%d open grid", n)
		assert.Equal(t, 1.0, g.OpenFraction(), "n=%d open grid", n)
		assert.Equal(t, n*n, g.OpenCount())
	}
}

// TestOutOfRange ensures Open, IsOpen, IsFull and State validate coordinates.
func TestOutOfRange(t *testing.T) {
	g := newGrid(t, 3)
	cases := []struct {
		name     string
		row, col int
	}{
		{"RowZero", 0, 0},
		{"RowOver", 4, 1},
		{"ColNegative", 2, -1},
		{"ColOver", 2, 3},
		{"BothBad", -1, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.Open(tc.row, tc.col), percolation.ErrOutOfRange)
			_, err := g.IsOpen(tc.row, tc.col)
			assert.ErrorIs(t, err, percolation.ErrOutOfRange)
			_, err = g.IsFull(tc.row, tc.col)
			assert.ErrorIs(t, err, percolation.ErrOutOfRange)
			_, err = g.State(tc.row, tc.col)
			assert.ErrorIs(t, err, percolation.ErrOutOfRange)
		})
	}
	assert.Zero(t, g.OpenCount(), "failed opens must not mutate the grid")
}

// TestScenario_SingleSite covers N=1: the lone site is both top and bottom row.
func TestScenario_SingleSite(t *testing.T) {
	g := newGrid(t, 1)
	assert.False(t, g.Percolates())

	full, err := g.IsFull(1, 0)
	require.NoError(t, err)
	assert.False(t, full)

	require.NoError(t, g.Open(1, 0))
	assert.True(t, g.Percolates())
	assert.Equal(t, 1.0, g.OpenFraction())

	full, err = g.IsFull(1, 0)
	require.NoError(t, err)
	assert.True(t, full)
}

// TestScenario_LeftColumn opens the left column of a 2×2 grid.
func TestScenario_LeftColumn(t *testing.T) {
	g := newGrid(t, 2)
	require.NoError(t, g.Open(1, 0))
	require.NoError(t, g.Open(2, 0))
	assert.True(t, g.Percolates())

	for _, row := range []int{1, 2} {
		open, err := g.IsOpen(row, 1)
		require.NoError(t, err)
		assert.False(t, open, "(%d,1) open", row)

		full, err := g.IsFull(row, 1)
		require.NoError(t, err)
		assert.False(t, full, "(%d,1) full", row)
	}

	want := [][]percolation.SiteState{
		{percolation.Full, percolation.Closed},
		{percolation.Full, percolation.Closed},
	}
	if diff := cmp.Diff(want, g.Snapshot()); diff != "" {
		t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
	}
}

// TestScenario_MiddleColumn opens column 1 of a 3×3 grid.
func TestScenario_MiddleColumn(t *testing.T) {
	g := newGrid(t, 3)
	for row := 1; row <= 3; row++ {
		require.NoError(t, g.Open(row, 1))
	}
	assert.True(t, g.Percolates())
	assert.InDelta(t, 3.0/9.0, g.OpenFraction(), 1e-12)
}

// TestScenario_NoDiagonals confirms diagonal neighbours never connect.
//
//	X .
//	. X
func TestScenario_NoDiagonals(t *testing.T) {
	g := newGrid(t, 2)
	require.NoError(t, g.Open(1, 0))
	require.NoError(t, g.Open(2, 1))
	assert.False(t, g.Percolates())

	state, err := g.State(2, 1)
	require.NoError(t, err)
	assert.Equal(t, percolation.Open, state)
	assert.Len(t, g.Clusters(), 2)
}

// TestOpen_Idempotent opens the same site twice and compares against a
// grid where it was opened once.
func TestOpen_Idempotent(t *testing.T) {
	once, twice := newGrid(t, 4), newGrid(t, 4)
	sites := [][2]int{{1, 1}, {2, 1}, {2, 2}, {4, 0}}
	for _, s := range sites {
		require.NoError(t, once.Open(s[0], s[1]))
		require.NoError(t, twice.Open(s[0], s[1]))
		require.NoError(t, twice.Open(s[0], s[1]))
	}
	assert.Equal(t, once.OpenCount(), twice.OpenCount())
	assert.Equal(t, once.OpenFraction(), twice.OpenFraction())
	assert.Equal(t, once.Percolates(), twice.Percolates())
	if diff := cmp.Diff(once.Snapshot(), twice.Snapshot()); diff != "" {
		t.Errorf("Snapshot mismatch (-once +twice):\n%s", diff)
	}
	if diff := cmp.Diff(once.Clusters(), twice.Clusters()); diff != "" {
		t.Errorf("Clusters mismatch (-once +twice):\n%s", diff)
	}
}

// TestRandomOpen_Invariants opens random sites and checks after every step:
// monotonic percolation, full implies open, and union-find agreement with
// the flood-fill clusters.
func TestRandomOpen_Invariants(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 1 + r.Intn(9)
		g := newGrid(t, n)
		percolated := false
		for step := 0; step < 3*n*n; step++ {
			row, col := 1+r.Intn(n), r.Intn(n)
			require.NoError(t, g.Open(row, col))

			if percolated {
				require.True(t, g.Percolates(), "percolation must be monotonic")
			}
			percolated = g.Percolates()
			require.Equal(t, g.Spanning(), percolated, "union-find disagrees with flood fill")

			for rr := 1; rr <= n; rr++ {
				for cc := 0; cc < n; cc++ {
					full, err := g.IsFull(rr, cc)
					require.NoError(t, err)
					if full {
						open, _ := g.IsOpen(rr, cc)
						require.True(t, open, "(%d,%d) full but closed", rr, cc)
					}
				}
			}
		}
	}
}

// TestClusters_Shape checks cluster enumeration on a fixed pattern.
//
//	X X .
//	. . .
//	X . X
func TestClusters_Shape(t *testing.T) {
	g := newGrid(t, 3)
	for _, s := range [][2]int{{1, 0}, {1, 1}, {3, 0}, {3, 2}} {
		require.NoError(t, g.Open(s[0], s[1]))
	}
	comps := g.Clusters()
	require.Len(t, comps, 3)
	assert.Len(t, comps[0], 2)
	assert.Len(t, comps[1], 1)
	assert.Len(t, comps[2], 1)
	assert.False(t, g.Spanning())
}

// TestSiteState_String covers the state names used by renderers.
func TestSiteState_String(t *testing.T) {
	assert.Equal(t, "closed", percolation.Closed.String())
	assert.Equal(t, "open", percolation.Open.String())
	assert.Equal(t, "full", percolation.Full.String())
	assert.Equal(t, "unknown", percolation.SiteState(9).String())
}
