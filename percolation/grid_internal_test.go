package percolation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestOpen_IdempotentComponentSizes compares component sizes of every node
// after a repeated open, which is not observable through the public API.
func TestOpen_IdempotentComponentSizes(t *testing.T) {
	once, err := New(3)
	require.NoError(t, err)
	twice, err := New(3)
	require.NoError(t, err)

	for _, s := range [][2]int{{1, 0}, {2, 0}, {2, 1}} {
		require.NoError(t, once.Open(s[0], s[1]))
		require.NoError(t, twice.Open(s[0], s[1]))
		require.NoError(t, twice.Open(s[0], s[1]))
	}
	require.Equal(t, once.uf.Count(), twice.uf.Count())
	for id := 0; id < 3*3+2; id++ {
		c, err := once.uf.Coordinate(id)
		require.NoError(t, err)
		a, err := once.uf.Size(c)
		require.NoError(t, err)
		b, err := twice.uf.Size(c)
		require.NoError(t, err)
		require.Equal(t, a, b, "size of %s", c)
	}
}
