package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolate/unionfind"
)

// New allocates an n×n grid with every site closed.
// Returns ErrInvalidSize if n < 1.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	uf, err := unionfind.New(n)
	if err != nil {
		return nil, err
	}
	return &Grid{
		n:     n,
		sites: make([]SiteState, n*n),
		uf:    uf,
	}, nil
}

// Size returns the grid dimension N.
func (g *Grid) Size() int { return g.n }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 0 && col < g.n
}

// Open opens the site at (row, col) and connects it to its open orthogonal
// neighbours. Opening an already-open site is a no-op.
// Returns ErrOutOfRange for coordinates outside the grid.
func (g *Grid) Open(row, col int) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	i := g.index(row, col)
	if g.sites[i] == Open {
		return nil
	}
	g.sites[i] = Open
	g.open++

	for _, d := range orthogonal {
		nr, nc := row+d[0], col+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		j := g.index(nr, nc)
		if g.sites[j] == Open {
			g.uf.UnionID(i, j)
		}
	}
	return nil
}

// Percolates reports whether an open path connects the top row to the
// bottom row. Once true it stays true for the lifetime of the grid.
// Complexity: O(α(N²)) amortized.
func (g *Grid) Percolates() bool {
	// On a 1×1 grid the sentinels share the lone site before it opens.
	return g.open > 0 && g.uf.ConnectedID(g.uf.TopID(), g.uf.BottomID())
}

// IsOpen reports whether the site at (row, col) is open.
// Returns ErrOutOfRange for coordinates outside the grid.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}
	return g.sites[g.index(row, col)] == Open, nil
}

// IsFull reports whether the site at (row, col) is open and connected to
// the top row. A closed site is never full.
// Returns ErrOutOfRange for coordinates outside the grid.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}
	return g.full(g.index(row, col)), nil
}

// State returns Closed, Open or Full for the site at (row, col).
// Returns ErrOutOfRange for coordinates outside the grid.
func (g *Grid) State(row, col int) (SiteState, error) {
	if err := g.check(row, col); err != nil {
		return Closed, err
	}
	return g.state(g.index(row, col)), nil
}

// OpenCount returns the number of open sites.
func (g *Grid) OpenCount() int { return g.open }

// OpenFraction returns the open site count divided by N².
// Complexity: O(1).
func (g *Grid) OpenFraction() float64 {
	return float64(g.open) / float64(g.n*g.n)
}

// Snapshot returns a copy of the site states as snapshot[row-1][col],
// with Full resolved for every open site.
// Complexity: O(N²·α(N²)).
func (g *Grid) Snapshot() [][]SiteState {
	out := make([][]SiteState, g.n)
	for r := 0; r < g.n; r++ {
		out[r] = make([]SiteState, g.n)
		for c := 0; c < g.n; c++ {
			out[r][c] = g.state(r*g.n + c)
		}
	}
	return out
}

func (g *Grid) state(i int) SiteState {
	if g.sites[i] != Open {
		return Closed
	}
	if g.uf.ConnectedID(i, g.uf.TopID()) {
		return Full
	}
	return Open
}

func (g *Grid) full(i int) bool {
	return g.sites[i] == Open && g.uf.ConnectedID(i, g.uf.TopID())
}

func (g *Grid) check(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfRange, row, col, g.n, g.n)
	}
	return nil
}

// index maps (row, col) to the row-major index (row-1)*N + col.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + col
}

// coordinate converts a row-major index back to (row, col).
func (g *Grid) coordinate(i int) unionfind.Coordinate {
	return unionfind.Coordinate{Row: i/g.n + 1, Col: i % g.n}
}
