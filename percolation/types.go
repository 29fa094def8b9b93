package percolation

import (
	"errors"

	"github.com/katalvlaran/percolate/unionfind"
)

var (
	// ErrInvalidSize indicates a grid dimension below 1.
	ErrInvalidSize = errors.New("percolation: grid size must be at least 1")
	// ErrOutOfRange indicates a row or column outside the grid.
	ErrOutOfRange = errors.New("percolation: site out of range")
)

// SiteState is the observable state of a single site.
// Only Closed and Open are stored; Full is derived on demand.
type SiteState uint8

const (
	// Closed sites block flow.
	Closed SiteState = iota
	// Open sites are not connected to the top row.
	Open
	// Full sites are open and connected to the top row.
	Full
)

// String returns the lower-case state name.
func (s SiteState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Full:
		return "full"
	}
	return "unknown"
}

// orthogonal holds the (dRow, dCol) offsets of the four grid neighbours.
var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an N×N percolation system.
// sites[i] uses the same row-major index as the union-find node ids.
type Grid struct {
	n     int
	sites []SiteState
	open  int
	uf    *unionfind.UnionFind
}
