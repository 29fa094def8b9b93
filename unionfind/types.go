package unionfind

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a grid dimension below 1.
	ErrInvalidSize = errors.New("unionfind: grid size must be at least 1")
	// ErrInvalidCoordinate indicates a coordinate outside the registered site space.
	ErrInvalidCoordinate = errors.New("unionfind: coordinate is not a grid site or sentinel")
)

// Coordinate identifies a grid site by (Row, Col).
// Rows are 1-indexed in [1,N]; columns are 0-indexed in [0,N-1].
// The sentinels use rows 0 and N+1.
type Coordinate struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// UnionFind is a weighted quick-union forest over N²+2 nodes.
// parent[i] == i iff i is a root; size[r] is the member count of root r.
type UnionFind struct {
	n          int
	parent     []int
	size       []int
	components int
}
