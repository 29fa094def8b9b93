package unionfind

import "fmt"

// New builds the forest for an n×n grid and links the sentinels to the
// top and bottom rows.
// Returns ErrInvalidSize if n < 1.
// Complexity: O(n²) time and memory.
func New(n int) (*UnionFind, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	total := n*n + 2
	uf := &UnionFind{
		n:          n,
		parent:     make([]int, total),
		size:       make([]int, total),
		components: total,
	}
	for i := 0; i < total; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	// Sentinel first so ties keep the sentinel as root.
	top, bottom := uf.topID(), uf.bottomID()
	for col := 0; col < n; col++ {
		uf.union(top, uf.index(1, col))
		uf.union(bottom, uf.index(n, col))
	}

	return uf, nil
}

// N returns the grid dimension.
func (uf *UnionFind) N() int { return uf.n }

// Top returns the virtual top sentinel, (0,0).
func (uf *UnionFind) Top() Coordinate { return Coordinate{Row: 0, Col: 0} }

// Bottom returns the virtual bottom sentinel, (N+1,N-1).
func (uf *UnionFind) Bottom() Coordinate { return Coordinate{Row: uf.n + 1, Col: uf.n - 1} }

// Count returns the current number of disjoint components, sentinels included.
func (uf *UnionFind) Count() int { return uf.components }

// ID maps a coordinate to its node index.
// Returns ErrInvalidCoordinate for anything outside the site space.
// Complexity: O(1).
func (uf *UnionFind) ID(c Coordinate) (int, error) {
	switch {
	case c == uf.Top():
		return uf.topID(), nil
	case c == uf.Bottom():
		return uf.bottomID(), nil
	case c.Row >= 1 && c.Row <= uf.n && c.Col >= 0 && c.Col < uf.n:
		return uf.index(c.Row, c.Col), nil
	}
	return 0, fmt.Errorf("%w: %s on %dx%d grid", ErrInvalidCoordinate, c, uf.n, uf.n)
}

// Coordinate maps a node index back to its coordinate.
// Returns ErrInvalidCoordinate if id is out of range.
// Complexity: O(1).
func (uf *UnionFind) Coordinate(id int) (Coordinate, error) {
	switch {
	case id == uf.topID():
		return uf.Top(), nil
	case id == uf.bottomID():
		return uf.Bottom(), nil
	case id >= 0 && id < uf.n*uf.n:
		return Coordinate{Row: id/uf.n + 1, Col: id % uf.n}, nil
	}
	return Coordinate{}, fmt.Errorf("%w: id %d", ErrInvalidCoordinate, id)
}

// Find returns the root coordinate of c's component.
// Returns ErrInvalidCoordinate if c was never registered.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(c Coordinate) (Coordinate, error) {
	id, err := uf.ID(c)
	if err != nil {
		return Coordinate{}, err
	}
	return uf.Coordinate(uf.find(id))
}

// Connected reports whether a and b share a component.
// Returns ErrInvalidCoordinate if either coordinate is unknown.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Connected(a, b Coordinate) (bool, error) {
	ia, err := uf.ID(a)
	if err != nil {
		return false, err
	}
	ib, err := uf.ID(b)
	if err != nil {
		return false, err
	}
	return uf.find(ia) == uf.find(ib), nil
}

// Union merges the components of a and b. It is a no-op if they are
// already connected. The smaller tree is attached under the larger root;
// on equal sizes b's root goes under a's root.
// Returns ErrInvalidCoordinate if either coordinate is unknown.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(a, b Coordinate) error {
	ia, err := uf.ID(a)
	if err != nil {
		return err
	}
	ib, err := uf.ID(b)
	if err != nil {
		return err
	}
	uf.union(ia, ib)
	return nil
}

// Size returns the member count of c's component.
// Returns ErrInvalidCoordinate if c is unknown.
func (uf *UnionFind) Size(c Coordinate) (int, error) {
	id, err := uf.ID(c)
	if err != nil {
		return 0, err
	}
	return uf.size[uf.find(id)], nil
}

// ConnectedID is Connected on raw node indices. Callers must pass indices
// obtained from ID; the hot path of the percolation grid uses it to skip
// revalidation.
func (uf *UnionFind) ConnectedID(a, b int) bool {
	return uf.find(a) == uf.find(b)
}

// UnionID is Union on raw node indices obtained from ID.
func (uf *UnionFind) UnionID(a, b int) {
	uf.union(a, b)
}

// TopID returns the node index of the Top sentinel.
func (uf *UnionFind) TopID() int { return uf.topID() }

// BottomID returns the node index of the Bottom sentinel.
func (uf *UnionFind) BottomID() int { return uf.bottomID() }

// find walks parent pointers to the root, halving the path as it goes.
func (uf *UnionFind) find(i int) int {
	for uf.parent[i] != i {
		// Path halving: point i at its grandparent.
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}
	return i
}

// union links the roots of a and b by size.
func (uf *UnionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.size[ra] >= uf.size[rb] {
		uf.parent[rb] = ra
		uf.size[ra] += uf.size[rb]
	} else {
		uf.parent[ra] = rb
		uf.size[rb] += uf.size[ra]
	}
	uf.components--
}

// index maps (row, col) to a row-major node index: (row-1)*N + col.
func (uf *UnionFind) index(row, col int) int {
	return (row-1)*uf.n + col
}

func (uf *UnionFind) topID() int    { return uf.n * uf.n }
func (uf *UnionFind) bottomID() int { return uf.n*uf.n + 1 }
