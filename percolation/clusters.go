package percolation

import "github.com/katalvlaran/percolate/unionfind"

// Clusters finds every maximal group of orthogonally connected open sites
// by breadth-first flood fill. It does not consult the union-find, so it
// serves as an independent check of Open's bookkeeping.
//
// Clusters are returned in order of their first site in row-major order;
// sites within a cluster are in BFS discovery order.
//
// Time:   O(N²).
// Memory: O(N²) for visited flags and output.
func (g *Grid) Clusters() [][]unionfind.Coordinate {
	seen := make([]bool, len(g.sites))
	var out [][]unionfind.Coordinate

	for i0, s := range g.sites {
		if s != Open || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []unionfind.Coordinate

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			c := g.coordinate(u)
			comp = append(comp, c)
			for _, d := range orthogonal {
				nr, nc := c.Row+d[0], c.Col+d[1]
				if !g.InBounds(nr, nc) {
					continue
				}
				v := g.index(nr, nc)
				if g.sites[v] == Open && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		out = append(out, comp)
	}
	return out
}

// Spanning reports whether any open cluster touches both the top and bottom
// rows. It agrees with Percolates on every grid.
func (g *Grid) Spanning() bool {
	for _, comp := range g.Clusters() {
		top, bottom := false, false
		for _, c := range comp {
			top = top || c.Row == 1
			bottom = bottom || c.Row == g.n
		}
		if top && bottom {
			return true
		}
	}
	return false
}
