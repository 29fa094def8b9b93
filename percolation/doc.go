// Package percolation models an N×N grid of sites that are opened one at a
// time, and answers whether an open path spans the grid from top to bottom.
//
// What:
//
//   - Grid tracks the Closed/Open state of every site.
//   - Open marks a site open and unions it with each already-open orthogonal
//     neighbour in an internal unionfind.UnionFind. Diagonals never connect.
//   - Percolates reports whether the virtual Top and Bottom sentinels share a
//     component; IsFull reports whether an open site is reachable from Top.
//   - Clusters enumerates open clusters by flood fill, independently of the
//     union-find.
//
// Indexing: rows are 1-indexed in [1,N], columns 0-indexed in [0,N-1].
//
// Complexity:
//
//   - New:          O(N²) time and memory.
//   - Open:         O(α(N²)) amortized (≤ 4 unions).
//   - Percolates:   O(α(N²)) amortized.
//   - IsFull:       O(α(N²)) amortized.
//   - OpenFraction: O(1).
//   - Clusters:     O(N²).
//
// Errors:
//
//   - ErrInvalidSize: N < 1.
//   - ErrOutOfRange:  row/col outside [1,N]×[0,N-1].
//
// A Grid is not safe for concurrent use.
package percolation
