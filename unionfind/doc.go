// Package unionfind is a weighted quick-union over the sites of an N×N
// percolation grid, extended with two virtual sentinel sites.
//
// What:
//
//   - Every real site (row, col) with row ∈ [1,N] and col ∈ [0,N-1] is a node.
//   - Two extra nodes, Top and Bottom, sit outside the row range. Top is
//     pre-unioned with every site of row 1, Bottom with every site of row N.
//   - Union merges two components by size; Find walks to the component root
//     with path halving.
//
// Why:
//
//   - With the sentinels in place, "does the grid percolate?" becomes a single
//     Connected(Top, Bottom) call instead of N×N top/bottom pair checks.
//   - Union by size bounds every tree height by O(log n); path halving makes
//     the amortized cost of Find effectively constant (inverse Ackermann).
//
// Layout:
//
//	id(row, col) = (row-1)*N + col      real sites, 0 … N²-1
//	id(Top)      = N²
//	id(Bottom)   = N² + 1
//
// Complexity:
//
//   - New:       O(N²) time and memory (N² + 2 nodes, 2N sentinel unions).
//   - Find:      O(α(n)) amortized.
//   - Union:     O(α(n)) amortized.
//   - Connected: O(α(n)) amortized.
//
// Errors:
//
//   - ErrInvalidSize:       N < 1.
//   - ErrInvalidCoordinate: coordinate is neither a real site nor a sentinel.
//
// UnionFind is not safe for concurrent use; each simulation trial owns one.
package unionfind
