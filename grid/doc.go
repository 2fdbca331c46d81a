// Package grid provides the lattice primitives every other mazegrid
// package builds on: the Cell coordinate value, the four orthogonal
// Directions, and the immutable rectangular Grid.
//
// What:
//
//   - Cell: a zero-based (row, column) pair; pure value, structural equality.
//   - Direction: North, East, South, West, with row/column deltas
//     north = row−1, south = row+1, east = col+1, west = col−1.
//   - Grid: a rows×columns coordinate space; computes neighbors with
//     bounds checks and flattens cells to row-major indices.
//
// Why:
//
//   - Every maze, generator, and distance query is defined over this
//     lattice; keeping the geometry in one immutable type lets the rest
//     of the module stay pure arithmetic.
//   - Row-major Cells() ordering is load-bearing: generators iterate it,
//     so (ordering + seed) fully determines a carved maze.
//
// Complexity:
//
//   - Neighbor, Contains, Index, CellAt: O(1).
//   - Cells: O(rows×columns) time and memory.
//
// Errors:
//
//   - ErrBadDimensions: NewGrid called with non-positive rows or columns.
//
// Neighbor and Contains are total: out-of-bounds queries answer
// (zero, false) / false rather than erroring, so adjacency checks compose
// without defensive guards at call sites.
package grid
