// Package maze implements the link graph at the heart of mazegrid: a Maze
// owns, for every cell of a grid, the fixed set of in-bounds orthogonal
// neighbors and one symmetric “linked” (passage) flag per neighbor pair.
//
// What:
//
//   - Maze: constructed once from a grid with every flag false; mutated
//     only through Link; queried through IsLinked, NeighborsOf,
//     LinkedNeighbors, LinkCount, and DeadEnds.
//   - Link(a, b) flips both directions of a pair inside one write-lock
//     critical section, so no reader ever observes a half-linked pair.
//   - IsLinked is total: out-of-range or non-adjacent queries answer
//     false rather than erroring, keeping speculative adjacency checks
//     cheap at call sites.
//
// Why:
//
//   - Generators (package carve) need exactly this structure: a frozen
//     adjacency skeleton plus flags they flip into a spanning tree.
//   - Distance queries (package distance) walk LinkedNeighbors, relying
//     on its fixed North, East, South, West order for determinism.
//
// Representation:
//
//	A flat arena of cell records indexed row-major (row*columns + col),
//	each holding a fixed four-slot array of (neighbor index, linked flag)
//	keyed by direction. Linking is a two-index write; no pointer-heavy
//	graph structures, no per-cell maps.
//
// Complexity:
//
//   - New: O(rows×columns). Link, IsLinked: O(1).
//   - LinkedNeighbors: O(1) (four slots). DeadEnds: O(rows×columns).
//
// Errors:
//
//   - ErrInvalidLink: Link called on cells that are not registered
//     neighbors of each other; the message carries both cells. A caller
//     logic error — never retry with the same arguments.
//   - ErrNilGrid: NewFromGrid called with a nil grid.
//
// Concurrency:
//
//	A single sync.RWMutex guards the link flags: Link takes the write
//	lock, queries take the read lock. The neighbor skeleton is immutable
//	after construction and needs no locking.
package maze
