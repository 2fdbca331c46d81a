// Package carve provides two spanning-tree maze generators over a
// maze.Maze: Binary-Tree and Sidewinder.
//
// What & Why
//
//   - Both algorithms consume a freshly built, unlinked maze and leave
//     behind a spanning tree of passages: cells−1 undirected links, every
//     cell reachable from every other, no cycles. That tree property is
//     what makes the distance and path packages meaningful — a unique
//     route exists between any two cells.
//
//   - BinaryTree(m, rng)
//     One row-major pass. For each cell, collect its in-bounds north and
//     east neighbors; if any exist, link the cell to one chosen uniformly
//     at random; the bottom-right corner has neither and is skipped.
//     Texture: an unbroken corridor along the top row and the east column.
//
//   - Sidewinder(m, rng)
//     Row by row, top to bottom. The top row becomes one east corridor.
//     Every other row is partitioned left-to-right into non-empty runs by
//     a coin flip per cell (continue the run vs. close it); each run is
//     east-linked internally and exactly one of its cells, chosen
//     uniformly, is linked north — including runs of size one.
//     Texture: an unbroken top-row corridor, vertical variety below.
//
// Determinism
//
//	All randomness flows through one injected *rand.Rand, consumed as a
//	single sequential stream in row-major order. Same seed, same maze,
//	on every platform; parallel carving is deliberately unsupported
//	because it would reorder draws and change the distribution.
//
// Complexity (N = rows×columns)
//
//   - BinaryTree: O(N) time, O(1) extra memory.
//   - Sidewinder: O(N) time, O(columns) extra memory (the current run).
//
// Usage
//
//	m, _ := maze.New(8, 8)
//	if err := carve.Carve(m, carve.WithMethod(carve.MethodSidewinder), carve.WithSeed(42)); err != nil {
//	    // handle ErrNilMaze, ErrNotEmpty, or ErrUnknownMethod
//	}
//
// Options
//
//   - DefaultOptions(): MethodBinaryTree, deterministic default RNG stream.
//   - WithMethod(m):    select MethodBinaryTree or MethodSidewinder.
//   - WithSeed(s):      seed a fresh RNG (seed 0 ⇒ fixed default seed).
//   - WithRand(r):      inject an explicit RNG; panics on nil.
//
// Errors
//
//   - ErrNilMaze:       a nil maze was passed.
//   - ErrNotEmpty:      the maze already has links; generators require a
//     fresh, unlinked graph.
//   - ErrUnknownMethod: Carve dispatch got an unrecognized method name.
package carve
