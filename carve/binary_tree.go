package carve

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/maze"
)

// BinaryTree carves a spanning tree with the Binary-Tree algorithm:
// one row-major pass, and for each cell one uniform choice among its
// in-bounds north and east neighbors. The top-right corner has neither
// candidate and is skipped; every other cell contributes exactly
// one link, so the pass yields exactly cells−1 links and full
// connectivity (each cell gains a route toward the top-right corner).
//
// A nil rng falls back to the deterministic default stream. The RNG is
// consumed sequentially in row-major order; same seed, same maze.
// Returns ErrNilMaze or ErrNotEmpty for invalid input.
// Complexity: O(rows×cols) time, O(1) extra memory.
func BinaryTree(m *maze.Maze, rng *rand.Rand) error {
	if err := validate(m); err != nil {
		return err
	}
	r := resolveRNG(rng)

	for _, cell := range m.Cells() {
		candidates := m.NeighborsOf(cell, grid.North, grid.East)
		if len(candidates) == 0 {
			continue // top-right corner only
		}
		pick := candidates[r.Intn(len(candidates))]
		if err := m.Link(cell, pick); err != nil {
			// unreachable for in-bounds candidates; surface it all the same
			return fmt.Errorf("carve: binary tree at %v: %w", cell, err)
		}
	}

	return nil
}
