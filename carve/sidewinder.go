package carve

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/maze"
)

// Sidewinder carves a spanning tree with the Sidewinder algorithm,
// processing rows top to bottom.
//
// The top row has no north neighbors, so it is linked into a single east
// corridor. Every other row is partitioned left-to-right into contiguous,
// non-empty runs: at each cell a coin decides whether the current run
// continues east or closes (the east edge of the grid always closes it).
// A run links every adjacent pair inside itself as it grows, and on
// closing links exactly one uniformly chosen member north — a run of
// size one still receives its one north link. Runs partition each row
// exactly: no gaps, no overlaps.
//
// Each row below the top contributes (row length − 1) east links plus
// one north link per run minus the east links skipped at run boundaries;
// summed, the maze ends with exactly cells−1 links, and every run is
// attached to the already-connected rows above, so the result is a
// spanning tree.
//
// A nil rng falls back to the deterministic default stream; draws are
// consumed sequentially in row-major order.
// Returns ErrNilMaze or ErrNotEmpty for invalid input.
// Complexity: O(rows×cols) time, O(cols) extra memory (the current run).
func Sidewinder(m *maze.Maze, rng *rand.Rand) error {
	if err := validate(m); err != nil {
		return err
	}
	r := resolveRNG(rng)

	rows, cols := m.Rows(), m.Columns()

	// top row: one unbroken east corridor
	for col := 0; col < cols-1; col++ {
		a := grid.Cell{Row: 0, Col: col}
		b := grid.Cell{Row: 0, Col: col + 1}
		if err := m.Link(a, b); err != nil {
			return fmt.Errorf("carve: sidewinder top row at %v: %w", a, err)
		}
	}

	run := make([]grid.Cell, 0, cols)
	for row := 1; row < rows; row++ {
		run = run[:0]
		for col := 0; col < cols; col++ {
			cell := grid.Cell{Row: row, Col: col}
			run = append(run, cell)

			atEastEdge := col == cols-1
			if !atEastEdge && r.Intn(2) == 0 {
				// continue the run eastward
				if err := m.Link(cell, grid.Cell{Row: row, Col: col + 1}); err != nil {
					return fmt.Errorf("carve: sidewinder east link at %v: %w", cell, err)
				}

				continue
			}

			// close the run: one uniform member links north
			member := run[r.Intn(len(run))]
			north := grid.Cell{Row: row - 1, Col: member.Col}
			if err := m.Link(member, north); err != nil {
				return fmt.Errorf("carve: sidewinder north link at %v: %w", member, err)
			}
			run = run[:0]
		}
	}

	return nil
}
