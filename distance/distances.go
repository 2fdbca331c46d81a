package distance

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/maze"
)

// queueItem pairs a cell with its BFS distance from the source.
type queueItem struct {
	cell grid.Cell
	dist int
}

// Distances runs breadth-first expansion over m's open passages starting
// from source (distance 0), applying any number of functional Options.
//
// Each frontier cell contributes its unvisited linked neighbors to the
// next frontier at distance+1; the first assignment wins and the map
// doubles as the visited set, which is exact for unweighted BFS. The
// expansion stops when the frontier empties (or the MaxDistance cap is
// reached). Cells never reached are absent from the result — on a
// disconnected maze that is expected, not an error.
//
// Returns ErrNilMaze, ErrCellNotFound (source off grid), or
// ErrOptionViolation for invalid input.
// Complexity: O(rows×cols) time and memory.
func Distances(m *maze.Maze, source grid.Cell, opts ...Option) (*DistanceMap, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.Grid().Contains(source) {
		return nil, fmt.Errorf("%w: %v", ErrCellNotFound, source)
	}

	n := m.Grid().CellCount()
	dm := &DistanceMap{
		root:  source,
		dist:  make(map[grid.Cell]int, n),
		order: make([]grid.Cell, 0, n),
	}

	queue := make([]queueItem, 0, n)
	dm.dist[source] = 0
	queue = append(queue, queueItem{cell: source, dist: 0})

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		dm.order = append(dm.order, item.cell)

		next := item.dist + 1
		if o.MaxDistance > 0 && next > o.MaxDistance {
			continue
		}
		// LinkedNeighbors enumerates N, E, S, W — the visit order contract
		for _, nbr := range m.LinkedNeighbors(item.cell) {
			if _, seen := dm.dist[nbr]; seen {
				continue
			}
			dm.dist[nbr] = next
			queue = append(queue, queueItem{cell: nbr, dist: next})
		}
	}

	return dm, nil
}
