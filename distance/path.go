package distance

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/maze"
)

// ShortestPath computes Distances(m, from) and reconstructs one shortest
// path to the target by walking backward: from `to`, repeatedly step to
// the linked neighbor whose distance is strictly smaller, recording each
// cell, until `from` (distance 0) is reached. On a spanning tree that
// downhill neighbor always exists and is unique — a tree has exactly one
// path — so the walk can neither branch nor loop. from == to yields the
// single-entry path {from: 0}.
//
// Returns ErrNilMaze, ErrCellNotFound (either endpoint off grid), or
// ErrUnreachable — naming both endpoints — when no route exists. The
// walk is bounded by the distance value itself, so a malformed graph
// surfaces as an error rather than non-termination.
// Complexity: O(rows×cols) time and memory.
func ShortestPath(m *maze.Maze, from, to grid.Cell) (*PathMap, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	if !m.Grid().Contains(to) {
		return nil, fmt.Errorf("%w: %v", ErrCellNotFound, to)
	}

	dm, err := Distances(m, from)
	if err != nil {
		return nil, err
	}

	total, ok := dm.Distance(to)
	if !ok {
		return nil, fmt.Errorf("%w: no route from %v to %v", ErrUnreachable, from, to)
	}

	pm := &PathMap{
		from:  from,
		to:    to,
		dist:  make(map[grid.Cell]int, total+1),
		cells: make([]grid.Cell, total+1),
	}

	cur, curDist := to, total
	for {
		pm.dist[cur] = curDist
		pm.cells[curDist] = cur // backward walk fills from→to order directly
		if curDist == 0 {
			break
		}

		stepped := false
		for _, nbr := range m.LinkedNeighbors(cur) {
			if d, reached := dm.Distance(nbr); reached && d < curDist {
				cur, curDist = nbr, d
				stepped = true

				break
			}
		}
		if !stepped {
			// impossible for a map produced by Distances; guard anyway
			return nil, fmt.Errorf("%w: no route from %v to %v", ErrUnreachable, from, to)
		}
	}

	return pm, nil
}

// LongestPath returns a diameter path of the maze by double BFS: the
// farthest cell from (0,0), then the farthest cell from that one, then
// the path between the two. Meaningful because carved mazes are trees,
// where double BFS finds an exact diameter.
//
// Returns ErrNilMaze; on a disconnected maze the result is the diameter
// of the component containing (0,0).
// Complexity: O(rows×cols) time and memory.
func LongestPath(m *maze.Maze) (*PathMap, error) {
	if m == nil {
		return nil, ErrNilMaze
	}

	first, err := Distances(m, grid.Cell{Row: 0, Col: 0})
	if err != nil {
		return nil, err
	}
	tail, _ := first.Max()

	second, err := Distances(m, tail)
	if err != nil {
		return nil, err
	}
	head, _ := second.Max()

	return ShortestPath(m, tail, head)
}
