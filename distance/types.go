// Package distance defines tunable options, sentinel errors, and the
// DistanceMap/PathMap result types for breadth-first maze queries.
package distance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// Sentinel errors for distance and path queries.
var (
	// ErrNilMaze is returned if a nil maze pointer is passed.
	ErrNilMaze = errors.New("distance: maze is nil")

	// ErrCellNotFound is returned when a source or endpoint cell lies
	// outside the maze's grid.
	ErrCellNotFound = errors.New("distance: cell not on grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")

	// ErrUnreachable is returned by ShortestPath when no route exists
	// between the endpoints. On the spanning trees the generators
	// produce this cannot happen; seeing it means the maze was built by
	// hand and is disconnected.
	ErrUnreachable = errors.New("distance: target unreachable")
)

// Option configures distance queries via functional arguments. An invalid
// Option (e.g. negative limit) is recorded internally and surfaced as
// ErrOptionViolation when the query runs.
type Option func(*DistanceOptions)

// DistanceOptions holds parameters customizing BFS expansion.
type DistanceOptions struct {
	// MaxDistance, if > 0, stops exploring beyond this many edges.
	// A value of 0 explicitly disables any limit.
	MaxDistance int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns DistanceOptions with no distance limit.
// Complexity: O(1).
func DefaultOptions() DistanceOptions {
	return DistanceOptions{
		MaxDistance: 0,
		err:         nil,
	}
}

// WithMaxDistance caps the expansion at the given edge count (inclusive).
//
//	d > 0:  limit to d edges from the source
//	d == 0: explicit no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDistance(d int) Option {
	return func(o *DistanceOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDistance = 0
		default:
			o.MaxDistance = d
		}
	}
}

// DistanceMap holds the outcome of one breadth-first labeling: per
// reached cell its distance (in edges) from the root, plus the visit
// order. Cells the expansion never reached are simply absent.
type DistanceMap struct {
	root  grid.Cell
	dist  map[grid.Cell]int
	order []grid.Cell // visit sequence, root first
}

// Root returns the source cell the map was built from.
func (dm *DistanceMap) Root() grid.Cell { return dm.root }

// Distance returns c's distance from the root, with ok=false when the
// expansion never reached c.
// Complexity: O(1).
func (dm *DistanceMap) Distance(c grid.Cell) (int, bool) {
	d, ok := dm.dist[c]

	return d, ok
}

// Cells returns the reached cells in BFS visit order, root first.
// The slice is a copy; callers may reorder it freely.
// Complexity: O(len).
func (dm *DistanceMap) Cells() []grid.Cell {
	return append([]grid.Cell(nil), dm.order...)
}

// Len returns the number of reached cells.
func (dm *DistanceMap) Len() int { return len(dm.order) }

// Max returns the farthest reached cell and its distance; ties resolve
// to the cell visited first, keeping the answer deterministic.
// Complexity: O(len).
func (dm *DistanceMap) Max() (grid.Cell, int) {
	best, bestDist := dm.root, 0
	for _, c := range dm.order {
		if d := dm.dist[c]; d > bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist
}

// PathMap holds one shortest path between two endpoints: each cell on the
// path with its distance from the "from" endpoint, and the from→to order.
type PathMap struct {
	from, to grid.Cell
	dist     map[grid.Cell]int
	cells    []grid.Cell // ordered from → to
}

// From returns the path's source endpoint (distance 0).
func (pm *PathMap) From() grid.Cell { return pm.from }

// To returns the path's target endpoint.
func (pm *PathMap) To() grid.Cell { return pm.to }

// Distance returns c's distance from the source, with ok=false when c
// does not lie on the path.
// Complexity: O(1).
func (pm *PathMap) Distance(c grid.Cell) (int, bool) {
	d, ok := pm.dist[c]

	return d, ok
}

// Cells returns the path cells ordered from→to, endpoints inclusive.
// The slice is a copy; callers may reorder it freely.
// Complexity: O(len).
func (pm *PathMap) Cells() []grid.Cell {
	return append([]grid.Cell(nil), pm.cells...)
}

// Len returns the number of cells on the path (Steps()+1).
func (pm *PathMap) Len() int { return len(pm.cells) }

// Steps returns the path length in edges: the distance of the "to"
// endpoint from the "from" endpoint.
func (pm *PathMap) Steps() int { return len(pm.cells) - 1 }
