// Package maze defines the Maze type, its arena representation, and
// sentinel errors for the maze subpackage of github.com/katalvlaran/mazegrid.
package maze

import (
	"errors"
	"sync"

	"github.com/katalvlaran/mazegrid/grid"
)

// Sentinel errors for maze operations.
var (
	// ErrInvalidLink indicates Link was called on two cells that are not
	// registered neighbors of each other (non-adjacent or out of bounds).
	ErrInvalidLink = errors.New("maze: cells are not neighbors")

	// ErrNilGrid indicates NewFromGrid received a nil grid.
	ErrNilGrid = errors.New("maze: grid is nil")
)

// noNeighbor marks an arena slot whose direction leaves the grid.
const noNeighbor = -1

// cellRecord is one arena entry: per direction (in grid.Directions order),
// the row-major index of the neighbor — noNeighbor when out of bounds —
// and the passage flag toward it. The nbr slots are frozen at construction;
// only the linked flags ever change.
type cellRecord struct {
	nbr    [4]int
	linked [4]bool
}

// Maze is the link graph over a rectangular grid: a frozen adjacency
// skeleton plus one symmetric passage flag per neighbor pair.
//
// Construct with New or NewFromGrid; mutate only through Link.
// All query methods are safe for concurrent use with Link.
type Maze struct {
	g *grid.Grid

	mu    sync.RWMutex // guards linked flags and the pair counter
	cells []cellRecord
	pairs int // undirected linked pair count
}
