package grid

import (
	"fmt"
	"math/rand"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass a nil RNG.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// Grid is a fixed-size rectangular coordinate space. It is immutable after
// construction; all methods are pure functions over its dimensions.
type Grid struct {
	rows, cols int
}

// NewGrid constructs a rows×cols Grid.
// Returns ErrBadDimensions unless both dimensions are positive.
// Complexity: O(1).
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}

	return &Grid{rows: rows, cols: cols}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.cols }

// CellCount returns rows×columns, the total number of cells.
// Complexity: O(1).
func (g *Grid) CellCount() int { return g.rows * g.cols }

// Contains reports whether c lies within [0,rows) × [0,cols).
// Complexity: O(1).
func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Neighbor returns the adjacent cell one step along d, with ok=true when
// that coordinate lies inside the grid. Out-of-bounds targets answer
// (Cell{}, false); the query never fails.
// Complexity: O(1).
func (g *Grid) Neighbor(c Cell, d Direction) (Cell, bool) {
	dr, dc := d.Delta()
	n := Cell{Row: c.Row + dr, Col: c.Col + dc}
	if !g.Contains(n) {
		return Cell{}, false
	}

	return n, true
}

// Cells returns every cell of the grid in row-major order
// (row ascending, then column ascending). Generators iterate this
// sequence, so the ordering is part of the reproducibility contract.
// Complexity: O(rows×columns) time and memory.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.CellCount())
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}

	return cells
}

// Index flattens c to its row-major index: row*columns + col.
// The caller must ensure Contains(c); Index performs no bounds check.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to its Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// RandomCell draws one cell uniformly at random using rng.
// A nil rng falls back to a fresh deterministic default stream
// (seed policy shared with package carve), so the zero configuration
// stays reproducible.
// Complexity: O(1).
func (g *Grid) RandomCell(rng *rand.Rand) Cell {
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultRNGSeed))
	}

	return g.CellAt(r.Intn(g.CellCount()))
}
