package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// New builds an unlinked Maze over a fresh rows×cols grid.
// Every cell appears exactly once; every flag starts false.
// Returns grid.ErrBadDimensions unless both dimensions are positive.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Maze, error) {
	g, err := grid.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	return NewFromGrid(g)
}

// NewFromGrid builds an unlinked Maze over an existing grid.
// Returns ErrNilGrid when g is nil.
// Complexity: O(rows×cols) time and memory.
func NewFromGrid(g *grid.Grid) (*Maze, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	cells := make([]cellRecord, g.CellCount())
	for i := range cells {
		c := g.CellAt(i)
		for _, d := range grid.Directions {
			n, ok := g.Neighbor(c, d)
			if ok {
				cells[i].nbr[d] = g.Index(n)
			} else {
				cells[i].nbr[d] = noNeighbor
			}
		}
	}

	return &Maze{g: g, cells: cells}, nil
}

// Grid returns the underlying immutable grid.
func (m *Maze) Grid() *grid.Grid { return m.g }

// Rows returns the number of rows.
func (m *Maze) Rows() int { return m.g.Rows() }

// Columns returns the number of columns.
func (m *Maze) Columns() int { return m.g.Columns() }

// Cells returns every cell in row-major order.
// Complexity: O(rows×cols).
func (m *Maze) Cells() []grid.Cell { return m.g.Cells() }

// slot returns the direction index of b within a's record, or (0, false)
// when a is out of bounds or b is not a registered neighbor of a.
func (m *Maze) slot(a, b grid.Cell) (grid.Direction, bool) {
	if !m.g.Contains(a) || !m.g.Contains(b) {
		return 0, false
	}
	bi := m.g.Index(b)
	for _, d := range grid.Directions {
		if m.cells[m.g.Index(a)].nbr[d] == bi {
			return d, true
		}
	}

	return 0, false
}

// Link opens a passage between a and b, setting both directions' flags
// inside one write-lock critical section — no observer can see a pair
// with only one side linked. Linking an already linked pair is a no-op.
// Returns ErrInvalidLink, naming both cells, when b is not a registered
// neighbor of a; that signals a logic error in the caller, not a state
// to retry.
// Complexity: O(1).
func (m *Maze) Link(a, b grid.Cell) error {
	d, ok := m.slot(a, b)
	if !ok {
		return fmt.Errorf("%w: %v and %v", ErrInvalidLink, a, b)
	}

	ai, bi := m.g.Index(a), m.g.Index(b)
	m.mu.Lock()
	if !m.cells[ai].linked[d] {
		m.cells[ai].linked[d] = true
		m.cells[bi].linked[d.Opposite()] = true
		m.pairs++
	}
	m.mu.Unlock()

	return nil
}

// IsLinked reports whether a passage is open between a and b.
// Total by design: out-of-range or non-adjacent pairs answer false,
// never an error, so callers can probe speculative pairs cheaply.
// Complexity: O(1).
func (m *Maze) IsLinked(a, b grid.Cell) bool {
	d, ok := m.slot(a, b)
	if !ok {
		return false
	}

	m.mu.RLock()
	linked := m.cells[m.g.Index(a)].linked[d]
	m.mu.RUnlock()

	return linked
}

// NeighborsOf filters dirs through the grid's neighbor arithmetic,
// preserving the caller's direction order and dropping out-of-bounds
// results. Generators rely on the ordering to pick their north/east
// candidates. An out-of-bounds c yields nil.
// Complexity: O(len(dirs)).
func (m *Maze) NeighborsOf(c grid.Cell, dirs ...grid.Direction) []grid.Cell {
	if !m.g.Contains(c) {
		return nil
	}

	out := make([]grid.Cell, 0, len(dirs))
	for _, d := range dirs {
		if n, ok := m.g.Neighbor(c, d); ok {
			out = append(out, n)
		}
	}

	return out
}

// LinkedNeighbors returns the neighbors of c reachable through an open
// passage, in North, East, South, West order. An out-of-bounds c yields
// nil.
// Complexity: O(1) (four slots).
func (m *Maze) LinkedNeighbors(c grid.Cell) []grid.Cell {
	if !m.g.Contains(c) {
		return nil
	}

	rec := &m.cells[m.g.Index(c)]
	out := make([]grid.Cell, 0, 4)
	m.mu.RLock()
	for _, d := range grid.Directions {
		if rec.nbr[d] != noNeighbor && rec.linked[d] {
			out = append(out, m.g.CellAt(rec.nbr[d]))
		}
	}
	m.mu.RUnlock()

	return out
}

// LinkCount returns the number of undirected linked pairs. A carved
// spanning tree holds exactly CellCount−1 of them.
// Complexity: O(1).
func (m *Maze) LinkCount() int {
	m.mu.RLock()
	n := m.pairs
	m.mu.RUnlock()

	return n
}

// DeadEnds returns, in row-major order, every cell with exactly one
// linked neighbor — the classic texture metric of a carved maze.
// Complexity: O(rows×cols).
func (m *Maze) DeadEnds() []grid.Cell {
	out := make([]grid.Cell, 0)
	m.mu.RLock()
	for i := range m.cells {
		degree := 0
		for _, d := range grid.Directions {
			if m.cells[i].linked[d] {
				degree++
			}
		}
		if degree == 1 {
			out = append(out, m.g.CellAt(i))
		}
	}
	m.mu.RUnlock()

	return out
}
