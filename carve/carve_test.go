package carve_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/carve"
	"github.com/katalvlaran/mazegrid/distance"
	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/maze"
)

// generators under test, by Carve method name
var methods = []string{carve.MethodBinaryTree, carve.MethodSidewinder}

// carveFresh builds an unlinked rows×cols maze and carves it with the
// given method and seed.
func carveFresh(t *testing.T, method string, rows, cols int, seed int64) *maze.Maze {
	t.Helper()
	m, err := maze.New(rows, cols)
	require.NoError(t, err)
	require.NoError(t, carve.Carve(m, carve.WithMethod(method), carve.WithSeed(seed)))

	return m
}

// TestCarve_SpanningTree verifies the central postcondition on several
// sizes: cells−1 links and full reachability from every corner.
func TestCarve_SpanningTree(t *testing.T) {
	sizes := []struct{ rows, cols int }{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {4, 7}, {10, 10}}
	for _, method := range methods {
		for _, s := range sizes {
			name := fmt.Sprintf("%s_%dx%d", method, s.rows, s.cols)
			t.Run(name, func(t *testing.T) {
				m := carveFresh(t, method, s.rows, s.cols, 42)

				cells := s.rows * s.cols
				assert.Equal(t, cells-1, m.LinkCount(), "tree link count")

				// BFS from (0,0) must label every cell
				dm, err := distance.Distances(m, grid.Cell{Row: 0, Col: 0})
				require.NoError(t, err)
				assert.Equal(t, cells, dm.Len(), "full connectivity")
			})
		}
	}
}

// TestCarve_Deterministic verifies same seed ⇒ identical link set.
func TestCarve_Deterministic(t *testing.T) {
	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			m1 := carveFresh(t, method, 6, 9, 1234)
			m2 := carveFresh(t, method, 6, 9, 1234)
			m3 := carveFresh(t, method, 6, 9, 4321)

			same, diff := true, false
			for _, c := range m1.Cells() {
				for _, d := range grid.Directions {
					n, ok := m1.Grid().Neighbor(c, d)
					if !ok {
						continue
					}
					if m1.IsLinked(c, n) != m2.IsLinked(c, n) {
						same = false
					}
					if m1.IsLinked(c, n) != m3.IsLinked(c, n) {
						diff = true
					}
				}
			}
			assert.True(t, same, "same seed must reproduce the maze")
			assert.True(t, diff, "different seeds should diverge on a 6×9 grid")
		})
	}
}

// TestCarve_TopRowCorridor verifies both algorithms' fixed invariant:
// the north/east bias leaves the top row one unbroken east corridor.
func TestCarve_TopRowCorridor(t *testing.T) {
	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			m := carveFresh(t, method, 5, 8, 99)
			for col := 0; col < 7; col++ {
				a := grid.Cell{Row: 0, Col: col}
				b := grid.Cell{Row: 0, Col: col + 1}
				assert.True(t, m.IsLinked(a, b), "top row gap between %v and %v", a, b)
			}
		})
	}
}

// TestBinaryTree_EastColumnCorridor verifies Binary-Tree's second fixed
// corridor: the east column can only link north.
func TestBinaryTree_EastColumnCorridor(t *testing.T) {
	m := carveFresh(t, carve.MethodBinaryTree, 6, 4, 7)
	for row := 0; row < 5; row++ {
		a := grid.Cell{Row: row, Col: 3}
		b := grid.Cell{Row: row + 1, Col: 3}
		assert.True(t, m.IsLinked(a, b), "east column gap between %v and %v", a, b)
	}
}

// TestSidewinder_RowsAttachNorth verifies every row below the top holds
// at least one north link (each run closes with one).
func TestSidewinder_RowsAttachNorth(t *testing.T) {
	m := carveFresh(t, carve.MethodSidewinder, 6, 6, 5)
	for row := 1; row < 6; row++ {
		attached := false
		for col := 0; col < 6; col++ {
			a := grid.Cell{Row: row, Col: col}
			b := grid.Cell{Row: row - 1, Col: col}
			if m.IsLinked(a, b) {
				attached = true

				break
			}
		}
		assert.True(t, attached, "row %d has no north link", row)
	}
}

// TestCarve_Guards covers the shared precondition errors and dispatch.
func TestCarve_Guards(t *testing.T) {
	assert.ErrorIs(t, carve.Carve(nil), carve.ErrNilMaze)
	assert.ErrorIs(t, carve.BinaryTree(nil, nil), carve.ErrNilMaze)
	assert.ErrorIs(t, carve.Sidewinder(nil, nil), carve.ErrNilMaze)

	m, err := maze.New(3, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, carve.Carve(m, carve.WithMethod("wilson")), carve.ErrUnknownMethod)

	require.NoError(t, carve.Carve(m))
	assert.ErrorIs(t, carve.Carve(m), carve.ErrNotEmpty, "carving twice must be rejected")
}

// TestWithRand_NilPanics pins the fail-fast option contract.
func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { carve.WithRand(nil) })
}

// TestCarve_WithRand verifies an injected RNG is honored verbatim.
func TestCarve_WithRand(t *testing.T) {
	m1, err := maze.New(4, 4)
	require.NoError(t, err)
	require.NoError(t, carve.Carve(m1,
		carve.WithMethod(carve.MethodSidewinder),
		carve.WithRand(rand.New(rand.NewSource(77)))))

	m2, err := maze.New(4, 4)
	require.NoError(t, err)
	require.NoError(t, carve.Carve(m2,
		carve.WithMethod(carve.MethodSidewinder),
		carve.WithSeed(77)))

	for _, c := range m1.Cells() {
		for _, d := range grid.Directions {
			n, ok := m1.Grid().Neighbor(c, d)
			if !ok {
				continue
			}
			assert.Equal(t, m1.IsLinked(c, n), m2.IsLinked(c, n),
				"WithRand(source 77) and WithSeed(77) must agree at %v→%v", c, n)
		}
	}
}
