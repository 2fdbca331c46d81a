// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Link and IsLinked
////////////////////////////////////////////////////////////////////////////////

// ExampleMaze_Link carves one passage on a 2×2 maze and shows that a
// single Link call opens it from both sides, while the diagonal pair
// stays rejectable.
//
// Complexity: O(1) per Link/IsLinked.
func ExampleMaze_Link() {
	m, _ := maze.New(2, 2)

	a := grid.Cell{Row: 0, Col: 0}
	b := grid.Cell{Row: 0, Col: 1}
	_ = m.Link(a, b)
	fmt.Println("a-b linked:", m.IsLinked(a, b))
	fmt.Println("b-a linked:", m.IsLinked(b, a))

	diag := grid.Cell{Row: 1, Col: 1}
	if err := m.Link(a, diag); err != nil {
		fmt.Println("diagonal:", err)
	}

	// Output:
	// a-b linked: true
	// b-a linked: true
	// diagonal: maze: cells are not neighbors: (0,0) and (1,1)
}

////////////////////////////////////////////////////////////////////////////////
// Example: renderer read surface
////////////////////////////////////////////////////////////////////////////////

// ExampleMaze_walls derives wall presence the way an external renderer
// does: a missing neighbor is an outer boundary wall, an unlinked pair
// is an interior wall.
func ExampleMaze_walls() {
	m, _ := maze.New(1, 2)
	left := grid.Cell{Row: 0, Col: 0}
	right := grid.Cell{Row: 0, Col: 1}
	_ = m.Link(left, right)

	for _, d := range grid.Directions {
		n, ok := m.Grid().Neighbor(left, d)
		switch {
		case !ok:
			fmt.Printf("%v: boundary wall\n", d)
		case m.IsLinked(left, n):
			fmt.Printf("%v: open passage\n", d)
		default:
			fmt.Printf("%v: interior wall\n", d)
		}
	}

	// Output:
	// north: boundary wall
	// east: open passage
	// south: boundary wall
	// west: boundary wall
}
