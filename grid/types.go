// Package grid defines the core coordinate types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/mazegrid.
package grid

import (
	"errors"
	"fmt"
)

// ErrBadDimensions indicates a grid was requested with a non-positive
// number of rows or columns.
var ErrBadDimensions = errors.New("grid: rows and columns must be positive")

// Direction identifies one of the four orthogonal moves on the lattice.
// Only the four declared constants exist; code never validates a Direction
// at runtime — fabricating other values is a programming error.
type Direction uint8

const (
	// North moves one row up (row−1).
	North Direction = iota
	// East moves one column right (column+1).
	East
	// South moves one row down (row+1).
	South
	// West moves one column left (column−1).
	West
)

// Directions lists the four directions in canonical scan order:
// North, East, South, West. This ordering is the contract for every
// neighbor enumeration in the module.
var Directions = []Direction{North, East, South, West}

// Delta returns the (row, column) offset of one step along d.
// Complexity: O(1).
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default: // West
		return 0, -1
	}
}

// Opposite returns the reverse direction: North↔South, East↔West.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default: // West
		return East
	}
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default: // West
		return "west"
	}
}

// Cell is a zero-based (row, column) coordinate on the lattice.
// Cells are pure values: equality is structural, and they travel by value
// everywhere — no Cell owns or references another.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)" for error messages and labels.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
