package carve

import (
	"github.com/katalvlaran/mazegrid/maze"
)

// Carve selects and runs a generator based on the supplied Options.
//
//   - Method == MethodBinaryTree: calls BinaryTree(m, opts.Rand).
//   - Method == MethodSidewinder: calls Sidewinder(m, opts.Rand).
//   - Otherwise: returns ErrUnknownMethod.
//
// With no options this carves a Binary-Tree maze on the deterministic
// default stream. BinaryTree and Sidewinder can still be called directly.
// Complexity: O(rows×cols).
func Carve(m *maze.Maze, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodBinaryTree:
		return BinaryTree(m, o.Rand)
	case MethodSidewinder:
		return Sidewinder(m, o.Rand)
	default:
		return ErrUnknownMethod
	}
}

// validate applies the shared generator preconditions: a non-nil maze
// with no links carved yet.
func validate(m *maze.Maze) error {
	if m == nil {
		return ErrNilMaze
	}
	if m.LinkCount() > 0 {
		return ErrNotEmpty
	}

	return nil
}
