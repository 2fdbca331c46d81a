// Package mazegrid is your in-memory playground for carving, exploring,
// and solving grid mazes — from lattice primitives to spanning-tree
// generators and shortest-path labeling.
//
// 🚀 What is mazegrid?
//
//	A small, thread-safe, zero-dependency library that brings together:
//		• Lattice primitives: cells, directions, bounds-checked neighbors
//		• Link graphs: symmetric passage flags, mutated safely under locks
//		• Generators: Binary-Tree, Sidewinder — provable spanning trees
//		• Distances: breadth-first edge-count labeling from any cell
//		• Paths: shortest-path and longest-path reconstruction
//
// ✨ Why choose mazegrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every carve yields a tree: cells−1 links,
//     full connectivity, a unique route between any two cells
//   - Pure Go – no cgo, no hidden deps
//   - Reproducible – all randomness flows through an injected, seedable
//     *rand.Rand; same seed, same maze, on every platform
//
// Under the hood, everything is organized into four subpackages:
//
//	grid/     — Cell, Direction, and the immutable rectangular Grid
//	maze/     — the Maze link graph: Link, IsLinked, LinkedNeighbors
//	carve/    — Binary-Tree & Sidewinder spanning-tree generators
//	distance/ — BFS DistanceMap, ShortestPath, LongestPath
//
// Quick ASCII example:
//
//	+---+---+---+
//	|           |
//	+---+   +   +
//	|       |   |
//	+---+---+---+
//
//	a 3×2 maze: every cell reachable, no cycles, one path per cell pair.
//
// A maze is carved in one pipeline: build a Maze, hand it to a generator,
// then feed the result to the distance engine and path reconstructor.
// Renderers stay external — they only need Rows, Columns, Cells, wall
// presence (a missing neighbor or an unlinked pair), and an optional
// cell→label overlay such as a DistanceMap.
//
//	go get github.com/katalvlaran/mazegrid
package mazegrid
