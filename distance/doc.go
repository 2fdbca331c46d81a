// Package distance labels a maze with breadth-first shortest-path
// distances and reconstructs paths from them.
//
// What
//
//   - Distances(m, source) explores cells in non-decreasing edge count
//     from a source cell and returns a DistanceMap containing, per
//     reached cell, its distance, plus the BFS visit order.
//   - ShortestPath(m, from, to) computes Distances(m, from) and walks
//     backward from the target, at each step stepping to the linked
//     neighbor whose distance is strictly smaller — on a spanning tree
//     that neighbor exists and is unique, so the walk cannot branch or
//     stall. The result is a PathMap: the cells of one shortest path,
//     each with its distance, ordered from→to.
//   - LongestPath(m) finds a maze diameter path by double BFS: farthest
//     cell from an arbitrary start, then farthest cell from that one,
//     then the path between them.
//
// Why
//
//   - Edge-count distances are a maze's native metric: every passage
//     costs one step. On the spanning trees the generators guarantee,
//     the labeling is total and the shortest path unique.
//   - A DistanceMap or PathMap doubles as the cell→label overlay the
//     external renderer consumes.
//
// Determinism
//
//	LinkedNeighbors enumerates passages in fixed North, East, South,
//	West order and BFS enqueues them in that order, so visit sequences
//	are fully reproducible; Max() ties resolve to the first-visited cell.
//
// Complexity (N = rows×cols)
//
//   - Distances: O(N) time, O(N) memory (map doubles as visited set).
//   - ShortestPath: O(N) time (one BFS + one backward walk).
//   - LongestPath: O(N) time (two BFS passes + one walk).
//
// Usage
//
//	dm, err := distance.Distances(m, grid.Cell{Row: 0, Col: 0})
//	pm, err := distance.ShortestPath(m, a, b)
//
// Options
//
//   - DefaultOptions(): no distance limit.
//   - WithMaxDistance(d): stop expanding beyond d edges (d>0);
//     d==0 means explicit "no limit"; d<0 is ErrOptionViolation.
//
// Errors
//
//   - ErrNilMaze:         a nil maze was passed.
//   - ErrCellNotFound:    the source/endpoint lies outside the grid.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrUnreachable:     ShortestPath target not reachable from the
//     source; the message names both endpoints. Unreached cells in a
//     plain Distances query are not an error — they are simply absent.
package distance
