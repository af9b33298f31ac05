// Package pathfind builds the implicit 4-connected floor graph of a grid.Grid
// and finds unweighted shortest paths over it with breadth-first search.
//
// What
//
//   - BuildGraph: vertex id = row*width + col; each floor cell links to its
//     floor neighbors in West, East, North, South order; walls have no edges.
//   - FindPath: BFS from start, parent/distance tracking, path reconstruction
//     into a fresh overlay grid (OnPath/OffPath) plus the ordered cell list.
//     Length counts both endpoints: distance(end) + 1.
//   - Analyze: floor count, edge count and components, reporting whether the
//     floor cells form a perfect maze (a single tree).
//
// Determinism
//
//	Ties between equally short paths are broken by the fixed neighbor order
//	(West, East, North, South): the first path discovered wins.
//
// Graph lifetime
//
//	FindPath builds its graph on every call. Nothing is cached between calls,
//	so no invalidation is ever needed.
//
// Errors
//
//   - ErrNilGrid         if the grid pointer is nil.
//   - ErrOutOfBounds     if start or end lies outside the grid (never clamped here).
//   - ErrNotReachable    if end is not reachable from start; also wraps the case of
//     start or end sitting on a wall cell.
//   - ErrOptionViolation for invalid options (e.g. negative MaxDepth).
//   - context errors and wrapped OnVisit hook errors.
//
// Complexity: O(W×H) time and memory for BuildGraph, FindPath and Analyze.
package pathfind
