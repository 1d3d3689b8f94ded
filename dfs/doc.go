// Package dfs provides depth-first analyses on a directed core.Graph:
// topological ordering and exhaustive simple-path enumeration.
//
// TopologicalSort
//
//	Computes a linear ordering of the whole vertex set (covering
//	disconnected components) such that for every edge u→v, u appears
//	before v. The traversal is an iterative three-color DFS over an
//	explicit frame stack — recursion depth never bounds graph size.
//	A back-edge (Gray hit) aborts with ErrCycleDetected rather than
//	returning an order that is not topological.
//
//	Complexity: O(V + E) time, O(V) memory.
//
// AllSimplePaths
//
//	Enumerates every simple path (no repeated vertex) between two
//	vertices: depth-first descent with a shared visited set and a path
//	stack, snapshotting the path each time the end vertex is reached,
//	then backtracking before exploring alternatives. Worst case is
//	exponential in V; callers bound input size, or cap the result with
//	WithMaxPaths.
//
// Errors
//
//   - ErrGraphNil       if the graph pointer is nil.
//   - ErrVertexNotFound if a named endpoint does not exist.
//   - ErrCycleDetected  if TopologicalSort meets a back-edge.
//   - ErrOptionViolation for invalid options (negative WithMaxPaths).
package dfs
