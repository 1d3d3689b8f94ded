// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path depths, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start
//     vertex, following edge direction only.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Result.PathTo reconstructs the parent-chain to any reached vertex;
//     an unreached destination yields a nil path, not an error.
//   - WithDestination stops the walk early once the destination is dequeued.
//     Frontier entries already enqueued keep their Depth, but anything
//     beyond that point stays unexplored — Depth may be incomplete when a
//     destination is given. This mirrors the early-break the library has
//     always had; callers needing complete levels run BFS without a
//     destination.
//
// Determinism
//
//	core.OutEdges returns edges in insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible:
//	ties within a frontier resolve by edge insertion order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Options
//
//   - WithDestination(id): stop once id is dequeued.
//   - WithContext(ctx):    cancellation.
//   - WithMaxDepth(d):     stop exploring beyond depth d (>0); 0 = no limit.
//   - WithOnVisit(fn):     hook during visit; returning an error aborts BFS.
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartVertexNotFound if the start vertex does not exist.
//   - ErrOptionViolation     for invalid options (negative MaxDepth,
//     empty destination).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
