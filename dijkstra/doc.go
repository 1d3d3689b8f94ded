// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// directed weighted core.Graph.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices, assuming non-negative edge weights. Vertices are
// processed in order of increasing tentative distance using a min-heap
// priority queue with a lazy decrease-key strategy: improvements push
// duplicate entries, stale entries are skipped when popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted from the heap at most once.
//   - Each edge relaxation may push one entry into the heap.
//   - Space: O(V + E) (distance/predecessor maps plus heap entries).
//
// Negative weights
//
//	The core data model stores arbitrary real weights, but Dijkstra's
//	correctness assumes non-negativity. Rather than silently producing
//	non-shortest results, an upfront O(E) scan fails fast with
//	ErrNegativeWeight when any negative weight is present.
//
// Options
//
//   - Source(id):      starting vertex (required, must exist).
//   - Target(id):      stop once id is settled; Path/PathTo give the route.
//   - WithContext(ctx): cancellation.
//
// Errors
//
//   - ErrEmptySource    if no Source was supplied.
//   - ErrGraphNil       if the graph pointer is nil.
//   - ErrVertexNotFound if the source vertex does not exist.
//   - ErrNegativeWeight if a negative edge weight is detected.
//
// An unreachable target is not an error: Result.PathTo returns nil and the
// Path convenience wrapper returns an empty slice.
package dijkstra
