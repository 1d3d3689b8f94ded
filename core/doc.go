// Package core provides the central Graph and Edge types for directed,
// weighted interaction networks, together with primitives for building
// and querying them.
//
// What
//
//   - Graph: a mapping from vertex ID (string) to an insertion-ordered
//     sequence of outgoing edges.
//   - Edge: a directed connection to a target vertex with a float64 weight
//     (default 1; any real value is stored).
//   - Construction: AddVertex (idempotent), AddEdge (auto-creates both
//     endpoints, rejects self-loops and duplicate edges, leaves the graph
//     unmodified on failure), ClearEdges (drop a vertex's outgoing sequence).
//   - Queries: HasVertex, HasEdge, OutEdges, OutDegree, InDegree,
//     Vertices, VertexCount, EdgeCount.
//
// Determinism
//
//	OutEdges preserves edge insertion order, which fixes tie-breaking in
//	traversals. Vertices returns IDs sorted lexicographically ascending,
//	a stable enumeration surface for the algorithm packages.
//
// Concurrency
//
//	All methods are guarded by a single RWMutex, so incremental mutation is
//	safe across goroutines. The analysis packages read the graph through
//	snapshot queries and assume the topology does not change during a call.
//
// Errors
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrSelfLoop       - edge from a vertex to itself.
//	ErrDuplicateEdge  - a (from, to) edge already exists.
package core
