// Package interactome is an in-memory toolkit for building and analyzing
// directed, weighted interaction networks.
//
// What is interactome?
//
//	A small, focused library that brings together:
//		• Core primitives: a directed weighted Graph with insertion-ordered
//		  adjacency, safe to mutate under locks
//		• Traversal: BFS with level maps, parent links and early destination stop
//		• Shortest paths: Dijkstra with lazy decrease-key and fail-fast
//		  negative-weight detection
//		• Ordering: topological sort over the whole vertex set (iterative DFS)
//		• Enumeration: exhaustive simple-path listing between two vertices
//		• Structure checks: degree-sequence feasibility for digraphs
//		• Centrality: directed betweenness via Brandes' algorithm
//
// Why interactome?
//
//   - Strict boundary between algorithms and presentation: every analysis
//     returns pure data (paths, levels, scores) that any consumer can map
//     to its own output
//   - Explicit graph ownership — construct a core.Graph and pass the handle;
//     no package-level state
//   - Clear error taxonomy — construction failures are sentinel errors,
//     unreachable destinations are empty paths, not errors
//
// Packages:
//
//	core/       — Graph, Edge, construction and queries
//	bfs/        — breadth-first traversal
//	dijkstra/   — single-source shortest path
//	dfs/        — topological sort and simple-path enumeration
//	centrality/ — directed betweenness centrality
//	degseq/     — degree-sequence feasibility
//	dataset/    — YAML seed data: edge triples and lookup tables
//	cmd/        — the interactome command-line consumer
//
// Quick ASCII example:
//
//	    A──▶B
//	    │   │
//	    ▼   ▼
//	    C──▶D
//
//	a diamond with four vertices and four directed edges; AllSimplePaths
//	from A to D finds A▶B▶D and A▶C▶D.
//
//	go get github.com/proteinpaths/interactome
package interactome
