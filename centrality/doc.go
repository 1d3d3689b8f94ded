// Package centrality computes directed betweenness centrality on a
// core.Graph using Brandes' algorithm.
//
// What
//
//	For each source vertex s, a breadth-first phase following edge
//	direction records shortest-path counts (sigma) and predecessor sets on
//	shortest paths; a back-propagation phase then walks the BFS finish
//	order in reverse, accumulating dependency scores (delta) into every
//	non-source vertex. The final score of w is the sum over all sources of
//	w's dependency contributions.
//
// Scores are raw directed Brandes scores: each ordered pair contributes
// once and nothing is divided out. WithNormalized opts into the
// (n-1)(n-2) directed normalization when comparable [0,1] values are
// wanted.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V·(V + E)) for unweighted digraphs
//   - Memory: O(V + E) per source phase
//
// Errors
//
//   - ErrGraphNil if the graph pointer is nil.
package centrality
