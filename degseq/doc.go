// Package degseq checks whether a directed graph's degree sequence is
// feasible, in the spirit of the Erdős–Gallai / Havel–Hakimi conditions
// adapted to digraphs.
//
// What
//
//	Valid inspects the in/out-degree sequence of a core.Graph and reports
//	whether it could belong to a well-formed simple digraph:
//
//	 1. The sum of out-degrees equals the sum of in-degrees.
//	 2. Every degree lies in [0, n), n being the vertex count.
//	 3. For every k in [1, n], the top-k out-degrees (sorted descending)
//	    sum to at most Σ min(k, in(v)) over all vertices v.
//
// This is a structural sanity check on the sequence alone, not a proof
// that a specific edge set is realizable.
//
// Complexity: O(V log V + V²) time, O(V) memory.
package degseq
