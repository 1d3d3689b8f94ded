// Package dataset loads seed interaction data from YAML and populates a
// core.Graph from it.
//
// A dataset carries three sections: the edge list (source, target,
// optional weight), a drug→target lookup, and a target→destination
// lookup. The lookup tables are opaque key-value data for the consuming
// application; only the edge list feeds the graph.
//
//	edges:
//	  - from: aspirin
//	    to: cox1
//	  - from: cox1
//	    to: prostaglandin
//	    weight: 2.5
//	drug_targets:
//	  aspirin: cox1
//	target_destinations:
//	  cox1: prostaglandin
//
// Errors
//
//   - ErrNoEdges if the decoded dataset has an empty edge list.
//   - ErrEmptyEndpoint if an edge omits its source or target.
//   - Build propagates core construction errors unchanged; retry policy
//     belongs to the caller.
package dataset
