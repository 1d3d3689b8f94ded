// Package core: type declarations, sentinel errors, and the Graph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge from a vertex to itself was attempted.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge with the same (from, to) pair
	// was attempted; parallel edges are not supported.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")
)

// DefaultWeight is the weight assigned to an edge when no WithWeight
// option is supplied to AddEdge.
const DefaultWeight = 1.0

// Edge is a directed, weighted connection to a target vertex.
// The source is implicit: edges live in their source vertex's outgoing
// sequence.
type Edge struct {
	// To is the target vertex ID.
	To string

	// Weight is the cost of the edge. Any real value is stored; algorithms
	// that assume non-negativity (Dijkstra) validate it themselves.
	Weight float64
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithWeight overrides the default weight (DefaultWeight) for this edge.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// Graph is the core in-memory directed weighted graph.
//
// out holds each vertex's outgoing edges in insertion order; membership of
// a key in out is what defines vertex existence. index mirrors out as a
// nested set for O(1) duplicate-edge detection, and inDeg counts incoming
// edges so degree queries avoid an O(E) scan.
type Graph struct {
	mu sync.RWMutex // guards all fields below

	out       map[string][]Edge              // vertex ID → ordered outgoing edges
	index     map[string]map[string]struct{} // from → set of to
	inDeg     map[string]int                 // vertex ID → incoming edge count
	edgeCount int
}

// New creates an empty Graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		out:   make(map[string][]Edge),
		index: make(map[string]map[string]struct{}),
		inDeg: make(map[string]int),
	}
}
