// Package core: Graph construction and query methods.
//
// All operations take the single RWMutex declared in types.go; construction
// failures leave the graph unmodified (no partial mutation).
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// If the vertex already exists, this is a no-op (idempotent).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[id]

	return ok
}

// AddEdge appends a directed edge from → to with the default weight 1
// (override via WithWeight). Both endpoints are auto-created when missing.
//
// Returns ErrEmptyVertexID for empty endpoint IDs, ErrSelfLoop when
// from == to, and ErrDuplicateEdge when a from → to edge already exists.
// On any failure the graph is left unmodified; in particular the endpoints
// are not created.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) error {
	// 1) Input validation before any mutation.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Duplicate check precedes endpoint creation so a rejected edge
	//    cannot leave behind fresh vertices.
	if _, dup := g.index[from][to]; dup {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
	}

	// 3) Ensure both endpoints exist (idempotent).
	g.ensureVertex(from)
	g.ensureVertex(to)

	// 4) Construct the edge with the default weight and apply overrides.
	e := Edge{To: to, Weight: DefaultWeight}
	for _, opt := range opts {
		opt(&e)
	}

	// 5) Append to the source's ordered sequence and update indexes.
	g.out[from] = append(g.out[from], e)
	g.index[from][to] = struct{}{}
	g.inDeg[to]++
	g.edgeCount++

	return nil
}

// HasEdge reports whether an edge from → to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[from][to]

	return ok
}

// ClearEdges removes every outgoing edge of the given vertex, keeping the
// vertex itself. This is the only deletion primitive: callers that bulk-load
// edges and later reject the addition use it to roll the vertex back.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph) ClearEdges(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	edges, ok := g.out[id]
	if !ok {
		return ErrVertexNotFound
	}
	// Unwind the incoming-degree index before dropping the sequence.
	for _, e := range edges {
		g.inDeg[e.To]--
	}
	g.edgeCount -= len(edges)
	g.out[id] = nil
	g.index[id] = make(map[string]struct{})

	return nil
}

// OutEdges returns a copy of the vertex's outgoing edges in insertion order.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph) OutEdges(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, ok := g.out[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	cp := make([]Edge, len(edges))
	copy(cp, edges)

	return cp, nil
}

// OutDegree returns the number of outgoing edges of id.
// Complexity: O(1).
func (g *Graph) OutDegree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, ok := g.out[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(edges), nil
}

// InDegree returns the number of incoming edges of id.
// Complexity: O(1).
func (g *Graph) InDegree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.out[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return g.inDeg[id], nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Algorithms rely on this as a stable enumeration surface.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.out))
	for id := range g.out {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the total number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out)
}

// EdgeCount returns the total number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// ensureVertex registers id when missing. Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.out[id]; ok {
		return
	}
	g.out[id] = nil // key presence defines existence; sequence starts empty
	g.index[id] = make(map[string]struct{})
}
