// Package dfs: topological ordering via iterative three-color DFS.
package dfs

import (
	"fmt"

	"github.com/proteinpaths/interactome/core"
)

// frame is one entry of the explicit DFS stack: a vertex, its out-edges
// fetched once, and a cursor into them.
type frame struct {
	id    string
	edges []core.Edge
	next  int
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  Options
	state map[string]int // White/Gray/Black
	order []string       // post-order sequence
	stack []frame
}

// TopologicalSort computes a topological ordering of all vertices in g,
// iterating the sorted vertex set so disconnected components are covered.
// Vertices are pushed to the result after all descendants finish, and the
// reversed post-order is returned.
//
// Returns ErrGraphNil for a nil graph and ErrCycleDetected when a back-edge
// shows the graph is not acyclic. Pass WithContext(ctx) for cancellation.
//
// Complexity: O(V + E) time, O(V) memory; the explicit frame stack keeps
// recursion depth independent of graph size.
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	verts := g.Vertices()
	s := &topoSorter{
		graph: g,
		opts:  o,
		state: make(map[string]int, len(verts)), // all start White (0)
		order: make([]string, 0, len(verts)),
	}

	// Drive DFS from every unvisited vertex.
	for _, v := range verts {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order to produce the topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit explores the DFS tree rooted at id using the explicit stack,
// marking states and detecting back-edges.
func (t *topoSorter) visit(id string) error {
	if err := t.push(id); err != nil {
		return err
	}
	for len(t.stack) > 0 {
		// cancellation check (once per step)
		select {
		case <-t.opts.Ctx.Done():
			return t.opts.Ctx.Err()
		default:
		}

		f := &t.stack[len(t.stack)-1]
		if f.next < len(f.edges) {
			nb := f.edges[f.next].To
			f.next++
			switch t.state[nb] {
			case Gray:
				// back-edge: the graph is not acyclic
				return fmt.Errorf("%w: at %s→%s", ErrCycleDetected, f.id, nb)
			case White:
				if err := t.push(nb); err != nil {
					return err
				}
			}
			// Black descendants are already finished; skip.
			continue
		}
		// All descendants explored: finish the vertex.
		t.state[f.id] = Black
		t.order = append(t.order, f.id)
		t.stack = t.stack[:len(t.stack)-1]
	}

	return nil
}

// push marks id Gray and stacks a frame with its out-edges fetched once.
func (t *topoSorter) push(id string) error {
	edges, err := t.graph.OutEdges(id)
	if err != nil {
		return fmt.Errorf("dfs: out-edges of %q: %w", id, err)
	}
	t.state[id] = Gray
	t.stack = append(t.stack, frame{id: id, edges: edges})

	return nil
}
