// Package dfs: exhaustive simple-path enumeration with backtracking.
package dfs

import (
	"fmt"

	"github.com/proteinpaths/interactome/core"
)

// enumerator encapsulates state for one AllSimplePaths run.
type enumerator struct {
	graph   *core.Graph
	opts    Options
	end     string
	visited map[string]bool
	path    []string
	stack   []frame
	paths   [][]string
}

// AllSimplePaths enumerates every simple path (no repeated vertex) from
// `from` to `to`, following edge direction. Each time the end vertex is
// reached a snapshot of the current path joins the result, then the walk
// backtracks (un-visiting) before exploring alternatives.
//
// The worst case is exponential in V; this is acceptable for the small
// networks the library targets. Bound larger inputs yourself, or cap the
// result count with WithMaxPaths.
//
// Returns ErrGraphNil for a nil graph and ErrVertexNotFound when either
// endpoint is absent. No path found is not an error: the result is empty.
func AllSimplePaths(g *core.Graph, from, to string, opts ...Option) ([][]string, error) {
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
	if !g.HasVertex(from) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	e := &enumerator{
		graph:   g,
		opts:    o,
		end:     to,
		visited: make(map[string]bool, g.VertexCount()),
		paths:   [][]string{},
	}
	if err := e.run(from); err != nil {
		return nil, err
	}

	return e.paths, nil
}

// run drives the explicit-stack DFS with backtracking.
func (e *enumerator) run(start string) error {
	if err := e.push(start); err != nil {
		return err
	}
	for len(e.stack) > 0 {
		// cancellation check (once per step)
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}

		f := &e.stack[len(e.stack)-1]

		// The end vertex is never expanded: its frame exists only so the
		// shared pop handles the backtrack uniformly.
		if f.id == e.end {
			e.pop()
			continue
		}

		advanced := false
		for f.next < len(f.edges) {
			nb := f.edges[f.next].To
			f.next++
			if e.visited[nb] {
				continue
			}
			if err := e.push(nb); err != nil {
				return err
			}
			if nb == e.end {
				e.snapshot()
				if e.opts.MaxPaths > 0 && len(e.paths) >= e.opts.MaxPaths {
					return nil
				}
			}
			advanced = true
			break
		}
		if !advanced {
			e.pop()
		}
	}

	return nil
}

// push visits id: marks it, extends the path, and stacks its frame.
func (e *enumerator) push(id string) error {
	edges, err := e.graph.OutEdges(id)
	if err != nil {
		return fmt.Errorf("dfs: out-edges of %q: %w", id, err)
	}
	e.visited[id] = true
	e.path = append(e.path, id)
	e.stack = append(e.stack, frame{id: id, edges: edges})
	if id == e.end && len(e.path) == 1 {
		// degenerate from == to: the single-vertex path
		e.snapshot()
	}

	return nil
}

// pop backtracks: un-visits the top vertex and shrinks the path.
func (e *enumerator) pop() {
	top := e.stack[len(e.stack)-1]
	e.visited[top.id] = false
	e.path = e.path[:len(e.path)-1]
	e.stack = e.stack[:len(e.stack)-1]
}

// snapshot copies the current path into the result set.
func (e *enumerator) snapshot() {
	cp := make([]string, len(e.path))
	copy(cp, e.path)
	e.paths = append(e.paths, cp)
}
