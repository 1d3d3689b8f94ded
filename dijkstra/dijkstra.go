// Package dijkstra: the algorithm runner and its priority queue.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/proteinpaths/interactome/core"
)

// Dijkstra computes shortest distances from Options.Source to all vertices
// of the directed weighted graph g, stopping early when a Target is settled.
//
// Validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrGraphNil).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge may carry a negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs. Source precedes the nil-graph check so that a
	//    missing Source is reported regardless of the graph argument.
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	vertices := g.Vertices()

	// 3) Pre-scan all edges to detect negative weights and fail fast.
	for _, u := range vertices {
		edges, err := g.OutEdges(u)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: out-edges of %q: %w", u, err)
		}
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	// 4) Initialize runner state and run the main loop.
	n := len(vertices)
	r := &runner{
		g:       g,
		opts:    cfg,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Dist: r.dist, Prev: r.prev}, nil
}

// Path is a convenience wrapper: the shortest route from → to as a sequence
// of vertex IDs, or an empty slice when to is unreachable (including when it
// does not exist at all). Callers treat the empty path as "not found".
func Path(g *core.Graph, from, to string) ([]string, error) {
	res, err := Dijkstra(g, Source(from), Target(to))
	if err != nil {
		return nil, err
	}
	if p := res.PathTo(to); p != nil {
		return p, nil
	}

	return []string{}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	opts    Options
	dist    map[string]float64 // vertex ID → current best distance from Source
	prev    map[string]string  // vertex ID → predecessor on the shortest path
	visited map[string]bool    // distance finalized?
	pq      nodePQ             // lazy min-heap of (id, dist)
}

// init seeds distances at +Inf, the source at 0, and pushes the source.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.opts.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.opts.Source, dist: 0})
}

// process repeatedly extracts the unsettled vertex with minimum tentative
// distance and relaxes its outgoing edges. Terminates when the heap drains
// or the target is settled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// cancellation check (once per extraction)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries (lazy decrease-key).
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		// Early exit: the target's distance is final once extracted.
		if r.opts.Target != "" && u == r.opts.Target {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve distances along each outgoing edge of u.
// Assumes dist[u] is finalized.
func (r *runner) relax(u string) error {
	edges, err := r.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: out-edges of %q: %w", u, err)
	}
	for _, e := range edges {
		alt := r.dist[u] + e.Weight
		// Update only on strict improvement to avoid duplicate pushes on ties.
		if alt >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = alt
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: alt})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Improvements
// push new entries; outdated ones are ignored when popped (visited check).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
