// Package centrality: Brandes' algorithm for directed graphs.
package centrality

import (
	"fmt"

	"github.com/proteinpaths/interactome/core"
)

// Betweenness computes directed betweenness centrality for every vertex of
// g. The returned map contains an entry for each vertex, zero included.
//
// Scores are raw by default (each ordered source/target pair contributes
// once); pass WithNormalized for the (n-1)(n-2) division.
//
// Complexity: O(V·(V + E)) time.
func Betweenness(g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	verts := g.Vertices()
	n := len(verts)

	// Snapshot adjacency once: neighbor IDs per vertex, out-edge order.
	adj := make(map[string][]string, n)
	for _, v := range verts {
		edges, err := g.OutEdges(v)
		if err != nil {
			return nil, fmt.Errorf("centrality: out-edges of %q: %w", v, err)
		}
		ids := make([]string, len(edges))
		for i, e := range edges {
			ids[i] = e.To
		}
		adj[v] = ids
	}

	cb := make(map[string]float64, n)
	for _, v := range verts {
		cb[v] = 0
	}

	for _, s := range verts {
		// cancellation check between source phases
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		stack, sigma, pred := countShortestPaths(adj, s, n)
		accumulate(s, stack, sigma, pred, cb)
	}

	if o.Normalized && n >= 3 {
		norm := float64((n - 1) * (n - 2))
		for v := range cb {
			cb[v] /= norm
		}
	}

	return cb, nil
}

// countShortestPaths runs the BFS phase of Brandes' algorithm from source s:
// it returns the visit stack (BFS finish order, for reverse back-propagation),
// shortest-path counts (sigma), and predecessor sets on shortest paths.
func countShortestPaths(adj map[string][]string, s string, n int) ([]string, map[string]float64, map[string][]string) {
	stack := make([]string, 0, n)
	sigma := map[string]float64{s: 1}
	pred := make(map[string][]string, n)
	dist := map[string]int{s: 0}

	queue := []string{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)

		for _, w := range adj[v] {
			if _, seen := dist[w]; !seen {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				pred[w] = append(pred[w], v)
			}
		}
	}

	return stack, sigma, pred
}

// accumulate performs the back-propagation phase: walking the stack in
// reverse, each vertex hands its dependency share back to its predecessors,
// and every non-source vertex adds its delta to the global score.
func accumulate(s string, stack []string, sigma map[string]float64, pred map[string][]string, cb map[string]float64) {
	delta := make(map[string]float64, len(stack))

	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range pred[w] {
			delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
		}
		if w != s {
			cb[w] += delta[w]
		}
	}
}
