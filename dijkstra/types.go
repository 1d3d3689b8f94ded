// Package dijkstra: options, sentinel errors, and the Result type.
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source vertex ID was supplied.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrGraphNil indicates that a nil *core.Graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	// Source is the starting vertex ID; required.
	Source string

	// Target, if non-empty, stops the search once that vertex is settled.
	// A missing or unreachable target is not an error.
	Target string

	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be supplied.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target stops the search early once id is settled.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options with a background context and no target.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Result holds the outcome of a Dijkstra run:
//   - Dist: map from vertex ID to minimum distance (math.Inf(1) if unreached).
//   - Prev: map from vertex ID to its predecessor on a shortest path
//     ("" for the source and for unreached vertices).
type Result struct {
	Dist map[string]float64
	Prev map[string]string
}

// Reached reports whether dest was settled or discovered with a finite
// distance.
func (r *Result) Reached(dest string) bool {
	d, ok := r.Dist[dest]

	return ok && !math.IsInf(d, 1)
}

// PathTo reconstructs the shortest path from the source to dest.
// Returns nil when dest is unreachable; an empty path is the signal callers
// check, not an error.
func (r *Result) PathTo(dest string) []string {
	if !r.Reached(dest) {
		return nil
	}
	path := []string{}
	for cur := dest; cur != ""; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
