// Package dfs: options, sentinel errors, and visitation states.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Vertex visitation states for the three-color DFS.
const (
	White = iota // not visited yet
	Gray         // on the explicit stack (visiting)
	Black        // vertex and all descendants fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates that a named endpoint does not exist.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of the dfs analyses.
type Option func(*Options)

// Options holds configurable parameters shared by TopologicalSort and
// AllSimplePaths.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxPaths, if > 0, caps how many paths AllSimplePaths collects.
	// 0 means unlimited. Ignored by TopologicalSort.
	MaxPaths int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no path cap.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. Passing nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths caps the number of paths AllSimplePaths returns.
//
//	n > 0:  collect at most n paths
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}
