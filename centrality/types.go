// Package centrality: options and sentinel errors.
package centrality

import (
	"context"
	"errors"
)

// ErrGraphNil is returned when a nil *core.Graph is passed.
var ErrGraphNil = errors.New("centrality: graph is nil")

// Option configures optional behavior of Betweenness.
type Option func(*Options)

// Options holds configurable parameters for a Betweenness run.
type Options struct {
	// Ctx allows cancellation between source phases.
	Ctx context.Context

	// Normalized divides every score by (n-1)(n-2) when n ≥ 3, mapping
	// scores into [0, 1]. Off by default: raw directed Brandes scores.
	Normalized bool
}

// DefaultOptions returns Options with a background context and raw scores.
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

// WithNormalized divides scores by the directed-graph factor (n-1)(n-2).
func WithNormalized() Option {
	return func(o *Options) { o.Normalized = true }
}
