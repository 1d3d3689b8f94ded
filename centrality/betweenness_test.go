package centrality_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proteinpaths/interactome/centrality"
	"github.com/proteinpaths/interactome/core"
)

const eps = 1e-9

func TestBetweenness_NilGraph(t *testing.T) {
	_, err := centrality.Betweenness(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
}

func TestBetweenness_EmptyGraph(t *testing.T) {
	scores, err := centrality.Betweenness(core.New())
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestBetweenness_Chain(t *testing.T) {
	// a→b→c: b sits on the single a…c shortest path, endpoints score 0.
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))

	scores, err := centrality.Betweenness(g)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, scores["b"], eps)
	assert.InDelta(t, 0.0, scores["a"], eps)
	assert.InDelta(t, 0.0, scores["c"], eps)
}

func TestBetweenness_EveryVertexPresent(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddVertex("isolated"))

	scores, err := centrality.Betweenness(g)
	require.NoError(t, err)

	require.Len(t, scores, 3)
	v, ok := scores["isolated"]
	require.True(t, ok, "isolated vertices still get a score entry")
	assert.Zero(t, v)
}

func TestBetweenness_SplitShortestPaths(t *testing.T) {
	// Diamond s→{m1,m2}→t: each middle vertex carries half of the one
	// shortest-path pair.
	g := core.New()
	require.NoError(t, g.AddEdge("s", "m1"))
	require.NoError(t, g.AddEdge("s", "m2"))
	require.NoError(t, g.AddEdge("m1", "t"))
	require.NoError(t, g.AddEdge("m2", "t"))

	scores, err := centrality.Betweenness(g)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, scores["m1"], eps)
	assert.InDelta(t, 0.5, scores["m2"], eps)
	assert.InDelta(t, 0.0, scores["s"], eps)
	assert.InDelta(t, 0.0, scores["t"], eps)
}

func TestBetweenness_DirectedOnly(t *testing.T) {
	// b is between a and c only in the forward direction; the reverse pair
	// (c, a) has no path and must not contribute.
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))

	scores, err := centrality.Betweenness(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores["b"], eps)
}

func TestBetweenness_LongerChain(t *testing.T) {
	// a→b→c→d: b lies on (a,c),(a,d); c lies on (a,d),(b,d).
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("c", "d"))

	scores, err := centrality.Betweenness(g)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, scores["b"], eps)
	assert.InDelta(t, 2.0, scores["c"], eps)
	assert.InDelta(t, 0.0, scores["a"], eps)
	assert.InDelta(t, 0.0, scores["d"], eps)
}

func TestBetweenness_Normalized(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))

	scores, err := centrality.Betweenness(g, centrality.WithNormalized())
	require.NoError(t, err)

	// n=3: divisor (n-1)(n-2) = 2.
	assert.InDelta(t, 0.5, scores["b"], eps)
}

func TestBetweenness_NormalizedSkipsTinyGraphs(t *testing.T) {
	// n=2 would divide by zero; normalization must be a no-op.
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))

	scores, err := centrality.Betweenness(g, centrality.WithNormalized())
	require.NoError(t, err)
	for v, s := range scores {
		assert.Falsef(t, math.IsNaN(s) || math.IsInf(s, 0), "score of %q must be finite", v)
	}
}

func TestBetweenness_ContextCancelled(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := centrality.Betweenness(g, centrality.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}
