package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proteinpaths/interactome/core"
	"github.com/proteinpaths/interactome/dfs"
)

func TestAllSimplePaths_Errors(t *testing.T) {
	_, err := dfs.AllSimplePaths(nil, "a", "b")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := core.New()
	require.NoError(t, g.AddVertex("a"))
	_, err = dfs.AllSimplePaths(g, "a", "ghost")
	assert.ErrorIs(t, err, dfs.ErrVertexNotFound)
	_, err = dfs.AllSimplePaths(g, "ghost", "a")
	assert.ErrorIs(t, err, dfs.ErrVertexNotFound)

	_, err = dfs.AllSimplePaths(g, "a", "a", dfs.WithMaxPaths(-1))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestAllSimplePaths_Diamond(t *testing.T) {
	// a→b, a→c, b→d, c→d: exactly two paths, order unspecified.
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "c"))
	require.NoError(t, g.AddEdge("b", "d"))
	require.NoError(t, g.AddEdge("c", "d"))

	paths, err := dfs.AllSimplePaths(g, "a", "d")
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]string{
		{"a", "b", "d"},
		{"a", "c", "d"},
	}, paths)
}

func TestAllSimplePaths_NoRoute(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddVertex("z"))

	paths, err := dfs.AllSimplePaths(g, "a", "z")
	require.NoError(t, err)
	assert.Empty(t, paths, "no path is an empty result, not an error")
}

func TestAllSimplePaths_SimpleOnly(t *testing.T) {
	// cycle a→b→c→a plus exit c→d: the cycle must not be re-entered
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("c", "a"))
	require.NoError(t, g.AddEdge("c", "d"))

	paths, err := dfs.AllSimplePaths(g, "a", "d")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c", "d"}}, paths)
}

func TestAllSimplePaths_MultipleBranches(t *testing.T) {
	// two middle vertices, a cross edge, and a direct edge: four routes
	g := core.New()
	for _, mid := range []string{"m1", "m2"} {
		require.NoError(t, g.AddEdge("s", mid))
		require.NoError(t, g.AddEdge(mid, "t"))
	}
	require.NoError(t, g.AddEdge("s", "t"))
	require.NoError(t, g.AddEdge("m1", "m2"))

	paths, err := dfs.AllSimplePaths(g, "s", "t")
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]string{
		{"s", "m1", "t"},
		{"s", "m1", "m2", "t"},
		{"s", "m2", "t"},
		{"s", "t"},
	}, paths)
}

func TestAllSimplePaths_StartEqualsEnd(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))

	paths, err := dfs.AllSimplePaths(g, "a", "a")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}}, paths)
}

func TestAllSimplePaths_MaxPathsCap(t *testing.T) {
	g := core.New()
	for _, mid := range []string{"m1", "m2", "m3", "m4"} {
		require.NoError(t, g.AddEdge("s", mid))
		require.NoError(t, g.AddEdge(mid, "t"))
	}

	paths, err := dfs.AllSimplePaths(g, "s", "t", dfs.WithMaxPaths(2))
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestAllSimplePaths_ContextCancelled(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.AllSimplePaths(g, "a", "b", dfs.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}
