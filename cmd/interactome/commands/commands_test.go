package commands

import (
	"bytes"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proteinpaths/interactome/core"
)

// diamond builds a→{b,c}→d with a heavier direct a→d edge.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "c"))
	require.NoError(t, g.AddEdge("b", "d"))
	require.NoError(t, g.AddEdge("c", "d"))
	require.NoError(t, g.AddEdge("a", "d", core.WithWeight(5)))
	return g
}

func TestRunBFS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runBFS(slogt.New(t), &buf, diamond(t), "a", ""))

	out := buf.String()
	assert.Contains(t, out, "a\tdepth=0")
	assert.Contains(t, out, "b\tdepth=1")
	assert.Contains(t, out, "d\tdepth=1", "direct edge wins the depth race")
}

func TestRunBFS_Destination(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runBFS(slogt.New(t), &buf, diamond(t), "a", "d"))
	assert.Contains(t, buf.String(), "path: [a d]")
}

func TestRunBFS_NoPath(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.AddVertex("island"))

	var buf bytes.Buffer
	require.NoError(t, runBFS(slogt.New(t), &buf, g, "a", "island"))
	assert.Contains(t, buf.String(), "no path from a to island")
}

func TestRunShortest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runShortest(slogt.New(t), &buf, diamond(t), "a", "d"))

	out := buf.String()
	assert.Contains(t, out, "path: a -> ")
	assert.Contains(t, out, " -> d")
	assert.Contains(t, out, "distance: 2", "two-hop route beats the weight-5 direct edge")
}

func TestRunShortest_Unreachable(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.AddVertex("island"))

	var buf bytes.Buffer
	require.NoError(t, runShortest(slogt.New(t), &buf, g, "a", "island"))
	assert.Contains(t, buf.String(), "no path from a to island")
}

func TestRunToposort(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runToposort(slogt.New(t), &buf, diamond(t)))

	out := buf.String()
	assert.Contains(t, out, "a")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("a")), bytes.Index(buf.Bytes(), []byte("d")))
}

func TestRunToposort_Cyclic(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "a"))

	var buf bytes.Buffer
	require.NoError(t, runToposort(slogt.New(t), &buf, g), "cycles are reported, not fatal")
	assert.Contains(t, buf.String(), "graph is cyclic")
}

func TestRunValidate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runValidate(slogt.New(t), &buf, diamond(t)))
	assert.Contains(t, buf.String(), "degree sequence: valid")
}

func TestRunCentrality(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))

	var buf bytes.Buffer
	require.NoError(t, runCentrality(slogt.New(t), &buf, g, false))

	out := buf.String()
	assert.Contains(t, out, "b\t1")
	// Highest score prints first.
	assert.Equal(t, 0, bytes.Index(buf.Bytes(), []byte("b\t")))
}

func TestRunPaths(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runPaths(slogt.New(t), &buf, diamond(t), "a", "d", 0))

	out := buf.String()
	assert.Contains(t, out, "a -> b -> d")
	assert.Contains(t, out, "a -> c -> d")
	assert.Contains(t, out, "a -> d")
}

func TestRunPaths_Limit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runPaths(slogt.New(t), &buf, diamond(t), "a", "d", 1))
	assert.Len(t, bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")), 1)
}

func TestRunPaths_NoRoute(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.AddVertex("island"))

	var buf bytes.Buffer
	require.NoError(t, runPaths(slogt.New(t), &buf, g, "a", "island", 0))
	assert.Contains(t, buf.String(), "no path from a to island")
}
