package dijkstra_test

import (
	"fmt"

	"github.com/proteinpaths/interactome/core"
	"github.com/proteinpaths/interactome/dijkstra"
)

// ExamplePath shows the cheap detour beating the expensive direct edge.
func ExamplePath() {
	g := core.New()
	_ = g.AddEdge("a", "b", core.WithWeight(4))
	_ = g.AddEdge("a", "c", core.WithWeight(1))
	_ = g.AddEdge("c", "b", core.WithWeight(1))

	path, err := dijkstra.Path(g, "a", "b")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [a c b]
}

// ExampleDijkstra computes all distances from a single source.
func ExampleDijkstra() {
	g := core.New()
	_ = g.AddEdge("src", "mid", core.WithWeight(2))
	_ = g.AddEdge("mid", "dst", core.WithWeight(3))
	_ = g.AddEdge("src", "dst", core.WithWeight(10))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("src"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[dst]=%g via %s\n", res.Dist["dst"], res.Prev["dst"])
	// Output:
	// dist[dst]=5 via mid
}
