package core_test

import (
	"errors"
	"fmt"

	"github.com/proteinpaths/interactome/core"
)

// ExampleGraph_AddEdge builds a tiny interaction network and shows the
// construction-time error taxonomy: self-loops and duplicates are rejected,
// the graph stays unmodified.
func ExampleGraph_AddEdge() {
	g := core.New()

	_ = g.AddEdge("aspirin", "cox1")
	_ = g.AddEdge("aspirin", "cox2", core.WithWeight(0.5))

	if err := g.AddEdge("cox1", "cox1"); errors.Is(err, core.ErrSelfLoop) {
		fmt.Println("self-loop rejected")
	}
	if err := g.AddEdge("aspirin", "cox1"); errors.Is(err, core.ErrDuplicateEdge) {
		fmt.Println("duplicate rejected")
	}

	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// self-loop rejected
	// duplicate rejected
	// vertices: [aspirin cox1 cox2]
	// edges: 2
}
