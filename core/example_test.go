package core_test

import (
	"fmt"

	"github.com/katalvlaran/dagcheck/core"
)

// ExampleDirectedGraph demonstrates basic creation, mutation and
// queries on a small build-order graph.
func ExampleDirectedGraph() {
	// 1) Create an empty graph over string node IDs.
	g := core.NewDirectedGraph[string]()

	// 2) Nodes must exist before arcs can reference them.
	for _, task := range []string{"fetch", "compile", "link"} {
		_, _ = g.AddNode(task)
	}

	// 3) Wire the dependency arcs; the weight is inert payload.
	_ = g.AddEdge("fetch", "compile", 1)
	_ = g.AddEdge("compile", "link", 1)

	// 4) Inspect the graph through the read-only surfaces.
	fmt.Println("nodes:", g.NodeCount(), "arcs:", g.EdgeCount())
	view, _ := g.EdgesFrom("fetch")
	for dst, w := range view.All() {
		fmt.Printf("fetch → %s (w=%.0f)\n", dst, w)
	}

	// Output:
	// nodes: 3 arcs: 2
	// fetch → compile (w=1)
}
