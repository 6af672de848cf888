package cycle_test

import (
	"testing"

	"github.com/katalvlaran/dagcheck/builder"
	"github.com/katalvlaran/dagcheck/cycle"
)

// seq returns [0, 1, ..., n-1] for builder fixtures.
func seq(n int) []int {
	nodes := make([]int, n)
	for i := range nodes {
		nodes[i] = i
	}
	return nodes
}

// BenchmarkHasCycle_Chain10000 measures a full acyclic scan: every
// node is entered once, every arc examined once, no short-circuit.
func BenchmarkHasCycle_Chain10000(b *testing.B) {
	g, err := builder.Path(seq(10_000), 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = cycle.HasCycle(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHasCycle_Ring10000 measures the cyclic case: the pass
// short-circuits when the ring closes back onto its Gray head.
func BenchmarkHasCycle_Ring10000(b *testing.B) {
	g, err := builder.Ring(seq(10_000), 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = cycle.HasCycle(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHasCycle_Complete100 measures a dense graph: 100 nodes,
// 9900 arcs, cycle found almost immediately.
func BenchmarkHasCycle_Complete100(b *testing.B) {
	g, err := builder.Complete(seq(100), 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = cycle.HasCycle(g); err != nil {
			b.Fatal(err)
		}
	}
}
