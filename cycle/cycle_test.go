// Package cycle_test locks in the detector's boolean contract: the
// classic scenario table, edge-case policies, purity, and the
// explicit-stack depth guarantee.
package cycle_test

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagcheck/builder"
	"github.com/katalvlaran/dagcheck/core"
	"github.com/katalvlaran/dagcheck/cycle"
)

// buildGraph assembles a graph from explicit node and arc lists.
func buildGraph(t *testing.T, nodes []int, arcs [][2]int) *core.DirectedGraph[int] {
	t.Helper()
	g := core.NewDirectedGraph[int]()
	for _, n := range nodes {
		_, err := g.AddNode(n)
		require.NoError(t, err)
	}
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(a[0], a[1], 10))
	}
	return g
}

// TestHasCycle_Scenarios runs the canonical scenario table: triangle
// DAG, directed triangle, diamond with tail, closed tail, and a
// disconnected graph whose cycle sits in one component only.
func TestHasCycle_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		nodes []int
		arcs  [][2]int
		want  bool
	}{
		{
			name:  "triangle DAG",
			nodes: []int{1, 2, 3},
			arcs:  [][2]int{{1, 2}, {2, 3}, {1, 3}},
			want:  false,
		},
		{
			name:  "directed triangle cycle",
			nodes: []int{1, 2, 3},
			arcs:  [][2]int{{1, 2}, {2, 3}, {3, 1}},
			want:  true,
		},
		{
			name:  "diamond with tail",
			nodes: []int{1, 2, 3, 4, 5},
			arcs:  [][2]int{{1, 2}, {2, 3}, {2, 4}, {3, 4}, {4, 5}},
			want:  false,
		},
		{
			name:  "diamond with tail closed back",
			nodes: []int{1, 2, 3, 4, 5},
			arcs:  [][2]int{{1, 2}, {2, 3}, {2, 4}, {3, 4}, {4, 5}, {5, 2}},
			want:  true,
		},
		{
			name:  "disconnected, cycle in one component",
			nodes: []int{1, 2, 3, 10, 11},
			arcs:  [][2]int{{1, 2}, {2, 3}, {3, 1}, {10, 11}},
			want:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGraph(t, tc.nodes, tc.arcs)
			got, err := cycle.HasCycle(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestHasCycle_EdgeCases pins down the boundary policies: empty graph,
// arcless graph, self-loop, nil graph.
func TestHasCycle_EdgeCases(t *testing.T) {
	t.Run("empty graph", func(t *testing.T) {
		got, err := cycle.HasCycle(core.NewDirectedGraph[int]())
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("nodes but no arcs", func(t *testing.T) {
		g := buildGraph(t, []int{1, 2, 3}, nil)
		got, err := cycle.HasCycle(g)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("self-loop", func(t *testing.T) {
		g := buildGraph(t, []int{1, 2}, [][2]int{{1, 2}, {2, 2}})
		got, err := cycle.HasCycle(g)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("nil graph is cycle-free", func(t *testing.T) {
		got, err := cycle.HasCycle[int](nil)
		require.NoError(t, err)
		assert.False(t, got)
	})
}

// TestHasCycle_ReverseEdgeFlips verifies the flip property: adding the
// reverse arc of any arc on a simple path closes a cycle, and removing
// it restores the original answer.
func TestHasCycle_ReverseEdgeFlips(t *testing.T) {
	g, err := builder.Path([]int{1, 2, 3, 4}, 10)
	require.NoError(t, err)

	got, err := cycle.HasCycle(g)
	require.NoError(t, err)
	require.False(t, got)

	require.NoError(t, g.AddEdge(3, 2, 10))
	got, err = cycle.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, got, "reverse arc on a path must close a cycle")

	require.NoError(t, g.RemoveEdge(3, 2))
	got, err = cycle.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, got, "removing the back arc restores acyclicity")
}

// TestHasCycle_Idempotent verifies repeated calls return the same
// answer and leave the graph's node/arc sets untouched.
func TestHasCycle_Idempotent(t *testing.T) {
	g, err := builder.Diamond(1, 2, 3, 4, 10)
	require.NoError(t, err)
	nodesBefore, arcsBefore := g.NodeCount(), g.EdgeCount()

	for i := 0; i < 3; i++ {
		got, detErr := cycle.HasCycle(g)
		require.NoError(t, detErr)
		assert.False(t, got)
	}
	assert.Equal(t, nodesBefore, g.NodeCount())
	assert.Equal(t, arcsBefore, g.EdgeCount())

	// And the same for a cyclic graph.
	ring, err := builder.Ring([]int{1, 2, 3}, 10)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		got, detErr := cycle.HasCycle(ring)
		require.NoError(t, detErr)
		assert.True(t, got)
	}
}

// TestHasCycle_OrderIndependent verifies the boolean result does not
// depend on node insertion order.
func TestHasCycle_OrderIndependent(t *testing.T) {
	arcs := [][2]int{{1, 2}, {2, 3}, {3, 1}}
	orders := [][]int{
		{1, 2, 3},
		{3, 2, 1},
		{2, 1, 3},
	}
	for _, order := range orders {
		g := buildGraph(t, order, arcs)
		got, err := cycle.HasCycle(g)
		require.NoError(t, err)
		assert.True(t, got, "insertion order %v", order)
	}
}

// TestHasCycle_SharedDescendantNotACycle guards the Black memoization:
// reaching an already-finished node through a second path is not a
// back-edge.
func TestHasCycle_SharedDescendantNotACycle(t *testing.T) {
	g, err := builder.Diamond("top", "left", "right", "bottom", 1)
	require.NoError(t, err)

	got, err := cycle.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, got)
}

// TestHasCycle_DeepChain proves the explicit work stack: a 200k-node
// path would overflow the goroutine stack under naive recursion.
func TestHasCycle_DeepChain(t *testing.T) {
	const n = 200_000
	g := core.NewDirectedGraph[int]()
	for i := 0; i < n; i++ {
		_, err := g.AddNode(i)
		require.NoError(t, err)
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 0))
	}

	got, err := cycle.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, got)

	// Close the far end back onto the head and re-check.
	require.NoError(t, g.AddEdge(n-1, 0, 0))
	got, err = cycle.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, got)
}

// TestHasCycle_Canceled verifies WithContext aborts the pass with the
// context's error.
func TestHasCycle_Canceled(t *testing.T) {
	g, err := builder.Ring([]int{1, 2, 3, 4, 5}, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = cycle.HasCycle(g, cycle.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// faultyGraph implements cycle.Graph but violates its own read
// contract: AdjacentNodes fails for one node its Nodes() yields.
type faultyGraph struct {
	nodes []string
	bad   string
}

func (f *faultyGraph) Nodes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range f.nodes {
			if !yield(n) {
				return
			}
		}
	}
}

func (f *faultyGraph) AdjacentNodes(n string) ([]string, error) {
	if n == f.bad {
		return nil, errors.New("storage torn")
	}
	return nil, nil
}

// TestHasCycleIn_ContractViolation verifies a foreign implementation's
// edge-fetch failure surfaces wrapped in ErrEdgeFetch.
func TestHasCycleIn_ContractViolation(t *testing.T) {
	g := &faultyGraph{nodes: []string{"a", "b"}, bad: "b"}

	_, err := cycle.HasCycleIn[string](g)
	assert.ErrorIs(t, err, cycle.ErrEdgeFetch)
}

// TestHasCycleIn_NilGraph verifies the contract-based entry point
// rejects a nil graph with its sentinel.
func TestHasCycleIn_NilGraph(t *testing.T) {
	_, err := cycle.HasCycleIn[int](nil)
	assert.ErrorIs(t, err, cycle.ErrNilGraph)
}

// TestHasCycle_BuilderShapes sweeps the canonical topologies.
func TestHasCycle_BuilderShapes(t *testing.T) {
	path, err := builder.Path([]int{1, 2, 3, 4, 5}, 1)
	require.NoError(t, err)
	star, err := builder.Star(0, []int{1, 2, 3}, 1)
	require.NoError(t, err)
	ring, err := builder.Ring([]int{1, 2, 3, 4}, 1)
	require.NoError(t, err)
	loop, err := builder.Ring([]int{1}, 1)
	require.NoError(t, err)
	complete, err := builder.Complete([]int{1, 2, 3}, 1)
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		g    *core.DirectedGraph[int]
		want bool
	}{
		{"path", path, false},
		{"star", star, false},
		{"ring", ring, true},
		{"single-node ring (self-loop)", loop, true},
		{"complete n=3", complete, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cycle.HasCycle(tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
