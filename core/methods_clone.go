// File: methods_clone.go
// Role: Cloning: CloneEmpty (nodes only), Clone (nodes + arcs).
// Determinism:
//   - Clones preserve node- and arc-insertion order of the source.
package core

// CloneEmpty returns a new graph containing the same nodes in the same
// insertion order, with no arcs. Useful when topology must be rebuilt
// from scratch (the one sanctioned way to "remove" a node).
//
// Complexity: O(V).
func (g *DirectedGraph[T]) CloneEmpty() *DirectedGraph[T] {
	out := NewDirectedGraph[T]()
	out.order = make([]T, len(g.order))
	copy(out.order, g.order)
	for _, n := range g.order {
		out.nodes[n] = &adjacency[T]{weights: make(map[T]float64)}
	}

	return out
}

// Clone returns a deep copy: same nodes, same arcs, same weights, same
// insertion orders. Mutating the clone never affects the source.
//
// Complexity: O(V + E).
func (g *DirectedGraph[T]) Clone() *DirectedGraph[T] {
	out := g.CloneEmpty()
	for _, n := range g.order {
		src, dup := g.nodes[n], out.nodes[n]
		dup.order = make([]T, len(src.order))
		copy(dup.order, src.order)
		for dst, w := range src.weights {
			dup.weights[dst] = w
		}
	}
	out.edgeCount = g.edgeCount

	return out
}
