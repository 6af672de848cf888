// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/NodeCount/Nodes.
//
// Determinism:
//   - Nodes() yields nodes in insertion order, every restart.
//
// AI-HINT (file):
//   - AddNode is idempotent; the bool return distinguishes "newly
//     inserted" from "already present", neither is an error.
//   - There is intentionally no RemoveNode (see DirectedGraph doc).
package core

import "iter"

// AddNode inserts node n if missing and reports whether it was newly
// inserted. Adding an existing node is a no-op, not an error.
//
// Errors:
//   - ErrNilNode: n is a nil reference.
//
// Complexity: O(1) amortized.
func (g *DirectedGraph[T]) AddNode(n T) (bool, error) {
	// 1) Input validation: nil references are never legal nodes.
	if isNilNode(n) {
		return false, ErrNilNode
	}
	// 2) Idempotent no-op for a node we already track.
	if _, exists := g.nodes[n]; exists {
		return false, nil
	}
	// 3) Register the node with an empty outgoing-arc record so every
	//    tracked node always has an adjacency entry (invariant relied
	//    on by the edge methods and EdgesFrom).
	g.nodes[n] = &adjacency[T]{weights: make(map[T]float64)}
	g.order = append(g.order, n)

	return true, nil
}

// HasNode reports whether n has been added to the graph.
// A nil reference is never a member.
// Complexity: O(1).
func (g *DirectedGraph[T]) HasNode(n T) bool {
	if isNilNode(n) {
		return false
	}
	_, ok := g.nodes[n]

	return ok
}

// NodeCount returns the current number of nodes.
// Complexity: O(1).
func (g *DirectedGraph[T]) NodeCount() int {
	return len(g.nodes)
}

// Nodes returns a lazy, restartable sequence over all nodes in
// insertion order. The sequence is a live enumeration surface: nodes
// added after Nodes() is called appear on the next restart.
//
// Complexity: O(V) per full iteration, O(1) to obtain.
func (g *DirectedGraph[T]) Nodes() iter.Seq[T] {
	// AI-HINT: Deterministic insertion order; rely on it for stable tests.
	return func(yield func(T) bool) {
		for _, n := range g.order {
			if !yield(n) {
				return
			}
		}
	}
}
