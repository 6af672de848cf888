// File: methods_edges.go
// Role: Arc lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/
//       EdgeCount/AdjacentNodes/EdgesFrom.
//
// Determinism:
//   - AdjacentNodes() and EdgeView iteration follow arc-insertion order.
//   - Overwriting a weight keeps the arc's original position.
//
// AI-HINT (file):
//   - Both endpoints must be added with AddNode before AddEdge; edges
//     never auto-create nodes (missing endpoint → ErrNodeNotFound).
//   - An arc is a single directed src→dst pair: re-adding it updates
//     the weight, it never creates a parallel edge.
//   - Self-loops (src == dst) are legal and count as cycles.
package core

import "fmt"

// AddEdge inserts or overwrites the directed arc src→dst with the
// given weight. The weight is inert payload: it is stored, returned by
// queries and views, and consulted by no algorithm in this module.
//
// Errors:
//   - ErrNilNode: either endpoint is a nil reference.
//   - ErrNodeNotFound: either endpoint was never added.
//
// Complexity: O(1) amortized.
func (g *DirectedGraph[T]) AddEdge(src, dst T, weight float64) error {
	// 1) Input validation.
	if isNilNode(src) || isNilNode(dst) {
		return fmt.Errorf("AddEdge: %w", ErrNilNode)
	}
	// 2) Both endpoints must already be tracked nodes.
	adj, ok := g.nodes[src]
	if !ok {
		return fmt.Errorf("AddEdge: source %v: %w", src, ErrNodeNotFound)
	}
	if _, ok = g.nodes[dst]; !ok {
		return fmt.Errorf("AddEdge: destination %v: %w", dst, ErrNodeNotFound)
	}
	// 3) First insertion of this arc extends the order; an overwrite
	//    only updates the weight in place.
	if _, exists := adj.weights[dst]; !exists {
		adj.order = append(adj.order, dst)
		g.edgeCount++
	}
	adj.weights[dst] = weight

	return nil
}

// RemoveEdge removes the arc src→dst if present. Removing an absent
// arc is a no-op: the contract only requires the endpoints to exist,
// not the arc.
//
// Errors:
//   - ErrNilNode: either endpoint is a nil reference.
//   - ErrNodeNotFound: either endpoint was never added.
//
// Complexity: O(deg(src)) to drop the arc from the order slice.
func (g *DirectedGraph[T]) RemoveEdge(src, dst T) error {
	// Same admission checks as AddEdge.
	if isNilNode(src) || isNilNode(dst) {
		return fmt.Errorf("RemoveEdge: %w", ErrNilNode)
	}
	adj, ok := g.nodes[src]
	if !ok {
		return fmt.Errorf("RemoveEdge: source %v: %w", src, ErrNodeNotFound)
	}
	if _, ok = g.nodes[dst]; !ok {
		return fmt.Errorf("RemoveEdge: destination %v: %w", dst, ErrNodeNotFound)
	}
	if _, exists := adj.weights[dst]; !exists {
		return nil // absent arc, silent no-op
	}

	delete(adj.weights, dst)
	for i, d := range adj.order {
		if d == dst {
			adj.order = append(adj.order[:i], adj.order[i+1:]...)
			break
		}
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether the arc src→dst exists. Unknown or nil
// endpoints simply report false.
// Complexity: O(1).
func (g *DirectedGraph[T]) HasEdge(src, dst T) bool {
	if isNilNode(src) || isNilNode(dst) {
		return false
	}
	adj, ok := g.nodes[src]
	if !ok {
		return false
	}
	_, ok = adj.weights[dst]

	return ok
}

// Weight returns the weight of the arc src→dst and whether the arc
// exists. Unknown endpoints report (0, false).
// Complexity: O(1).
func (g *DirectedGraph[T]) Weight(src, dst T) (float64, bool) {
	if isNilNode(src) || isNilNode(dst) {
		return 0, false
	}
	adj, ok := g.nodes[src]
	if !ok {
		return 0, false
	}
	w, ok := adj.weights[dst]

	return w, ok
}

// EdgeCount returns the total number of arcs.
// Complexity: O(1).
func (g *DirectedGraph[T]) EdgeCount() int {
	return g.edgeCount
}

// AdjacentNodes returns a copy of n's arc destinations in
// arc-insertion order. The slice is the caller's to keep.
//
// Errors:
//   - ErrNilNode: n is a nil reference.
//   - ErrNodeNotFound: n was never added.
//
// Complexity: O(deg(n)).
func (g *DirectedGraph[T]) AdjacentNodes(n T) ([]T, error) {
	if isNilNode(n) {
		return nil, fmt.Errorf("AdjacentNodes: %w", ErrNilNode)
	}
	adj, ok := g.nodes[n]
	if !ok {
		return nil, fmt.Errorf("AdjacentNodes: %v: %w", n, ErrNodeNotFound)
	}
	out := make([]T, len(adj.order))
	copy(out, adj.order)

	return out, nil
}

// EdgesFrom returns a read-only view of n's destination→weight
// mapping. The view is live (it reflects later graph mutation) but
// offers no path to mutate the graph.
//
// Errors:
//   - ErrNilNode: n is a nil reference.
//   - ErrNodeNotFound: n was never added.
//
// Complexity: O(1).
func (g *DirectedGraph[T]) EdgesFrom(n T) (EdgeView[T], error) {
	if isNilNode(n) {
		return EdgeView[T]{}, fmt.Errorf("EdgesFrom: %w", ErrNilNode)
	}
	adj, ok := g.nodes[n]
	if !ok {
		return EdgeView[T]{}, fmt.Errorf("EdgesFrom: %v: %w", n, ErrNodeNotFound)
	}

	return EdgeView[T]{adj: adj}, nil
}
