// File: view.go
// Role: Read-only views over one node's outgoing arcs.
// Determinism:
//   - All() and Destinations() follow arc-insertion order.
// AI-HINT (file):
//   - EdgeView is live: it reflects graph mutation that happens after
//     the view was taken, exactly like the adjacency it wraps.
//   - The view exposes no mutators; external packages cannot reach the
//     underlying maps through it.
package core

import "iter"

// EdgeView is a read-only window onto the outgoing arcs of a single
// node. The zero EdgeView is valid and empty.
type EdgeView[T comparable] struct {
	adj *adjacency[T]
}

// Len returns the number of outgoing arcs.
// Complexity: O(1).
func (v EdgeView[T]) Len() int {
	if v.adj == nil {
		return 0
	}

	return len(v.adj.weights)
}

// Weight returns the weight of the arc to dst and whether that arc
// exists.
// Complexity: O(1).
func (v EdgeView[T]) Weight(dst T) (float64, bool) {
	if v.adj == nil {
		return 0, false
	}
	w, ok := v.adj.weights[dst]

	return w, ok
}

// Has reports whether an arc to dst exists.
// Complexity: O(1).
func (v EdgeView[T]) Has(dst T) bool {
	_, ok := v.Weight(dst)

	return ok
}

// All returns a lazy, restartable sequence over (destination, weight)
// pairs in arc-insertion order.
// Complexity: O(deg) per full iteration.
func (v EdgeView[T]) All() iter.Seq2[T, float64] {
	return func(yield func(T, float64) bool) {
		if v.adj == nil {
			return
		}
		for _, dst := range v.adj.order {
			if !yield(dst, v.adj.weights[dst]) {
				return
			}
		}
	}
}

// Destinations returns a lazy, restartable sequence over arc
// destinations in arc-insertion order.
// Complexity: O(deg) per full iteration.
func (v EdgeView[T]) Destinations() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v.adj == nil {
			return
		}
		for _, dst := range v.adj.order {
			if !yield(dst) {
				return
			}
		}
	}
}
