// Package: dagcheck/builder
//
// builder.go — deterministic canonical topology constructors.
//
// Contract (all constructors):
//   - Nodes are added in the order given; arcs are emitted in a stable
//     documented order, so the resulting graphs iterate reproducibly.
//   - Caller-supplied nodes must be distinct (ErrDuplicateNode) and
//     non-nil (core.ErrNilNode surfaces via AddNode).
//   - Every arc carries the single weight w; weights are inert payload.
//   - Only sentinel errors are returned; constructors never panic.
package builder

import (
	"fmt"

	"github.com/katalvlaran/dagcheck/core"
)

// Method tags for error context (no magic strings at call sites).
const (
	methodPath     = "Path"
	methodRing     = "Ring"
	methodComplete = "Complete"
	methodStar     = "Star"
	methodDiamond  = "Diamond"
)

// addAll inserts nodes in order, rejecting duplicates.
func addAll[T comparable](g *core.DirectedGraph[T], method string, nodes []T) error {
	for _, n := range nodes {
		added, err := g.AddNode(n)
		if err != nil {
			return fmt.Errorf("%s: AddNode(%v): %w", method, n, err)
		}
		if !added {
			return fmt.Errorf("%s: node %v: %w", method, n, ErrDuplicateNode)
		}
	}

	return nil
}

// Path builds the simple directed path nodes[0]→nodes[1]→…→nodes[n-1].
// Requires n ≥ 1; a single node yields a graph with no arcs. Acyclic
// by construction.
//
// Complexity: O(n).
func Path[T comparable](nodes []T, w float64) (*core.DirectedGraph[T], error) {
	if len(nodes) < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodPath, len(nodes), ErrTooFewNodes)
	}
	g := core.NewDirectedGraph[T]()
	if err := addAll(g, methodPath, nodes); err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(nodes); i++ {
		if err := g.AddEdge(nodes[i], nodes[i+1], w); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%v→%v): %w", methodPath, nodes[i], nodes[i+1], err)
		}
	}

	return g, nil
}

// Ring builds the closed cycle nodes[0]→…→nodes[n-1]→nodes[0].
// Requires n ≥ 1; a single node yields a self-loop. Always cyclic.
//
// Complexity: O(n).
func Ring[T comparable](nodes []T, w float64) (*core.DirectedGraph[T], error) {
	if len(nodes) < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRing, len(nodes), ErrTooFewNodes)
	}
	g, err := Path(nodes, w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRing, err)
	}
	// Close the ring; for n == 1 this is the self-loop nodes[0]→nodes[0].
	last, first := nodes[len(nodes)-1], nodes[0]
	if err = g.AddEdge(last, first, w); err != nil {
		return nil, fmt.Errorf("%s: AddEdge(%v→%v): %w", methodRing, last, first, err)
	}

	return g, nil
}

// Complete builds the complete directed graph on the given nodes:
// every ordered pair (u,v), u ≠ v, becomes an arc. No self-loops.
// Requires n ≥ 1; cyclic for n ≥ 2.
//
// Complexity: O(n²).
func Complete[T comparable](nodes []T, w float64) (*core.DirectedGraph[T], error) {
	if len(nodes) < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodComplete, len(nodes), ErrTooFewNodes)
	}
	g := core.NewDirectedGraph[T]()
	if err := addAll(g, methodComplete, nodes); err != nil {
		return nil, err
	}
	for i, u := range nodes {
		for j, v := range nodes {
			if i == j {
				continue
			}
			if err := g.AddEdge(u, v, w); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%v→%v): %w", methodComplete, u, v, err)
			}
		}
	}

	return g, nil
}

// Star builds arcs center→leaf for every leaf, in leaf order. Leaves
// may be empty. Acyclic by construction.
//
// Complexity: O(len(leaves)).
func Star[T comparable](center T, leaves []T, w float64) (*core.DirectedGraph[T], error) {
	g := core.NewDirectedGraph[T]()
	if err := addAll(g, methodStar, append([]T{center}, leaves...)); err != nil {
		return nil, err
	}
	for _, leaf := range leaves {
		if err := g.AddEdge(center, leaf, w); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%v→%v): %w", methodStar, center, leaf, err)
		}
	}

	return g, nil
}

// Diamond builds the four-node shared-descendant shape
//
//	top → left → bottom
//	top → right → bottom
//
// the classic fixture for verifying that revisiting a finished shared
// descendant is not mistaken for a cycle. Acyclic by construction.
//
// Complexity: O(1).
func Diamond[T comparable](top, left, right, bottom T, w float64) (*core.DirectedGraph[T], error) {
	g := core.NewDirectedGraph[T]()
	if err := addAll(g, methodDiamond, []T{top, left, right, bottom}); err != nil {
		return nil, err
	}
	arcs := [][2]T{{top, left}, {top, right}, {left, bottom}, {right, bottom}}
	for _, a := range arcs {
		if err := g.AddEdge(a[0], a[1], w); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%v→%v): %w", methodDiamond, a[0], a[1], err)
		}
	}

	return g, nil
}
