// Package core defines the central DirectedGraph type: a generic,
// insertion-ordered directed graph with weighted arcs.
//
// This file declares the DirectedGraph and adjacency types, sentinel
// errors, and the NewDirectedGraph constructor.
//
// Errors:
//
//	ErrNilNode      - a node argument is a nil reference (pointer, chan, interface).
//	ErrNodeNotFound - an operation referenced a node that was never added.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates that a required node argument holds a nil reference.
	ErrNilNode = errors.New("core: node is nil")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// adjacency holds the outgoing arcs of one node: a destination→weight
// map plus the arc insertion order. Overwriting a weight keeps the
// arc's original position in order.
type adjacency[T comparable] struct {
	order   []T           // destinations in arc-insertion order
	weights map[T]float64 // destination → weight
}

// DirectedGraph is an in-memory directed graph over comparable node
// values of type T. Each arc src→dst carries exactly one float64
// weight; re-adding the arc overwrites the weight in place.
//
// Determinism:
//   - Nodes() iterates in node-insertion order.
//   - Per-node arcs iterate in arc-insertion order.
//
// Concurrency:
//   - The graph performs no locking. Callers that share an instance
//     across goroutines must serialize all mutation and all reads
//     (including cycle detection) externally.
//
// There is deliberately no node removal: removing a node would orphan
// arcs still recorded in other nodes' adjacency. Remove arcs with
// RemoveEdge, or rebuild via CloneEmpty when topology must shrink.
type DirectedGraph[T comparable] struct {
	nodes     map[T]*adjacency[T] // node → outgoing arcs
	order     []T                 // nodes in insertion order
	edgeCount int                 // total number of arcs
}

// NewDirectedGraph creates an empty DirectedGraph.
// Complexity: O(1)
func NewDirectedGraph[T comparable]() *DirectedGraph[T] {
	return &DirectedGraph[T]{nodes: make(map[T]*adjacency[T])}
}
