// Package core provides a generic in-memory directed graph with a
// minimal, deterministic API surface.
//
// The DirectedGraph G = (V,E) is parameterized over any comparable
// node type T:
//
//   - Nodes are added explicitly with AddNode (idempotent) and are
//     never removed — removing a node would orphan arcs still held in
//     other nodes' adjacency, so the API deliberately omits it.
//   - Arcs are single directed src→dst pairs with one float64 weight;
//     re-adding an arc overwrites the weight (no parallel edges).
//   - Self-loops are permitted.
//   - Both endpoints must exist before an arc can be added; edges
//     never auto-create nodes.
//
// Why use core.DirectedGraph?
//
//   - Generic — node identity is any comparable value (ints, strings,
//     struct keys, pointers), with equality and hashing supplied by
//     the language.
//   - Deterministic iteration — Nodes() and per-node arc views follow
//     insertion order, so small test graphs enumerate reproducibly.
//   - Read-only views — EdgesFrom returns an EdgeView that cannot
//     mutate the graph.
//   - Clone support — CloneEmpty (nodes only), Clone (deep copy).
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n T) (bool, error)          // O(1), idempotent
//	HasNode(n T) bool                   // O(1)
//
//	// Arc lifecycle
//	AddEdge(src, dst T, w float64) error  // O(1), insert-or-overwrite
//	RemoveEdge(src, dst T) error          // O(deg), absent arc is a no-op
//	HasEdge(src, dst T) bool              // O(1)
//
//	// Query
//	Nodes() iter.Seq[T]                   // insertion order, restartable
//	AdjacentNodes(n T) ([]T, error)       // O(deg) copy, insertion order
//	EdgesFrom(n T) (EdgeView[T], error)   // O(1) read-only live view
//	Weight(src, dst T) (float64, bool)    // O(1)
//	NodeCount() int                       // O(1)
//	EdgeCount() int                       // O(1)
//
//	// Cloning
//	CloneEmpty() *DirectedGraph[T]        // O(V)
//	Clone() *DirectedGraph[T]             // O(V+E)
//
// Errors:
//
//	ErrNilNode      – a node argument is a nil reference
//	ErrNodeNotFound – operation referenced a node never added
//
// Weights are inert payload: stored and returned, consulted by no
// algorithm in this module.
//
// Concurrency: the graph performs no locking. A detection pass assumes
// exclusive read access; callers sharing a graph across goroutines
// must serialize all mutation and reads externally.
package core
