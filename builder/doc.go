// Package builder constructs canonical directed topologies over
// caller-supplied node slices: paths, rings, complete graphs, stars
// and diamonds.
//
// The constructors exist so tests, benchmarks and examples can state
// their fixtures by shape instead of hand-written edge lists. All of
// them are deterministic: nodes are added in the order given and arcs
// are emitted in a stable documented order, so the resulting graphs
// iterate reproducibly.
//
// Constructors:
//
//	Path(nodes, w)                      // chain, acyclic
//	Ring(nodes, w)                      // closed cycle, always cyclic
//	Complete(nodes, w)                  // all ordered pairs, cyclic for n ≥ 2
//	Star(center, leaves, w)             // center→leaf fan-out, acyclic
//	Diamond(top, left, right, bottom, w)// shared-descendant fixture, acyclic
//
// Errors:
//
//	ErrTooFewNodes   – node slice smaller than the topology requires
//	ErrDuplicateNode – caller-supplied nodes are not distinct
//	core.ErrNilNode  – surfaced unchanged when a node is a nil reference
package builder
