// Package dagcheck validates that incrementally built dependency graphs
// are acyclic before you rely on them — build orders, task schedules,
// course prerequisites, module imports.
//
// 🚀 What is dagcheck?
//
//	A small, generic, zero-surprise library that brings together:
//		• Core primitives: a directed graph over any comparable node type,
//		  with insertion-ordered, restartable iteration
//		• Read-only edge views: inspect outgoing arcs without being able
//		  to mutate the graph through the view
//		• Cycle detection: White/Gray/Black depth-first scan driven by an
//		  explicit work stack, so depth is bounded by heap, not call stack
//		• Builders: deterministic canonical topologies (paths, rings,
//		  stars, diamonds) for tests and benchmarks
//
// ✨ Why choose dagcheck?
//
//   - Generic – node identity is any comparable value; no ID marshalling
//   - Deterministic – nodes and arcs iterate in insertion order
//   - Honest errors – strict sentinels, errors.Is friendly
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	core/    — DirectedGraph, EdgeView, node/edge lifecycle
//	cycle/   — HasCycle detector and its read contract
//	builder/ — canonical graph constructors for tests & benchmarks
//
// Quick ASCII example — a diamond with a tail closed into a cycle:
//
//	1 → 2 → 3
//	     \   \
//	      +→ 4 → 5
//	      ↑______|
//
// Build it with core, validate it with cycle:
//
//	g := core.NewDirectedGraph[int]()
//	// ... AddNode / AddEdge ...
//	ok, err := cycle.HasCycle(g)
//
// See each subpackage's doc.go for contracts, complexity and examples.
package dagcheck
