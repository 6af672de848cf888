// Package cycle implements back-edge cycle detection on directed
// graphs. HasCycle classifies every node as White (unvisited), Gray
// (on the active path) or Black (proven acyclic) during a depth-first
// scan and reports a cycle iff an arc to a Gray node is ever
// traversed. The scan is driven by an explicit work stack, so depth is
// bounded by heap, not by goroutine call-stack limits.
//
// Complexity:
//
//   - Time:   O(V + E)  (each node colored once, each arc examined at most once)
//   - Memory: O(V)      (state map + work stack bounded by the longest simple path)
package cycle

import (
	"fmt"

	"github.com/katalvlaran/dagcheck/core"
)

// frame is one depth-first step: a Gray node and the arcs still to be
// examined from it.
type frame[T comparable] struct {
	node T   // the Gray node this frame owns
	next int // index of the next destination to examine
	dsts []T // snapshot of node's arc destinations
}

// detector holds the state of one detection pass. A fresh detector is
// built per call; nothing survives the call.
type detector[T comparable] struct {
	graph Graph[T]
	opts  options
	state map[T]int // visitation state: White, Gray, Black
	stack []frame[T]
}

// HasCycle reports whether g contains a directed cycle. A nil graph is
// treated as cycle-free. The pass is pure: it reads the graph and
// mutates nothing observable to the caller, so repeated calls on an
// unmodified graph return the same result.
//
// Pass WithContext(ctx) to make long scans cancelable.
func HasCycle[T comparable](g *core.DirectedGraph[T], opts ...Option) (bool, error) {
	// 1) Nil graph is treated as cycle-free.
	if g == nil {
		return false, nil
	}

	return HasCycleIn[T](g, opts...)
}

// HasCycleIn is the contract-based variant of HasCycle for graph
// implementations outside this module. If g is nil, ErrNilGraph is
// returned. If g's AdjacentNodes fails for a node produced by its own
// Nodes() iteration, the failure surfaces wrapped in ErrEdgeFetch.
func HasCycleIn[T comparable](g Graph[T], opts ...Option) (bool, error) {
	// 1) Validate graph contract value.
	if g == nil {
		return false, ErrNilGraph
	}
	// 2) Apply optional settings.
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// 3) Prepare per-call state. All nodes start White (absent from map).
	d := &detector[T]{graph: g, opts: o, state: make(map[T]int)}

	// 4) Launch a depth-first scan from every unvisited node, so every
	//    component of a disconnected graph is eventually explored.
	//    Short-circuit on the first back-edge.
	for n := range g.Nodes() {
		if d.state[n] != White {
			continue
		}
		found, err := d.visit(n)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	// 5) Every node finished Black: no back-edge exists.
	return false, nil
}

// visit runs one depth-first exploration rooted at a White node,
// driven by an explicit stack. Visitation order and short-circuit
// semantics match the recursive formulation exactly: a frame's arcs
// are examined left to right, and the first arc into a Gray node ends
// the pass.
func (d *detector[T]) visit(root T) (bool, error) {
	// 1) Push the root. Entering a node marks it Gray and snapshots
	//    its destinations so the frame can resume mid-arc-list after
	//    deeper frames unwind.
	if err := d.push(root); err != nil {
		return false, err
	}

	// 2) Drain the stack.
	for len(d.stack) > 0 {
		top := &d.stack[len(d.stack)-1]

		// 2a) All arcs of this node exhausted with no cycle found:
		//     retire it Gray→Black and backtrack.
		if top.next >= len(top.dsts) {
			d.state[top.node] = Black
			d.stack = d.stack[:len(d.stack)-1]
			continue
		}

		// 2b) Examine the next arc.
		m := top.dsts[top.next]
		top.next++

		switch d.state[m] {
		case Gray:
			// Back-edge to an active ancestor: the sole detection
			// condition. Remaining arcs and nodes are never examined.
			return true, nil
		case Black:
			// Subtree already proven acyclic; memoization prevents a
			// shared descendant from being mistaken for a cycle.
			continue
		default:
			// White: descend. top may be invalidated by the append
			// inside push, hence no further use of it this iteration.
			if err := d.push(m); err != nil {
				return false, err
			}
		}
	}

	return false, nil
}

// push marks n Gray and stacks a frame holding its arc snapshot.
// Cancellation is polled here, once per node entered.
func (d *detector[T]) push(n T) error {
	// Non-blocking cancellation poll.
	select {
	case <-d.opts.ctx.Done():
		return d.opts.ctx.Err()
	default:
	}

	dsts, err := d.graph.AdjacentNodes(n)
	if err != nil {
		// Wrap in sentinel ErrEdgeFetch so callers can check via errors.Is.
		return fmt.Errorf("%w: AdjacentNodes(%v): %v", ErrEdgeFetch, n, err)
	}
	d.state[n] = Gray
	d.stack = append(d.stack, frame[T]{node: n, dsts: dsts})

	return nil
}
