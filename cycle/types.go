// Package cycle defines types and options for directed-cycle
// detection: the read contract a graph must expose, visitation state
// constants, sentinel errors, and cancellation options.
package cycle

import (
	"context"
	"errors"
	"iter"
)

// Visitation state of a node during detection.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the active traversal path.
	Black        // Black: the node's reachable subtree is proven acyclic.
)

var (
	// ErrNilGraph is returned by HasCycleIn when the graph contract
	// value is nil.
	ErrNilGraph = errors.New("cycle: graph is nil")

	// ErrEdgeFetch indicates the graph's EdgesFrom failed for a node
	// produced by its own Nodes() iteration — an internal-consistency
	// violation of the graph implementation, not of the detector.
	ErrEdgeFetch = errors.New("cycle: failed to fetch edges")
)

// Graph is the read contract the detector operates on. Any directed
// graph exposing node iteration and per-node outgoing arcs can be
// checked; *core.DirectedGraph[T] satisfies it directly. Weights are
// irrelevant to detection and deliberately absent from the contract.
type Graph[T comparable] interface {
	// Nodes returns a restartable sequence over all nodes.
	Nodes() iter.Seq[T]

	// AdjacentNodes returns the destinations of n's outgoing arcs.
	// It must succeed for every node produced by Nodes(); order is
	// implementation-defined.
	AdjacentNodes(n T) ([]T, error)
}

// Option configures optional behavior of a detection pass.
// Use with HasCycle(g, opts...).
type Option func(*options)

// options holds settings for detection, currently only cancellation.
type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Cancellation is observed by non-blocking polls as nodes are entered;
// the traversal itself never suspends. Passing a nil context has no
// effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
