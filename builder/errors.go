// Package: dagcheck/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition
//     site; constructors attach context with %w at the call site.
package builder

import "errors"

// ErrTooFewNodes indicates a constructor received fewer nodes than its
// topology requires (e.g. an empty slice).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrDuplicateNode indicates the caller-supplied node slice contains
// the same node twice; canonical topologies require distinct nodes.
// Usage: if errors.Is(err, ErrDuplicateNode) { /* dedupe input */ }.
var ErrDuplicateNode = errors.New("builder: duplicate node")
