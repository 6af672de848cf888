// Package cycle answers one question about a directed graph: does it
// contain a cycle?
//
// What:
//
//   - HasCycle: boolean cycle detection on a core.DirectedGraph using
//     node coloring (White, Gray, Black) with back-edge detection. The
//     first arc into a Gray node decides the answer; no enumeration,
//     no ordering output.
//   - HasCycleIn: the same detector over the minimal Graph read
//     contract, for graph implementations outside this module.
//
// Why:
//
//   - Validate dependency graphs (build orders, task schedules, course
//     prerequisites) before relying on a topological order existing.
//   - Reject cyclic configuration early with a definite yes/no.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Graph[T]: read contract (Nodes + AdjacentNodes)
//   - Option: functional options (WithContext for cancellation)
//
// The traversal is driven by an explicit work stack rather than native
// recursion: depth is bounded only by heap, so adversarially deep
// graphs (million-node chains) cannot exhaust the goroutine stack.
// Visitation order and short-circuit behavior are identical to the
// recursive formulation.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors:
//
//   - ErrNilGraph       nil contract value passed to HasCycleIn
//   - ErrEdgeFetch      graph's AdjacentNodes failed mid-scan
//   - context.Canceled  pass canceled via WithContext
//
// Edge-case behavior, all covered by tests:
//
//   - Empty graph → false.
//   - Nodes but no arcs → false.
//   - Self-loop → true.
//   - Disconnected graph with one cyclic component → true.
//   - Diamond-shaped DAG (shared descendant) → false; Black
//     memoization prevents re-exploration from looking like a cycle.
//
// Detection never reads arc weights.
package cycle
