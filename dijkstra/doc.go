// Package dijkstra provides Dijkstra's shortest-path algorithm over implicit
// graphs whose vertices are any comparable state type and whose edges carry
// non-negative integer weights.
//
// Overview:
//
//   - The caller supplies the source states and a next function that lists
//     the weighted successors of a state. The state can be richer than a
//     position: the crucible days key states by (position, heading, run
//     length) so movement rules live in next, not in the search.
//   - A min-heap (container/heap) with lazy decrease-key always expands the
//     closest unsettled state.
//
// Key features:
//
//   - WithTarget: stop as soon as a state satisfying the predicate is
//     settled; the settled state and its distance are reported.
//   - WithMaxDistance: do not explore beyond a distance cap.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) in the worst case (stale heap entries are kept and skipped).
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:       no source states were given.
//   - ErrNegativeWeight: next produced an edge with negative weight.
//   - ErrUnreachable:    WithTarget was set but no target was settled.
//   - ErrBadMaxDistance: WithMaxDistance was given a negative value (panics).
package dijkstra
