// Package bfs provides breadth-first search over any comparable state type,
// returning unweighted shortest-path depths, parent links, and visit order.
//
// States are whatever the caller's puzzle needs: a grid Point, a
// (Point, Direction) beam head, a node name. The graph is implicit and is
// described by a next function that lists the successors of a state.
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable states.
//   - Memory: O(V) for the visited set, depths and parents.
//
// Options:
//
//   - WithContext: cancellation, checked once per dequeued state.
//   - WithMaxDepth: do not expand states at or beyond the given depth.
//   - WithOnVisit: hook run on every visited state; an error aborts the search.
//
// Errors:
//
//   - ErrNoStart: no start states were given.
//   - ErrOptionViolation: an invalid Option was supplied.
package bfs
