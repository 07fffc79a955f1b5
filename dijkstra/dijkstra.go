// Search notes:
//
//   - A negative edge weight aborts the run as soon as it is relaxed.
//   - States farther than MaxDistance are never queued.
//   - Decrease-key is lazy: a state may sit in the heap several times and
//     stale copies are skipped on pop.

package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes shortest distances from the given sources (all at
// distance 0) to every state reachable through next.
//
// Returns:
//
//   - res.Dist: final distance of every settled state (queued-only states are omitted).
//   - res.Target / res.Found: the first settled target when WithTarget is used.
//   - err: ErrNoSource, ErrNegativeWeight, or ErrUnreachable (WithTarget only).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[S comparable](sources []S, next func(S) []Edge[S], opts ...Option[S]) (*Result[S], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(sources) == 0 {
		return nil, ErrNoSource
	}

	// 2) Initialize runner with all maps and the heap.
	r := &runner[S]{
		next:    next,
		options: cfg,
		dist:    make(map[S]int64),
		visited: make(map[S]bool),
		pq:      make(nodePQ[S], 0, 1024),
	}
	r.init(sources)

	// 3) Run main loop.
	target, found, err := r.process()
	if err != nil {
		return nil, err
	}
	res := &Result[S]{Dist: r.settled(), Target: target, Found: found}
	if cfg.Target != nil && !found {
		return res, ErrUnreachable
	}

	return res, nil
}

// ShortestPath is a convenience wrapper returning only the distance to the
// first settled state accepted by target.
func ShortestPath[S comparable](sources []S, next func(S) []Edge[S], target func(S) bool) (int64, error) {
	res, err := Dijkstra(sources, next, WithTarget(target))
	if err != nil {
		return 0, err
	}

	return res.Dist[res.Target], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S comparable] struct {
	next    func(S) []Edge[S] // Successor generator; read-only within Dijkstra.
	options Options[S]        // Configuration options.
	dist    map[S]int64       // Maps state → current best distance from the sources.
	visited map[S]bool        // Tracks if a state's distance is finalized.
	pq      nodePQ[S]         // Min-heap of *nodeItem for lazy priority queue.
}

// settled returns the final distances only; states still waiting in the
// heap when the search stopped are left out.
func (r *runner[S]) settled() map[S]int64 {
	out := make(map[S]int64, len(r.visited))
	for s := range r.visited {
		out[s] = r.dist[s]
	}

	return out
}

// init sets source distances to zero and pushes them into the heap.
func (r *runner[S]) init(sources []S) {
	heap.Init(&r.pq)
	for _, s := range sources {
		if _, ok := r.dist[s]; ok {
			continue
		}
		r.dist[s] = 0
		heap.Push(&r.pq, &nodeItem[S]{state: s, dist: 0})
	}
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the state
// with the minimum distance and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable states processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - A target state is settled.
func (r *runner[S]) process() (S, bool, error) {
	var zero S
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem[S])
		u, d := item.state, item.dist

		// 2) Skip stale heap entries.
		if r.visited[u] {
			continue
		}

		// 3) If this distance exceeds MaxDistance, stop exploring.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Mark u as visited. Its shortest distance d is now final.
		r.visited[u] = true
		if r.options.Target != nil && r.options.Target(u) {
			return u, true, nil
		}

		// 5) Relax all outgoing edges from u.
		if err := r.relax(u, d); err != nil {
			return zero, false, err
		}
	}

	return zero, false, nil
}

// relax attempts to improve distances to every successor of u.
// Assumes dist(u) == d is finalized before calling relax.
func (r *runner[S]) relax(u S, d int64) error {
	for _, e := range r.next(u) {
		if e.Weight < 0 {
			return fmt.Errorf("%w: %v→%v weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
		}
		if r.visited[e.To] {
			continue
		}
		newDist := d + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Use “<” rather than “≤” to avoid pushing duplicates when distances are equal.
		if cur, ok := r.dist[e.To]; ok && newDist >= cur {
			continue
		}
		r.dist[e.To] = newDist
		heap.Push(&r.pq, &nodeItem[S]{state: e.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a state and its current distance from the sources.
type nodeItem[S comparable] struct {
	state S
	dist  int64
}

// nodePQ is a min-heap of *nodeItem, ordered by nodeItem.dist ascending.
type nodePQ[S comparable] []*nodeItem[S]

// Len returns the number of items in the heap.
func (pq nodePQ[S]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[S]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*nodeItem[S])) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
