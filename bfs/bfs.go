package bfs

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next  func(S) []S
	opts  Options[S]
	queue []queueItem[S]
	res   *Result[S]
}

// BFS runs breadth-first search from every state in starts (a multi-source
// search: all starts have depth 0), expanding states with next and applying
// any number of functional Options.
// Returns ErrNoStart for an empty start list, ErrOptionViolation for bad
// options, the context error on cancellation, or any OnVisit error.
func BFS[S comparable](starts []S, next func(S) []S, opts ...Option[S]) (*Result[S], error) {
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next:  next,
		opts:  o,
		queue: make([]queueItem[S], 0, len(starts)),
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	for _, s := range starts {
		if _, seen := w.res.Depth[s]; seen {
			continue
		}
		w.res.Depth[s] = 0
		w.queue = append(w.queue, queueItem[S]{state: s})
	}

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// loop drains the queue in FIFO order.
func (w *walker[S]) loop() error {
	for qi := 0; qi < len(w.queue); qi++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[qi]
		w.res.Order = append(w.res.Order, item.state)
		if err := w.opts.OnVisit(item.state, item.depth); err != nil {
			return err
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		for _, n := range w.next(item.state) {
			if _, seen := w.res.Depth[n]; seen {
				continue
			}
			w.res.Depth[n] = item.depth + 1
			w.res.Parent[n] = item.state
			w.queue = append(w.queue, queueItem[S]{state: n, depth: item.depth + 1})
		}
	}

	return nil
}
