package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNoStart is returned when BFS is called without start states.
	ErrNoStart = errors.New("bfs: no start states")

	// ErrOptionViolation reports an Option given an out-of-range value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a state BFS never visited.
	ErrNotReached = errors.New("bfs: state not reached")
)

// Option tweaks a single BFS run. A bad value is remembered and reported
// as ErrOptionViolation once BFS starts.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize BFS execution.
type Options[S comparable] struct {
	// Ctx is checked once per dequeued state.
	Ctx context.Context

	// OnVisit is called when visiting a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s S, depth int) error

	// MaxDepth, if > 0, stops expanding states at this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
// context.Background(), no depth limit, a no-op OnVisit hook.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:      context.Background(),
		OnVisit:  func(S, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expanding at the given depth.
//
//	d > 0: states at depth d are visited but not expanded
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: distance (in steps) of each visited state from the nearest start.
//   - Parent: predecessor of each non-start state in the BFS tree.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// MaxDepth returns the largest depth reached, or -1 for an empty result.
func (r *Result[S]) MaxDepth() int {
	m := -1
	for _, d := range r.Depth {
		if d > m {
			m = d
		}
	}

	return m
}

// PathTo reconstructs the path from a start state to dest.
// Returns ErrNotReached if dest was not visited.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
