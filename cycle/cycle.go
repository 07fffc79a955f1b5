package cycle

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCycle indicates the step budget ran out before any state repeated.
	ErrNoCycle = errors.New("cycle: no repetition within step budget")
	// ErrBadMaxSteps indicates a non-positive step budget.
	ErrBadMaxSteps = errors.New("cycle: MaxSteps must be positive")
)

// DefaultMaxSteps bounds Find when no WithMaxSteps option is given.
const DefaultMaxSteps = 1_000_000

// Options configures Find.
type Options struct {
	MaxSteps int
}

// Option is a functional option for Find.
type Option func(*Options)

// WithMaxSteps caps the number of step calls Find may make.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// Result describes an eventually periodic sequence.
//
// History[i] is the state after i steps, for i in [0, Start+Length]. The last
// entry is the first repeat: its key equals that of History[Start]. For every
// n ≥ Start, state n is equivalent to History[Start + (n-Start) % Length].
//
// When Find gives up with ErrNoCycle, Start and Length are zero and History
// holds every state it produced.
type Result[S any] struct {
	Start   int
	Length  int
	History []S
}

// At returns the state reached after n steps. Past the end of History it
// needs a cycle: on a result returned with ErrNoCycle it panics instead.
func (r Result[S]) At(n int) S {
	if n < len(r.History) {
		return r.History[n]
	}
	if r.Length == 0 {
		panic(fmt.Sprintf("cycle: step %d is past the %d recorded states and no cycle was found", n, len(r.History)))
	}

	return r.History[r.Start+(n-r.Start)%r.Length]
}

// Find iterates step from start until key yields a value seen before.
// The step function must be deterministic and must not mutate its argument
// if the recorded history is to stay meaningful.
func Find[S any, K comparable](start S, step func(S) S, key func(S) K, opts ...Option) (Result[S], error) {
	o := Options{MaxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxSteps <= 0 {
		return Result[S]{}, fmt.Errorf("%w: %d", ErrBadMaxSteps, o.MaxSteps)
	}

	seen := map[K]int{key(start): 0}
	history := []S{start}
	cur := start
	for i := 1; i <= o.MaxSteps; i++ {
		cur = step(cur)
		k := key(cur)
		history = append(history, cur)
		if first, ok := seen[k]; ok {
			return Result[S]{Start: first, Length: i - first, History: history}, nil
		}
		seen[k] = i
	}

	return Result[S]{History: history}, fmt.Errorf("%w: %d steps", ErrNoCycle, o.MaxSteps)
}
