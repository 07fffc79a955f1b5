package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source state was provided.
	ErrNoSource = errors.New("dijkstra: no source state")

	// ErrNegativeWeight indicates that a negative edge weight was produced by next.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that no target state could be settled.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Edge is a weighted transition to state To.
type Edge[S comparable] struct {
	To     S
	Weight int64
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Target      – optional predicate; the search stops at the first settled state it accepts.
// MaxDistance – optional cap on distances to explore (states beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options[S comparable] struct {
	Target      func(S) bool // Early-exit predicate, nil for a full search
	MaxDistance int64        // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option[S comparable] func(*Options[S])

// WithTarget stops the search once a state accepted by fn is settled.
func WithTarget[S comparable](fn func(S) bool) Option[S] {
	return func(o *Options[S]) {
		o.Target = fn
	}
}

// WithMaxDistance sets a maximum distance threshold.
// States whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance[S comparable](max int64) Option[S] {
	return func(o *Options[S]) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct with no target and no distance cap.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		MaxDistance: math.MaxInt64,
	}
}

// Result carries the settled distances and, when a target was requested,
// the first target reached.
type Result[S comparable] struct {
	Dist   map[S]int64 // Final distance of every settled state
	Target S           // First settled target (zero value without WithTarget)
	Found  bool        // Whether a target was settled
}
