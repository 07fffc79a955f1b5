package interval

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrInverted indicates a range whose start lies after its end.
var ErrInverted = errors.New("interval: start after end")

// Range is the half-open interval [Start, End).
type Range[T constraints.Integer] struct {
	Start, End T
}

// New returns [start, end). An empty range (start == end) is allowed.
func New[T constraints.Integer](start, end T) (Range[T], error) {
	if start > end {
		return Range[T]{}, fmt.Errorf("%w: [%d, %d)", ErrInverted, start, end)
	}

	return Range[T]{Start: start, End: end}, nil
}

// FromLen returns [start, start+n).
func FromLen[T constraints.Integer](start, n T) (Range[T], error) {
	return New(start, start+n)
}

// Len is the number of values in r.
func (r Range[T]) Len() T {
	if r.End <= r.Start {
		return 0
	}

	return r.End - r.Start
}

// Empty reports whether r holds no values.
func (r Range[T]) Empty() bool { return r.End <= r.Start }

// Contains reports whether v lies in r.
func (r Range[T]) Contains(v T) bool { return r.Start <= v && v < r.End }

// Shift moves r by d.
func (r Range[T]) Shift(d T) Range[T] {
	return Range[T]{Start: r.Start + d, End: r.End + d}
}

// SplitAt cuts r into [Start, v) and [v, End).
// ok is false, and r is returned unchanged as lo, unless Start < v < End.
func (r Range[T]) SplitAt(v T) (lo, hi Range[T], ok bool) {
	if v <= r.Start || v >= r.End {
		return r, Range[T]{}, false
	}

	return Range[T]{r.Start, v}, Range[T]{v, r.End}, true
}

// Intersect returns the part of r inside o and the non-empty parts of r
// outside it (at most two, in ascending order).
func (r Range[T]) Intersect(o Range[T]) (overlap Range[T], found bool, rest []Range[T]) {
	lo, hi := max(r.Start, o.Start), min(r.End, o.End)
	if lo >= hi {
		if !r.Empty() {
			rest = append(rest, r)
		}
		return Range[T]{}, false, rest
	}
	if r.Start < lo {
		rest = append(rest, Range[T]{r.Start, lo})
	}
	if hi < r.End {
		rest = append(rest, Range[T]{hi, r.End})
	}

	return Range[T]{lo, hi}, true, rest
}

// String renders r as "[start,end)".
func (r Range[T]) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
