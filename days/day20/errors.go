package day20

import "errors"

var (
	// ErrNoRx is returned by part 2 when no module sends to rx.
	ErrNoRx = errors.New("day20: network has no rx module")
	// ErrUnsupported is returned when rx is not fed by a single conjunction.
	ErrUnsupported = errors.New("day20: rx must be fed by exactly one conjunction")
	// ErrTooManyPresses is returned when a feeder never fires within MaxPresses.
	ErrTooManyPresses = errors.New("day20: press budget exhausted")
)
