package day08

import "errors"

var (
	// ErrBadMap is returned for malformed instructions or node lines.
	ErrBadMap = errors.New("day08: malformed map")
	// ErrNoNode is returned when a walk starts at or leads to an undefined node.
	ErrNoNode = errors.New("day08: unknown node")
	// ErrNoExit is returned when a walk never reaches an exit node.
	ErrNoExit = errors.New("day08: exit unreachable")
)
