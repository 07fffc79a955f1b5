package day19

import "errors"

var (
	// ErrBadWorkflow is returned for a malformed workflow line.
	ErrBadWorkflow = errors.New("day19: malformed workflow")
	// ErrBadPart is returned for a malformed part rating line.
	ErrBadPart = errors.New("day19: malformed part")
	// ErrNoWorkflow is returned when a rule sends a part to an undefined workflow.
	ErrNoWorkflow = errors.New("day19: unknown workflow")
	// ErrLoop is returned when workflows send a part around in a circle.
	ErrLoop = errors.New("day19: workflow loop")
)
