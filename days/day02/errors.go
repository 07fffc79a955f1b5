package day02

import "errors"

var (
	// ErrBadGame is returned for a line that is not "Game N: draws".
	ErrBadGame = errors.New("day02: malformed game")
	// ErrUnknownColour is returned for a cube colour other than red, green or blue.
	ErrUnknownColour = errors.New("day02: unknown colour")
)
