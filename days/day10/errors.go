package day10

import "errors"

var (
	// ErrBadTile is returned for a character that is not a pipe, '.' or 'S'.
	ErrBadTile = errors.New("day10: unknown tile")
	// ErrNoStart is returned when the map has no 'S' tile.
	ErrNoStart = errors.New("day10: no start tile")
	// ErrBadStart is returned when 'S' does not join exactly two pipes.
	ErrBadStart = errors.New("day10: start tile is not on a single loop")
)
