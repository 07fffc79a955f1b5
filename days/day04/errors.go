package day04

import "errors"

// ErrBadCard is returned for a line that is not "Card N: winning | have".
var ErrBadCard = errors.New("day04: malformed card")
