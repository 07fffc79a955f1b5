package day07

import "errors"

// ErrBadHand is returned for a line that is not five cards and a bid.
var ErrBadHand = errors.New("day07: malformed hand")
