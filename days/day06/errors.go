package day06

import "errors"

// ErrBadSheet is returned when the Time and Distance lines do not line up.
var ErrBadSheet = errors.New("day06: malformed race sheet")
