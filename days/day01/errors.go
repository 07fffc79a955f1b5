package day01

import "errors"

// ErrNoDigit is returned for a line without any recognisable digit.
var ErrNoDigit = errors.New("day01: line has no digit")
