package day05

import "errors"

var (
	// ErrBadAlmanac is returned when the seeds line or a map block is malformed.
	ErrBadAlmanac = errors.New("day05: malformed almanac")
	// ErrOddSeeds is returned when part 2 cannot pair seeds into ranges.
	ErrOddSeeds = errors.New("day05: odd number of seed values")
)
