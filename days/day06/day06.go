// Package day06 solves "Wait For It".
//
// Holding the button for h of a race's T milliseconds travels h*(T-h), so
// the winning hold times are the integers strictly between the roots of
// h² - T·h + D = 0. The roots are estimated in floating point and then
// corrected with exact integer checks.
package day06

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 6, Title: "Wait For It", Solve: Solve})
}

// Race is one column of the sheet.
type Race struct {
	Time, Record int64
}

// Ways counts the hold times that beat the record.
func (r Race) Ways() int64 {
	beats := func(h int64) bool { return h*(r.Time-h) > r.Record }

	disc := r.Time*r.Time - 4*r.Record
	if disc < 0 {
		return 0
	}
	lo := int64(math.Floor((float64(r.Time) - math.Sqrt(float64(disc))) / 2))
	lo = max(lo, 0)
	for lo > 0 && beats(lo-1) {
		lo--
	}
	half := r.Time / 2
	for lo <= half && !beats(lo) {
		lo++
	}
	if lo > half {
		return 0
	}

	return r.Time - 2*lo + 1
}

// Parse reads the races column by column.
func Parse(input string) ([]Race, error) {
	times, dists, err := split(input)
	if err != nil {
		return nil, err
	}
	ts, err := numeric.Ints(times)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSheet, err)
	}
	ds, err := numeric.Ints(dists)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSheet, err)
	}
	if len(ts) != len(ds) {
		return nil, fmt.Errorf("%w: %d times, %d distances", ErrBadSheet, len(ts), len(ds))
	}
	races := make([]Race, len(ts))
	for i := range ts {
		races[i] = Race{Time: int64(ts[i]), Record: int64(ds[i])}
	}

	return races, nil
}

// ParseKerned reads the sheet as a single race, ignoring the spaces
// between digits.
func ParseKerned(input string) (Race, error) {
	times, dists, err := split(input)
	if err != nil {
		return Race{}, err
	}
	ts, err := numeric.Ints(strings.ReplaceAll(times, " ", ""))
	if err != nil || len(ts) != 1 {
		return Race{}, fmt.Errorf("%w: time %q", ErrBadSheet, times)
	}
	ds, err := numeric.Ints(strings.ReplaceAll(dists, " ", ""))
	if err != nil || len(ds) != 1 {
		return Race{}, fmt.Errorf("%w: distance %q", ErrBadSheet, dists)
	}

	return Race{Time: int64(ts[0]), Record: int64(ds[0])}, nil
}

func split(input string) (times, dists string, err error) {
	lines := puzzle.Lines(input)
	if len(lines) != 2 {
		return "", "", fmt.Errorf("%w: want 2 lines, got %d", ErrBadSheet, len(lines))
	}
	times, ok1 := strings.CutPrefix(lines[0], "Time:")
	dists, ok2 := strings.CutPrefix(lines[1], "Distance:")
	if !ok1 || !ok2 {
		return "", "", fmt.Errorf("%w: missing Time or Distance label", ErrBadSheet)
	}

	return times, dists, nil
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	races, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	product := int64(1)
	for _, r := range races {
		product *= r.Ways()
	}
	big, err := ParseKerned(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: product, Part2: big.Ways()}, nil
}
