// Package day01 solves "Trebuchet?!": recover a two-digit calibration value
// from the first and last digit of every line.
package day01

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 1, Title: "Trebuchet?!", Solve: Solve})
}

var spelled = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitToken matches a digit or a spelled digit at every position. The
// lookahead keeps overlapping words such as "eightwo" from hiding each other.
var digitToken = regexp2.MustCompile(`(?=(`+strings.Join(spelled, "|")+`|\d))`, regexp2.None)

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	p1, err := Part1(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p2, err := Part2(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: p1, Part2: p2}, nil
}

// Part1 sums first*10+last over the ASCII digits of each line.
func Part1(input string) (int64, error) {
	var sum int64
	for i, line := range puzzle.Lines(input) {
		first := strings.IndexFunc(line, func(r rune) bool { return r < 128 && numeric.IsDigit(byte(r)) })
		last := strings.LastIndexFunc(line, func(r rune) bool { return r < 128 && numeric.IsDigit(byte(r)) })
		if first < 0 {
			return 0, fmt.Errorf("%w: line %d", ErrNoDigit, i+1)
		}
		sum += int64(numeric.Digit(line[first])*10 + numeric.Digit(line[last]))
	}

	return sum, nil
}

// Part2 is Part1 with spelled-out digits "zero" through "nine" counted too.
func Part2(input string) (int64, error) {
	var sum int64
	for i, line := range puzzle.Lines(input) {
		first, last, err := spelledDigits(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += int64(first*10 + last)
	}

	return sum, nil
}

func spelledDigits(line string) (first, last int, err error) {
	found := false
	m, err := digitToken.FindStringMatch(line)
	for ; m != nil && err == nil; m, err = digitToken.FindNextMatch(m) {
		v := tokenValue(m.GroupByNumber(1).String())
		if !found {
			first, found = v, true
		}
		last = v
	}
	if err != nil {
		return 0, 0, fmt.Errorf("day01: matching %q: %w", line, err)
	}
	if !found {
		return 0, 0, ErrNoDigit
	}

	return first, last, nil
}

func tokenValue(tok string) int {
	if len(tok) == 1 {
		return numeric.Digit(tok[0])
	}
	for v, w := range spelled {
		if w == tok {
			return v
		}
	}
	panic("day01: unexpected token " + tok)
}
