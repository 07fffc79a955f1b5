// Package day04 solves "Scratchcards".
package day04

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 4, Title: "Scratchcards", Solve: Solve})
}

// Matches returns, per card, how many of its numbers are winning numbers.
func Matches(input string) ([]int, error) {
	var out []int
	for i, line := range puzzle.Lines(input) {
		_, body, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d", ErrBadCard, i+1)
		}
		ws, hs, ok := strings.Cut(body, "|")
		if !ok {
			return nil, fmt.Errorf("%w: line %d", ErrBadCard, i+1)
		}
		winning, err := numeric.Ints(ws)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadCard, i+1, err)
		}
		have, err := numeric.Ints(hs)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadCard, i+1, err)
		}
		win := make(map[int]bool, len(winning))
		for _, w := range winning {
			win[w] = true
		}
		n := 0
		for _, h := range have {
			if win[h] {
				n++
			}
		}
		out = append(out, n)
	}

	return out, nil
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	m, err := Matches(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: Points(m), Part2: Cascade(m)}, nil
}

// Points sums 2^(matches-1) over cards with at least one match.
func Points(matches []int) int64 {
	var sum int64
	for _, n := range matches {
		if n > 0 {
			sum += 1 << (n - 1)
		}
	}

	return sum
}

// Cascade counts cards once each card i with n matches has won one copy of
// each of the next n cards per copy of i. Copies never run past the last card.
func Cascade(matches []int) int64 {
	copies := make([]int64, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	var total int64
	for i, n := range matches {
		for j := i + 1; j <= i+n && j < len(copies); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}

	return total
}
