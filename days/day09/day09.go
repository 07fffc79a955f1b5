// Package day09 solves "Mirage Maintenance".
package day09

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// ErrEmptyHistory is returned for a line with no values.
var ErrEmptyHistory = errors.New("day09: empty history")

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 9, Title: "Mirage Maintenance", Solve: Solve})
}

// Extrapolate returns the values one step before and one step after seq,
// found by repeated differencing until a row is all zero.
func Extrapolate(seq []int) (prev, next int) {
	row := append([]int(nil), seq...)
	sign := 1
	for len(row) > 0 {
		zero := true
		for _, v := range row {
			if v != 0 {
				zero = false
				break
			}
		}
		if zero {
			break
		}
		next += row[len(row)-1]
		prev += sign * row[0]
		sign = -sign
		for i := 0; i+1 < len(row); i++ {
			row[i] = row[i+1] - row[i]
		}
		row = row[:len(row)-1]
	}

	return prev, next
}

// Solve runs both parts: the sum of next values and the sum of previous ones.
func Solve(input string) (puzzle.Answer, error) {
	var ans puzzle.Answer
	for i, line := range puzzle.Lines(input) {
		seq, err := numeric.Ints(line)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("day09: line %d: %w", i+1, err)
		}
		if len(seq) == 0 {
			return puzzle.Answer{}, fmt.Errorf("%w: line %d", ErrEmptyHistory, i+1)
		}
		prev, next := Extrapolate(seq)
		ans.Part1 += int64(next)
		ans.Part2 += int64(prev)
	}

	return ans, nil
}
