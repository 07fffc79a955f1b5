// Package day13 solves "Point of Incidence": find the line of reflection in
// each pattern, first exactly and then with a single smudge.
package day13

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// ErrNoMirror is returned when a pattern has no reflection line with the
// requested number of mismatches.
var ErrNoMirror = errors.New("day13: no reflection line")

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 13, Title: "Point of Incidence", Solve: Solve})
}

// rowMirror returns the number of rows above a horizontal reflection line
// whose two sides differ in exactly smudges cells, or 0 when there is none.
func rowMirror(g *gridgraph.Grid, smudges int) int {
	for line := 1; line < g.Height; line++ {
		diff := 0
		for up, down := line-1, line; up >= 0 && down < g.Height && diff <= smudges; up, down = up-1, down+1 {
			a, b := g.Row(up), g.Row(down)
			for x := range a {
				if a[x] != b[x] {
					diff++
				}
			}
		}
		if diff == smudges {
			return line
		}
	}

	return 0
}

// Summarize returns 100 × rows above a horizontal line, or else the columns
// left of a vertical line.
func Summarize(g *gridgraph.Grid, smudges int) (int64, error) {
	if n := rowMirror(g, smudges); n > 0 {
		return int64(100 * n), nil
	}
	if n := rowMirror(g.Transpose(), smudges); n > 0 {
		return int64(n), nil
	}

	return 0, fmt.Errorf("%w: %d smudges", ErrNoMirror, smudges)
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	var ans puzzle.Answer
	for i, block := range puzzle.Blocks(input) {
		text := ""
		for _, l := range block {
			text += l + "\n"
		}
		g, err := gridgraph.Parse(text)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("day13: pattern %d: %w", i+1, err)
		}
		p1, err := Summarize(g, 0)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("pattern %d: %w", i+1, err)
		}
		p2, err := Summarize(g, 1)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("pattern %d: %w", i+1, err)
		}
		ans.Part1 += p1
		ans.Part2 += p2
	}

	return ans, nil
}
