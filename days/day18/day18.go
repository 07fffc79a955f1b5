// Package day18 solves "Lavaduct Lagoon". The dig plan traces a lattice
// polygon; the lagoon holds every cell inside or on it.
package day18

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/polygon"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// ErrBadStep is returned for a plan line that is not "D N (#rrggbb)".
var ErrBadStep = errors.New("day18: malformed dig step")

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 18, Title: "Lavaduct Lagoon", Solve: Solve})
}

// Step is one instruction of the dig plan.
type Step struct {
	Dir gridgraph.Direction
	Len int
}

// Parse returns the plan read two ways: from the direction and length
// columns, and from the hex code, whose first five digits are the length
// and last digit the direction (0=R 1=D 2=L 3=U).
func Parse(input string) (plain, hex []Step, err error) {
	hexDirs := [4]gridgraph.Direction{gridgraph.Right, gridgraph.Down, gridgraph.Left, gridgraph.Up}
	for i, line := range puzzle.Lines(input) {
		f := strings.Fields(line)
		if len(f) != 3 || len(f[0]) != 1 {
			return nil, nil, fmt.Errorf("%w: line %d: %q", ErrBadStep, i+1, line)
		}
		d, ok := gridgraph.ParseDirection(f[0][0])
		if !ok {
			return nil, nil, fmt.Errorf("%w: line %d: direction %q", ErrBadStep, i+1, f[0])
		}
		n, err := strconv.Atoi(f[1])
		if err != nil || n < 0 {
			return nil, nil, fmt.Errorf("%w: line %d: length %q", ErrBadStep, i+1, f[1])
		}
		plain = append(plain, Step{d, n})

		code, ok := strings.CutPrefix(f[2], "(#")
		code, ok2 := strings.CutSuffix(code, ")")
		if !ok || !ok2 || len(code) != 6 {
			return nil, nil, fmt.Errorf("%w: line %d: colour %q", ErrBadStep, i+1, f[2])
		}
		hn, err := strconv.ParseInt(code[:5], 16, 64)
		if err != nil || code[5] < '0' || code[5] > '3' {
			return nil, nil, fmt.Errorf("%w: line %d: colour %q", ErrBadStep, i+1, f[2])
		}
		hex = append(hex, Step{hexDirs[code[5]-'0'], int(hn)})
	}

	return plain, hex, nil
}

// Lagoon returns how many cubic metres the lagoon holds.
func Lagoon(steps []Step) int64 {
	pts := make([]gridgraph.Point, 0, len(steps))
	var at gridgraph.Point
	for _, s := range steps {
		at = at.Step(s.Dir, s.Len)
		pts = append(pts, at)
	}

	return polygon.LatticeCount(pts)
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	plain, hex, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: Lagoon(plain), Part2: Lagoon(hex)}, nil
}
