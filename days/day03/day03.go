// Package day03 solves "Gear Ratios" on an engine schematic grid.
package day03

import (
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 3, Title: "Gear Ratios", Solve: Solve})
}

// Number is a horizontal run of digits in the schematic.
type Number struct {
	Value int64
	At    gridgraph.Point // leftmost digit
	Len   int
}

// IsSymbol reports whether b marks a part: anything but a digit or '.'.
func IsSymbol(b byte) bool {
	return b != '.' && !numeric.IsDigit(b)
}

// Numbers lists every number in reading order.
func Numbers(g *gridgraph.Grid) []Number {
	var out []Number
	for y := 0; y < g.Height; y++ {
		row := g.Row(y)
		for x := 0; x < g.Width; {
			if !numeric.IsDigit(row[x]) {
				x++
				continue
			}
			n := Number{At: gridgraph.Point{X: x, Y: y}}
			for ; x < g.Width && numeric.IsDigit(row[x]); x++ {
				n.Value = n.Value*10 + int64(numeric.Digit(row[x]))
				n.Len++
			}
			out = append(out, n)
		}
	}

	return out
}

// adjacent returns the distinct symbol cells touching n, diagonals included.
func adjacent(g *gridgraph.Grid, n Number) []gridgraph.Point {
	seen := make(map[gridgraph.Point]bool)
	var out, buf []gridgraph.Point
	for i := 0; i < n.Len; i++ {
		buf = g.Neighbors(buf[:0], gridgraph.Point{X: n.At.X + i, Y: n.At.Y})
		for _, q := range buf {
			if IsSymbol(g.At(q)) && !seen[q] {
				seen[q] = true
				out = append(out, q)
			}
		}
	}

	return out
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	g, err := gridgraph.Parse(input, gridgraph.WithConn(gridgraph.Conn8))
	if err != nil {
		return puzzle.Answer{}, err
	}
	p1, p2 := Parts(g)

	return puzzle.Answer{Part1: p1, Part2: p2}, nil
}

// Parts returns the sum of part numbers and the sum of gear ratios. A gear
// is a '*' touching exactly two numbers.
func Parts(g *gridgraph.Grid) (partSum, gearSum int64) {
	gears := make(map[gridgraph.Point][]int64)
	for _, n := range Numbers(g) {
		syms := adjacent(g, n)
		if len(syms) > 0 {
			partSum += n.Value
		}
		for _, s := range syms {
			if g.At(s) == '*' {
				gears[s] = append(gears[s], n.Value)
			}
		}
	}
	for _, vals := range gears {
		if len(vals) == 2 {
			gearSum += vals[0] * vals[1]
		}
	}

	return partSum, gearSum
}
