// Package day14 solves "Parabolic Reflector Dish". The spin cycle is
// periodic, so part 2 finds the period and jumps ahead instead of running a
// billion cycles.
package day14

import (
	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/aoc2023/cycle"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/puzzle"
	"github.com/katalvlaran/aoc2023/trace"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 14, Title: "Parabolic Reflector Dish", Solve: Solve})
}

const (
	round = 'O'
	empty = '.'
)

// Spins is the number of spin cycles part 2 asks for.
const Spins = 1_000_000_000

// Tilt rolls every round rock as far as it goes towards d, in place.
func Tilt(g *gridgraph.Grid, d gridgraph.Direction) {
	// Walk each lane starting at the wall the rocks roll against.
	step := d.Opposite().Delta()
	lanes, length := g.Width, g.Height
	if !d.Vertical() {
		lanes, length = g.Height, g.Width
	}
	for lane := 0; lane < lanes; lane++ {
		var p gridgraph.Point
		switch d {
		case gridgraph.Up:
			p = gridgraph.Point{X: lane, Y: 0}
		case gridgraph.Down:
			p = gridgraph.Point{X: lane, Y: g.Height - 1}
		case gridgraph.Left:
			p = gridgraph.Point{X: 0, Y: lane}
		default:
			p = gridgraph.Point{X: g.Width - 1, Y: lane}
		}
		free := p
		for i := 0; i < length; i, p = i+1, p.Add(step) {
			switch g.At(p) {
			case round:
				if p != free {
					g.Set(free, round)
					g.Set(p, empty)
				}
				free = free.Add(step)
			case empty:
			default:
				free = p.Add(step)
			}
		}
	}
}

// Spin tilts north, west, south and east, in that order.
func Spin(g *gridgraph.Grid) {
	for _, d := range []gridgraph.Direction{gridgraph.Up, gridgraph.Left, gridgraph.Down, gridgraph.Right} {
		Tilt(g, d)
	}
}

// Load is the total load on the north support beams.
func Load(g *gridgraph.Grid) int64 {
	var sum int64
	for y := 0; y < g.Height; y++ {
		for _, b := range g.Row(y) {
			if b == round {
				sum += int64(g.Height - y)
			}
		}
	}

	return sum
}

// LoadAfter returns the north load after n spin cycles.
func LoadAfter(g *gridgraph.Grid, n int) (int64, error) {
	spin := func(cur *gridgraph.Grid) *gridgraph.Grid {
		next := cur.Clone()
		Spin(next)
		return next
	}
	key := func(cur *gridgraph.Grid) uint64 { return xxhash.Sum64(cur.Bytes()) }

	res, err := cycle.Find(g.Clone(), spin, key)
	if err != nil {
		return 0, err
	}
	trace.Printf("day14: spin cycle starts at %d, period %d", res.Start, res.Length)

	return Load(res.At(n)), nil
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	north := g.Clone()
	Tilt(north, gridgraph.Up)
	p2, err := LoadAfter(g, Spins)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: Load(north), Part2: p2}, nil
}
