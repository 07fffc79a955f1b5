// Package day17 solves "Clumsy Crucible": least heat loss from the top-left
// to the bottom-right block when a crucible must move between a minimum and
// maximum number of blocks before each turn.
package day17

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/dijkstra"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
)

// ErrBadBlock is returned for a city block that is not a digit.
var ErrBadBlock = errors.New("day17: heat loss must be a digit")

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 17, Title: "Clumsy Crucible", Solve: Solve})
}

// Crucible limits how far a crucible travels straight: at least Min blocks
// and at most Max blocks before it turns.
type Crucible struct {
	Min, Max int
}

// The two crucible models the puzzle asks about.
var (
	Normal = Crucible{Min: 1, Max: 3}
	Ultra  = Crucible{Min: 4, Max: 10}
)

// state is a crucible that has just finished a straight leg heading Dir.
type state struct {
	At  gridgraph.Point
	Dir gridgraph.Direction
}

// City is the grid of heat-loss digits.
type City struct {
	grid *gridgraph.Grid
}

// Parse reads the heat-loss map.
func Parse(input string) (*City, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return nil, err
	}
	for i, b := range g.Bytes() {
		if !numeric.IsDigit(b) {
			return nil, fmt.Errorf("%w: %q at %s", ErrBadBlock, b, g.Coordinate(i))
		}
	}

	return &City{grid: g}, nil
}

// MinHeatLoss returns the least heat lost on the way to the bottom-right
// block, stopping only after a leg of at least c.Min blocks.
func (city *City) MinHeatLoss(c Crucible) (int64, error) {
	g := city.grid
	end := gridgraph.Point{X: g.Width - 1, Y: g.Height - 1}
	next := func(s state) []dijkstra.Edge[state] {
		var out []dijkstra.Edge[state]
		for _, d := range []gridgraph.Direction{s.Dir.Turn(true), s.Dir.Turn(false)} {
			var cost int64
			p := s.At
			for k := 1; k <= c.Max; k++ {
				p = p.Add(d.Delta())
				if !g.InBounds(p) {
					break
				}
				cost += int64(numeric.Digit(g.At(p)))
				if k >= c.Min {
					out = append(out, dijkstra.Edge[state]{To: state{p, d}, Weight: cost})
				}
			}
		}
		return out
	}
	// Facing right or down at the start lets the first leg go either way.
	sources := []state{{Dir: gridgraph.Right}, {Dir: gridgraph.Down}}

	return dijkstra.ShortestPath(sources, next, func(s state) bool { return s.At == end })
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	city, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p1, err := city.MinHeatLoss(Normal)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p2, err := city.MinHeatLoss(Ultra)
	if err != nil {
		return puzzle.Answer{Part1: p1}, fmt.Errorf("%w: %w", puzzle.ErrPart2, err)
	}

	return puzzle.Answer{Part1: p1, Part2: p2}, nil
}
