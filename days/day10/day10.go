// Package day10 solves "Pipe Maze": find the loop through S, its farthest
// tile, and the number of tiles it encloses.
package day10

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/polygon"
	"github.com/katalvlaran/aoc2023/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 10, Title: "Pipe Maze", Solve: Solve})
}

type point = gridgraph.Point

// pipes maps each pipe tile to the two directions it opens towards.
var pipes = map[byte][2]gridgraph.Direction{
	'|': {gridgraph.Up, gridgraph.Down},
	'-': {gridgraph.Left, gridgraph.Right},
	'L': {gridgraph.Up, gridgraph.Right},
	'J': {gridgraph.Up, gridgraph.Left},
	'7': {gridgraph.Down, gridgraph.Left},
	'F': {gridgraph.Down, gridgraph.Right},
}

// Maze is a pipe grid with the start tile resolved to a real pipe.
type Maze struct {
	grid  *gridgraph.Grid
	Start point
	loop  []point
}

// Parse reads the grid and replaces S with the pipe that joins its two
// connecting neighbours.
func Parse(input string) (*Maze, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return nil, err
	}
	for i, b := range g.Bytes() {
		if _, ok := pipes[b]; !ok && b != '.' && b != 'S' {
			return nil, fmt.Errorf("%w: %q at %s", ErrBadTile, b, g.Coordinate(i))
		}
	}
	start, ok := g.Find('S')
	if !ok {
		return nil, ErrNoStart
	}

	m := &Maze{grid: g, Start: start}
	var open []gridgraph.Direction
	for _, d := range gridgraph.Directions {
		q := start.Add(d.Delta())
		if m.opens(q, d.Opposite()) {
			open = append(open, d)
		}
	}
	if len(open) != 2 {
		return nil, fmt.Errorf("%w: %d connections", ErrBadStart, len(open))
	}
	for tile, dirs := range pipes {
		if (dirs[0] == open[0] && dirs[1] == open[1]) || (dirs[0] == open[1] && dirs[1] == open[0]) {
			g.Set(start, tile)
		}
	}
	if m.loop, err = m.walk(); err != nil {
		return nil, err
	}

	return m, nil
}

// opens reports whether the tile at p has an opening towards d.
func (m *Maze) opens(p point, d gridgraph.Direction) bool {
	b, ok := m.grid.Get(p)
	if !ok {
		return false
	}
	dirs, ok := pipes[b]

	return ok && (dirs[0] == d || dirs[1] == d)
}

// next lists the tiles the pipe at p connects to in both directions.
func (m *Maze) next(p point) []point {
	dirs := pipes[m.grid.At(p)]
	out := make([]point, 0, 2)
	for _, d := range dirs {
		q := p.Add(d.Delta())
		if m.opens(q, d.Opposite()) {
			out = append(out, q)
		}
	}

	return out
}

// Farthest is the number of steps along the loop to the tile farthest
// from the start.
func (m *Maze) Farthest() (int64, error) {
	res, err := bfs.BFS([]point{m.Start}, m.next)
	if err != nil {
		return 0, err
	}

	return int64(res.MaxDepth()), nil
}

// walk follows the pipes from the start until it comes back.
func (m *Maze) walk() ([]point, error) {
	loop := []point{m.Start}
	prev, cur := m.Start, m.next(m.Start)[0]
	for cur != m.Start {
		loop = append(loop, cur)
		nb := m.next(cur)
		if len(nb) != 2 {
			return nil, fmt.Errorf("%w: pipe breaks off at %s", ErrBadStart, cur)
		}
		if nb[0] == prev {
			prev, cur = cur, nb[1]
		} else {
			prev, cur = cur, nb[0]
		}
	}

	return loop, nil
}

// Loop returns the loop tiles in walking order, beginning at the start.
func (m *Maze) Loop() []point {
	return m.loop
}

// Enclosed counts the tiles strictly inside the loop.
func (m *Maze) Enclosed() int64 {
	return polygon.Interior(m.loop)
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	m, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	far, err := m.Farthest()
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: far, Part2: m.Enclosed()}, nil
}
