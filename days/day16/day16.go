// Package day16 solves "The Floor Will Be Lava": trace light beams through
// mirrors and splitters and count the tiles they energize.
package day16

import (
	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 16, Title: "The Floor Will Be Lava", Solve: Solve})
}

// Beam is light on a tile, travelling in a direction.
type Beam struct {
	At  gridgraph.Point
	Dir gridgraph.Direction
}

// Contraption is the mirror layout.
type Contraption struct {
	grid *gridgraph.Grid
}

// Parse reads the layout.
func Parse(input string) (*Contraption, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return nil, err
	}

	return &Contraption{grid: g}, nil
}

// headings returns the directions light leaves a tile in.
func headings(tile byte, d gridgraph.Direction) []gridgraph.Direction {
	switch tile {
	case '/':
		// Right and Left turn counter-clockwise; Up and Down clockwise.
		return []gridgraph.Direction{d.Turn(d.Vertical())}
	case '\\':
		return []gridgraph.Direction{d.Turn(!d.Vertical())}
	case '|':
		if !d.Vertical() {
			return []gridgraph.Direction{gridgraph.Up, gridgraph.Down}
		}
	case '-':
		if d.Vertical() {
			return []gridgraph.Direction{gridgraph.Left, gridgraph.Right}
		}
	}

	return []gridgraph.Direction{d}
}

func (c *Contraption) next(b Beam) []Beam {
	var out []Beam
	for _, d := range headings(c.grid.At(b.At), b.Dir) {
		q := b.At.Add(d.Delta())
		if c.grid.InBounds(q) {
			out = append(out, Beam{At: q, Dir: d})
		}
	}

	return out
}

// Energized counts tiles visited by light entering at start.
func (c *Contraption) Energized(start Beam) (int64, error) {
	res, err := bfs.BFS([]Beam{start}, c.next)
	if err != nil {
		return 0, err
	}
	tiles := make(map[gridgraph.Point]struct{}, len(res.Order))
	for _, b := range res.Order {
		tiles[b.At] = struct{}{}
	}

	return int64(len(tiles)), nil
}

// Entries lists every beam entering from an edge, pointing inwards.
func (c *Contraption) Entries() []Beam {
	w, h := c.grid.Width, c.grid.Height
	var out []Beam
	for x := 0; x < w; x++ {
		out = append(out,
			Beam{gridgraph.Point{X: x, Y: 0}, gridgraph.Down},
			Beam{gridgraph.Point{X: x, Y: h - 1}, gridgraph.Up})
	}
	for y := 0; y < h; y++ {
		out = append(out,
			Beam{gridgraph.Point{X: 0, Y: y}, gridgraph.Right},
			Beam{gridgraph.Point{X: w - 1, Y: y}, gridgraph.Left})
	}

	return out
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	c, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p1, err := c.Energized(Beam{Dir: gridgraph.Right})
	if err != nil {
		return puzzle.Answer{}, err
	}
	var best int64
	for _, e := range c.Entries() {
		n, err := c.Energized(e)
		if err != nil {
			return puzzle.Answer{}, err
		}
		best = max(best, n)
	}

	return puzzle.Answer{Part1: p1, Part2: best}, nil
}
