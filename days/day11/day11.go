// Package day11 solves "Cosmic Expansion".
package day11

import (
	"slices"

	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 11, Title: "Cosmic Expansion", Solve: Solve})
}

const galaxy = '#'

// Distances sums the Manhattan distance between every pair of galaxies after
// each empty row and column has grown to factor rows or columns.
func Distances(g *gridgraph.Grid, factor int64) int64 {
	xs := make([]int64, 0)
	ys := make([]int64, 0)
	colHas := make([]bool, g.Width)
	rowHas := make([]bool, g.Height)
	for i, b := range g.Bytes() {
		if b != galaxy {
			continue
		}
		p := g.Coordinate(i)
		colHas[p.X], rowHas[p.Y] = true, true
	}
	colAt := expand(colHas, factor)
	rowAt := expand(rowHas, factor)
	for i, b := range g.Bytes() {
		if b == galaxy {
			p := g.Coordinate(i)
			xs = append(xs, colAt[p.X])
			ys = append(ys, rowAt[p.Y])
		}
	}

	return pairSum(xs) + pairSum(ys)
}

// expand maps each index to its coordinate once every index without an
// occupant counts factor times.
func expand(occupied []bool, factor int64) []int64 {
	at := make([]int64, len(occupied))
	var pos int64
	for i, occ := range occupied {
		at[i] = pos
		if occ {
			pos++
		} else {
			pos += factor
		}
	}

	return at
}

// pairSum returns Σ|a-b| over all unordered pairs.
func pairSum(vs []int64) int64 {
	slices.Sort(vs)
	var sum, prefix int64
	for i, v := range vs {
		sum += int64(i)*v - prefix
		prefix += v
	}

	return sum
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: Distances(g, 2), Part2: Distances(g, 1_000_000)}, nil
}
