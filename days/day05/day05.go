// Package day05 solves "If You Give A Seed A Fertilizer". Part 2 pushes
// whole seed ranges through the maps, splitting them at rule boundaries.
package day05

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/aoc2023/interval"
	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
	"github.com/katalvlaran/aoc2023/trace"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 5, Title: "If You Give A Seed A Fertilizer", Solve: Solve})
}

type span = interval.Range[int]

// Rule shifts every value of Src by Delta.
type Rule struct {
	Src   span
	Delta int
}

// Map is one "x-to-y map" block. Values outside every rule pass unchanged.
type Map struct {
	Name  string
	Rules []Rule
}

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds []int
	Maps  []Map
}

// Parse reads the seeds line and the map blocks that follow it.
func Parse(input string) (*Almanac, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrBadAlmanac)
	}
	head, ok := strings.CutPrefix(blocks[0][0], "seeds:")
	if !ok || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("%w: missing seeds line", ErrBadAlmanac)
	}
	seeds, err := numeric.Ints(head)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAlmanac, err)
	}

	a := &Almanac{Seeds: seeds}
	for _, b := range blocks[1:] {
		m := Map{Name: strings.TrimSuffix(b[0], " map:")}
		for _, line := range b[1:] {
			f, err := numeric.Ints(line)
			if err != nil || len(f) != 3 {
				return nil, fmt.Errorf("%w: %s: bad rule %q", ErrBadAlmanac, m.Name, line)
			}
			src, err := interval.FromLen(f[1], f[2])
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrBadAlmanac, m.Name, err)
			}
			m.Rules = append(m.Rules, Rule{Src: src, Delta: f[0] - f[1]})
		}
		a.Maps = append(a.Maps, m)
	}

	return a, nil
}

// Apply maps a single value.
func (m Map) Apply(v int) int {
	for _, r := range m.Rules {
		if r.Src.Contains(v) {
			return v + r.Delta
		}
	}

	return v
}

// ApplyRanges maps a set of ranges, splitting any range that straddles a
// rule boundary. The output covers exactly the images of the input values.
func (m Map) ApplyRanges(in []span) []span {
	var out []span
	pending := in
	for _, r := range m.Rules {
		var next []span
		for _, p := range pending {
			overlap, found, rest := p.Intersect(r.Src)
			if found {
				out = append(out, overlap.Shift(r.Delta))
			}
			next = append(next, rest...)
		}
		pending = next
	}

	return append(out, pending...)
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	a, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p2, err := a.LowestRange()
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: int64(a.Lowest()), Part2: int64(p2)}, nil
}

// Lowest is the smallest location of any listed seed.
func (a *Almanac) Lowest() int {
	best := -1
	for _, s := range a.Seeds {
		v := s
		for _, m := range a.Maps {
			v = m.Apply(v)
		}
		if best < 0 || v < best {
			best = v
		}
	}

	return best
}

// LowestRange treats the seeds as (start, length) pairs and returns the
// smallest reachable location.
func (a *Almanac) LowestRange() (int, error) {
	if len(a.Seeds)%2 != 0 {
		return 0, fmt.Errorf("%w: %d", ErrOddSeeds, len(a.Seeds))
	}
	var cur []span
	for i := 0; i < len(a.Seeds); i += 2 {
		r, err := interval.FromLen(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrBadAlmanac, err)
		}
		if !r.Empty() {
			cur = append(cur, r)
		}
	}
	for _, m := range a.Maps {
		cur = m.ApplyRanges(cur)
		trace.Printf("day05: %s -> %d ranges", m.Name, len(cur))
	}
	if len(cur) == 0 {
		return -1, nil
	}

	return slices.MinFunc(cur, func(x, y span) int { return x.Start - y.Start }).Start, nil
}
