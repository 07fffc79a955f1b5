// Package day08 solves "Haunted Wasteland".
package day08

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
	"github.com/katalvlaran/aoc2023/trace"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 8, Title: "Haunted Wasteland", Solve: Solve})
}

// Network is the instruction string and the left/right node table.
type Network struct {
	Steps string
	Nodes map[string][2]string
}

// Parse reads the instruction line, a blank line and "AAA = (BBB, CCC)" nodes.
func Parse(input string) (*Network, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("%w: want instructions and a node block", ErrBadMap)
	}
	steps := strings.TrimSpace(blocks[0][0])
	if steps == "" || strings.Trim(steps, "LR") != "" {
		return nil, fmt.Errorf("%w: instructions %q", ErrBadMap, steps)
	}

	n := &Network{Steps: steps, Nodes: make(map[string][2]string, len(blocks[1]))}
	for _, line := range blocks[1] {
		name, pair, ok := strings.Cut(line, " = ")
		pair, ok2 := strings.CutPrefix(strings.TrimSpace(pair), "(")
		pair, ok3 := strings.CutSuffix(pair, ")")
		l, r, ok4 := strings.Cut(pair, ", ")
		if !ok || !ok2 || !ok3 || !ok4 {
			return nil, fmt.Errorf("%w: node %q", ErrBadMap, line)
		}
		n.Nodes[strings.TrimSpace(name)] = [2]string{l, r}
	}

	return n, nil
}

func (n *Network) move(cur string, i int) (string, error) {
	lr, ok := n.Nodes[cur]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoNode, cur)
	}
	if n.Steps[i%len(n.Steps)] == 'L' {
		return lr[0], nil
	}

	return lr[1], nil
}

// limit bounds walks: after len(Nodes)*len(Steps) moves the (node, step)
// state must have repeated.
func (n *Network) limit() int {
	return (len(n.Nodes) + 1) * len(n.Steps)
}

// Walk counts the moves from start to the first node accepted by exit.
func (n *Network) Walk(start string, exit func(string) bool) (int64, error) {
	if _, ok := n.Nodes[start]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoNode, start)
	}
	cur := start
	for i := 0; i <= n.limit(); i++ {
		if exit(cur) {
			return int64(i), nil
		}
		var err error
		if cur, err = n.move(cur, i); err != nil {
			return 0, err
		}
	}

	return 0, fmt.Errorf("%w: from %q", ErrNoExit, start)
}

// Period returns the number of moves between the first two exit visits of a
// walk from start.
func (n *Network) Period(start string, exit func(string) bool) (int64, error) {
	cur := start
	first := -1
	for i := 1; i <= 2*n.limit(); i++ {
		var err error
		if cur, err = n.move(cur, i-1); err != nil {
			return 0, err
		}
		if !exit(cur) {
			continue
		}
		if first >= 0 {
			return int64(i - first), nil
		}
		first = i
	}

	return 0, fmt.Errorf("%w: from %q", ErrNoExit, start)
}

// Part1 counts the moves from AAA to ZZZ.
func (n *Network) Part1() (int64, error) {
	return n.Walk("AAA", func(s string) bool { return s == "ZZZ" })
}

// Part2 walks every node ending in A at once and returns the first move at
// which all of them stand on nodes ending in Z, as the LCM of their periods.
func (n *Network) Part2() (int64, error) {
	isExit := func(s string) bool { return strings.HasSuffix(s, "Z") }
	var periods []int64
	for name := range n.Nodes {
		if !strings.HasSuffix(name, "A") {
			continue
		}
		p, err := n.Period(name, isExit)
		if err != nil {
			return 0, err
		}
		trace.Printf("day08: %s period %d", name, p)
		periods = append(periods, p)
	}
	if len(periods) == 0 {
		return 0, fmt.Errorf("%w: no start node ending in A", ErrNoNode)
	}

	return numeric.LCMAll(periods...), nil
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	n, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p1, err := n.Part1()
	if err != nil {
		return puzzle.Answer{}, err
	}
	p2, err := n.Part2()
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: p1, Part2: p2}, nil
}
