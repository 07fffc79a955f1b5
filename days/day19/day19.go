// Package day19 solves "Aplenty". Part 2 sends the whole rating space
// through the workflows as boxes of ranges, splitting a box at every
// condition instead of testing each of the 4000⁴ parts.
package day19

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/interval"
	"github.com/katalvlaran/aoc2023/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 19, Title: "Aplenty", Solve: Solve})
}

const (
	accept = "A"
	reject = "R"
	start  = "in"
)

// Categories names the rating categories in part order.
const Categories = "xmas"

// Part holds the four ratings, indexed like Categories.
type Part [4]int

// Rule sends a part to Target when its Cat rating is below (Op '<') or above
// (Op '>') Value. A rule with Op 0 always matches.
type Rule struct {
	Cat    int
	Op     byte
	Value  int
	Target string
}

// System is the parsed puzzle input.
type System struct {
	Workflows map[string][]Rule
	Parts     []Part
}

// Parse reads the workflow block and the parts block.
func Parse(input string) (*System, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 {
		return nil, fmt.Errorf("%w: want workflows and parts, got %d blocks", ErrBadWorkflow, len(blocks))
	}
	s := &System{Workflows: make(map[string][]Rule, len(blocks[0]))}
	for _, line := range blocks[0] {
		name, body, ok := strings.Cut(line, "{")
		body, ok2 := strings.CutSuffix(body, "}")
		if !ok || !ok2 || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadWorkflow, line)
		}
		var rules []Rule
		for _, r := range strings.Split(body, ",") {
			rule, err := parseRule(r)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadWorkflow, line, err)
			}
			rules = append(rules, rule)
		}
		if rules[len(rules)-1].Op != 0 {
			return nil, fmt.Errorf("%w: %q: no fallback rule", ErrBadWorkflow, line)
		}
		s.Workflows[name] = rules
	}
	for _, line := range blocks[1] {
		p, err := parsePart(line)
		if err != nil {
			return nil, err
		}
		s.Parts = append(s.Parts, p)
	}

	return s, nil
}

func parseRule(r string) (Rule, error) {
	cond, target, ok := strings.Cut(r, ":")
	if !ok {
		if r == "" {
			return Rule{}, fmt.Errorf("empty rule")
		}
		return Rule{Target: r}, nil
	}
	if len(cond) < 3 || target == "" {
		return Rule{}, fmt.Errorf("bad rule %q", r)
	}
	cat := strings.IndexByte(Categories, cond[0])
	if cat < 0 || (cond[1] != '<' && cond[1] != '>') {
		return Rule{}, fmt.Errorf("bad condition %q", cond)
	}
	v, err := strconv.Atoi(cond[2:])
	if err != nil {
		return Rule{}, fmt.Errorf("bad value in %q", cond)
	}

	return Rule{Cat: cat, Op: cond[1], Value: v, Target: target}, nil
}

func parsePart(line string) (Part, error) {
	var p Part
	body, ok := strings.CutPrefix(line, "{")
	body, ok2 := strings.CutSuffix(body, "}")
	fields := strings.Split(body, ",")
	if !ok || !ok2 || len(fields) != 4 {
		return p, fmt.Errorf("%w: %q", ErrBadPart, line)
	}
	for i, f := range fields {
		k, v, ok := strings.Cut(f, "=")
		if !ok || k != Categories[i:i+1] {
			return p, fmt.Errorf("%w: %q", ErrBadPart, line)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("%w: %q", ErrBadPart, line)
		}
		p[i] = n
	}

	return p, nil
}

func (r Rule) matches(p Part) bool {
	switch r.Op {
	case '<':
		return p[r.Cat] < r.Value
	case '>':
		return p[r.Cat] > r.Value
	}

	return true
}

// Accepted runs p through the workflows starting at "in".
func (s *System) Accepted(p Part) (bool, error) {
	cur := start
	for hops := 0; hops <= len(s.Workflows); hops++ {
		switch cur {
		case accept:
			return true, nil
		case reject:
			return false, nil
		}
		rules, ok := s.Workflows[cur]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrNoWorkflow, cur)
		}
		for _, r := range rules {
			if r.matches(p) {
				cur = r.Target
				break
			}
		}
	}

	return false, ErrLoop
}

// RatingSum adds up all ratings of accepted parts.
func (s *System) RatingSum() (int64, error) {
	var sum int64
	for _, p := range s.Parts {
		ok, err := s.Accepted(p)
		if err != nil {
			return 0, err
		}
		if ok {
			sum += int64(p[0] + p[1] + p[2] + p[3])
		}
	}

	return sum, nil
}

// Box is a set of parts: one half-open rating range per category.
type Box [4]interval.Range[int]

func (b Box) size() int64 {
	n := int64(1)
	for _, r := range b {
		n *= int64(r.Len())
	}

	return n
}

// split divides b by rule r into the parts that match and the rest.
func (b Box) split(r Rule) (match, rest Box, hasMatch, hasRest bool) {
	cut := r.Value
	if r.Op == '>' {
		cut++
	}
	rng := b[r.Cat]
	lo, hi := rng, interval.Range[int]{}
	if l, h, ok := rng.SplitAt(cut); ok {
		lo, hi = l, h
	} else if cut <= rng.Start {
		lo, hi = interval.Range[int]{}, rng
	}
	match, rest = b, b
	if r.Op == '<' {
		match[r.Cat], rest[r.Cat] = lo, hi
	} else {
		match[r.Cat], rest[r.Cat] = hi, lo
	}

	return match, rest, !match[r.Cat].Empty(), !rest[r.Cat].Empty()
}

// Combinations counts the distinct parts within ratings 1..4000 that end up
// accepted.
func (s *System) Combinations() (int64, error) {
	full, _ := interval.New(1, 4001)
	return s.count(start, Box{full, full, full, full}, 0)
}

func (s *System) count(name string, b Box, depth int) (int64, error) {
	switch name {
	case accept:
		return b.size(), nil
	case reject:
		return 0, nil
	}
	if depth > len(s.Workflows) {
		return 0, ErrLoop
	}
	rules, ok := s.Workflows[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoWorkflow, name)
	}
	var total int64
	for _, r := range rules {
		if r.Op == 0 {
			n, err := s.count(r.Target, b, depth+1)
			return total + n, err
		}
		match, rest, hasMatch, hasRest := b.split(r)
		if hasMatch {
			n, err := s.count(r.Target, match, depth+1)
			if err != nil {
				return 0, err
			}
			total += n
		}
		if !hasRest {
			return total, nil
		}
		b = rest
	}

	return total, nil
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	s, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p1, err := s.RatingSum()
	if err != nil {
		return puzzle.Answer{}, err
	}
	p2, err := s.Combinations()
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: p1, Part2: p2}, nil
}
