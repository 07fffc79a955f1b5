// Package puzzle holds the registry of daily solvers and the answer type
// they produce. Day packages call Register from init; importing
// days/all links every one of them in.
package puzzle

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrUnknownDay is returned by Lookup for a day nobody registered.
	ErrUnknownDay = errors.New("puzzle: unknown day")
	// ErrPart2 wraps a failure that happened after part 1 was solved. The
	// Answer returned with it carries a valid Part1.
	ErrPart2 = errors.New("puzzle: part 2 failed")
)

// Answer is the pair of results a solver prints.
type Answer struct {
	Part1, Part2 int64
}

// String renders the answer as the two output lines, without a trailing
// newline.
func (a Answer) String() string {
	return fmt.Sprintf("part1: %d\npart2: %d", a.Part1, a.Part2)
}

// Puzzle describes one day.
type Puzzle struct {
	Day   int
	Title string
	Solve func(input string) (Answer, error)
}

var (
	mu       sync.RWMutex
	registry = map[int]Puzzle{}
)

// Register adds p to the registry. It panics on a day outside 1..25, a nil
// Solve or a day registered twice.
func Register(p Puzzle) {
	if p.Day < 1 || p.Day > 25 || p.Solve == nil {
		panic(fmt.Sprintf("puzzle: invalid registration for day %d", p.Day))
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[p.Day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", p.Day))
	}
	registry[p.Day] = p
}

// Lookup returns the puzzle registered for day.
func Lookup(day int) (Puzzle, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return p, nil
}

// All returns every registered puzzle in day order.
func All() []Puzzle {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Puzzle, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Puzzle) int { return a.Day - b.Day })

	return out
}
