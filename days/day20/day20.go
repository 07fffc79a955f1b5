// Package day20 solves "Pulse Propagation".
package day20

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/automaton"
	"github.com/katalvlaran/aoc2023/cycle"
	"github.com/katalvlaran/aoc2023/numeric"
	"github.com/katalvlaran/aoc2023/puzzle"
	"github.com/katalvlaran/aoc2023/trace"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 20, Title: "Pulse Propagation", Solve: Solve})
}

const (
	// Presses is how many times part 1 pushes the button.
	Presses = 1000
	// MaxPresses bounds the search in part 2.
	MaxPresses = 1 << 20
)

// tally is the network state after some presses and the pulses sent so far.
type tally struct {
	key  uint64
	sent automaton.Counts
}

// PulseProduct returns low × high pulses sent over n presses. When the
// network returns to an earlier state first, the remaining presses are
// extrapolated from the period.
func PulseProduct(net *automaton.Network, n int) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	step := func(t tally) tally {
		c := net.Press(nil)
		return tally{key: net.StateKey(), sent: t.sent.Add(c)}
	}
	res, err := cycle.Find(tally{key: net.StateKey()}, step, func(t tally) uint64 { return t.key }, cycle.WithMaxSteps(n))
	if err != nil && !errors.Is(err, cycle.ErrNoCycle) {
		return 0, err
	}

	var total automaton.Counts
	if n < len(res.History) {
		total = res.History[n].sent
	} else {
		trace.Printf("day20: state repeats after %d presses, period %d", res.Start+res.Length, res.Length)
		base := res.History[res.Start].sent
		lap := res.History[res.Start+res.Length].sent
		laps, rem := (n-res.Start)/res.Length, (n-res.Start)%res.Length
		tail := res.History[res.Start+rem].sent
		total = automaton.Counts{
			Low:  base.Low + int64(laps)*(lap.Low-base.Low) + (tail.Low - base.Low),
			High: base.High + int64(laps)*(lap.High-base.High) + (tail.High - base.High),
		}
	}

	return total.Low * total.High, nil
}

// FirstRxLow returns the fewest presses that deliver a low pulse to rx.
//
// rx is fed by a single conjunction, which sends low only when every one of
// its inputs last sent it high. Each input fires high periodically, first at
// its own period, so the answer is the LCM of those first presses.
func FirstRxLow(net *automaton.Network) (int64, error) {
	feeders := net.Inputs("rx")
	if len(feeders) == 0 {
		return 0, ErrNoRx
	}
	hub, _ := net.Module(feeders[0])
	if len(feeders) != 1 || hub.Kind != automaton.Conjunction {
		return 0, fmt.Errorf("%w: rx inputs %v", ErrUnsupported, feeders)
	}

	net.Reset()
	first := make(map[string]int64, len(hub.Inputs))
	for press := int64(1); len(first) < len(hub.Inputs); press++ {
		if press > MaxPresses {
			return 0, fmt.Errorf("%w: %d of %d inputs of %s fired", ErrTooManyPresses, len(first), len(hub.Inputs), hub.Name)
		}
		net.Press(func(p automaton.Pulse) {
			if p.To != hub.Name || !p.High {
				return
			}
			if _, seen := first[p.From]; !seen {
				first[p.From] = press
				trace.Printf("day20: %s -high-> %s at press %d", p.From, hub.Name, press)
			}
		})
	}

	periods := make([]int64, 0, len(first))
	for _, n := range first {
		periods = append(periods, n)
	}

	return numeric.LCMAll(periods...), nil
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	net, err := automaton.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if trace.Enabled {
		trace.Printf("day20: network\n%s", net.Mermaid())
	}
	p1, err := PulseProduct(net, Presses)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p2, err := FirstRxLow(net)
	if err != nil {
		return puzzle.Answer{Part1: p1}, fmt.Errorf("%w: %w", puzzle.ErrPart2, err)
	}

	return puzzle.Answer{Part1: p1, Part2: p2}, nil
}
