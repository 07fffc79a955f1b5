// Package day07 solves "Camel Cards".
package day07

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 7, Title: "Camel Cards", Solve: Solve})
}

// Card orders, weakest first.
const (
	Standard = "23456789TJQKA"
	Jokers   = "J23456789TQKA"
)

// Kind is a hand category, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// Hand is five cards and the bid placed on them.
type Hand struct {
	Cards string
	Bid   int64
}

// Parse reads one hand per line.
func Parse(input string) ([]Hand, error) {
	var hands []Hand
	for i, line := range puzzle.Lines(input) {
		cards, bid, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok || len(cards) != 5 || strings.Trim(cards, Standard) != "" {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadHand, i+1, line)
		}
		b, err := strconv.ParseInt(strings.TrimSpace(bid), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadHand, i+1, err)
		}
		hands = append(hands, Hand{Cards: cards, Bid: b})
	}

	return hands, nil
}

// Classify returns the category of cards. With jokers, every J joins the
// most frequent other card.
func Classify(cards string, jokers bool) Kind {
	var counts [128]int
	wild := 0
	for i := 0; i < len(cards); i++ {
		if jokers && cards[i] == 'J' {
			wild++
			continue
		}
		counts[cards[i]]++
	}
	var groups []int
	for _, n := range counts {
		if n > 0 {
			groups = append(groups, n)
		}
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}

	return HighCard
}

// Winnings ranks hands weakest to strongest and sums rank*bid.
func Winnings(hands []Hand, jokers bool) int64 {
	order := Standard
	if jokers {
		order = Jokers
	}
	type ranked struct {
		kind Kind
		key  [5]int
		bid  int64
	}
	rs := make([]ranked, len(hands))
	for i, h := range hands {
		rs[i] = ranked{kind: Classify(h.Cards, jokers), bid: h.Bid}
		for j := 0; j < 5; j++ {
			rs[i].key[j] = strings.IndexByte(order, h.Cards[j])
		}
	}
	slices.SortFunc(rs, func(a, b ranked) int {
		if c := cmp.Compare(a.kind, b.kind); c != 0 {
			return c
		}
		return slices.Compare(a.key[:], b.key[:])
	})

	var total int64
	for i, r := range rs {
		total += int64(i+1) * r.bid
	}

	return total
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	hands, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: Winnings(hands, false), Part2: Winnings(hands, true)}, nil
}
