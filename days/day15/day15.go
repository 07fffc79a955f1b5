// Package day15 solves "Lens Library".
package day15

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/puzzle"
)

// ErrBadStep is returned for a step that is neither "label=N" nor "label-".
var ErrBadStep = errors.New("day15: malformed step")

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 15, Title: "Lens Library", Solve: Solve})
}

// Hash is the HASH algorithm: for each byte, add it, multiply by 17, mod 256.
func Hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}

	return h
}

type lens struct {
	label string
	focal int
}

// Boxes is the HASHMAP: 256 boxes of lenses in insertion order.
type Boxes [256][]lens

// Apply performs one initialization step.
func (b *Boxes) Apply(step string) error {
	if label, ok := strings.CutSuffix(step, "-"); ok {
		box := &b[Hash(label)]
		*box = slices.DeleteFunc(*box, func(l lens) bool { return l.label == label })
		return nil
	}
	label, fs, ok := strings.Cut(step, "=")
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadStep, step)
	}
	focal, err := strconv.Atoi(fs)
	if err != nil || focal < 1 || focal > 9 {
		return fmt.Errorf("%w: %q", ErrBadStep, step)
	}
	box := &b[Hash(label)]
	if i := slices.IndexFunc(*box, func(l lens) bool { return l.label == label }); i >= 0 {
		(*box)[i].focal = focal
	} else {
		*box = append(*box, lens{label, focal})
	}

	return nil
}

// Power is the total focusing power of every lens.
func (b *Boxes) Power() int64 {
	var sum int64
	for i, box := range b {
		for slot, l := range box {
			sum += int64((i + 1) * (slot + 1) * l.focal)
		}
	}

	return sum
}

// Steps splits the initialization sequence on commas, ignoring newlines.
func Steps(input string) []string {
	input = strings.NewReplacer("\n", "", "\r", "").Replace(input)
	if input == "" {
		return nil
	}

	return strings.Split(input, ",")
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	var (
		ans   puzzle.Answer
		boxes Boxes
	)
	for _, s := range Steps(input) {
		ans.Part1 += int64(Hash(s))
		if err := boxes.Apply(s); err != nil {
			return puzzle.Answer{}, err
		}
	}
	ans.Part2 = boxes.Power()

	return ans, nil
}
