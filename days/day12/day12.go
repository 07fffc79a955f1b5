// Package day12 solves "Hot Springs": count the ways the unknown springs in
// a row can be filled in to match the damaged-group sizes.
package day12

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/puzzle"
)

// ErrBadRow is returned for a line that is not "pattern n,n,...".
var ErrBadRow = errors.New("day12: malformed row")

func init() {
	puzzle.Register(puzzle.Puzzle{Day: 12, Title: "Hot Springs", Solve: Solve})
}

// Row is one line of the condition record.
type Row struct {
	Springs string
	Groups  []int
}

// Parse reads one row per line.
func Parse(input string) ([]Row, error) {
	var rows []Row
	for i, line := range puzzle.Lines(input) {
		springs, groups, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok || strings.Trim(springs, ".#?") != "" {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadRow, i+1, line)
		}
		r := Row{Springs: springs}
		for _, f := range strings.Split(groups, ",") {
			n, err := strconv.Atoi(f)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%w: line %d: group %q", ErrBadRow, i+1, f)
			}
			r.Groups = append(r.Groups, n)
		}
		rows = append(rows, r)
	}

	return rows, nil
}

// Unfold repeats the row n times, joining spring patterns with '?'.
func (r Row) Unfold(n int) Row {
	pats := make([]string, n)
	var groups []int
	for i := range pats {
		pats[i] = r.Springs
		groups = append(groups, r.Groups...)
	}

	return Row{Springs: strings.Join(pats, "?"), Groups: groups}
}

// Arrangements counts the fillings of every '?' that produce exactly the
// row's damaged groups, in order.
func (r Row) Arrangements() int64 {
	s, gs := r.Springs, r.Groups
	// memo[i][j] caches the count for s[i:] and gs[j:]; -1 marks unknown.
	memo := make([][]int64, len(s)+1)
	for i := range memo {
		memo[i] = make([]int64, len(gs)+1)
		for j := range memo[i] {
			memo[i][j] = -1
		}
	}
	// firstDamaged[i] is the index of the first '#' at or after i.
	firstDamaged := make([]int, len(s)+1)
	firstDamaged[len(s)] = len(s)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '#' {
			firstDamaged[i] = i
		} else {
			firstDamaged[i] = firstDamaged[i+1]
		}
	}
	// run[i] is how many consecutive non-'.' cells start at i.
	run := make([]int, len(s)+1)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != '.' {
			run[i] = run[i+1] + 1
		}
	}

	var count func(i, j int) int64
	count = func(i, j int) int64 {
		if j == len(gs) {
			if firstDamaged[min(i, len(s))] == len(s) {
				return 1
			}
			return 0
		}
		if i >= len(s) {
			return 0
		}
		if memo[i][j] >= 0 {
			return memo[i][j]
		}
		var n int64
		if s[i] != '#' {
			n += count(i+1, j)
		}
		if g := gs[j]; run[i] >= g && (i+g == len(s) || s[i+g] != '#') {
			n += count(i+g+1, j+1)
		}
		memo[i][j] = n

		return n
	}

	return count(0, 0)
}

// Solve runs both parts.
func Solve(input string) (puzzle.Answer, error) {
	rows, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var ans puzzle.Answer
	for _, r := range rows {
		ans.Part1 += r.Arrangements()
		ans.Part2 += r.Unfold(5).Arrangements()
	}

	return ans, nil
}
