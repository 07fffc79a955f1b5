package day18

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

const example = `R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
`

func TestSolve(t *testing.T) {
	ans, err := Solve(example)
	require.NoError(t, err)
	assert.Equal(t, int64(62), ans.Part1)
	assert.Equal(t, int64(952408144115), ans.Part2)
}

func TestParse(t *testing.T) {
	plain, hex, err := Parse(example)
	require.NoError(t, err)
	require.Len(t, plain, 14)
	assert.Equal(t, Step{gridgraph.Right, 6}, plain[0])
	assert.Equal(t, Step{gridgraph.Right, 461937}, hex[0])
	assert.Equal(t, Step{gridgraph.Down, 56407}, hex[1])
}

func TestParse_Errors(t *testing.T) {
	for _, line := range []string{
		"R 6",
		"X 6 (#70c710)",
		"R x (#70c710)",
		"R 6 (70c710)",
		"R 6 (#70c714)",
		"R 6 (#zzzzz0)",
	} {
		_, _, err := Parse(line)
		assert.ErrorIs(t, err, ErrBadStep, line)
	}
}
