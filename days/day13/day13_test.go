package day13

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

const vertical = `#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.
`

const horizontal = `#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#
`

func TestSolve(t *testing.T) {
	ans, err := Solve(vertical + "\n" + horizontal)
	require.NoError(t, err)
	assert.Equal(t, int64(405), ans.Part1)
	assert.Equal(t, int64(400), ans.Part2)
}

func TestSummarize(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		smudges int
		want    int64
	}{
		{"vertical", vertical, 0, 5},
		{"horizontal", horizontal, 0, 400},
		{"vertical smudged", vertical, 1, 300},
		{"horizontal smudged", horizontal, 1, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := gridgraph.Parse(c.text)
			require.NoError(t, err)
			got, err := Summarize(g, c.smudges)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestSummarize_None(t *testing.T) {
	g, err := gridgraph.Parse("#.\n..\n")
	require.NoError(t, err)
	_, err = Summarize(g, 0)
	assert.ErrorIs(t, err, ErrNoMirror)
}
