package day06

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `Time:      7  15   30
Distance:  9  40  200
`

func TestSolve(t *testing.T) {
	ans, err := Solve(example)
	require.NoError(t, err)
	assert.Equal(t, int64(288), ans.Part1)
	assert.Equal(t, int64(71503), ans.Part2)
}

func TestWays(t *testing.T) {
	cases := []struct {
		race Race
		want int64
	}{
		{Race{7, 9}, 4},
		{Race{15, 40}, 8},
		{Race{30, 200}, 9},
		{Race{71530, 940200}, 71503},
		// h*(T-h) == D exactly at h=2 and h=4: ties do not win.
		{Race{6, 8}, 1},
		{Race{4, 4}, 0},
		{Race{3, 100}, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.race.Ways(), "%+v", c.race)
	}
}

// TestWays_BruteForce compares against direct enumeration.
func TestWays_BruteForce(t *testing.T) {
	for T := int64(0); T < 60; T++ {
		for D := int64(0); D < T*T/4+3; D++ {
			var want int64
			for h := int64(0); h <= T; h++ {
				if h*(T-h) > D {
					want++
				}
			}
			require.Equal(t, want, Race{T, D}.Ways(), "T=%d D=%d", T, D)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("Time: 1 2\nDistance: 3\n")
	assert.ErrorIs(t, err, ErrBadSheet)
	_, err = Parse("Time: 1\n")
	assert.ErrorIs(t, err, ErrBadSheet)
	_, err = Parse("Tme: 1\nDistance: 3\n")
	assert.ErrorIs(t, err, ErrBadSheet)
}
