package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example1 = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

const example2 = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

func TestPart1(t *testing.T) {
	got, err := Part1(example1)
	require.NoError(t, err)
	assert.Equal(t, int64(142), got)

	_, err = Part1("abc\n")
	assert.ErrorIs(t, err, ErrNoDigit)
}

func TestPart2(t *testing.T) {
	got, err := Part2(example2)
	require.NoError(t, err)
	assert.Equal(t, int64(281), got)

	// Part 1 input has no spelled digits, so both parts agree on it.
	got, err = Part2(example1)
	require.NoError(t, err)
	assert.Equal(t, int64(142), got)
}

func TestSpelledDigits(t *testing.T) {
	cases := map[string][2]int{
		"eightwo":   {8, 2},
		"oneight":   {1, 8},
		"zero5":     {0, 5},
		"7":         {7, 7},
		"xxthreexx": {3, 3},
	}
	for line, want := range cases {
		first, last, err := spelledDigits(line)
		require.NoError(t, err, line)
		assert.Equal(t, want, [2]int{first, last}, line)
	}

	_, _, err := spelledDigits("abc")
	assert.ErrorIs(t, err, ErrNoDigit)
}

func TestSolve(t *testing.T) {
	ans, err := Solve(example1)
	require.NoError(t, err)
	assert.Equal(t, int64(142), ans.Part1)
	assert.Equal(t, int64(142), ans.Part2)

	// "eightwothree" has no ASCII digit, so part 1 rejects the second example.
	_, err = Solve(example2)
	assert.ErrorIs(t, err, ErrNoDigit)
}
