package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestSolve(t *testing.T) {
	ans, err := Solve(example)
	require.NoError(t, err)
	assert.Equal(t, int64(4361), ans.Part1)
	assert.Equal(t, int64(467835), ans.Part2)
}

func TestNumbers(t *testing.T) {
	g, err := gridgraph.Parse("12.3\n..45\n", gridgraph.WithConn(gridgraph.Conn8))
	require.NoError(t, err)
	nums := Numbers(g)
	require.Len(t, nums, 3)
	assert.Equal(t, Number{Value: 12, At: gridgraph.Point{X: 0, Y: 0}, Len: 2}, nums[0])
	assert.Equal(t, Number{Value: 3, At: gridgraph.Point{X: 3, Y: 0}, Len: 1}, nums[1])
	assert.Equal(t, Number{Value: 45, At: gridgraph.Point{X: 2, Y: 1}, Len: 2}, nums[2])
}

// TestGearNeedsTwo checks that a '*' with three neighbours is not a gear.
func TestGearNeedsTwo(t *testing.T) {
	g, err := gridgraph.Parse("2.3\n.*.\n4..\n", gridgraph.WithConn(gridgraph.Conn8))
	require.NoError(t, err)
	parts, gears := Parts(g)
	assert.Equal(t, int64(9), parts)
	assert.Equal(t, int64(0), gears)
}
