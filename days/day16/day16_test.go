package day16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

const example = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

func TestSolve(t *testing.T) {
	ans, err := Solve(example)
	require.NoError(t, err)
	assert.Equal(t, int64(46), ans.Part1)
	assert.Equal(t, int64(51), ans.Part2)
}

func TestHeadings(t *testing.T) {
	u := gridgraph.Up
	r := gridgraph.Right
	d := gridgraph.Down
	l := gridgraph.Left
	assert.Equal(t, []gridgraph.Direction{u}, headings('/', r))
	assert.Equal(t, []gridgraph.Direction{r}, headings('/', u))
	assert.Equal(t, []gridgraph.Direction{d}, headings('/', l))
	assert.Equal(t, []gridgraph.Direction{l}, headings('/', d))
	assert.Equal(t, []gridgraph.Direction{d}, headings('\\', r))
	assert.Equal(t, []gridgraph.Direction{l}, headings('\\', u))
	assert.Equal(t, []gridgraph.Direction{u}, headings('\\', l))
	assert.Equal(t, []gridgraph.Direction{r}, headings('\\', d))
	assert.Equal(t, []gridgraph.Direction{u, d}, headings('|', r))
	assert.Equal(t, []gridgraph.Direction{d}, headings('|', d))
	assert.Equal(t, []gridgraph.Direction{l, r}, headings('-', u))
	assert.Equal(t, []gridgraph.Direction{l}, headings('-', l))
	assert.Equal(t, []gridgraph.Direction{r}, headings('.', r))
}

func TestEnergized_FromEdge(t *testing.T) {
	c, err := Parse(example)
	require.NoError(t, err)
	n, err := c.Energized(Beam{At: gridgraph.Point{X: 3, Y: 0}, Dir: gridgraph.Down})
	require.NoError(t, err)
	assert.Equal(t, int64(51), n)
	assert.Len(t, c.Entries(), 40)
}
