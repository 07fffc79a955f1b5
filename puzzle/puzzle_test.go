package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solveConst(a Answer) func(string) (Answer, error) {
	return func(string) (Answer, error) { return a, nil }
}

// withRegistry swaps in an empty registry for the duration of a test.
func withRegistry(t *testing.T) {
	t.Helper()
	saved := registry
	registry = map[int]Puzzle{}
	t.Cleanup(func() { registry = saved })
}

func TestAnswerString(t *testing.T) {
	assert.Equal(t, "part1: 142\npart2: -3", Answer{142, -3}.String())
}

func TestRegisterLookup(t *testing.T) {
	withRegistry(t)
	Register(Puzzle{Day: 7, Title: "seven", Solve: solveConst(Answer{7, 77})})
	Register(Puzzle{Day: 2, Title: "two", Solve: solveConst(Answer{2, 22})})

	p, err := Lookup(7)
	require.NoError(t, err)
	assert.Equal(t, "seven", p.Title)
	a, err := p.Solve("")
	require.NoError(t, err)
	assert.Equal(t, Answer{7, 77}, a)

	_, err = Lookup(3)
	assert.ErrorIs(t, err, ErrUnknownDay)

	all := All()
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].Day)
	assert.Equal(t, 7, all[1].Day)
}

func TestRegisterPanics(t *testing.T) {
	withRegistry(t)
	Register(Puzzle{Day: 1, Solve: solveConst(Answer{})})

	assert.Panics(t, func() { Register(Puzzle{Day: 1, Solve: solveConst(Answer{})}) })
	assert.Panics(t, func() { Register(Puzzle{Day: 0, Solve: solveConst(Answer{})}) })
	assert.Panics(t, func() { Register(Puzzle{Day: 26, Solve: solveConst(Answer{})}) })
	assert.Panics(t, func() { Register(Puzzle{Day: 3}) })
}
