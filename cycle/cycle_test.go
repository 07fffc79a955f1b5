package cycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/cycle"
)

func identity(v int) int { return v }

// TestFind_Rho checks a sequence with a tail of 3 and a period of 4:
// 0 1 2 | 3 4 5 6 | 3 4 ...
func TestFind_Rho(t *testing.T) {
	step := func(v int) int {
		if v == 6 {
			return 3
		}
		return v + 1
	}
	res, err := cycle.Find(0, step, identity)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Start)
	assert.Equal(t, 4, res.Length)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 3}, res.History)

	// Brute force agrees with At for a range of step counts.
	v := 0
	for n := 0; n < 50; n++ {
		assert.Equal(t, v, res.At(n), "n=%d", n)
		v = step(v)
	}
	assert.Equal(t, 3+(1_000_000_000-3)%4, res.At(1_000_000_000))
}

func TestFind_FixedPoint(t *testing.T) {
	res, err := cycle.Find(7, identity, identity)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Start)
	assert.Equal(t, 1, res.Length)
	assert.Equal(t, []int{7, 7}, res.History)
	assert.Equal(t, 7, res.At(12345))
}

// TestFind_KeyProjection checks that only the key decides repetition.
func TestFind_KeyProjection(t *testing.T) {
	type st struct{ pos, ticks int }
	step := func(s st) st { return st{(s.pos + 1) % 5, s.ticks + 1} }
	res, err := cycle.Find(st{}, step, func(s st) int { return s.pos })
	require.NoError(t, err)
	assert.Equal(t, 5, res.Length)
	assert.Equal(t, 2, res.At(12).pos)
}

func TestFind_Budget(t *testing.T) {
	res, err := cycle.Find(0, func(v int) int { return v + 1 }, identity, cycle.WithMaxSteps(100))
	assert.ErrorIs(t, err, cycle.ErrNoCycle)
	assert.Len(t, res.History, 101)
	assert.Equal(t, 100, res.History[100])
	assert.Equal(t, 42, res.At(42))
	assert.PanicsWithValue(t, "cycle: step 101 is past the 101 recorded states and no cycle was found", func() {
		res.At(101)
	})

	_, err = cycle.Find(0, identity, identity, cycle.WithMaxSteps(0))
	assert.ErrorIs(t, err, cycle.ErrBadMaxSteps)
}
