package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/numeric"
)

//----------------------------------------------------------------------------//
// Digit
//----------------------------------------------------------------------------//

func TestDigit(t *testing.T) {
	for b := byte('0'); b <= '9'; b++ {
		assert.True(t, numeric.IsDigit(b))
		assert.Equal(t, int(b-'0'), numeric.Digit(b))
	}
}

// TestDigit_PanicsOnNonDigit checks the caller-validates contract.
func TestDigit_PanicsOnNonDigit(t *testing.T) {
	for _, b := range []byte{'a', '.', '/', ':', ' '} {
		assert.False(t, numeric.IsDigit(b))
		assert.Panics(t, func() { numeric.Digit(b) }, "byte %q", b)
	}
}

func TestInts(t *testing.T) {
	got, err := numeric.Ints("  41 48 -83  86 17 ")
	require.NoError(t, err)
	assert.Equal(t, []int{41, 48, -83, 86, 17}, got)

	_, err = numeric.Ints("1 x 3")
	assert.Error(t, err)
}

//----------------------------------------------------------------------------//
// GCD / LCM
//----------------------------------------------------------------------------//

func TestGCD_BaseCase(t *testing.T) {
	for _, a := range []uint64{0, 1, 7, 1 << 40} {
		assert.Equal(t, a, numeric.GCD(a, 0))
	}
}

// TestGCD_Recurrence checks gcd(a,b) == gcd(b, a mod b) over a small square.
func TestGCD_Recurrence(t *testing.T) {
	for a := uint32(0); a < 60; a++ {
		for b := uint32(1); b < 60; b++ {
			assert.Equal(t, numeric.GCD(b, a%b), numeric.GCD(a, b), "a=%d b=%d", a, b)
		}
	}
}

func TestGCD_Known(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{12, 18, 6},
		{17, 5, 1},
		{0, 9, 9},
		{270, 192, 6},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numeric.GCD(tc.a, tc.b))
	}
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 36, numeric.LCM(12, 18))
	assert.Equal(t, 0, numeric.LCM(0, 5))
	assert.Equal(t, int64(6), numeric.LCMAll[int64](2, 3))
	assert.Equal(t, 1, numeric.LCMAll[int]())
	// Typical day 8 magnitudes stay inside int64.
	assert.Equal(t, int64(12_527_853_067_267),
		numeric.LCMAll[int64](11_309, 19_199, 17_621, 12_361, 16_043, 20_777))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, numeric.Abs(-5))
	assert.Equal(t, int8(3), numeric.Abs(int8(3)))
	assert.Equal(t, int64(0), numeric.Abs(int64(0)))
}
