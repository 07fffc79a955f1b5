package interval_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/interval"
)

type rng = interval.Range[int]

//------------------------------------------------------------------------------
// Construction
//------------------------------------------------------------------------------

func TestNew(t *testing.T) {
	r, err := interval.New(3, 7)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Len())
	assert.False(t, r.Empty())
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(7))
	assert.Equal(t, "[3,7)", r.String())

	e, err := interval.New(5, 5)
	require.NoError(t, err)
	assert.True(t, e.Empty())
	assert.Equal(t, 0, e.Len())

	_, err = interval.New(8, 2)
	assert.ErrorIs(t, err, interval.ErrInverted)

	f, err := interval.FromLen(79, 14)
	require.NoError(t, err)
	assert.Equal(t, rng{79, 93}, f)
	assert.Equal(t, rng{81, 95}, f.Shift(2))
}

//------------------------------------------------------------------------------
// Splitting
//------------------------------------------------------------------------------

func TestSplitAt(t *testing.T) {
	r := rng{1, 4001}
	lo, hi, ok := r.SplitAt(1351)
	require.True(t, ok)
	assert.Equal(t, rng{1, 1351}, lo)
	assert.Equal(t, rng{1351, 4001}, hi)
	assert.Equal(t, r.Len(), lo.Len()+hi.Len())

	for _, v := range []int{0, 1, 4001, 5000} {
		lo, _, ok := r.SplitAt(v)
		assert.False(t, ok, "v=%d", v)
		assert.Equal(t, r, lo)
	}
}

func TestIntersect(t *testing.T) {
	cases := []struct {
		name    string
		r, o    rng
		overlap rng
		found   bool
		rest    []rng
	}{
		{"inside", rng{0, 10}, rng{3, 5}, rng{3, 5}, true, []rng{{0, 3}, {5, 10}}},
		{"covers", rng{3, 5}, rng{0, 10}, rng{3, 5}, true, nil},
		{"left", rng{0, 10}, rng{-5, 4}, rng{0, 4}, true, []rng{{4, 10}}},
		{"right", rng{0, 10}, rng{8, 20}, rng{8, 10}, true, []rng{{0, 8}}},
		{"disjoint", rng{0, 10}, rng{10, 20}, rng{}, false, []rng{{0, 10}}},
		{"empty", rng{4, 4}, rng{0, 10}, rng{}, false, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ov, found, rest := c.r.Intersect(c.o)
			assert.Equal(t, c.found, found)
			assert.Equal(t, c.overlap, ov)
			if diff := cmp.Diff(c.rest, rest); diff != "" {
				t.Errorf("rest mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestIntersect_Coverage checks that pieces are disjoint and cover r exactly.
func TestIntersect_Coverage(t *testing.T) {
	r := rng{-20, 20}
	for s := -30; s < 30; s += 3 {
		for e := s; e < 35; e += 4 {
			ov, found, rest := r.Intersect(rng{s, e})
			pieces := rest
			if found {
				pieces = append(pieces, ov)
			}
			hits := map[int]int{}
			for _, p := range pieces {
				for v := p.Start; v < p.End; v++ {
					hits[v]++
				}
			}
			for v := r.Start; v < r.End; v++ {
				require.Equal(t, 1, hits[v], "v=%d o=[%d,%d)", v, s, e)
			}
			require.Len(t, hits, r.Len())
		}
	}
}
