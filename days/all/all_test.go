package all_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/katalvlaran/aoc2023/days/all"
	"github.com/katalvlaran/aoc2023/puzzle"
)

func TestAllDaysRegistered(t *testing.T) {
	all := puzzle.All()
	require.Len(t, all, 20)
	for i, p := range all {
		assert.Equal(t, i+1, p.Day)
		assert.NotEmpty(t, p.Title, "day %d", p.Day)
	}
}
