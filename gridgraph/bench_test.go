package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

// BenchmarkTranspose measures Transpose on a 140×140 grid, the usual
// puzzle input size.
func BenchmarkTranspose(b *testing.B) {
	g := gridgraph.New(140, 140, '.')
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Transpose()
	}
}
