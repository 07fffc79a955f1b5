package bfs_test

import (
	"testing"

	"github.com/katalvlaran/aoc2023/bfs"
)

// BenchmarkBFS_Line measures a traversal over a 100k-state path.
func BenchmarkBFS_Line(b *testing.B) {
	next := line(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS([]int{0}, next)
	}
}
