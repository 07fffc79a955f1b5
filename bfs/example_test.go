package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/bfs"
)

// ExampleBFS walks a tiny directed ring of named nodes.
func ExampleBFS() {
	edges := map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {"A"},
	}
	res, _ := bfs.BFS([]string{"A"}, func(s string) []string { return edges[s] })
	path, _ := res.PathTo("D")
	fmt.Println(res.Order, path)

	// Output:
	// [A B C D] [A B D]
}
