package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/dijkstra"
)

// ExampleShortestPath routes across a 1-D strip of cells where entering a
// cell costs its digit, the same cost model as the crucible puzzle.
func ExampleShortestPath() {
	strip := []int64{0, 9, 1, 1, 9, 1}
	next := func(i int) []dijkstra.Edge[int] {
		var out []dijkstra.Edge[int]
		for _, j := range []int{i - 1, i + 1, i + 2} {
			if j >= 0 && j < len(strip) {
				out = append(out, dijkstra.Edge[int]{To: j, Weight: strip[j]})
			}
		}
		return out
	}
	d, _ := dijkstra.ShortestPath([]int{0}, next, func(i int) bool { return i == len(strip)-1 })
	fmt.Println(d)

	// Output:
	// 3
}
