// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse / Transpose
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Transpose reads a small pattern and flips it along the
// main diagonal, the way mirror scans reuse one routine for both axes.
func ExampleGrid_Transpose() {
	g, _ := gridgraph.Parse("#.#\n..#\n")
	fmt.Print(g.Transpose())
	p, _ := g.Find('#')
	fmt.Println("first rock at", p)

	// Output:
	// #.
	// ..
	// ##
	// first rock at 0,0
}
