package polygon

import (
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/numeric"
)

// Area2 returns twice the signed area of the polygon.
// Counter-clockwise order (in x-right, y-up axes) is positive.
func Area2(pts []gridgraph.Point) int64 {
	var area int64
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		area += int64(a.X)*int64(b.Y) - int64(a.Y)*int64(b.X)
	}

	return area
}

// Area returns the unsigned area rounded down to an integer.
func Area(pts []gridgraph.Point) int64 {
	return numeric.Abs(Area2(pts)) / 2
}

// Perimeter returns the sum of Manhattan edge lengths.
func Perimeter(pts []gridgraph.Point) int64 {
	var p int64
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		p += numeric.Abs(int64(b.X-a.X)) + numeric.Abs(int64(b.Y-a.Y))
	}

	return p
}

// Boundary counts the lattice points lying on the polygon's edges.
// For axis-aligned polygons it equals Perimeter.
func Boundary(pts []gridgraph.Point) int64 {
	var b int64
	for i, a := range pts {
		c := pts[(i+1)%len(pts)]
		b += numeric.GCD(numeric.Abs(int64(c.X-a.X)), numeric.Abs(int64(c.Y-a.Y)))
	}

	return b
}

// Interior counts the lattice points strictly inside the polygon.
func Interior(pts []gridgraph.Point) int64 {
	if len(pts) < 3 {
		return 0
	}

	return (numeric.Abs(Area2(pts)) - Boundary(pts) + 2) / 2
}

// LatticeCount counts the lattice points inside or on the polygon: the
// number of unit cells covered when each vertex is a cell centre.
func LatticeCount(pts []gridgraph.Point) int64 {
	return Interior(pts) + Boundary(pts)
}
