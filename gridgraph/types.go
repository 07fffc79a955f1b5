package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a cell position; X is the column and Y the row.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Step returns the point n cells away from p in direction d.
func (p Point) Step(d Direction, n int) Point {
	delta := d.Delta()
	return Point{p.X + delta.X*n, p.Y + delta.Y*n}
}

// String renders p as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity for Neighbors.
	Conn Connectivity
}

// Option configures Parse and New.
type Option func(*Options)

// WithConn selects the neighbour connectivity.
func WithConn(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// DefaultOptions returns Options with Conn4 connectivity.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// Grid is a rectangular byte grid stored row-major in one owned buffer.
// Width and Height are fixed at construction; cell contents may be mutated
// through Set or Row.
type Grid struct {
	Width, Height   int
	Conn            Connectivity
	cells           []byte
	neighborOffsets []Point
}
