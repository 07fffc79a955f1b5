package gridgraph

import "bytes"

// Clone returns a deep copy of g.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	out := *g
	out.cells = bytes.Clone(g.cells)

	return &out
}

// Equal reports whether g and o have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	return g.Width == o.Width && g.Height == o.Height && bytes.Equal(g.cells, o.cells)
}

// Transpose returns a new grid with rows and columns swapped.
// Complexity: O(W×H).
func (g *Grid) Transpose() *Grid {
	out := newGrid(g.Height, g.Width, []Option{WithConn(g.Conn)})
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out.cells[x*out.Width+y] = g.cells[y*g.Width+x]
		}
	}

	return out
}
