package gridgraph

import (
	"bytes"
	"fmt"
	"strings"
)

// Parse builds a Grid from newline-separated text. A trailing newline and
// carriage returns are ignored.
// Returns ErrEmptyGrid if text has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func Parse(text string, opts ...Option) (*Grid, error) {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r", ""), "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	rows := strings.Split(text, "\n")
	w := len(rows[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := newGrid(w, len(rows), opts)
	for y, row := range rows {
		copy(g.cells[y*w:], row)
	}

	return g, nil
}

// New allocates a w×h grid with every cell set to fill.
// Non-positive dimensions are clamped to 1.
func New(w, h int, fill byte, opts ...Option) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := newGrid(w, h, opts)
	if fill != 0 {
		for i := range g.cells {
			g.cells[i] = fill
		}
	}

	return g
}

func newGrid(w, h int, opts []Option) *Grid {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// Precompute neighbor offsets based on connectivity
	var offsets []Point
	if o.Conn == Conn8 {
		offsets = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		Width:           w,
		Height:          h,
		Conn:            o.Conn,
		cells:           make([]byte, w*h),
		neighborOffsets: offsets,
	}
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Index maps p to a row‑major index: Y*Width + X.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row‑major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{idx % g.Width, idx / g.Width}
}

// At returns the cell at p. It panics if p is out of bounds.
func (g *Grid) At(p Point) byte {
	return g.cells[g.Index(p)]
}

// Get returns the cell at p and whether p is inside the grid.
func (g *Grid) Get(p Point) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}

	return g.cells[g.Index(p)], true
}

// Set stores v at p. It panics with an error wrapping ErrOutOfBounds if p
// is outside the grid.
func (g *Grid) Set(p Point, v byte) {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %v", ErrOutOfBounds, p))
	}
	g.cells[g.Index(p)] = v
}

// Row returns row y as a slice aliasing the grid's buffer.
func (g *Grid) Row(y int) []byte {
	return g.cells[y*g.Width : (y+1)*g.Width : (y+1)*g.Width]
}

// Col returns a copy of column x.
func (g *Grid) Col(x int) []byte {
	out := make([]byte, g.Height)
	for y := range out {
		out[y] = g.cells[y*g.Width+x]
	}

	return out
}

// Bytes exposes the backing row-major buffer. Callers must not resize it.
func (g *Grid) Bytes() []byte {
	return g.cells
}

// Find returns the first point, in row-major order, holding v.
func (g *Grid) Find(v byte) (Point, bool) {
	i := bytes.IndexByte(g.cells, v)
	if i < 0 {
		return Point{}, false
	}

	return g.Coordinate(i), true
}

// Count returns how many cells hold v.
func (g *Grid) Count(v byte) int {
	return bytes.Count(g.cells, []byte{v})
}

// Neighbors appends to dst the in-bounds neighbours of p under g.Conn
// and returns the extended slice.
func (g *Grid) Neighbors(dst []Point, p Point) []Point {
	for _, d := range g.neighborOffsets {
		q := p.Add(d)
		if g.InBounds(q) {
			dst = append(dst, q)
		}
	}

	return dst
}

// String renders the grid back to newline-separated text.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		sb.Write(g.Row(y))
		sb.WriteByte('\n')
	}

	return sb.String()
}
