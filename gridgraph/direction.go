package gridgraph

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four headings clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

var deltas = [4]Point{Up: {0, -1}, Right: {1, 0}, Down: {0, 1}, Left: {-1, 0}}

// Delta returns the unit offset of d.
func (d Direction) Delta() Point {
	return deltas[d&3]
}

// Turn rotates d by a quarter turn, clockwise when right is true.
func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) & 3
	}

	return (d + 3) & 3
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}

	return "?"
}

// ParseDirection maps the letters U/R/D/L and the arrows ^ > v < to a Direction.
func ParseDirection(b byte) (Direction, bool) {
	switch b {
	case 'U', '^':
		return Up, true
	case 'R', '>':
		return Right, true
	case 'D', 'v':
		return Down, true
	case 'L', '<':
		return Left, true
	}

	return 0, false
}
