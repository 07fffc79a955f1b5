package automaton

import "errors"

var (
	// ErrBadModule indicates a malformed module line.
	ErrBadModule = errors.New("automaton: malformed module")
	// ErrNoBroadcaster indicates the network has no broadcaster module.
	ErrNoBroadcaster = errors.New("automaton: no broadcaster")
)

// Button is the sender name of the pulse that starts every press.
const Button = "button"

// BroadcasterName names the module every press is delivered to.
const BroadcasterName = "broadcaster"

// Kind tells how a module reacts to pulses.
type Kind uint8

const (
	Broadcast Kind = iota
	FlipFlop
	Conjunction
	Sink
)

func (k Kind) String() string {
	switch k {
	case Broadcast:
		return "broadcast"
	case FlipFlop:
		return "flip-flop"
	case Conjunction:
		return "conjunction"
	default:
		return "sink"
	}
}

// Pulse is one delivered signal.
type Pulse struct {
	From, To string
	High     bool
}

// Counts tallies the pulses delivered during one or more presses.
type Counts struct {
	Low, High int64
}

// Add returns c + o.
func (c Counts) Add(o Counts) Counts {
	return Counts{Low: c.Low + o.Low, High: c.High + o.High}
}

// Module is a read-only view of one module.
type Module struct {
	Name    string
	Kind    Kind
	Inputs  []string
	Outputs []string
}

// edge connects a sender to a target; slot is the sender's position in the
// target's input list.
type edge struct {
	to, slot int
}

type node struct {
	name   string
	kind   Kind
	out    []edge
	in     []int
	on     bool
	memory []bool
	highs  int
}
