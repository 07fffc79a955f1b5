package automaton

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Network is a parsed module network together with its mutable state.
// A Network is not safe for concurrent use.
type Network struct {
	nodes       []node
	index       map[string]int
	broadcaster int
	presses     int
	queue       []delivery
}

type delivery struct {
	from, to int
	slot     int
	high     bool
}

// Parse builds a Network in its initial state: all flip-flops off and every
// conjunction remembering low for each input.
func Parse(text string) (*Network, error) {
	n := &Network{index: make(map[string]int), broadcaster: -1}
	lookup := func(name string) int {
		if id, ok := n.index[name]; ok {
			return id
		}
		n.index[name] = len(n.nodes)
		n.nodes = append(n.nodes, node{name: name, kind: Sink})
		return len(n.nodes) - 1
	}

	defined := make(map[string]bool)
	outs := make(map[int][]string)
	for ln, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lhs, rhs, ok := strings.Cut(line, " -> ")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadModule, ln+1, line)
		}
		kind, name := Broadcast, lhs
		switch {
		case lhs == BroadcasterName:
		case strings.HasPrefix(lhs, "%"):
			kind, name = FlipFlop, lhs[1:]
		case strings.HasPrefix(lhs, "&"):
			kind, name = Conjunction, lhs[1:]
		default:
			return nil, fmt.Errorf("%w: line %d: unknown module %q", ErrBadModule, ln+1, lhs)
		}
		if name == "" || defined[name] {
			return nil, fmt.Errorf("%w: line %d: bad or duplicate name %q", ErrBadModule, ln+1, name)
		}
		defined[name] = true

		id := lookup(name)
		n.nodes[id].kind = kind
		for _, dst := range strings.Split(rhs, ",") {
			if dst = strings.TrimSpace(dst); dst != "" {
				outs[id] = append(outs[id], dst)
			}
		}
	}

	// Wire edges in node order so input slots are deterministic.
	for id := 0; id < len(n.nodes); id++ {
		for _, dst := range outs[id] {
			to := lookup(dst)
			n.nodes[id].out = append(n.nodes[id].out, edge{to: to, slot: len(n.nodes[to].in)})
			n.nodes[to].in = append(n.nodes[to].in, id)
		}
	}
	for i := range n.nodes {
		n.nodes[i].memory = make([]bool, len(n.nodes[i].in))
	}

	id, ok := n.index[BroadcasterName]
	if !ok || n.nodes[id].kind != Broadcast {
		return nil, ErrNoBroadcaster
	}
	n.broadcaster = id

	return n, nil
}

// Press sends one low pulse from the button to the broadcaster and
// propagates until no pulse is in flight. observe, when non-nil, sees every
// delivered pulse in delivery order.
func (n *Network) Press(observe func(Pulse)) Counts {
	var c Counts
	n.presses++
	q := append(n.queue[:0], delivery{from: -1, to: n.broadcaster})
	for head := 0; head < len(q); head++ {
		d := q[head]
		if d.high {
			c.High++
		} else {
			c.Low++
		}
		if observe != nil {
			from := Button
			if d.from >= 0 {
				from = n.nodes[d.from].name
			}
			observe(Pulse{From: from, To: n.nodes[d.to].name, High: d.high})
		}

		nd := &n.nodes[d.to]
		var out bool
		switch nd.kind {
		case Broadcast:
			out = d.high
		case FlipFlop:
			if d.high {
				continue
			}
			nd.on = !nd.on
			out = nd.on
		case Conjunction:
			if nd.memory[d.slot] != d.high {
				nd.memory[d.slot] = d.high
				if d.high {
					nd.highs++
				} else {
					nd.highs--
				}
			}
			out = nd.highs != len(nd.memory)
		default:
			continue
		}
		for _, e := range nd.out {
			q = append(q, delivery{from: d.to, to: e.to, slot: e.slot, high: out})
		}
	}
	n.queue = q

	return c
}

// Presses reports how many times Press ran since Parse or Reset.
func (n *Network) Presses() int { return n.presses }

// Reset restores the initial state.
func (n *Network) Reset() {
	for i := range n.nodes {
		nd := &n.nodes[i]
		nd.on = false
		nd.highs = 0
		clear(nd.memory)
	}
	n.presses = 0
}

// StateKey hashes the full module state. Two networks parsed from the same
// text have equal keys exactly when their states are equal, barring hash
// collisions.
func (n *Network) StateKey() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for i := range n.nodes {
		nd := &n.nodes[i]
		switch nd.kind {
		case FlipFlop:
			if nd.on {
				buf[0] = 1
			} else {
				buf[0] = 0
			}
			_, _ = h.Write(buf[:1])
		case Conjunction:
			var word uint64
			for j, m := range nd.memory {
				if m {
					word |= 1 << (j % 64)
				}
				if j%64 == 63 || j == len(nd.memory)-1 {
					binary.LittleEndian.PutUint64(buf[:], word)
					_, _ = h.Write(buf[:])
					word = 0
				}
			}
		}
	}

	return h.Sum64()
}

// Module returns a view of the named module.
func (n *Network) Module(name string) (Module, bool) {
	id, ok := n.index[name]
	if !ok {
		return Module{}, false
	}
	nd := n.nodes[id]
	m := Module{Name: nd.name, Kind: nd.kind}
	for _, in := range nd.in {
		m.Inputs = append(m.Inputs, n.nodes[in].name)
	}
	for _, e := range nd.out {
		m.Outputs = append(m.Outputs, n.nodes[e.to].name)
	}

	return m, true
}

// Inputs lists the modules that send to name, in wiring order.
func (n *Network) Inputs(name string) []string {
	m, _ := n.Module(name)
	return m.Inputs
}

// Modules lists every module, declared ones first, in declaration order.
func (n *Network) Modules() []Module {
	mods := make([]Module, 0, len(n.nodes))
	for _, nd := range n.nodes {
		m, _ := n.Module(nd.name)
		mods = append(mods, m)
	}

	return mods
}

// Mermaid renders the network as a Mermaid flowchart.
func (n *Network) Mermaid() string {
	var b strings.Builder
	b.WriteString("flowchart LR\n")
	fmt.Fprintf(&b, "  %s --> %s\n", Button, BroadcasterName)
	for _, nd := range n.nodes {
		switch nd.kind {
		case Broadcast:
			fmt.Fprintf(&b, "  %s[%s]\n", nd.name, nd.name)
		case FlipFlop:
			fmt.Fprintf(&b, "  %s([%s])\n", nd.name, nd.name)
		case Conjunction:
			fmt.Fprintf(&b, "  %s{{%s}}\n", nd.name, nd.name)
		}
		for _, e := range nd.out {
			fmt.Fprintf(&b, "  %s --> %s\n", nd.name, n.nodes[e.to].name)
		}
	}

	return b.String()
}
