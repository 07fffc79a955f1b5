package automaton_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/automaton"
	"github.com/katalvlaran/aoc2023/cycle"
)

const ring = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
`

const chain = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
`

//------------------------------------------------------------------------------
// Parsing
//------------------------------------------------------------------------------

func TestParse(t *testing.T) {
	n, err := automaton.Parse(chain)
	require.NoError(t, err)

	con, ok := n.Module("con")
	require.True(t, ok)
	assert.Equal(t, automaton.Conjunction, con.Kind)
	assert.Equal(t, []string{"a", "b"}, con.Inputs)
	assert.Equal(t, []string{"output"}, con.Outputs)

	out, ok := n.Module("output")
	require.True(t, ok)
	assert.Equal(t, automaton.Sink, out.Kind)
	assert.Equal(t, []string{"con"}, n.Inputs("output"))

	_, ok = n.Module("rx")
	assert.False(t, ok)
	assert.Len(t, n.Modules(), 6)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		text string
		err  error
	}{
		"no arrow":       {"broadcaster a", automaton.ErrBadModule},
		"bad prefix":     {"broadcaster -> a\n#a -> b", automaton.ErrBadModule},
		"duplicate":      {"broadcaster -> a\n%a -> b\n&a -> b", automaton.ErrBadModule},
		"no broadcaster": {"%a -> b\n&b -> a", automaton.ErrNoBroadcaster},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := automaton.Parse(c.text)
			assert.ErrorIs(t, err, c.err)
		})
	}
}

//------------------------------------------------------------------------------
// Propagation
//------------------------------------------------------------------------------

func TestPress_Ring(t *testing.T) {
	n, err := automaton.Parse(ring)
	require.NoError(t, err)

	var got []automaton.Pulse
	c := n.Press(func(p automaton.Pulse) { got = append(got, p) })
	assert.Equal(t, automaton.Counts{Low: 8, High: 4}, c)

	want := []automaton.Pulse{
		{From: "button", To: "broadcaster"},
		{From: "broadcaster", To: "a"},
		{From: "broadcaster", To: "b"},
		{From: "broadcaster", To: "c"},
		{From: "a", To: "b", High: true},
		{From: "b", To: "c", High: true},
		{From: "c", To: "inv", High: true},
		{From: "inv", To: "a"},
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "c", To: "inv"},
		{From: "inv", To: "a", High: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pulse order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, n.Presses())
}

func TestPress_ChainTotals(t *testing.T) {
	n, err := automaton.Parse(chain)
	require.NoError(t, err)

	var total automaton.Counts
	for i := 0; i < 1000; i++ {
		total = total.Add(n.Press(nil))
	}
	assert.Equal(t, automaton.Counts{Low: 4250, High: 2750}, total)
}

// TestStateKey_Returns checks that repeated presses bring the network back to
// its initial state.
func TestStateKey_Returns(t *testing.T) {
	for name, text := range map[string]string{"ring": ring, "chain": chain} {
		t.Run(name, func(t *testing.T) {
			n, err := automaton.Parse(text)
			require.NoError(t, err)
			initial := n.StateKey()

			res, err := cycle.Find(initial, func(uint64) uint64 {
				n.Press(nil)
				return n.StateKey()
			}, func(k uint64) uint64 { return k })
			require.NoError(t, err)
			assert.Equal(t, 0, res.Start)
			assert.Equal(t, initial, res.History[res.Length])
		})
	}
}

func TestReset(t *testing.T) {
	n, err := automaton.Parse(chain)
	require.NoError(t, err)
	initial := n.StateKey()
	n.Press(nil)
	assert.NotEqual(t, initial, n.StateKey())

	n.Reset()
	assert.Equal(t, initial, n.StateKey())
	assert.Equal(t, 0, n.Presses())
	assert.Equal(t, automaton.Counts{Low: 4, High: 4}, n.Press(nil))
}

func TestMermaid(t *testing.T) {
	n, err := automaton.Parse("broadcaster -> a\n%a -> c\n&c -> rx\n")
	require.NoError(t, err)
	want := "flowchart LR\n" +
		"  button --> broadcaster\n" +
		"  broadcaster[broadcaster]\n" +
		"  broadcaster --> a\n" +
		"  a([a])\n" +
		"  a --> c\n" +
		"  c{{c}}\n" +
		"  c --> rx\n"
	assert.Equal(t, want, n.Mermaid())
}
