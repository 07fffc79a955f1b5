// Package automaton simulates networks of pulse-passing modules.
//
// A network is described one module per line:
//
//	broadcaster -> a, b
//	%a -> inv
//	&inv -> b
//
// `broadcaster` relays every pulse unchanged. A flip-flop (`%`) ignores high
// pulses and toggles on a low one, then emits high if it is now on and low
// otherwise. A conjunction (`&`) remembers the last pulse from each of its
// inputs (initially low) and emits low only when all of them are high.
// Destinations that never appear on the left-hand side are sinks: they count
// pulses but emit nothing.
//
// Pressing the button sends one low pulse to `broadcaster`. Pulses are
// delivered in the order they were sent (FIFO), and a press ends when the
// queue is empty.
//
// Errors:
//
//   - ErrBadModule: a line that is not `name -> dst, ...` with a known prefix.
//   - ErrNoBroadcaster: the description has no `broadcaster` line.
package automaton
