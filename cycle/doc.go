// Package cycle detects when an iterated, deterministic process starts to
// repeat, so that a state billions of steps ahead can be read off a short
// recorded history.
//
// Given a start state s0 and a step function, the sequence s0, s1, s2, ...
// of a finite-state process is eventually periodic: there are Start ≥ 0 and
// Length ≥ 1 with s[i+Length] == s[i] for every i ≥ Start. Find discovers
// both by keying every state and stopping at the first repeated key.
//
// Complexity:
//
//   - Time:   O((Start + Length) × cost(step + key)).
//   - Memory: O(Start + Length) recorded states and keys.
//
// Errors:
//
//   - ErrNoCycle: no key repeated within the configured step budget.
//   - ErrBadMaxSteps: WithMaxSteps was given a non-positive budget.
package cycle
