// Package interval implements half-open integer ranges [Start, End) and the
// splitting operations used to push whole ranges of values through
// piecewise rules instead of enumerating them.
//
// Invariants:
//
//   - A Range with Start == End is empty; Start > End is rejected by New.
//   - SplitAt and Intersect never lose or duplicate a value: the returned
//     pieces are pairwise disjoint and their union equals the receiver.
package interval
