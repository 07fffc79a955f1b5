// Package numeric holds the small integer helpers shared by the daily
// solvers: ASCII digit conversion and Euclid's GCD with its LCM companion.
//
// What:
//
//   - Digit converts a byte known to be '0'..'9' into its value and panics
//     otherwise; callers validate with IsDigit first.
//   - GCD and LCM are generic over every integer type via
//     golang.org/x/exp/constraints, so a caller picks the width it needs.
//
// Overflow:
//
//   - LCM divides before multiplying, which delays overflow but does not
//     prevent it. Results that exceed the chosen type wrap silently; pick
//     int64/uint64 when the expected magnitude is large.
package numeric
