package numeric

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b using the recursive
// Euclidean algorithm. GCD(a, 0) == a.
func GCD[T constraints.Integer](a, b T) T {
	if b == 0 {
		return a
	}

	return GCD(b, a%b)
}

// LCM returns the least common multiple of a and b.
// LCM(0, 0) is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return a / GCD(a, b) * b
}

// LCMAll folds LCM over xs starting from 1. An empty list yields 1.
func LCMAll[T constraints.Integer](xs ...T) T {
	acc := T(1)
	for _, x := range xs {
		acc = LCM(acc, x)
	}

	return acc
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
