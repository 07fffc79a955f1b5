package numeric

import (
	"fmt"
	"strconv"
	"strings"
)

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Digit returns the numeric value of the ASCII digit b.
// It panics when b is not a digit.
func Digit(b byte) int {
	if !IsDigit(b) {
		panic(fmt.Sprintf("numeric: bogus digit %q", b))
	}

	return int(b - '0')
}

// Ints parses every whitespace-separated field of s as a base-10 integer.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("numeric: parse %q: %w", f, err)
		}
		out = append(out, n)
	}

	return out, nil
}
