//go:build aocdebug

package trace

// Enabled reports whether trace output is compiled into this binary.
const Enabled = true
