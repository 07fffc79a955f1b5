// Package trace is the development-time tracing facility used by the daily
// solvers to dump intermediate state.
//
// Tracing is compiled in only when the binary is built with the
// "aocdebug" build tag:
//
//	go build -tags aocdebug ./cmd/aoc
//
// Without the tag Enabled is the constant false, every Printf call is a
// no-op and the compiler drops the branch entirely. Nothing written through
// this package is part of a program's output contract.
package trace

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var sink atomic.Pointer[zap.SugaredLogger]

func init() {
	sink.Store(zap.NewNop().Sugar())
}

// SetLogger installs l as the destination for trace output.
// A nil logger restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	sink.Store(l.Named("trace").Sugar())
}

// Printf records a formatted debug message when tracing is compiled in.
func Printf(format string, args ...any) {
	if !Enabled {
		return
	}
	sink.Load().Debugf(format, args...)
}
