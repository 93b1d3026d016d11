//go:build !noassert

package assert

import (
	"runtime"
	"sync/atomic"
)

var disabled atomic.Bool

// Disable will disable assertion evaluation globally.
// This is concurrency safe, but can have side effects in other goroutines that use assertions.
func Disable() {
	disabled.Store(true)
}

// Enable can be used to re-enable assertion evaluation if Disable was called previously.
// Note that this is a global setting, and calling Disable or Enable can have unintended side effects in other goroutines that use assertions.
func Enable() {
	disabled.Store(false)
}

// Enabled reports whether assertions are currently evaluated.
func Enabled() bool {
	return !disabled.Load()
}

func violated(label string) *Violation {
	v := &Violation{Label: label, File: "unknown"}
	if _, file, line, ok := runtime.Caller(2); ok {
		v.File, v.Line = file, line
	}
	return v
}

// True will panic with a [*Violation] if result is not true.
func True(label string, result bool) {
	if disabled.Load() {
		return
	}
	if !result {
		panic(violated(label))
	}
}

// TrueFunc will panic with a [*Violation] if assertion returns false.
// The assertion isn't called at all while assertions are disabled, so it may be expensive.
func TrueFunc(label string, assertion func() bool) {
	if disabled.Load() {
		return
	}
	if !assertion() {
		panic(violated(label))
	}
}
