// Package assert provides fail-fast checks for geometry invariants.
// A failed assertion is a programming error, never a runtime condition.
package assert

import (
	"fmt"
	"runtime/debug"
)

// True panics with the formatted message and a stack trace if condition is false.
func True(condition bool, format string, args ...interface{}) {
	if !condition {
		panic("assertion failed: " + fmt.Sprintf(format, args...) + "\n" + string(debug.Stack()))
	}
}
