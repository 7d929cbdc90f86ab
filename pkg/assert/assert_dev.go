//go:build !release

// Package assert checks internal invariants. Violations panic in development builds and are
// compiled out when building with the release tag.
package assert

import "fmt"

// That panics with the formatted message when cond is false.
func That(cond bool, format string, args ...any) { //nolint:goprintffuncname // it's ok
	if !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}
