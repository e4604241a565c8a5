package interpreter

import "github.com/oolang/interpreter/pkg/value"

// returnSignal unwinds the call stack up to the nearest MethodBody. It is
// carried as the error result of Execute rather than via panic/recover:
// a single type switch at the one legitimate catch point (evalMethodBody)
// is enough, and nothing else in this package needs to guard against an
// unexpected recover. This mirrors the teacher's break/continue/raise
// signals and is the corrected replacement for the original source's
// return-by-stringify-and-throw, which silently turned every returned
// value into a String at the call boundary.
type returnSignal struct {
	value value.Holder
}

func (returnSignal) Error() string { return "return outside of a method body" }
