package interpreter

import "io"

// Context carries the one piece of external state a running program
// touches: where `print`/`Stringify` write to. It is threaded explicitly
// through every evaluation call rather than stored on Interpreter, the
// same way the source language threads its execution context alongside
// the closure on every node's Execute.
type Context struct {
	Output io.Writer
}
