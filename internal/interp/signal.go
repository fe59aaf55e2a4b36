package interp

import "fmt"

// returnSignal unwinds a function body once Return is reached, the way
// funxy's VM unwinds a frame on its own errEarlyReturn sentinel rather
// than threading a "did we return" flag through every statement case.
type returnSignal struct {
	value Value
}

func (returnSignal) Error() string { return "early return" }

// RuntimeError is what exec/eval report for a failure the interpreter
// itself can diagnose (a type mismatch, a bound check) as opposed to a
// phrase-level operation it cannot represent at all (unsupportedError).
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func runtimeErrorf(format string, args ...any) error {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

// unsupportedError is raised for CRDT operations, networking primitives,
// and Launch/Pipe/Select: §4.11 requires a descriptive error directing
// the user to compiled mode rather than a silent no-op or a panic.
type unsupportedError struct {
	operation string
}

func (e *unsupportedError) Error() string {
	return e.operation + " is not supported by the interpreter; compile this program and run it instead"
}
