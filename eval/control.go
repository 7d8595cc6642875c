/*
File    : sst/eval/control.go

Package eval implements the tree-walking evaluator for SST: the
statement executor and expression evaluator that walk the parser's
AST against an environment.Environment (spec §4.6, §4.7). Control
flow (break/continue/return) is modeled as Go panics carrying a typed
signal, never as a values.Value, matching spec §7's "loop-control and
return are control, not errors, but share the same unwinding
mechanism" and the teacher's own panic/recover boundary
(_examples/akashmaji946-go-mix/main/main.go executeFileWithRecovery).
*/
package eval

import (
	"fmt"

	"github.com/sst-lang/sst/values"
)

// breakSignal unwinds to the innermost While.
type breakSignal struct{}

// continueSignal skips to the next iteration of the innermost While.
type continueSignal struct{}

// returnSignal terminates the enclosing function or method call,
// carrying the value a Return statement produced (Nil for a bare
// "return;").
type returnSignal struct{ value values.Value }

// evalError is a fatal diagnostic raised during evaluation (spec §7,
// classes 3-7: name errors, type/arity errors, coercion errors, I/O
// errors, user errors). It is recovered once, at the top-level
// statement boundary.
type evalError struct {
	msg string
}

func (e *evalError) Error() string { return e.msg }

func fail(format string, args ...interface{}) {
	panic(&evalError{msg: fmt.Sprintf(format, args...)})
}
