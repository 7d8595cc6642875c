/*
File    : sst/eval/builtins.go

Implements the built-in functions spec §4.5 names: output, error,
exec and <str|list>.size(). ("input" lives in eval_input.go since it
needs raw argument expressions, not evaluated values.)
*/
package eval

import (
	"github.com/sst-lang/sst/parser"
	"github.com/sst-lang/sst/values"
)

// builtins is the table of free-function builtins that are neither
// user-defined nor methods. A call by bare name checks this table
// before the environment, so a builtin always takes priority: a user
// `func output(...)` is never reached by calling `output(...)`.
var builtins map[string]func(*Evaluator, []values.Value) values.Value

// The table is filled in init rather than in its declaration because
// builtinExec reaches evalFuncCall, which reads builtins; a declaration
// initializer would form an initialization cycle.
func init() {
	builtins = map[string]func(*Evaluator, []values.Value) values.Value{
		"output": builtinOutput,
		"error":  builtinError,
		"exec":   builtinExec,
	}
}

func builtinOutput(e *Evaluator, args []values.Value) values.Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	e.output(parts)
	return &values.Nil{}
}

func builtinError(e *Evaluator, args []values.Value) values.Value {
	msg := ""
	for i, a := range args {
		if i > 0 {
			msg += " "
		}
		msg += a.String()
	}
	fail("%s", msg)
	return nil
}

// builtinExec implements the resolved ambiguity for exec's argument
// shape (SPEC_FULL.md §4): a bare string is the source; a list whose
// first element is a string uses that element as the source, so that
// the illustrative `exec({ source: "..." })` call shape from spec
// §4.5 still resolves to something the §4.2 grammar can produce.
func builtinExec(e *Evaluator, args []values.Value) values.Value {
	if len(args) == 0 {
		fail("exec expects a source string argument")
	}
	var src string
	switch v := args[0].(type) {
	case *values.Str:
		src = v.Value
	case *values.List:
		if len(v.Elements) == 0 {
			fail("exec: empty record/list argument")
		}
		s, ok := v.Elements[0].(*values.Str)
		if !ok {
			fail("exec: first element must be a string source")
		}
		src = s.Value
	default:
		fail("exec expects a string or record argument, got %s", args[0].Type())
	}
	return e.execSource(src)
}

// execSource tokenizes, parses and evaluates src against the current
// environment in place (spec §4.5: "evaluate the given source string
// in the current environment").
func (e *Evaluator) execSource(src string) values.Value {
	p, perr := parser.NewParser(src)
	if perr != nil {
		fail("exec: %v", perr)
	}
	prog, perr := p.Parse()
	if perr != nil {
		fail("exec: %v", perr)
	}
	for _, stmt := range prog.Statements {
		e.execStmt(stmt)
	}
	return &values.Nil{}
}

// callStrMethod dispatches a method call on a Str receiver.
func callStrMethod(s *values.Str, name string, args []values.Value) (values.Value, bool) {
	switch name {
	case "size":
		return &values.Int{Value: int64(len(s.Value))}, true
	default:
		return nil, false
	}
}

// callListMethod dispatches a method call on a List receiver.
func callListMethod(l *values.List, name string, args []values.Value) (values.Value, bool) {
	switch name {
	case "size":
		return &values.Int{Value: int64(len(l.Elements))}, true
	default:
		return nil, false
	}
}
