package eval

import (
	"github.com/sst-lang/sst/parser"
	"github.com/sst-lang/sst/values"
)

// evalInput implements spec §4.5's "input": collect one
// whitespace-separated token per target identifier, then assign each,
// coercing to the identifier's existing declared type if it is
// already bound (an unbound target is simply assigned the raw
// string).
func (e *Evaluator) evalInput(argExprs []parser.Expr) values.Value {
	names := make([]string, len(argExprs))
	for i, expr := range argExprs {
		id, ok := expr.(*parser.Ident)
		if !ok {
			fail("input target must be an identifier")
		}
		names[i] = id.Name
	}

	tokens := make([]string, len(names))
	for i := range names {
		tokens[i] = e.nextInputToken()
	}

	for i, name := range names {
		raw := &values.Str{Value: tokens[i]}
		existing, bound := e.Env.Get(name)
		if !bound {
			e.Env.Set(name, raw)
			continue
		}
		switch existing.(type) {
		case *values.Int:
			e.Env.Set(name, &values.Int{Value: toInt(raw)})
		case *values.Float:
			e.Env.Set(name, &values.Float{Value: toFloat(raw)})
		case *values.Bool:
			e.Env.Set(name, &values.Bool{Value: values.Truthy(raw)})
		default:
			e.Env.Set(name, raw)
		}
	}
	return &values.Nil{}
}
