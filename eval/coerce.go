/*
File    : sst/eval/coerce.go

Implements the coercion rules a declared type (in a VarDecl, a
function parameter, or an `input` target) triggers, per spec §4.3.
*/
package eval

import (
	"strconv"

	"github.com/sst-lang/sst/environment"
	"github.com/sst-lang/sst/values"
)

// coerce converts v to match typeName, per spec §4.3: "num" truncates
// to an integer, "fl" widens/narrows to a float, "str" stringifies,
// "bool" applies truthiness, "li" and user types accept only a
// matching shape (a List literal is converted positionally into a
// Record for a user type).
func (e *Evaluator) coerce(typeName string, v values.Value) values.Value {
	switch typeName {
	case "num":
		return &values.Int{Value: toInt(v)}
	case "fl":
		return &values.Float{Value: toFloat(v)}
	case "str":
		return &values.Str{Value: v.String()}
	case "bool":
		return &values.Bool{Value: values.Truthy(v)}
	case "li":
		lst, ok := v.(*values.List)
		if !ok {
			fail("expected a list value for a 'li' target, got %s", v.Type())
		}
		return lst
	default:
		return e.coerceToUserType(typeName, v)
	}
}

func toInt(v values.Value) int64 {
	switch vv := v.(type) {
	case *values.Int:
		return vv.Value
	case *values.Float:
		return int64(vv.Value)
	case *values.Str:
		n, err := strconv.ParseInt(vv.Value, 10, 64)
		if err != nil {
			fail("cannot coerce %q to num", vv.Value)
		}
		return n
	case *values.Bool:
		if vv.Value {
			return 1
		}
		return 0
	default:
		fail("cannot coerce %s to num", v.Type())
		return 0
	}
}

func toFloat(v values.Value) float64 {
	switch vv := v.(type) {
	case *values.Int:
		return float64(vv.Value)
	case *values.Float:
		return vv.Value
	case *values.Str:
		f, err := strconv.ParseFloat(vv.Value, 64)
		if err != nil {
			fail("cannot coerce %q to fl", vv.Value)
		}
		return f
	case *values.Bool:
		if vv.Value {
			return 1
		}
		return 0
	default:
		fail("cannot coerce %s to fl", v.Type())
		return 0
	}
}

// coerceToUserType converts a List literal's positional values into a
// Record of the declared shape, splicing in the type's methods as
// Function values bound to the environment snapshot at this point
// (spec §4.3, §3's Record invariant).
func (e *Evaluator) coerceToUserType(typeName string, v values.Value) values.Value {
	if rec, ok := v.(*values.Record); ok && rec.TypeName == typeName {
		return rec
	}

	ut, ok := e.Registry.Types[typeName]
	if !ok {
		fail("unknown type %q", typeName)
	}

	lst, ok := v.(*values.List)
	if !ok {
		fail("expected a list literal to initialize %s, got %s", typeName, v.Type())
	}
	if len(lst.Elements) != len(ut.Fields) {
		fail("%s expects %d fields, got %d", typeName, len(ut.Fields), len(lst.Elements))
	}

	rec := values.NewRecord(typeName)
	for i, f := range ut.Fields {
		rec.Set(f.Name, e.coerce(f.TypeName, lst.Elements[i]))
	}

	snapshot := e.Env.Clone()
	for _, m := range ut.Methods {
		rec.Set(m.Name, &environment.Function{
			Name:   m.Name,
			Params: m.Params,
			Body:   m.Body,
			Env:    snapshot,
		})
	}
	return rec
}
