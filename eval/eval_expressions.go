/*
File    : sst/eval/eval_expressions.go

Expression evaluation (spec §4.2's grammar, §4.3's value/coercion
rules). evalExpr dispatches by concrete AST type, mirroring the
teacher's big type-switch in evaluator_expressions.go but against the
simplified 11-node Expr union.
*/
package eval

import (
	"github.com/sst-lang/sst/environment"
	"github.com/sst-lang/sst/parser"
	"github.com/sst-lang/sst/values"
)

func (e *Evaluator) evalExpr(expr parser.Expr) values.Value {
	switch x := expr.(type) {
	case *parser.Literal:
		return e.evalLiteral(x)
	case *parser.Ident:
		return e.evalIdent(x)
	case *parser.Assign:
		return e.evalAssign(x)
	case *parser.Unary:
		return e.evalUnary(x)
	case *parser.Binary:
		return e.evalBinary(x)
	case *parser.FuncCall:
		return e.evalFuncCall(x)
	case *parser.MemberAccess:
		return e.evalMemberAccess(x)
	case *parser.MemberCall:
		return e.evalMemberCall(x)
	case *parser.Index:
		return e.evalIndex(x)
	case *parser.ListLit:
		return e.evalListLit(x)
	case *parser.RecordLit:
		return e.evalRecordLit(x)
	default:
		fail("unsupported expression node %T", expr)
		return nil
	}
}

func (e *Evaluator) evalLiteral(lit *parser.Literal) values.Value {
	switch lit.Kind {
	case parser.IntLit:
		return &values.Int{Value: lit.IntVal}
	case parser.FloatLit:
		return &values.Float{Value: lit.FloatVal}
	case parser.StringLit:
		return &values.Str{Value: lit.StrVal}
	case parser.BoolLit:
		return &values.Bool{Value: lit.BoolVal}
	default:
		fail("unsupported literal kind %d", lit.Kind)
		return nil
	}
}

func (e *Evaluator) evalIdent(id *parser.Ident) values.Value {
	v, ok := e.Env.Get(id.Name)
	if !ok {
		fail("undefined identifier %q", id.Name)
	}
	return v
}

// evalAssign rejects any non-Ident target at evaluation time, even
// though the parser's grammar accepts any unary expression there
// (spec §4.2 rule 1, §4.6 "Assign: reject non-Ident LHS").
func (e *Evaluator) evalAssign(a *parser.Assign) values.Value {
	id, ok := a.Target.(*parser.Ident)
	if !ok {
		fail("assignment target must be an identifier")
	}
	v := e.evalExpr(a.Value)
	e.Env.Set(id.Name, v)
	return v
}

func (e *Evaluator) evalUnary(u *parser.Unary) values.Value {
	v := e.evalExpr(u.X)
	switch u.Op {
	case "-":
		switch vv := v.(type) {
		case *values.Int:
			return &values.Int{Value: -vv.Value}
		case *values.Float:
			return &values.Float{Value: -vv.Value}
		default:
			fail("unary '-' does not support %s", v.Type())
		}
	case "+":
		switch v.(type) {
		case *values.Int, *values.Float:
			return v
		default:
			fail("unary '+' does not support %s", v.Type())
		}
	case "not":
		return &values.Bool{Value: !values.Truthy(v)}
	}
	fail("unsupported unary operator %q", u.Op)
	return nil
}

// evalBinary implements spec §4.3's arithmetic/comparison laws and
// the short-circuit semantics of "and"/"or", which return the last
// evaluated operand rather than a fresh Bool.
func (e *Evaluator) evalBinary(b *parser.Binary) values.Value {
	if b.Op == "and" {
		left := e.evalExpr(b.Left)
		if !values.Truthy(left) {
			return left
		}
		return e.evalExpr(b.Right)
	}
	if b.Op == "or" {
		left := e.evalExpr(b.Left)
		if values.Truthy(left) {
			return left
		}
		return e.evalExpr(b.Right)
	}

	left := e.evalExpr(b.Left)
	right := e.evalExpr(b.Right)

	switch b.Op {
	case "+", "-", "*", "%", "/":
		return evalArith(b.Op, left, right)
	case ">", "<", ">=", "<=", "==", "!=":
		return evalCompare(b.Op, left, right)
	}
	fail("unsupported binary operator %q", b.Op)
	return nil
}

func bothInt(a, b values.Value) (int64, int64, bool) {
	ai, aok := a.(*values.Int)
	bi, bok := b.(*values.Int)
	if aok && bok {
		return ai.Value, bi.Value, true
	}
	return 0, 0, false
}

func asFloat(v values.Value) (float64, bool) {
	switch vv := v.(type) {
	case *values.Int:
		return float64(vv.Value), true
	case *values.Float:
		return vv.Value, true
	default:
		return 0, false
	}
}

func evalArith(op string, left, right values.Value) values.Value {
	if li, ri, ok := bothInt(left, right); ok {
		switch op {
		case "+":
			return &values.Int{Value: li + ri}
		case "-":
			return &values.Int{Value: li - ri}
		case "*":
			return &values.Int{Value: li * ri}
		case "%":
			if ri == 0 {
				fail("modulo by zero")
			}
			return &values.Int{Value: li % ri}
		case "/":
			if ri == 0 {
				fail("division by zero")
			}
			return &values.Int{Value: floorDiv(li, ri)}
		}
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		fail("unsupported operand types for %q: %s, %s", op, left.Type(), right.Type())
	}
	switch op {
	case "+":
		return &values.Float{Value: lf + rf}
	case "-":
		return &values.Float{Value: lf - rf}
	case "*":
		return &values.Float{Value: lf * rf}
	case "%":
		fail("unsupported operand types for %q: %s, %s", op, left.Type(), right.Type())
	case "/":
		return &values.Float{Value: lf / rf}
	}
	return nil
}

// floorDiv implements floor division (rounding toward negative
// infinity) for two Int operands,
// matching spec §8's "Int / Int yields Int equal to floor(a/b)".
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func evalCompare(op string, left, right values.Value) values.Value {
	if lf, lok := asFloat(left); lok {
		if rf, rok := asFloat(right); rok {
			switch op {
			case ">":
				return &values.Bool{Value: lf > rf}
			case "<":
				return &values.Bool{Value: lf < rf}
			case ">=":
				return &values.Bool{Value: lf >= rf}
			case "<=":
				return &values.Bool{Value: lf <= rf}
			case "==":
				return &values.Bool{Value: lf == rf}
			case "!=":
				return &values.Bool{Value: lf != rf}
			}
		}
	}
	if ls, ok := left.(*values.Str); ok {
		if rs, ok := right.(*values.Str); ok {
			switch op {
			case ">":
				return &values.Bool{Value: ls.Value > rs.Value}
			case "<":
				return &values.Bool{Value: ls.Value < rs.Value}
			case ">=":
				return &values.Bool{Value: ls.Value >= rs.Value}
			case "<=":
				return &values.Bool{Value: ls.Value <= rs.Value}
			case "==":
				return &values.Bool{Value: ls.Value == rs.Value}
			case "!=":
				return &values.Bool{Value: ls.Value != rs.Value}
			}
		}
	}
	if op == "==" || op == "!=" {
		eq := sameValue(left, right)
		if op == "!=" {
			eq = !eq
		}
		return &values.Bool{Value: eq}
	}
	fail("unsupported operand types for %q: %s, %s", op, left.Type(), right.Type())
	return nil
}

func sameValue(left, right values.Value) bool {
	if lb, ok := left.(*values.Bool); ok {
		if rb, ok := right.(*values.Bool); ok {
			return lb.Value == rb.Value
		}
	}
	_, lNil := left.(*values.Nil)
	_, rNil := right.(*values.Nil)
	if lNil || rNil {
		return lNil && rNil
	}
	return left == right
}

func (e *Evaluator) evalListLit(lst *parser.ListLit) values.Value {
	elems := make([]values.Value, len(lst.Elems))
	for i, el := range lst.Elems {
		elems[i] = e.evalExpr(el)
	}
	return &values.List{Elements: elems}
}

// evalRecordLit evaluates "{ ... }" as an ordered value sequence
// identical to a list literal; it only becomes a Record when coerced
// against a declared user type (see SPEC_FULL.md's ambiguity note).
func (e *Evaluator) evalRecordLit(rec *parser.RecordLit) values.Value {
	elems := make([]values.Value, len(rec.Elems))
	for i, el := range rec.Elems {
		elems[i] = e.evalExpr(el)
	}
	return &values.List{Elements: elems}
}

func (e *Evaluator) evalIndex(ix *parser.Index) values.Value {
	obj := e.evalExpr(ix.Object)
	idxVal := e.evalExpr(ix.Index)
	idx, ok := idxVal.(*values.Int)
	if !ok {
		fail("index must be a num, got %s", idxVal.Type())
	}
	lst, ok := obj.(*values.List)
	if !ok {
		fail("cannot index into %s", obj.Type())
	}
	if idx.Value < 0 || int(idx.Value) >= len(lst.Elements) {
		fail("index %d out of range (length %d)", idx.Value, len(lst.Elements))
	}
	return lst.Elements[idx.Value]
}

func (e *Evaluator) evalArgs(exprs []parser.Expr) []values.Value {
	args := make([]values.Value, len(exprs))
	for i, ex := range exprs {
		args[i] = e.evalExpr(ex)
	}
	return args
}

// evalFuncCall resolves the callee and dispatches to either a
// user-defined Function or a built-in.
func (e *Evaluator) evalFuncCall(fc *parser.FuncCall) values.Value {
	name, isIdent := calleeName(fc.Callee)
	if isIdent {
		// "input" binds its arguments as assignment targets, so it
		// needs the raw expressions rather than evaluated values
		// (spec §4.5: each target identifier receives a token,
		// coerced to its existing declared type).
		if name == "input" {
			return e.evalInput(fc.Args)
		}
		if builtin, ok := builtins[name]; ok {
			return builtin(e, e.evalArgs(fc.Args))
		}
	}

	callee := e.evalExpr(fc.Callee)
	fn, ok := callee.(*environment.Function)
	if !ok {
		fail("cannot call a value of type %s", callee.Type())
	}
	return e.callFunction(fn, e.evalArgs(fc.Args))
}

func calleeName(expr parser.Expr) (string, bool) {
	id, ok := expr.(*parser.Ident)
	if !ok {
		return "", false
	}
	return id.Name, true
}

func (e *Evaluator) evalMemberAccess(ma *parser.MemberAccess) values.Value {
	obj := e.evalExpr(ma.Object)
	switch o := obj.(type) {
	case *values.Record:
		v, ok := o.Fields[ma.Name]
		if !ok {
			fail("%s has no field or method %q", o.TypeName, ma.Name)
		}
		return v
	case *environment.Module:
		v, ok := o.Env.Get(ma.Name)
		if !ok {
			fail("module %q has no member %q", o.Name, ma.Name)
		}
		return v
	default:
		fail("unsupported member access on %s", obj.Type())
		return nil
	}
}

func (e *Evaluator) evalMemberCall(mc *parser.MemberCall) values.Value {
	obj := e.evalExpr(mc.Object)
	args := e.evalArgs(mc.Args)

	switch o := obj.(type) {
	case *values.Str:
		if v, ok := callStrMethod(o, mc.Name, args); ok {
			return v
		}
		fail("str has no method %q", mc.Name)
	case *values.List:
		if v, ok := callListMethod(o, mc.Name, args); ok {
			return v
		}
		fail("li has no method %q", mc.Name)
	case *values.Record:
		methodVal, ok := o.Fields[mc.Name]
		if !ok {
			fail("%s has no method %q", o.TypeName, mc.Name)
		}
		method, ok := methodVal.(*environment.Function)
		if !ok {
			fail("%s field %q is not callable", o.TypeName, mc.Name)
		}
		return e.callMethod(o, method, args)
	case *environment.Module:
		fnVal, ok := o.Env.Get(mc.Name)
		if !ok {
			fail("module %q has no function %q", o.Name, mc.Name)
		}
		fn, ok := fnVal.(*environment.Function)
		if !ok {
			fail("module %q member %q is not callable", o.Name, mc.Name)
		}
		return e.callFunction(fn, args)
	}
	fail("unsupported member call on %s", obj.Type())
	return nil
}

// callFunction implements the free-function snapshot/restore
// discipline of spec §4.4: overlay the callee's captured env with its
// parameter bindings, run the body, then write back only the names
// that already existed in the caller's environment.
func (e *Evaluator) callFunction(fn *environment.Function, args []values.Value) values.Value {
	if len(args) != len(fn.Params) {
		fail("%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	caller := e.Env
	callerKeys := caller.SnapshotKeys()

	callEnv := fn.Env.Clone()
	for i, param := range fn.Params {
		callEnv.Set(param.Name, e.coerce(param.TypeName, args[i]))
	}

	e.Env = callEnv
	result := e.runFunctionBody(fn.Body)
	e.Env = caller

	caller.WriteBack(callEnv, callerKeys)
	return result
}

// callMethod implements the member-call protocol of spec §4.4:
// overlay (a) the method's captured env, (b) the record's current
// non-function fields, (c) the parameter bindings; afterward, write
// back only the names that name record fields, leaving methods
// untouched.
func (e *Evaluator) callMethod(rec *values.Record, method *environment.Function, args []values.Value) values.Value {
	if len(args) != len(method.Params) {
		fail("%s.%s expects %d argument(s), got %d", rec.TypeName, method.Name, len(method.Params), len(args))
	}

	caller := e.Env
	callerKeys := caller.SnapshotKeys()

	callEnv := method.Env.Clone()
	for _, name := range rec.Order {
		if v := rec.Fields[name]; v.Type() != values.FunctionType {
			callEnv.Set(name, v)
		}
	}
	for i, param := range method.Params {
		callEnv.Set(param.Name, e.coerce(param.TypeName, args[i]))
	}

	e.Env = callEnv
	result := e.runFunctionBody(method.Body)
	e.Env = caller

	caller.WriteBack(callEnv, callerKeys)
	for _, name := range rec.Order {
		if rec.Fields[name].Type() == values.FunctionType {
			continue
		}
		if v, ok := callEnv.Get(name); ok {
			rec.Fields[name] = v
		}
	}
	return result
}

// runFunctionBody executes body, recovering a returnSignal into its
// carried value; a body that never returns yields Nil.
func (e *Evaluator) runFunctionBody(body []parser.Stmt) (result values.Value) {
	result = &values.Nil{}
	defer func() {
		if r := recover(); r != nil {
			if rs, ok := r.(returnSignal); ok {
				result = rs.value
				return
			}
			panic(r)
		}
	}()
	for _, stmt := range body {
		e.execStmt(stmt)
	}
	return result
}
