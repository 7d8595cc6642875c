/*
File    : sst/eval/eval_statements.go

Statement execution, spec §4.6.
*/
package eval

import (
	"github.com/sst-lang/sst/environment"
	"github.com/sst-lang/sst/parser"
	"github.com/sst-lang/sst/values"
)

func (e *Evaluator) execStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.UseStmt:
		e.execUse(s)
	case *parser.NewTypeStmt:
		e.execNewType(s)
	case *parser.FuncDeclStmt:
		e.execFuncDecl(s)
	case *parser.VarDeclStmt:
		e.execVarDecl(s)
	case *parser.IfStmt:
		e.execIf(s)
	case *parser.WhileStmt:
		e.execWhile(s)
	case *parser.AlwaysStmt:
		e.execAlways(s)
	case *parser.ReturnStmt:
		e.execReturn(s)
	case *parser.BreakStmt:
		panic(breakSignal{})
	case *parser.ContinueStmt:
		panic(continueSignal{})
	case *parser.ExprStmt:
		e.evalExpr(s.X)
	default:
		fail("unsupported statement node %T", stmt)
	}
}

// execUse loads and evaluates "./<name>.sst" under a fresh, isolated
// environment but the shared type registry (spec §4.6, and the Open
// Question resolved in SPEC_FULL.md/DESIGN.md). Functions are not
// held in a registry: a function the module declares is bound only in
// the module's own environment and is reached as module.fn(...). The
// resulting environment becomes the Module value bound to the
// module's name in the caller's environment.
func (e *Evaluator) execUse(s *parser.UseStmt) {
	if e.Files == nil {
		fail("use %q: no module reader configured", s.Module)
	}
	src, err := e.Files.ReadModule(s.Module)
	if err != nil {
		fail("use %q: %v", s.Module, err)
	}

	moduleEval := &Evaluator{
		Env:       environment.New(),
		Registry:  e.Registry,
		Files:     e.Files,
		writerMu:  e.writerMu,
		writer:    e.writer,
		reader:    e.reader,
		scheduler: e.scheduler,
	}

	p, perr := parser.NewParser(src)
	if perr != nil {
		fail("use %q: %v", s.Module, perr)
	}
	prog, perr := p.Parse()
	if perr != nil {
		fail("use %q: %v", s.Module, perr)
	}
	moduleEval.execProgramTopLevel(prog)

	e.Env.Set(s.Module, &environment.Module{Name: s.Module, Env: moduleEval.Env})
}

// execNewType registers the declared type in the shared registry and
// binds a descriptor value under its own name (spec §4.6).
func (e *Evaluator) execNewType(s *parser.NewTypeStmt) {
	e.Registry.Types[s.Name] = &environment.UserType{
		Name:    s.Name,
		Fields:  s.Fields,
		Methods: s.Methods,
	}
	e.Env.Set(s.Name, &environment.TypeDesc{Name: s.Name})
}

// execFuncDecl builds a Function capturing the current environment
// and binds it into that environment (spec §4.6).
func (e *Evaluator) execFuncDecl(s *parser.FuncDeclStmt) {
	fn := &environment.Function{
		Name:   s.Name,
		Params: s.Params,
		Body:   s.Body,
		Env:    e.Env.Clone(),
	}
	// Bind the function into its own captured environment so a
	// recursive call (spec §8 scenario 5, fib) resolves "f" the same
	// way any other previously-captured name resolves.
	fn.Env.Set(s.Name, fn)

	e.Env.Set(s.Name, fn)
}

func (e *Evaluator) execVarDecl(s *parser.VarDeclStmt) {
	v := e.evalExpr(s.Init)
	e.Env.Set(s.Name, e.coerce(s.TypeName, v))
}

func (e *Evaluator) execIf(s *parser.IfStmt) {
	if values.Truthy(e.evalExpr(s.Cond)) {
		e.execBlock(s.Then)
		return
	}
	for _, elif := range s.Elifs {
		if values.Truthy(e.evalExpr(elif.Cond)) {
			e.execBlock(elif.Body)
			return
		}
	}
	if s.Else != nil {
		e.execBlock(s.Else)
	}
}

// execWhile is a pre-test loop; break/continue unwind only this loop
// (spec §4.6).
func (e *Evaluator) execWhile(s *parser.WhileStmt) {
	for values.Truthy(e.evalExpr(s.Cond)) {
		if !e.runLoopIteration(s.Body) {
			break
		}
	}
}

// runLoopIteration runs body once, reporting whether the loop should
// continue (false means a break was seen).
func (e *Evaluator) runLoopIteration(body []parser.Stmt) (cont bool) {
	cont = true
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case breakSignal:
				cont = false
			case continueSignal:
				cont = true
			default:
				panic(r)
			}
		}
	}()
	e.execBlock(body)
	return cont
}

func (e *Evaluator) execBlock(stmts []parser.Stmt) {
	for _, stmt := range stmts {
		e.execStmt(stmt)
	}
}

// execAlways evaluates the interval once at declaration and submits a
// periodic task to the scheduler (spec §4.6, §4.7).
func (e *Evaluator) execAlways(s *parser.AlwaysStmt) {
	intervalVal := e.evalExpr(s.Interval)
	seconds, ok := asFloat(intervalVal)
	if !ok {
		fail("always(...) interval must be numeric, got %s", intervalVal.Type())
	}
	e.scheduler.Schedule(e, s.Body, seconds)
}

func (e *Evaluator) execReturn(s *parser.ReturnStmt) {
	if s.Value == nil {
		panic(returnSignal{value: &values.Nil{}})
	}
	panic(returnSignal{value: e.evalExpr(s.Value)})
}
