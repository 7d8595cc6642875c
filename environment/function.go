package environment

import (
	"github.com/sst-lang/sst/parser"
	"github.com/sst-lang/sst/values"
)

// Function is a callable SST value: a free function or a record
// method, holding the environment snapshot taken at its declaration
// (spec §3 "Function.captured_env is the environment snapshot at
// declaration"). A free function's Env is the defining env at the
// point its FuncDecl ran; a method's Env is a snapshot of the
// environment in which the record was constructed.
//
// Function lives in this package rather than values because it must
// reference *Environment, and Environment in turn stores
// values.Value — putting Function in values would close a cycle.
type Function struct {
	Name   string
	Params []parser.Field
	Body   []parser.Stmt
	Env    *Environment
}

func (f *Function) Type() values.Type { return values.FunctionType }
func (f *Function) String() string    { return "func:" + f.Name }

// Module is the value bound by a "use" statement: the environment the
// loaded file's top-level statements ran against (spec §4.6), exposed
// for member access (Module.name).
type Module struct {
	Name string
	Env  *Environment
}

func (m *Module) Type() values.Type { return values.ModuleType }
func (m *Module) String() string    { return "module:" + m.Name }

// TypeDesc is the descriptor value a "newtype T:" declaration binds
// under T itself, alongside registering T in the Registry (spec
// §4.6). It carries no behavior; its only use is letting source code
// reference a type's name as a value (e.g. for diagnostics).
type TypeDesc struct {
	Name string
}

func (d *TypeDesc) Type() values.Type { return values.TypeDescType }
func (d *TypeDesc) String() string    { return "type:" + d.Name }
