/*
File    : sst/environment/environment.go

Package environment implements the variable bindings a running SST
program evaluates against (spec §3, §4.4). Unlike the teacher's
parent-chained Scope (_examples/akashmaji946-go-mix/scope/scope.go),
SST has exactly one flat mutable environment per call: there is no
lexical nesting of blocks, only the snapshot/restore dance a function
or method call performs around its own copy (spec §4.4, §8).
*/
package environment

import "github.com/sst-lang/sst/values"

// Environment is a flat set of name -> value bindings.
type Environment struct {
	vars map[string]values.Value
}

// New creates an empty Environment.
func New() *Environment {
	return &Environment{vars: make(map[string]values.Value)}
}

// Get looks up name, reporting whether it is bound.
func (e *Environment) Get(name string) (values.Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name to v, overwriting any existing binding.
func (e *Environment) Set(name string, v values.Value) {
	e.vars[name] = v
}

// Delete removes name's binding, if any.
func (e *Environment) Delete(name string) {
	delete(e.vars, name)
}

// Names returns every currently-bound name. The returned slice is a
// fresh copy safe for the caller to mutate.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	return names
}

// Clone returns a new Environment with the same bindings, sharing no
// backing map with the receiver. Mutable values (*values.List,
// *values.Record) are still shared by reference between the two
// environments, matching the reference-counted-sharing model spec §1
// describes — only the name->value table itself is copied.
func (e *Environment) Clone() *Environment {
	clone := New()
	for k, v := range e.vars {
		clone.vars[k] = v
	}
	return clone
}

// SnapshotKeys captures the set of names currently bound, for later
// use by WriteBack when a function call returns (spec
// §4.4, §8: only names that existed in the caller before the call are
// written back afterward).
func (e *Environment) SnapshotKeys() map[string]bool {
	keys := make(map[string]bool, len(e.vars))
	for k := range e.vars {
		keys[k] = true
	}
	return keys
}

// WriteBack copies, from src, only the bindings whose name is present
// in keys, into the receiver. This implements the call-return
// protocol in spec §4.4: new locals a callee introduced (including
// its parameters) are discarded, but mutations to names the caller
// already had are observed by the caller.
func (e *Environment) WriteBack(src *Environment, keys map[string]bool) {
	for name := range keys {
		if v, ok := src.vars[name]; ok {
			e.vars[name] = v
		}
	}
}
