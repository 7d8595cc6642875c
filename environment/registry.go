package environment

import "github.com/sst-lang/sst/parser"

// UserType is a declared newtype: its field list (for coercion/shape
// checking, spec §4.3) and its method declarations (spliced into a
// Record as Function values whenever one is constructed).
type UserType struct {
	Name    string
	Fields  []parser.Field
	Methods []*parser.FuncDeclStmt
}

// Registry holds process-wide, read-mostly declarations: user types,
// keyed by name. It is shared, unmodified after program startup
// statements run, across every goroutine an "always" block spawns
// (spec §5's "type/function registry is read-mostly"). Functions
// themselves are resolved through Environment lookups (a Function
// value is bound under its own name at declaration, and again under
// its module's Env for "use"), so Registry holds only Types.
type Registry struct {
	Types map[string]*UserType
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		Types: make(map[string]*UserType),
	}
}
