/*
File    : sst/values/values.go

Package values defines the runtime value model for SST: the
discriminated union described in spec §3. Each concrete type
implements Value; there is no open extension point, matching the
teacher's own "sealed" GoMixObject union
(_examples/akashmaji946-go-mix/objects/objects.go) adapted to the
value set SST actually needs.
*/
package values

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the runtime kind of a Value.
type Type string

const (
	IntType      Type = "int"
	FloatType    Type = "float"
	BoolType     Type = "bool"
	StringType   Type = "string"
	ListType     Type = "list"
	RecordType   Type = "record"
	FunctionType Type = "func"
	ModuleType   Type = "module"
	TypeDescType Type = "type"
	NilType      Type = "nil"
)

// Value is the interface every SST runtime value implements.
type Value interface {
	Type() Type
	String() string
}

// Int is a 64-bit signed integer value.
type Int struct{ Value int64 }

func (i *Int) Type() Type     { return IntType }
func (i *Int) String() string { return strconv.FormatInt(i.Value, 10) }

// Float is a 64-bit floating point value.
type Float struct{ Value float64 }

func (f *Float) Type() Type { return FloatType }
func (f *Float) String() string {
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}

// Bool is a boolean value.
type Bool struct{ Value bool }

func (b *Bool) Type() Type     { return BoolType }
func (b *Bool) String() string { return strconv.FormatBool(b.Value) }

// Str is a string value.
type Str struct{ Value string }

func (s *Str) Type() Type     { return StringType }
func (s *Str) String() string { return s.Value }

// List is an ordered, mutable sequence of values. It is shared by
// reference: assigning a List to a new variable does not copy its
// backing slice, matching the reference-counted-sharing model in
// spec §1 ("Non-goals: a garbage collector beyond reference-counted
// sharing").
type List struct{ Elements []Value }

func (l *List) Type() Type { return ListType }
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Record is an ordered, named-field aggregate with bound methods
// (spec §3 "Record"). Order preserves the field-then-method
// declaration order at construction time and lists both data fields
// and methods, matching the invariant in spec §3 that a
// Record's key set is fields ∪ methods, with data and method entries
// distinguishable by the Value's dynamic type.
type Record struct {
	TypeName string
	Fields   map[string]Value
	Order    []string
}

// NewRecord creates an empty Record of the given declared type.
func NewRecord(typeName string) *Record {
	return &Record{TypeName: typeName, Fields: make(map[string]Value)}
}

// Set binds name to v, recording first-insertion order.
func (r *Record) Set(name string, v Value) {
	if _, exists := r.Fields[name]; !exists {
		r.Order = append(r.Order, name)
	}
	r.Fields[name] = v
}

// Keys returns the Record's field/method names in declaration order.
func (r *Record) Keys() []string {
	return append([]string(nil), r.Order...)
}

func (r *Record) Type() Type { return RecordType }
func (r *Record) String() string {
	parts := make([]string, 0, len(r.Order))
	for _, k := range r.Order {
		v := r.Fields[k]
		if v.Type() == FunctionType {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", k, v.String()))
	}
	return r.TypeName + "{" + strings.Join(parts, ", ") + "}"
}

// Nil is the unit value returned by statements and effect-only calls.
type Nil struct{}

func (n *Nil) Type() Type     { return NilType }
func (n *Nil) String() string { return "nil" }

// Truthy implements the truthiness coercion used by "bool", by
// if/while conditions, and by short-circuiting and/or (spec §4.3,
// §4.6).
func Truthy(v Value) bool {
	switch vv := v.(type) {
	case *Int:
		return vv.Value != 0
	case *Float:
		return vv.Value != 0
	case *Bool:
		return vv.Value
	case *Str:
		return vv.Value != ""
	case *List:
		return len(vv.Elements) != 0
	case *Record:
		return true
	case *Nil:
		return false
	default:
		return true
	}
}
