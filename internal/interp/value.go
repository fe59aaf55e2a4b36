// Package interp implements C11: a tree-walking executor over the
// imperative AST, used by the REPL and the browser playground. Runtime
// values are a closed sum distinct from the arena-owned AST, so they
// outlive the compilation that produced the program.
package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/logos-lang/logos/internal/ast"
)

// Value is the runtime value sum: Int, Float, Bool, Text, Char, List,
// Struct{type_name, fields}, Nothing, Closure.
type Value interface {
	Type() string
	Inspect() string
}

type IntValue int64

func (v IntValue) Type() string    { return "Int" }
func (v IntValue) Inspect() string { return strconv.FormatInt(int64(v), 10) }

type FloatValue float64

func (v FloatValue) Type() string    { return "Float" }
func (v FloatValue) Inspect() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

type BoolValue bool

func (v BoolValue) Type() string    { return "Bool" }
func (v BoolValue) Inspect() string { return strconv.FormatBool(bool(v)) }

type TextValue string

func (v TextValue) Type() string    { return "Text" }
func (v TextValue) Inspect() string { return string(v) }

type CharValue rune

func (v CharValue) Type() string    { return "Character" }
func (v CharValue) Inspect() string { return string(rune(v)) }

type NothingValue struct{}

func (NothingValue) Type() string    { return "Nothing" }
func (NothingValue) Inspect() string { return "nothing" }

// ListValue wraps a pointer to its backing slice so Push/Pop/SetIndex
// mutate the same list every other binding of it observes, matching how
// the generated target code treats a Seq as a mutable reference type.
type ListValue struct {
	Elements *[]Value
}

func NewList(elems []Value) ListValue {
	return ListValue{Elements: &elems}
}

func (v ListValue) Type() string { return "List" }
func (v ListValue) Inspect() string {
	parts := make([]string, len(*v.Elements))
	for i, e := range *v.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// StructValue holds a value of a user-defined struct or enum variant.
// Fields is a plain map so FieldAccess/SetField observe mutation through
// every binding that shares this instance, the same aliasing an exported
// reference-type handle has in C10's FFI wrapper.
type StructValue struct {
	TypeName string
	Variant  string // set for an enum value; "" for a plain struct
	Fields   map[string]Value
}

func (v StructValue) Type() string { return v.TypeName }
func (v StructValue) Inspect() string {
	var b strings.Builder
	if v.Variant != "" {
		fmt.Fprintf(&b, "%s.%s", v.TypeName, v.Variant)
	} else {
		b.WriteString(v.TypeName)
	}
	if len(v.Fields) > 0 {
		b.WriteString("{")
		first := true
		for k, f := range v.Fields {
			if !first {
				b.WriteString(", ")
			}
			first = false
			fmt.Fprintf(&b, "%s: %s", k, f.Inspect())
		}
		b.WriteString("}")
	}
	return b.String()
}

// ClosureValue is a first-class function value produced by a Closure
// expression. Unlike a named FunctionDef call (which pushes a scope with
// only bound parameters, per §4.11's no-capture rule), a closure does
// capture the environment it was created in - that capture is the entire
// point of a closure literal, and nothing in §4.11 says otherwise.
type ClosureValue struct {
	Params []string
	Body   []ast.Stmt
	Env    *Scope
}

func (v ClosureValue) Type() string    { return "Function" }
func (v ClosureValue) Inspect() string { return "<closure>" }

func truthy(v Value) bool {
	switch b := v.(type) {
	case BoolValue:
		return bool(b)
	case NothingValue:
		return false
	default:
		return true
	}
}
