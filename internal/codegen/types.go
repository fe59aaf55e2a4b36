package codegen

import (
	"fmt"
	"strings"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// goType renders a TypeExpr as a Go type string. Persistent wraps a type as
// one of the CRDT catalog types (crdtTypeFor decides which), so a
// Persistent field's Go type is the CRDT struct's name, not its inner type.
func goType(t ast.TypeExpr, in *intern.Interner) string {
	switch n := t.(type) {
	case nil:
		return "any"
	case ast.Primitive:
		switch n.Name {
		case "Int":
			return "int64"
		case "Nat":
			return "uint64"
		case "Float", "Real":
			return "float64"
		case "String", "Text":
			return "string"
		case "Bool":
			return "bool"
		case "Character":
			return "rune"
		case "Nothing":
			return "struct{}"
		default:
			return "any"
		}
	case ast.Named:
		return capitalize(in.Resolve(n.Name))
	case ast.Generic:
		name := in.Resolve(n.Name)
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = goType(a, in)
		}
		switch name {
		case "List", "Seq":
			return "[]" + args[0]
		case "Map":
			return fmt.Sprintf("map[%s]%s", args[0], args[1])
		case "Option":
			return "*" + args[0]
		case "Result":
			return fmt.Sprintf("Result[%s, %s]", args[0], args[1])
		default:
			return capitalize(name) + "[" + strings.Join(args, ", ") + "]"
		}
	case ast.FunctionType:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = goType(p, in)
		}
		return fmt.Sprintf("func(%s) %s", strings.Join(params, ", "), goType(n.ReturnType, in))
	case ast.Refinement:
		return goType(n.BaseType, in)
	case ast.Persistent:
		return crdtTypeFor(n.Inner, in)
	default:
		return "any"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// emitStruct writes a Go struct type for a StructDef. When any field is
// Persistent, a Merge method is emitted alongside that calls each field's
// own CRDT Merge, per §4.10's "shared types get a merge implementation
// that calls per-field merges."
func emitStruct(p *printer, s ast.StructDef, in *intern.Interner) {
	name := capitalize(in.Resolve(s.Name))
	p.line(fmt.Sprintf("type %s struct {", name))
	p.indented(func() {
		for _, f := range s.Fields {
			p.line(fmt.Sprintf("%s %s", capitalize(in.Resolve(f.Name)), goType(f.Type, in)))
		}
	})
	p.line("}")
	p.blank()

	hasShared := false
	for _, f := range s.Fields {
		if _, ok := f.Type.(ast.Persistent); ok {
			hasShared = true
		}
	}
	if hasShared {
		p.line(fmt.Sprintf("func (v %s) Merge(other %s) %s {", name, name, name))
		p.indented(func() {
			p.line("out := v")
			for _, f := range s.Fields {
				fname := capitalize(in.Resolve(f.Name))
				if _, ok := f.Type.(ast.Persistent); ok {
					p.line(fmt.Sprintf("out.%s = v.%s.Merge(other.%s)", fname, fname, fname))
				}
			}
			p.line("return out")
		})
		p.line("}")
		p.blank()
	}
}

// emitEnum writes a Go sum type for an EnumDef: an interface marker plus one
// struct per variant, and a wrapping indirection (pointer) for any variant
// field whose type names the enclosing enum, breaking the otherwise
// infinite size a directly-recursive variant would have.
func emitEnum(p *printer, e ast.EnumDef, in *intern.Interner) {
	name := capitalize(in.Resolve(e.Name))
	p.line(fmt.Sprintf("type %s interface{ is%s() }", name, name))
	p.blank()
	for _, v := range e.Variants {
		vname := name + capitalize(in.Resolve(v.Name))
		p.line(fmt.Sprintf("type %s struct {", vname))
		p.indented(func() {
			for _, f := range v.Fields {
				ft := f.Type
				typ := goType(ft, in)
				if named, ok := ft.(ast.Named); ok && in.Resolve(named.Name) == in.Resolve(e.Name) {
					typ = "*" + typ
				}
				p.line(fmt.Sprintf("%s %s", capitalize(in.Resolve(f.Name)), typ))
			}
		})
		p.line("}")
		p.blank()
		p.line(fmt.Sprintf("func (%s) is%s() {}", vname, name))
		p.blank()
	}
}
