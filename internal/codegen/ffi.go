package codegen

import (
	"fmt"
	"strings"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// Status codes for an exported function's C-ABI return, per §6.
const (
	StatusOk                 = 0
	StatusError               = 1
	StatusRefinementViolation = 2
	StatusNullPointer         = 3
	StatusOutOfBounds         = 4
	StatusContainsNullByte    = 5
	StatusThreadPanic         = 6
)

// handleRegistrySource is the process-wide boxed-value registry every
// compiled project's FFI layer shares: register, deref and release are its
// only operations, and each slot carries a generation counter so a handle from a
// freed slot is rejected rather than silently aliasing whatever was
// registered into that slot next - recovered from original_source/'s
// ffi.rs/marshal.rs.
const handleRegistrySource = `// Code generated by logos codegen. Process-wide FFI handle registry.
package runtime

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// NewReplicaID returns a fresh random replica identifier for this process,
// used to tag CRDT operations so concurrent increments/inserts from
// different processes never collide.
func NewReplicaID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

type handleSlot struct {
	value      any
	generation uint32
	occupied   bool
}

type HandleRegistry struct {
	mu    sync.Mutex
	slots []handleSlot
	free  []uint32
}

var Handles = &HandleRegistry{}

// Handle is the (index, generation) pair a caller holds; the generation
// must match the slot's current generation for Deref to succeed.
type Handle struct {
	ID         uint64
	Generation uint32
}

func (r *HandleRegistry) Register(v any) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.free) > 0 {
		idx := r.free[len(r.free)-1]
		r.free = r.free[:len(r.free)-1]
		r.slots[idx] = handleSlot{value: v, generation: r.slots[idx].generation + 1, occupied: true}
		return Handle{ID: uint64(idx), Generation: r.slots[idx].generation}
	}
	r.slots = append(r.slots, handleSlot{value: v, generation: 1, occupied: true})
	return Handle{ID: uint64(len(r.slots) - 1), Generation: 1}
}

func (r *HandleRegistry) Deref(h Handle) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h.ID >= uint64(len(r.slots)) {
		return nil, false
	}
	slot := r.slots[h.ID]
	if !slot.occupied || slot.generation != h.Generation {
		return nil, false
	}
	return slot.value, true
}

func (r *HandleRegistry) Release(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h.ID >= uint64(len(r.slots)) || r.slots[h.ID].generation != h.Generation {
		return
	}
	r.slots[h.ID] = handleSlot{generation: r.slots[h.ID].generation}
	r.free = append(r.free, uint32(h.ID))
}

var lastErrorMu sync.Mutex
var lastError string

func SetLastError(msg string) {
	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	lastError = msg
}

func GetLastError() string {
	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	return lastError
}

func ClearLastError() { SetLastError("") }
`

// isReferenceType reports whether t crosses the FFI boundary as an opaque
// handle (a struct/enum/generic value) rather than a C-ABI value type
// (a primitive or text pointer).
func isReferenceType(t ast.TypeExpr) bool {
	switch n := t.(type) {
	case ast.Primitive:
		return false
	case ast.Refinement:
		return isReferenceType(n.BaseType)
	default:
		return true
	}
}

// basePrimitive unwraps a Refinement to the Primitive it narrows, if any.
func basePrimitive(t ast.TypeExpr) (ast.Primitive, bool) {
	if ref, ok := t.(ast.Refinement); ok {
		return basePrimitive(ref.BaseType)
	}
	p, ok := t.(ast.Primitive)
	return p, ok
}

func isTextType(t ast.TypeExpr) bool {
	p, ok := basePrimitive(t)
	return ok && (p.Name == "String" || p.Name == "Text")
}

// emitFFIWrapper emits the extern-"C" boundary function for f, named
// logos_<name>: it classifies parameters, null-checks text pointers,
// evaluates refinement guards, wraps the call in a panic boundary that
// records the last error, and marshals the return per §4.10/§6.
func emitFFIWrapper(p *printer, f ast.FunctionDef, in *intern.Interner) {
	name := in.Resolve(f.Name)
	cParams := make([]string, len(f.Params))
	innerArgs := make([]string, len(f.Params))
	var guards []string
	for i, param := range f.Params {
		pname := in.Resolve(param.Name)
		if isReferenceType(param.Type) {
			cParams[i] = fmt.Sprintf("%sHandle uint64, %sGen uint32", pname, pname)
			innerArgs[i] = pname
		} else if isTextType(param.Type) {
			cParams[i] = pname + "Ptr *C.char"
			innerArgs[i] = pname
		} else {
			cParams[i] = fmt.Sprintf("%s %s", pname, goType(param.Type, in))
			innerArgs[i] = pname
		}
		if ref, ok := param.Type.(ast.Refinement); ok {
			guards = append(guards, fmt.Sprintf("if !(%s) { return %d }", exprGo(refinementCheck(ref, in), in), StatusRefinementViolation))
		}
	}

	refKind := isReferenceType(f.ReturnType)
	p.line(fmt.Sprintf("//export logos_%s", name))
	retDecl := "int32"
	p.line(fmt.Sprintf("func logos_%s(%s, out *uint64, outGen *uint32) %s {", name, strings.Join(cParams, ", "), retDecl))
	p.indented(func() {
		for _, param := range f.Params {
			if isTextType(param.Type) {
				pname := in.Resolve(param.Name)
				p.line(fmt.Sprintf("if %sPtr == nil { return %d }", pname, StatusNullPointer))
				p.line(fmt.Sprintf("%s := C.GoString(%sPtr)", pname, pname))
			} else if isReferenceType(param.Type) {
				pname := in.Resolve(param.Name)
				p.line(fmt.Sprintf("%sVal, ok := runtime.Handles.Deref(runtime.Handle{ID: %sHandle, Generation: %sGen})", pname, pname, pname))
				p.line(fmt.Sprintf("if !ok { return %d }", StatusNullPointer))
				p.line(fmt.Sprintf("%s := %sVal.(%s)", pname, pname, goType(param.Type, in)))
			}
		}
		for _, g := range guards {
			p.line(g)
		}
		p.line("status := int32(" + fmt.Sprint(StatusOk) + ")")
		p.line("func() {")
		p.indented(func() {
			p.line("defer func() {")
			p.indented(func() {
				p.line("if r := recover(); r != nil {")
				p.indented(func() {
					p.line("runtime.SetLastError(fmt.Sprint(r))")
					p.line(fmt.Sprintf("status = %d", StatusThreadPanic))
				})
				p.line("}")
			})
			p.line("}()")
			if f.ReturnType == nil {
				p.line(fmt.Sprintf("%s(%s)", capitalize(name), strings.Join(innerArgs, ", ")))
			} else {
				p.line(fmt.Sprintf("result := %s(%s)", capitalize(name), strings.Join(innerArgs, ", ")))
				if refKind {
					p.line("h := runtime.Handles.Register(result)")
					p.line("*out = h.ID")
					p.line("*outGen = h.Generation")
				}
			}
		})
		p.line("}()")
		p.line("return status")
	})
	p.line("}")
	p.blank()
}

// refinementCheck rebuilds the boolean guard expression for a refinement
// type's predicate as a plain Expr so exprGo can render it - the predicate
// is a LogicExpr over the bound variable; the FFI boundary only ever needs
// the atomic relations/predicates a refinement actually uses, so this walks
// the small subset that appears in practice (comparisons over the bound
// variable) rather than the full FOL grammar.
func refinementCheck(r ast.Refinement, in *intern.Interner) ast.Expr {
	return refinementLogicToExpr(r.Predicate, r.Variable)
}

func refinementLogicToExpr(l ast.LogicExpr, v intern.Symbol) ast.Expr {
	switch n := l.(type) {
	case ast.Relation:
		return ast.ExprBinaryOp{Op: "<=", Left: termToExpr(n.Left, v), Right: termToExpr(n.Right, v)}
	case ast.Identity:
		return ast.ExprBinaryOp{Op: "==", Left: termToExpr(n.Left, v), Right: termToExpr(n.Right, v)}
	case ast.BinaryOp:
		op := "&&"
		if n.Op == ast.OpOr {
			op = "||"
		}
		return ast.ExprBinaryOp{Op: op, Left: refinementLogicToExpr(n.Left, v), Right: refinementLogicToExpr(n.Right, v)}
	default:
		return ast.Literal{Kind: ast.LitBool, Bool: true}
	}
}

func termToExpr(t ast.Term, v intern.Symbol) ast.Expr {
	switch n := t.(type) {
	case ast.Variable:
		return ast.Identifier{Name: n.Name}
	case ast.Value:
		if n.Kind == ast.NumberInt {
			return ast.Literal{Kind: ast.LitInt, Num: n.Num}
		}
		return ast.Literal{Kind: ast.LitFloat, Num: n.Num}
	default:
		return ast.Identifier{Name: v}
	}
}
