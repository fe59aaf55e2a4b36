// Package codegen implements C10: it lowers the optimized imperative AST
// into idiomatic Go source, alongside an FFI export surface and Python/
// TypeScript bindings for it, per §4.10.
package codegen

import (
	"fmt"

	"golang.org/x/tools/imports"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/discovery"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/token"
)

// LineSpan anchors one line of pre-format generated source to the
// original-source span of the top-level declaration or statement that
// produced it. goimports reformatting after emission can shift a handful
// of lines (import grouping, brace collapsing); the sourcemap's
// NearestLine search absorbs that drift instead of needing an exact
// post-format line count.
type LineSpan struct {
	Line int
	Span token.Span
}

// Output is everything codegen_program produces for one compiled program:
// the native Go source plus its binding surfaces, ready to be written to a
// project directory by the driver's compile_to_dir.
type Output struct {
	GoSource       string
	RuntimeCRDT    string // generated/runtime/crdt.go
	RuntimeHandles string // generated/runtime/handles.go
	PythonBindings string
	TSDeclarations string
	TSLoader       string
	HasFFIExports  bool
	LineSpans      []LineSpan
}

// GenerateProgram is codegen_program(stmts, type_registry, policy_registry,
// interner) from §4.10: it separates stmts into struct/enum/function
// declarations, emits each, threads async inference through function
// bodies, and appends an FFI wrapper plus bindings for every
// exported function. types/policies are accepted for signature parity with
// the upstream pipeline stage; codegen itself only needs the fully-typed
// declarations already present in stmts.
func GenerateProgram(stmts []ast.Stmt, types *discovery.TypeRegistry, policies *discovery.PolicyRegistry, in *intern.Interner) (Output, error) {
	_ = types
	_ = policies

	var structs []ast.StructDef
	var enums []ast.EnumDef
	var funcs []ast.FunctionDef
	var top []ast.Stmt
	for _, s := range stmts {
		switch n := s.(type) {
		case ast.StructDef:
			structs = append(structs, n)
		case ast.EnumDef:
			enums = append(enums, n)
		case ast.FunctionDef:
			funcs = append(funcs, n)
		default:
			top = append(top, s)
		}
	}

	async := asyncFunctions(funcs)

	p := newPrinter()
	p.line("// Code generated by logos codegen. DO NOT EDIT.")
	p.line("package main")
	p.blank()
	p.line("import (")
	p.indented(func() {
		p.line("\"fmt\"")
		p.line("\"sync\"")
		p.line("\"time\"")
		p.blank()
		p.line("\"generated/runtime\"")
	})
	p.line(")")
	p.blank()
	p.line("var replicaID = runtime.NewReplicaID()")
	p.blank()

	var lineSpans []LineSpan
	mark := func(span token.Span) {
		lineSpans = append(lineSpans, LineSpan{Line: p.lineCount(), Span: span})
	}

	for _, s := range structs {
		mark(s.Span())
		emitStruct(p, s, in)
	}
	for _, e := range enums {
		mark(e.Span())
		emitEnum(p, e, in)
	}

	hasFFI := false
	for _, f := range funcs {
		mark(f.Span())
		emitFunction(p, f, async[f.Name], in)
		if f.IsExported {
			hasFFI = true
		}
	}
	for _, f := range funcs {
		if f.IsExported {
			emitFFIWrapper(p, f, in)
		}
	}

	if len(top) > 0 {
		p.line("func main() {")
		p.indented(func() {
			for _, s := range top {
				mark(s.Span())
				emitStmt(p, s, in)
			}
		})
		p.line("}")
	}

	raw := []byte(p.String())
	formatted, err := imports.Process("generated.go", raw, nil)
	if err != nil {
		return Output{}, fmt.Errorf("codegen: formatting generated source: %w", err)
	}

	out := Output{
		GoSource:       string(formatted),
		RuntimeCRDT:    crdtRuntimeSource,
		RuntimeHandles: handleRegistrySource,
		HasFFIExports:  hasFFI,
		LineSpans:      lineSpans,
	}
	if hasFFI {
		out.PythonBindings = GeneratePythonBindings("liblogos.so", funcs, in)
		out.TSDeclarations = GenerateTSDeclarations(funcs, in)
		out.TSLoader = GenerateTSLoader("liblogos.so", funcs, in)
	}
	return out, nil
}
