package codegen

import (
	"strings"
	"testing"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

func TestExprGoRendersArithmetic(t *testing.T) {
	in := intern.New()
	x := in.Intern("x")
	e := ast.ExprBinaryOp{
		Op:   "+",
		Left: ast.Identifier{Name: x},
		Right: ast.Literal{Kind: ast.LitInt, Num: 1},
	}
	got := exprGo(e, in)
	if got != "(x + 1)" {
		t.Fatalf("exprGo = %q, want \"(x + 1)\"", got)
	}
}

func TestEmitStructGeneratesMergeWhenPersistentFieldPresent(t *testing.T) {
	in := intern.New()
	s := ast.StructDef{
		Name: in.Intern("counter"),
		Fields: []ast.FieldDef{
			{Name: in.Intern("hits"), Type: ast.Persistent{Inner: ast.Primitive{Name: "Nat"}}},
		},
	}
	p := newPrinter()
	emitStruct(p, s, in)
	out := p.String()
	if !strings.Contains(out, "type Counter struct {") {
		t.Fatalf("missing struct decl: %s", out)
	}
	if !strings.Contains(out, "func (v Counter) Merge(other Counter) Counter {") {
		t.Fatalf("missing Merge method for a Persistent-field struct: %s", out)
	}
}

func TestEmitStructOmitsMergeWithoutPersistentFields(t *testing.T) {
	in := intern.New()
	s := ast.StructDef{
		Name: in.Intern("point"),
		Fields: []ast.FieldDef{
			{Name: in.Intern("x"), Type: ast.Primitive{Name: "Int"}},
		},
	}
	p := newPrinter()
	emitStruct(p, s, in)
	if strings.Contains(p.String(), "Merge") {
		t.Fatalf("unexpected Merge method on a struct with no Persistent fields: %s", p.String())
	}
}

func TestCrdtTypeForMapsNatToGCounter(t *testing.T) {
	in := intern.New()
	got := crdtTypeFor(ast.Primitive{Name: "Nat"}, in)
	if got != "GCounter" {
		t.Fatalf("crdtTypeFor(Nat) = %q, want GCounter", got)
	}
}

func TestCrdtTypeForMapsListToRGA(t *testing.T) {
	in := intern.New()
	got := crdtTypeFor(ast.Generic{Name: in.Intern("List"), Args: []ast.TypeExpr{ast.Primitive{Name: "Int"}}}, in)
	if got != "RGA[int64]" {
		t.Fatalf("crdtTypeFor(List[Int]) = %q, want RGA[int64]", got)
	}
}

func TestTryForRangeDetectsCountingLoop(t *testing.T) {
	in := intern.New()
	i := in.Intern("i")
	stmts := []ast.Stmt{
		ast.Let{Var: i, Value: ast.Literal{Kind: ast.LitInt, Num: 0}},
		ast.While{
			Cond: ast.ExprBinaryOp{Op: "<=", Left: ast.Identifier{Name: i}, Right: ast.Literal{Kind: ast.LitInt, Num: 9}},
			Body: []ast.Stmt{
				ast.Show{Value: ast.Identifier{Name: i}},
				ast.Set{Var: i, Value: ast.ExprBinaryOp{Op: "+", Left: ast.Identifier{Name: i}, Right: ast.Literal{Kind: ast.LitInt, Num: 1}}},
			},
		},
	}
	m, ok := tryForRange(stmts, 0, in)
	if !ok {
		t.Fatalf("tryForRange did not match a counting for-loop shape")
	}
	if m.consumed != 2 {
		t.Fatalf("consumed = %d, want 2 (the Let and the While)", m.consumed)
	}
	if !strings.Contains(m.code, "for i :=") {
		t.Fatalf("emitted code = %q, want a Go for-loop", m.code)
	}
}

func TestEmitFunctionAnnotatesAsync(t *testing.T) {
	in := intern.New()
	f := ast.FunctionDef{
		Name: in.Intern("pause"),
		Body: []ast.Stmt{ast.Sleep{Duration: ast.Literal{Kind: ast.LitInt, Num: 1}}},
	}
	p := newPrinter()
	emitFunction(p, f, true, in)
	if !strings.Contains(p.String(), "async: suspends at an await point") {
		t.Fatalf("missing async annotation: %s", p.String())
	}
}

func TestAsyncFunctionsPropagatesThroughCallGraph(t *testing.T) {
	in := intern.New()
	sleeper := in.Intern("sleeper")
	caller := in.Intern("caller")
	funcs := []ast.FunctionDef{
		{Name: sleeper, Body: []ast.Stmt{ast.Sleep{Duration: ast.Literal{Kind: ast.LitInt, Num: 1}}}},
		{Name: caller, Body: []ast.Stmt{
			ast.Let{Var: in.Intern("r"), Value: ast.Call{Callee: sleeper}},
		}},
	}
	async := asyncFunctions(funcs)
	if !async[sleeper] || !async[caller] {
		t.Fatalf("async = %#v, want both sleeper and its caller marked async", async)
	}
}

func TestMutableBindingsCollectsSetIndexAndPushTargets(t *testing.T) {
	in := intern.New()
	xs := in.Intern("xs")
	n := in.Intern("n")
	body := []ast.Stmt{
		ast.Let{Var: xs, Value: ast.List{}},
		ast.Push{Target: ast.Identifier{Name: xs}, Value: ast.Literal{Kind: ast.LitInt, Num: 1}},
		ast.Let{Var: n, Value: ast.Literal{Kind: ast.LitInt, Num: 0}},
	}
	mut := mutableBindings(body)
	if !mut[xs] {
		t.Fatalf("mutableBindings = %#v, want xs marked mutable (Push target)", mut)
	}
	if mut[n] {
		t.Fatalf("mutableBindings = %#v, want n excluded (never reassigned)", mut)
	}
}

func TestIsReferenceTypeDistinguishesPrimitivesFromStructs(t *testing.T) {
	in := intern.New()
	if isReferenceType(ast.Primitive{Name: "Int"}) {
		t.Fatalf("Int classified as a reference type, want value type")
	}
	if !isReferenceType(ast.Named{Name: in.Intern("Farmer")}) {
		t.Fatalf("Named(Farmer) classified as a value type, want reference type")
	}
}

func TestIsTextTypeUnwrapsRefinement(t *testing.T) {
	refined := ast.Refinement{BaseType: ast.Primitive{Name: "Text"}}
	if !isTextType(refined) {
		t.Fatalf("isTextType(Refinement over Text) = false, want true")
	}
}

func TestGeneratePythonBindingsRaisesOnRefinementViolation(t *testing.T) {
	in := intern.New()
	f := ast.FunctionDef{
		Name:       in.Intern("withdraw"),
		IsExported: true,
		Params: []ast.Param{
			{Name: in.Intern("amount"), Type: ast.Primitive{Name: "Int"}},
		},
	}
	out := GeneratePythonBindings("liblogos.so", []ast.FunctionDef{f}, in)
	if !strings.Contains(out, "LogosRefinementError") {
		t.Fatalf("python bindings missing LogosRefinementError: %s", out)
	}
	if !strings.Contains(out, "def withdraw(self, amount):") {
		t.Fatalf("python bindings missing withdraw method: %s", out)
	}
}

func TestGenerateTSDeclarationsEmitsOpaqueHandleForReferenceParam(t *testing.T) {
	in := intern.New()
	farmer := in.Intern("Farmer")
	f := ast.FunctionDef{
		Name:       in.Intern("rename"),
		IsExported: true,
		Params: []ast.Param{
			{Name: in.Intern("f"), Type: ast.Named{Name: farmer}},
		},
	}
	out := GenerateTSDeclarations([]ast.FunctionDef{f}, in)
	if !strings.Contains(out, "FarmerHandle") {
		t.Fatalf("TS declarations missing FarmerHandle class: %s", out)
	}
	if !strings.Contains(out, "rename(f: FarmerHandle): void;") {
		t.Fatalf("TS declarations missing rename signature: %s", out)
	}
}
