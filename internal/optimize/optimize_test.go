package optimize

import (
	"testing"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

func TestFoldNestedIntegerArithmetic(t *testing.T) {
	expr := ast.ExprBinaryOp{
		Op:   "+",
		Left: ast.Literal{Kind: ast.LitInt, Num: 2},
		Right: ast.ExprBinaryOp{
			Op:    "*",
			Left:  ast.Literal{Kind: ast.LitInt, Num: 3},
			Right: ast.Literal{Kind: ast.LitInt, Num: 4},
		},
	}
	got := foldExpr(expr)
	lit, ok := got.(ast.Literal)
	if !ok || lit.Kind != ast.LitInt || lit.Num != 14 {
		t.Fatalf("foldExpr = %#v, want Literal{Int, 14}", got)
	}
}

func TestFoldDivisionByZeroLeftSymbolic(t *testing.T) {
	expr := ast.ExprBinaryOp{
		Op:    "/",
		Left:  ast.Literal{Kind: ast.LitInt, Num: 5},
		Right: ast.Literal{Kind: ast.LitInt, Num: 0},
	}
	got := foldExpr(expr)
	if _, ok := got.(ast.Literal); ok {
		t.Fatalf("division by zero folded to a literal, want it left symbolic: %#v", got)
	}
}

func TestPropagateCascadesThroughLet(t *testing.T) {
	in := intern.New()
	x := in.Intern("x")
	y := in.Intern("y")

	stmts := []ast.Stmt{
		ast.Let{Var: x, Value: ast.Literal{Kind: ast.LitInt, Num: 1}},
		ast.Let{Var: y, Value: ast.ExprBinaryOp{
			Op:    "+",
			Left:  ast.Identifier{Name: x},
			Right: ast.Literal{Kind: ast.LitInt, Num: 1},
		}},
	}

	out := PropagateStmts(stmts, Env{})
	let := out[1].(ast.Let)
	lit, ok := let.Value.(ast.Literal)
	if !ok || lit.Kind != ast.LitInt || lit.Num != 2 {
		t.Fatalf("y's value = %#v, want Literal{Int, 2}", let.Value)
	}
}

func TestPropagateExcludesSetTargets(t *testing.T) {
	in := intern.New()
	n := in.Intern("n")

	stmts := []ast.Stmt{
		ast.Let{Var: n, Value: ast.Literal{Kind: ast.LitInt, Num: 1}},
		ast.Set{Var: n, Value: ast.Literal{Kind: ast.LitInt, Num: 2}},
		ast.Show{Value: ast.Identifier{Name: n}},
	}

	out := PropagateStmts(stmts, Env{})
	show := out[2].(ast.Show)
	if _, ok := show.Value.(ast.Literal); ok {
		t.Fatalf("n is reassigned by Set elsewhere, want its Let-site value never propagated: %#v", show.Value)
	}
}

func TestPropagateDoesNotSubstituteTextLiterals(t *testing.T) {
	in := intern.New()
	s := in.Intern("s")

	stmts := []ast.Stmt{
		ast.Let{Var: s, Value: ast.Literal{Kind: ast.LitString, Str: "hi"}},
		ast.Show{Value: ast.Identifier{Name: s}},
	}

	out := PropagateStmts(stmts, Env{})
	show := out[1].(ast.Show)
	if _, ok := show.Value.(ast.Identifier); !ok {
		t.Fatalf("Show's value = %#v, want the Identifier left unsubstituted (Text is not a Copy type)", show.Value)
	}
}

func TestPropagateLeavesIndexUnsubstituted(t *testing.T) {
	in := intern.New()
	i := in.Intern("i")
	xs := in.Intern("xs")

	stmts := []ast.Stmt{
		ast.Let{Var: i, Value: ast.Literal{Kind: ast.LitInt, Num: 0}},
		ast.Show{Value: ast.Index{
			Target: ast.Identifier{Name: xs},
			Key:    ast.Identifier{Name: i},
		}},
	}

	out := PropagateStmts(stmts, Env{})
	show := out[1].(ast.Show)
	idx, ok := show.Value.(ast.Index)
	if !ok {
		t.Fatalf("Show's value = %#v, want an Index", show.Value)
	}
	if _, ok := idx.Key.(ast.Identifier); !ok {
		t.Fatalf("Index.Key = %#v, want the Identifier left alone to preserve codegen's pattern shape", idx.Key)
	}
}

func TestEliminateDeadCodePrunesIfFalse(t *testing.T) {
	in := intern.New()
	x := in.Intern("x")

	stmts := []ast.Stmt{
		ast.If{
			Cond: ast.Literal{Kind: ast.LitBool, Bool: false},
			Then: []ast.Stmt{ast.Let{Var: x, Value: ast.Literal{Kind: ast.LitInt, Num: 1}}},
			Else: []ast.Stmt{ast.Let{Var: x, Value: ast.Literal{Kind: ast.LitInt, Num: 2}}},
		},
	}

	out := EliminateDeadCode(stmts)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1 (the else-branch survives)", len(out))
	}
	if out[0].(ast.Let).Value.(ast.Literal).Num != 2 {
		t.Fatalf("surviving Let's value = %#v, want 2", out[0])
	}
}

func TestEliminateDeadCodeTruncatesAfterReturn(t *testing.T) {
	in := intern.New()
	x := in.Intern("x")

	stmts := []ast.Stmt{
		ast.Return{Value: ast.Literal{Kind: ast.LitInt, Num: 1}},
		ast.Let{Var: x, Value: ast.Literal{Kind: ast.LitInt, Num: 2}},
	}

	out := EliminateDeadCode(stmts)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1 (the Let after an unconditional Return is unreachable)", len(out))
	}
}

func TestEliminateDeadCodeDropsWhileFalse(t *testing.T) {
	stmts := []ast.Stmt{
		ast.While{
			Cond: ast.Literal{Kind: ast.LitBool, Bool: false},
			Body: []ast.Stmt{ast.Show{Value: ast.Literal{Kind: ast.LitInt, Num: 1}}},
		},
	}

	out := EliminateDeadCode(stmts)
	if len(out) != 0 {
		t.Fatalf("len(out) = %d, want 0 (While false never runs)", len(out))
	}
}
