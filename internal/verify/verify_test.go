package verify

import (
	"testing"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/intern"
)

func TestAssertOverUninterpretedPredicateUnprovedNotReported(t *testing.T) {
	in := intern.New()
	x := in.Intern("x")
	positive := in.Intern("positive")

	body := []ast.Stmt{
		ast.Assert{Cond: ast.Predicate{
			Name: positive,
			Args: []ast.Term{ast.Variable{Name: x}},
		}},
	}

	bag := New(in).Check(body)
	if len(bag.Items()) != 0 {
		t.Fatalf("an uninterpreted predicate cannot be evaluated; want 0 items (unproved is not reported as false), got %v", bag.Items())
	}
}

func TestAssertProvenFalseReported(t *testing.T) {
	in := intern.New()

	body := []ast.Stmt{
		ast.Assert{Cond: ast.Identity{
			Left:  ast.Value{Kind: ast.NumberInt, Num: 1},
			Right: ast.Value{Kind: ast.NumberInt, Num: 2},
		}},
	}

	bag := New(in).Check(body)
	if len(bag.Items()) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(bag.Items()))
	}
	if bag.Items()[0].Kind != diagnostics.VerifyAssertUnproved {
		t.Errorf("Kind = %v, want VerifyAssertUnproved", bag.Items()[0].Kind)
	}
}

func TestTerminationProvenDecreasing(t *testing.T) {
	in := intern.New()
	n := in.Intern("n")

	body := []ast.Stmt{
		ast.Let{Var: n, Value: ast.Literal{Kind: ast.LitInt, Num: 3}},
		ast.While{
			Cond:       ast.Literal{Kind: ast.LitBool, Bool: true},
			Decreasing: ast.Identifier{Name: n},
			Body: []ast.Stmt{
				ast.Set{Var: n, Value: ast.ExprBinaryOp{
					Op:    "-",
					Left:  ast.Identifier{Name: n},
					Right: ast.Literal{Kind: ast.LitInt, Num: 1},
				}},
			},
		},
	}

	bag := New(in).Check(body)
	if len(bag.Items()) != 0 {
		t.Fatalf("len(items) = %d, want 0 (n-1 < n and, starting at 3, stays >= 0): %v", len(bag.Items()), bag.Items())
	}
}

func TestTerminationUnprovedWhenNonNegativeFails(t *testing.T) {
	in := intern.New()
	n := in.Intern("n")

	body := []ast.Stmt{
		ast.Let{Var: n, Value: ast.Literal{Kind: ast.LitInt, Num: 0}},
		ast.While{
			Cond:       ast.Literal{Kind: ast.LitBool, Bool: true},
			Decreasing: ast.Identifier{Name: n},
			Body: []ast.Stmt{
				ast.Set{Var: n, Value: ast.ExprBinaryOp{
					Op:    "-",
					Left:  ast.Identifier{Name: n},
					Right: ast.Literal{Kind: ast.LitInt, Num: 1},
				}},
			},
		},
	}

	bag := New(in).Check(body)
	if len(bag.Items()) != 1 {
		t.Fatalf("len(items) = %d, want 1 (n goes to -1, violating v' >= 0): %v", len(bag.Items()), bag.Items())
	}
}
