package ownership

import (
	"testing"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/intern"
)

func TestUseAfterGive(t *testing.T) {
	in := intern.New()
	x := in.Intern("x")
	y := in.Intern("y")

	body := []ast.Stmt{
		ast.Let{Var: x, Value: ast.Literal{Kind: ast.LitInt, Num: 1}},
		ast.Give{Value: ast.Identifier{Name: x}},
		ast.Let{Var: y, Value: ast.Identifier{Name: x}},
	}

	bag := New(in).Analyze(body)
	if len(bag.Items()) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(bag.Items()))
	}
	if bag.Items()[0].Kind != diagnostics.OwnershipUseAfterMove {
		t.Errorf("Kind = %v, want OwnershipUseAfterMove", bag.Items()[0].Kind)
	}
}

func TestRebindAfterGiveClearsMove(t *testing.T) {
	in := intern.New()
	x := in.Intern("x")

	body := []ast.Stmt{
		ast.Let{Var: x, Value: ast.Literal{Kind: ast.LitInt, Num: 1}},
		ast.Give{Value: ast.Identifier{Name: x}},
		ast.Let{Var: x, Value: ast.Literal{Kind: ast.LitInt, Num: 2}},
		ast.Show{Value: ast.Identifier{Name: x}},
	}

	bag := New(in).Analyze(body)
	if len(bag.Items()) != 0 {
		t.Fatalf("len(items) = %d, want 0: %v", len(bag.Items()), bag.Items())
	}
}

func TestBorrowDoesNotMove(t *testing.T) {
	in := intern.New()
	x := in.Intern("x")

	body := []ast.Stmt{
		ast.Let{Var: x, Value: ast.Literal{Kind: ast.LitInt, Num: 1}},
		ast.Show{Value: ast.Identifier{Name: x}},
		ast.Show{Value: ast.Identifier{Name: x}},
	}

	bag := New(in).Analyze(body)
	if len(bag.Items()) != 0 {
		t.Fatalf("len(items) = %d, want 0: %v", len(bag.Items()), bag.Items())
	}
}
