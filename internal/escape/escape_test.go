package escape

import (
	"testing"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/intern"
)

func TestReturnEscapeAcrossZone(t *testing.T) {
	in := intern.New()
	x := in.Intern("x")

	body := []ast.Stmt{
		ast.Zone{Name: in.Intern("pool"), Body: []ast.Stmt{
			ast.Let{Var: x, Value: ast.Literal{Kind: ast.LitInt, Num: 1}},
		}},
		ast.Return{Value: ast.Identifier{Name: x}},
	}

	bag := New(in).Analyze(body)
	if len(bag.Items()) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(bag.Items()))
	}
	if bag.Items()[0].Kind != diagnostics.EscapeReturn {
		t.Errorf("Kind = %v, want EscapeReturn", bag.Items()[0].Kind)
	}
}

func TestSetEscapeAcrossZone(t *testing.T) {
	in := intern.New()
	x := in.Intern("x")
	y := in.Intern("y")

	body := []ast.Stmt{
		ast.Let{Var: y, Value: ast.Literal{Kind: ast.LitInt, Num: 0}},
		ast.Zone{Name: in.Intern("pool"), Body: []ast.Stmt{
			ast.Let{Var: x, Value: ast.Literal{Kind: ast.LitInt, Num: 1}},
			ast.Set{Var: y, Value: ast.Identifier{Name: x}},
		}},
	}

	bag := New(in).Analyze(body)
	if len(bag.Items()) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(bag.Items()))
	}
	if bag.Items()[0].Kind != diagnostics.EscapeAssignment {
		t.Errorf("Kind = %v, want EscapeAssignment", bag.Items()[0].Kind)
	}
}

func TestNoEscapeWithinSameZone(t *testing.T) {
	in := intern.New()
	x := in.Intern("x")
	y := in.Intern("y")

	body := []ast.Stmt{
		ast.Zone{Name: in.Intern("pool"), Body: []ast.Stmt{
			ast.Let{Var: x, Value: ast.Literal{Kind: ast.LitInt, Num: 1}},
			ast.Let{Var: y, Value: ast.Literal{Kind: ast.LitInt, Num: 2}},
			ast.Set{Var: y, Value: ast.Identifier{Name: x}},
		}},
	}

	bag := New(in).Analyze(body)
	if len(bag.Items()) != 0 {
		t.Fatalf("len(items) = %d, want 0: %v", len(bag.Items()), bag.Items())
	}
}
