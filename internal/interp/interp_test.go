package interp

import (
	"strings"
	"testing"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

func TestShowEmitsInspectedValue(t *testing.T) {
	in := intern.New()
	interp := New(in, strings.NewReader(""))

	err := interp.Run([]ast.Stmt{
		ast.Show{Value: ast.Literal{Kind: ast.LitString, Str: "hi"}},
	})
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if got := interp.Output(); len(got) != 1 || got[0] != "hi" {
		t.Fatalf("Output() = %#v, want [\"hi\"]", got)
	}
}

func TestArithmeticAndComparison(t *testing.T) {
	in := intern.New()
	interp := New(in, strings.NewReader(""))
	x := in.Intern("x")

	err := interp.Run([]ast.Stmt{
		ast.Let{Var: x, Value: ast.ExprBinaryOp{
			Op:    "+",
			Left:  ast.Literal{Kind: ast.LitInt, Num: 2},
			Right: ast.Literal{Kind: ast.LitInt, Num: 3},
		}},
		ast.Show{Value: ast.ExprBinaryOp{
			Op:    ">",
			Left:  ast.Identifier{Name: x},
			Right: ast.Literal{Kind: ast.LitInt, Num: 4},
		}},
	})
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if got := interp.Output(); len(got) != 1 || got[0] != "true" {
		t.Fatalf("Output() = %#v, want [\"true\"] (2+3=5 > 4)", got)
	}
}

func TestRepeatAccumulatesOverAList(t *testing.T) {
	in := intern.New()
	interp := New(in, strings.NewReader(""))
	total, item := in.Intern("total"), in.Intern("item")

	err := interp.Run([]ast.Stmt{
		ast.Let{Var: total, Value: ast.Literal{Kind: ast.LitInt, Num: 0}, Mutable: true},
		ast.Repeat{
			Pattern: item,
			Iterable: ast.List{Elements: []ast.Expr{
				ast.Literal{Kind: ast.LitInt, Num: 1},
				ast.Literal{Kind: ast.LitInt, Num: 2},
				ast.Literal{Kind: ast.LitInt, Num: 3},
			}},
			Body: []ast.Stmt{
				ast.Set{Var: total, Value: ast.ExprBinaryOp{
					Op:    "+",
					Left:  ast.Identifier{Name: total},
					Right: ast.Identifier{Name: item},
				}},
			},
		},
		ast.Show{Value: ast.Identifier{Name: total}},
	})
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if got := interp.Output(); len(got) != 1 || got[0] != "6" {
		t.Fatalf("Output() = %#v, want [\"6\"]", got)
	}
}

func TestFunctionCallPushesParameterOnlyScope(t *testing.T) {
	in := intern.New()
	interp := New(in, strings.NewReader(""))
	outer, greet, name := in.Intern("outer"), in.Intern("greet"), in.Intern("name")

	err := interp.Run([]ast.Stmt{
		ast.Let{Var: outer, Value: ast.Literal{Kind: ast.LitString, Str: "should not leak in"}},
		ast.FunctionDef{
			Name:   greet,
			Params: []ast.Param{{Name: name}},
			Body: []ast.Stmt{
				ast.Return{Value: ast.Identifier{Name: name}},
			},
		},
		ast.Show{Value: ast.Call{Callee: greet, Args: []ast.Expr{ast.Literal{Kind: ast.LitString, Str: "Ada"}}}},
	})
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if got := interp.Output(); len(got) != 1 || got[0] != "Ada" {
		t.Fatalf("Output() = %#v, want [\"Ada\"]", got)
	}
}

func TestFunctionCallCannotSeeCallerLocals(t *testing.T) {
	in := intern.New()
	interp := New(in, strings.NewReader(""))
	outer, leak := in.Intern("outer"), in.Intern("leak")

	err := interp.Run([]ast.Stmt{
		ast.Let{Var: outer, Value: ast.Literal{Kind: ast.LitInt, Num: 7}},
		ast.FunctionDef{
			Name: leak,
			Body: []ast.Stmt{
				ast.Return{Value: ast.Identifier{Name: outer}},
			},
		},
		ast.Show{Value: ast.Call{Callee: leak}},
	})
	if err == nil {
		t.Fatalf("Run succeeded, want an undefined-name error since calls get no outer-scope capture")
	}
}

func TestStructFieldMutation(t *testing.T) {
	in := intern.New()
	interp := New(in, strings.NewReader(""))
	farmer, age := in.Intern("farmer"), in.Intern("age")

	err := interp.Run([]ast.Stmt{
		ast.Let{Var: farmer, Value: ast.New{
			TypeName:   in.Intern("Farmer"),
			InitFields: []ast.InitField{{Name: age, Value: ast.Literal{Kind: ast.LitInt, Num: 30}}},
		}},
		ast.SetField{Target: ast.Identifier{Name: farmer}, Field: age, Value: ast.Literal{Kind: ast.LitInt, Num: 31}},
		ast.Show{Value: ast.FieldAccess{Target: ast.Identifier{Name: farmer}, Field: age}},
	})
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if got := interp.Output(); len(got) != 1 || got[0] != "31" {
		t.Fatalf("Output() = %#v, want [\"31\"]", got)
	}
}

func TestCrdtOperationReportsUnsupported(t *testing.T) {
	in := intern.New()
	interp := New(in, strings.NewReader(""))

	err := interp.Run([]ast.Stmt{
		ast.CrdtStmt{Op: ast.CRDTIncrease, Target: ast.Literal{Kind: ast.LitInt, Num: 1}},
	})
	if err == nil {
		t.Fatalf("Run succeeded, want an unsupported-operation error for a CRDT statement")
	}
	if !strings.Contains(err.Error(), "compile this program and run it instead") {
		t.Fatalf("error = %q, want it to direct the user to compiled mode", err.Error())
	}
}

func TestOwnershipGiveDoesNotPanicAtRuntime(t *testing.T) {
	// C8's ownership analysis is what rejects a use-after-move; the
	// interpreter itself only evaluates Give's operand.
	in := intern.New()
	interp := New(in, strings.NewReader(""))
	x := in.Intern("x")

	err := interp.Run([]ast.Stmt{
		ast.Let{Var: x, Value: ast.Literal{Kind: ast.LitInt, Num: 5}},
		ast.Give{Value: ast.Identifier{Name: x}},
	})
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
}
