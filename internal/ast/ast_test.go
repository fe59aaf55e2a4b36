package ast

import (
	"testing"

	"github.com/logos-lang/logos/internal/intern"
)

func TestArenasAllocAndReset(t *testing.T) {
	arenas := NewArenas()
	n := arenas.LogicExprs.Alloc(Atom{Name: intern.Symbol(1)})
	if (*n).(Atom).Name != intern.Symbol(1) {
		t.Fatalf("alloc did not round-trip the node")
	}
	if arenas.LogicExprs.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", arenas.LogicExprs.Len())
	}
	arenas.Reset()
	if arenas.LogicExprs.Len() != 0 {
		t.Fatalf("Len() after Reset() = %d, want 0", arenas.LogicExprs.Len())
	}
}

func TestLogicExprTypeSwitch(t *testing.T) {
	var le LogicExpr = Quantifier{
		Kind:     QUniversal,
		Variable: intern.Symbol(2),
		Body:     Atom{Name: intern.Symbol(3)},
	}
	switch n := le.(type) {
	case Quantifier:
		if n.Kind != QUniversal {
			t.Errorf("Kind = %v, want QUniversal", n.Kind)
		}
	default:
		t.Fatalf("type switch fell through to default for %T", le)
	}
}
