package parser

import (
	"testing"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/discovery"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/lexer"
)

func parseOneSentence(t *testing.T, src string) ast.LogicExpr {
	t.Helper()
	toks, bag := lexer.Tokenize(src)
	if bag.HasErrors() {
		t.Fatalf("lex errors: %v", bag.Items())
	}
	types, policies, _ := discovery.Discover(toks)
	p := New(toks, ast.NewArenas(), intern.New(), types, policies)
	return p.ParseSentence()
}

func TestParseUniversalSentence(t *testing.T) {
	le := parseOneSentence(t, "Every dog runs.")
	q, ok := le.(ast.Quantifier)
	if !ok {
		t.Fatalf("top-level node = %T, want ast.Quantifier", le)
	}
	if q.Kind != ast.QUniversal {
		t.Errorf("Kind = %v, want QUniversal", q.Kind)
	}
	if _, ok := q.Body.(ast.NeoEvent); !ok {
		t.Errorf("Body = %T, want ast.NeoEvent", q.Body)
	}
}

func TestParseNegatedSentence(t *testing.T) {
	le := parseOneSentence(t, "No dog barks.")
	_, ok := le.(ast.UnaryOp)
	if !ok {
		t.Fatalf("top-level node = %T, want ast.UnaryOp (negated existential)", le)
	}
}

func TestParseConditionalDonkeySentence(t *testing.T) {
	le := parseOneSentence(t, "If a farmer owns a donkey then he beats it.")
	bop, ok := le.(ast.BinaryOp)
	if !ok {
		t.Fatalf("top-level node = %T, want ast.BinaryOp(Implies)", le)
	}
	if bop.Op != ast.OpImplies {
		t.Errorf("Op = %v, want OpImplies", bop.Op)
	}
}

func TestParsePastTenseWraps(t *testing.T) {
	le := parseOneSentence(t, "A dog ran.")
	q, ok := le.(ast.Quantifier)
	if !ok {
		t.Fatalf("top-level node = %T, want ast.Quantifier", le)
	}
	if _, ok := q.Body.(ast.Temporal); !ok {
		t.Errorf("Body = %T, want ast.Temporal wrapping a past-tense NeoEvent", q.Body)
	}
}
