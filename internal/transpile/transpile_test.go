package transpile

import (
	"strings"
	"testing"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/discovery"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/lexer"
	"github.com/logos-lang/logos/internal/parser"
	"github.com/logos-lang/logos/internal/semantics"
)

func lowerSentence(t *testing.T, src string) (ast.LogicExpr, *intern.Interner) {
	t.Helper()
	toks, bag := lexer.Tokenize(src)
	if bag.HasErrors() {
		t.Fatalf("lex errors: %v", bag.Items())
	}
	arenas := ast.NewArenas()
	interner := intern.New()
	types, policies, _ := discovery.Discover(toks)
	p := parser.New(toks, arenas, interner, types, policies)
	surface, _ := semantics.New(arenas, interner).Lower(p.ParseSentence())
	return surface, interner
}

func TestTranspileUnicodeUniversal(t *testing.T) {
	expr, interner := lowerSentence(t, "Every dog runs.")
	out := Transpile(expr, Unicode, interner)
	if !strings.HasPrefix(out, "∀") {
		t.Errorf("output = %q, want prefix ∀", out)
	}
	if !strings.Contains(out, "→") {
		t.Errorf("output = %q, want a → connective for a universal's restriction/body", out)
	}
}

func TestTranspileSimpleFOLUsesAsciiGlyphs(t *testing.T) {
	expr, interner := lowerSentence(t, "Every dog runs.")
	out := Transpile(expr, SimpleFOL, interner)
	if strings.Contains(out, "∀") || strings.Contains(out, "→") {
		t.Errorf("SimpleFOL output %q still contains a Unicode glyph", out)
	}
	if !strings.HasPrefix(out, "forall") {
		t.Errorf("output = %q, want prefix \"forall\"", out)
	}
}

func TestTranspileStableNumberingAcrossDiscourse(t *testing.T) {
	expr, interner := lowerSentence(t, "Every dog runs.")

	tr := NewTranspiler(interner)
	first := tr.Transpile(expr, Unicode)
	second := tr.Transpile(expr, Unicode)
	if first != second {
		t.Errorf("re-transpiling the same expr through one Transpiler gave different output: %q vs %q", first, second)
	}
}
