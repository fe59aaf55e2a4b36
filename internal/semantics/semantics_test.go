package semantics

import (
	"testing"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/discovery"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/lexer"
	"github.com/logos-lang/logos/internal/parser"
)

func lowerSentence(t *testing.T, src string) (ast.LogicExpr, []ast.LogicExpr, *intern.Interner) {
	t.Helper()
	toks, bag := lexer.Tokenize(src)
	if bag.HasErrors() {
		t.Fatalf("lex errors: %v", bag.Items())
	}
	arenas := ast.NewArenas()
	interner := intern.New()
	types, policies, _ := discovery.Discover(toks)
	p := parser.New(toks, arenas, interner, types, policies)
	expr := p.ParseSentence()
	surface, readings := New(arenas, interner).Lower(expr)
	return surface, readings, interner
}

func TestApplyAxiomsInjectsHypernyms(t *testing.T) {
	surface, _, interner := lowerSentence(t, "Every dog runs.")
	q, ok := surface.(ast.Quantifier)
	if !ok {
		t.Fatalf("surface = %T, want ast.Quantifier", surface)
	}

	var names []string
	var collect func(ast.LogicExpr)
	collect = func(e ast.LogicExpr) {
		switch n := e.(type) {
		case ast.Predicate:
			names = append(names, interner.Resolve(n.Name))
		case ast.BinaryOp:
			collect(n.Left)
			collect(n.Right)
		}
	}
	collect(q.Restriction)

	want := map[string]bool{"dog": true, "animal": true, "mammal": true}
	if len(names) != len(want) {
		t.Fatalf("restriction predicates = %v, want one of each of %v", names, want)
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected predicate %q in restriction", n)
		}
	}
}

func TestEnumerateScopesTwoSites(t *testing.T) {
	_, readings, _ := lowerSentence(t, "Some farmer owns some donkey.")
	if len(readings) != 2 {
		t.Fatalf("len(readings) = %d, want 2 (2! permutations of a two-site chain)", len(readings))
	}
}

func TestEnumerateScopesSingleSite(t *testing.T) {
	_, readings, _ := lowerSentence(t, "Every dog runs.")
	if len(readings) != 1 {
		t.Fatalf("len(readings) = %d, want 1 (a single quantifier site has one reading)", len(readings))
	}
}
