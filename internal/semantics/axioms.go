package semantics

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/lexicon"
	"github.com/samber/lo"
)

// ApplyAxioms rewrites expr using lexicon-backed meaning postulates:
// hypernym/entailment injection and part-whole enrichment at each noun
// Predicate, privative-adjective rewriting at the "noun AND adjective"
// restriction shape the parser builds, verb-entailment expansion at each
// NeoEvent, and synonym/antonym canonicalization of every predicate name.
func (l *Lowerer) ApplyAxioms(expr ast.LogicExpr) ast.LogicExpr {
	switch n := expr.(type) {
	case ast.Predicate:
		return l.rewritePredicate(n)
	case ast.NeoEvent:
		return l.rewriteNeoEvent(n)
	case ast.BinaryOp:
		if n.Op == ast.OpAnd {
			if rewritten, ok := l.tryPrivativeAdjective(n); ok {
				return rewritten
			}
		}
	}
	return l.walkChildren(expr, l.ApplyAxioms)
}

func (l *Lowerer) canonicalize(name intern.Symbol) intern.Symbol {
	word := l.interner.Resolve(name)
	if canon, _, ok := lexicon.LookupCanonical(word); ok {
		return l.interner.Intern(canon)
	}
	return name
}

// rewritePredicate canonicalizes a predicate's name, then conjoins one
// extra Predicate per hypernym/entailment the lexicon records for it, and
// wraps the result in a part-whole existential when the noun is a known
// part of some whole.
func (l *Lowerer) rewritePredicate(p ast.Predicate) ast.LogicExpr {
	p.Name = l.canonicalize(p.Name)
	lemma := l.interner.Resolve(p.Name)

	var extra []string
	extra = append(extra, lexicon.NounHypernyms(lemma)...)
	extra = append(extra, lexicon.NounEntailments(lemma)...)
	extra = lo.Filter(lo.Uniq(extra), func(s string, _ int) bool { return s != lemma })

	result := l.allocLogic(p)
	for _, hyper := range extra {
		hp := l.allocLogic(ast.Predicate{Name: l.interner.Intern(hyper), Args: p.Args})
		result = l.allocLogic(ast.BinaryOp{Op: ast.OpAnd, Left: result, Right: hp})
	}
	if wholes := lexicon.PartWholes(lemma); len(wholes) > 0 && len(p.Args) > 0 {
		result = l.injectPartWhole(result, p.Args[0], wholes[0])
	}
	return result
}

// injectPartWhole wraps body in ∃w. Whole(w) ∧ (body ∧ PartOf(part, w)),
// introducing the implicit whole a known mereological part entails
// ("wheel" entails some car it is a wheel of).
func (l *Lowerer) injectPartWhole(body ast.LogicExpr, part ast.Term, whole string) ast.LogicExpr {
	w := l.freshVar(whole)
	wVar := l.allocTerm(ast.Variable{Name: w})
	restriction := l.allocLogic(ast.Predicate{Name: l.interner.Intern(whole), Args: []ast.Term{wVar}})
	partOf := l.allocLogic(ast.Relation{Name: l.interner.Intern("part_of"), Left: part, Right: wVar})
	conjoined := l.allocLogic(ast.BinaryOp{Op: ast.OpAnd, Left: body, Right: partOf})
	return l.allocLogic(ast.Quantifier{Kind: ast.QExistential, Variable: w, Restriction: restriction, Body: conjoined})
}

// tryPrivativeAdjective detects the "Predicate(noun, x) AND Predicate(adj,
// x)" restriction shape the parser builds for "fake N" and rewrites it to
// ¬N(x) ∧ Resembles(x, N), the standard privative-adjective reading.
func (l *Lowerer) tryPrivativeAdjective(n ast.BinaryOp) (ast.LogicExpr, bool) {
	adjPred, ok := n.Right.(ast.Predicate)
	if !ok || len(adjPred.Args) == 0 {
		return nil, false
	}
	entry, ok := lexicon.LookupAdjective(l.interner.Resolve(adjPred.Name))
	if !ok || entry.Type != "privative" {
		return nil, false
	}
	head, ok := findHeadPredicate(n.Left)
	if !ok {
		return nil, false
	}
	x := adjPred.Args[0]
	negNoun := l.allocLogic(ast.UnaryOp{Operand: l.allocLogic(head)})
	resembles := l.allocLogic(ast.Relation{
		Name: l.interner.Intern("resembles"), Left: x,
		Right: l.allocTerm(ast.Constant{Name: head.Name}),
	})
	return l.allocLogic(ast.BinaryOp{Op: ast.OpAnd, Left: negNoun, Right: resembles}), true
}

// findHeadPredicate walks down the left spine of a conjunction chain to
// the original noun predicate the parser built before any adjectives were
// folded in.
func findHeadPredicate(expr ast.LogicExpr) (ast.Predicate, bool) {
	switch n := expr.(type) {
	case ast.Predicate:
		return n, true
	case ast.BinaryOp:
		if n.Op == ast.OpAnd {
			return findHeadPredicate(n.Left)
		}
	}
	return ast.Predicate{}, false
}

// rewriteNeoEvent conjoins one extra Predicate, applied to the event
// variable, per verb entailment the lexicon records ("murder" entails
// "kill" and "intentional").
func (l *Lowerer) rewriteNeoEvent(n ast.NeoEvent) ast.LogicExpr {
	lemma := l.interner.Resolve(n.Verb)
	entailments := lexicon.VerbEntailments(lemma)
	result := ast.LogicExpr(l.allocLogic(n))
	if len(entailments) == 0 {
		return result
	}
	eventVar := l.allocTerm(ast.Variable{Name: n.EventVar})
	for _, ent := range entailments {
		pred := l.allocLogic(ast.Predicate{Name: l.interner.Intern(ent), Args: []ast.Term{eventVar}})
		result = l.allocLogic(ast.BinaryOp{Op: ast.OpAnd, Left: result, Right: pred})
	}
	return result
}
