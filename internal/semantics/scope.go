package semantics

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/samber/lo"
)

// EnumerateScopes returns every quantifier-scope reading of expr, one per
// permutation of the maximal chain of directly-nested Quantifier nodes at
// the top of expr. A scope island (Modal, Counterfactual, Control, Lambda,
// or any other non-Quantifier node) bounds the chain: quantifiers nested
// inside one keep the single reading the parser already built for them,
// matching SPEC_FULL.md's requirement that islands block scope permutation.
// "All dogs bark." has one quantifier site and so one reading; "Some farmer
// owns some donkey." has two sites and so two.
func (l *Lowerer) EnumerateScopes(expr ast.LogicExpr) []ast.LogicExpr {
	chain, core := collectQuantifierChain(expr)
	if len(chain) < 2 {
		return []ast.LogicExpr{expr}
	}
	perms := permutations(chain)
	return lo.Map(perms, func(order []ast.Quantifier, _ int) ast.LogicExpr {
		return l.rebuildChain(order, core)
	})
}

// collectQuantifierChain walks down expr's Body spine collecting every
// directly-nested Quantifier, stopping at the first node that is not
// itself a Quantifier (the scope island boundary, or the innermost core).
func collectQuantifierChain(expr ast.LogicExpr) ([]ast.Quantifier, ast.LogicExpr) {
	var chain []ast.Quantifier
	cur := expr
	for {
		q, ok := cur.(ast.Quantifier)
		if !ok {
			return chain, cur
		}
		chain = append(chain, q)
		cur = q.Body
	}
}

// rebuildChain re-nests the given Quantifier order around core, innermost
// last, reusing each quantifier's own Kind/Variable/Restriction and
// discarding only its original Body (which core, or the next quantifier
// out, now supplies).
func (l *Lowerer) rebuildChain(order []ast.Quantifier, core ast.LogicExpr) ast.LogicExpr {
	body := core
	for i := len(order) - 1; i >= 0; i-- {
		q := order[i]
		q.Body = body
		body = l.allocLogic(q)
	}
	return body
}

// permutations returns every ordering of qs. samber/lo has no permutation
// helper, so this is a small hand-rolled recursive generator; the result
// slice is fed through lo.Map by the caller for the per-permutation
// rebuild step.
func permutations(qs []ast.Quantifier) [][]ast.Quantifier {
	if len(qs) <= 1 {
		return [][]ast.Quantifier{append([]ast.Quantifier(nil), qs...)}
	}
	var result [][]ast.Quantifier
	for i := range qs {
		rest := make([]ast.Quantifier, 0, len(qs)-1)
		rest = append(rest, qs[:i]...)
		rest = append(rest, qs[i+1:]...)
		for _, sub := range permutations(rest) {
			perm := append([]ast.Quantifier{qs[i]}, sub...)
			result = append(result, perm)
		}
	}
	return result
}
