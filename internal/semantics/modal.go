package semantics

import "github.com/logos-lang/logos/internal/ast"

// necessityThreshold is the Force value at or above which a modal reads as
// necessity-like (universal quantification over accessible worlds) rather
// than possibility-like (existential). The parser's modal vectors
// (parseOptionalModal) use 1.0/0.75 for must/should and 0.5 for
// may/can/could/would, so 0.75
// cleanly separates the two groups regardless of Domain or Flavor.
const necessityThreshold = 0.75

// ApplyKripkeLowering rewrites every Modal node into a Quantifier over
// accessible worlds, per SPEC_FULL.md's Kripke semantics for modal
// operators: Domain selects the accessibility relation (alethic or
// deontic), Force selects universal ("necessity") or existential
// ("possibility") quantification over it.
func (l *Lowerer) ApplyKripkeLowering(expr ast.LogicExpr) ast.LogicExpr {
	if m, ok := expr.(ast.Modal); ok {
		operand := l.ApplyKripkeLowering(m.Operand)
		return l.lowerModal(m, operand)
	}
	return l.walkChildren(expr, l.ApplyKripkeLowering)
}

func (l *Lowerer) lowerModal(m ast.Modal, operand ast.LogicExpr) ast.LogicExpr {
	worldVar := l.freshVar("w")
	worldTerm := l.allocTerm(ast.Variable{Name: worldVar})
	currentWorld := l.allocTerm(ast.Constant{Name: l.interner.Intern("w0")})

	relName := "R_alethic"
	if m.Vector.Domain == ast.DomainDeontic {
		relName = "R_deontic"
	}
	restriction := l.allocLogic(ast.Relation{
		Name: l.interner.Intern(relName), Left: currentWorld, Right: worldTerm,
	})

	body := l.injectWorld(operand, worldTerm)

	kind := ast.QExistential
	if m.Vector.Force >= necessityThreshold {
		kind = ast.QUniversal
	}
	return l.allocLogic(ast.Quantifier{Kind: kind, Variable: worldVar, Restriction: restriction, Body: body})
}

// injectWorld sets the world parameter on every NeoEvent reachable inside
// expr without crossing into another Modal's own world (a nested modal
// mints and injects its own world variable when it is lowered).
func (l *Lowerer) injectWorld(expr ast.LogicExpr, world ast.Term) ast.LogicExpr {
	if n, ok := expr.(ast.NeoEvent); ok {
		n.World = world
		return l.allocLogic(n)
	}
	return l.walkChildren(expr, func(e ast.LogicExpr) ast.LogicExpr { return l.injectWorld(e, world) })
}
