package semantics

import "github.com/logos-lang/logos/internal/ast"

// walkChildren applies f to every immediate LogicExpr child of expr and
// reallocates expr with the rewritten children. Every pass in this package
// special-cases the node kinds it rewrites directly and falls back to
// walkChildren for the rest, so adding a new LogicExpr variant only
// requires touching this one switch.
func (l *Lowerer) walkChildren(expr ast.LogicExpr, f func(ast.LogicExpr) ast.LogicExpr) ast.LogicExpr {
	switch n := expr.(type) {
	case ast.BinaryOp:
		n.Left, n.Right = f(n.Left), f(n.Right)
		return l.allocLogic(n)
	case ast.UnaryOp:
		n.Operand = f(n.Operand)
		return l.allocLogic(n)
	case ast.Quantifier:
		n.Restriction, n.Body = f(n.Restriction), f(n.Body)
		return l.allocLogic(n)
	case ast.Modal:
		n.Operand = f(n.Operand)
		return l.allocLogic(n)
	case ast.Temporal:
		n.Body = f(n.Body)
		return l.allocLogic(n)
	case ast.Aspectual:
		n.Body = f(n.Body)
		return l.allocLogic(n)
	case ast.Voice:
		n.Body = f(n.Body)
		return l.allocLogic(n)
	case ast.Lambda:
		n.Body = f(n.Body)
		return l.allocLogic(n)
	case ast.App:
		n.Fn = f(n.Fn)
		return l.allocLogic(n)
	case ast.Counterfactual:
		n.Antecedent, n.Consequent = f(n.Antecedent), f(n.Consequent)
		return l.allocLogic(n)
	case ast.Causal:
		n.Cause, n.Effect = f(n.Cause), f(n.Effect)
		return l.allocLogic(n)
	case ast.Control:
		n.Body = f(n.Body)
		return l.allocLogic(n)
	case ast.Presupposition:
		n.Trigger, n.Presupposed = f(n.Trigger), f(n.Presupposed)
		return l.allocLogic(n)
	case ast.Focus:
		n.Focused, n.Body = f(n.Focused), f(n.Body)
		return l.allocLogic(n)
	case ast.Question:
		n.Body = f(n.Body)
		return l.allocLogic(n)
	case ast.Imperative:
		n.Body = f(n.Body)
		return l.allocLogic(n)
	case ast.Scopal:
		n.Body = f(n.Body)
		return l.allocLogic(n)
	case ast.TemporalAnchor:
		n.Body = f(n.Body)
		return l.allocLogic(n)
	case ast.Distributive:
		n.Body = f(n.Body)
		return l.allocLogic(n)
	case ast.GroupQuantifier:
		n.Restriction, n.Body = f(n.Restriction), f(n.Body)
		return l.allocLogic(n)
	case ast.SpeechAct:
		n.Body = f(n.Body)
		return l.allocLogic(n)
	case ast.Intensional:
		n.Body = f(n.Body)
		return l.allocLogic(n)
	case ast.Metaphor:
		n.Body = f(n.Body)
		return l.allocLogic(n)
	default:
		// Atom, Predicate, NeoEvent, Identity, Comparative, Categorical,
		// Relation: no LogicExpr-typed children, or handled by the caller
		// before falling back here.
		return expr
	}
}
