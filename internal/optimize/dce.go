package optimize

import "github.com/logos-lang/logos/internal/ast"

// EliminateDeadCode removes `If false` branches, collapses `If true` to its
// then-block, drops `While false` entirely, and truncates a statement list
// after the first unconditional Return - later statements in that list are
// unreachable. Recurses into every nested block first so an If/While whose
// condition only folds to a literal after its own body is simplified (C9
// runs after folding/propagation, so this is mostly direct literal checks).
func EliminateDeadCode(stmts []ast.Stmt) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(stmts))
	for _, s := range stmts {
		s = eliminateWithin(s)
		switch n := s.(type) {
		case ast.If:
			if lit, ok := n.Cond.(ast.Literal); ok && lit.Kind == ast.LitBool {
				if lit.Bool {
					out = append(out, n.Then...)
				} else {
					out = append(out, n.Else...)
				}
			} else {
				out = append(out, n)
			}
		case ast.While:
			if lit, ok := n.Cond.(ast.Literal); ok && lit.Kind == ast.LitBool && !lit.Bool {
				continue
			}
			out = append(out, n)
		default:
			out = append(out, n)
		}
		if len(out) > 0 {
			if _, ok := out[len(out)-1].(ast.Return); ok {
				break
			}
		}
	}
	return out
}

func eliminateWithin(s ast.Stmt) ast.Stmt {
	switch n := s.(type) {
	case ast.If:
		n.Then = EliminateDeadCode(n.Then)
		n.Else = EliminateDeadCode(n.Else)
		return n
	case ast.While:
		n.Body = EliminateDeadCode(n.Body)
		return n
	case ast.Repeat:
		n.Body = EliminateDeadCode(n.Body)
		return n
	case ast.FunctionDef:
		n.Body = EliminateDeadCode(n.Body)
		return n
	case ast.Zone:
		n.Body = EliminateDeadCode(n.Body)
		return n
	case ast.Concurrent:
		n.Body = EliminateDeadCode(n.Body)
		return n
	case ast.Parallel:
		n.Body = EliminateDeadCode(n.Body)
		return n
	case ast.Inspect:
		arms := make([]ast.InspectArm, len(n.Arms))
		for i, arm := range n.Arms {
			arm.Body = EliminateDeadCode(arm.Body)
			arms[i] = arm
		}
		n.Arms = arms
		n.Otherwise = EliminateDeadCode(n.Otherwise)
		return n
	default:
		return s
	}
}
