package optimize

import "github.com/logos-lang/logos/internal/ast"

// Optimize runs the three passes in order - fold, propagate (which re-folds
// as it substitutes), then dead-code elimination - matching §4.9: folding
// first exposes the literals propagation needs, propagation's cascading
// re-fold exposes the literal conditions DCE prunes on.
func Optimize(stmts []ast.Stmt) []ast.Stmt {
	stmts = FoldStmts(stmts)
	stmts = PropagateStmts(stmts, Env{})
	stmts = EliminateDeadCode(stmts)
	return stmts
}
