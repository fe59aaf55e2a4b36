// Package ownership implements the flow-sensitive move/borrow analysis of
// C8: `Give x to y` moves x, and any later read of x (outside a fresh
// rebinding) is a use-after-move.
package ownership

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/token"
)

// Analyzer walks a function body in statement order tracking which
// variables have been moved away, and at which span, reporting every
// subsequent read. Grounded on the same single-forward-walk-plus-Bag
// shape as escape.Analyzer; the two differ in what state they thread
// (zone depth vs. a moved-set) rather than in control structure.
type Analyzer struct {
	interner *intern.Interner
	movedAt  map[intern.Symbol]token.Span
	bag      diagnostics.Bag
}

func New(interner *intern.Interner) *Analyzer {
	return &Analyzer{interner: interner, movedAt: make(map[intern.Symbol]token.Span)}
}

// Analyze walks stmts and returns every use-after-move violation found.
func (a *Analyzer) Analyze(stmts []ast.Stmt) *diagnostics.Bag {
	a.walkStmts(stmts)
	return &a.bag
}

func (a *Analyzer) walkStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		a.walkStmt(s)
	}
}

func (a *Analyzer) walkStmt(s ast.Stmt) {
	switch n := s.(type) {
	case ast.Let:
		a.checkRead(n.Value, n.Span())
		// Rebinding the name gives it a fresh value; it is no longer moved.
		delete(a.movedAt, n.Var)
	case ast.Set:
		a.checkRead(n.Value, n.Span())
		delete(a.movedAt, n.Var)
	case ast.SetIndex:
		a.checkRead(n.Target, n.Span())
		a.checkRead(n.Key, n.Span())
		a.checkRead(n.Value, n.Span())
	case ast.SetField:
		a.checkRead(n.Target, n.Span())
		a.checkRead(n.Value, n.Span())
	case ast.Give:
		if id, ok := n.Value.(ast.Identifier); ok {
			a.movedAt[id.Name] = n.Span()
			return
		}
		a.checkRead(n.Value, n.Span())
	case ast.Show:
		// A Show is a borrow, not a move: it reads the current value but
		// does not itself invalidate anything.
		a.checkRead(n.Value, n.Span())
	case ast.Return:
		if n.Value != nil {
			a.checkRead(n.Value, n.Span())
		}
	case ast.RuntimeAssert:
		a.checkRead(n.Cond, n.Span())
	case ast.If:
		a.checkRead(n.Cond, n.Span())
		a.walkStmts(n.Then)
		a.walkStmts(n.Else)
	case ast.While:
		a.checkRead(n.Cond, n.Span())
		a.walkStmts(n.Body)
	case ast.Repeat:
		a.checkRead(n.Iterable, n.Span())
		a.walkStmts(n.Body)
	case ast.Inspect:
		a.checkRead(n.Target, n.Span())
		for _, arm := range n.Arms {
			a.walkStmts(arm.Body)
		}
		a.walkStmts(n.Otherwise)
	case ast.Zone:
		a.walkStmts(n.Body)
	case ast.Concurrent:
		a.walkStmts(n.Body)
	case ast.Parallel:
		a.walkStmts(n.Body)
	case ast.Push:
		a.checkRead(n.Target, n.Span())
		a.checkRead(n.Value, n.Span())
	case ast.Pop:
		a.checkRead(n.Target, n.Span())
	case ast.FunctionDef:
		nested := New(a.interner).Analyze(n.Body)
		for _, d := range nested.Items() {
			a.bag.Add(d)
		}
	}
}

// checkRead reports every identifier reachable in e that has already been
// given away and not since rebound.
func (a *Analyzer) checkRead(e ast.Expr, useSpan token.Span) {
	if e == nil {
		return
	}
	for _, sym := range identifiers(e) {
		moveSpan, moved := a.movedAt[sym]
		if !moved {
			continue
		}
		a.bag.Add(diagnostics.NewOwnershipUseAfterMove(a.interner.Resolve(sym), moveSpan, useSpan))
	}
}
