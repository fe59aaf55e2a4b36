// Package escape implements the zone-escape analysis of C8: no value
// created inside a Zone block may flow out of it through a Return or a
// Set into an outer-scoped variable.
package escape

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/token"
)

// Analyzer walks a function body tracking each let-bound variable's
// zone-depth (0 = not inside any Zone) and the name of the innermost zone
// it was declared in, reporting a violation whenever an expression
// referencing a deeper-than-allowed variable crosses a Return or Set.
// Grounded on funxy's analyzer passes (a single forward walk threading a
// small scope map, collecting into a Bag rather than aborting on the
// first finding) generalized from type-checking to zone-depth checking.
type Analyzer struct {
	interner *intern.Interner
	depth    map[intern.Symbol]int
	zone     map[intern.Symbol]string
	bag      diagnostics.Bag
}

func New(interner *intern.Interner) *Analyzer {
	return &Analyzer{
		interner: interner,
		depth:    make(map[intern.Symbol]int),
		zone:     make(map[intern.Symbol]string),
	}
}

// Analyze walks stmts (a function body) and returns every escape
// violation found.
func (a *Analyzer) Analyze(stmts []ast.Stmt) *diagnostics.Bag {
	a.walkStmts(stmts, 0, "")
	return &a.bag
}

func (a *Analyzer) walkStmts(stmts []ast.Stmt, depth int, zoneName string) {
	for _, s := range stmts {
		a.walkStmt(s, depth, zoneName)
	}
}

func (a *Analyzer) walkStmt(s ast.Stmt, depth int, zoneName string) {
	switch n := s.(type) {
	case ast.Let:
		a.depth[n.Var] = depth
		a.zone[n.Var] = zoneName
	case ast.Set:
		target := a.interner.Resolve(n.Var)
		a.checkAssignment(n.Value, a.depth[n.Var], target, n.Span())
	case ast.Return:
		if n.Value != nil {
			a.checkReturn(n.Value, n.Span())
		}
	case ast.If:
		a.walkStmts(n.Then, depth, zoneName)
		a.walkStmts(n.Else, depth, zoneName)
	case ast.While:
		a.walkStmts(n.Body, depth, zoneName)
	case ast.Repeat:
		a.walkStmts(n.Body, depth, zoneName)
	case ast.Inspect:
		for _, arm := range n.Arms {
			a.walkStmts(arm.Body, depth, zoneName)
		}
		a.walkStmts(n.Otherwise, depth, zoneName)
	case ast.Zone:
		name := a.interner.Resolve(n.Name)
		a.walkStmts(n.Body, depth+1, name)
	case ast.Concurrent:
		a.walkStmts(n.Body, depth, zoneName)
	case ast.Parallel:
		a.walkStmts(n.Body, depth, zoneName)
	case ast.FunctionDef:
		// Nested function bodies get their own fresh scope: zone depth
		// does not cross a function boundary.
		nested := New(a.interner).Analyze(n.Body)
		for _, d := range nested.Items() {
			a.bag.Add(d)
		}
	}
}

// checkReturn reports every identifier reachable in e whose zone-depth is
// greater than 0: a Return's context is always the function's top level.
func (a *Analyzer) checkReturn(e ast.Expr, span token.Span) {
	for _, sym := range a.escaping(e, 0) {
		name := a.interner.Resolve(sym)
		a.bag.Add(diagnostics.NewReturnEscape(name, a.zone[sym], span))
	}
}

// checkAssignment reports every identifier reachable in e whose zone-depth
// exceeds targetDepth, the depth the assignment's target variable was
// declared at.
func (a *Analyzer) checkAssignment(e ast.Expr, targetDepth int, target string, span token.Span) {
	for _, sym := range a.escaping(e, targetDepth) {
		name := a.interner.Resolve(sym)
		a.bag.Add(diagnostics.NewAssignmentEscape(name, target, a.zone[sym], span))
	}
}

// escaping returns every identifier reachable in e whose recorded
// zone-depth is greater than maxDepth - the general rule behind both of
// the spec's concrete cases. Pure literal subexpressions contain no
// identifiers and so are always safe.
func (a *Analyzer) escaping(e ast.Expr, maxDepth int) []intern.Symbol {
	var out []intern.Symbol
	for _, sym := range identifiers(e) {
		if d, ok := a.depth[sym]; ok && d > maxDepth {
			out = append(out, sym)
		}
	}
	return out
}
