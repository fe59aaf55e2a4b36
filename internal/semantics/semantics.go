// Package semantics implements semantic lowering (C6): axiom application,
// Kripke modal lowering, pragmatics, and quantifier-scope enumeration over
// the LogicExpr trees the parser (C5) produces.
package semantics

import (
	"fmt"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// Lowerer carries the arena and interner every rewrite pass allocates new
// nodes through, plus a private variable counter for the fresh world and
// whole-individual variables axiom application and Kripke lowering mint.
type Lowerer struct {
	arenas     *ast.Arenas
	interner   *intern.Interner
	varCounter int
}

// New creates a Lowerer sharing arenas and interner with the rest of the
// compilation.
func New(arenas *ast.Arenas, interner *intern.Interner) *Lowerer {
	return &Lowerer{arenas: arenas, interner: interner}
}

func (l *Lowerer) allocLogic(n ast.LogicExpr) ast.LogicExpr { return *l.arenas.LogicExprs.Alloc(n) }
func (l *Lowerer) allocTerm(n ast.Term) ast.Term            { return *l.arenas.Terms.Alloc(n) }

func (l *Lowerer) freshVar(hint string) intern.Symbol {
	l.varCounter++
	return l.interner.Intern(fmt.Sprintf("%s#%d", hint, l.varCounter))
}

// Lower runs the full C6 pipeline over expr in the order spec.md lays out:
// axiom application, then Kripke lowering of any remaining Modal nodes,
// then pragmatics, then scope enumeration. It returns the surface-scope
// reading (what `compile` returns) and the full set of readings
// (`compile_all_scopes`).
func (l *Lowerer) Lower(expr ast.LogicExpr) (surface ast.LogicExpr, allReadings []ast.LogicExpr) {
	lowered := l.ApplyAxioms(expr)
	lowered = l.ApplyKripkeLowering(lowered)
	lowered = l.ApplyPragmatics(lowered)
	readings := l.EnumerateScopes(lowered)
	if len(readings) == 0 {
		return lowered, []ast.LogicExpr{lowered}
	}
	return readings[0], readings
}
