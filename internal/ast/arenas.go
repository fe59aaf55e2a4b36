package ast

import "github.com/logos-lang/logos/internal/arena"

// Arenas is the per-compilation set of arenas, one per AST node family, so
// that slice-of-T allocations within a family are O(1). Nodes are stored
// as their sum-type interface value (LogicExpr, Term, ...) rather than as
// one arena per concrete variant: Go's single-type-parameter generics
// cannot express a heterogeneous bump region, so the lifetime/reset
// contract is what this models, not byte-packed storage (see DESIGN.md).
type Arenas struct {
	LogicExprs  *arena.Arena[LogicExpr]
	Terms       *arena.Arena[Term]
	NounPhrases *arena.Arena[*NounPhrase]
	Stmts       *arena.Arena[Stmt]
	Exprs       *arena.Arena[Expr]
	TypeExprs   *arena.Arena[TypeExpr]
	Roles       *arena.Arena[RoleFiller]
	PPs         *arena.Arena[*PP]
	Symbols     *arena.Arena[[]int32] // arena-owned symbol slices (e.g. generics lists)
}

// NewArenas allocates a fresh arena set for one compilation.
func NewArenas() *Arenas {
	return &Arenas{
		LogicExprs:  arena.New[LogicExpr](),
		Terms:       arena.New[Term](),
		NounPhrases: arena.New[*NounPhrase](),
		Stmts:       arena.New[Stmt](),
		Exprs:       arena.New[Expr](),
		TypeExprs:   arena.New[TypeExpr](),
		Roles:       arena.New[RoleFiller](),
		PPs:         arena.New[*PP](),
		Symbols:     arena.New[[]int32](),
	}
}

// Reset invalidates every handle issued by this arena set while preserving
// each arena's claimed backing capacity, so the REPL can reuse it across
// evaluations without reallocating.
func (a *Arenas) Reset() {
	a.LogicExprs.Reset()
	a.Terms.Reset()
	a.NounPhrases.Reset()
	a.Stmts.Reset()
	a.Exprs.Reset()
	a.TypeExprs.Reset()
	a.Roles.Reset()
	a.PPs.Reset()
	a.Symbols.Reset()
}
