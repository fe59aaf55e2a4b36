// Package ast defines the arena-allocated AST shared by the declarative
// and imperative halves of the parser (C5). Every node family is a closed
// sum type: a marker interface plus one concrete struct per variant, in
// the shape of go/ast's Expr/Stmt interfaces rather than a double-dispatch
// visitor, since passes over this AST are ordinary type switches.
package ast

import (
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/token"
)

// LogicExpr is the declarative sum type: every logical-form node implements
// this marker interface.
type LogicExpr interface {
	logicExprNode()
	Span() token.Span
}

// Term is an argument to a Predicate or a role filler inside a NeoEvent.
type Term interface {
	termNode()
	Span() token.Span
}

type base struct{ Sp token.Span }

func (b base) Span() token.Span { return b.Sp }

// --- Terms ---

type Constant struct {
	base
	Name intern.Symbol
}

type Variable struct {
	base
	Name  intern.Symbol
	Index int // de Bruijn-style disambiguator for shadowed variables
}

type Function struct {
	base
	Name intern.Symbol
	Args []Term
}

type Group struct {
	base
	Members []Term
}

type Possessed struct {
	base
	Owner    Term
	Property intern.Symbol
}

// Sigma is the plural-individual sum operator (Link's lattice-theoretic
// plural reference): Sigma(x, Dog(x)) denotes the maximal sum of dogs.
type Sigma struct {
	base
	Variable   intern.Symbol
	Restriction LogicExpr
}

type Intension struct {
	base
	World Term
	Body  LogicExpr
}

// NumberKind distinguishes the literal payload carried by a Value term.
type NumberKind int

const (
	NumberInt NumberKind = iota
	NumberFloat
)

type Value struct {
	base
	Kind NumberKind
	Num  float64
}

type Proposition struct {
	base
	Expr LogicExpr
}

func (Constant) termNode()    {}
func (Variable) termNode()    {}
func (Function) termNode()    {}
func (Group) termNode()       {}
func (Possessed) termNode()   {}
func (Sigma) termNode()       {}
func (Intension) termNode()   {}
func (Value) termNode()       {}
func (Proposition) termNode() {}
