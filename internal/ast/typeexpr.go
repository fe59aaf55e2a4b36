package ast

import (
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/token"
)

// TypeExpr is the sum type for type annotations in the imperative AST.
type TypeExpr interface {
	typeExprNode()
	Span() token.Span
}

type Primitive struct {
	base
	Name string // Int, Float, String, Bool, Character, Nothing
}

type Named struct {
	base
	Name intern.Symbol
}

type Generic struct {
	base
	Name intern.Symbol
	Args []TypeExpr
}

type FunctionType struct {
	base
	Params     []TypeExpr
	ReturnType TypeExpr
}

// Refinement is a base type narrowed by a logical predicate over a bound
// variable, e.g. {x: Int | x > 0}; C8's optional SMT-lite pass discharges
// or flags the predicate at each call site.
type Refinement struct {
	base
	BaseType  TypeExpr
	Variable  intern.Symbol
	Predicate LogicExpr
}

// Persistent wraps a type to mark it as a CRDT-backed persistent value
// (G-Counter, OR-Set, ...) rather than an ordinary mutable binding.
type Persistent struct {
	base
	Inner TypeExpr
}

func (Primitive) typeExprNode()    {}
func (Named) typeExprNode()        {}
func (Generic) typeExprNode()      {}
func (FunctionType) typeExprNode() {}
func (Refinement) typeExprNode()   {}
func (Persistent) typeExprNode()   {}
