// Package verify implements the optional SMT-lite static verification of
// C8: a restricted imperative subset is mapped to a small verification IR
// and evaluated symbolically. Unmappable constructs reduce to "true"
// (unproved, not refuted) so the pass never reports a false positive.
package verify

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// Sort is the verification IR's closed set of value sorts.
type Sort int

const (
	SortInt Sort = iota
	SortBool
	SortObject // uninterpreted: equality is the only sound operation
)

// Op is the verification IR's closed set of operators.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLte
	OpGte
	OpAnd
	OpOr
	OpNot
	OpImplies
)

// Node is the verification IR's expression sum type: a constant, a free
// variable, an operator application, or an uninterpreted function call
// standing in for a predicate or relation the IR can't interpret
// structurally.
type Node interface{ vnode() }

type Const struct {
	Sort Sort
	I    int64
	B    bool
}

type Var struct {
	Sort Sort
	Name intern.Symbol
}

type App struct {
	Op   Op
	Args []Node
}

// Uninterpreted represents a predicate or relation applied to its
// arguments: the solver only ever reasons about it structurally (by name
// and argument equality), never by evaluating what it "means".
type Uninterpreted struct {
	Name intern.Symbol
	Args []Node
}

func (Const) vnode()         {}
func (Var) vnode()           {}
func (App) vnode()           {}
func (Uninterpreted) vnode() {}

// Lowerable reports whether e is in the restricted subset §4.8 describes
// (arithmetic/comparison/boolean operators over literals and identifiers
// only), vs. a linguistic construct that must reduce to "true".
func Lowerable(e ast.Expr) bool {
	_, ok := lowerExpr(e)
	return ok
}
