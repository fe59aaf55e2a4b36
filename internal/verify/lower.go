package verify

import (
	"github.com/logos-lang/logos/internal/ast"
)

var exprOps = map[string]Op{
	"+": OpAdd, "-": OpSub, "*": OpMul, "/": OpDiv,
	"==": OpEq, "!=": OpNeq, "<": OpLt, ">": OpGt, "<=": OpLte, ">=": OpGte,
	"and": OpAnd, "or": OpOr,
}

// lowerExpr maps an imperative Expr into the verification IR. It returns
// ok=false for anything outside the restricted subset (calls, field
// access, closures, ...): the caller treats that as "cannot be mapped".
func lowerExpr(e ast.Expr) (Node, bool) {
	switch n := e.(type) {
	case ast.Literal:
		switch n.Kind {
		case ast.LitInt:
			return Const{Sort: SortInt, I: int64(n.Num)}, true
		case ast.LitBool:
			return Const{Sort: SortBool, B: n.Bool}, true
		default:
			return nil, false
		}
	case ast.Identifier:
		return Var{Sort: SortObject, Name: n.Name}, true
	case ast.ExprBinaryOp:
		op, ok := exprOps[n.Op]
		if !ok {
			return nil, false
		}
		left, ok := lowerExpr(n.Left)
		if !ok {
			return nil, false
		}
		right, ok := lowerExpr(n.Right)
		if !ok {
			return nil, false
		}
		return App{Op: op, Args: []Node{left, right}}, true
	default:
		return nil, false
	}
}

// lowerLogic maps a LogicExpr (an Assert or Refinement predicate) into the
// verification IR. Predicates and Relations become Uninterpreted function
// applications, so the solver reasons about them structurally (equal
// applications are equal) rather than by evaluating their linguistic
// meaning. Modal operators are not mapped: they return ok=false and
// reduce to "true" like the other linguistic constructs.
func lowerLogic(e ast.LogicExpr) (Node, bool) {
	switch n := e.(type) {
	case ast.BinaryOp:
		var op Op
		switch n.Op {
		case ast.OpAnd:
			op = OpAnd
		case ast.OpOr:
			op = OpOr
		case ast.OpImplies:
			op = OpImplies
		case ast.OpIff:
			left, ok := lowerLogic(n.Left)
			if !ok {
				return nil, false
			}
			right, ok := lowerLogic(n.Right)
			if !ok {
				return nil, false
			}
			return App{Op: OpEq, Args: []Node{left, right}}, true
		}
		left, ok := lowerLogic(n.Left)
		if !ok {
			return nil, false
		}
		right, ok := lowerLogic(n.Right)
		if !ok {
			return nil, false
		}
		return App{Op: op, Args: []Node{left, right}}, true
	case ast.UnaryOp:
		operand, ok := lowerLogic(n.Operand)
		if !ok {
			return nil, false
		}
		return App{Op: OpNot, Args: []Node{operand}}, true
	case ast.Predicate:
		args, ok := lowerTerms(n.Args)
		if !ok {
			return nil, false
		}
		return Uninterpreted{Name: n.Name, Args: args}, true
	case ast.Relation:
		left, ok := lowerTerm(n.Left)
		if !ok {
			return nil, false
		}
		right, ok := lowerTerm(n.Right)
		if !ok {
			return nil, false
		}
		return Uninterpreted{Name: n.Name, Args: []Node{left, right}}, true
	case ast.Identity:
		left, ok := lowerTerm(n.Left)
		if !ok {
			return nil, false
		}
		right, ok := lowerTerm(n.Right)
		if !ok {
			return nil, false
		}
		return App{Op: OpEq, Args: []Node{left, right}}, true
	default:
		// Modal, Quantifier, NeoEvent, and every other linguistic
		// construct: no sound structural mapping, reduces to "true".
		return nil, false
	}
}

func lowerTerms(ts []ast.Term) ([]Node, bool) {
	out := make([]Node, len(ts))
	for i, t := range ts {
		n, ok := lowerTerm(t)
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func lowerTerm(t ast.Term) (Node, bool) {
	switch n := t.(type) {
	case ast.Variable:
		return Var{Sort: SortObject, Name: n.Name}, true
	case ast.Constant:
		return Var{Sort: SortObject, Name: n.Name}, true
	case ast.Value:
		if n.Kind == ast.NumberInt {
			return Const{Sort: SortInt, I: int64(n.Num)}, true
		}
		return nil, false
	default:
		return nil, false
	}
}
