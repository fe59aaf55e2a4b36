package proof

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// equalLogic is structural equality over the declarative AST, used by the
// chainer to match a goal against a premise or a rule's subgoal. Symbols
// compare by identity since every LogicExpr the chainer touches in one
// theorem comes from the same Interner.
func equalLogic(a, b ast.LogicExpr) bool {
	switch av := a.(type) {
	case ast.Atom:
		bv, ok := b.(ast.Atom)
		return ok && av.Name == bv.Name
	case ast.Predicate:
		bv, ok := b.(ast.Predicate)
		if !ok || av.Name != bv.Name || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !equalTerm(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case ast.Identity:
		bv, ok := b.(ast.Identity)
		return ok && equalTerm(av.Left, bv.Left) && equalTerm(av.Right, bv.Right)
	case ast.BinaryOp:
		bv, ok := b.(ast.BinaryOp)
		return ok && av.Op == bv.Op && equalLogic(av.Left, bv.Left) && equalLogic(av.Right, bv.Right)
	case ast.UnaryOp:
		bv, ok := b.(ast.UnaryOp)
		return ok && equalLogic(av.Operand, bv.Operand)
	case ast.Quantifier:
		bv, ok := b.(ast.Quantifier)
		return ok && av.Kind == bv.Kind && av.Variable == bv.Variable && equalLogic(av.Body, bv.Body)
	default:
		return false
	}
}

func equalTerm(a, b ast.Term) bool {
	switch av := a.(type) {
	case ast.Constant:
		bv, ok := b.(ast.Constant)
		return ok && av.Name == bv.Name
	case ast.Variable:
		bv, ok := b.(ast.Variable)
		return ok && av.Name == bv.Name && av.Index == bv.Index
	case ast.Function:
		bv, ok := b.(ast.Function)
		if !ok || av.Name != bv.Name || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !equalTerm(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// substLogicVar replaces every free occurrence of a bound variable name
// with a concrete term, the way universal-instantiation and existential-
// witness both need to turn a quantifier's body into a ground instance. A
// nested quantifier rebinding the same variable name shadows it, matching
// Substitute's treatment of Pi/Lambda in the kernel.
func substLogicVar(e ast.LogicExpr, name intern.Symbol, replacement ast.Term) ast.LogicExpr {
	switch v := e.(type) {
	case ast.Atom:
		return v
	case ast.Predicate:
		args := make([]ast.Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = substTermVar(a, name, replacement)
		}
		return ast.Predicate{Name: v.Name, Args: args}
	case ast.Identity:
		return ast.Identity{Left: substTermVar(v.Left, name, replacement), Right: substTermVar(v.Right, name, replacement)}
	case ast.BinaryOp:
		return ast.BinaryOp{Op: v.Op, Left: substLogicVar(v.Left, name, replacement), Right: substLogicVar(v.Right, name, replacement)}
	case ast.UnaryOp:
		return ast.UnaryOp{Operand: substLogicVar(v.Operand, name, replacement)}
	case ast.Quantifier:
		if v.Variable == name {
			return v
		}
		return ast.Quantifier{Kind: v.Kind, N: v.N, Variable: v.Variable, Restriction: v.Restriction, Body: substLogicVar(v.Body, name, replacement)}
	default:
		return e
	}
}

func substTermVar(t ast.Term, name intern.Symbol, replacement ast.Term) ast.Term {
	switch v := t.(type) {
	case ast.Variable:
		if v.Name == name {
			return replacement
		}
		return v
	case ast.Function:
		args := make([]ast.Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = substTermVar(a, name, replacement)
		}
		return ast.Function{Name: v.Name, Args: args}
	default:
		return t
	}
}

// collectConstants gathers every ast.Constant name appearing in the
// premises or the goal, the candidate pool universal-instantiation and
// existential-witness try as instantiation terms.
func collectConstants(premises []ast.LogicExpr, goal ast.LogicExpr) []intern.Symbol {
	seen := make(map[intern.Symbol]bool)
	var out []intern.Symbol
	add := func(s intern.Symbol) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	var walkTerm func(ast.Term)
	walkTerm = func(t ast.Term) {
		switch v := t.(type) {
		case ast.Constant:
			add(v.Name)
		case ast.Function:
			for _, a := range v.Args {
				walkTerm(a)
			}
		}
	}
	var walk func(ast.LogicExpr)
	walk = func(e ast.LogicExpr) {
		switch v := e.(type) {
		case ast.Predicate:
			for _, a := range v.Args {
				walkTerm(a)
			}
		case ast.Identity:
			walkTerm(v.Left)
			walkTerm(v.Right)
		case ast.BinaryOp:
			walk(v.Left)
			walk(v.Right)
		case ast.UnaryOp:
			walk(v.Operand)
		case ast.Quantifier:
			walk(v.Restriction)
			walk(v.Body)
		}
	}
	for _, p := range premises {
		walk(p)
	}
	walk(goal)
	return out
}

// registerSymbols implements §4.12's "collect predicate and constant
// symbols from the proof expressions, register them in the kernel context
// as Global : Entity->Prop and Global : Entity respectively" step: every
// ast.Predicate name is bound to a Pi chain of as many Entity arguments as
// it takes, ending in Prop; every ast.Constant name is bound to Entity;
// every bare ast.Atom name is bound to Prop directly (a 0-ary predicate).
// A name already present in ctx (e.g. a prelude constant, or a name seen
// at a different arity) is left as its first binding - the fragment this
// kernel covers never overloads a symbol at two arities within one
// theorem.
func registerSymbols(in *intern.Interner, ctx Context, premises []ast.LogicExpr, goal ast.LogicExpr) Context {
	var walkTerm func(ast.Term)
	walkTerm = func(t ast.Term) {
		switch v := t.(type) {
		case ast.Constant:
			name := in.Resolve(v.Name)
			if _, ok := ctx[name]; !ok {
				ctx = ctx.With(name, Global{Name: "Entity"})
			}
		case ast.Function:
			name := in.Resolve(v.Name)
			if _, ok := ctx[name]; !ok {
				ctx = ctx.With(name, functionType(len(v.Args)))
			}
			for _, a := range v.Args {
				walkTerm(a)
			}
		}
	}
	var walk func(ast.LogicExpr)
	walk = func(e ast.LogicExpr) {
		switch v := e.(type) {
		case ast.Atom:
			name := in.Resolve(v.Name)
			if _, ok := ctx[name]; !ok {
				ctx = ctx.With(name, Sort{Kind: SortProp})
			}
		case ast.Predicate:
			name := in.Resolve(v.Name)
			if _, ok := ctx[name]; !ok {
				ctx = ctx.With(name, predicateType(len(v.Args)))
			}
			for _, a := range v.Args {
				walkTerm(a)
			}
		case ast.Identity:
			walkTerm(v.Left)
			walkTerm(v.Right)
		case ast.BinaryOp:
			walk(v.Left)
			walk(v.Right)
		case ast.UnaryOp:
			walk(v.Operand)
		case ast.Quantifier:
			walk(v.Body)
		}
	}
	for _, p := range premises {
		walk(p)
	}
	walk(goal)
	return ctx
}

// predicateType builds Pi(_:Entity). ... Pi(_:Entity). Prop for an arity-n
// predicate.
func predicateType(arity int) Term {
	t := Term(Sort{Kind: SortProp})
	for i := 0; i < arity; i++ {
		t = Pi{Param: "_", ParamType: Global{Name: "Entity"}, Body: t}
	}
	return t
}

// functionType builds Pi(_:Entity). ... Pi(_:Entity). Entity for an arity-n
// function symbol (a Skolem-style function over entities, as opposed to a
// Prop-valued predicate).
func functionType(arity int) Term {
	t := Term(Global{Name: "Entity"})
	for i := 0; i < arity; i++ {
		t = Pi{Param: "_", ParamType: Global{Name: "Entity"}, Body: t}
	}
	return t
}
