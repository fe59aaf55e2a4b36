package verify

import (
	"reflect"

	"github.com/logos-lang/logos/internal/intern"
)

// Env is the set of `var = value` assumptions a Let-statement accumulates
// as the verifier walks a function body symbolically.
type Env map[intern.Symbol]Node

// Eval folds node under env as far as it can, substituting every Var it
// has an assumption for. It returns ok=false when the result still
// contains a free Var or an Uninterpreted application the IR cannot
// reduce further - the caller treats that as "cannot be proved", not as
// "false", so the pass never reports a violation it can't actually show.
func Eval(node Node, env Env) (Const, bool) {
	n := substitute(node, env)
	return fold(n)
}

// Assign resolves valueExpr against env's current bindings (so a
// self-referential assignment like "Set n to n - 1" captures n's old
// value rather than storing a node that would recurse through itself on
// the next substitution) and stores the result under sym, or clears sym
// from env if valueExpr falls outside the restricted subset.
func Assign(env Env, sym intern.Symbol, valueExpr Node, ok bool) {
	if !ok {
		delete(env, sym)
		return
	}
	env[sym] = substitute(valueExpr, env)
}

func substitute(node Node, env Env) Node {
	switch n := node.(type) {
	case Var:
		if v, ok := env[n.Name]; ok {
			return substitute(v, env)
		}
		return n
	case App:
		args := make([]Node, len(n.Args))
		for i, a := range n.Args {
			args[i] = substitute(a, env)
		}
		return App{Op: n.Op, Args: args}
	case Uninterpreted:
		args := make([]Node, len(n.Args))
		for i, a := range n.Args {
			args[i] = substitute(a, env)
		}
		return Uninterpreted{Name: n.Name, Args: args}
	default:
		return node
	}
}

func fold(node Node) (Const, bool) {
	switch n := node.(type) {
	case Const:
		return n, true
	case App:
		if (n.Op == OpEq || n.Op == OpNeq) && len(n.Args) == 2 && equalNodes(n.Args[0], n.Args[1]) {
			return Const{Sort: SortBool, B: n.Op == OpEq}, true
		}
		args := make([]Const, len(n.Args))
		for i, a := range n.Args {
			c, ok := fold(a)
			if !ok {
				return Const{}, false
			}
			args[i] = c
		}
		return foldApp(n.Op, args)
	case Uninterpreted:
		// Two syntactically identical applications of the same
		// uninterpreted function are equal; beyond that, nothing is
		// known about its value.
		return Const{}, false
	default:
		return Const{}, false
	}
}

func foldApp(op Op, args []Const) (Const, bool) {
	switch op {
	case OpAdd:
		return Const{Sort: SortInt, I: args[0].I + args[1].I}, true
	case OpSub:
		return Const{Sort: SortInt, I: args[0].I - args[1].I}, true
	case OpMul:
		return Const{Sort: SortInt, I: args[0].I * args[1].I}, true
	case OpDiv:
		if args[1].I == 0 {
			// Division by zero is left symbolic, per §4.9's constant-
			// folding rule reused here.
			return Const{}, false
		}
		return Const{Sort: SortInt, I: args[0].I / args[1].I}, true
	case OpEq:
		return Const{Sort: SortBool, B: args[0] == args[1]}, true
	case OpNeq:
		return Const{Sort: SortBool, B: args[0] != args[1]}, true
	case OpLt:
		return Const{Sort: SortBool, B: args[0].I < args[1].I}, true
	case OpGt:
		return Const{Sort: SortBool, B: args[0].I > args[1].I}, true
	case OpLte:
		return Const{Sort: SortBool, B: args[0].I <= args[1].I}, true
	case OpGte:
		return Const{Sort: SortBool, B: args[0].I >= args[1].I}, true
	case OpAnd:
		return Const{Sort: SortBool, B: args[0].B && args[1].B}, true
	case OpOr:
		return Const{Sort: SortBool, B: args[0].B || args[1].B}, true
	case OpNot:
		return Const{Sort: SortBool, B: !args[0].B}, true
	case OpImplies:
		return Const{Sort: SortBool, B: !args[0].B || args[1].B}, true
	default:
		return Const{}, false
	}
}

// equalNodes reports whether two IR nodes are structurally identical,
// used to recognize "the same uninterpreted application" without
// evaluating it.
func equalNodes(a, b Node) bool { return reflect.DeepEqual(a, b) }
