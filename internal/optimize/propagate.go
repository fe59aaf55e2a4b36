package optimize

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/samber/lo"
)

// Env maps a symbol to the literal value currently believed to hold for it.
type Env map[intern.Symbol]ast.Literal

func isCopyLiteral(l ast.Literal) bool {
	switch l.Kind {
	case ast.LitInt, ast.LitFloat, ast.LitBool, ast.LitNothing:
		return true
	}
	return false
}

// PropagateStmts threads env through stmts, substituting every read of a
// variable currently bound to a Copy-type literal and re-folding the result
// so propagation cascades ("Let x = 1. Let y = x + 1." collapses y to 2).
// Text literals are never propagated: substituting them would turn a move
// into an independent allocation and mask a use-after-move that C8's
// ownership pass needs to see. A variable ever used as a Set target,
// anywhere in stmts, is excluded from the start - it is not sound to
// propagate a binding that later changes.
func PropagateStmts(stmts []ast.Stmt, env Env) []ast.Stmt {
	excluded := collectSetTargets(stmts)
	return propagateBlock(stmts, env, excluded)
}

func collectSetTargets(stmts []ast.Stmt) map[intern.Symbol]bool {
	vars := gatherSetVars(stmts)
	return lo.SliceToMap(lo.Uniq(vars), func(s intern.Symbol) (intern.Symbol, bool) {
		return s, true
	})
}

func gatherSetVars(stmts []ast.Stmt) []intern.Symbol {
	var out []intern.Symbol
	for _, s := range stmts {
		switch n := s.(type) {
		case ast.Set:
			out = append(out, n.Var)
		case ast.If:
			out = append(out, gatherSetVars(n.Then)...)
			out = append(out, gatherSetVars(n.Else)...)
		case ast.While:
			out = append(out, gatherSetVars(n.Body)...)
		case ast.Repeat:
			out = append(out, gatherSetVars(n.Body)...)
		case ast.Zone:
			out = append(out, gatherSetVars(n.Body)...)
		case ast.Concurrent:
			out = append(out, gatherSetVars(n.Body)...)
		case ast.Parallel:
			out = append(out, gatherSetVars(n.Body)...)
		case ast.Inspect:
			for _, arm := range n.Arms {
				out = append(out, gatherSetVars(arm.Body)...)
			}
			out = append(out, gatherSetVars(n.Otherwise)...)
		}
	}
	return out
}

func cloneEnv(env Env) Env {
	out := make(Env, len(env))
	for k, v := range env {
		out[k] = v
	}
	return out
}

func propagateBlock(stmts []ast.Stmt, env Env, excluded map[intern.Symbol]bool) []ast.Stmt {
	out := make([]ast.Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = propagateStmt(s, env, excluded)
	}
	return out
}

func sub(e ast.Expr, env Env) ast.Expr { return foldExpr(substituteExpr(e, env)) }

func propagateStmt(s ast.Stmt, env Env, excluded map[intern.Symbol]bool) ast.Stmt {
	switch n := s.(type) {
	case ast.Let:
		n.Value = sub(n.Value, env)
		if lit, ok := n.Value.(ast.Literal); ok && isCopyLiteral(lit) && !excluded[n.Var] {
			env[n.Var] = lit
		} else {
			delete(env, n.Var)
		}
		return n
	case ast.Set:
		n.Value = sub(n.Value, env)
		delete(env, n.Var)
		return n
	case ast.SetIndex:
		n.Target = sub(n.Target, env)
		n.Key = sub(n.Key, env)
		n.Value = sub(n.Value, env)
		return n
	case ast.SetField:
		n.Target = sub(n.Target, env)
		n.Value = sub(n.Value, env)
		return n
	case ast.If:
		n.Cond = sub(n.Cond, env)
		n.Then = propagateBlock(n.Then, cloneEnv(env), excluded)
		n.Else = propagateBlock(n.Else, cloneEnv(env), excluded)
		return n
	case ast.While:
		n.Cond = sub(n.Cond, env)
		if n.Decreasing != nil {
			n.Decreasing = sub(n.Decreasing, env)
		}
		n.Body = propagateBlock(n.Body, cloneEnv(env), excluded)
		return n
	case ast.Repeat:
		n.Iterable = sub(n.Iterable, env)
		n.Body = propagateBlock(n.Body, cloneEnv(env), excluded)
		return n
	case ast.Zone:
		if n.Capacity != nil {
			n.Capacity = sub(n.Capacity, env)
		}
		// Not merged back: a zone's bindings never escape to the outer env.
		n.Body = propagateBlock(n.Body, cloneEnv(env), excluded)
		return n
	case ast.Concurrent:
		n.Body = propagateBlock(n.Body, cloneEnv(env), excluded)
		return n
	case ast.Parallel:
		n.Body = propagateBlock(n.Body, cloneEnv(env), excluded)
		return n
	case ast.FunctionDef:
		n.Body = PropagateStmts(n.Body, Env{})
		return n
	case ast.Show:
		n.Value = sub(n.Value, env)
		return n
	case ast.Return:
		if n.Value != nil {
			n.Value = sub(n.Value, env)
		}
		return n
	case ast.RuntimeAssert:
		n.Cond = sub(n.Cond, env)
		return n
	case ast.Push:
		n.Target = sub(n.Target, env)
		n.Value = sub(n.Value, env)
		return n
	case ast.Pop:
		n.Target = sub(n.Target, env)
		return n
	case ast.Inspect:
		n.Target = sub(n.Target, env)
		arms := make([]ast.InspectArm, len(n.Arms))
		for i, arm := range n.Arms {
			arm.Body = propagateBlock(arm.Body, cloneEnv(env), excluded)
			arms[i] = arm
		}
		n.Arms = arms
		n.Otherwise = propagateBlock(n.Otherwise, cloneEnv(env), excluded)
		return n
	case ast.CrdtStmt:
		n.Target = sub(n.Target, env)
		if n.Value != nil {
			n.Value = sub(n.Value, env)
		}
		if n.Other != nil {
			n.Other = sub(n.Other, env)
		}
		return n
	default:
		return s
	}
}

// substituteExpr replaces every Identifier bound in env with its literal.
// Index and Slice subtrees are left untouched (not even recursed into) so
// the pattern-detection codegen passes still see the original variable
// shape they look for (e.g. the for-range/vec-fill peepholes in C10).
func substituteExpr(e ast.Expr, env Env) ast.Expr {
	switch n := e.(type) {
	case ast.Identifier:
		if lit, ok := env[n.Name]; ok {
			return lit
		}
		return n
	case ast.Index, ast.Slice:
		return n
	case ast.ExprBinaryOp:
		n.Left = substituteExpr(n.Left, env)
		n.Right = substituteExpr(n.Right, env)
		return n
	case ast.Call:
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = substituteExpr(a, env)
		}
		n.Args = args
		return n
	case ast.CallExpr:
		n.Callee = substituteExpr(n.Callee, env)
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = substituteExpr(a, env)
		}
		n.Args = args
		return n
	case ast.FieldAccess:
		n.Target = substituteExpr(n.Target, env)
		return n
	case ast.New:
		fields := make([]ast.InitField, len(n.InitFields))
		for i, f := range n.InitFields {
			f.Value = substituteExpr(f.Value, env)
			fields[i] = f
		}
		n.InitFields = fields
		return n
	case ast.NewVariant:
		fields := make([]ast.InitField, len(n.Fields))
		for i, f := range n.Fields {
			f.Value = substituteExpr(f.Value, env)
			fields[i] = f
		}
		n.Fields = fields
		return n
	case ast.List:
		elems := make([]ast.Expr, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = substituteExpr(el, env)
		}
		n.Elements = elems
		return n
	case ast.Tuple:
		elems := make([]ast.Expr, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = substituteExpr(el, env)
		}
		n.Elements = elems
		return n
	case ast.Range:
		n.Low = substituteExpr(n.Low, env)
		n.High = substituteExpr(n.High, env)
		return n
	case ast.Copy:
		n.Target = substituteExpr(n.Target, env)
		return n
	case ast.Length:
		n.Target = substituteExpr(n.Target, env)
		return n
	case ast.Contains:
		n.Collection = substituteExpr(n.Collection, env)
		n.Item = substituteExpr(n.Item, env)
		return n
	case ast.Union:
		n.Left = substituteExpr(n.Left, env)
		n.Right = substituteExpr(n.Right, env)
		return n
	case ast.Intersection:
		n.Left = substituteExpr(n.Left, env)
		n.Right = substituteExpr(n.Right, env)
		return n
	case ast.ManifestOf:
		n.Target = substituteExpr(n.Target, env)
		return n
	case ast.ChunkAt:
		n.Target = substituteExpr(n.Target, env)
		n.Index = substituteExpr(n.Index, env)
		return n
	case ast.OptionSome:
		n.Value = substituteExpr(n.Value, env)
		return n
	case ast.WithCapacity:
		n.Capacity = substituteExpr(n.Capacity, env)
		return n
	case ast.InterpolatedString:
		parts := make([]ast.InterpolatedPart, len(n.Parts))
		for i, p := range n.Parts {
			if p.Expr != nil {
				p.Expr = substituteExpr(p.Expr, env)
			}
			parts[i] = p
		}
		n.Parts = parts
		return n
	case ast.Escape:
		n.Target = substituteExpr(n.Target, env)
		return n
	case ast.Closure:
		// A closure's body is its own scope; no substitution crosses
		// into it.
		return n
	default:
		return e
	}
}
