package codegen

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// mutableBindings collects every identifier symbol that is the target of a
// Set, Push, Pop (target and bound name), IncreaseCrdt/DecreaseCrdt
// (CrdtStmt), SetIndex, or SetField, recursively through nested blocks and
// inspect arm bodies, per §4.10's mutability-inference rule. logos renders
// every binding with Go's `:=`/plain var either way (Go has no separate mut
// keyword), so the generator itself does not consult this set when
// emitting code.
func mutableBindings(body []ast.Stmt) map[intern.Symbol]bool {
	out := map[intern.Symbol]bool{}
	var targetSym func(e ast.Expr) (intern.Symbol, bool)
	targetSym = func(e ast.Expr) (intern.Symbol, bool) {
		switch n := e.(type) {
		case ast.Identifier:
			return n.Name, true
		case ast.Index:
			return targetSym(n.Target)
		case ast.FieldAccess:
			return targetSym(n.Target)
		default:
			return 0, false
		}
	}
	var walk func([]ast.Stmt)
	walk = func(ss []ast.Stmt) {
		for _, s := range ss {
			switch n := s.(type) {
			case ast.Set:
				out[n.Var] = true
			case ast.SetIndex:
				if sym, ok := targetSym(n.Target); ok {
					out[sym] = true
				}
			case ast.SetField:
				if sym, ok := targetSym(n.Target); ok {
					out[sym] = true
				}
			case ast.Push:
				if sym, ok := targetSym(n.Target); ok {
					out[sym] = true
				}
			case ast.Pop:
				if sym, ok := targetSym(n.Target); ok {
					out[sym] = true
				}
				out[n.Bind] = true
			case ast.CrdtStmt:
				if sym, ok := targetSym(n.Target); ok {
					out[sym] = true
				}
			case ast.If:
				walk(n.Then)
				walk(n.Else)
			case ast.While:
				walk(n.Body)
			case ast.Repeat:
				walk(n.Body)
			case ast.Zone:
				walk(n.Body)
			case ast.Concurrent:
				walk(n.Body)
			case ast.Parallel:
				walk(n.Body)
			case ast.Inspect:
				for _, arm := range n.Arms {
					walk(arm.Body)
				}
				walk(n.Otherwise)
			case ast.FunctionDef:
				// A nested function's own assignments belong to its own
				// scope, not the enclosing body's binding set.
			}
		}
	}
	walk(body)
	return out
}
