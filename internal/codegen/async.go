package codegen

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// stmtInducesAsync reports whether s directly requires the function
// containing it to run asynchronously: Sleep, file I/O, network, the
// concurrency primitives, CRDT sync, and Mount all suspend in the
// interpreter and, in compiled Go, correspond to an await point.
func stmtInducesAsync(s ast.Stmt) bool {
	switch s.(type) {
	case ast.Sleep, ast.ReadFrom, ast.WriteFile, ast.Mount, ast.Sync,
		ast.Listen, ast.ConnectTo, ast.LaunchTask, ast.SendPipe,
		ast.ReceivePipe, ast.Select:
		return true
	}
	return false
}

func bodyInducesAsync(body []ast.Stmt) bool {
	for _, s := range body {
		if stmtInducesAsync(s) {
			return true
		}
		switch n := s.(type) {
		case ast.If:
			if bodyInducesAsync(n.Then) || bodyInducesAsync(n.Else) {
				return true
			}
		case ast.While:
			if bodyInducesAsync(n.Body) {
				return true
			}
		case ast.Repeat:
			if bodyInducesAsync(n.Body) {
				return true
			}
		case ast.Zone:
			if bodyInducesAsync(n.Body) {
				return true
			}
		case ast.Inspect:
			for _, arm := range n.Arms {
				if bodyInducesAsync(arm.Body) {
					return true
				}
			}
			if bodyInducesAsync(n.Otherwise) {
				return true
			}
		}
	}
	return false
}

// callees returns every function name s calls, directly or in a nested
// block, so async-ness can propagate along the call graph to a fixed point.
func callees(body []ast.Stmt) []intern.Symbol {
	var out []intern.Symbol
	var walkExpr func(e ast.Expr)
	walkExpr = func(e ast.Expr) {
		switch n := e.(type) {
		case ast.Call:
			out = append(out, n.Callee)
			for _, a := range n.Args {
				walkExpr(a)
			}
		case ast.ExprBinaryOp:
			walkExpr(n.Left)
			walkExpr(n.Right)
		case ast.CallExpr:
			walkExpr(n.Callee)
			for _, a := range n.Args {
				walkExpr(a)
			}
		}
	}
	var walk func([]ast.Stmt)
	walk = func(ss []ast.Stmt) {
		for _, s := range ss {
			switch n := s.(type) {
			case ast.Let:
				walkExpr(n.Value)
			case ast.Set:
				walkExpr(n.Value)
			case ast.Show:
				walkExpr(n.Value)
			case ast.Return:
				if n.Value != nil {
					walkExpr(n.Value)
				}
			case ast.If:
				walkExpr(n.Cond)
				walk(n.Then)
				walk(n.Else)
			case ast.While:
				walkExpr(n.Cond)
				walk(n.Body)
			case ast.Repeat:
				walk(n.Body)
			case ast.Zone:
				walk(n.Body)
			case ast.Inspect:
				for _, arm := range n.Arms {
					walk(arm.Body)
				}
				walk(n.Otherwise)
			}
		}
	}
	walk(body)
	return out
}

// asyncFunctions computes, to a fixed point, the set of functions that must
// be emitted as async: those with a direct async-inducing statement, plus
// any function that calls one (transitively), per §4.10.
func asyncFunctions(funcs []ast.FunctionDef) map[intern.Symbol]bool {
	async := map[intern.Symbol]bool{}
	byName := map[intern.Symbol]ast.FunctionDef{}
	for _, f := range funcs {
		byName[f.Name] = f
		if bodyInducesAsync(f.Body) {
			async[f.Name] = true
		}
	}
	for changed := true; changed; {
		changed = false
		for _, f := range funcs {
			if async[f.Name] {
				continue
			}
			for _, callee := range callees(f.Body) {
				if async[callee] {
					async[f.Name] = true
					changed = true
					break
				}
			}
		}
	}
	return async
}
