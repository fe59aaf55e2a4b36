// Package optimize implements the three AST-to-AST passes the compiler
// runs between semantic analysis and code generation: constant folding,
// constant propagation, and dead-code elimination. Each pass returns a
// freshly built statement list rather than mutating its input in place.
package optimize

import "github.com/logos-lang/logos/internal/ast"

// FoldStmts evaluates arithmetic, comparison, boolean, and string-concat
// operations whose operands are already literals, recursively, everywhere
// they occur in stmts. Integer arithmetic wraps on overflow (int64's native
// behavior); division by zero is left unfolded rather than producing a
// fabricated result.
func FoldStmts(stmts []ast.Stmt) []ast.Stmt {
	out := make([]ast.Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = foldStmt(s)
	}
	return out
}

func foldStmt(s ast.Stmt) ast.Stmt {
	switch n := s.(type) {
	case ast.Let:
		n.Value = foldExpr(n.Value)
		return n
	case ast.Set:
		n.Value = foldExpr(n.Value)
		return n
	case ast.SetIndex:
		n.Target = foldExpr(n.Target)
		n.Key = foldExpr(n.Key)
		n.Value = foldExpr(n.Value)
		return n
	case ast.SetField:
		n.Target = foldExpr(n.Target)
		n.Value = foldExpr(n.Value)
		return n
	case ast.If:
		n.Cond = foldExpr(n.Cond)
		n.Then = FoldStmts(n.Then)
		n.Else = FoldStmts(n.Else)
		return n
	case ast.While:
		n.Cond = foldExpr(n.Cond)
		if n.Decreasing != nil {
			n.Decreasing = foldExpr(n.Decreasing)
		}
		n.Body = FoldStmts(n.Body)
		return n
	case ast.Repeat:
		n.Iterable = foldExpr(n.Iterable)
		n.Body = FoldStmts(n.Body)
		return n
	case ast.FunctionDef:
		n.Body = FoldStmts(n.Body)
		return n
	case ast.Zone:
		if n.Capacity != nil {
			n.Capacity = foldExpr(n.Capacity)
		}
		n.Body = FoldStmts(n.Body)
		return n
	case ast.Concurrent:
		n.Body = FoldStmts(n.Body)
		return n
	case ast.Parallel:
		n.Body = FoldStmts(n.Body)
		return n
	case ast.Show:
		n.Value = foldExpr(n.Value)
		return n
	case ast.Return:
		if n.Value != nil {
			n.Value = foldExpr(n.Value)
		}
		return n
	case ast.RuntimeAssert:
		n.Cond = foldExpr(n.Cond)
		return n
	case ast.Push:
		n.Target = foldExpr(n.Target)
		n.Value = foldExpr(n.Value)
		return n
	case ast.Pop:
		n.Target = foldExpr(n.Target)
		return n
	case ast.Inspect:
		n.Target = foldExpr(n.Target)
		arms := make([]ast.InspectArm, len(n.Arms))
		for i, arm := range n.Arms {
			arm.Body = FoldStmts(arm.Body)
			arms[i] = arm
		}
		n.Arms = arms
		n.Otherwise = FoldStmts(n.Otherwise)
		return n
	case ast.CrdtStmt:
		n.Target = foldExpr(n.Target)
		if n.Value != nil {
			n.Value = foldExpr(n.Value)
		}
		if n.Other != nil {
			n.Other = foldExpr(n.Other)
		}
		return n
	default:
		return s
	}
}

func foldExpr(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case ast.ExprBinaryOp:
		n.Left = foldExpr(n.Left)
		n.Right = foldExpr(n.Right)
		if folded, ok := foldBinary(n); ok {
			return folded
		}
		return n
	case ast.Call:
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = foldExpr(a)
		}
		n.Args = args
		return n
	case ast.CallExpr:
		n.Callee = foldExpr(n.Callee)
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = foldExpr(a)
		}
		n.Args = args
		return n
	case ast.Index:
		n.Target = foldExpr(n.Target)
		n.Key = foldExpr(n.Key)
		return n
	case ast.Slice:
		n.Target = foldExpr(n.Target)
		if n.Low != nil {
			n.Low = foldExpr(n.Low)
		}
		if n.High != nil {
			n.High = foldExpr(n.High)
		}
		return n
	case ast.FieldAccess:
		n.Target = foldExpr(n.Target)
		return n
	case ast.New:
		fields := make([]ast.InitField, len(n.InitFields))
		for i, f := range n.InitFields {
			f.Value = foldExpr(f.Value)
			fields[i] = f
		}
		n.InitFields = fields
		return n
	case ast.NewVariant:
		fields := make([]ast.InitField, len(n.Fields))
		for i, f := range n.Fields {
			f.Value = foldExpr(f.Value)
			fields[i] = f
		}
		n.Fields = fields
		return n
	case ast.List:
		elems := make([]ast.Expr, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = foldExpr(el)
		}
		n.Elements = elems
		return n
	case ast.Tuple:
		elems := make([]ast.Expr, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = foldExpr(el)
		}
		n.Elements = elems
		return n
	case ast.Range:
		n.Low = foldExpr(n.Low)
		n.High = foldExpr(n.High)
		return n
	case ast.Closure:
		n.Body = FoldStmts(n.Body)
		return n
	case ast.Copy:
		n.Target = foldExpr(n.Target)
		return n
	case ast.Length:
		n.Target = foldExpr(n.Target)
		return n
	case ast.Contains:
		n.Collection = foldExpr(n.Collection)
		n.Item = foldExpr(n.Item)
		return n
	case ast.Union:
		n.Left = foldExpr(n.Left)
		n.Right = foldExpr(n.Right)
		return n
	case ast.Intersection:
		n.Left = foldExpr(n.Left)
		n.Right = foldExpr(n.Right)
		return n
	case ast.ManifestOf:
		n.Target = foldExpr(n.Target)
		return n
	case ast.ChunkAt:
		n.Target = foldExpr(n.Target)
		n.Index = foldExpr(n.Index)
		return n
	case ast.OptionSome:
		n.Value = foldExpr(n.Value)
		return n
	case ast.WithCapacity:
		n.Capacity = foldExpr(n.Capacity)
		return n
	case ast.InterpolatedString:
		parts := make([]ast.InterpolatedPart, len(n.Parts))
		for i, p := range n.Parts {
			if p.Expr != nil {
				p.Expr = foldExpr(p.Expr)
			}
			parts[i] = p
		}
		n.Parts = parts
		return n
	case ast.Escape:
		n.Target = foldExpr(n.Target)
		return n
	default:
		return e
	}
}

func asLiteral(e ast.Expr) (ast.Literal, bool) {
	l, ok := e.(ast.Literal)
	return l, ok
}

func numericLit(l ast.Literal) bool {
	return l.Kind == ast.LitInt || l.Kind == ast.LitFloat
}

func foldBinary(n ast.ExprBinaryOp) (ast.Expr, bool) {
	left, lok := asLiteral(n.Left)
	right, rok := asLiteral(n.Right)
	if !lok || !rok {
		return nil, false
	}
	switch n.Op {
	case "+", "-", "*", "/":
		return foldArith(n.Op, left, right)
	case "==", "!=", "<", ">", "<=", ">=":
		return foldCompare(n.Op, left, right)
	case "and", "or":
		return foldBool(n.Op, left, right)
	default:
		return nil, false
	}
}

func foldArith(op string, l, r ast.Literal) (ast.Expr, bool) {
	if op == "+" && l.Kind == ast.LitString && r.Kind == ast.LitString {
		return ast.Literal{Kind: ast.LitString, Str: l.Str + r.Str}, true
	}
	if l.Kind == ast.LitInt && r.Kind == ast.LitInt {
		a, b := int64(l.Num), int64(r.Num)
		switch op {
		case "+":
			return ast.Literal{Kind: ast.LitInt, Num: float64(a + b)}, true
		case "-":
			return ast.Literal{Kind: ast.LitInt, Num: float64(a - b)}, true
		case "*":
			return ast.Literal{Kind: ast.LitInt, Num: float64(a * b)}, true
		case "/":
			if b == 0 {
				return nil, false
			}
			return ast.Literal{Kind: ast.LitInt, Num: float64(a / b)}, true
		}
	}
	if numericLit(l) && numericLit(r) {
		a, b := l.Num, r.Num
		switch op {
		case "+":
			return ast.Literal{Kind: ast.LitFloat, Num: a + b}, true
		case "-":
			return ast.Literal{Kind: ast.LitFloat, Num: a - b}, true
		case "*":
			return ast.Literal{Kind: ast.LitFloat, Num: a * b}, true
		case "/":
			if b == 0 {
				return nil, false
			}
			return ast.Literal{Kind: ast.LitFloat, Num: a / b}, true
		}
	}
	return nil, false
}

func foldCompare(op string, l, r ast.Literal) (ast.Expr, bool) {
	var cmp int
	switch {
	case numericLit(l) && numericLit(r):
		switch {
		case l.Num < r.Num:
			cmp = -1
		case l.Num > r.Num:
			cmp = 1
		}
	case l.Kind == ast.LitString && r.Kind == ast.LitString:
		switch {
		case l.Str < r.Str:
			cmp = -1
		case l.Str > r.Str:
			cmp = 1
		}
	case l.Kind == ast.LitBool && r.Kind == ast.LitBool:
		if op != "==" && op != "!=" {
			return nil, false
		}
		eq := l.Bool == r.Bool
		return ast.Literal{Kind: ast.LitBool, Bool: eq == (op == "==")}, true
	default:
		return nil, false
	}
	switch op {
	case "==":
		return ast.Literal{Kind: ast.LitBool, Bool: cmp == 0}, true
	case "!=":
		return ast.Literal{Kind: ast.LitBool, Bool: cmp != 0}, true
	case "<":
		return ast.Literal{Kind: ast.LitBool, Bool: cmp < 0}, true
	case ">":
		return ast.Literal{Kind: ast.LitBool, Bool: cmp > 0}, true
	case "<=":
		return ast.Literal{Kind: ast.LitBool, Bool: cmp <= 0}, true
	case ">=":
		return ast.Literal{Kind: ast.LitBool, Bool: cmp >= 0}, true
	}
	return nil, false
}

func foldBool(op string, l, r ast.Literal) (ast.Expr, bool) {
	if l.Kind != ast.LitBool || r.Kind != ast.LitBool {
		return nil, false
	}
	switch op {
	case "and":
		return ast.Literal{Kind: ast.LitBool, Bool: l.Bool && r.Bool}, true
	case "or":
		return ast.Literal{Kind: ast.LitBool, Bool: l.Bool || r.Bool}, true
	}
	return nil, false
}
