package ownership

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// identifiers collects every Identifier symbol reachable in e.
func identifiers(e ast.Expr) []intern.Symbol {
	var out []intern.Symbol
	var walk func(ast.Expr)
	walk = func(e ast.Expr) {
		if e == nil {
			return
		}
		switch n := e.(type) {
		case ast.Identifier:
			out = append(out, n.Name)
		case ast.ExprBinaryOp:
			walk(n.Left)
			walk(n.Right)
		case ast.Call:
			for _, arg := range n.Args {
				walk(arg)
			}
		case ast.CallExpr:
			walk(n.Callee)
			for _, arg := range n.Args {
				walk(arg)
			}
		case ast.Index:
			walk(n.Target)
			walk(n.Key)
		case ast.Slice:
			walk(n.Target)
			walk(n.Low)
			walk(n.High)
		case ast.FieldAccess:
			walk(n.Target)
		case ast.New:
			for _, f := range n.InitFields {
				walk(f.Value)
			}
		case ast.NewVariant:
			for _, f := range n.Fields {
				walk(f.Value)
			}
		case ast.List:
			for _, el := range n.Elements {
				walk(el)
			}
		case ast.Tuple:
			for _, el := range n.Elements {
				walk(el)
			}
		case ast.Range:
			walk(n.Low)
			walk(n.High)
		case ast.Copy:
			walk(n.Target)
		case ast.Length:
			walk(n.Target)
		case ast.Contains:
			walk(n.Collection)
			walk(n.Item)
		case ast.Union:
			walk(n.Left)
			walk(n.Right)
		case ast.Intersection:
			walk(n.Left)
			walk(n.Right)
		case ast.ManifestOf:
			walk(n.Target)
		case ast.ChunkAt:
			walk(n.Target)
			walk(n.Index)
		case ast.OptionSome:
			walk(n.Value)
		case ast.WithCapacity:
			walk(n.Capacity)
		case ast.InterpolatedString:
			for _, part := range n.Parts {
				walk(part.Expr)
			}
		case ast.Escape:
			walk(n.Target)
		}
	}
	walk(e)
	return out
}
