package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

var binOpGo = map[string]string{
	"+": "+", "-": "-", "*": "*", "/": "/",
	"==": "==", "!=": "!=", "<": "<", ">": ">", "<=": "<=", ">=": ">=",
	"and": "&&", "or": "||",
}

// exprGo renders an Expr as a Go expression string.
func exprGo(e ast.Expr, in *intern.Interner) string {
	switch n := e.(type) {
	case ast.Literal:
		switch n.Kind {
		case ast.LitInt:
			return strconv.FormatInt(int64(n.Num), 10)
		case ast.LitFloat:
			return strconv.FormatFloat(n.Num, 'g', -1, 64)
		case ast.LitString:
			return strconv.Quote(n.Str)
		case ast.LitBool:
			return strconv.FormatBool(n.Bool)
		case ast.LitChar:
			return strconv.QuoteRune([]rune(n.Str)[0])
		case ast.LitNothing:
			return "struct{}{}"
		}
		return "nil"
	case ast.Identifier:
		return in.Resolve(n.Name)
	case ast.ExprBinaryOp:
		op, ok := binOpGo[n.Op]
		if !ok {
			op = n.Op
		}
		return fmt.Sprintf("(%s %s %s)", exprGo(n.Left, in), op, exprGo(n.Right, in))
	case ast.Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = exprGo(a, in)
		}
		return fmt.Sprintf("%s(%s)", in.Resolve(n.Callee), strings.Join(args, ", "))
	case ast.CallExpr:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = exprGo(a, in)
		}
		return fmt.Sprintf("%s(%s)", exprGo(n.Callee, in), strings.Join(args, ", "))
	case ast.Index:
		return fmt.Sprintf("%s[%s]", exprGo(n.Target, in), exprGo(n.Key, in))
	case ast.Slice:
		low, high := "", ""
		if n.Low != nil {
			low = exprGo(n.Low, in)
		}
		if n.High != nil {
			high = exprGo(n.High, in)
		}
		return fmt.Sprintf("%s[%s:%s]", exprGo(n.Target, in), low, high)
	case ast.FieldAccess:
		return fmt.Sprintf("%s.%s", exprGo(n.Target, in), capitalize(in.Resolve(n.Field)))
	case ast.New:
		fields := make([]string, len(n.InitFields))
		for i, f := range n.InitFields {
			fields[i] = fmt.Sprintf("%s: %s", capitalize(in.Resolve(f.Name)), exprGo(f.Value, in))
		}
		return fmt.Sprintf("%s{%s}", capitalize(in.Resolve(n.TypeName)), strings.Join(fields, ", "))
	case ast.NewVariant:
		fields := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = fmt.Sprintf("%s: %s", capitalize(in.Resolve(f.Name)), exprGo(f.Value, in))
		}
		vname := capitalize(in.Resolve(n.TypeName)) + capitalize(in.Resolve(n.VariantName))
		return fmt.Sprintf("%s{%s}", vname, strings.Join(fields, ", "))
	case ast.List:
		elems := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = exprGo(el, in)
		}
		return fmt.Sprintf("[]any{%s}", strings.Join(elems, ", "))
	case ast.Tuple:
		elems := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = exprGo(el, in)
		}
		return fmt.Sprintf("(%s)", strings.Join(elems, ", "))
	case ast.Range:
		incl := ""
		if n.Inclusive {
			incl = "="
		}
		return fmt.Sprintf("%s..%s%s", exprGo(n.Low, in), incl, exprGo(n.High, in))
	case ast.Copy:
		return exprGo(n.Target, in)
	case ast.Length:
		return fmt.Sprintf("len(%s)", exprGo(n.Target, in))
	case ast.Contains:
		return fmt.Sprintf("contains(%s, %s)", exprGo(n.Collection, in), exprGo(n.Item, in))
	case ast.Union:
		return fmt.Sprintf("union(%s, %s)", exprGo(n.Left, in), exprGo(n.Right, in))
	case ast.Intersection:
		return fmt.Sprintf("intersection(%s, %s)", exprGo(n.Left, in), exprGo(n.Right, in))
	case ast.ManifestOf:
		return fmt.Sprintf("%s.Manifest()", exprGo(n.Target, in))
	case ast.ChunkAt:
		return fmt.Sprintf("%s[%s]", exprGo(n.Target, in), exprGo(n.Index, in))
	case ast.OptionSome:
		inner := exprGo(n.Value, in)
		return fmt.Sprintf("func() *any { v := any(%s); return &v }()", inner)
	case ast.OptionNone:
		return "nil"
	case ast.WithCapacity:
		return fmt.Sprintf("make([]any, 0, %s)", exprGo(n.Capacity, in))
	case ast.InterpolatedString:
		var parts []string
		var args []string
		for _, part := range n.Parts {
			if part.Expr != nil {
				parts = append(parts, "%v")
				args = append(args, exprGo(part.Expr, in))
			} else {
				parts = append(parts, strings.ReplaceAll(part.Literal, "%", "%%"))
			}
		}
		all := append([]string{strconv.Quote(strings.Join(parts, ""))}, args...)
		return fmt.Sprintf("fmt.Sprintf(%s)", strings.Join(all, ", "))
	case ast.Escape:
		return exprGo(n.Target, in)
	case ast.Closure:
		var b strings.Builder
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = in.Resolve(p) + " any"
		}
		b.WriteString(fmt.Sprintf("func(%s) any {\n", strings.Join(params, ", ")))
		p := newPrinter()
		p.indent++
		emitStmts(p, n.Body, in)
		b.WriteString(p.String())
		b.WriteString("}")
		return b.String()
	default:
		return "nil /* unhandled expr */"
	}
}
