package codegen

import (
	"fmt"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// emitStmts lowers stmts to Go source, trying each peephole pattern at every
// position before falling back to per-statement lowering.
func emitStmts(p *printer, stmts []ast.Stmt, in *intern.Interner) {
	for i := 0; i < len(stmts); {
		if m, ok := tryPeephole(stmts, i, in); ok {
			p.write(m.code)
			i += m.consumed
			continue
		}
		emitStmt(p, stmts[i], in)
		i++
	}
}

func emitStmt(p *printer, s ast.Stmt, in *intern.Interner) {
	switch n := s.(type) {
	case ast.Let:
		p.line(fmt.Sprintf("%s := %s", in.Resolve(n.Var), exprGo(n.Value, in)))
	case ast.Set:
		p.line(fmt.Sprintf("%s = %s", in.Resolve(n.Var), exprGo(n.Value, in)))
	case ast.SetIndex:
		p.line(fmt.Sprintf("%s[%s] = %s", exprGo(n.Target, in), exprGo(n.Key, in), exprGo(n.Value, in)))
	case ast.SetField:
		p.line(fmt.Sprintf("%s.%s = %s", exprGo(n.Target, in), capitalize(in.Resolve(n.Field)), exprGo(n.Value, in)))
	case ast.If:
		p.line(fmt.Sprintf("if %s {", exprGo(n.Cond, in)))
		p.indented(func() { emitStmts(p, n.Then, in) })
		if len(n.Else) > 0 {
			p.line("} else {")
			p.indented(func() { emitStmts(p, n.Else, in) })
		}
		p.line("}")
	case ast.While:
		p.line(fmt.Sprintf("for %s {", exprGo(n.Cond, in)))
		p.indented(func() { emitStmts(p, n.Body, in) })
		p.line("}")
	case ast.Repeat:
		p.line(fmt.Sprintf("for _, %s := range %s {", in.Resolve(n.Pattern), exprGo(n.Iterable, in)))
		p.indented(func() { emitStmts(p, n.Body, in) })
		p.line("}")
	case ast.Zone:
		p.line(fmt.Sprintf("func() { // zone %s", in.Resolve(n.Name)))
		p.indented(func() { emitStmts(p, n.Body, in) })
		p.line("}()")
	case ast.Concurrent:
		p.line("{ // concurrent")
		p.indented(func() {
			for _, c := range n.Body {
				p.line("go func() {")
				p.indented(func() { emitStmt(p, c, in) })
				p.line("}()")
			}
		})
		p.line("}")
	case ast.Parallel:
		p.line("{ // parallel")
		p.indented(func() {
			p.line("var wg sync.WaitGroup")
			for _, c := range n.Body {
				p.line("wg.Add(1)")
				p.line("go func() {")
				p.indented(func() {
					p.line("defer wg.Done()")
					emitStmt(p, c, in)
				})
				p.line("}()")
			}
			p.line("wg.Wait()")
		})
		p.line("}")
	case ast.Show:
		p.line(fmt.Sprintf("fmt.Println(%s)", exprGo(n.Value, in)))
	case ast.Return:
		if n.Value == nil {
			p.line("return")
		} else {
			p.line(fmt.Sprintf("return %s", exprGo(n.Value, in)))
		}
	case ast.RuntimeAssert:
		p.line(fmt.Sprintf("if !(%s) { panic(%q) }", exprGo(n.Cond, in), n.Message))
	case ast.Give:
		p.line(fmt.Sprintf("_ = %s // given away", exprGo(n.Value, in)))
	case ast.Push:
		p.line(fmt.Sprintf("%s = append(%s, %s)", exprGo(n.Target, in), exprGo(n.Target, in), exprGo(n.Value, in)))
	case ast.Pop:
		p.line(fmt.Sprintf("%s := %s[len(%s)-1]", in.Resolve(n.Bind), exprGo(n.Target, in), exprGo(n.Target, in)))
		p.line(fmt.Sprintf("%s = %s[:len(%s)-1]", exprGo(n.Target, in), exprGo(n.Target, in), exprGo(n.Target, in)))
	case ast.Inspect:
		p.line(fmt.Sprintf("switch v := %s.(type) {", exprGo(n.Target, in)))
		for _, arm := range n.Arms {
			p.line(fmt.Sprintf("case %s:", exprGo(arm.Pattern, in)))
			p.indented(func() {
				p.line("_ = v")
				emitStmts(p, arm.Body, in)
			})
		}
		if n.HasOtherwise {
			p.line("default:")
			p.indented(func() { emitStmts(p, n.Otherwise, in) })
		}
		p.line("}")
	case ast.ReadFrom:
		p.line(fmt.Sprintf("%s := readFrom(%d)", in.Resolve(n.Bind), n.Source))
	case ast.WriteFile:
		p.line(fmt.Sprintf("writeFile(%s, %s)", exprGo(n.Path, in), exprGo(n.Data, in)))
	case ast.Mount:
		p.line(fmt.Sprintf("%s := mount(%s)", in.Resolve(n.Bind), exprGo(n.Path, in)))
	case ast.Sync:
		p.line(fmt.Sprintf("%s.Sync()", exprGo(n.Target, in)))
	case ast.Sleep:
		p.line(fmt.Sprintf("time.Sleep(time.Duration(%s) * time.Second)", exprGo(n.Duration, in)))
	case ast.Listen:
		p.line(fmt.Sprintf("%s := listen(%s)", in.Resolve(n.Bind), exprGo(n.Address, in)))
	case ast.ConnectTo:
		p.line(fmt.Sprintf("%s := connectTo(%s)", in.Resolve(n.Bind), exprGo(n.Address, in)))
	case ast.LaunchTask:
		p.line(fmt.Sprintf("go %s", exprGo(n.Call, in)))
	case ast.SendPipe:
		p.line(fmt.Sprintf("%s <- %s", exprGo(n.Channel, in), exprGo(n.Value, in)))
	case ast.ReceivePipe:
		p.line(fmt.Sprintf("%s := <-%s", in.Resolve(n.Bind), exprGo(n.Channel, in)))
	case ast.Select:
		p.line("select {")
		for _, arm := range n.Arms {
			p.line(fmt.Sprintf("case %s := <-%s:", in.Resolve(arm.Bind), exprGo(arm.Channel, in)))
			p.indented(func() { emitStmts(p, arm.Body, in) })
		}
		p.line("}")
	case ast.CrdtStmt:
		emitCrdtStmt(p, n, in)
	default:
		p.line("// unhandled statement")
	}
}

func emitCrdtStmt(p *printer, n ast.CrdtStmt, in *intern.Interner) {
	target := exprGo(n.Target, in)
	switch n.Op {
	case ast.CRDTIncrease:
		p.line(fmt.Sprintf("%s = %s.Increase(replicaID, uint64(%s))", target, target, exprGo(n.Value, in)))
	case ast.CRDTDecrease:
		p.line(fmt.Sprintf("%s = %s.Decrease(replicaID, uint64(%s))", target, target, exprGo(n.Value, in)))
	case ast.CRDTMerge:
		p.line(fmt.Sprintf("%s = %s.Merge(%s)", target, target, exprGo(n.Other, in)))
	}
}
