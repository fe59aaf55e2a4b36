package codegen

import (
	"fmt"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// peepholeMatch is returned by a pattern detector: the Go source for the
// recognized shape and how many leading statements of the input it
// consumed. consumed == 0 means "no match."
type peepholeMatch struct {
	code     string
	consumed int
}

// tryPeephole tries each recognized loop shape against stmts starting at
// index i, in the order spec.md names them plus the two recovered from
// original_source/ (counting-loop, then accumulator-reduce, since every
// counting loop also has the accumulator shape). The first match wins;
// naive statement-by-statement lowering is the caller's fallback.
func tryPeephole(stmts []ast.Stmt, i int, in *intern.Interner) (peepholeMatch, bool) {
	for _, detector := range []func([]ast.Stmt, int, *intern.Interner) (peepholeMatch, bool){
		tryForRange,
		tryVecFill,
		tryAdjacentSwap,
		tryCountingLoop,
		tryAccumulatorReduce,
	} {
		if m, ok := detector(stmts, i, in); ok {
			return m, true
		}
	}
	return peepholeMatch{}, false
}

// tryForRange matches:
//
//	Let i = n. While i <= m: <body>. Set i to i + 1.
//
// with the increment as body's last statement and i not Set anywhere else
// in body, lowering to a Go three-clause for-loop over [n, m]. Per §4.10 the
// post-loop value of i is max(n, m+1); the loop's own i is scoped to the for
// statement, so i is redeclared after the loop with that value.
func tryForRange(stmts []ast.Stmt, i int, in *intern.Interner) (peepholeMatch, bool) {
	if i+1 >= len(stmts) {
		return peepholeMatch{}, false
	}
	let, ok := stmts[i].(ast.Let)
	if !ok {
		return peepholeMatch{}, false
	}
	while, ok := stmts[i+1].(ast.While)
	if !ok || len(while.Body) == 0 {
		return peepholeMatch{}, false
	}
	cond, ok := while.Cond.(ast.ExprBinaryOp)
	if !ok || cond.Op != "<=" {
		return peepholeMatch{}, false
	}
	condVar, ok := cond.Left.(ast.Identifier)
	if !ok || condVar.Name != let.Var {
		return peepholeMatch{}, false
	}
	last := while.Body[len(while.Body)-1]
	set, ok := last.(ast.Set)
	if !ok || set.Var != let.Var {
		return peepholeMatch{}, false
	}
	inc, ok := set.Value.(ast.ExprBinaryOp)
	if !ok || inc.Op != "+" {
		return peepholeMatch{}, false
	}
	if id, ok := inc.Left.(ast.Identifier); !ok || id.Name != let.Var {
		return peepholeMatch{}, false
	}
	if lit, ok := inc.Right.(ast.Literal); !ok || lit.Kind != ast.LitInt || lit.Num != 1 {
		return peepholeMatch{}, false
	}
	for _, s := range while.Body[:len(while.Body)-1] {
		if modifiesVar(s, let.Var) {
			return peepholeMatch{}, false
		}
	}

	iName := in.Resolve(let.Var)
	p := newPrinter()
	p.line(fmt.Sprintf("for %s := %s; %s <= %s; %s++ {", iName, exprGo(let.Value, in), iName, exprGo(cond.Right, in), iName))
	p.indented(func() { emitStmts(p, while.Body[:len(while.Body)-1], in) })
	p.line("}")
	p.line(fmt.Sprintf("%s := max(%s, %s+1)", iName, exprGo(let.Value, in), exprGo(cond.Right, in)))
	p.line("_ = " + iName)
	return peepholeMatch{code: p.String(), consumed: 2}, true
}

// tryVecFill matches:
//
//	Let xs = new Seq of T. Let i = n. While i <= m: Push literal to xs. Set i to i + 1.
//
// lowering to a single filled-slice construction rather than a loop.
func tryVecFill(stmts []ast.Stmt, i int, in *intern.Interner) (peepholeMatch, bool) {
	if i+2 >= len(stmts) {
		return peepholeMatch{}, false
	}
	xsLet, ok := stmts[i].(ast.Let)
	if !ok {
		return peepholeMatch{}, false
	}
	if _, ok := xsLet.Value.(ast.WithCapacity); !ok {
		if _, ok := xsLet.Value.(ast.List); !ok {
			return peepholeMatch{}, false
		}
	}
	iLet, ok := stmts[i+1].(ast.Let)
	if !ok {
		return peepholeMatch{}, false
	}
	while, ok := stmts[i+2].(ast.While)
	if !ok || len(while.Body) != 2 {
		return peepholeMatch{}, false
	}
	cond, ok := while.Cond.(ast.ExprBinaryOp)
	if !ok || cond.Op != "<=" {
		return peepholeMatch{}, false
	}
	if id, ok := cond.Left.(ast.Identifier); !ok || id.Name != iLet.Var {
		return peepholeMatch{}, false
	}
	push, ok := while.Body[0].(ast.Push)
	if !ok {
		return peepholeMatch{}, false
	}
	target, ok := push.Target.(ast.Identifier)
	if !ok || target.Name != xsLet.Var {
		return peepholeMatch{}, false
	}
	if _, ok := push.Value.(ast.Literal); !ok {
		return peepholeMatch{}, false
	}
	set, ok := while.Body[1].(ast.Set)
	if !ok || set.Var != iLet.Var {
		return peepholeMatch{}, false
	}
	inc, ok := set.Value.(ast.ExprBinaryOp)
	if !ok || inc.Op != "+" {
		return peepholeMatch{}, false
	}
	if id, ok := inc.Left.(ast.Identifier); !ok || id.Name != iLet.Var {
		return peepholeMatch{}, false
	}
	if lit, ok := inc.Right.(ast.Literal); !ok || lit.Kind != ast.LitInt || lit.Num != 1 {
		return peepholeMatch{}, false
	}

	count := fmt.Sprintf("(%s - %s + 1)", exprGo(cond.Right, in), exprGo(iLet.Value, in))
	lit := exprGo(push.Value, in)
	p := newPrinter()
	p.line(fmt.Sprintf("%s := make([]any, %s)", in.Resolve(xsLet.Var), count))
	p.line(fmt.Sprintf("for i := range %s {", in.Resolve(xsLet.Var)))
	p.indented(func() { p.line(fmt.Sprintf("%s[i] = %s", in.Resolve(xsLet.Var), lit)) })
	p.line("}")
	return peepholeMatch{code: p.String(), consumed: 3}, true
}

// tryAdjacentSwap matches:
//
//	Let a = item j of arr. Let b = item (j+1) of arr.
//	If a > b: Set item j of arr to b. Set item (j+1) of arr to a.
//
// lowering to an in-place swap call.
func tryAdjacentSwap(stmts []ast.Stmt, i int, in *intern.Interner) (peepholeMatch, bool) {
	if i+2 >= len(stmts) {
		return peepholeMatch{}, false
	}
	aLet, ok := stmts[i].(ast.Let)
	if !ok {
		return peepholeMatch{}, false
	}
	aIdx, ok := aLet.Value.(ast.Index)
	if !ok {
		return peepholeMatch{}, false
	}
	bLet, ok := stmts[i+1].(ast.Let)
	if !ok {
		return peepholeMatch{}, false
	}
	bIdx, ok := bLet.Value.(ast.Index)
	if !ok {
		return peepholeMatch{}, false
	}
	ifStmt, ok := stmts[i+2].(ast.If)
	if !ok || len(ifStmt.Then) != 2 || len(ifStmt.Else) != 0 {
		return peepholeMatch{}, false
	}
	cond, ok := ifStmt.Cond.(ast.ExprBinaryOp)
	if !ok || cond.Op != ">" {
		return peepholeMatch{}, false
	}
	if id, ok := cond.Left.(ast.Identifier); !ok || id.Name != aLet.Var {
		return peepholeMatch{}, false
	}
	if id, ok := cond.Right.(ast.Identifier); !ok || id.Name != bLet.Var {
		return peepholeMatch{}, false
	}
	set1, ok := ifStmt.Then[0].(ast.SetIndex)
	if !ok {
		return peepholeMatch{}, false
	}
	set2, ok := ifStmt.Then[1].(ast.SetIndex)
	if !ok {
		return peepholeMatch{}, false
	}
	arr := exprGo(aIdx.Target, in)
	if exprGo(bIdx.Target, in) != arr || exprGo(set1.Target, in) != arr || exprGo(set2.Target, in) != arr ||
		exprGo(set1.Key, in) != exprGo(aIdx.Key, in) || exprGo(set2.Key, in) != exprGo(bIdx.Key, in) {
		return peepholeMatch{}, false
	}
	if id, ok := set1.Value.(ast.Identifier); !ok || id.Name != bLet.Var {
		return peepholeMatch{}, false
	}
	if id, ok := set2.Value.(ast.Identifier); !ok || id.Name != aLet.Var {
		return peepholeMatch{}, false
	}

	p := newPrinter()
	p.line(fmt.Sprintf("if %s[%s] > %s[%s] {", arr, exprGo(aIdx.Key, in), arr, exprGo(bIdx.Key, in)))
	p.indented(func() {
		p.line(fmt.Sprintf("%s[%s], %s[%s] = %s[%s], %s[%s]",
			arr, exprGo(aIdx.Key, in), arr, exprGo(bIdx.Key, in),
			arr, exprGo(bIdx.Key, in), arr, exprGo(aIdx.Key, in)))
	})
	p.line("}")
	_ = set1
	_ = set2
	return peepholeMatch{code: p.String(), consumed: 3}, true
}

// tryAccumulatorReduce matches:
//
//	Let acc = 0. Repeat x in xs: Set acc to acc + f(x).
//
// lowering to a single accumulation loop phrased as a fold (recovered from
// original_source/'s peephole catalog; not named in spec.md's three).
func tryAccumulatorReduce(stmts []ast.Stmt, i int, in *intern.Interner) (peepholeMatch, bool) {
	if i+1 >= len(stmts) {
		return peepholeMatch{}, false
	}
	accLet, ok := stmts[i].(ast.Let)
	if !ok {
		return peepholeMatch{}, false
	}
	repeat, ok := stmts[i+1].(ast.Repeat)
	if !ok || len(repeat.Body) != 1 {
		return peepholeMatch{}, false
	}
	set, ok := repeat.Body[0].(ast.Set)
	if !ok || set.Var != accLet.Var {
		return peepholeMatch{}, false
	}
	bin, ok := set.Value.(ast.ExprBinaryOp)
	if !ok || bin.Op != "+" {
		return peepholeMatch{}, false
	}
	if id, ok := bin.Left.(ast.Identifier); !ok || id.Name != accLet.Var {
		return peepholeMatch{}, false
	}

	p := newPrinter()
	accName := in.Resolve(accLet.Var)
	p.line(fmt.Sprintf("%s := %s", accName, exprGo(accLet.Value, in)))
	p.line(fmt.Sprintf("for _, %s := range %s {", in.Resolve(repeat.Pattern), exprGo(repeat.Iterable, in)))
	p.indented(func() { p.line(fmt.Sprintf("%s += %s", accName, exprGo(bin.Right, in))) })
	p.line("}")
	return peepholeMatch{code: p.String(), consumed: 2}, true
}

// tryCountingLoop matches:
//
//	Let n = 0. Repeat x in xs: Set n to n + 1.
//
// lowering to a length/count expression instead of an explicit loop.
func tryCountingLoop(stmts []ast.Stmt, i int, in *intern.Interner) (peepholeMatch, bool) {
	if i+1 >= len(stmts) {
		return peepholeMatch{}, false
	}
	nLet, ok := stmts[i].(ast.Let)
	if !ok {
		return peepholeMatch{}, false
	}
	lit, ok := nLet.Value.(ast.Literal)
	if !ok || lit.Kind != ast.LitInt || lit.Num != 0 {
		return peepholeMatch{}, false
	}
	repeat, ok := stmts[i+1].(ast.Repeat)
	if !ok || len(repeat.Body) != 1 {
		return peepholeMatch{}, false
	}
	set, ok := repeat.Body[0].(ast.Set)
	if !ok || set.Var != nLet.Var {
		return peepholeMatch{}, false
	}
	bin, ok := set.Value.(ast.ExprBinaryOp)
	if !ok || bin.Op != "+" {
		return peepholeMatch{}, false
	}
	if id, ok := bin.Left.(ast.Identifier); !ok || id.Name != nLet.Var {
		return peepholeMatch{}, false
	}
	if litR, ok := bin.Right.(ast.Literal); !ok || litR.Kind != ast.LitInt || litR.Num != 1 {
		return peepholeMatch{}, false
	}

	p := newPrinter()
	p.line(fmt.Sprintf("%s := int64(len(%s))", in.Resolve(nLet.Var), exprGo(repeat.Iterable, in)))
	return peepholeMatch{code: p.String(), consumed: 2}, true
}

// modifiesVar reports whether s contains a Set targeting sym, used by
// tryForRange to confirm the loop variable isn't touched anywhere in the
// body except the trailing increment.
func modifiesVar(s ast.Stmt, sym intern.Symbol) bool {
	switch n := s.(type) {
	case ast.Set:
		return n.Var == sym
	case ast.If:
		for _, c := range n.Then {
			if modifiesVar(c, sym) {
				return true
			}
		}
		for _, c := range n.Else {
			if modifiesVar(c, sym) {
				return true
			}
		}
	case ast.While:
		for _, c := range n.Body {
			if modifiesVar(c, sym) {
				return true
			}
		}
	case ast.Repeat:
		for _, c := range n.Body {
			if modifiesVar(c, sym) {
				return true
			}
		}
	}
	return false
}
