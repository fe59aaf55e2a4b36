package verify

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/intern"
)

// Checker walks a function body accumulating `var = value` assumptions
// from Let statements and discharging Assert/Refinement/While-decreasing
// proof obligations against them as it goes.
type Checker struct {
	interner *intern.Interner
	env      Env
	bag      diagnostics.Bag
}

func New(interner *intern.Interner) *Checker {
	return &Checker{interner: interner, env: make(Env)}
}

// Check walks stmts and returns every unproved obligation found. Trust
// statements are accepted without attempting discharge.
func (c *Checker) Check(stmts []ast.Stmt) *diagnostics.Bag {
	c.walkStmts(stmts)
	return &c.bag
}

func (c *Checker) walkStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		c.walkStmt(s)
	}
}

func (c *Checker) walkStmt(s ast.Stmt) {
	switch n := s.(type) {
	case ast.Let:
		c.checkRefinement(n)
		node, ok := lowerExpr(n.Value)
		Assign(c.env, n.Var, node, ok)
	case ast.Set:
		node, ok := lowerExpr(n.Value)
		Assign(c.env, n.Var, node, ok)
	case ast.Assert:
		c.checkAssert(n)
	case ast.Trust:
		// Accepted axiomatically; no discharge attempted.
	case ast.If:
		c.walkStmts(n.Then)
		c.walkStmts(n.Else)
	case ast.While:
		c.checkTermination(n)
		c.walkStmts(n.Body)
	case ast.Repeat:
		c.walkStmts(n.Body)
	case ast.Inspect:
		for _, arm := range n.Arms {
			c.walkStmts(arm.Body)
		}
		c.walkStmts(n.Otherwise)
	case ast.Zone:
		c.walkStmts(n.Body)
	case ast.Concurrent:
		c.walkStmts(n.Body)
	case ast.Parallel:
		c.walkStmts(n.Body)
	case ast.FunctionDef:
		nested := New(c.interner).Check(n.Body)
		for _, d := range nested.Items() {
			c.bag.Add(d)
		}
	}
}

// checkAssert discharges an Assert's mapped predicate against the current
// assumption set. It reports a violation only when the predicate folds to
// a concrete `false`; anything it cannot fully evaluate is left unproved
// but unreported, matching §4.8's no-false-positives requirement.
func (c *Checker) checkAssert(a ast.Assert) {
	node, ok := lowerLogic(a.Cond)
	if !ok {
		return
	}
	val, ok := Eval(node, c.env)
	if ok && val.Sort == SortBool && !val.B {
		c.bag.Add(diagnostics.NewAssertUnproved(a.Span()))
	}
}

// checkRefinement discharges a Let's declared refinement type, if any,
// against the value being bound.
func (c *Checker) checkRefinement(l ast.Let) {
	ref, ok := l.Type.(ast.Refinement)
	if !ok {
		return
	}
	valueNode, ok := lowerExpr(l.Value)
	if !ok {
		return
	}
	predNode, ok := lowerLogic(ref.Predicate)
	if !ok {
		return
	}
	env := make(Env, len(c.env)+1)
	for k, v := range c.env {
		env[k] = v
	}
	env[ref.Variable] = valueNode
	val, ok := Eval(predNode, env)
	if ok && val.Sort == SortBool && !val.B {
		c.bag.Add(diagnostics.NewRefinementViolation(c.interner.Resolve(l.Var), l.Span()))
	}
}

// checkTermination proves `v' < v ∧ v ≥ 0` for a While's decreasing
// measure by symbolically simulating one iteration of the body: Let/Set
// effects inside the body update a scratch copy of the environment, and
// the measure is evaluated before and after. Anything the simulation
// can't fully resolve is left unproved and unreported.
func (c *Checker) checkTermination(w ast.While) {
	if w.Decreasing == nil {
		return
	}
	measureNode, ok := lowerExpr(w.Decreasing)
	if !ok {
		return
	}
	before, ok := Eval(measureNode, c.env)
	if !ok || before.Sort != SortInt {
		return
	}

	scratch := make(Env, len(c.env))
	for k, v := range c.env {
		scratch[k] = v
	}
	simulateOneIteration(w.Body, scratch)

	after, ok := Eval(measureNode, scratch)
	if !ok || after.Sort != SortInt {
		return
	}
	if !(after.I < before.I && after.I >= 0) {
		c.bag.Add(diagnostics.NewTerminationUnproved(w.Span()))
	}
}

// simulateOneIteration applies every Let/Set effect in body to env,
// in order, ignoring control flow it cannot map (If/Repeat/etc. are
// skipped rather than expanded, since one iteration's direct effects are
// what the decreasing proof needs).
func simulateOneIteration(body []ast.Stmt, env Env) {
	for _, s := range body {
		switch n := s.(type) {
		case ast.Let:
			node, ok := lowerExpr(n.Value)
			Assign(env, n.Var, node, ok)
		case ast.Set:
			node, ok := lowerExpr(n.Value)
			Assign(env, n.Var, node, ok)
		}
	}
}
