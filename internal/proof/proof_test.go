package proof

import (
	"strings"
	"testing"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

func TestVerifyTheoremModusPonens(t *testing.T) {
	in := intern.New()
	p, q := in.Intern("P"), in.Intern("Q")

	th := ast.Theorem{
		Name: "modus-ponens",
		Premises: []ast.LogicExpr{
			ast.BinaryOp{Op: ast.OpImplies, Left: ast.Atom{Name: p}, Right: ast.Atom{Name: q}},
			ast.Atom{Name: p},
		},
		Goal:     ast.Atom{Name: q},
		Strategy: ast.StrategyAuto,
	}

	term, err := VerifyTheorem(in, th)
	if err != nil {
		t.Fatalf("VerifyTheorem returned an error: %v", err)
	}

	lam1, ok := term.(Lambda)
	if !ok || lam1.Param != "h1" {
		t.Fatalf("outer term = %s, want a lambda binding h1", String(term))
	}
	lam2, ok := lam1.Body.(Lambda)
	if !ok || lam2.Param != "h2" {
		t.Fatalf("inner term = %s, want a lambda binding h2", String(lam1.Body))
	}
	app, ok := lam2.Body.(App)
	if !ok {
		t.Fatalf("innermost body = %s, want an application h1 h2", String(lam2.Body))
	}
	if !Equal(app.Fn, Var{Name: "h1"}) || !Equal(app.Arg, Var{Name: "h2"}) {
		t.Fatalf("application = %s, want h1 applied to h2", String(app))
	}

	ctx := Prelude().With("h1", Pi{Param: "_", ParamType: Global{Name: "P"}, Body: Global{Name: "Q"}}).With("h2", Global{Name: "P"})
	bodyType, err := InferType(ctx, app)
	if err != nil {
		t.Fatalf("infer_type on the certified body failed: %v", err)
	}
	if !Equal(bodyType, Global{Name: "Q"}) {
		t.Fatalf("body type = %s, want Q", String(bodyType))
	}
}

func TestVerifyTheoremAndIntroduction(t *testing.T) {
	in := intern.New()
	p, q := in.Intern("P"), in.Intern("Q")

	th := ast.Theorem{
		Name:     "and-intro",
		Premises: []ast.LogicExpr{ast.Atom{Name: p}, ast.Atom{Name: q}},
		Goal:     ast.BinaryOp{Op: ast.OpAnd, Left: ast.Atom{Name: p}, Right: ast.Atom{Name: q}},
		Strategy: ast.StrategyAuto,
	}

	term, err := VerifyTheorem(in, th)
	if err != nil {
		t.Fatalf("VerifyTheorem returned an error: %v", err)
	}
	if !strings.Contains(String(term), "and_intro") {
		t.Fatalf("term = %s, want it to route through and_intro", String(term))
	}
}

func TestVerifyTheoremAndIntroductionOverEntityPredicates(t *testing.T) {
	in := intern.New()
	dog, bark := in.Intern("Dog"), in.Intern("Bark")
	rex := in.Intern("rex")

	dogRex := ast.Predicate{Name: dog, Args: []ast.Term{ast.Constant{Name: rex}}}
	barkRex := ast.Predicate{Name: bark, Args: []ast.Term{ast.Constant{Name: rex}}}

	th := ast.Theorem{
		Name:     "and-intro-entities",
		Premises: []ast.LogicExpr{dogRex, barkRex},
		Goal:     ast.BinaryOp{Op: ast.OpAnd, Left: dogRex, Right: barkRex},
		Strategy: ast.StrategyAuto,
	}

	term, err := VerifyTheorem(in, th)
	if err != nil {
		t.Fatalf("VerifyTheorem returned an error: %v", err)
	}
	if !strings.Contains(String(term), "and_intro") {
		t.Fatalf("term = %s, want it to route through and_intro", String(term))
	}
}

func TestVerifyTheoremOutsideFragmentReportsError(t *testing.T) {
	in := intern.New()
	v := in.Intern("e")
	verb := in.Intern("ran")

	th := ast.Theorem{
		Name: "neo-davidsonian",
		Premises: []ast.LogicExpr{
			ast.NeoEvent{EventVar: v, Verb: verb},
		},
		Goal:     ast.NeoEvent{EventVar: v, Verb: verb},
		Strategy: ast.StrategyAuto,
	}

	_, err := VerifyTheorem(in, th)
	if err == nil {
		t.Fatalf("VerifyTheorem succeeded, want an error for a NeoEvent goal")
	}
}

func TestVerifyTheoremNoDerivationFound(t *testing.T) {
	in := intern.New()
	p, q, r := in.Intern("P"), in.Intern("Q"), in.Intern("R")
	_ = q

	th := ast.Theorem{
		Name:     "unrelated",
		Premises: []ast.LogicExpr{ast.Atom{Name: p}},
		Goal:     ast.Atom{Name: r},
		Strategy: ast.StrategyAuto,
	}

	_, err := VerifyTheorem(in, th)
	if err == nil {
		t.Fatalf("VerifyTheorem succeeded, want no derivation for an unrelated goal")
	}
	if _, ok := err.(*ChainError); !ok {
		t.Fatalf("error = %#v, want a *ChainError", err)
	}
}
