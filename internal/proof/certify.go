package proof

import (
	"fmt"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// CertifyError is what Certify/VerifyTheorem report when a derivation
// references a rule the kernel has no constant for, or when the resulting
// term fails the final infer_type check against the goal's translation.
type CertifyError struct {
	Message string
}

func (e *CertifyError) Error() string { return e.Message }

// certify converts a DerivationTree into a kernel term by pattern-
// matching its rule name to the prelude constant that rule corresponds
// to. A RulePremise leaf becomes the bound hypothesis variable the final
// Lambda wrapping in VerifyTheorem introduces.
func certify(in *intern.Interner, d *DerivationTree) (Term, error) {
	switch d.Rule {
	case RulePremise:
		return Var{Name: d.Hypothesis}, nil

	case RuleModusPonens:
		impl, err := certify(in, d.Sub[0])
		if err != nil {
			return nil, err
		}
		arg, err := certify(in, d.Sub[1])
		if err != nil {
			return nil, err
		}
		return App{Fn: impl, Arg: arg}, nil

	case RuleAndIntro:
		and, ok := d.Goal.(ast.BinaryOp)
		if !ok || and.Op != ast.OpAnd {
			return nil, &CertifyError{Message: "and-introduction derivation's goal is not a conjunction"}
		}
		kindA, err := TranslateLogic(in, and.Left)
		if err != nil {
			return nil, err
		}
		kindB, err := TranslateLogic(in, and.Right)
		if err != nil {
			return nil, err
		}
		left, err := certify(in, d.Sub[0])
		if err != nil {
			return nil, err
		}
		right, err := certify(in, d.Sub[1])
		if err != nil {
			return nil, err
		}
		fn := Term(Global{Name: "and_intro"})
		fn = App{Fn: fn, Arg: kindA}
		fn = App{Fn: fn, Arg: kindB}
		fn = App{Fn: fn, Arg: left}
		fn = App{Fn: fn, Arg: right}
		return fn, nil

	case RuleOrElim:
		disj, ok := d.Sub[0].Goal.(ast.BinaryOp)
		if !ok || disj.Op != ast.OpOr {
			return nil, &CertifyError{Message: "or-elimination derivation's first subgoal is not a disjunction"}
		}
		kindA, err := TranslateLogic(in, disj.Left)
		if err != nil {
			return nil, err
		}
		kindB, err := TranslateLogic(in, disj.Right)
		if err != nil {
			return nil, err
		}
		kindC, err := TranslateLogic(in, d.Goal)
		if err != nil {
			return nil, err
		}
		disjTerm, err := certify(in, d.Sub[0])
		if err != nil {
			return nil, err
		}
		implA, err := certify(in, d.Sub[1])
		if err != nil {
			return nil, err
		}
		implB, err := certify(in, d.Sub[2])
		if err != nil {
			return nil, err
		}
		fn := Term(Global{Name: "or_elim"})
		fn = App{Fn: fn, Arg: kindA}
		fn = App{Fn: fn, Arg: kindB}
		fn = App{Fn: fn, Arg: kindC}
		fn = App{Fn: fn, Arg: disjTerm}
		fn = App{Fn: fn, Arg: implA}
		fn = App{Fn: fn, Arg: implB}
		return fn, nil

	case RuleForallInst:
		premiseTerm, err := certify(in, d.Sub[0])
		if err != nil {
			return nil, err
		}
		witness, err := TranslateTerm(in, d.Witness)
		if err != nil {
			return nil, err
		}
		return App{Fn: premiseTerm, Arg: witness}, nil

	case RuleExistsWitness:
		q, ok := d.Goal.(ast.Quantifier)
		if !ok || q.Kind != ast.QExistential {
			return nil, &CertifyError{Message: "existential-witness derivation's goal is not an existential"}
		}
		variable := in.Resolve(q.Variable)
		bodyKernel, err := TranslateLogic(in, q.Body)
		if err != nil {
			return nil, err
		}
		witness, err := TranslateTerm(in, d.Witness)
		if err != nil {
			return nil, err
		}
		bodyProof, err := certify(in, d.Sub[0])
		if err != nil {
			return nil, err
		}
		predicate := Lambda{Param: variable, ParamType: Global{Name: "Entity"}, Body: bodyKernel}
		fn := Term(Global{Name: "ex_intro"})
		fn = App{Fn: fn, Arg: Global{Name: "Entity"}}
		fn = App{Fn: fn, Arg: predicate}
		fn = App{Fn: fn, Arg: witness}
		fn = App{Fn: fn, Arg: bodyProof}
		return fn, nil

	default:
		return nil, &CertifyError{Message: fmt.Sprintf("no prelude constant for rule %q", d.Rule)}
	}
}

// VerifyTheorem runs the whole C12 pipeline against a parsed Theorem:
// Auto proves the goal from the premises, the certifier turns the
// derivation into a kernel term, and the kernel type-checks that term's
// body (under the premises bound as hypotheses) against the goal's own
// translation, per the invariant infer_type(ctx, certify(D)) =
// kernel_translate(G). The returned term closes over its hypotheses with
// Lambda, so a theorem with premises P1..Pn and goal G elaborates to a
// closed proof of type P1 -> ... -> Pn -> G.
func VerifyTheorem(in *intern.Interner, th ast.Theorem) (Term, error) {
	if th.Strategy != ast.StrategyAuto {
		return nil, &CertifyError{Message: "manual proof strategy is not implemented by this engine"}
	}

	tree, err := Prove(in, th.Premises, th.Goal)
	if err != nil {
		return nil, err
	}
	body, err := certify(in, tree)
	if err != nil {
		return nil, err
	}

	premiseKinds := make([]Term, len(th.Premises))
	ctx := registerSymbols(in, Prelude(), th.Premises, th.Goal)
	for i, p := range th.Premises {
		kind, err := TranslateLogic(in, p)
		if err != nil {
			return nil, err
		}
		premiseKinds[i] = kind
		ctx = ctx.With(fmt.Sprintf("h%d", i+1), kind)
	}

	goalKind, err := TranslateLogic(in, th.Goal)
	if err != nil {
		return nil, err
	}

	bodyType, err := InferType(ctx, body)
	if err != nil {
		return nil, &CertifyError{Message: fmt.Sprintf("certified term failed to type-check: %v", err)}
	}
	if !Equal(bodyType, goalKind) {
		return nil, &CertifyError{Message: fmt.Sprintf("certified term has type %s, want %s", String(bodyType), String(goalKind))}
	}

	term := body
	for i := len(th.Premises) - 1; i >= 0; i-- {
		term = Lambda{Param: fmt.Sprintf("h%d", i+1), ParamType: premiseKinds[i], Body: term}
	}
	return term, nil
}
