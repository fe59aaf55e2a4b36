package proof

import (
	"fmt"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// FragmentError is returned by TranslateLogic/TranslateTerm for a LogicExpr
// or Term outside the fragment §4.12 translates - any node beyond the
// propositional connectives, identity, and the two first-order
// quantifiers. The certifier and VerifyTheorem bail through this error
// rather than guessing at a translation; the chainer itself reports a goal
// it cannot close as a ChainError.
type FragmentError struct {
	Message string
}

func (e *FragmentError) Error() string { return e.Message }

// TranslateLogic implements §4.12's translation table: `forall x. phi` ->
// `Pi(x:Entity). phi-kernel`; `P -> Q` -> `Pi(_:P). Q`; `P and Q` ->
// `App(App(And, P), Q)`; atoms -> `Global(name)`; identity `a = b` ->
// `App(App(App(Eq, Entity), a), b)`. Or, Not, and the existential extend
// the table in the same style, grounded on the prelude's Or/Not/Ex
// constants.
func TranslateLogic(in *intern.Interner, e ast.LogicExpr) (Term, error) {
	switch v := e.(type) {
	case ast.Atom:
		return Global{Name: in.Resolve(v.Name)}, nil

	case ast.Predicate:
		fn := Term(Global{Name: in.Resolve(v.Name)})
		for _, arg := range v.Args {
			argTerm, err := TranslateTerm(in, arg)
			if err != nil {
				return nil, err
			}
			fn = App{Fn: fn, Arg: argTerm}
		}
		return fn, nil

	case ast.Identity:
		left, err := TranslateTerm(in, v.Left)
		if err != nil {
			return nil, err
		}
		right, err := TranslateTerm(in, v.Right)
		if err != nil {
			return nil, err
		}
		return App{Fn: App{Fn: App{Fn: Global{Name: "Eq"}, Arg: Global{Name: "Entity"}}, Arg: left}, Arg: right}, nil

	case ast.BinaryOp:
		left, err := TranslateLogic(in, v.Left)
		if err != nil {
			return nil, err
		}
		right, err := TranslateLogic(in, v.Right)
		if err != nil {
			return nil, err
		}
		switch v.Op {
		case ast.OpImplies:
			return Pi{Param: "_", ParamType: left, Body: right}, nil
		case ast.OpAnd:
			return App{Fn: App{Fn: Global{Name: "And"}, Arg: left}, Arg: right}, nil
		case ast.OpOr:
			return App{Fn: App{Fn: Global{Name: "Or"}, Arg: left}, Arg: right}, nil
		case ast.OpIff:
			// P <-> Q as (P -> Q) and (Q -> P): no dedicated prelude
			// constant, so expand it directly in terms of the two
			// already-translated directions.
			forward := Pi{Param: "_", ParamType: left, Body: right}
			backward := Pi{Param: "_", ParamType: right, Body: left}
			return App{Fn: App{Fn: Global{Name: "And"}, Arg: forward}, Arg: backward}, nil
		default:
			return nil, &FragmentError{Message: "unrecognized binary connective"}
		}

	case ast.UnaryOp:
		operand, err := TranslateLogic(in, v.Operand)
		if err != nil {
			return nil, err
		}
		return App{Fn: Global{Name: "Not"}, Arg: operand}, nil

	case ast.Quantifier:
		variable := in.Resolve(v.Variable)
		switch v.Kind {
		case ast.QUniversal:
			body, err := TranslateLogic(in, v.Body)
			if err != nil {
				return nil, err
			}
			return Pi{Param: variable, ParamType: Global{Name: "Entity"}, Body: body}, nil
		case ast.QExistential:
			body, err := TranslateLogic(in, v.Body)
			if err != nil {
				return nil, err
			}
			return App{Fn: App{Fn: Global{Name: "Ex"}, Arg: Global{Name: "Entity"}}, Arg: Lambda{Param: variable, ParamType: Global{Name: "Entity"}, Body: body}}, nil
		default:
			return nil, &FragmentError{Message: "quantifier kind outside the chainer's fragment (only universal and existential translate)"}
		}

	default:
		return nil, &FragmentError{Message: fmt.Sprintf("%T is outside the proof fragment this kernel translates", e)}
	}
}

// TranslateTerm maps a Predicate/Identity argument into the kernel: a
// Constant or Variable resolves directly, a Function curries its name
// over its translated arguments the same way TranslateLogic curries a
// Predicate.
func TranslateTerm(in *intern.Interner, t ast.Term) (Term, error) {
	switch v := t.(type) {
	case ast.Constant:
		return Global{Name: in.Resolve(v.Name)}, nil
	case ast.Variable:
		return Var{Name: in.Resolve(v.Name)}, nil
	case ast.Function:
		fn := Term(Global{Name: in.Resolve(v.Name)})
		for _, arg := range v.Args {
			argTerm, err := TranslateTerm(in, arg)
			if err != nil {
				return nil, err
			}
			fn = App{Fn: fn, Arg: argTerm}
		}
		return fn, nil
	default:
		return nil, &FragmentError{Message: fmt.Sprintf("%T is outside the proof fragment this kernel translates", t)}
	}
}
