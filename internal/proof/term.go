// Package proof implements C12: the dependent-type kernel, the backward
// chainer that searches for a DerivationTree, and the certifier that turns
// a derivation into a kernel term checked against the goal's translation.
package proof

import "fmt"

// Term is the kernel's closed sum: Var, Global, Sort, Pi, Lambda, App. This
// is a Calculus-of-Constructions-style core, independent of the surface
// LogicExpr the declarative parser produces.
type Term interface {
	termString() string
}

// Var is a locally bound name, introduced by a Pi or a Lambda, or (for a
// certified derivation) a hypothesis name like h1/h2.
type Var struct {
	Name string
}

// Global is a name resolved against a Context: a prelude constant (Entity,
// And, Eq, ...) or a theorem's own premise hypothesis once bound.
type Global struct {
	Name string
}

type SortKind int

const (
	SortProp SortKind = iota
	SortType
)

// Sort is Prop or Type(u). Level is meaningful only for SortType.
type Sort struct {
	Kind  SortKind
	Level int
}

type Pi struct {
	Param     string
	ParamType Term
	Body      Term
}

type Lambda struct {
	Param     string
	ParamType Term
	Body      Term
}

type App struct {
	Fn  Term
	Arg Term
}

func (Var) termString() string    { return "" }
func (Global) termString() string { return "" }
func (Sort) termString() string   { return "" }
func (Pi) termString() string     { return "" }
func (Lambda) termString() string { return "" }
func (App) termString() string    { return "" }

// String renders a term the way the kernel's own error messages do:
// `lambda x. body`, `Pi(x:T). body` (`T -> body` when the binder is `_`),
// `(f a)`.
func String(t Term) string {
	switch v := t.(type) {
	case Var:
		return v.Name
	case Global:
		return v.Name
	case Sort:
		if v.Kind == SortProp {
			return "Prop"
		}
		return fmt.Sprintf("Type(%d)", v.Level)
	case Pi:
		if v.Param == "_" {
			return fmt.Sprintf("%s -> %s", String(v.ParamType), String(v.Body))
		}
		return fmt.Sprintf("Pi(%s:%s). %s", v.Param, String(v.ParamType), String(v.Body))
	case Lambda:
		return fmt.Sprintf("lambda %s. %s", v.Param, String(v.Body))
	case App:
		return fmt.Sprintf("(%s %s)", String(v.Fn), String(v.Arg))
	default:
		return "<?term>"
	}
}

// Context maps global names (prelude constants and theorem hypotheses) to
// their kernel type.
type Context map[string]Term

func NewContext() Context {
	return make(Context)
}

func (c Context) With(name string, typ Term) Context {
	next := make(Context, len(c)+1)
	for k, v := range c {
		next[k] = v
	}
	next[name] = typ
	return next
}

// env is the typing environment infer_type threads through: local binders
// (from Pi/Lambda) layered over the global Context.
type env struct {
	ctx   Context
	local map[string]Term
}

func newEnv(ctx Context) *env {
	return &env{ctx: ctx, local: make(map[string]Term)}
}

func (e *env) with(name string, typ Term) *env {
	next := &env{ctx: e.ctx, local: make(map[string]Term, len(e.local)+1)}
	for k, v := range e.local {
		next.local[k] = v
	}
	next.local[name] = typ
	return next
}

func (e *env) lookup(name string) (Term, bool) {
	if t, ok := e.local[name]; ok {
		return t, true
	}
	t, ok := e.ctx[name]
	return t, ok
}

// TypeError is what InferType reports for a term the kernel rejects: an
// unbound name, an application of a non-function, or an argument that
// doesn't match the domain type.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string { return e.Message }

// InferType implements standard CoC typing: Var/Global look up the
// environment, Sort(Prop) has type Type(0) (Sort(Type(u)) has type
// Type(u+1)), Pi and Lambda check their param and body under an extended
// environment, and App checks the argument against the function's domain
// and returns the codomain with the argument substituted in.
func InferType(ctx Context, t Term) (Term, error) {
	return inferType(newEnv(ctx), t)
}

func inferType(e *env, t Term) (Term, error) {
	switch v := t.(type) {
	case Var:
		typ, ok := e.lookup(v.Name)
		if !ok {
			return nil, &TypeError{Message: fmt.Sprintf("unbound variable %q", v.Name)}
		}
		return typ, nil

	case Global:
		typ, ok := e.lookup(v.Name)
		if !ok {
			return nil, &TypeError{Message: fmt.Sprintf("unbound global %q", v.Name)}
		}
		return typ, nil

	case Sort:
		if v.Kind == SortProp {
			return Sort{Kind: SortType, Level: 0}, nil
		}
		return Sort{Kind: SortType, Level: v.Level + 1}, nil

	case Pi:
		if _, err := inferType(e, v.ParamType); err != nil {
			return nil, err
		}
		bodySort, err := inferType(e.with(v.Param, v.ParamType), v.Body)
		if err != nil {
			return nil, err
		}
		sort, ok := bodySort.(Sort)
		if !ok {
			return nil, &TypeError{Message: fmt.Sprintf("Pi body %q is not typed by a sort", String(v.Body))}
		}
		// Impredicative Prop: a Pi whose body lands in Prop is itself in
		// Prop regardless of the domain's sort.
		if sort.Kind == SortProp {
			return Sort{Kind: SortProp}, nil
		}
		return sort, nil

	case Lambda:
		if _, err := inferType(e, v.ParamType); err != nil {
			return nil, err
		}
		bodyType, err := inferType(e.with(v.Param, v.ParamType), v.Body)
		if err != nil {
			return nil, err
		}
		return Pi{Param: v.Param, ParamType: v.ParamType, Body: bodyType}, nil

	case App:
		fnType, err := inferType(e, v.Fn)
		if err != nil {
			return nil, err
		}
		pi, ok := fnType.(Pi)
		if !ok {
			return nil, &TypeError{Message: fmt.Sprintf("cannot apply non-function %q of type %q", String(v.Fn), String(fnType))}
		}
		argType, err := inferType(e, v.Arg)
		if err != nil {
			return nil, err
		}
		if !Equal(argType, pi.ParamType) {
			return nil, &TypeError{Message: fmt.Sprintf("argument %q has type %q, want %q", String(v.Arg), String(argType), String(pi.ParamType))}
		}
		return Substitute(pi.Body, pi.Param, v.Arg), nil

	default:
		return nil, &TypeError{Message: "unrecognized kernel term"}
	}
}

// Substitute replaces every free occurrence of name with replacement. Pi
// and Lambda shadow: substitution stops descending once a binder reuses
// the same name.
func Substitute(t Term, name string, replacement Term) Term {
	switch v := t.(type) {
	case Var:
		if v.Name == name {
			return replacement
		}
		return v
	case Global:
		return v
	case Sort:
		return v
	case Pi:
		paramType := Substitute(v.ParamType, name, replacement)
		if v.Param == name {
			return Pi{Param: v.Param, ParamType: paramType, Body: v.Body}
		}
		return Pi{Param: v.Param, ParamType: paramType, Body: Substitute(v.Body, name, replacement)}
	case Lambda:
		paramType := Substitute(v.ParamType, name, replacement)
		if v.Param == name {
			return Lambda{Param: v.Param, ParamType: paramType, Body: v.Body}
		}
		return Lambda{Param: v.Param, ParamType: paramType, Body: Substitute(v.Body, name, replacement)}
	case App:
		return App{Fn: Substitute(v.Fn, name, replacement), Arg: Substitute(v.Arg, name, replacement)}
	default:
		return t
	}
}

// Equal is structural equality up to the bound-name renaming Substitute
// already performs at application sites; the fragment this kernel checks
// never needs full alpha-equivalence beyond that.
func Equal(a, b Term) bool {
	switch av := a.(type) {
	case Var:
		bv, ok := b.(Var)
		return ok && av.Name == bv.Name
	case Global:
		bv, ok := b.(Global)
		return ok && av.Name == bv.Name
	case Sort:
		bv, ok := b.(Sort)
		return ok && av.Kind == bv.Kind && av.Level == bv.Level
	case Pi:
		bv, ok := b.(Pi)
		return ok && Equal(av.ParamType, bv.ParamType) && Equal(av.Body, bv.Body)
	case Lambda:
		bv, ok := b.(Lambda)
		return ok && Equal(av.ParamType, bv.ParamType) && Equal(av.Body, bv.Body)
	case App:
		bv, ok := b.(App)
		return ok && Equal(av.Fn, bv.Fn) && Equal(av.Arg, bv.Arg)
	default:
		return false
	}
}
