package proof

import (
	"fmt"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// RuleName is the closed set of inference rules the Auto strategy's
// iterative-deepening search tries, per §4.12.
type RuleName string

const (
	RulePremise         RuleName = "premise"
	RuleModusPonens     RuleName = "modus-ponens"
	RuleAndIntro        RuleName = "and-introduction"
	RuleOrElim          RuleName = "or-elimination"
	RuleForallInst      RuleName = "universal-instantiation"
	RuleExistsWitness   RuleName = "existential-witness"
)

// DerivationTree is what the backward chainer produces: a goal, the rule
// that closed it, and the subderivations that rule needed. Hypothesis
// names a premise directly (h1, h2, ...) when Rule is RulePremise.
// Witness carries the instantiation term for universal-instantiation and
// existential-witness.
type DerivationTree struct {
	Rule       RuleName
	Goal       ast.LogicExpr
	Hypothesis string
	Witness    ast.Term
	Sub        []*DerivationTree
}

// ChainError is what Prove returns when the goal falls outside the
// fragment the Auto strategy's five rules can close, or when no
// derivation is found within the search's depth bound.
type ChainError struct {
	Message string
	Span    ast.LogicExpr
}

func (e *ChainError) Error() string { return e.Message }

const maxSearchDepth = 6

// Prove runs Auto: iterative deepening over modus-ponens, and-
// introduction, or-elimination, universal-instantiation, and existential-
// witness, bottoming out at a direct premise match. Premises are named
// h1, h2, ... in declaration order, the same names the certifier binds
// with Lambda in the returned kernel term.
func Prove(in *intern.Interner, premises []ast.LogicExpr, goal ast.LogicExpr) (*DerivationTree, error) {
	names := make([]string, len(premises))
	for i := range premises {
		names[i] = fmt.Sprintf("h%d", i+1)
	}
	for depth := 0; depth <= maxSearchDepth; depth++ {
		if tree, ok := proveAt(in, premises, names, goal, depth); ok {
			return tree, nil
		}
	}
	return nil, &ChainError{Message: fmt.Sprintf("no derivation of %s found within the chainer's search bound", describeLogic(in, goal)), Span: goal}
}

func proveAt(in *intern.Interner, premises []ast.LogicExpr, names []string, goal ast.LogicExpr, depth int) (*DerivationTree, bool) {
	for i, p := range premises {
		if equalLogic(p, goal) {
			return &DerivationTree{Rule: RulePremise, Goal: goal, Hypothesis: names[i]}, true
		}
	}
	if depth <= 0 {
		return nil, false
	}

	if and, ok := goal.(ast.BinaryOp); ok && and.Op == ast.OpAnd {
		left, lok := proveAt(in, premises, names, and.Left, depth-1)
		if !lok {
			return nil, false
		}
		right, rok := proveAt(in, premises, names, and.Right, depth-1)
		if !rok {
			return nil, false
		}
		return &DerivationTree{Rule: RuleAndIntro, Goal: goal, Sub: []*DerivationTree{left, right}}, true
	}

	for i, p := range premises {
		impl, ok := p.(ast.BinaryOp)
		if !ok || impl.Op != ast.OpImplies || !equalLogic(impl.Right, goal) {
			continue
		}
		if antecedent, ok := proveAt(in, premises, names, impl.Left, depth-1); ok {
			implLeaf := &DerivationTree{Rule: RulePremise, Goal: p, Hypothesis: names[i]}
			return &DerivationTree{Rule: RuleModusPonens, Goal: goal, Sub: []*DerivationTree{implLeaf, antecedent}}, true
		}
	}

	// Or-elimination, restricted to the case where both discharge
	// implications are themselves given premises rather than derived
	// under a hypothetical assumption - this system has no mechanism for
	// temporarily extending the premise set mid-search.
	for i, disj := range premises {
		or, ok := disj.(ast.BinaryOp)
		if !ok || or.Op != ast.OpOr {
			continue
		}
		implA := findImplication(premises, or.Left, goal)
		implB := findImplication(premises, or.Right, goal)
		if implA < 0 || implB < 0 {
			continue
		}
		return &DerivationTree{
			Rule: RuleOrElim, Goal: goal,
			Sub: []*DerivationTree{
				{Rule: RulePremise, Goal: disj, Hypothesis: names[i]},
				{Rule: RulePremise, Goal: premises[implA], Hypothesis: names[implA]},
				{Rule: RulePremise, Goal: premises[implB], Hypothesis: names[implB]},
			},
		}, true
	}

	candidates := collectConstants(premises, goal)

	for _, p := range premises {
		q, ok := p.(ast.Quantifier)
		if !ok || q.Kind != ast.QUniversal {
			continue
		}
		for _, c := range candidates {
			instantiated := substLogicVar(q.Body, q.Variable, ast.Constant{Name: c})
			if equalLogic(instantiated, goal) {
				witness := ast.Term(ast.Constant{Name: c})
				premiseIdx := indexOf(premises, p)
				return &DerivationTree{
					Rule: RuleForallInst, Goal: goal, Witness: witness,
					Sub: []*DerivationTree{{Rule: RulePremise, Goal: p, Hypothesis: names[premiseIdx]}},
				}, true
			}
		}
	}

	if q, ok := goal.(ast.Quantifier); ok && q.Kind == ast.QExistential {
		for _, c := range candidates {
			instantiated := substLogicVar(q.Body, q.Variable, ast.Constant{Name: c})
			if sub, ok := proveAt(in, premises, names, instantiated, depth-1); ok {
				return &DerivationTree{Rule: RuleExistsWitness, Goal: goal, Witness: ast.Constant{Name: c}, Sub: []*DerivationTree{sub}}, true
			}
		}
	}

	return nil, false
}

func findImplication(premises []ast.LogicExpr, antecedent, consequent ast.LogicExpr) int {
	for i, p := range premises {
		impl, ok := p.(ast.BinaryOp)
		if ok && impl.Op == ast.OpImplies && equalLogic(impl.Left, antecedent) && equalLogic(impl.Right, consequent) {
			return i
		}
	}
	return -1
}

func indexOf(premises []ast.LogicExpr, target ast.LogicExpr) int {
	for i, p := range premises {
		if equalLogic(p, target) {
			return i
		}
	}
	return -1
}

func describeLogic(in *intern.Interner, e ast.LogicExpr) string {
	switch v := e.(type) {
	case ast.Atom:
		return in.Resolve(v.Name)
	case ast.Predicate:
		return in.Resolve(v.Name) + "(...)"
	case ast.BinaryOp:
		return "a compound proposition"
	default:
		return fmt.Sprintf("%T", e)
	}
}
