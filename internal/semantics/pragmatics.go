package semantics

import "github.com/logos-lang/logos/internal/ast"

// ApplyPragmatics rewrites surface speech acts into the pragmatic act they
// conventionally perform: a yes/no question over an alethic possibility
// modal ("could you pass the salt?") is an indirect request, not a genuine
// query about ability, so it is rewritten into an Imperative.
func (l *Lowerer) ApplyPragmatics(expr ast.LogicExpr) ast.LogicExpr {
	if q, ok := expr.(ast.Question); ok {
		if rewritten, ok := l.tryIndirectRequest(q); ok {
			return rewritten
		}
	}
	return l.walkChildren(expr, l.ApplyPragmatics)
}

// tryIndirectRequest detects "Question(Modal(Alethic, phi))" - the can/
// could/would-you shape - and rewrites it to Imperative(phi).
func (l *Lowerer) tryIndirectRequest(q ast.Question) (ast.LogicExpr, bool) {
	modal, ok := q.Body.(ast.Modal)
	if !ok || modal.Vector.Domain != ast.DomainAlethic {
		return nil, false
	}
	return l.allocLogic(ast.Imperative{Body: l.ApplyPragmatics(modal.Operand)}), true
}
