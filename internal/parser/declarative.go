package parser

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/token"
)

func (p *Parser) allocLogic(n ast.LogicExpr) ast.LogicExpr { return *p.arenas.LogicExprs.Alloc(n) }
func (p *Parser) allocTerm(n ast.Term) ast.Term             { return *p.arenas.Terms.Alloc(n) }

// npResult is what parsing a noun phrase produces: the term that fills a
// thematic role, plus (for a quantified common noun) the quantifier
// machinery needed to wrap the clause the NP's variable occurs free in.
type npResult struct {
	term        ast.Term
	quantified  bool
	kind        ast.QuantifierKind
	n           float64
	variable    intern.Symbol
	restriction ast.LogicExpr
	negateOuter bool // "no N" wraps the whole quantified clause in a negation
	referent    *ast.NounPhrase
}

func (p *Parser) isNPStart() bool {
	switch p.cur().Kind {
	case token.ARTICLE, token.PRONOUN, token.NOUN, token.ADJECTIVE, token.CARDINAL,
		token.AT_LEAST, token.AT_MOST, token.KW_ALL, token.KW_SOME, token.KW_NO,
		token.KW_MOST, token.KW_FEW, token.IDENT:
		return true
	}
	return false
}

// ParseSentence parses one declarative sentence, terminated by a period,
// into a LogicExpr, resolving pronouns against the parser's running DRS.
func (p *Parser) ParseSentence() ast.LogicExpr {
	clause := p.parseClause()
	for p.at(token.KW_AND) || p.at(token.KW_OR) || p.at(token.CONJUNCTION) {
		op := ast.OpAnd
		if p.cur().Kind == token.KW_OR {
			op = ast.OpOr
		}
		p.advance()
		right := p.parseClause()
		clause = p.allocLogic(ast.BinaryOp{Op: op, Left: clause, Right: right})
	}
	if p.at(token.PERIOD) {
		p.advance()
	}
	return clause
}

func (p *Parser) parseClause() ast.LogicExpr {
	if p.at(token.KW_IF) {
		return p.parseConditional()
	}
	return p.parseCoreClause()
}

func (p *Parser) parseConditional() ast.LogicExpr {
	p.advance() // if
	p.drs.pushBox()
	antecedent := p.parseCoreClause()
	// Indefinites introduced in the antecedent stay in the DRS, so a
	// pronoun in the consequent resolves to them by the recency search;
	// no donkey binding is recorded.
	if p.at(token.KW_THEN) {
		p.advance()
	}
	consequent := p.parseCoreClause()
	p.drs.popBox()
	if p.at(token.KW_ELSE) {
		p.advance()
		alt := p.parseCoreClause()
		return p.allocLogic(ast.Counterfactual{Antecedent: antecedent, Consequent: p.allocLogic(ast.BinaryOp{Op: ast.OpOr, Left: consequent, Right: alt})})
	}
	return p.allocLogic(ast.BinaryOp{Op: ast.OpImplies, Left: antecedent, Right: consequent})
}

func (p *Parser) parseCoreClause() ast.LogicExpr {
	negated := false
	if p.at(token.KW_NOT) {
		p.advance()
		negated = true
	}
	subj := p.parseNP("Agent")
	modal := p.parseOptionalModal()
	body := p.parseVerbPhrase(subj)
	if negated {
		body = p.allocLogic(ast.UnaryOp{Operand: body})
	}
	if modal != nil {
		body = p.allocLogic(ast.Modal{Vector: *modal, Operand: body})
	}
	if subj.quantified {
		body = p.allocLogic(ast.Quantifier{Kind: subj.kind, N: subj.n, Variable: subj.variable, Restriction: subj.restriction, Body: body})
		if subj.negateOuter {
			body = p.allocLogic(ast.UnaryOp{Operand: body})
		}
	}
	return body
}

func (p *Parser) parseOptionalModal() *ast.ModalVector {
	switch p.cur().Kind {
	case token.KW_MUST:
		p.advance()
		return &ast.ModalVector{Domain: ast.DomainDeontic, Flavor: ast.FlavorRoot, Force: 1}
	case token.KW_MAY:
		p.advance()
		return &ast.ModalVector{Domain: ast.DomainDeontic, Flavor: ast.FlavorRoot, Force: 0.5}
	case token.KW_CAN:
		p.advance()
		return &ast.ModalVector{Domain: ast.DomainAlethic, Flavor: ast.FlavorRoot, Force: 0.5}
	case token.KW_COULD:
		p.advance()
		return &ast.ModalVector{Domain: ast.DomainAlethic, Flavor: ast.FlavorEpistemic, Force: 0.5}
	case token.KW_WOULD:
		p.advance()
		return &ast.ModalVector{Domain: ast.DomainAlethic, Flavor: ast.FlavorEpistemic, Force: 0.5}
	case token.KW_SHOULD:
		p.advance()
		return &ast.ModalVector{Domain: ast.DomainDeontic, Flavor: ast.FlavorRoot, Force: 0.75}
	}
	return nil
}
