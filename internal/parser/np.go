package parser

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/lexicon"
	"github.com/logos-lang/logos/internal/token"
)

// parseNP parses a noun phrase and, for a quantified common noun, returns
// the machinery needed to wrap the enclosing clause in a Quantifier. roleHint
// is purely documentary (used by callers choosing a thematic role).
func (p *Parser) parseNP(roleHint string) npResult {
	switch p.cur().Kind {
	case token.PRONOUN:
		return p.parsePronoun()
	case token.ARTICLE, token.KW_ALL, token.KW_SOME, token.KW_NO, token.KW_MOST,
		token.KW_FEW, token.CARDINAL, token.AT_LEAST, token.AT_MOST:
		return p.parseQuantifiedNP()
	case token.NOUN, token.ADJECTIVE:
		return p.parseBareNP()
	default:
		// Proper noun / identifier: a constant, no quantifier.
		name := p.advance().Lexeme
		return npResult{term: p.allocTerm(ast.Constant{Name: p.interner.Intern(name)})}
	}
}

func (p *Parser) parsePronoun() npResult {
	tok := p.advance()
	gender, number := "", ""
	if tok.Pronoun != nil {
		gender, number = tok.Pronoun.Gender, tok.Pronoun.Number
	}
	if ref, ok := p.drs.resolvePronoun(gender, number); ok {
		return npResult{term: p.allocTerm(ast.Variable{Name: ref.Variable}), referent: ref}
	}
	// No antecedent found (a document-initial pronoun, or a genuine
	// discourse-new use): mint a fresh free variable so downstream passes
	// still see a well-formed term. No diagnostic is reported for it.
	v := p.freshVar("it")
	return npResult{term: p.allocTerm(ast.Variable{Name: v})}
}

// quantifierDeterminer maps a determiner token to a QuantifierKind and a
// "no" special-case flag.
func (p *Parser) quantifierDeterminer() (ast.QuantifierKind, float64, bool) {
	tok := p.cur()
	switch tok.Kind {
	case token.KW_ALL:
		p.advance()
		return ast.QUniversal, 0, false
	case token.KW_SOME:
		p.advance()
		return ast.QExistential, 0, false
	case token.KW_NO:
		p.advance()
		return ast.QExistential, 0, true
	case token.KW_MOST:
		p.advance()
		return ast.QMost, 0, false
	case token.KW_FEW:
		p.advance()
		return ast.QFew, 0, false
	case token.CARDINAL:
		p.advance()
		return ast.QCardinal, tok.Number, false
	case token.AT_LEAST:
		p.advance()
		num := p.cur()
		if num.Kind == token.CARDINAL || num.Kind == token.NUMBER {
			p.advance()
		}
		return ast.QAtLeast, num.Number, false
	case token.AT_MOST:
		p.advance()
		num := p.cur()
		if num.Kind == token.CARDINAL || num.Kind == token.NUMBER {
			p.advance()
		}
		return ast.QAtMost, num.Number, false
	case token.ARTICLE:
		def, _ := lexicon.LookupArticle(tok.Lexeme)
		p.advance()
		if def == "definite" {
			return ast.QExistential, 0, false // simplified: treat "the N" as introducing/identifying a unique referent
		}
		return ast.QExistential, 0, false
	}
	return ast.QExistential, 0, false
}

func (p *Parser) parseQuantifiedNP() npResult {
	kind, n, isNo := p.quantifierDeterminer()
	restriction, np := p.parseNounCore()
	variable := np.Variable
	p.drs.introduce(np)
	return npResult{
		term:        p.allocTerm(ast.Variable{Name: variable}),
		quantified:  true,
		kind:        kind,
		n:           n,
		variable:    variable,
		restriction: restriction,
		negateOuter: isNo,
		referent:    np,
	}
}

// parseBareNP handles a bare plural ("dogs bark") as a Generic quantifier
// and a bare singular without a determiner as an existential.
func (p *Parser) parseBareNP() npResult {
	restriction, np := p.parseNounCore()
	p.drs.introduce(np)
	kind := ast.QGeneric
	if np.Number != "plural" {
		kind = ast.QExistential
	}
	return npResult{
		term:        p.allocTerm(ast.Variable{Name: np.Variable}),
		quantified:  true,
		kind:        kind,
		variable:    np.Variable,
		restriction: restriction,
		referent:    np,
	}
}

// parseNounCore consumes adjectives then the head noun, building the
// intersective restriction Predicate(noun, x) /\ Predicate(adj, x)* and a
// NounPhrase discourse referent. Non-intersective/gradable adjective
// readings are rewritten later by C6's axiom application.
func (p *Parser) parseNounCore() (ast.LogicExpr, *ast.NounPhrase) {
	var adjLemmas []string
	for p.at(token.ADJECTIVE) {
		adjLemmas = append(adjLemmas, p.advance().Lexeme)
	}
	headTok, _ := p.expect(token.NOUN)
	lemma := headTok.Lexeme
	number := "singular"
	if noun, ok := lexicon.LookupNoun(headTok.Lexeme); ok {
		lemma = noun.Lemma
		if noun.Forms["plural"] == headTok.Lexeme {
			number = "plural"
		}
	}
	sort, _ := lexicon.PredicateArgSort(lemma)
	v := p.freshVar(lemma)
	restriction := p.allocLogic(ast.Predicate{Name: p.interner.Intern(lemma), Args: []ast.Term{p.allocTerm(ast.Variable{Name: v})}})
	for _, adj := range adjLemmas {
		adjPred := p.allocLogic(ast.Predicate{Name: p.interner.Intern(adj), Args: []ast.Term{p.allocTerm(ast.Variable{Name: v})}})
		restriction = p.allocLogic(ast.BinaryOp{Op: ast.OpAnd, Left: restriction, Right: adjPred})
	}
	np := &ast.NounPhrase{Head: p.interner.Intern(lemma), Variable: v, Number: number, Sort: sort}
	return restriction, np
}

// parseVerbPhrase consumes a VERB and its objects, producing a NeoEvent
// (wrapped in Temporal/Aspectual nodes per the verb's inflection) with the
// subject bound to the Agent role. Object NPs that are themselves
// quantified wrap the resulting clause in their own Quantifier, giving one
// scope reading; C6's scope-enumeration pass generates the alternatives.
func (p *Parser) parseVerbPhrase(subject npResult) ast.LogicExpr {
	verbTok, _ := p.expect(token.VERB)
	lemma := verbTok.Lexeme
	if verbTok.Verb != nil {
		lemma = verbTok.Verb.Lemma
	}
	eventVar := p.freshVar("e")
	roles := []ast.RoleFiller{{Role: ast.RoleAgent, Filler: subject.term}}

	var objQuants []npResult
	objIndex := 0
	for p.isNPStart() {
		obj := p.parseNP("Theme")
		role := ast.RoleTheme
		if objIndex == 1 {
			role = ast.RoleRecipient
		}
		roles = append(roles, ast.RoleFiller{Role: role, Filler: obj.term})
		if obj.quantified {
			objQuants = append(objQuants, obj)
		}
		objIndex++
		if p.at(token.COMMA) {
			p.advance()
		}
	}
	for p.at(token.PREPOSITION) {
		prepTok := p.advance()
		obj := p.parseNP("Oblique")
		_ = prepTok
		if obj.quantified {
			objQuants = append(objQuants, obj)
		}
		role := ast.RoleInstrument
		if lexicon.IsDitransitiveVerb(lemma) {
			role = ast.RoleGoal
		}
		roles = append(roles, ast.RoleFiller{Role: role, Filler: obj.term})
	}

	event := p.allocLogic(ast.NeoEvent{EventVar: eventVar, Verb: p.interner.Intern(lemma), Roles: roles})
	body := p.wrapTenseAspect(event, verbTok)

	for i := len(objQuants) - 1; i >= 0; i-- {
		oq := objQuants[i]
		body = p.allocLogic(ast.Quantifier{Kind: oq.kind, N: oq.n, Variable: oq.variable, Restriction: oq.restriction, Body: body})
		if oq.negateOuter {
			body = p.allocLogic(ast.UnaryOp{Operand: body})
		}
	}
	return body
}

func (p *Parser) wrapTenseAspect(event ast.LogicExpr, verbTok token.Token) ast.LogicExpr {
	if verbTok.Verb == nil {
		return event
	}
	body := event
	switch verbTok.Verb.Aspect {
	case "progressive":
		body = p.allocLogic(ast.Aspectual{Aspect: ast.AspectProgressive, Body: body})
	}
	switch verbTok.Verb.Time {
	case "past":
		body = p.allocLogic(ast.Temporal{Tense: ast.TensePast, Body: body})
	}
	return body
}
