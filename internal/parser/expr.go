package parser

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/token"
)

func (p *Parser) allocExpr(n ast.Expr) ast.Expr { return *p.arenas.Exprs.Alloc(n) }

// parseExpr parses an imperative expression with the usual additive/
// multiplicative precedence climb.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.at(token.PLUS) || p.at(token.MINUS) {
		op := p.advance().Lexeme
		right := p.parseMultiplicative()
		left = p.allocExpr(ast.ExprBinaryOp{Op: op, Left: left, Right: right})
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parsePostfix()
	for p.at(token.STAR) || p.at(token.SLASH) {
		op := p.advance().Lexeme
		right := p.parsePostfix()
		left = p.allocExpr(ast.ExprBinaryOp{Op: op, Left: left, Right: right})
	}
	return left
}

func (p *Parser) parsePostfix() ast.Expr {
	e := p.parsePrimary()
	for {
		switch {
		case p.at(token.LBRACKET):
			p.advance()
			idx := p.parseExpr()
			p.expect(token.RBRACKET)
			e = p.allocExpr(ast.Index{Target: e, Key: idx})
		case p.at(token.COLON) && p.peekAt(1).Kind == token.IDENT:
			p.advance()
			field := p.advance()
			e = p.allocExpr(ast.FieldAccess{Target: e, Field: p.interner.Intern(field.Lexeme)})
		default:
			return e
		}
	}
}

// tryClosureParams speculatively parses a "(name, name, ...)" parameter
// list that is immediately followed by "->", the signal that the
// parenthesized group is a closure literal rather than a grouped
// expression. On failure it restores the cursor and reports nothing.
func (p *Parser) tryClosureParams() ([]intern.Symbol, bool) {
	g := p.guard()
	if !p.at(token.LPAREN) {
		g.restore()
		return nil, false
	}
	p.advance()
	var params []intern.Symbol
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		if p.cur().Kind != token.IDENT && p.cur().Kind != token.NOUN {
			g.restore()
			return nil, false
		}
		params = append(params, p.interner.Intern(p.advance().Lexeme))
		if p.at(token.COMMA) {
			p.advance()
		}
	}
	if !p.at(token.RPAREN) {
		g.restore()
		return nil, false
	}
	p.advance()
	if !p.at(token.ARROW) {
		g.restore()
		return nil, false
	}
	g.commit()
	return params, true
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur()
	switch tok.Kind {
	case token.NUMBER, token.CARDINAL:
		p.advance()
		return p.allocExpr(ast.Literal{Kind: ast.LitInt, Num: tok.Number})
	case token.FLOAT:
		p.advance()
		return p.allocExpr(ast.Literal{Kind: ast.LitFloat, Num: tok.Number})
	case token.STRING:
		p.advance()
		return p.allocExpr(ast.Literal{Kind: ast.LitString, Str: tok.Lexeme})
	case token.BOOLEAN:
		p.advance()
		return p.allocExpr(ast.Literal{Kind: ast.LitBool, Bool: tok.Number != 0})
	case token.NOTHING:
		p.advance()
		return p.allocExpr(ast.Literal{Kind: ast.LitNothing})
	case token.LPAREN:
		if params, ok := p.tryClosureParams(); ok {
			p.expect(token.ARROW)
			p.skipNewlines()
			body := p.parseStmtsUntilDedentOrBlockHeader()
			return p.allocExpr(ast.Closure{Params: params, Body: body})
		}
		p.advance()
		e := p.parseExpr()
		p.expect(token.RPAREN)
		return e
	case token.LBRACKET:
		p.advance()
		var elems []ast.Expr
		for !p.at(token.RBRACKET) && !p.at(token.EOF) {
			elems = append(elems, p.parseExpr())
			if p.at(token.COMMA) {
				p.advance()
			}
		}
		p.expect(token.RBRACKET)
		return p.allocExpr(ast.List{Elements: elems})
	case token.IDENT, token.NOUN:
		name := p.advance()
		if p.at(token.LPAREN) {
			p.advance()
			var args []ast.Expr
			for !p.at(token.RPAREN) && !p.at(token.EOF) {
				args = append(args, p.parseExpr())
				if p.at(token.COMMA) {
					p.advance()
				}
			}
			p.expect(token.RPAREN)
			return p.allocExpr(ast.Call{Callee: p.interner.Intern(name.Lexeme), Args: args})
		}
		return p.allocExpr(ast.Identifier{Name: p.interner.Intern(name.Lexeme)})
	default:
		p.advance()
		return p.allocExpr(ast.Literal{Kind: ast.LitNothing})
	}
}
