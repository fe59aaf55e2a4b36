package parser

import (
	"strings"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/token"
)

// parseFunctionDef parses a "## To <signature>" block. The signature text
// was already captured verbatim by the lexer as BlockHeaderText; here we
// pull out a bare function name (the word immediately after "To") and
// parse the body as ordinary statements, deferring full signature grammar
// (typed params, generics, return arrow) to a later pass over
// BlockHeaderText once the codegen target's calling convention is fixed.
func (p *Parser) parseFunctionDef() ast.Stmt {
	header := p.advance() // BLOCK_TO
	sig := header.BlockHeaderText
	name := firstWord(sig)
	p.skipNewlines()
	body := p.parseStmtsUntilBlockHeader()
	return p.allocStmt(ast.FunctionDef{Name: p.interner.Intern(name), Body: body})
}

func (p *Parser) parseTheorem() ast.Stmt {
	header := p.advance() // BLOCK_THEOREM
	name := strings.TrimSuffix(header.BlockHeaderText, ":")
	p.skipNewlines()

	var premises []ast.LogicExpr
	var goal ast.LogicExpr
	strategy := ast.StrategyAuto

	for !p.at(token.EOF) && !p.cur().Kind.IsBlockHeader() {
		line := p.cur()
		if line.Kind == token.IDENT && strings.EqualFold(line.Lexeme, "Premise") {
			p.advance()
			premises = append(premises, p.ParseSentence())
			continue
		}
		if line.Kind == token.IDENT && strings.EqualFold(line.Lexeme, "Goal") {
			p.advance()
			goal = p.ParseSentence()
			continue
		}
		if line.Kind == token.IDENT && strings.EqualFold(line.Lexeme, "Strategy") {
			p.advance()
			word := p.advance().Lexeme
			if strings.EqualFold(word, "Manual") {
				strategy = ast.StrategyManual
			}
			p.consumeStmtEnd()
			continue
		}
		if line.Kind == token.NEWLINE {
			p.advance()
			continue
		}
		// Any other leading token: parse it as a bare premise sentence.
		premises = append(premises, p.ParseSentence())
	}
	return p.allocStmt(ast.Theorem{Name: name, Premises: premises, Goal: goal, Strategy: strategy})
}

func (p *Parser) parseStructDef() ast.Stmt {
	header := p.advance() // BLOCK_STRUCT
	name := header.BlockHeaderText
	p.skipNewlines()
	var fields []ast.FieldDef
	for !p.at(token.EOF) && !p.cur().Kind.IsBlockHeader() {
		if p.at(token.NEWLINE) {
			p.advance()
			continue
		}
		fieldName := p.advance().Lexeme
		var ty ast.TypeExpr = ast.Primitive{Name: "Int"} // default; refined by a later type-annotation grammar
		if p.at(token.COLON) {
			p.advance()
			ty = p.parseTypeExpr()
		}
		fields = append(fields, ast.FieldDef{Name: p.interner.Intern(fieldName), Type: ty})
		p.consumeStmtEnd()
	}
	return p.allocStmt(ast.StructDef{Name: p.interner.Intern(name), Fields: fields})
}

func (p *Parser) parseEnumDef() ast.Stmt {
	header := p.advance() // BLOCK_ENUM
	name := header.BlockHeaderText
	p.skipNewlines()
	var variants []ast.VariantDef
	for !p.at(token.EOF) && !p.cur().Kind.IsBlockHeader() {
		if p.at(token.NEWLINE) {
			p.advance()
			continue
		}
		variantName := p.advance().Lexeme
		variants = append(variants, ast.VariantDef{Name: p.interner.Intern(variantName)})
		p.consumeStmtEnd()
	}
	return p.allocStmt(ast.EnumDef{Name: p.interner.Intern(name), Variants: variants})
}

func (p *Parser) allocTypeExpr(n ast.TypeExpr) ast.TypeExpr { return *p.arenas.TypeExprs.Alloc(n) }

func (p *Parser) parseTypeExpr() ast.TypeExpr {
	name := p.advance().Lexeme
	switch name {
	case "Int", "Float", "String", "Bool", "Character", "Nothing":
		return p.allocTypeExpr(ast.Primitive{Name: name})
	default:
		return p.allocTypeExpr(ast.Named{Name: p.interner.Intern(name)})
	}
}

func firstWord(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " ("); i >= 0 {
		return s[:i]
	}
	return s
}
