package parser

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/token"
)

func (p *Parser) allocStmt(n ast.Stmt) ast.Stmt { return *p.arenas.Stmts.Alloc(n) }

// parseStmt parses one imperative statement, or falls back to a bare
// declarative sentence wrapped in an Assert when no imperative keyword
// introduces the line (a standalone fact stated inside a Main/To block).
func (p *Parser) parseStmt() ast.Stmt {
	p.skipNewlines()
	switch p.cur().Kind {
	case token.EOF:
		return nil
	case token.KW_LET:
		return p.parseLet()
	case token.KW_SET:
		return p.parseSet()
	case token.KW_IF:
		return p.parseIf()
	case token.KW_WHILE:
		return p.parseWhile()
	case token.KW_REPEAT:
		return p.parseRepeat()
	case token.KW_SHOW:
		p.advance()
		v := p.parseExpr()
		p.consumeStmtEnd()
		return p.allocStmt(ast.Show{Value: v})
	case token.KW_RETURN:
		p.advance()
		if p.at(token.PERIOD) || p.at(token.NEWLINE) || p.at(token.EOF) {
			p.consumeStmtEnd()
			return p.allocStmt(ast.Return{})
		}
		v := p.parseExpr()
		p.consumeStmtEnd()
		return p.allocStmt(ast.Return{Value: v})
	case token.KW_ASSERT:
		p.advance()
		cond := p.ParseSentence()
		return p.allocStmt(ast.Assert{Cond: cond})
	case token.KW_TRUST:
		p.advance()
		cond := p.ParseSentence()
		return p.allocStmt(ast.Trust{Cond: cond})
	case token.KW_GIVE:
		p.advance()
		v := p.parseExpr()
		p.consumeStmtEnd()
		return p.allocStmt(ast.Give{Value: v})
	case token.KW_PUSH:
		p.advance()
		target := p.parseExpr()
		p.expect(token.COMMA)
		value := p.parseExpr()
		p.consumeStmtEnd()
		return p.allocStmt(ast.Push{Target: target, Value: value})
	case token.KW_POP:
		p.advance()
		target := p.parseExpr()
		var bind intern.Symbol
		if p.at(token.ARROW) {
			p.advance()
			bind = p.interner.Intern(p.advance().Lexeme)
		}
		p.consumeStmtEnd()
		return p.allocStmt(ast.Pop{Target: target, Bind: bind})
	case token.KW_ZONE:
		return p.parseZone()
	case token.KW_CONCURRENT:
		p.advance()
		p.skipNewlines()
		body := p.parseStmtsUntilDedentOrBlockHeader()
		return p.allocStmt(ast.Concurrent{Body: body})
	case token.KW_PARALLEL:
		p.advance()
		p.skipNewlines()
		body := p.parseStmtsUntilDedentOrBlockHeader()
		return p.allocStmt(ast.Parallel{Body: body})
	case token.KW_LAUNCH:
		p.advance()
		call := p.parseExpr()
		p.consumeStmtEnd()
		return p.allocStmt(ast.LaunchTask{Call: call})
	case token.KW_SEND:
		p.advance()
		ch := p.parseExpr()
		p.expect(token.COMMA)
		val := p.parseExpr()
		p.consumeStmtEnd()
		return p.allocStmt(ast.SendPipe{Channel: ch, Value: val})
	case token.KW_RECEIVE:
		p.advance()
		ch := p.parseExpr()
		var bind intern.Symbol
		if p.at(token.ARROW) {
			p.advance()
			bind = p.interner.Intern(p.advance().Lexeme)
		}
		p.consumeStmtEnd()
		return p.allocStmt(ast.ReceivePipe{Channel: ch, Bind: bind})
	case token.KW_SLEEP:
		p.advance()
		d := p.parseExpr()
		p.consumeStmtEnd()
		return p.allocStmt(ast.Sleep{Duration: d})
	case token.KW_SYNC:
		p.advance()
		t := p.parseExpr()
		p.consumeStmtEnd()
		return p.allocStmt(ast.Sync{Target: t})
	case token.KW_REQUIRE:
		p.advance()
		name := p.advance().Lexeme
		p.consumeStmtEnd()
		return p.allocStmt(ast.Require{CrateName: name})
	case token.KW_READ:
		return p.parseReadFrom()
	case token.KW_WRITE:
		p.advance()
		path := p.parseExpr()
		p.expect(token.COMMA)
		data := p.parseExpr()
		p.consumeStmtEnd()
		return p.allocStmt(ast.WriteFile{Path: path, Data: data})
	case token.KW_MOUNT:
		p.advance()
		path := p.parseExpr()
		var bind intern.Symbol
		if p.at(token.ARROW) {
			p.advance()
			bind = p.interner.Intern(p.advance().Lexeme)
		}
		p.consumeStmtEnd()
		return p.allocStmt(ast.Mount{Path: path, Bind: bind})
	case token.KW_LISTEN:
		p.advance()
		addr := p.parseExpr()
		var bind intern.Symbol
		if p.at(token.ARROW) {
			p.advance()
			bind = p.interner.Intern(p.advance().Lexeme)
		}
		p.consumeStmtEnd()
		return p.allocStmt(ast.Listen{Address: addr, Bind: bind})
	case token.KW_CONNECT:
		p.advance()
		addr := p.parseExpr()
		var bind intern.Symbol
		if p.at(token.ARROW) {
			p.advance()
			bind = p.interner.Intern(p.advance().Lexeme)
		}
		p.consumeStmtEnd()
		return p.allocStmt(ast.ConnectTo{Address: addr, Bind: bind})
	case token.KW_SELECT:
		return p.parseSelect()
	case token.KW_INSPECT:
		return p.parseInspect()
	case token.KW_INCREASE:
		p.advance()
		target := p.parseExpr()
		p.expect(token.COMMA)
		value := p.parseExpr()
		p.consumeStmtEnd()
		return p.allocStmt(ast.CrdtStmt{Op: ast.CRDTIncrease, Target: target, Value: value})
	case token.KW_DECREASE:
		p.advance()
		target := p.parseExpr()
		p.expect(token.COMMA)
		value := p.parseExpr()
		p.consumeStmtEnd()
		return p.allocStmt(ast.CrdtStmt{Op: ast.CRDTDecrease, Target: target, Value: value})
	case token.KW_MERGE:
		p.advance()
		target := p.parseExpr()
		p.expect(token.COMMA)
		other := p.parseExpr()
		p.consumeStmtEnd()
		return p.allocStmt(ast.CrdtStmt{Op: ast.CRDTMerge, Target: target, Other: other})
	default:
		// No imperative keyword recognized: treat the line as a bare
		// declarative assertion.
		cond := p.ParseSentence()
		return p.allocStmt(ast.Assert{Cond: cond})
	}
}

func (p *Parser) consumeStmtEnd() {
	if p.at(token.PERIOD) {
		p.advance()
	}
	p.skipNewlines()
}

func (p *Parser) parseLet() ast.Stmt {
	p.advance() // let
	name := p.advance()
	mutable := false
	if p.at(token.KW_BE) {
		p.advance()
	}
	var value ast.Expr
	if p.at(token.EQUALS) {
		p.advance()
		value = p.parseExpr()
	} else {
		value = p.parseExpr()
	}
	p.consumeStmtEnd()
	return p.allocStmt(ast.Let{Var: p.interner.Intern(name.Lexeme), Value: value, Mutable: mutable})
}

func (p *Parser) parseSet() ast.Stmt {
	p.advance() // set
	name := p.advance()
	if p.at(token.KW_TO) || p.at(token.EQUALS) {
		p.advance()
	}
	value := p.parseExpr()
	p.consumeStmtEnd()
	return p.allocStmt(ast.Set{Var: p.interner.Intern(name.Lexeme), Value: value})
}

func (p *Parser) parseIf() ast.Stmt {
	p.advance() // if
	cond := p.parseExpr()
	if p.at(token.KW_THEN) {
		p.advance()
	}
	p.skipNewlines()
	then := p.parseStmtsUntilDedentOrBlockHeader()
	var els []ast.Stmt
	if p.at(token.KW_ELSE) {
		p.advance()
		p.skipNewlines()
		els = p.parseStmtsUntilDedentOrBlockHeader()
	}
	return p.allocStmt(ast.If{Cond: cond, Then: then, Else: els})
}

func (p *Parser) parseWhile() ast.Stmt {
	p.advance() // while
	cond := p.parseExpr()
	p.skipNewlines()
	body := p.parseStmtsUntilDedentOrBlockHeader()
	return p.allocStmt(ast.While{Cond: cond, Body: body})
}

func (p *Parser) parseRepeat() ast.Stmt {
	p.advance() // repeat
	pattern := p.advance().Lexeme
	if p.at(token.KW_IN) {
		p.advance()
	}
	iterable := p.parseExpr()
	p.skipNewlines()
	body := p.parseStmtsUntilDedentOrBlockHeader()
	return p.allocStmt(ast.Repeat{Pattern: p.interner.Intern(pattern), Iterable: iterable, Body: body})
}

// parseReadFrom parses "Read" (plain, from the console) or "Read file <expr>",
// optionally binding the result with "-> name".
func (p *Parser) parseReadFrom() ast.Stmt {
	p.advance() // read
	source := ast.ReadConsole
	var fileExpr ast.Expr
	if p.cur().Kind == token.IDENT && p.cur().Lexeme == "file" {
		p.advance()
		fileExpr = p.parseExpr()
		source = ast.ReadFile
	}
	var bind intern.Symbol
	if p.at(token.ARROW) {
		p.advance()
		bind = p.interner.Intern(p.advance().Lexeme)
	}
	p.consumeStmtEnd()
	return p.allocStmt(ast.ReadFrom{Source: source, FileExpr: fileExpr, Bind: bind})
}

// parseSelect parses a "Select" block whose arms are introduced by "Receive".
func (p *Parser) parseSelect() ast.Stmt {
	p.advance() // select
	p.skipNewlines()
	var arms []ast.SelectArm
	for p.at(token.KW_RECEIVE) {
		p.advance()
		ch := p.parseExpr()
		var bind intern.Symbol
		if p.at(token.ARROW) {
			p.advance()
			bind = p.interner.Intern(p.advance().Lexeme)
		}
		p.skipNewlines()
		body := p.parseArmBody()
		arms = append(arms, ast.SelectArm{Channel: ch, Bind: bind, Body: body})
	}
	return p.allocStmt(ast.Select{Arms: arms})
}

// parseInspect parses an "Inspect <target>" block whose arms are value
// patterns, ending with an optional "otherwise" catch-all arm.
func (p *Parser) parseInspect() ast.Stmt {
	p.advance() // inspect
	target := p.parseExpr()
	p.skipNewlines()
	var arms []ast.InspectArm
	for !p.at(token.EOF) && !p.cur().Kind.IsBlockHeader() && !p.at(token.KW_OTHERWISE) {
		pattern := p.parseExpr()
		p.skipNewlines()
		body := p.parseArmBody()
		arms = append(arms, ast.InspectArm{Pattern: pattern, Body: body})
	}
	hasOtherwise := false
	var otherwise []ast.Stmt
	if p.at(token.KW_OTHERWISE) {
		p.advance()
		p.skipNewlines()
		hasOtherwise = true
		otherwise = p.parseArmBody()
	}
	return p.allocStmt(ast.Inspect{Target: target, Arms: arms, HasOtherwise: hasOtherwise, Otherwise: otherwise})
}

// parseArmBody parses the statements of one Select/Inspect arm, stopping at
// the next arm (Receive, or the start of another pattern at the same
// nesting point), the otherwise arm, a block header, or EOF.
func (p *Parser) parseArmBody() []ast.Stmt {
	var out []ast.Stmt
	for !p.at(token.EOF) && !p.cur().Kind.IsBlockHeader() &&
		!p.at(token.KW_RECEIVE) && !p.at(token.KW_OTHERWISE) {
		s := p.parseStmt()
		if s == nil {
			break
		}
		out = append(out, s)
		p.skipNewlines()
	}
	return out
}

func (p *Parser) parseZone() ast.Stmt {
	p.advance() // zone
	name := p.advance().Lexeme
	var cap ast.Expr
	if p.at(token.LPAREN) {
		p.advance()
		cap = p.parseExpr()
		p.expect(token.RPAREN)
	}
	p.skipNewlines()
	body := p.parseStmtsUntilDedentOrBlockHeader()
	return p.allocStmt(ast.Zone{Name: p.interner.Intern(name), Capacity: cap, Body: body})
}

// parseStmtsUntilDedentOrBlockHeader parses a nested block's statements.
// This grammar has no explicit indentation tokens from the lexer (blocks
// are newline-separated, not brace-delimited); nesting ends at the next
// block header or EOF. A real dedent-tracking lexer pass is future work
// for deeply nested control flow (see DESIGN.md).
func (p *Parser) parseStmtsUntilDedentOrBlockHeader() []ast.Stmt {
	var out []ast.Stmt
	for !p.at(token.EOF) && !p.cur().Kind.IsBlockHeader() && !p.at(token.KW_ELSE) {
		s := p.parseStmt()
		if s == nil {
			break
		}
		out = append(out, s)
		p.skipNewlines()
	}
	return out
}
