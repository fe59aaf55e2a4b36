// Package parser turns a token stream into an arena-allocated AST (C5):
// recursive descent over both the declarative (natural-language sentence)
// and imperative (structured statement) halves of the grammar, sharing one
// speculative-backtracking cursor and one discourse representation store
// for anaphora.
package parser

import (
	"fmt"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/discovery"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/token"
)

// ModalPreference names a reading preference for polysemous modals
// (can/may/could). The Parser's modalPreference field is never set, and
// parseOptionalModal does not read it: each modal keyword maps to one
// fixed ModalVector.
type ModalPreference int

const (
	PreferDefault ModalPreference = iota
	PreferEpistemic
	PreferDeontic
)

// Parser holds all per-compilation state the grammar needs: the token
// cursor, the arena set new nodes are allocated into, the interner for
// identifiers, the type/policy registries discovery produced, the
// discourse store for anaphora, and the diagnostic bag every production
// reports into instead of aborting on the first error.
type Parser struct {
	toks     []token.Token
	pos      int
	arenas   *ast.Arenas
	interner *intern.Interner
	types    *discovery.TypeRegistry
	policies *discovery.PolicyRegistry
	bag      *diagnostics.Bag

	drs             *drs
	varCounter      int
	donkeyBindings  []donkeyBinding
	currentIsland   int
	pendingTime     string
	modalPreference ModalPreference
}

// donkeyBinding is the entry shape of the Parser's donkeyBindings stack,
// which guards save and restore. No production pushes onto it; a pronoun
// in a conditional's consequent is resolved by the DRS recency search
// alone.
type donkeyBinding struct {
	variable intern.Symbol
	gender   string
	number   string
	sort     string
}

// New creates a Parser over toks, sharing arenas/interner/registries with
// the rest of the compilation.
func New(toks []token.Token, arenas *ast.Arenas, interner *intern.Interner, types *discovery.TypeRegistry, policies *discovery.PolicyRegistry) *Parser {
	return &Parser{
		toks:     toks,
		arenas:   arenas,
		interner: interner,
		types:    types,
		policies: policies,
		bag:      &diagnostics.Bag{},
		drs:      newDRS(),
	}
}

// guardState is the snapshot a speculative cursor saves on entry and
// restores on an uncommitted drop, matching the spec's "guard()" cursor.
type guardState struct {
	pos            int
	varCounter     int
	donkeyLen      int
	currentIsland  int
	pendingTime    string
	drsBoxes       int
}

// guard saves the parser's speculative state. Call commit on the returned
// handle to keep the parse; otherwise call restore to back out of a failed
// speculative production (ambiguous PP attachment, modal polysemy, control
// vs raising).
func (p *Parser) guard() *guardHandle {
	return &guardHandle{
		p: p,
		state: guardState{
			pos:           p.pos,
			varCounter:    p.varCounter,
			donkeyLen:     len(p.donkeyBindings),
			currentIsland: p.currentIsland,
			pendingTime:   p.pendingTime,
			drsBoxes:      p.drs.boxCount(),
		},
		committed: false,
	}
}

type guardHandle struct {
	p         *Parser
	state     guardState
	committed bool
}

func (g *guardHandle) commit() { g.committed = true }

func (g *guardHandle) restore() {
	if g.committed {
		return
	}
	p := g.p
	p.pos = g.state.pos
	p.varCounter = g.state.varCounter
	p.donkeyBindings = p.donkeyBindings[:g.state.donkeyLen]
	p.currentIsland = g.state.currentIsland
	p.pendingTime = g.state.pendingTime
	p.drs.truncateBoxes(g.state.drsBoxes)
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	i := p.pos + offset
	if i >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[i]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.bag.Add(diagnostics.Diagnostic{
		Kind:    diagnostics.ParseUnexpectedToken,
		Span:    p.cur().Span,
		Message: fmt.Sprintf("expected %s, found %s %q", k, p.cur().Kind, p.cur().Lexeme),
		Tip:     fmt.Sprintf("insert a %s here.", k),
	})
	return p.cur(), false
}

func (p *Parser) skipNewlines() {
	for p.at(token.NEWLINE) {
		p.advance()
	}
}

func (p *Parser) freshVar(hint string) intern.Symbol {
	p.varCounter++
	return p.interner.Intern(fmt.Sprintf("%s#%d", hint, p.varCounter))
}

// Program is the root of a parsed source file: top-level statements plus
// any theorem blocks, collected in source order.
type Program struct {
	Statements []ast.Stmt
}

// ParseProgram parses an entire token stream into a Program and returns
// the diagnostics accumulated along the way. Parsing never aborts on the
// first bad top-level block; it skips to the next block header and
// continues, so a run reports as many problems as it can find.
func ParseProgram(toks []token.Token, arenas *ast.Arenas, interner *intern.Interner, types *discovery.TypeRegistry, policies *discovery.PolicyRegistry) (*Program, *diagnostics.Bag) {
	p := New(toks, arenas, interner, types, policies)
	prog := &Program{}
	p.skipNewlines()
	for !p.at(token.EOF) {
		before := p.pos
		stmt := p.parseTopLevelBlock()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.skipNewlines()
		if p.pos == before {
			p.advance() // guarantee forward progress past an unrecognized token
		}
	}
	return prog, p.bag
}

func (p *Parser) parseTopLevelBlock() ast.Stmt {
	switch p.cur().Kind {
	case token.BLOCK_MAIN:
		p.advance()
		p.skipNewlines()
		body := p.parseStmtsUntilBlockHeader()
		return p.allocStmt(ast.FunctionDef{Name: p.interner.Intern("Main"), Body: body})
	case token.BLOCK_TO:
		return p.parseFunctionDef()
	case token.BLOCK_THEOREM:
		return p.parseTheorem()
	case token.BLOCK_STRUCT:
		return p.parseStructDef()
	case token.BLOCK_ENUM:
		return p.parseEnumDef()
	case token.BLOCK_POLICY:
		p.advance()
		p.skipNewlines()
		p.parseStmtsUntilBlockHeader() // policy bodies are parsed and discarded, not executed
		return nil
	case token.BLOCK_REQUIRES:
		p.advance()
		p.skipNewlines()
		return nil
	default:
		return p.parseStmt()
	}
}

func (p *Parser) parseStmtsUntilBlockHeader() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.at(token.EOF) && !p.cur().Kind.IsBlockHeader() {
		s := p.parseStmt()
		if s != nil {
			stmts = append(stmts, s)
		}
		p.skipNewlines()
	}
	return stmts
}
