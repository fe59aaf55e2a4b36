// Package discovery implements the pass that runs before parsing (C4): it
// walks the token stream once to register every user-defined type and
// policy name, so the parser can resolve a forward reference ("a Farmer"
// mentioned before its "## A Farmer has" block) without a second pass.
package discovery

import (
	"strings"

	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/token"
)

// TypeKind distinguishes a struct-shaped type from an enum-shaped one.
type TypeKind int

const (
	TypeStruct TypeKind = iota
	TypeEnum
)

// TypeInfo is what the discovery pass records about one user-defined type.
// Field/variant names are collected as plain identifiers; the parser fills
// in full TypeExpr annotations when it later parses the block body.
type TypeInfo struct {
	Name   string
	Kind   TypeKind
	Fields []string // struct field names, in declaration order
	Variants []string // enum variant names, in declaration order
	Span   token.Span
}

// PolicyInfo is what the discovery pass records about a "## Policy" block.
type PolicyInfo struct {
	Name string
	Span token.Span
}

// TypeRegistry maps a type name to its discovered shape.
type TypeRegistry struct {
	byName map[string]*TypeInfo
	order  []string
}

func newTypeRegistry() *TypeRegistry {
	return &TypeRegistry{byName: make(map[string]*TypeInfo)}
}

// Lookup returns the TypeInfo for name, if the discovery pass found it.
func (r *TypeRegistry) Lookup(name string) (*TypeInfo, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Names returns every discovered type name, in source order.
func (r *TypeRegistry) Names() []string { return r.order }

func (r *TypeRegistry) register(info *TypeInfo) {
	if _, exists := r.byName[info.Name]; exists {
		return
	}
	r.byName[info.Name] = info
	r.order = append(r.order, info.Name)
}

// PolicyRegistry maps a policy name to its discovered location.
type PolicyRegistry struct {
	byName map[string]*PolicyInfo
	order  []string
}

func newPolicyRegistry() *PolicyRegistry {
	return &PolicyRegistry{byName: make(map[string]*PolicyInfo)}
}

func (r *PolicyRegistry) Lookup(name string) (*PolicyInfo, bool) {
	p, ok := r.byName[name]
	return p, ok
}

func (r *PolicyRegistry) Names() []string { return r.order }

func (r *PolicyRegistry) register(info *PolicyInfo) {
	if _, exists := r.byName[info.Name]; exists {
		return
	}
	r.byName[info.Name] = info
	r.order = append(r.order, info.Name)
}

// Discover walks toks once, registering every struct, enum, and policy
// block header it finds. It never consults the registries it is building,
// so declaration order within the source never matters to it.
func Discover(toks []token.Token) (*TypeRegistry, *PolicyRegistry, *diagnostics.Bag) {
	types := newTypeRegistry()
	policies := newPolicyRegistry()
	bag := &diagnostics.Bag{}

	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.Kind {
		case token.BLOCK_STRUCT:
			info := &TypeInfo{Name: tok.BlockHeaderText, Kind: TypeStruct, Span: tok.Span}
			info.Fields = collectFieldNames(toks, i+1)
			types.register(info)
		case token.BLOCK_ENUM:
			info := &TypeInfo{Name: tok.BlockHeaderText, Kind: TypeEnum, Span: tok.Span}
			info.Variants = collectFieldNames(toks, i+1)
			types.register(info)
		case token.BLOCK_POLICY:
			policies.register(&PolicyInfo{Name: strings.TrimSpace(tok.BlockHeaderText), Span: tok.Span})
		}
	}
	return types, policies, bag
}

// collectFieldNames scans forward from a block header to the next block
// header (or EOF), picking out NOUN/IDENT tokens at the start of a line as
// candidate field or variant names. This is a coarse pre-pass; the parser
// re-derives authoritative field types when it parses the block body.
func collectFieldNames(toks []token.Token, start int) []string {
	var names []string
	atLineStart := true
	for i := start; i < len(toks); i++ {
		t := toks[i]
		if t.Kind.IsBlockHeader() || t.Kind == token.EOF {
			break
		}
		if t.Kind == token.NEWLINE {
			atLineStart = true
			continue
		}
		if atLineStart && (t.Kind == token.NOUN || t.Kind == token.IDENT) {
			names = append(names, t.Lexeme)
		}
		atLineStart = false
	}
	return names
}
