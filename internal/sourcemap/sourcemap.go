// Package sourcemap implements the SourceMap the code generator returns
// alongside its generated source (§3): a line-in-generated-source to
// original-span mapping, a symbol-role table for ownership diagnostics, and
// a nearest-line lookup so a target-toolchain error can be translated back
// to the original source.
package sourcemap

import (
	"github.com/google/uuid"

	"github.com/logos-lang/logos/internal/token"
)

// OwnershipRole classifies why a generated name was introduced, so a
// translated diagnostic can explain a use-after-move in terms the original
// source names rather than the generated identifier.
type OwnershipRole int

const (
	RoleUnknown OwnershipRole = iota
	RoleGiveObject
	RoleGiveRecipient
	RoleShowObject
	RoleShowRecipient
	RoleLetBinding
	RoleSetTarget
	RoleZoneLocal
)

// SymbolInfo is what NameInfo returns for a generated identifier.
type SymbolInfo struct {
	OriginalSymbol string
	Span           token.Span
	Role           OwnershipRole
}

// Map is the SourceMap produced by one compilation: CompilationID stamps it
// (and the project manifest CompileToDir writes) so a diagnostic can be
// correlated back to the session that produced it. FFI handles are not
// stamped with it.
type Map struct {
	CompilationID uuid.UUID
	lineToSpan    map[int]token.Span
	names         map[string]SymbolInfo
	maxLine       int
}

// New allocates an empty SourceMap for a fresh compilation.
func New() *Map {
	return &Map{
		CompilationID: uuid.New(),
		lineToSpan:    map[int]token.Span{},
		names:         map[string]SymbolInfo{},
	}
}

// RecordLine associates one line of generated source with a span in the
// original source.
func (m *Map) RecordLine(generatedLine int, span token.Span) {
	m.lineToSpan[generatedLine] = span
	if generatedLine > m.maxLine {
		m.maxLine = generatedLine
	}
}

// RecordName associates a generated identifier with the original symbol it
// came from and the role it plays, per §3's ownership-role tagging.
func (m *Map) RecordName(generatedName string, info SymbolInfo) {
	m.names[generatedName] = info
}

// NameInfo looks up a previously recorded generated identifier.
func (m *Map) NameInfo(generatedName string) (SymbolInfo, bool) {
	info, ok := m.names[generatedName]
	return info, ok
}

// NearestLine finds the original span for generatedLine, searching outward
// up to 5 lines in either direction when the exact line was never recorded
// (e.g. the target compiler points at a blank line a peephole lowering
// introduced). Closer lines are preferred; a tie prefers the earlier line.
func (m *Map) NearestLine(generatedLine int) (token.Span, bool) {
	if span, ok := m.lineToSpan[generatedLine]; ok {
		return span, true
	}
	for delta := 1; delta <= 5; delta++ {
		if span, ok := m.lineToSpan[generatedLine-delta]; ok {
			return span, true
		}
		if span, ok := m.lineToSpan[generatedLine+delta]; ok {
			return span, true
		}
	}
	return token.Span{}, false
}
