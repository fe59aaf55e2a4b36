// Package transpile renders a LogicExpr tree (the output of C5/C6) back
// into first-order-logic text in one of several display formats.
package transpile

// Format selects the glyph set Transpiler uses for connectives and
// quantifiers.
type Format int

const (
	Unicode Format = iota
	SimpleFOL
	Kripke
	LaTeX
)

// glyphs is one row of connective/quantifier symbols per Format.
type glyphs struct {
	forall, exists, and, or, not, implies, iff string
}

var glyphTable = map[Format]glyphs{
	Unicode:   {"∀", "∃", "∧", "∨", "¬", "→", "↔"},
	SimpleFOL: {"forall", "exists", "/\\", "\\/", "~", "->", "<->"},
	Kripke:    {"∀", "∃", "∧", "∨", "¬", "→", "↔"},
	LaTeX:     {`\forall`, `\exists`, `\land`, `\lor`, `\neg`, `\to`, `\leftrightarrow`},
}
