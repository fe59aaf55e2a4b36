package transpile

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// Printer renders LogicExpr/Term trees to text in one Format, sharing a
// SymbolRegistry so repeated Print calls in one discourse number
// consistently. Grounded on funxy's CodePrinter (bytes.Buffer, operator
// table, one print method per node kind) adapted from printing source
// code back to printing logical form.
type Printer struct {
	g        glyphs
	format   Format
	registry *SymbolRegistry
	interner *intern.Interner
	buf      strings.Builder
}

func NewPrinter(format Format, registry *SymbolRegistry, interner *intern.Interner) *Printer {
	return &Printer{g: glyphTable[format], format: format, registry: registry, interner: interner}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func (p *Printer) name(sym intern.Symbol) string { return p.interner.Resolve(sym) }

// Print renders expr and returns the accumulated text.
func (p *Printer) Print(expr ast.LogicExpr) string {
	p.buf.Reset()
	p.printLogic(expr)
	return p.buf.String()
}

func (p *Printer) write(s string) { p.buf.WriteString(s) }

func (p *Printer) printTerm(t ast.Term) {
	switch n := t.(type) {
	case ast.Constant:
		p.write(p.registry.Constant(n.Name))
	case ast.Variable:
		v := p.registry.Variable(n.Name)
		if n.Index > 0 {
			v = fmt.Sprintf("%s_%d", v, n.Index)
		}
		p.write(v)
	case ast.Function:
		p.write(p.name(n.Name))
		p.write("(")
		for i, a := range n.Args {
			if i > 0 {
				p.write(", ")
			}
			p.printTerm(a)
		}
		p.write(")")
	case ast.Group:
		p.write("{")
		for i, m := range n.Members {
			if i > 0 {
				p.write(" ⊕ ")
			}
			p.printTerm(m)
		}
		p.write("}")
	case ast.Possessed:
		p.printTerm(n.Owner)
		p.write(".")
		p.write(p.name(n.Property))
	case ast.Sigma:
		p.write("σ" + p.registry.Variable(n.Variable) + ".")
		p.printLogic(n.Restriction)
	case ast.Intension:
		p.write("^")
		p.printLogic(n.Body)
	case ast.Value:
		if n.Kind == ast.NumberInt {
			p.write(fmt.Sprintf("%d", int64(n.Num)))
		} else {
			p.write(fmt.Sprintf("%g", n.Num))
		}
	case ast.Proposition:
		p.write("[")
		p.printLogic(n.Expr)
		p.write("]")
	default:
		p.write("?")
	}
}

func (p *Printer) quantifierGlyph(k ast.QuantifierKind) string {
	switch k {
	case ast.QUniversal:
		return p.g.forall
	case ast.QExistential:
		return p.g.exists
	case ast.QMost:
		return "Most"
	case ast.QFew:
		return "Few"
	case ast.QMany:
		return "Many"
	case ast.QCardinal:
		return "Exactly"
	case ast.QAtLeast:
		return "AtLeast"
	case ast.QAtMost:
		return "AtMost"
	case ast.QGeneric:
		return "Gen"
	default:
		return "?"
	}
}

func (p *Printer) roleName(r ast.ThematicRole) string {
	switch r {
	case ast.RoleAgent:
		return "Agent"
	case ast.RoleTheme:
		return "Theme"
	case ast.RoleRecipient:
		return "Recipient"
	case ast.RoleGoal:
		return "Goal"
	case ast.RoleInstrument:
		return "Instrument"
	case ast.RoleExperiencer:
		return "Experiencer"
	case ast.RoleSource:
		return "Source"
	case ast.RoleBeneficiary:
		return "Beneficiary"
	case ast.RoleLocation:
		return "Location"
	default:
		return "Role"
	}
}

func (p *Printer) printLogic(expr ast.LogicExpr) {
	switch n := expr.(type) {
	case ast.Atom:
		p.write(capitalize(p.name(n.Name)))
	case ast.Predicate:
		p.write(capitalize(p.name(n.Name)))
		p.write("(")
		for i, a := range n.Args {
			if i > 0 {
				p.write(", ")
			}
			p.printTerm(a)
		}
		p.write(")")
	case ast.Identity:
		p.printTerm(n.Left)
		p.write(" = ")
		p.printTerm(n.Right)
	case ast.BinaryOp:
		p.printBinary(n)
	case ast.UnaryOp:
		p.write(p.g.not)
		p.printParenLogic(n.Operand)
	case ast.Quantifier:
		p.write(p.quantifierGlyph(n.Kind))
		p.write(p.registry.Variable(n.Variable))
		if n.Kind == ast.QCardinal || n.Kind == ast.QAtLeast || n.Kind == ast.QAtMost {
			p.write(fmt.Sprintf("[%g]", n.N))
		}
		p.write(".")
		if n.Restriction != nil {
			p.printParenLogic(n.Restriction)
			connective := p.g.and
			if n.Kind == ast.QUniversal {
				connective = p.g.implies
			}
			p.write(" " + connective + " ")
		}
		p.printParenLogic(n.Body)
	case ast.Modal:
		p.write(fmt.Sprintf("[Modal domain=%d force=%.2f] ", n.Vector.Domain, n.Vector.Force))
		p.printParenLogic(n.Operand)
	case ast.Temporal:
		tense := "PAST"
		if n.Tense == ast.TenseFuture {
			tense = "FUT"
		}
		p.write(tense + " ")
		p.printParenLogic(n.Body)
	case ast.Aspectual:
		p.write(aspectName(n.Aspect) + " ")
		p.printParenLogic(n.Body)
	case ast.Voice:
		if n.Passive && n.ByPhrase != nil {
			p.write("PASSIVE(by=")
			p.printTerm(n.ByPhrase)
			p.write(") ")
		}
		p.printParenLogic(n.Body)
	case ast.NeoEvent:
		p.printNeoEvent(n)
	case ast.Lambda:
		p.write("λ" + p.registry.Variable(n.Variable) + ".")
		p.printParenLogic(n.Body)
	case ast.App:
		p.printParenLogic(n.Fn)
		p.write("(")
		p.printTerm(n.Arg)
		p.write(")")
	case ast.Counterfactual:
		p.write(p.g.not)
		p.printParenLogic(n.Antecedent)
		p.write(" " + p.g.implies + " ")
		p.printParenLogic(n.Consequent)
	case ast.Causal:
		p.printParenLogic(n.Cause)
		p.write(" ⇒ ")
		p.printParenLogic(n.Effect)
	case ast.Control:
		p.write("CTRL(")
		p.printTerm(n.Controller)
		p.write(") ")
		p.printParenLogic(n.Body)
	case ast.Presupposition:
		p.printParenLogic(n.Presupposed)
		p.write(" ⊳ ")
		p.printParenLogic(n.Trigger)
	case ast.Focus:
		p.write("FOCUS[")
		p.printLogic(n.Focused)
		p.write("] ")
		p.printParenLogic(n.Body)
	case ast.Comparative:
		p.write(p.name(n.Gradable) + "(")
		p.printTerm(n.Subject)
		p.write(", ")
		p.printTerm(n.Standard)
		p.write(")")
	case ast.Question:
		p.write("?")
		p.printParenLogic(n.Body)
	case ast.Imperative:
		p.write("!")
		p.printParenLogic(n.Body)
	case ast.Scopal:
		p.write(p.name(n.Operator) + " ")
		p.printParenLogic(n.Body)
	case ast.TemporalAnchor:
		p.write(p.name(n.Anchor) + " ")
		p.printParenLogic(n.Body)
	case ast.Distributive:
		p.write("DIST ")
		p.printParenLogic(n.Body)
	case ast.GroupQuantifier:
		p.write("ΣQ " + p.registry.Variable(n.Variable) + ".")
		p.printParenLogic(n.Restriction)
		p.write(" " + p.g.and + " ")
		p.printParenLogic(n.Body)
	case ast.SpeechAct:
		p.write(speechActName(n.Kind) + " ")
		p.printParenLogic(n.Body)
	case ast.Intensional:
		p.write("@")
		p.printTerm(n.World)
		p.write(" ")
		p.printParenLogic(n.Body)
	case ast.Metaphor:
		p.write(p.name(n.SourceDomain) + "→" + p.name(n.TargetDomain) + " ")
		p.printParenLogic(n.Body)
	case ast.Categorical:
		p.printTerm(n.Subject)
		p.write(" ∈ ")
		p.printTerm(n.Predicate)
	case ast.Relation:
		p.write(capitalize(p.name(n.Name)))
		p.write("(")
		p.printTerm(n.Left)
		p.write(", ")
		p.printTerm(n.Right)
		p.write(")")
	default:
		p.write("?")
	}
}

func aspectName(a ast.AspectKind) string {
	switch a {
	case ast.AspectProgressive:
		return "PROG"
	case ast.AspectPerfect:
		return "PERF"
	case ast.AspectHabitual:
		return "HAB"
	case ast.AspectIterative:
		return "ITER"
	default:
		return "ASP"
	}
}

func speechActName(k ast.SpeechActKind) string {
	switch k {
	case ast.SpeechAssertion:
		return "ASSERT"
	case ast.SpeechQuestion:
		return "ASK"
	case ast.SpeechDirective:
		return "DIRECT"
	default:
		return "SPEECH"
	}
}

// printNeoEvent renders a neo-Davidsonian event as an existential over the
// event variable conjoined with the verb predicate and each role filler,
// unless SuppressExistential is set (the event variable is already bound
// by an enclosing quantifier).
func (p *Printer) printNeoEvent(n ast.NeoEvent) {
	e := p.registry.Variable(n.EventVar)
	if !n.SuppressExistential {
		p.write(p.g.exists + e + ".")
	}
	p.write(capitalize(p.name(n.Verb)) + "(" + e + ")")
	for _, r := range n.Roles {
		p.write(" " + p.g.and + " " + p.roleName(r.Role) + "(" + e + ", ")
		p.printTerm(r.Filler)
		p.write(")")
	}
	if n.World != nil {
		p.write(" " + p.g.and + " In(" + e + ", ")
		p.printTerm(n.World)
		p.write(")")
	}
	for _, m := range n.Modifiers {
		p.write(" " + p.g.and + " ")
		p.printLogic(m)
	}
}

// printBinary handles AND/OR/IMPLIES/IFF, printing each side through
// printParenLogic: a nested connective is always parenthesized, with no
// precedence comparison (a shallow version of funxy's
// operatorPrecedence-driven CodePrinter).
func (p *Printer) printBinary(n ast.BinaryOp) {
	var glyph string
	switch n.Op {
	case ast.OpAnd:
		glyph = p.g.and
	case ast.OpOr:
		glyph = p.g.or
	case ast.OpImplies:
		glyph = p.g.implies
	case ast.OpIff:
		glyph = p.g.iff
	}
	p.printParenLogic(n.Left)
	p.write(" " + glyph + " ")
	p.printParenLogic(n.Right)
}

// printParenLogic wraps expr in parentheses unless it is atomic enough
// that the wrap would be pure noise (predicates, atoms, identities,
// relations, quantifiers/events already self-delimiting with a "." or
// enclosing glyph).
func (p *Printer) printParenLogic(expr ast.LogicExpr) {
	switch expr.(type) {
	case ast.Predicate, ast.Atom, ast.Identity, ast.Relation, ast.Categorical,
		ast.Quantifier, ast.NeoEvent, ast.UnaryOp, ast.Lambda:
		p.printLogic(expr)
	default:
		p.write("(")
		p.printLogic(expr)
		p.write(")")
	}
}
