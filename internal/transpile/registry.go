package transpile

import (
	"fmt"

	"github.com/logos-lang/logos/internal/intern"
)

// symbolPool hands out short display names from a fixed letter sequence,
// cycling into digit-suffixed names once the letters are exhausted
// (for the variable pool: "x", "y", ..., "v", "x1", "y1", ...).
type symbolPool struct {
	letters string
	next    int
	assigned map[intern.Symbol]string
}

func newSymbolPool(letters string) *symbolPool {
	return &symbolPool{letters: letters, assigned: make(map[intern.Symbol]string)}
}

func (p *symbolPool) get(sym intern.Symbol) string {
	if name, ok := p.assigned[sym]; ok {
		return name
	}
	n := len(p.letters)
	letter := string(p.letters[p.next%n])
	gen := p.next / n
	name := letter
	if gen > 0 {
		name = fmt.Sprintf("%s%d", letter, gen)
	}
	p.next++
	p.assigned[sym] = name
	return name
}

// SymbolRegistry assigns a stable short display symbol to each distinct
// variable and constant the first time it is seen, and returns the same
// symbol on every later occurrence - so a multi-sentence discourse prints
// with consistent naming across sentences rather than renumbering within
// each one. Predicate names print as their own lemma (capitalized), not
// through the registry, since "Dog(x)"/"Murder(e)" are more legible FOL
// than an opaque letter would be.
type SymbolRegistry struct {
	variables *symbolPool
	constants *symbolPool
}

// NewSymbolRegistry creates an empty registry. Share one instance across
// every Transpile call in a discourse to keep numbering stable.
func NewSymbolRegistry() *SymbolRegistry {
	return &SymbolRegistry{
		variables: newSymbolPool("xyzwuv"),
		constants: newSymbolPool("abcdefgh"),
	}
}

func (r *SymbolRegistry) Variable(sym intern.Symbol) string { return r.variables.get(sym) }
func (r *SymbolRegistry) Constant(sym intern.Symbol) string { return r.constants.get(sym) }
