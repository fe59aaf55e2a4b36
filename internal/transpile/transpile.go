package transpile

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// Transpiler is a reusable Printer front: hold one across a discourse's
// worth of `Transpile` calls to keep the SymbolRegistry's numbering
// stable sentence to sentence.
type Transpiler struct {
	registry *SymbolRegistry
	interner *intern.Interner
}

func NewTranspiler(interner *intern.Interner) *Transpiler {
	return &Transpiler{registry: NewSymbolRegistry(), interner: interner}
}

// Transpile renders expr in format, consuming (and extending) this
// Transpiler's shared SymbolRegistry.
func (t *Transpiler) Transpile(expr ast.LogicExpr, format Format) string {
	return NewPrinter(format, t.registry, t.interner).Print(expr)
}

// TranspileAll renders every reading in readings, one line per reading, in
// the order EnumerateScopes produced them (`compile_all_scopes`).
func (t *Transpiler) TranspileAll(readings []ast.LogicExpr, format Format) []string {
	out := make([]string, len(readings))
	for i, r := range readings {
		out[i] = t.Transpile(r, format)
	}
	return out
}

// Transpile is the one-shot convenience form of the C7 contract
// (`transpile(expr, format)`) for callers that don't need a shared
// registry across multiple calls.
func Transpile(expr ast.LogicExpr, format Format, interner *intern.Interner) string {
	return NewTranspiler(interner).Transpile(expr, format)
}
