// Package pipeline chains the compiler stages (C1-C10) into one run: each
// Processor reads what earlier stages left on the PipelineContext and adds
// its own contribution, so the driver can assemble different pipelines for
// compile/interpret/verify without duplicating stage wiring.
package pipeline

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/codegen"
	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/discovery"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/sourcemap"
	"github.com/logos-lang/logos/internal/token"
)

// PipelineContext carries one compilation's state from lexing through
// codegen. Each Processor mutates it in place and returns it, so a later
// stage sees every earlier stage's output.
type PipelineContext struct {
	Source   string
	FilePath string

	IsTestMode bool

	Arenas   *ast.Arenas
	Interner *intern.Interner

	Tokens   []token.Token
	Types    *discovery.TypeRegistry
	Policies *discovery.PolicyRegistry

	// Statements is the full top-level statement list, produced by the
	// parser and then progressively replaced in place: lowering expands
	// declarative sentences into imperative form, analysis passes read it
	// without modifying it, optimization replaces it with a folded and
	// dead-code-eliminated version.
	Statements []ast.Stmt

	Theorems []ast.Theorem

	Codegen codegen.Output

	SourceMap *sourcemap.Map

	Errors []diagnostics.Diagnostic
}

// NewPipelineContext creates the initial context for compiling source from
// path. Arenas and the interner are allocated fresh so each compilation's
// symbol numbering and node pools never leak into another.
func NewPipelineContext(source, path string) *PipelineContext {
	return &PipelineContext{
		Source:   source,
		FilePath: path,
		Arenas:   ast.NewArenas(),
		Interner: intern.New(),
	}
}

// HasErrors reports whether any stage has recorded a diagnostic so far.
func (c *PipelineContext) HasErrors() bool { return len(c.Errors) > 0 }

// AddBag appends every diagnostic in bag to the context's error list, if
// bag is non-nil, so stage processors can adopt the *diagnostics.Bag return
// convention the rest of the compiler uses internally.
func (c *PipelineContext) AddBag(bag *diagnostics.Bag) {
	if bag == nil {
		return
	}
	c.Errors = append(c.Errors, bag.Items()...)
}

// Processor is one pipeline stage: it consumes and augments a
// PipelineContext. Every processor is called even when the context already
// carries errors, so the analysis stages can still contribute diagnostics
// (an LSP host wants every stage's errors, not just the first stage to
// fail); OptimizerProcessor and CodegenProcessor return such a context
// unchanged.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline runs an ordered sequence of Processors over one context.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

func (p *Pipeline) Run(initial *PipelineContext) *PipelineContext {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
