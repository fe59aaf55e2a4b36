package pipeline

import (
	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/codegen"
	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/discovery"
	"github.com/logos-lang/logos/internal/lexer"
	"github.com/logos-lang/logos/internal/optimize"
	"github.com/logos-lang/logos/internal/parser"
	"github.com/logos-lang/logos/internal/sourcemap"
)

// LexerProcessor runs C3: it tokenizes ctx.Source and stores the result on
// ctx.Tokens. Tokenize reports lexer errors in its diagnostic bag, so this
// stage only needs to adopt whatever diagnostics it collected.
type LexerProcessor struct{}

func (LexerProcessor) Process(ctx *PipelineContext) *PipelineContext {
	toks, bag := lexer.Tokenize(ctx.Source)
	ctx.Tokens = toks
	ctx.AddBag(bag)
	return ctx
}

// DiscoveryProcessor runs C4: a forward-reference pre-pass over the token
// stream that registers every user-defined type and policy name before the
// parser needs to resolve one.
type DiscoveryProcessor struct{}

func (DiscoveryProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Tokens == nil {
		return ctx
	}
	types, policies, bag := discovery.Discover(ctx.Tokens)
	ctx.Types = types
	ctx.Policies = policies
	ctx.AddBag(bag)
	return ctx
}

// ParserProcessor runs C5: it builds the top-level statement list (and any
// theorem blocks) from the token stream, consulting the discovery
// registries to resolve forward type references.
type ParserProcessor struct{}

func (ParserProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Tokens == nil {
		ctx.Errors = append(ctx.Errors, diagnostics.Diagnostic{
			Kind:    diagnostics.ParseCustom,
			Message: "parser: token stream is nil",
		})
		return ctx
	}
	program, bag := parser.ParseProgram(ctx.Tokens, ctx.Arenas, ctx.Interner, ctx.Types, ctx.Policies)
	ctx.AddBag(bag)
	if program == nil {
		return ctx
	}
	for _, s := range program.Statements {
		if th, ok := s.(ast.Theorem); ok {
			ctx.Theorems = append(ctx.Theorems, th)
			continue
		}
		ctx.Statements = append(ctx.Statements, s)
	}
	return ctx
}

// OptimizerProcessor runs C9: constant folding, constant propagation, and
// dead-code elimination, in that order, replacing ctx.Statements in place.
type OptimizerProcessor struct{}

func (OptimizerProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.HasErrors() {
		return ctx
	}
	ctx.Statements = optimize.Optimize(ctx.Statements)
	return ctx
}

// CodegenProcessor runs C10: it lowers the optimized statement list to
// target source plus bindings. Codegen never runs over a context that
// already carries any error (from any earlier stage, verification
// included), since generating code then would hide the failure behind a
// misleading success.
type CodegenProcessor struct{}

func (CodegenProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.HasErrors() {
		return ctx
	}
	out, err := codegen.GenerateProgram(ctx.Statements, ctx.Types, ctx.Policies, ctx.Interner)
	if err != nil {
		ctx.Errors = append(ctx.Errors, diagnostics.Diagnostic{
			Kind:    diagnostics.CompileBuild,
			Message: err.Error(),
		})
		return ctx
	}
	ctx.Codegen = out

	sm := sourcemap.New()
	for _, ls := range out.LineSpans {
		sm.RecordLine(ls.Line, ls.Span)
	}
	ctx.SourceMap = sm
	return ctx
}
