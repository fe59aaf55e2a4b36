package pipeline

import (
	"strings"
	"testing"

	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/escape"
	"github.com/logos-lang/logos/internal/ownership"
	"github.com/logos-lang/logos/internal/verify"
)

// testAnalysis runs the same escape/ownership/verify trio the driver's
// escapeOwnership{}/smtVerify{} stages run, combined into one stage here
// since this test only needs to exercise the full lex-through-codegen
// pipeline once, not the driver's checked-vs-verified gradation.
type testAnalysis struct{}

func (testAnalysis) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Statements == nil {
		return ctx
	}
	ctx.AddBag(escape.New(ctx.Interner).Analyze(ctx.Statements))
	ctx.AddBag(ownership.New(ctx.Interner).Analyze(ctx.Statements))
	ctx.AddBag(verify.New(ctx.Interner).Check(ctx.Statements))
	return ctx
}

func TestPipelineRunsLexThroughCodegen(t *testing.T) {
	const source = "## A Farmer has\nName\n\n## To greet\nShow \"hi\".\n"
	ctx := NewPipelineContext(source, "farm.logos")

	p := New(
		LexerProcessor{},
		DiscoveryProcessor{},
		ParserProcessor{},
		testAnalysis{},
		OptimizerProcessor{},
		CodegenProcessor{},
	)
	out := p.Run(ctx)

	if len(out.Tokens) == 0 {
		t.Fatalf("expected the lexer to produce tokens")
	}
	if out.Types == nil {
		t.Fatalf("expected discovery to populate the type registry")
	}
	if out.HasErrors() {
		t.Fatalf("unexpected pipeline errors: %#v", out.Errors)
	}
	if !strings.Contains(out.Codegen.GoSource, "package main") {
		t.Fatalf("codegen output missing a package clause: %s", out.Codegen.GoSource)
	}
}

func TestPipelineStopsCodegenAfterAnalysisErrors(t *testing.T) {
	ctx := NewPipelineContext("", "broken.logos")
	ctx.Errors = append(ctx.Errors, diagnostics.Diagnostic{Kind: diagnostics.CompileParse, Message: "broken"})

	p := New(OptimizerProcessor{}, CodegenProcessor{})
	out := p.Run(ctx)

	if out.Codegen.GoSource != "" {
		t.Fatalf("codegen ran despite existing errors: %#v", out.Codegen)
	}
}
