// Package driver implements the compilation entry points spec.md §6 names:
// compile/compile_checked/compile_verified/compile_project/compile_to_dir/
// compile_and_run, plus interpret and verify_theorem. It owns nothing the
// pipeline stages don't already own; its job is assembling the right
// Processor subset per entry point and shaping the result.
package driver

import (
	"fmt"
	"io"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/codegen"
	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/escape"
	"github.com/logos-lang/logos/internal/interp"
	"github.com/logos-lang/logos/internal/ownership"
	"github.com/logos-lang/logos/internal/pipeline"
	"github.com/logos-lang/logos/internal/proof"
	"github.com/logos-lang/logos/internal/semantics"
	"github.com/logos-lang/logos/internal/transpile"
	"github.com/logos-lang/logos/internal/verify"
)

// CompileResult is what every compile* entry point returns: the surface-
// scope logical form of every bare declarative sentence, the generated
// source, and whatever diagnostics any stage recorded. Context is the raw
// pipeline state, kept around for compile_to_dir/compile_and_run, which
// need the SourceMap and the full codegen.Output alongside it.
type CompileResult struct {
	LogicForms []string
	Source     string
	Diagnostics []diagnostics.Diagnostic
	Codegen    codegen.Output
	Context    *pipeline.PipelineContext
}

func (r CompileResult) HasErrors() bool { return len(r.Diagnostics) > 0 }

func runPipeline(source, path string, procs ...pipeline.Processor) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(source, path)
	return pipeline.New(procs...).Run(ctx)
}

// logicForms renders every bare declarative sentence's surface-scope
// reading as FOL text, the `compile(text) -> {logical-forms, ...}`
// half of spec §1's external interface. A top-level declarative sentence
// with no recognized imperative keyword parses to ast.Assert{Cond}
// (imperative.go's default case), so that is what this scans for.
func logicForms(ctx *pipeline.PipelineContext) []string {
	if ctx.Arenas == nil || ctx.Interner == nil {
		return nil
	}
	lower := semantics.New(ctx.Arenas, ctx.Interner)
	tr := transpile.NewTranspiler(ctx.Interner)
	var forms []string
	for _, s := range ctx.Statements {
		a, ok := s.(ast.Assert)
		if !ok || a.Cond == nil {
			continue
		}
		surface, _ := lower.Lower(a.Cond)
		forms = append(forms, tr.Transpile(surface, transpile.Unicode))
	}
	return forms
}

func toResult(ctx *pipeline.PipelineContext) CompileResult {
	return CompileResult{
		LogicForms:  logicForms(ctx),
		Source:      ctx.Codegen.GoSource,
		Diagnostics: ctx.Errors,
		Codegen:     ctx.Codegen,
		Context:     ctx,
	}
}

// escapeOwnership runs C8's escape and ownership analyses - the two the
// driver surface's compile_checked adds on top of plain compile.
type escapeOwnership struct{}

func (escapeOwnership) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Statements == nil {
		return ctx
	}
	ctx.AddBag(escape.New(ctx.Interner).Analyze(ctx.Statements))
	ctx.AddBag(ownership.New(ctx.Interner).Analyze(ctx.Statements))
	return ctx
}

// smtVerify runs C8's SMT-lite verifier - what compile_verified adds on
// top of compile_checked.
type smtVerify struct{}

func (smtVerify) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Statements == nil {
		return ctx
	}
	ctx.AddBag(verify.New(ctx.Interner).Check(ctx.Statements))
	return ctx
}

// Compile is compile(text): lex, discover, parse, optimize, and generate
// code with no static analysis pass. Optimization runs unconditionally
// before codegen - §4.9/§4.10 describe codegen as lowering the optimized
// imperative AST, not the parser's raw output.
func Compile(source, path string) CompileResult {
	ctx := runPipeline(source, path,
		pipeline.LexerProcessor{}, pipeline.DiscoveryProcessor{}, pipeline.ParserProcessor{},
		pipeline.OptimizerProcessor{}, pipeline.CodegenProcessor{})
	return toResult(ctx)
}

// CompileChecked is compile_checked(text): Compile plus escape and
// ownership analysis. CodegenProcessor still runs but skips emitting code
// once an analysis stage has recorded an error (generating code for a
// rejected program would hide the rejection behind a misleading success),
// so a use-after-move program's result carries the diagnostic with an
// empty Source. OptimizerProcessor itself skips once an analysis stage has
// recorded an error, so a rejected program's statements are never folded
// either.
func CompileChecked(source, path string) CompileResult {
	ctx := runPipeline(source, path,
		pipeline.LexerProcessor{}, pipeline.DiscoveryProcessor{}, pipeline.ParserProcessor{},
		escapeOwnership{}, pipeline.OptimizerProcessor{}, pipeline.CodegenProcessor{})
	return toResult(ctx)
}

// CompileVerified is compile_verified(text): CompileChecked plus the SMT-
// lite verifier, still followed by optimization before codegen.
func CompileVerified(source, path string) CompileResult {
	ctx := runPipeline(source, path,
		pipeline.LexerProcessor{}, pipeline.DiscoveryProcessor{}, pipeline.ParserProcessor{},
		escapeOwnership{}, smtVerify{}, pipeline.OptimizerProcessor{}, pipeline.CodegenProcessor{})
	return toResult(ctx)
}

// Interpret is interpret(text): run the tree-walker (C11) over the parsed
// program, streaming Show output through callback as it is produced.
// Interpret does not run C8/C9/C10 at all - the interpreter consumes the
// same Statements the parser produced, before any optimization pass
// rewrites them, since "interpret(optimize(P)) == interpret(P)" is a
// property to test against, not an assumption this entry point can rely
// on for the unoptimized path it runs by default.
func Interpret(source, path string, stdin io.Reader, callback interp.OutputCallback) (*interp.Interpreter, error) {
	ctx := runPipeline(source, path,
		pipeline.LexerProcessor{}, pipeline.DiscoveryProcessor{}, pipeline.ParserProcessor{})
	if ctx.HasErrors() {
		return nil, fmt.Errorf("interpret: %s", renderDiagnostics(ctx))
	}
	it := interp.New(ctx.Interner, stdin)
	it.Callback = callback
	if err := it.Run(ctx.Statements); err != nil {
		return it, err
	}
	return it, nil
}

// VerifyTheorem is verify_theorem(text): parse down to the theorem
// blocks, then run C12's chainer/certifier/kernel over the named theorem
// (or the program's only theorem, if name is empty). It returns the
// kernel proof term plus the context (the premises' kernel-translated
// hypothesis types) §4.12 pairs it with.
func VerifyTheorem(source, path, name string) (proof.Term, proof.Context, error) {
	ctx := runPipeline(source, path,
		pipeline.LexerProcessor{}, pipeline.DiscoveryProcessor{}, pipeline.ParserProcessor{})
	if ctx.HasErrors() {
		return nil, nil, fmt.Errorf("verify_theorem: %s", renderDiagnostics(ctx))
	}
	th, ok := findTheorem(ctx.Theorems, name)
	if !ok {
		return nil, nil, fmt.Errorf("verify_theorem: no theorem named %q in %s", name, path)
	}

	proofCtx := proof.Prelude()
	for i, p := range th.Premises {
		kind, err := proof.TranslateLogic(ctx.Interner, p)
		if err != nil {
			return nil, nil, fmt.Errorf("verify_theorem: %w", err)
		}
		proofCtx = proofCtx.With(fmt.Sprintf("h%d", i+1), kind)
	}

	term, err := proof.VerifyTheorem(ctx.Interner, th)
	if err != nil {
		return nil, proofCtx, err
	}
	return term, proofCtx, nil
}

func findTheorem(theorems []ast.Theorem, name string) (ast.Theorem, bool) {
	if name == "" {
		if len(theorems) == 1 {
			return theorems[0], true
		}
		if len(theorems) > 0 {
			return theorems[0], true
		}
		return ast.Theorem{}, false
	}
	for _, th := range theorems {
		if th.Name == name {
			return th, true
		}
	}
	return ast.Theorem{}, false
}

func renderDiagnostics(ctx *pipeline.PipelineContext) string {
	var msg string
	for i, d := range ctx.Errors {
		if i > 0 {
			msg += "; "
		}
		msg += d.Render(ctx.Source)
	}
	return msg
}
