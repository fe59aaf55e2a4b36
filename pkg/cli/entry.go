// Package cli is the embeddable command surface over internal/driver: one
// Run(args, stdin, stdout, stderr) entry point a binary, a test, or an
// embedding host can all call the same way, dispatching to the driver
// entry point each subcommand names.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/config"
	"github.com/logos-lang/logos/internal/discovery"
	"github.com/logos-lang/logos/internal/driver"
	"github.com/logos-lang/logos/internal/intern"
	"github.com/logos-lang/logos/internal/interp"
	"github.com/logos-lang/logos/internal/lexer"
	"github.com/logos-lang/logos/internal/parser"
	"github.com/logos-lang/logos/internal/proof"
)

const usage = `Usage: logos <command> [args...]

Commands:
  compile <file>            compile(text): logical forms + generated source
  check <file>               compile_checked(text): + escape/ownership analysis
  verify <file>              compile_verified(text): + SMT-lite verification
  project <entry-file>       compile_project(entry_file): multi-file compile
  build <file> <out-dir>     compile_to_dir(text, out_dir): emit a project
  run <file> <out-dir>       compile_and_run(text, out_dir): emit, build, run
  interpret <file>           interpret(text): tree-walk without codegen
  repl                       interactive tree-walking session
  theorem <file> [name]      verify_theorem(text): check a theorem block
  version                    print the logos version
  help                       show this message
`

// Run is the single embeddable entry point: every subcommand reads from
// stdin and writes to stdout/stderr rather than touching the process's own
// os.Stdin/Stdout/Stderr directly, so it can be driven from a test or a
// host application exactly as it would from a terminal.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	switch args[0] {
	case "-v", "-version", "--version", "version":
		fmt.Fprintln(stdout, "logos "+config.Version)
		return 0
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	case "compile":
		return runCompile(args[1:], stdout, stderr, driver.Compile)
	case "check":
		return runCompile(args[1:], stdout, stderr, driver.CompileChecked)
	case "verify":
		return runCompile(args[1:], stdout, stderr, driver.CompileVerified)
	case "project":
		return runProject(args[1:], stdout, stderr)
	case "build":
		return runBuild(args[1:], stdout, stderr)
	case "run":
		return runRun(args[1:], stdout, stderr)
	case "interpret":
		return runInterpret(args[1:], stdin, stdout, stderr)
	case "repl":
		return runRepl(args[1:], stdin, stdout, stderr)
	case "theorem":
		return runTheorem(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "logos: unknown command %q\n\n%s", args[0], usage)
		return 2
	}
}

type compileFunc func(source, path string) driver.CompileResult

func runCompile(args []string, stdout, stderr io.Writer, run compileFunc) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: logos <compile|check|verify> <file>")
		return 2
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "logos: %v\n", err)
		return 1
	}
	result := run(string(source), args[0])
	return printCompileResult(result, args[0], stdout, stderr)
}

func printCompileResult(result driver.CompileResult, path string, stdout, stderr io.Writer) int {
	if result.HasErrors() {
		for _, d := range result.Diagnostics {
			fmt.Fprintln(stderr, renderDiagnostic(d, path, stderr))
		}
		return 1
	}
	for _, form := range result.LogicForms {
		fmt.Fprintln(stdout, form)
	}
	fmt.Fprintln(stdout, "---")
	fmt.Fprint(stdout, result.Source)
	return 0
}

func renderDiagnostic(d error, path string, stderr io.Writer) string {
	colorize := false
	if f, ok := stderr.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	msg := fmt.Sprintf("%s: %s", path, d.Error())
	if colorize {
		return "\x1b[31m" + msg + "\x1b[0m"
	}
	return msg
}

func runProject(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: logos project <entry-file>")
		return 2
	}
	result, err := driver.CompileProject(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "logos: %v\n", err)
		return 1
	}
	return printCompileResult(result, args[0], stdout, stderr)
}

func runBuild(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "usage: logos build <file> <out-dir>")
		return 2
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "logos: %v\n", err)
		return 1
	}
	result, err := driver.CompileToDir(string(source), args[1])
	if err != nil {
		fmt.Fprintf(stderr, "logos: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "wrote %s\n", args[1])
	return printCompileResult(result, args[0], io.Discard, stderr)
}

func runRun(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "usage: logos run <file> <out-dir>")
		return 2
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "logos: %v\n", err)
		return 1
	}
	output, err := driver.CompileAndRun(string(source), args[1])
	if err != nil {
		fmt.Fprintf(stderr, "logos: %v\n", err)
		fmt.Fprint(stdout, output)
		return 1
	}
	fmt.Fprint(stdout, output)
	return 0
}

func runInterpret(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: logos interpret <file>")
		return 2
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "logos: %v\n", err)
		return 1
	}
	callback := func(line string) { fmt.Fprintln(stdout, line) }
	if _, err := driver.Interpret(string(source), args[0], stdin, callback); err != nil {
		fmt.Fprintf(stderr, "logos: %v\n", err)
		return 1
	}
	return 0
}

// runRepl is a line-at-a-time interactive session. Unlike a one-shot
// interpret call, a REPL needs the same Arenas/Interner and the same
// interp.Interpreter to live across lines - function/struct/enum
// definitions accumulate on the Interpreter itself (interp.go's Run stores
// them by resolved name), so each line is lexed, discovered, and parsed
// against the shared Interner rather than going through driver.Interpret,
// which would hand each line a fresh, disconnected symbol table. Top-level
// `let` bindings still do not persist across lines, matching C11's own
// no-capture-across-a-call-boundary scoping (each Run starts a fresh
// top-level scope); only definitions do.
func runRepl(_ []string, stdin io.Reader, stdout, stderr io.Writer) int {
	prompt := "logos> "
	colorPrompt := prompt
	if f, ok := stdout.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		colorPrompt = "\x1b[36m" + prompt + "\x1b[0m"
	}

	in := intern.New()
	arenas := ast.NewArenas()
	it := interp.New(in, stdin)
	it.Callback = func(line string) { fmt.Fprintln(stdout, line) }

	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, colorPrompt)
		if !scanner.Scan() {
			return 0
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return 0
		}

		toks, bag := lexer.Tokenize(line)
		if bag != nil && bag.HasErrors() {
			fmt.Fprintf(stderr, "logos: %s\n", bag.Items()[0].Message)
			continue
		}
		types, policies, bag := discovery.Discover(toks)
		if bag != nil && bag.HasErrors() {
			fmt.Fprintf(stderr, "logos: %s\n", bag.Items()[0].Message)
			continue
		}
		program, bag := parser.ParseProgram(toks, arenas, in, types, policies)
		if bag != nil && bag.HasErrors() {
			fmt.Fprintf(stderr, "logos: %s\n", bag.Items()[0].Message)
			continue
		}
		if program == nil {
			continue
		}
		if err := it.Run(program.Statements); err != nil {
			fmt.Fprintf(stderr, "logos: %v\n", err)
		}
	}
}

func runTheorem(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(stderr, "usage: logos theorem <file> [name]")
		return 2
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "logos: %v\n", err)
		return 1
	}
	name := ""
	if len(args) == 2 {
		name = args[1]
	}
	term, _, err := driver.VerifyTheorem(string(source), args[0], name)
	if err != nil {
		fmt.Fprintf(stderr, "logos: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, proof.String(term))
	return 0
}
