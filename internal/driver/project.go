package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/config"
	"github.com/logos-lang/logos/internal/lexer"
	"github.com/logos-lang/logos/internal/token"
)

// CompileProject is compile_project(entry_file): a multi-file compile
// where the entry file's `Require` statements name sibling source files
// instead of target-language crates. This AST has one dependency
// declaration shape (Require{CrateName, Version, Features}, §4.10's FFI
// surface); a local import is any CrateName that resolves to a file with
// a recognized source extension alongside the entry file. Resolution is
// one level deep (an imported file's own Requires are not themselves
// followed) - logos has no module/namespace system of its own yet, only
// the single flat Require list the original spec's imperative block
// already parses.
func CompileProject(entryPath string) (CompileResult, error) {
	entrySource, err := os.ReadFile(entryPath)
	if err != nil {
		return CompileResult{}, fmt.Errorf("compile_project: reading %s: %w", entryPath, err)
	}

	requires, err := scanRequires(string(entrySource))
	if err != nil {
		return CompileResult{}, fmt.Errorf("compile_project: %w", err)
	}

	dir := filepath.Dir(entryPath)
	var combined strings.Builder
	for _, req := range requires {
		if !config.HasSourceExt(req.CrateName) {
			continue
		}
		importPath := filepath.Join(dir, req.CrateName)
		src, err := os.ReadFile(importPath)
		if err != nil {
			return CompileResult{}, fmt.Errorf("compile_project: importing %s: %w", importPath, err)
		}
		combined.Write(src)
		combined.WriteByte('\n')
	}
	combined.Write(entrySource)

	return CompileVerified(combined.String(), entryPath), nil
}

// scanRequires lexes source just far enough to collect every Require
// statement's crate name, without running the full parser (a project's
// import list should resolve before the parser needs to know about the
// files it names).
func scanRequires(source string) ([]ast.Require, error) {
	toks, bag := lexer.Tokenize(source)
	if bag != nil && bag.HasErrors() {
		return nil, fmt.Errorf("lexing for import scan: %s", bag.Items()[0].Message)
	}
	var out []ast.Require
	for i := 0; i < len(toks); i++ {
		if toks[i].Kind != token.KW_REQUIRE || i+1 >= len(toks) {
			continue
		}
		if next := toks[i+1]; next.Kind == token.STRING || next.Kind == token.IDENT {
			out = append(out, ast.Require{CrateName: next.Lexeme})
		}
	}
	return out, nil
}
