package codegen

import (
	"fmt"
	"strings"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// emitFunction lowers one FunctionDef to a Go func declaration. isAsync
// functions keep the same signature and only gain a trailing
// "// async: suspends at an await point" comment on the signature line,
// since Go's goroutine/channel model doesn't need a distinguished async
// keyword the way the target spec's source language would.
func emitFunction(p *printer, f ast.FunctionDef, isAsync bool, in *intern.Interner) {
	params := make([]string, len(f.Params))
	for i, param := range f.Params {
		params[i] = fmt.Sprintf("%s %s", in.Resolve(param.Name), goType(param.Type, in))
	}
	ret := ""
	if f.ReturnType != nil {
		ret = " " + goType(f.ReturnType, in)
	}
	generics := ""
	if len(f.Generics) > 0 {
		names := make([]string, len(f.Generics))
		for i, g := range f.Generics {
			names[i] = in.Resolve(g) + " any"
		}
		generics = "[" + strings.Join(names, ", ") + "]"
	}
	comment := ""
	if isAsync {
		comment = " // async: suspends at an await point"
	}
	p.line(fmt.Sprintf("func %s%s(%s)%s {%s", capitalize(in.Resolve(f.Name)), generics, strings.Join(params, ", "), ret, comment))
	p.indented(func() { emitStmts(p, f.Body, in) })
	p.line("}")
	p.blank()
}
