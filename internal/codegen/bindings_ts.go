package codegen

import (
	"fmt"
	"strings"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// tsType maps a TypeExpr to its TypeScript surface-level spelling, per
// §4.10's binding-generation type table (reference types surface as an
// opaque handle class rather than a raw pointer).
func tsType(t ast.TypeExpr, in *intern.Interner) string {
	if isReferenceType(t) {
		if named, ok := t.(ast.Named); ok {
			return capitalize(in.Resolve(named.Name)) + "Handle"
		}
		return "OpaqueHandle"
	}
	p, ok := basePrimitive(t)
	if !ok {
		return "unknown"
	}
	switch p.Name {
	case "Int", "Nat":
		return "bigint"
	case "Float", "Real":
		return "number"
	case "Bool":
		return "boolean"
	case "String", "Text":
		return "string"
	case "Character":
		return "string"
	default:
		return "unknown"
	}
}

func exportedFuncs(funcs []ast.FunctionDef, target string) []ast.FunctionDef {
	var out []ast.FunctionDef
	for _, f := range funcs {
		if f.IsExported && (f.ExportTarget == "" || f.ExportTarget == "c" || f.ExportTarget == target) {
			out = append(out, f)
		}
	}
	return out
}

// GenerateTSDeclarations emits the .d.ts surface for every exported
// function, using opaque handle classes for reference-typed params/returns.
func GenerateTSDeclarations(funcs []ast.FunctionDef, in *intern.Interner) string {
	var b strings.Builder
	b.WriteString("// Code generated by logos codegen. DO NOT EDIT.\n\n")
	b.WriteString("export class LogosError extends Error {}\n")
	b.WriteString("export class LogosRefinementError extends LogosError {}\n\n")
	b.WriteString("export class OpaqueHandle {\n  release(): void;\n}\n\n")

	seen := map[string]bool{}
	for _, f := range exportedFuncs(funcs, "typescript") {
		for _, param := range f.Params {
			if isReferenceType(param.Type) {
				if named, ok := param.Type.(ast.Named); ok {
					cls := capitalize(in.Resolve(named.Name)) + "Handle"
					if !seen[cls] {
						seen[cls] = true
						fmt.Fprintf(&b, "export class %s extends OpaqueHandle {}\n", cls)
					}
				}
			}
		}
	}
	b.WriteString("\nexport declare class Logos {\n")
	b.WriteString("  constructor(libPath?: string);\n")
	for _, f := range exportedFuncs(funcs, "typescript") {
		name := in.Resolve(f.Name)
		params := make([]string, len(f.Params))
		for i, param := range f.Params {
			params[i] = fmt.Sprintf("%s: %s", in.Resolve(param.Name), tsType(param.Type, in))
		}
		ret := "void"
		if f.ReturnType != nil {
			ret = tsType(f.ReturnType, in)
		}
		fmt.Fprintf(&b, "  %s(%s): %s;\n", name, strings.Join(params, ", "), ret)
	}
	b.WriteString("}\n")
	return b.String()
}

// GenerateTSLoader emits the .js loader that binds the .d.ts surface onto
// the native library via an FFI library (koffi), marshaling status codes
// into thrown LogosError/LogosRefinementError per §4.10.
func GenerateTSLoader(libName string, funcs []ast.FunctionDef, in *intern.Interner) string {
	var b strings.Builder
	b.WriteString("// Code generated by logos codegen. DO NOT EDIT.\n")
	b.WriteString("const koffi = require(\"koffi\");\n\n")
	b.WriteString("class LogosError extends Error {}\n")
	b.WriteString("class LogosRefinementError extends LogosError {}\n\n")
	fmt.Fprintf(&b, "const lib = koffi.load(process.env.LOGOS_LIB_PATH || %q);\n\n", libName)
	b.WriteString("const getLastError = lib.func(\"logos_get_last_error\", \"str\", []);\n")
	b.WriteString("const clearError = lib.func(\"logos_clear_error\", \"void\", []);\n\n")

	exported := exportedFuncs(funcs, "typescript")
	for _, f := range exported {
		name := in.Resolve(f.Name)
		var sig []string
		for _, param := range f.Params {
			if isTextType(param.Type) {
				sig = append(sig, "\"str\"")
			} else if isReferenceType(param.Type) {
				sig = append(sig, "\"uint64\"", "\"uint32\"")
			} else {
				sig = append(sig, "\""+koffiType(param.Type)+"\"")
			}
		}
		sig = append(sig, "\"uint64 *\"", "\"uint32 *\"")
		fmt.Fprintf(&b, "const %s_native = lib.func(\"logos_%s\", \"int32\", [%s]);\n", name, name, strings.Join(sig, ", "))
	}

	b.WriteString("\nclass Logos {\n")
	for _, f := range exported {
		name := in.Resolve(f.Name)
		params := make([]string, len(f.Params))
		callArgs := make([]string, len(f.Params))
		for i, param := range f.Params {
			pname := in.Resolve(param.Name)
			params[i] = pname
			if isReferenceType(param.Type) {
				callArgs[i] = pname + ".id, " + pname + ".generation"
			} else {
				callArgs[i] = pname
			}
		}
		fmt.Fprintf(&b, "  %s(%s) {\n", name, strings.Join(params, ", "))
		b.WriteString("    const out = [0n];\n    const outGen = [0];\n")
		fmt.Fprintf(&b, "    const status = %s_native(%s, out, outGen);\n", name, strings.Join(append(callArgs, "out", "outGen"), ", "))
		b.WriteString("    if (status === 2) { throw new LogosRefinementError(getLastError()); }\n")
		b.WriteString("    if (status !== 0) { throw new LogosError(getLastError()); }\n")
		if isReferenceType(f.ReturnType) {
			b.WriteString("    return { id: out[0], generation: outGen[0] };\n")
		} else {
			b.WriteString("    return undefined;\n")
		}
		b.WriteString("  }\n")
	}
	b.WriteString("}\n\nmodule.exports = { Logos, LogosError, LogosRefinementError };\n")
	return b.String()
}

func koffiType(t ast.TypeExpr) string {
	p, ok := basePrimitive(t)
	if !ok {
		return "uint64"
	}
	switch p.Name {
	case "Int":
		return "int64"
	case "Nat":
		return "uint64"
	case "Float", "Real":
		return "double"
	case "Bool":
		return "bool"
	case "Character":
		return "uint32"
	default:
		return "uint64"
	}
}
