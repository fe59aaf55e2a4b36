package codegen

import (
	"fmt"
	"strings"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// ctypesType maps a TypeExpr to the ctypes spelling used in argtypes/restype,
// per §4.10's binding-generation type table.
func ctypesType(t ast.TypeExpr) string {
	if isReferenceType(t) {
		return "ctypes.c_uint64"
	}
	p, ok := basePrimitive(t)
	if !ok {
		return "ctypes.c_void_p"
	}
	switch p.Name {
	case "Int":
		return "ctypes.c_int64"
	case "Nat":
		return "ctypes.c_uint64"
	case "Float", "Real":
		return "ctypes.c_double"
	case "Bool":
		return "ctypes.c_bool"
	case "String", "Text":
		return "ctypes.c_char_p"
	case "Character":
		return "ctypes.c_uint32"
	default:
		return "ctypes.c_void_p"
	}
}

// GeneratePythonBindings emits a ctypes wrapper module exposing every
// exported function in funcs as a method of a Logos class, raising
// LogosError/LogosRefinementError on a nonzero status code - grounded on
// §4.10's binding-generation contract.
func GeneratePythonBindings(libName string, funcs []ast.FunctionDef, in *intern.Interner) string {
	var b strings.Builder
	b.WriteString("# Code generated by logos codegen. DO NOT EDIT.\n")
	b.WriteString("import ctypes\nimport os\n\n\n")
	b.WriteString("class LogosError(Exception):\n    pass\n\n\n")
	b.WriteString("class LogosRefinementError(LogosError):\n    pass\n\n\n")
	fmt.Fprintf(&b, "_lib = ctypes.CDLL(os.environ.get(\"LOGOS_LIB_PATH\", %q))\n\n\n", libName)

	var exported []ast.FunctionDef
	for _, f := range funcs {
		if f.IsExported && (f.ExportTarget == "" || f.ExportTarget == "c" || f.ExportTarget == "python") {
			exported = append(exported, f)
		}
	}

	for _, f := range exported {
		name := in.Resolve(f.Name)
		sym := "_lib.logos_" + name
		var argtypes []string
		for _, param := range f.Params {
			if isTextType(param.Type) {
				argtypes = append(argtypes, "ctypes.c_char_p")
			} else if isReferenceType(param.Type) {
				argtypes = append(argtypes, "ctypes.c_uint64", "ctypes.c_uint32")
			} else {
				argtypes = append(argtypes, ctypesType(param.Type))
			}
		}
		argtypes = append(argtypes, "ctypes.POINTER(ctypes.c_uint64)", "ctypes.POINTER(ctypes.c_uint32)")
		fmt.Fprintf(&b, "%s.argtypes = [%s]\n", sym, strings.Join(argtypes, ", "))
		fmt.Fprintf(&b, "%s.restype = ctypes.c_int32\n\n", sym)
	}
	b.WriteString("_lib.logos_get_last_error.restype = ctypes.c_char_p\n")
	b.WriteString("_lib.logos_clear_error.argtypes = []\n\n\n")

	b.WriteString("class Logos:\n")
	b.WriteString("    \"\"\"Thin ctypes wrapper over the generated native library.\"\"\"\n\n")
	for _, f := range exported {
		name := in.Resolve(f.Name)
		params := make([]string, len(f.Params))
		callArgs := make([]string, 0, len(f.Params))
		for i, param := range f.Params {
			pname := in.Resolve(param.Name)
			params[i] = pname
			if isTextType(param.Type) {
				callArgs = append(callArgs, fmt.Sprintf("%s.encode(\"utf-8\")", pname))
			} else if isReferenceType(param.Type) {
				callArgs = append(callArgs, pname+"._handle_id", pname+"._handle_gen")
			} else {
				callArgs = append(callArgs, pname)
			}
		}
		fmt.Fprintf(&b, "    def %s(self, %s):\n", name, strings.Join(params, ", "))
		b.WriteString("        out_id = ctypes.c_uint64()\n")
		b.WriteString("        out_gen = ctypes.c_uint32()\n")
		allArgs := append(append([]string{}, callArgs...), "ctypes.byref(out_id)", "ctypes.byref(out_gen)")
		fmt.Fprintf(&b, "        status = _lib.logos_%s(%s)\n", name, strings.Join(allArgs, ", "))
		b.WriteString("        if status == 2:\n")
		b.WriteString("            raise LogosRefinementError(_lib.logos_get_last_error().decode(\"utf-8\"))\n")
		b.WriteString("        if status != 0:\n")
		b.WriteString("            raise LogosError(_lib.logos_get_last_error().decode(\"utf-8\"))\n")
		if isReferenceType(f.ReturnType) {
			b.WriteString("        return _Handle(out_id.value, out_gen.value)\n")
		} else {
			b.WriteString("        return None\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("\nclass _Handle:\n")
	b.WriteString("    def __init__(self, handle_id, handle_gen):\n")
	b.WriteString("        self._handle_id = handle_id\n")
	b.WriteString("        self._handle_gen = handle_gen\n")
	return b.String()
}
