package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/logos-lang/logos/internal/ast"
	"github.com/logos-lang/logos/internal/intern"
)

// OutputCallback receives one produced line at a time, e.g. to stream
// Show output to a REPL or browser-playground console as it is produced.
type OutputCallback func(line string)

// Interpreter executes a program's top-level statements directly over the
// AST. It is single-threaded and cooperative: Concurrent/Parallel bodies
// run their tasks sequentially (§5), and any statement with no sequential
// meaning at all (CRDT ops, networking, Launch/Pipe/Select) reports
// unsupportedError instead of guessing at a meaning.
type Interpreter struct {
	Interner *intern.Interner
	Stdin    io.Reader
	Callback OutputCallback

	lines   []string
	stdin   *bufio.Reader
	funcs   map[string]ast.FunctionDef
	structs map[string]ast.StructDef
	enums   map[string]ast.EnumDef
}

// New creates an Interpreter that resolves identifiers through in and
// reads Console input from stdin (os.Stdin if nil).
func New(in *intern.Interner, stdin io.Reader) *Interpreter {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Interpreter{
		Interner: in,
		Stdin:    stdin,
		stdin:    bufio.NewReader(stdin),
		funcs:    map[string]ast.FunctionDef{},
		structs:  map[string]ast.StructDef{},
		enums:    map[string]ast.EnumDef{},
	}
}

// Output returns every line Show has produced so far, in order.
func (in *Interpreter) Output() []string { return in.lines }

func (in *Interpreter) emit(line string) {
	in.lines = append(in.lines, line)
	if in.Callback != nil {
		in.Callback(line)
	}
}

// Run registers every top-level declaration (FunctionDef, StructDef,
// EnumDef) and then executes every remaining top-level statement in
// order, the way a Main block's body runs once discovery has already
// populated the declarations it depends on. If the program has no bare
// top-level statements and defines a function literally named Main, Run
// invokes it - a source file is either "script style" (bare top-level
// statements) or "Main-block style" (one ## Main function), not both.
func (in *Interpreter) Run(stmts []ast.Stmt) error {
	var top []ast.Stmt
	for _, s := range stmts {
		switch n := s.(type) {
		case ast.FunctionDef:
			in.funcs[in.Interner.Resolve(n.Name)] = n
		case ast.StructDef:
			in.structs[in.Interner.Resolve(n.Name)] = n
		case ast.EnumDef:
			in.enums[in.Interner.Resolve(n.Name)] = n
		case ast.Require:
			// dependency declaration; no runtime effect
		default:
			top = append(top, s)
		}
	}

	scope := newScope(nil)
	if err := in.execBlock(top, scope); err != nil {
		if _, ok := err.(returnSignal); ok {
			return nil
		}
		return err
	}
	if len(top) == 0 {
		if main, ok := in.funcs["Main"]; ok {
			_, err := in.callFunction(main, nil)
			return err
		}
	}
	return nil
}

func (in *Interpreter) execBlock(stmts []ast.Stmt, scope *Scope) error {
	for _, s := range stmts {
		if err := in.exec(s, scope); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) exec(stmt ast.Stmt, scope *Scope) error {
	switch s := stmt.(type) {
	case ast.Let:
		v, err := in.eval(s.Value, scope)
		if err != nil {
			return err
		}
		scope.define(in.Interner.Resolve(s.Var), v)
		return nil

	case ast.Set:
		v, err := in.eval(s.Value, scope)
		if err != nil {
			return err
		}
		name := in.Interner.Resolve(s.Var)
		if !scope.set(name, v) {
			scope.define(name, v)
		}
		return nil

	case ast.SetIndex:
		target, err := in.eval(s.Target, scope)
		if err != nil {
			return err
		}
		key, err := in.eval(s.Key, scope)
		if err != nil {
			return err
		}
		val, err := in.eval(s.Value, scope)
		if err != nil {
			return err
		}
		list, ok := target.(ListValue)
		if !ok {
			return runtimeErrorf("cannot index into a %s", target.Type())
		}
		idx, ok := key.(IntValue)
		if !ok {
			return runtimeErrorf("list index must be an Int, got %s", key.Type())
		}
		if int(idx) < 0 || int(idx) >= len(*list.Elements) {
			return runtimeErrorf("index %d out of bounds for a list of length %d", idx, len(*list.Elements))
		}
		(*list.Elements)[idx] = val
		return nil

	case ast.SetField:
		target, err := in.eval(s.Target, scope)
		if err != nil {
			return err
		}
		val, err := in.eval(s.Value, scope)
		if err != nil {
			return err
		}
		sv, ok := target.(StructValue)
		if !ok {
			return runtimeErrorf("cannot set a field on a %s", target.Type())
		}
		sv.Fields[in.Interner.Resolve(s.Field)] = val
		return nil

	case ast.If:
		cond, err := in.eval(s.Cond, scope)
		if err != nil {
			return err
		}
		if truthy(cond) {
			return in.execBlock(s.Then, newScope(scope))
		}
		return in.execBlock(s.Else, newScope(scope))

	case ast.While:
		for {
			cond, err := in.eval(s.Cond, scope)
			if err != nil {
				return err
			}
			if !truthy(cond) {
				return nil
			}
			if err := in.execBlock(s.Body, newScope(scope)); err != nil {
				return err
			}
		}

	case ast.Repeat:
		iterable, err := in.eval(s.Iterable, scope)
		if err != nil {
			return err
		}
		list, ok := iterable.(ListValue)
		if !ok {
			return runtimeErrorf("cannot repeat over a %s", iterable.Type())
		}
		name := in.Interner.Resolve(s.Pattern)
		for _, elem := range *list.Elements {
			inner := newScope(scope)
			inner.define(name, elem)
			if err := in.execBlock(s.Body, inner); err != nil {
				return err
			}
		}
		return nil

	case ast.FunctionDef, ast.StructDef, ast.EnumDef, ast.Require:
		return nil // declarations are hoisted by Run before execution begins

	case ast.Zone:
		return in.execBlock(s.Body, newScope(scope))

	case ast.Concurrent:
		return in.execBlock(s.Body, newScope(scope))

	case ast.Parallel:
		return in.execBlock(s.Body, newScope(scope))

	case ast.Show:
		v, err := in.eval(s.Value, scope)
		if err != nil {
			return err
		}
		in.emit(v.Inspect())
		return nil

	case ast.Return:
		if s.Value == nil {
			return returnSignal{value: NothingValue{}}
		}
		v, err := in.eval(s.Value, scope)
		if err != nil {
			return err
		}
		return returnSignal{value: v}

	case ast.RuntimeAssert:
		v, err := in.eval(s.Cond, scope)
		if err != nil {
			return err
		}
		if !truthy(v) {
			msg := s.Message
			if msg == "" {
				msg = "assertion failed"
			}
			return runtimeErrorf("%s", msg)
		}
		return nil

	case ast.Assert, ast.Trust:
		return nil // proof obligations, discharged by C8/C12 before codegen

	case ast.Give:
		_, err := in.eval(s.Value, scope)
		return err

	case ast.Push:
		target, err := in.eval(s.Target, scope)
		if err != nil {
			return err
		}
		val, err := in.eval(s.Value, scope)
		if err != nil {
			return err
		}
		list, ok := target.(ListValue)
		if !ok {
			return runtimeErrorf("cannot push onto a %s", target.Type())
		}
		*list.Elements = append(*list.Elements, val)
		return nil

	case ast.Pop:
		target, err := in.eval(s.Target, scope)
		if err != nil {
			return err
		}
		list, ok := target.(ListValue)
		if !ok {
			return runtimeErrorf("cannot pop from a %s", target.Type())
		}
		elems := *list.Elements
		if len(elems) == 0 {
			return runtimeErrorf("pop from an empty list")
		}
		last := elems[len(elems)-1]
		*list.Elements = elems[:len(elems)-1]
		if s.Bind != intern.Empty {
			scope.define(in.Interner.Resolve(s.Bind), last)
		}
		return nil

	case ast.Inspect:
		return in.execInspect(s, scope)

	case ast.ReadFrom:
		return in.execReadFrom(s, scope)

	case ast.WriteFile:
		path, err := in.eval(s.Path, scope)
		if err != nil {
			return err
		}
		data, err := in.eval(s.Data, scope)
		if err != nil {
			return err
		}
		return os.WriteFile(fmt.Sprint(path.Inspect()), []byte(data.Inspect()), 0o644)

	case ast.Mount:
		return &unsupportedError{operation: "Mount"}

	case ast.Sync:
		return &unsupportedError{operation: "Sync"}

	case ast.Sleep:
		d, err := in.eval(s.Duration, scope)
		if err != nil {
			return err
		}
		var seconds float64
		switch n := d.(type) {
		case IntValue:
			seconds = float64(n)
		case FloatValue:
			seconds = float64(n)
		default:
			return runtimeErrorf("Sleep duration must be a number, got %s", d.Type())
		}
		time.Sleep(time.Duration(seconds * float64(time.Second)))
		return nil

	case ast.Listen:
		return &unsupportedError{operation: "Listen"}

	case ast.ConnectTo:
		return &unsupportedError{operation: "ConnectTo"}

	case ast.LaunchTask:
		return &unsupportedError{operation: "Launch"}

	case ast.SendPipe, ast.ReceivePipe, ast.Select:
		return &unsupportedError{operation: "Pipe/Select"}

	case ast.CrdtStmt:
		return &unsupportedError{operation: "a CRDT operation"}

	default:
		return runtimeErrorf("interpreter: unhandled statement %T", stmt)
	}
}

func (in *Interpreter) execInspect(s ast.Inspect, scope *Scope) error {
	target, err := in.eval(s.Target, scope)
	if err != nil {
		return err
	}
	for _, arm := range s.Arms {
		bindings, ok := in.matchPattern(arm.Pattern, target, scope)
		if !ok {
			continue
		}
		inner := newScope(scope)
		for name, v := range bindings {
			inner.define(name, v)
		}
		return in.execBlock(arm.Body, inner)
	}
	if s.HasOtherwise {
		return in.execBlock(s.Otherwise, newScope(scope))
	}
	return runtimeErrorf("no Inspect arm matched a %s value", target.Type())
}

// matchPattern reports whether target matches pattern, and if so, the
// bindings the arm body should see (e.g. an enum variant's field names).
func (in *Interpreter) matchPattern(pattern ast.Expr, target Value, scope *Scope) (map[string]Value, bool) {
	switch p := pattern.(type) {
	case ast.NewVariant:
		sv, ok := target.(StructValue)
		if !ok || sv.Variant != in.Interner.Resolve(p.VariantName) {
			return nil, false
		}
		bindings := map[string]Value{}
		for _, f := range p.Fields {
			if id, ok := f.Value.(ast.Identifier); ok {
				bindings[in.Interner.Resolve(id.Name)] = sv.Fields[in.Interner.Resolve(f.Name)]
			}
		}
		return bindings, true
	case ast.Identifier:
		return map[string]Value{in.Interner.Resolve(p.Name): target}, true
	default:
		pv, err := in.eval(pattern, scope)
		if err != nil {
			return nil, false
		}
		return nil, valuesEqual(pv, target)
	}
}

func (in *Interpreter) execReadFrom(s ast.ReadFrom, scope *Scope) error {
	var text string
	switch s.Source {
	case ast.ReadConsole:
		line, err := in.stdin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		text = strings.TrimRight(line, "\r\n")
	case ast.ReadFile:
		pathVal, err := in.eval(s.FileExpr, scope)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(pathVal.Inspect())
		if err != nil {
			return runtimeErrorf("reading file: %v", err)
		}
		text = string(data)
	}
	if s.Bind != intern.Empty {
		scope.define(in.Interner.Resolve(s.Bind), TextValue(text))
	}
	return nil
}

func (in *Interpreter) callFunction(fn ast.FunctionDef, args []Value) (Value, error) {
	scope := newCallScope()
	for i, p := range fn.Params {
		var v Value = NothingValue{}
		if i < len(args) {
			v = args[i]
		}
		scope.define(in.Interner.Resolve(p.Name), v)
	}
	err := in.execBlock(fn.Body, scope)
	if err == nil {
		return NothingValue{}, nil
	}
	if ret, ok := err.(returnSignal); ok {
		return ret.value, nil
	}
	return nil, err
}

func valuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case IntValue:
		bv, ok := b.(IntValue)
		return ok && av == bv
	case FloatValue:
		bv, ok := b.(FloatValue)
		return ok && av == bv
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av == bv
	case TextValue:
		bv, ok := b.(TextValue)
		return ok && av == bv
	case CharValue:
		bv, ok := b.(CharValue)
		return ok && av == bv
	case NothingValue:
		_, ok := b.(NothingValue)
		return ok
	default:
		return false
	}
}
