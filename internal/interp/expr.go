package interp

import (
	"github.com/logos-lang/logos/internal/ast"
)

func (in *Interpreter) eval(e ast.Expr, scope *Scope) (Value, error) {
	switch n := e.(type) {
	case ast.Literal:
		return in.evalLiteral(n)

	case ast.Identifier:
		name := in.Interner.Resolve(n.Name)
		v, ok := scope.get(name)
		if !ok {
			return nil, runtimeErrorf("undefined name %q", name)
		}
		return v, nil

	case ast.ExprBinaryOp:
		return in.evalBinaryOp(n, scope)

	case ast.Call:
		fn, ok := in.funcs[in.Interner.Resolve(n.Callee)]
		if !ok {
			return nil, runtimeErrorf("call to undefined function %q", in.Interner.Resolve(n.Callee))
		}
		args, err := in.evalExprs(n.Args, scope)
		if err != nil {
			return nil, err
		}
		return in.callFunction(fn, args)

	case ast.CallExpr:
		calleeVal, err := in.eval(n.Callee, scope)
		if err != nil {
			return nil, err
		}
		closure, ok := calleeVal.(ClosureValue)
		if !ok {
			return nil, runtimeErrorf("cannot call a %s", calleeVal.Type())
		}
		args, err := in.evalExprs(n.Args, scope)
		if err != nil {
			return nil, err
		}
		callScope := newScope(closure.Env)
		for i, p := range closure.Params {
			var v Value = NothingValue{}
			if i < len(args) {
				v = args[i]
			}
			callScope.define(p, v)
		}
		err = in.execBlock(closure.Body, callScope)
		if err == nil {
			return NothingValue{}, nil
		}
		if ret, ok := err.(returnSignal); ok {
			return ret.value, nil
		}
		return nil, err

	case ast.Index:
		target, err := in.eval(n.Target, scope)
		if err != nil {
			return nil, err
		}
		key, err := in.eval(n.Key, scope)
		if err != nil {
			return nil, err
		}
		list, ok := target.(ListValue)
		if !ok {
			return nil, runtimeErrorf("cannot index into a %s", target.Type())
		}
		idx, ok := key.(IntValue)
		if !ok || int(idx) < 0 || int(idx) >= len(*list.Elements) {
			return nil, runtimeErrorf("index out of bounds")
		}
		return (*list.Elements)[idx], nil

	case ast.Slice:
		target, err := in.eval(n.Target, scope)
		if err != nil {
			return nil, err
		}
		list, ok := target.(ListValue)
		if !ok {
			return nil, runtimeErrorf("cannot slice a %s", target.Type())
		}
		elems := *list.Elements
		low, high := 0, len(elems)
		if n.Low != nil {
			lv, err := in.eval(n.Low, scope)
			if err != nil {
				return nil, err
			}
			low = int(lv.(IntValue))
		}
		if n.High != nil {
			hv, err := in.eval(n.High, scope)
			if err != nil {
				return nil, err
			}
			high = int(hv.(IntValue))
		}
		if low < 0 || high > len(elems) || low > high {
			return nil, runtimeErrorf("slice bounds out of range")
		}
		sliced := append([]Value{}, elems[low:high]...)
		return NewList(sliced), nil

	case ast.FieldAccess:
		target, err := in.eval(n.Target, scope)
		if err != nil {
			return nil, err
		}
		sv, ok := target.(StructValue)
		if !ok {
			return nil, runtimeErrorf("cannot access a field on a %s", target.Type())
		}
		field := in.Interner.Resolve(n.Field)
		v, ok := sv.Fields[field]
		if !ok {
			return nil, runtimeErrorf("%s has no field %q", sv.TypeName, field)
		}
		return v, nil

	case ast.New:
		fields := map[string]Value{}
		for _, f := range n.InitFields {
			v, err := in.eval(f.Value, scope)
			if err != nil {
				return nil, err
			}
			fields[in.Interner.Resolve(f.Name)] = v
		}
		return StructValue{TypeName: in.Interner.Resolve(n.TypeName), Fields: fields}, nil

	case ast.NewVariant:
		fields := map[string]Value{}
		for _, f := range n.Fields {
			v, err := in.eval(f.Value, scope)
			if err != nil {
				return nil, err
			}
			fields[in.Interner.Resolve(f.Name)] = v
		}
		return StructValue{
			TypeName: in.Interner.Resolve(n.TypeName),
			Variant:  in.Interner.Resolve(n.VariantName),
			Fields:   fields,
		}, nil

	case ast.List:
		elems, err := in.evalExprs(n.Elements, scope)
		if err != nil {
			return nil, err
		}
		return NewList(elems), nil

	case ast.Tuple:
		elems, err := in.evalExprs(n.Elements, scope)
		if err != nil {
			return nil, err
		}
		return NewList(elems), nil

	case ast.Range:
		low, err := in.eval(n.Low, scope)
		if err != nil {
			return nil, err
		}
		high, err := in.eval(n.High, scope)
		if err != nil {
			return nil, err
		}
		lo, hi := int64(low.(IntValue)), int64(high.(IntValue))
		if n.Inclusive {
			hi++
		}
		var elems []Value
		for i := lo; i < hi; i++ {
			elems = append(elems, IntValue(i))
		}
		return NewList(elems), nil

	case ast.Closure:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = in.Interner.Resolve(p)
		}
		return ClosureValue{Params: params, Body: n.Body, Env: scope}, nil

	case ast.Copy:
		v, err := in.eval(n.Target, scope)
		if err != nil {
			return nil, err
		}
		return copyValue(v), nil

	case ast.Length:
		v, err := in.eval(n.Target, scope)
		if err != nil {
			return nil, err
		}
		switch t := v.(type) {
		case ListValue:
			return IntValue(len(*t.Elements)), nil
		case TextValue:
			return IntValue(len(t)), nil
		default:
			return nil, runtimeErrorf("cannot take the length of a %s", v.Type())
		}

	case ast.Contains:
		coll, err := in.eval(n.Collection, scope)
		if err != nil {
			return nil, err
		}
		item, err := in.eval(n.Item, scope)
		if err != nil {
			return nil, err
		}
		list, ok := coll.(ListValue)
		if !ok {
			return nil, runtimeErrorf("cannot check containment in a %s", coll.Type())
		}
		for _, e := range *list.Elements {
			if valuesEqual(e, item) {
				return BoolValue(true), nil
			}
		}
		return BoolValue(false), nil

	case ast.Union:
		return in.evalSetOp(n.Left, n.Right, scope, true)

	case ast.Intersection:
		return in.evalSetOp(n.Left, n.Right, scope, false)

	case ast.ManifestOf:
		return in.eval(n.Target, scope)

	case ast.ChunkAt:
		target, err := in.eval(n.Target, scope)
		if err != nil {
			return nil, err
		}
		idx, err := in.eval(n.Index, scope)
		if err != nil {
			return nil, err
		}
		list, ok := target.(ListValue)
		if !ok {
			return nil, runtimeErrorf("cannot chunk a %s", target.Type())
		}
		i, ok := idx.(IntValue)
		if !ok || int(i) < 0 || int(i) >= len(*list.Elements) {
			return nil, runtimeErrorf("chunk index out of bounds")
		}
		return (*list.Elements)[i], nil

	case ast.OptionSome:
		v, err := in.eval(n.Value, scope)
		if err != nil {
			return nil, err
		}
		return StructValue{TypeName: "Option", Variant: "Some", Fields: map[string]Value{"value": v}}, nil

	case ast.OptionNone:
		return StructValue{TypeName: "Option", Variant: "None", Fields: map[string]Value{}}, nil

	case ast.WithCapacity:
		return NewList(nil), nil

	case ast.InterpolatedString:
		var b []byte
		for _, part := range n.Parts {
			if part.Expr == nil {
				b = append(b, part.Literal...)
				continue
			}
			v, err := in.eval(part.Expr, scope)
			if err != nil {
				return nil, err
			}
			b = append(b, v.Inspect()...)
		}
		return TextValue(b), nil

	case ast.Escape:
		return in.eval(n.Target, scope)

	default:
		return nil, runtimeErrorf("interpreter: unhandled expression %T", e)
	}
}

func (in *Interpreter) evalExprs(exprs []ast.Expr, scope *Scope) ([]Value, error) {
	vals := make([]Value, len(exprs))
	for i, e := range exprs {
		v, err := in.eval(e, scope)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func (in *Interpreter) evalSetOp(leftExpr, rightExpr ast.Expr, scope *Scope, union bool) (Value, error) {
	left, err := in.eval(leftExpr, scope)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(rightExpr, scope)
	if err != nil {
		return nil, err
	}
	ll, ok := left.(ListValue)
	if !ok {
		return nil, runtimeErrorf("cannot take a set operation over a %s", left.Type())
	}
	rl, ok := right.(ListValue)
	if !ok {
		return nil, runtimeErrorf("cannot take a set operation over a %s", right.Type())
	}
	if union {
		result := append([]Value{}, (*ll.Elements)...)
		for _, e := range *rl.Elements {
			if !containsValue(result, e) {
				result = append(result, e)
			}
		}
		return NewList(result), nil
	}
	var result []Value
	for _, e := range *ll.Elements {
		if containsValue(*rl.Elements, e) {
			result = append(result, e)
		}
	}
	return NewList(result), nil
}

func containsValue(elems []Value, v Value) bool {
	for _, e := range elems {
		if valuesEqual(e, v) {
			return true
		}
	}
	return false
}

func copyValue(v Value) Value {
	switch t := v.(type) {
	case ListValue:
		elems := append([]Value{}, (*t.Elements)...)
		return NewList(elems)
	case StructValue:
		fields := make(map[string]Value, len(t.Fields))
		for k, f := range t.Fields {
			fields[k] = f
		}
		return StructValue{TypeName: t.TypeName, Variant: t.Variant, Fields: fields}
	default:
		return v
	}
}

func (in *Interpreter) evalLiteral(n ast.Literal) (Value, error) {
	switch n.Kind {
	case ast.LitInt:
		return IntValue(int64(n.Num)), nil
	case ast.LitFloat:
		return FloatValue(n.Num), nil
	case ast.LitString:
		return TextValue(n.Str), nil
	case ast.LitBool:
		return BoolValue(n.Bool), nil
	case ast.LitChar:
		r := []rune(n.Str)
		if len(r) == 0 {
			return CharValue(0), nil
		}
		return CharValue(r[0]), nil
	case ast.LitNothing:
		return NothingValue{}, nil
	default:
		return nil, runtimeErrorf("interpreter: unhandled literal kind %v", n.Kind)
	}
}

func (in *Interpreter) evalBinaryOp(n ast.ExprBinaryOp, scope *Scope) (Value, error) {
	left, err := in.eval(n.Left, scope)
	if err != nil {
		return nil, err
	}

	if n.Op == "and" {
		if !truthy(left) {
			return BoolValue(false), nil
		}
		right, err := in.eval(n.Right, scope)
		if err != nil {
			return nil, err
		}
		return BoolValue(truthy(right)), nil
	}
	if n.Op == "or" {
		if truthy(left) {
			return BoolValue(true), nil
		}
		right, err := in.eval(n.Right, scope)
		if err != nil {
			return nil, err
		}
		return BoolValue(truthy(right)), nil
	}

	right, err := in.eval(n.Right, scope)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "==":
		return BoolValue(valuesEqual(left, right)), nil
	case "!=":
		return BoolValue(!valuesEqual(left, right)), nil
	}

	if lt, ok := left.(TextValue); ok && n.Op == "+" {
		rt, ok := right.(TextValue)
		if !ok {
			return nil, runtimeErrorf("cannot concatenate Text with %s", right.Type())
		}
		return lt + rt, nil
	}

	lf, lIsFloat, lok := numericOperand(left)
	rf, rIsFloat, rok := numericOperand(right)
	if !lok || !rok {
		return nil, runtimeErrorf("operator %q is not defined for %s and %s", n.Op, left.Type(), right.Type())
	}
	isFloat := lIsFloat || rIsFloat

	switch n.Op {
	case "+", "-", "*", "/":
		var result float64
		switch n.Op {
		case "+":
			result = lf + rf
		case "-":
			result = lf - rf
		case "*":
			result = lf * rf
		case "/":
			if rf == 0 {
				return nil, runtimeErrorf("division by zero")
			}
			result = lf / rf
		}
		if isFloat {
			return FloatValue(result), nil
		}
		return IntValue(int64(result)), nil
	case "<":
		return BoolValue(lf < rf), nil
	case ">":
		return BoolValue(lf > rf), nil
	case "<=":
		return BoolValue(lf <= rf), nil
	case ">=":
		return BoolValue(lf >= rf), nil
	default:
		return nil, runtimeErrorf("unknown operator %q", n.Op)
	}
}

func numericOperand(v Value) (f float64, isFloat, ok bool) {
	switch n := v.(type) {
	case IntValue:
		return float64(n), false, true
	case FloatValue:
		return float64(n), true, true
	default:
		return 0, false, false
	}
}
