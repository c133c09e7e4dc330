// interpreter_exec.go
//
// The private engine: Eval dispatch, symbol memoization, and the
// function-call protocol.
package lisp

// MaxCallDepth is the default bound on nested user-defined function calls.
// Builtin forms recurse through Eval without counting against it.
const MaxCallDepth = 256

// Eval evaluates expr in the current scope. It is total over all object
// shapes and never panics on well-formed objects; faults report a
// diagnostic and yield the nil singleton.
func (in *Interp) Eval(expr *Object) *Object {
	if expr.Flags&FlagEvaluated != 0 {
		return expr
	}
	switch expr.Tag {
	case TagSymbol:
		return in.evalSymbol(expr)
	case TagList:
		if expr.Flags&FlagListLiteral != 0 {
			// Evaluate each element in place, once, and freeze the
			// literal. Nested plain lists inside it are call forms
			// and evaluate as such.
			items := expr.items()
			for i := range items {
				items[i] = in.Eval(items[i])
			}
			expr.Flags |= FlagEvaluated
			return expr
		}
		items := expr.items()
		if len(items) == 0 {
			return expr
		}
		callable := in.Eval(items[0])
		switch callable.Tag {
		case TagBuiltin:
			// Builtins receive the whole unevaluated call form and
			// control their own operand evaluation.
			return callable.Data.(*Builtin).Handler(in, expr)
		case TagFunction:
			return in.call(callable, expr)
		default:
			in.reportf("%s is not callable", FormatObject(callable))
			return in.Nil
		}
	default:
		// Numbers, strings, nil, bools, functions, builtins are in
		// final form already.
		return expr
	}
}

// evalSymbol resolves a symbol and memoizes its evaluated value: the result
// is marked evaluated and written back into the scope that owns the
// binding, so re-evaluating the same symbol later returns the cached object
// with no further side effects.
func (in *Interp) evalSymbol(expr *Object) *Object {
	name := expr.text()
	val, owner := in.env.lookup(name)
	if owner == nil {
		in.reportf("symbol not found: %q", name)
		return in.Nil
	}
	if val.Flags&FlagEvaluated == 0 {
		val = in.Eval(val)
		val.Flags |= FlagEvaluated
		owner.vars[name] = val
	}
	return val
}

func (in *Interp) enterScopeWith(locals map[string]*Object) {
	in.env = &Env{vars: locals, parent: in.env}
}

func (in *Interp) exitScope() {
	in.env = in.env.parent
}

// funcName names a function for diagnostics.
func funcName(fobj *Object) string {
	if fobj.Flags&FlagLambda != 0 {
		return "lambda"
	}
	if params := fobj.Data.(*Function).Params.items(); len(params) > 0 {
		if s, ok := symbolText(params[0]); ok {
			return s
		}
	}
	return "function"
}

// call invokes a user-defined function: binds arguments (evaluated in the
// caller's environment) into a fresh scope chained onto the caller's, then
// evaluates the body sequentially in that scope. Scoping is dynamic: the
// chain is rebuilt from the call site, never from a definition site.
func (in *Interp) call(fobj, callExpr *Object) *Object {
	if in.callDepth >= in.MaxDepth {
		in.reportf("max call stack size reached")
		return in.Nil
	}
	fn := fobj.Data.(*Function)
	params := fn.Params.items()
	provided := callExpr.items()

	// Named functions carry their own name in parameter slot 0; the call
	// form always carries the callee in slot 0. The two offsets line
	// positions up for both shapes.
	paramStart, argOffset := 1, 0
	if fobj.Flags&FlagLambda != 0 {
		paramStart, argOffset = 0, 1
	}

	locals := map[string]*Object{}
	for pi := paramStart; pi < len(params); pi++ {
		param := params[pi]
		if param == in.Dot {
			if pi != len(params)-2 {
				in.reportf("variadic dot in %s must be at the second-to-last position, followed by the rest-parameter name", funcName(fobj))
				return in.Nil
			}
			restName, ok := symbolText(params[pi+1])
			if !ok {
				in.reportf("rest-parameter name of %s must be a symbol", funcName(fobj))
				return in.Nil
			}
			rest, ok := in.collectVariadic(fobj, provided, pi+argOffset)
			if !ok {
				return in.Nil
			}
			// Evaluating the collected list-literal evaluates each
			// argument exactly once, in the caller's scope.
			locals[restName] = in.Eval(rest)
			break
		}
		name, ok := symbolText(param)
		if !ok {
			in.reportf("parameter %d of %s is not a symbol", pi, funcName(fobj))
			return in.Nil
		}
		if ai := pi + argOffset; ai < len(provided) {
			locals[name] = in.Eval(provided[ai])
		} else {
			// Under-supplied call: remaining parameters bind to nil.
			locals[name] = in.Nil
		}
	}

	body := fn.Body.items()
	in.callDepth++
	in.enterScopeWith(locals)
	defer func() {
		in.exitScope()
		in.callDepth--
	}()

	// Body expressions start at index 2 of the defining form (0 is the
	// defun/lambda marker, 1 the parameter list); the last value wins.
	result := in.Nil
	for i := 2; i < len(body); i++ {
		result = in.Eval(body[i])
	}
	return result
}

// collectVariadic gathers the provided arguments from index `from` on into
// one fresh list literal. A caller-side dot splices its evaluated list
// operand instead of passing it as a single positional argument.
func (in *Interp) collectVariadic(fobj *Object, provided []*Object, from int) (*Object, bool) {
	rest := newList()
	rest.Flags |= FlagListLiteral
	for i := from; i < len(provided); i++ {
		arg := provided[i]
		if arg == in.Dot {
			if i != len(provided)-2 {
				in.reportf("error while calling %s: caller-side dot must be at the second-to-last position, followed by the variadic expansion list", funcName(fobj))
				return nil, false
			}
			tailExpr := provided[i+1]
			if tailExpr.Tag == TagList && tailExpr.Flags&(FlagListLiteral|FlagEvaluated) == 0 {
				// A bare parenthesized form after the dot is the
				// expansion list itself; its elements join the
				// collection and are evaluated with it.
				rest.Data = append(rest.items(), tailExpr.items()...)
				break
			}
			tail := in.Eval(tailExpr)
			if tail.Tag != TagList {
				in.reportf("caller-side dot must be followed by a list argument")
				return nil, false
			}
			rest.Data = append(rest.items(), tail.items()...)
			break
		}
		rest.appendItem(arg)
	}
	return rest, true
}
