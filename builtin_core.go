// builtin_core.go
//
// Core builtins: binding (`setq`), output (`print`), function construction
// (`defun`, `lambda`), control flow (`if`, `cond`) and list access (`car`,
// `cdr`, `cadr`). Every handler receives the entire unevaluated call form,
// which is what makes `if`/`cond` short-circuit and lets `setq`/`defun`
// take names without quoting.
package lisp

import "fmt"

// isTruthy: anything other than the false and nil singletons.
func (in *Interp) isTruthy(o *Object) bool {
	return o != in.False && o != in.Nil
}

// argCount returns the number of operands of a call form.
func argCount(expr *Object) int { return len(expr.items()) - 1 }

func registerCoreBuiltins(in *Interp) {
	in.registerBuiltin("setq", builtinSetq)
	in.registerBuiltin("print", builtinPrint)
	in.registerBuiltin("defun", builtinDefun)
	in.registerBuiltin("lambda", builtinLambda)
	in.registerBuiltin("if", builtinIf)
	in.registerBuiltin("cond", builtinCond)
	in.registerBuiltin("car", builtinCar)
	in.registerBuiltin("cdr", builtinCdr)
	in.registerBuiltin("cadr", builtinCadr)
}

// (setq name value) — binds the evaluated value under the unevaluated name
// in the current scope.
func builtinSetq(in *Interp, expr *Object) *Object {
	if argCount(expr) != 2 {
		in.reportf("setq takes exactly two arguments, %d were given", argCount(expr))
		return in.Nil
	}
	items := expr.items()
	name, ok := symbolText(items[1])
	if !ok {
		in.reportf("first argument of setq must be a symbol, got %s", FormatObject(items[1]))
		return in.Nil
	}
	in.env.Define(name, in.Eval(items[2]))
	return in.Nil
}

// (print a b ...) — evaluates each operand in order, writes the display
// texts with no separator and one trailing newline.
func builtinPrint(in *Interp, expr *Object) *Object {
	for _, operand := range expr.items()[1:] {
		fmt.Fprint(in.Out, displayString(in.Eval(operand)))
	}
	fmt.Fprintln(in.Out)
	return in.Nil
}

// funcDefParts validates the shared (defun/lambda) shape: a parameter-list
// operand plus at least one body expression.
func funcDefParts(in *Interp, name string, expr *Object) (*Object, bool) {
	if argCount(expr) < 2 {
		in.reportf("%s needs a parameter list and a body", name)
		return nil, false
	}
	def := expr.items()[1]
	if !def.isList() {
		in.reportf("parameter list of %s must be a list, got %s", name, FormatObject(def))
		return nil, false
	}
	return def, true
}

// (defun (name params...) body...) — builds a named function and installs
// it under its own name in the current scope.
func builtinDefun(in *Interp, expr *Object) *Object {
	def, ok := funcDefParts(in, "defun", expr)
	if !ok {
		return in.Nil
	}
	if len(def.items()) == 0 {
		in.reportf("defun parameter list must start with the function name")
		return in.Nil
	}
	name, ok := symbolText(def.items()[0])
	if !ok {
		in.reportf("function name must be a symbol, got %s", FormatObject(def.items()[0]))
		return in.Nil
	}
	fobj := newFunction(def, expr, false)
	in.env.Define(name, fobj)
	return fobj
}

// (lambda (params...) body...) — builds an anonymous function. Nothing is
// installed; the value is the function object itself.
func builtinLambda(in *Interp, expr *Object) *Object {
	def, ok := funcDefParts(in, "lambda", expr)
	if !ok {
		return in.Nil
	}
	return newFunction(def, expr, true)
}

// (if cond then else) — exactly one branch is ever evaluated.
func builtinIf(in *Interp, expr *Object) *Object {
	if argCount(expr) != 3 {
		in.reportf("if takes exactly 3 arguments: condition, then and else branches; %d were given", argCount(expr))
		return in.Nil
	}
	items := expr.items()
	if in.isTruthy(in.Eval(items[1])) {
		return in.Eval(items[2])
	}
	return in.Eval(items[3])
}

// (cond (test result)...) — tests run in order; the else sentinel is
// identity-compared and always true; no match yields nil.
func builtinCond(in *Interp, expr *Object) *Object {
	if argCount(expr) < 1 {
		in.reportf("cond requires at least one clause")
		return in.Nil
	}
	for _, clause := range expr.items()[1:] {
		if !clause.isList() || len(clause.items()) < 2 {
			in.reportf("cond clause must be a two-element (test result) list, got %s", FormatObject(clause))
			return in.Nil
		}
		test := in.Eval(clause.items()[0])
		if test == in.Else || in.isTruthy(test) {
			return in.Eval(clause.items()[1])
		}
	}
	return in.Nil
}

// evalListOperand evaluates the single operand of a list builtin and
// type-checks it.
func evalListOperand(in *Interp, name string, expr *Object) (*Object, bool) {
	if argCount(expr) != 1 {
		in.reportf("%s takes exactly one argument, %d were given", name, argCount(expr))
		return nil, false
	}
	lst := in.Eval(expr.items()[1])
	if !lst.isList() {
		in.reportf("%s only operates on lists, got %s", name, FormatObject(lst))
		return nil, false
	}
	return lst, true
}

func builtinCar(in *Interp, expr *Object) *Object {
	lst, ok := evalListOperand(in, "car", expr)
	if !ok {
		return in.Nil
	}
	if len(lst.items()) < 1 {
		return in.Nil
	}
	return lst.items()[0]
}

func builtinCadr(in *Interp, expr *Object) *Object {
	lst, ok := evalListOperand(in, "cadr", expr)
	if !ok {
		return in.Nil
	}
	if len(lst.items()) < 2 {
		return in.Nil
	}
	return lst.items()[1]
}

// cdr returns a fresh evaluated list holding elements 1 onward. Empty and
// single-element inputs come back unchanged.
func builtinCdr(in *Interp, expr *Object) *Object {
	lst, ok := evalListOperand(in, "cdr", expr)
	if !ok {
		return in.Nil
	}
	items := lst.items()
	if len(items) <= 1 {
		return lst
	}
	tail := newList(append([]*Object{}, items[1:]...)...)
	tail.Flags |= FlagEvaluated
	return tail
}
