// builtin_math.go
//
// Arithmetic and comparison builtins. These only handle arity and operand
// evaluation order; the actual two-operand semantics live in arith.go.
// `+` and `-` fold left over two or more operands; the rest take exactly
// two.
package lisp

func registerMathBuiltins(in *Interp) {
	in.registerBuiltin("+", builtinFold("+", (*Interp).addTwo))
	in.registerBuiltin("-", builtinFold("-", (*Interp).subTwo))
	in.registerBuiltin("*", builtinBinary("*", (*Interp).mulTwo))
	in.registerBuiltin("/", builtinBinary("/", (*Interp).divTwo))
	in.registerBuiltin("**", builtinBinary("**", (*Interp).powTwo))
	in.registerBuiltin("=", builtinBinary("=", (*Interp).equalTwo))
	in.registerBuiltin(">", builtinBinary(">", (*Interp).gtTwo))
	in.registerBuiltin("<", builtinBinary("<", (*Interp).ltTwo))
}

type binaryOp func(*Interp, *Object, *Object) *Object

func builtinFold(name string, op binaryOp) func(*Interp, *Object) *Object {
	return func(in *Interp, expr *Object) *Object {
		if argCount(expr) < 2 {
			in.reportf("%s takes at least two operands, %d were given", name, argCount(expr))
			return in.Nil
		}
		items := expr.items()
		acc := in.Eval(items[1])
		for _, operand := range items[2:] {
			acc = op(in, acc, in.Eval(operand))
		}
		return acc
	}
}

func builtinBinary(name string, op binaryOp) func(*Interp, *Object) *Object {
	return func(in *Interp, expr *Object) *Object {
		if argCount(expr) != 2 {
			in.reportf("%s takes exactly two operands, %d were given", name, argCount(expr))
			return in.Nil
		}
		items := expr.items()
		return op(in, in.Eval(items[1]), in.Eval(items[2]))
	}
}
