// builtin_sys.go
//
// Host-facing builtins:
//  1. (memtotal)      -> Number  — current process heap bytes
//  2. (timeit expr)   -> String  — wall-clock milliseconds to evaluate expr
//  3. (sleep ms)      -> nil     — block the execution thread
//
// `sleep` stalls the whole interpreter for its duration; there is no
// scheduler to preempt it.
package lisp

import (
	"runtime"
	"strconv"
	"time"

	"github.com/nukata/goarith"
)

func registerSysBuiltins(in *Interp) {
	in.registerBuiltin("memtotal", builtinMemtotal)
	in.registerBuiltin("timeit", builtinTimeit)
	in.registerBuiltin("sleep", builtinSleep)
}

func builtinMemtotal(in *Interp, expr *Object) *Object {
	if argCount(expr) != 0 {
		in.reportf("memtotal takes no arguments, %d were given", argCount(expr))
		return in.Nil
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return newNumber(goarith.AsNumber(int64(ms.HeapAlloc)))
}

// timeit evaluates its operand once, discards the result, and returns the
// elapsed wall time in milliseconds as text.
func builtinTimeit(in *Interp, expr *Object) *Object {
	if argCount(expr) != 1 {
		in.reportf("timeit takes exactly one argument, %d were given", argCount(expr))
		return in.Nil
	}
	start := time.Now()
	in.Eval(expr.items()[1])
	ms := float64(time.Since(start)) / float64(time.Millisecond)
	return newString(strconv.FormatFloat(ms, 'f', 6, 64))
}

func builtinSleep(in *Interp, expr *Object) *Object {
	if argCount(expr) != 1 {
		in.reportf("sleep takes exactly one argument, %d were given", argCount(expr))
		return in.Nil
	}
	v := in.Eval(expr.items()[1])
	if v.Tag != TagNumber {
		in.reportf("sleep takes a number of milliseconds, got %s", FormatObject(v))
		return in.Nil
	}
	ms, ok := numberInt64(v.num())
	if !ok || ms < 0 {
		in.reportf("sleep duration out of range: %s", FormatObject(v))
		return in.Nil
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return in.Nil
}
