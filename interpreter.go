// interpreter.go — public surface of the interpreter.
//
// An *Interp holds everything that the reference implementation kept as
// process-wide state: the scope chain, the call-depth counter, the shared
// singletons, and the two output streams. Multiple independent instances
// can run side by side.
//
// Canonical entry points:
//   - New / NewRuntime:  bare engine / engine plus the embedded prelude
//   - EvalSource:        read-and-evaluate every top-level form in a string
//   - ReadEval:          read-and-evaluate exactly one form (the REPL entry)
//   - LoadFile:          batch entry; a missing file is reported and skipped
//   - Eval:              evaluate an already-read expression object
//
// Reader faults come back as *SyntaxError and are fatal by contract (the
// CLI terminates); runtime faults print one line to Diag and the faulting
// expression yields the nil singleton.
package lisp

import (
	"fmt"
	"io"
	"os"
)

// Version of the interpreter, surfaced by `lisp version`.
const Version = "0.2.0"

// Interp is one interpreter instance.
type Interp struct {
	// Global is the root scope holding builtins and top-level bindings.
	Global *Env
	// Out receives `print` output. Defaults to stdout.
	Out io.Writer
	// Diag receives one-line runtime diagnostics. Defaults to stderr.
	Diag io.Writer
	// MaxDepth bounds nested user-defined function calls.
	MaxDepth int

	// Shared singletons, compared by identity throughout. Dot and Else
	// are the variadic and cond sentinels; both carry "." as their text
	// (as the reference does), which only ever shows in printed output.
	Nil, True, False, Dot, Else *Object

	env       *Env // scope active at the current evaluation point
	callDepth int
}

// New returns an interpreter with all builtins installed and no prelude.
func New() *Interp {
	// The singletons are born in final form: resolving them through a
	// symbol must hand back the very same reference, never re-evaluate.
	in := &Interp{
		Out:      os.Stdout,
		Diag:     os.Stderr,
		MaxDepth: MaxCallDepth,
		Nil:      &Object{Tag: TagNil, Flags: FlagEvaluated},
		True:     &Object{Tag: TagBool, Data: true, Flags: FlagEvaluated},
		False:    &Object{Tag: TagBool, Data: false, Flags: FlagEvaluated},
		Dot:      newSymbol("."),
		Else:     newSymbol("."),
	}
	in.Dot.Flags |= FlagEvaluated
	in.Else.Flags |= FlagEvaluated
	in.Global = NewEnv(nil)
	in.env = in.Global

	in.Global.Define("nil", in.Nil)
	in.Global.Define("true", in.True)
	in.Global.Define("false", in.False)
	in.Global.Define("else", in.Else)

	registerCoreBuiltins(in)
	registerMathBuiltins(in)
	registerSysBuiltins(in)
	return in
}

// NewRuntime returns an interpreter with the embedded standard library
// loaded on top of the builtins.
func NewRuntime() (*Interp, error) {
	in := New()
	if err := in.loadPrelude(); err != nil {
		return nil, fmt.Errorf("loading prelude: %w", err)
	}
	return in, nil
}

func (in *Interp) registerBuiltin(name string, handler func(*Interp, *Object) *Object) {
	in.Global.Define(name, newBuiltin(name, handler))
}

// reportf emits one recoverable-error diagnostic line.
func (in *Interp) reportf(format string, args ...any) {
	fmt.Fprintf(in.Diag, format+"\n", args...)
}

// EvalSource reads and evaluates every top-level expression in src and
// returns the value of the last one (nil singleton for empty input).
func (in *Interp) EvalSource(name, src string) (*Object, error) {
	r := in.NewReader(name, src)
	last := in.Nil
	for !r.AtEOF() {
		e, err := r.ReadExpr()
		if err != nil {
			return nil, err
		}
		last = in.Eval(e)
	}
	return last, nil
}

// ReadEval reads exactly one expression from src and evaluates it. This is
// the interactive contract: one expression per line.
func (in *Interp) ReadEval(name, src string) (*Object, error) {
	e, err := in.NewReader(name, src).ReadExpr()
	if err != nil {
		return nil, err
	}
	return in.Eval(e), nil
}

// LoadFile reads a whole file and evaluates its top-level expressions. A
// file that cannot be read is reported and skipped, not escalated; reader
// faults inside a file that was read do propagate.
func (in *Interp) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		in.reportf("couldn't load file at %s, skipping", path)
		return nil
	}
	_, err = in.EvalSource(path, string(data))
	return err
}
