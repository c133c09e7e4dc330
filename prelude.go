// prelude.go
//
// The standard library is a lisp source file compiled into the binary and
// evaluated into the global scope by NewRuntime, so a built interpreter
// needs no files next to it.
package lisp

import _ "embed"

//go:embed stdlib/basic.lisp
var preludeSource string

func (in *Interp) loadPrelude() error {
	_, err := in.EvalSource("stdlib/basic.lisp", preludeSource)
	return err
}
