// errors.go: syntax-error values and caret-snippet rendering
//
// The reader produces *SyntaxError values carrying a 1-based line/column.
// `WrapErrorWithSource` recognizes them and returns an error whose message
// is a multi-line snippet with a caret under the offending column:
//
//	SYNTAX ERROR in demo.lisp at 2:7: unterminated string literal
//
//	   1 | (setq a 1)
//	   2 | (setq b "oops
//	     |       ^
//
// Any other error is returned unchanged. Runtime diagnostics never come
// through here: they are one-line reports on Interp.Diag and evaluation
// continues; syntax errors are the fatal class and callers are expected to
// terminate after rendering one.
package lisp

import (
	"fmt"
	"strings"
)

// SyntaxError is a fatal reader fault at a source position.
type SyntaxError struct {
	File string // source label, may be empty
	Line int    // 1-based
	Col  int    // 1-based
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Msg)
}

func newSyntaxError(file string, line, col int, format string, args ...any) error {
	return &SyntaxError{File: file, Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of src if err is a *SyntaxError, and err unchanged otherwise.
func WrapErrorWithSource(err error, src string) error {
	e, ok := err.(*SyntaxError)
	if !ok {
		return err
	}
	return fmt.Errorf("%s", prettySnippet(src, e))
}

func prettySnippet(src string, e *SyntaxError) string {
	lines := strings.Split(src, "\n")
	line, col := e.Line, e.Col
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	if e.File != "" {
		fmt.Fprintf(&b, "SYNTAX ERROR in %s at %d:%d: %s\n\n", e.File, line, col, e.Msg)
	} else {
		fmt.Fprintf(&b, "SYNTAX ERROR at %d:%d: %s\n\n", line, col, e.Msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
