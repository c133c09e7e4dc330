// printer.go
//
// Textual representations of objects. Two flavors:
//   - FormatObject: reader-facing repr, strings quoted, list literals with
//     their leading quote mark (the REPL prints this)
//   - displayString: display text with strings bare (what `print` emits)
//
// The language has no escape processing, so quoting a string is a plain
// wrap; reading a formatted literal back yields the same value.
package lisp

import (
	"fmt"
	"strings"
)

// FormatObject renders o the way the reader would accept it, where possible.
// Functions and builtins render as non-readable placeholders.
func FormatObject(o *Object) string {
	switch o.Tag {
	case TagNil:
		return "nil"
	case TagBool:
		if o.Data.(bool) {
			return "true"
		}
		return "false"
	case TagNumber:
		return o.num().String()
	case TagString:
		return `"` + o.text() + `"`
	case TagSymbol:
		return o.text()
	case TagList:
		var b strings.Builder
		if o.Flags&FlagListLiteral != 0 {
			b.WriteByte('\'')
		}
		b.WriteByte('(')
		for i, e := range o.items() {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(FormatObject(e))
		}
		b.WriteByte(')')
		return b.String()
	case TagFunction:
		fn := o.Data.(*Function)
		if o.Flags&FlagLambda != 0 {
			return "<lambda>"
		}
		name := "?"
		if params := fn.Params.items(); len(params) > 0 {
			if s, ok := symbolText(params[0]); ok {
				name = s
			}
		}
		return fmt.Sprintf("<function %s>", name)
	case TagBuiltin:
		return fmt.Sprintf("<builtin %s>", o.Data.(*Builtin).Name)
	}
	return "<unknown>"
}

// displayString is like FormatObject except strings render as their raw
// text.
func displayString(o *Object) string {
	if o.Tag == TagString {
		return o.text()
	}
	return FormatObject(o)
}
