// reader.go
//
// The reader: a cursor over source text plus a recursive-descent parser that
// turns characters into expression objects. One Reader instance is created
// per file or per interactive line; its position state is valid only for the
// duration of that pass.
//
// Grammar:
//   - spaces and newlines are skipped (newlines advance the line counter and
//     reset the column, used only for diagnostics)
//   - ";" starts a comment running to the end of the line
//   - "(" ... ")" is a list of sub-expressions
//   - "'" immediately followed by a parenthesized form is a list literal
//   - `"` ... `"` is a string; characters are taken literally, there is no
//     escape processing
//   - a leading decimal digit starts a number (maximal digit run)
//   - a lone "." is the variadic dot sentinel
//   - letters and the operator characters + - = * / > < ? form symbols
//
// Malformed input (unexpected character, unterminated string or list) yields
// a *SyntaxError. The reader is not resumable after an error; callers treat
// these as fatal.
package lisp

import (
	"math/big"
	"strconv"

	"github.com/nukata/goarith"
)

// Reader consumes expressions from a single source text.
type Reader struct {
	in   *Interp
	name string
	src  string
	pos  int
	line int // 1-based
	col  int // 1-based
}

// NewReader returns a reader over src. The name labels diagnostics (a file
// path, or something like "repl").
func (in *Interp) NewReader(name, src string) *Reader {
	return &Reader{in: in, name: name, src: src, line: 1, col: 1}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isSymbolChar(ch byte) bool {
	switch ch {
	case '+', '-', '=', '*', '/', '>', '<', '?':
		return true
	}
	return isLetter(ch)
}

// advance consumes one byte, keeping the line/column counters current.
func (r *Reader) advance() {
	if r.src[r.pos] == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	r.pos++
}

// skipBlank consumes whitespace and comments.
func (r *Reader) skipBlank() {
	for r.pos < len(r.src) {
		switch r.src[r.pos] {
		case ' ', '\n', '\r':
			r.advance()
		case ';':
			for r.pos < len(r.src) && r.src[r.pos] != '\n' {
				r.advance()
			}
		default:
			return
		}
	}
}

// AtEOF reports whether only blanks remain.
func (r *Reader) AtEOF() bool {
	r.skipBlank()
	return r.pos >= len(r.src)
}

func (r *Reader) syntaxErrorf(format string, args ...any) error {
	return newSyntaxError(r.name, r.line, r.col, format, args...)
}

func (r *Reader) consume(ch byte) error {
	if r.pos >= len(r.src) {
		return r.syntaxErrorf("expected %q but found end of input", string(ch))
	}
	if got := r.src[r.pos]; got != ch {
		return r.syntaxErrorf("expected %q but found %q", string(ch), string(got))
	}
	r.advance()
	return nil
}

// ReadExpr consumes one complete expression, advancing the cursor past it.
// At end of input it returns the Nil singleton.
func (r *Reader) ReadExpr() (*Object, error) {
	r.skipBlank()
	if r.pos >= len(r.src) {
		return r.in.Nil, nil
	}
	switch ch := r.src[r.pos]; ch {
	case '(':
		return r.readList(false)
	case '\'':
		r.advance()
		return r.readList(true)
	case '"':
		return r.readString()
	case '.':
		r.advance()
		return r.in.Dot, nil
	default:
		if isDigit(ch) {
			return r.readNumber()
		}
		if isSymbolChar(ch) {
			return r.readSymbol(), nil
		}
		return nil, r.syntaxErrorf("invalid character %q (%d)", string(ch), ch)
	}
}

func (r *Reader) readList(literal bool) (*Object, error) {
	if err := r.consume('('); err != nil {
		return nil, err
	}
	lst := newList()
	if literal {
		lst.Flags |= FlagListLiteral
	}
	for {
		r.skipBlank()
		if r.pos >= len(r.src) {
			return nil, r.syntaxErrorf("unexpected end of input, expected %q", ")")
		}
		if r.src[r.pos] == ')' {
			r.advance()
			return lst, nil
		}
		e, err := r.ReadExpr()
		if err != nil {
			return nil, err
		}
		lst.appendItem(e)
	}
}

func (r *Reader) readString() (*Object, error) {
	if err := r.consume('"'); err != nil {
		return nil, err
	}
	start := r.pos
	for r.pos < len(r.src) && r.src[r.pos] != '"' {
		r.advance()
	}
	if r.pos >= len(r.src) {
		return nil, r.syntaxErrorf("unterminated string literal")
	}
	s := r.src[start:r.pos]
	r.advance() // closing quote
	return newString(s), nil
}

func (r *Reader) readNumber() (*Object, error) {
	start := r.pos
	for r.pos < len(r.src) && isDigit(r.src[r.pos]) {
		r.advance()
	}
	digits := r.src[start:r.pos]
	if v, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return newNumber(goarith.AsNumber(v)), nil
	}
	z, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, r.syntaxErrorf("malformed number literal %q", digits)
	}
	return newNumber(goarith.AsNumber(z)), nil
}

func (r *Reader) readSymbol() *Object {
	start := r.pos
	for r.pos < len(r.src) && isSymbolChar(r.src[r.pos]) {
		r.advance()
	}
	return newSymbol(r.src[start:r.pos])
}
