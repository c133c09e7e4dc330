package lisp

import (
	"errors"
	"strings"
	"testing"
)

func readErr(t *testing.T, src string) *SyntaxError {
	t.Helper()
	ip := New()
	_, err := ip.NewReader("test", src).ReadExpr()
	if err == nil {
		t.Fatalf("ReadExpr(%q) should fail", src)
	}
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("ReadExpr(%q) should produce a *SyntaxError, got %T", src, err)
	}
	return se
}

func Test_Reader_atoms(t *testing.T) {
	ip := New()

	n := mustRead(t, ip, `42`)
	wantNumber(t, n, "42")

	s := mustRead(t, ip, `"hi there"`)
	if s.Tag != TagString || s.text() != "hi there" {
		t.Fatalf("string literal misread: %s", FormatObject(s))
	}

	sym := mustRead(t, ip, `some-name?`)
	if sym.Tag != TagSymbol || sym.text() != "some-name?" {
		t.Fatalf("symbol misread: %s", FormatObject(sym))
	}
}

func Test_Reader_number_run_is_maximal(t *testing.T) {
	ip := New()
	r := ip.NewReader("test", `123abc`)

	n, err := r.ReadExpr()
	if err != nil {
		t.Fatal(err)
	}
	wantNumber(t, n, "123")

	sym, err := r.ReadExpr()
	if err != nil {
		t.Fatal(err)
	}
	if sym.Tag != TagSymbol || sym.text() != "abc" {
		t.Fatalf("trailing symbol misread: %s", FormatObject(sym))
	}
}

func Test_Reader_huge_number_literal(t *testing.T) {
	ip := New()
	const digits = "123456789012345678901234567890"
	n := mustRead(t, ip, digits)
	if n.num().String() != digits {
		t.Fatalf("big literal misread: %s", n.num().String())
	}
}

func Test_Reader_nested_lists(t *testing.T) {
	ip := New()

	v := mustRead(t, ip, `(a (b c) 1)`)
	if !v.isList() || len(v.items()) != 3 {
		t.Fatalf("list misread: %s", FormatObject(v))
	}
	inner := v.items()[1]
	if !inner.isList() || len(inner.items()) != 2 {
		t.Fatalf("nested list misread: %s", FormatObject(inner))
	}
	if v.Flags&FlagListLiteral != 0 {
		t.Fatalf("plain list must not carry the literal flag")
	}
}

func Test_Reader_quote_marks_list_literal(t *testing.T) {
	ip := New()

	v := mustRead(t, ip, `'(1 2)`)
	if !v.isList() || v.Flags&FlagListLiteral == 0 {
		t.Fatalf("quoted list should carry the literal flag: %s", FormatObject(v))
	}
}

func Test_Reader_quote_requires_parenthesized_form(t *testing.T) {
	se := readErr(t, `'x`)
	if !strings.Contains(se.Msg, "expected") {
		t.Fatalf("unexpected message %q", se.Msg)
	}
}

func Test_Reader_dot_is_the_sentinel(t *testing.T) {
	ip := New()
	if v := mustRead(t, ip, `.`); v != ip.Dot {
		t.Fatalf("lone dot should read as the dot sentinel, got %s", FormatObject(v))
	}
}

func Test_Reader_skips_comments_and_blank_lines(t *testing.T) {
	ip := New()
	src := "; leading comment\n\n  (+ 1 ; inline\n     2)\n"
	v := mustRead(t, ip, src)
	if !v.isList() || len(v.items()) != 3 {
		t.Fatalf("comment handling broke the read: %s", FormatObject(v))
	}
}

func Test_Reader_eof_yields_nil_singleton(t *testing.T) {
	ip := New()
	for _, src := range []string{"", "   ", "; only a comment"} {
		if v := mustRead(t, ip, src); v != ip.Nil {
			t.Fatalf("ReadExpr(%q) should yield the nil singleton, got %s", src, FormatObject(v))
		}
	}
}

func Test_Reader_unterminated_list(t *testing.T) {
	se := readErr(t, `(+ 1 2`)
	if !strings.Contains(se.Msg, "end of input") {
		t.Fatalf("unexpected message %q", se.Msg)
	}
}

func Test_Reader_unterminated_string(t *testing.T) {
	se := readErr(t, "(setq s \"oops")
	if !strings.Contains(se.Msg, "unterminated string") {
		t.Fatalf("unexpected message %q", se.Msg)
	}
}

func Test_Reader_invalid_character_with_position(t *testing.T) {
	se := readErr(t, "(a\n b @)")
	if !strings.Contains(se.Msg, "invalid character") {
		t.Fatalf("unexpected message %q", se.Msg)
	}
	if se.Line != 2 || se.Col != 4 {
		t.Fatalf("fault position should be 2:4, got %d:%d", se.Line, se.Col)
	}
}

func Test_Reader_string_spans_lines(t *testing.T) {
	ip := New()
	v := mustRead(t, ip, "\"a\nb\"")
	if v.text() != "a\nb" {
		t.Fatalf("strings take characters literally, got %q", v.text())
	}
}
