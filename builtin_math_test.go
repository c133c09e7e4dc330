package lisp

import "testing"

func Test_Builtin_Math_add_sub_fold_left(t *testing.T) {
	ip, _, _ := newTestInterp(t)

	wantNumber(t, evalSrc(t, ip, `(+ 1 2 3)`), "6")
	wantNumber(t, evalSrc(t, ip, `(- 10 1 2)`), "7")
	wantNumber(t, evalSrc(t, ip, `(+ 1 2)`), "3")
}

func Test_Builtin_Math_arity_laws(t *testing.T) {
	ip, _, diag := newTestInterp(t)

	// + and - need at least two operands.
	wantNil(t, ip, evalSrc(t, ip, `(+ 1)`))
	wantDiagContains(t, diag, "at least two operands")

	// * / ** and comparisons take exactly two.
	diag.Reset()
	wantNil(t, ip, evalSrc(t, ip, `(* 2 3 4)`))
	wantDiagContains(t, diag, "exactly two operands")

	diag.Reset()
	wantNil(t, ip, evalSrc(t, ip, `(= 1)`))
	wantDiagContains(t, diag, "exactly two operands")
}

func Test_Builtin_Math_mul_div_pow(t *testing.T) {
	ip, _, _ := newTestInterp(t)

	wantNumber(t, evalSrc(t, ip, `(* 6 7)`), "42")
	wantNumber(t, evalSrc(t, ip, `(/ 7 2)`), "3")
	wantNumber(t, evalSrc(t, ip, `(** 2 10)`), "1024")
	wantNumber(t, evalSrc(t, ip, `(** 2 0)`), "1")
}

func Test_Builtin_Math_division_by_zero_reports(t *testing.T) {
	ip, _, diag := newTestInterp(t)

	wantNil(t, ip, evalSrc(t, ip, `(/ 1 0)`))
	wantDiagContains(t, diag, "division by zero")
}

func Test_Builtin_Math_widens_past_int64(t *testing.T) {
	ip, _, _ := newTestInterp(t)

	wantNumber(t, evalSrc(t, ip, `(* 1000000000000 1000000000000)`),
		"1000000000000000000000000")
	wantNumber(t, evalSrc(t, ip, `(** 2 100)`),
		"1267650600228229401496703205376")
}

func Test_Builtin_Math_comparisons(t *testing.T) {
	ip, _, _ := newTestInterp(t)

	if v := evalSrc(t, ip, `(= 1 1)`); v != ip.True {
		t.Fatalf("(= 1 1) = %s", FormatObject(v))
	}
	if v := evalSrc(t, ip, `(= 1 2)`); v != ip.False {
		t.Fatalf("(= 1 2) = %s", FormatObject(v))
	}
	if v := evalSrc(t, ip, `(= "a" "a")`); v != ip.True {
		t.Fatalf(`(= "a" "a") = %s`, FormatObject(v))
	}
	if v := evalSrc(t, ip, `(= nil nil)`); v != ip.True {
		t.Fatalf("(= nil nil) = %s", FormatObject(v))
	}
	if v := evalSrc(t, ip, `(> 2 1)`); v != ip.True {
		t.Fatalf("(> 2 1) = %s", FormatObject(v))
	}
	if v := evalSrc(t, ip, `(< 2 1)`); v != ip.False {
		t.Fatalf("(< 2 1) = %s", FormatObject(v))
	}
}

func Test_Builtin_Math_string_concat(t *testing.T) {
	ip, _, _ := newTestInterp(t)

	v := evalSrc(t, ip, `(+ "foo" "bar")`)
	if v.Tag != TagString || v.text() != "foobar" {
		t.Fatalf(`(+ "foo" "bar") = %s`, FormatObject(v))
	}
}

func Test_Builtin_Math_type_mismatch_reports_nil(t *testing.T) {
	ip, _, diag := newTestInterp(t)

	wantNil(t, ip, evalSrc(t, ip, `(+ 1 "a")`))
	wantDiagContains(t, diag, "cannot add")

	diag.Reset()
	wantNil(t, ip, evalSrc(t, ip, `(> "a" 1)`))
	wantDiagContains(t, diag, "cannot compare")
}

func Test_Builtin_Math_operands_are_evaluated(t *testing.T) {
	ip, _, _ := newTestInterp(t)

	evalSrc(t, ip, `(setq four 4)`)
	wantNumber(t, evalSrc(t, ip, `(+ four (* 2 four))`), "12")
}
