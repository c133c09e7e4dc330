// arith.go
//
// The binary numeric/textual collaborator behind the arithmetic and
// comparison builtins. Each operation takes two already-evaluated objects
// and either produces a result object or reports a type fault and yields
// nil; the evaluator itself never coerces.
//
// Numbers are goarith.Number values, so addition and multiplication
// silently widen past int64 instead of wrapping.
package lisp

import (
	"strconv"

	"github.com/nukata/goarith"
)

func (in *Interp) bool2obj(v bool) *Object {
	if v {
		return in.True
	}
	return in.False
}

func bothNumbers(a, b *Object) bool {
	return a.Tag == TagNumber && b.Tag == TagNumber
}

// numberInt64 extracts an int64 from a goarith value. Results that do not
// fit report false.
func numberInt64(n goarith.Number) (int64, bool) {
	v, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (in *Interp) addTwo(a, b *Object) *Object {
	if bothNumbers(a, b) {
		return newNumber(a.num().Add(b.num()))
	}
	if a.Tag == TagString && b.Tag == TagString {
		return newString(a.text() + b.text())
	}
	in.reportf("cannot add %s and %s", FormatObject(a), FormatObject(b))
	return in.Nil
}

func (in *Interp) subTwo(a, b *Object) *Object {
	if !bothNumbers(a, b) {
		in.reportf("cannot subtract %s from %s", FormatObject(b), FormatObject(a))
		return in.Nil
	}
	return newNumber(a.num().Sub(b.num()))
}

func (in *Interp) mulTwo(a, b *Object) *Object {
	if !bothNumbers(a, b) {
		in.reportf("cannot multiply %s by %s", FormatObject(a), FormatObject(b))
		return in.Nil
	}
	return newNumber(a.num().Mul(b.num()))
}

func (in *Interp) divTwo(a, b *Object) *Object {
	if !bothNumbers(a, b) {
		in.reportf("cannot divide %s by %s", FormatObject(a), FormatObject(b))
		return in.Nil
	}
	if b.num().Cmp(goarith.AsNumber(0)) == 0 {
		in.reportf("division by zero")
		return in.Nil
	}
	q, _ := a.num().QuoRem(b.num())
	return newNumber(q)
}

// powTwo raises a to the power b by repeated squaring. Exponents are
// limited to non-negative integers; the base may be arbitrarily large.
func (in *Interp) powTwo(a, b *Object) *Object {
	if !bothNumbers(a, b) {
		in.reportf("cannot raise %s to the power %s", FormatObject(a), FormatObject(b))
		return in.Nil
	}
	exp, ok := numberInt64(b.num())
	if !ok || exp < 0 {
		in.reportf("power exponent must be a non-negative integer, got %s", FormatObject(b))
		return in.Nil
	}
	res := goarith.AsNumber(1)
	base := a.num()
	for exp > 0 {
		if exp&1 == 1 {
			res = res.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return newNumber(res)
}

func (in *Interp) equalTwo(a, b *Object) *Object {
	if bothNumbers(a, b) {
		return in.bool2obj(a.num().Cmp(b.num()) == 0)
	}
	if a.Tag == TagString && b.Tag == TagString {
		return in.bool2obj(a.text() == b.text())
	}
	// Bools, nil, and everything else compare by identity.
	return in.bool2obj(a == b)
}

func (in *Interp) gtTwo(a, b *Object) *Object {
	if !bothNumbers(a, b) {
		in.reportf("cannot compare %s and %s", FormatObject(a), FormatObject(b))
		return in.Nil
	}
	return in.bool2obj(a.num().Cmp(b.num()) > 0)
}

func (in *Interp) ltTwo(a, b *Object) *Object {
	if !bothNumbers(a, b) {
		in.reportf("cannot compare %s and %s", FormatObject(a), FormatObject(b))
		return in.Nil
	}
	return in.bool2obj(a.num().Cmp(b.num()) < 0)
}
