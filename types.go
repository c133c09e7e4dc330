// types.go
//
// The tagged object model. Every value the reader produces and the evaluator
// consumes is an *Object: a tag, a small flag set, and a tag-specific payload.
//
// Payload by tag:
//   - TagNumber:   goarith.Number (always an integer here; the reader only
//     produces integer literals)
//   - TagString:   string (owned text)
//   - TagSymbol:   string (the name)
//   - TagList:     []*Object
//   - TagFunction: *Function
//   - TagBuiltin:  *Builtin
//   - TagNil, TagBool: no payload (singletons held by the Interp)
//
// Objects are shared freely and mutated in place by the evaluator: setting
// FlagEvaluated and overwriting list-literal elements with their evaluated
// forms is the interpreter's only caching layer.
package lisp

import "github.com/nukata/goarith"

// Tag discriminates the payload of an Object.
type Tag uint8

const (
	TagNil Tag = iota
	TagBool
	TagNumber
	TagString
	TagSymbol
	TagList
	TagFunction
	TagBuiltin
)

// Flags is the per-object flag set.
type Flags uint8

const (
	// FlagEvaluated marks an object as being in final form: evaluating it
	// again returns the same reference with no further effects.
	FlagEvaluated Flags = 1 << iota
	// FlagListLiteral marks a list introduced by the quote marker; it
	// evaluates element-wise instead of as a call form.
	FlagListLiteral
	// FlagLambda marks an anonymous function whose parameter list has no
	// leading name slot.
	FlagLambda
)

// Object is a tagged interpreter value.
type Object struct {
	Tag   Tag
	Flags Flags
	Data  any
}

// Function is the payload of a TagFunction object. Params is the declared
// parameter list (slot 0 is the function's own name unless the owning object
// carries FlagLambda). Body is the whole defining form; its elements from
// index 2 on are the body expressions. Functions hold no environment
// reference: scoping is dynamic and each call chains onto the caller's
// active scope.
type Function struct {
	Params *Object
	Body   *Object
}

// Builtin is the payload of a TagBuiltin object. The handler receives the
// entire unevaluated call form and decides which operands to evaluate, and
// in what order.
type Builtin struct {
	Name    string
	Handler func(in *Interp, expr *Object) *Object
}

func newNumber(n goarith.Number) *Object { return &Object{Tag: TagNumber, Data: n} }
func newString(s string) *Object         { return &Object{Tag: TagString, Data: s} }
func newSymbol(s string) *Object         { return &Object{Tag: TagSymbol, Data: s} }

func newList(items ...*Object) *Object {
	if items == nil {
		items = []*Object{}
	}
	return &Object{Tag: TagList, Data: items}
}

func newFunction(params, body *Object, lambda bool) *Object {
	o := &Object{Tag: TagFunction, Data: &Function{Params: params, Body: body}}
	if lambda {
		o.Flags |= FlagLambda
	}
	return o
}

func newBuiltin(name string, handler func(*Interp, *Object) *Object) *Object {
	return &Object{Tag: TagBuiltin, Data: &Builtin{Name: name, Handler: handler}}
}

// items returns the element slice of a TagList object.
func (o *Object) items() []*Object { return o.Data.([]*Object) }

func (o *Object) appendItem(e *Object) { o.Data = append(o.items(), e) }

func (o *Object) isList() bool { return o.Tag == TagList }

// num returns the payload of a TagNumber object.
func (o *Object) num() goarith.Number { return o.Data.(goarith.Number) }

// text returns the payload of a TagString or TagSymbol object.
func (o *Object) text() string { return o.Data.(string) }

// symbolText returns the name of a symbol object, or false for any other
// shape.
func symbolText(o *Object) (string, bool) {
	if o.Tag != TagSymbol {
		return "", false
	}
	return o.text(), true
}
