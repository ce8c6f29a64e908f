// Package interp is the TinyLang tree-walking evaluator: scoped
// environments, class/method resolution, and array/object mutation over
// the internal/ast tree (spec.md §4.4).
//
// Its Value type and per-domain scope stacks are grounded on go-mix's
// objects.GoMixObject tagged value and scope.Scope frame chain, but
// reshaped around spec.md's specific quirks: four independent stacks (one
// per primitive domain) rather than one stack of tagged values, and the
// int-domain's write-always-innermost asymmetry against float/char/string
// write-through.
package interp

import (
	"fmt"
	"strconv"
)

// Kind discriminates the payload carried by a Value.
type Kind int

const (
	KInt Kind = iota
	KFloat
	KChar
	KString
	KArray
	KObject
)

// Value is the tagged runtime value. Booleans are represented as integer
// 0/1 (spec.md §3), so there is no separate KBool.
type Value struct {
	Kind Kind
	I    int64
	F    float64
	C    byte
	S    string
	Arr  *Array
	Obj  *Object
}

// Int, Float, Char, Str construct scalar values of each domain.
func Int(v int64) Value    { return Value{Kind: KInt, I: v} }
func Float(v float64) Value { return Value{Kind: KFloat, F: v} }
func Char(v byte) Value    { return Value{Kind: KChar, C: v} }
func Str(v string) Value   { return Value{Kind: KString, S: v} }

// Bool constructs the integer 0/1 representation of a boolean.
func Bool(v bool) Value {
	if v {
		return Int(1)
	}
	return Int(0)
}

// ArrayVal and ObjectVal wrap a reference-typed payload as a Value.
// ObjectVal is what an identifier naming an object, or an object-array
// element, evaluates to; evaluation never produces an ArrayVal.
func ArrayVal(a *Array) Value  { return Value{Kind: KArray, Arr: a} }
func ObjectVal(o *Object) Value { return Value{Kind: KObject, Obj: o} }

// Truthy projects a value onto its integer truth value, per spec.md §4.3's
// "unary `!` on any value yields `1` iff its integer projection is `0`".
func (v Value) Truthy() bool {
	return v.IntProjection() != 0
}

// IntProjection is the integer reading of a value used by control-flow
// conditions and logical operators.
func (v Value) IntProjection() int64 {
	switch v.Kind {
	case KInt:
		return v.I
	case KFloat:
		return int64(v.F)
	case KChar:
		return int64(v.C)
	case KString:
		if v.S != "" {
			return 1
		}
		return 0
	default:
		return 1
	}
}

// String renders a value the way `print` and string concatenation do:
// integers in decimal, floats in Go's default shortest textual form,
// characters as a single-byte string, strings verbatim.
func (v Value) String() string {
	switch v.Kind {
	case KInt:
		return strconv.FormatInt(v.I, 10)
	case KFloat:
		return strconv.FormatFloat(v.F, 'g', -1, 64)
	case KChar:
		return string(v.C)
	case KString:
		return v.S
	case KArray:
		return fmt.Sprintf("<array:%d>", len(v.Arr.Elems))
	case KObject:
		return fmt.Sprintf("<object:%s>", v.Obj.Class.Name)
	default:
		return ""
	}
}

// Array is one array-of-primitive value. ElemKind fixes the element
// domain. Object arrays are not Arrays: the interpreter keeps them
// separately as []*Object.
type Array struct {
	ElemKind Kind
	Elems    []Value
}

// Object is a live instance of a ClassDef.
type Object struct {
	Class  *ClassDef
	Fields map[string]Value
}
