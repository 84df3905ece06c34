package expr

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags a Value.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindNumber
	KindBool
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a tagged argument value flowing through the evaluator.
// Integers are kept distinct from floats so integer-only functions can
// reject fractional inputs.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
	list []Value
}

// Constructors.

func String(s string) Value     { return Value{kind: KindString, s: s} }
func Integer(i int64) Value     { return Value{kind: KindInteger, i: i} }
func Number(f float64) Value    { return Value{kind: KindNumber, f: f} }
func Bool(b bool) Value         { return Value{kind: KindBool, b: b} }
func List(vals []Value) Value   { return Value{kind: KindList, list: vals} }

// Kind returns the value's tag.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload. ok is false for non-string values;
// there is no implicit stringification of other kinds.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

// Int returns an integer payload. A Number coerces only when its
// fractional part is zero.
func (v Value) Int() (int64, bool) {
	switch v.kind {
	case KindInteger:
		return v.i, true
	case KindNumber:
		if v.f == math.Trunc(v.f) && !math.IsInf(v.f, 0) {
			return int64(v.f), true
		}
	}
	return 0, false
}

// Float returns a float payload; integers widen.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.i), true
	case KindNumber:
		return v.f, true
	}
	return 0, false
}

// BoolVal returns the bool payload.
func (v Value) BoolVal() (bool, bool) {
	return v.b, v.kind == KindBool
}

// ListVal returns the list payload.
func (v Value) ListVal() ([]Value, bool) {
	return v.list, v.kind == KindList
}

// Format renders the value as a string the way the top level of an
// evaluation does: integers in decimal, floats in shortest form, lists
// comma-joined.
func (v Value) Format() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindNumber:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.Format()
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}
