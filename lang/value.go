package lang

import (
	"strconv"
	"strings"
)

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a node in a parsed language tree.
//
// The set of implementations is closed: [Object], [Array], [String], and the
// scalars [Number], [Bool], and [Null].
type Value interface {
	Kind() Kind
	value()
}

type (
	// Object maps member names to values.
	Object map[string]Value
	// Array is an ordered sequence of values.
	Array []Value
	// String is a text leaf, the only variant placeholders are replaced in.
	String string
	// Number holds a numeric literal exactly as written in its source.
	Number string
	// Bool is a boolean literal.
	Bool bool
	// Null is the absent value.
	Null struct{}
)

func (Object) Kind() Kind { return KindObject }
func (Array) Kind() Kind  { return KindArray }
func (String) Kind() Kind { return KindString }
func (Number) Kind() Kind { return KindNumber }
func (Bool) Kind() Kind   { return KindBool }
func (Null) Kind() Kind   { return KindNull }

func (Object) value() {}
func (Array) value()  {}
func (String) value() {}
func (Number) value() {}
func (Bool) value()   {}
func (Null) value()   {}

// Clone returns a deep copy of v. Scalars are returned as-is.
func Clone(v Value) Value {
	switch v := v.(type) {
	case Object:
		if v == nil {
			return Object(nil)
		}

		out := make(Object, len(v))
		for key, val := range v {
			out[key] = Clone(val)
		}

		return out

	case Array:
		if v == nil {
			return Array(nil)
		}

		out := make(Array, len(v))
		for i, val := range v {
			out[i] = Clone(val)
		}

		return out

	default:
		return v
	}
}

// Text returns the replacement text of a leaf value and reports whether v
// has one. Arrays yield the text of each element joined by newlines.
// Objects have no replacement text.
func Text(v Value) (string, bool) {
	switch v := v.(type) {
	case String:
		return string(v), true

	case Number:
		return string(v), true

	case Bool:
		return strconv.FormatBool(bool(v)), true

	case Null, nil:
		return "", true

	case Array:
		lines := make([]string, 0, len(v))

		for _, elem := range v {
			s, ok := Text(elem)
			if !ok {
				return "", false
			}

			lines = append(lines, s)
		}

		return strings.Join(lines, "\n"), true

	default:
		return "", false
	}
}
