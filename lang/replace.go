package lang

import "strings"

// Replace substitutes the variables of s into every string leaf of v and
// returns the result.
//
// Objects and arrays are updated in place and keep their shape; callers that
// must not mutate v pass a [Clone]. Scalars other than strings are returned
// unchanged, as is everything when s is nil or empty.
//
// A [Nested] scope cannot be substituted: string leaves reached with one are
// returned unchanged. Convert it with [AsFlat] beforehand.
func Replace(v Value, s Scope) Value {
	switch s := s.(type) {
	case Flat:
		if r := s.replacer(); r != nil {
			return walk(v, r.Replace)
		}

		return v

	case Nested:
		return walk(v, func(text string) string { return text })

	default:
		return v
	}
}

// walk applies fn to each string leaf of v.
func walk(v Value, fn func(string) string) Value {
	switch v := v.(type) {
	case Object:
		for key, elem := range v {
			v[key] = walk(elem, fn)
		}

		return v

	case Array:
		for i, elem := range v {
			v[i] = walk(elem, fn)
		}

		return v

	case String:
		if !strings.Contains(string(v), tokenOpen) {
			return v
		}

		return String(fn(string(v)))

	default:
		return v
	}
}
