package lang

import (
	"maps"
	"slices"
	"strings"
)

// Prefixes namespacing the common and reference scopes.
const (
	CommonPrefix    = "COM:"
	ReferencePrefix = "REF:"
)

// Placeholder delimiters.
const (
	tokenOpen  = "{{"
	tokenClose = "}}"
)

// Token returns the placeholder that name is substituted for.
func Token(name string) string { return tokenOpen + name + tokenClose }

// Scope is a set of variables placeholders are resolved against.
//
// A Scope is either [Flat], usable for substitution directly, or [Nested],
// a category tree that must be converted with [AsFlat] first.
type Scope interface {
	scope()
}

// Flat maps variable names to replacement text.
type Flat map[string]string

// Nested is a category tree of variables addressed as "category.item".
type Nested Object

func (Flat) scope()   {}
func (Nested) scope() {}

// AsFlat converts s to a [Flat] scope. A nil scope yields nil.
func AsFlat(s Scope) Flat {
	switch s := s.(type) {
	case Flat:
		return s
	case Nested:
		return s.Flat()
	default:
		return nil
	}
}

// Flat flattens n to "category.item" variables without a prefix.
func (n Nested) Flat() Flat { return FlattenVariables(Object(n), "") }

// Names returns the variable names of f in sorted order.
func (f Flat) Names() []string { return slices.Sorted(maps.Keys(f)) }

// replacer builds a single-pass replacer for every token in f, or returns
// nil if f is empty.
func (f Flat) replacer() *strings.Replacer {
	if len(f) == 0 {
		return nil
	}

	// Sorted for a deterministic replacer regardless of map order.
	names := f.Names()
	pairs := make([]string, 0, 2*len(names))

	for _, name := range names {
		pairs = append(pairs, Token(name), f[name])
	}

	return strings.NewReplacer(pairs...)
}

// ReplaceString replaces every occurrence of each {{name}} token in text with
// the value of name in f.
//
// Text is scanned once; replacement values are not themselves expanded.
// Tokens without a variable in f are left verbatim.
func (f Flat) ReplaceString(text string) string {
	r := f.replacer()
	if r == nil {
		return text
	}

	return r.Replace(text)
}

// Replace returns a copy of f with the variables of vars substituted into
// each value.
func (f Flat) Replace(vars Flat) Flat {
	out := make(Flat, len(f))

	r := vars.replacer()
	for name, text := range f {
		if r != nil {
			text = r.Replace(text)
		}

		out[name] = text
	}

	return out
}

// Resolve substitutes f into itself for the given number of rounds and
// returns the result.
//
// Every round substitutes the unresolved values of f, so round k follows
// exactly the k-th reference of a chain and a chain of n references needs n
// rounds. Chains longer than levels, and cycles, keep their remaining
// placeholders.
func (f Flat) Resolve(levels int) Flat {
	out := maps.Clone(f)
	if out == nil {
		out = Flat{}
	}

	for range levels {
		next := out.Replace(f)
		if maps.Equal(next, out) {
			break
		}

		out = next
	}

	return out
}

// Unresolved returns the sorted names of variables whose value still holds
// a token of another variable in f.
func (f Flat) Unresolved() []string {
	var names []string

	for name, text := range f {
		if !strings.Contains(text, tokenOpen) {
			continue
		}

		for other := range f {
			if strings.Contains(text, Token(other)) {
				names = append(names, name)

				break
			}
		}
	}

	slices.Sort(names)

	return names
}
