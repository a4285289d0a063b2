package lang

import (
	"reflect"
	"testing"
)

func TestReplace(t *testing.T) {
	vars := Flat{"REF:name": "World", "n": "7"}

	tests := []struct {
		name  string
		value Value
		want  Value
	}{
		{"string", String("Hello {{REF:name}}"), String("Hello World")},
		{"string_without_tokens", String("Hello"), String("Hello")},
		{"number_unchanged", Number("{{n}}"), Number("{{n}}")},
		{"bool_unchanged", Bool(true), Bool(true)},
		{"null_unchanged", Null{}, Null{}},
		{
			"array",
			Array{String("line1"), String("{{REF:name}}")},
			Array{String("line1"), String("World")},
		},
		{
			"nested",
			Object{"a": Object{"b": Array{String("{{n}}"), Object{"c": String("{{REF:name}}!")}}}},
			Object{"a": Object{"b": Array{String("7"), Object{"c": String("World!")}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Replace(tt.value, vars); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Replace() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestReplace_EmptyAndNilScopes(t *testing.T) {
	v := Object{"a": String("{{x}}")}

	for _, s := range []Scope{nil, Flat{}, Flat(nil)} {
		if got := Replace(v, s); !reflect.DeepEqual(got, Object{"a": String("{{x}}")}) {
			t.Errorf("Replace(%#v) = %#v", s, got)
		}
	}
}

func TestReplace_NestedScopeLeavesStrings(t *testing.T) {
	v := Array{String("{{user.name}}")}

	got := Replace(v, Nested{"user": Object{"name": String("Ana")}})
	if !reflect.DeepEqual(got, Array{String("{{user.name}}")}) {
		t.Errorf("Replace(Nested) = %#v", got)
	}

	got = Replace(v, AsFlat(Nested{"user": Object{"name": String("Ana")}}))
	if !reflect.DeepEqual(got, Array{String("Ana")}) {
		t.Errorf("Replace(AsFlat(Nested)) = %#v", got)
	}
}

func TestReplace_InPlace(t *testing.T) {
	obj := Object{"a": String("{{x}}")}
	Replace(obj, Flat{"x": "X"})

	if obj["a"] != String("X") {
		t.Errorf("Replace() did not update object in place: %v", obj)
	}
}
