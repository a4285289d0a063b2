package mapper

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ardnew/linguini/lang"
)

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		value   lang.Value
		want    string
		wantErr bool
	}{
		{"string", lang.String("s"), "s", false},
		{"number", lang.Number("1.5"), "1.5", false},
		{"bool", lang.Bool(false), "false", false},
		{"null", lang.Null{}, "", true},
		{"array", lang.Array{lang.String("a")}, "", true},
		{"object", lang.Object{}, "", true},
		{"nil", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("String() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil && !errors.Is(err, lang.ErrInvalidType) {
				t.Errorf("String() error = %v, want %v", err, lang.ErrInvalidType)
			}

			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	got, err := Text(lang.Array{lang.String("a"), lang.String("b")})
	if err != nil || got != "a\nb" {
		t.Errorf("Text(array) = %q, %v", got, err)
	}

	if _, err := Text(lang.Object{}); !errors.Is(err, lang.ErrInvalidType) {
		t.Errorf("Text(object) error = %v", err)
	}

	if _, err := Text(lang.Array{lang.Object{}}); !errors.Is(err, lang.ErrInvalidType) {
		t.Errorf("Text(array of object) error = %v", err)
	}
}

func TestStrings(t *testing.T) {
	got, err := Strings(lang.Array{lang.String("a"), lang.Number("2")})
	if err != nil || !reflect.DeepEqual(got, []string{"a", "2"}) {
		t.Errorf("Strings(array) = %v, %v", got, err)
	}

	got, err = Strings(lang.String("one"))
	if err != nil || !reflect.DeepEqual(got, []string{"one"}) {
		t.Errorf("Strings(string) = %v, %v", got, err)
	}

	if _, err := Strings(lang.Array{lang.Null{}}); err == nil {
		t.Error("Strings(array of null) succeeded")
	}

	if _, err := Strings(lang.Bool(true)); err == nil {
		t.Error("Strings(bool) succeeded")
	}
}

func TestNumbers(t *testing.T) {
	if n, err := Int(lang.Number("0x1f")); err != nil || n != 31 {
		t.Errorf("Int(0x1f) = %d, %v", n, err)
	}

	if n, err := Int(lang.String("-4")); err != nil || n != -4 {
		t.Errorf("Int(string) = %d, %v", n, err)
	}

	if _, err := Int(lang.Number("1.5")); !errors.Is(err, lang.ErrInvalidType) {
		t.Errorf("Int(1.5) error = %v", err)
	}

	if f, err := Float(lang.Number("2.5e1")); err != nil || f != 25 {
		t.Errorf("Float() = %v, %v", f, err)
	}

	if _, err := Float(lang.Array{}); !errors.Is(err, lang.ErrInvalidType) {
		t.Errorf("Float(array) error = %v", err)
	}
}

func TestBool(t *testing.T) {
	if b, err := Bool(lang.Bool(true)); err != nil || !b {
		t.Errorf("Bool(true) = %v, %v", b, err)
	}

	if b, err := Bool(lang.String("false")); err != nil || b {
		t.Errorf("Bool(\"false\") = %v, %v", b, err)
	}

	if _, err := Bool(lang.String("maybe")); !errors.Is(err, lang.ErrInvalidType) {
		t.Errorf("Bool(maybe) error = %v", err)
	}

	if _, err := Bool(lang.Number("1")); !errors.Is(err, lang.ErrInvalidType) {
		t.Errorf("Bool(number) error = %v", err)
	}
}

func TestDurationAndTime(t *testing.T) {
	if d, err := Duration(lang.String("1h30m")); err != nil || d != 90*time.Minute {
		t.Errorf("Duration() = %v, %v", d, err)
	}

	if _, err := Duration(lang.String("soon")); !errors.Is(err, lang.ErrInvalidType) {
		t.Errorf("Duration(soon) error = %v", err)
	}

	parse := Time(time.DateOnly)

	got, err := parse(lang.String("2024-02-29"))
	if err != nil || !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Time() = %v, %v", got, err)
	}

	if _, err := parse(lang.String("29/02/2024")); !errors.Is(err, lang.ErrInvalidType) {
		t.Errorf("Time(bad) error = %v", err)
	}
}

func TestRegexpAndURL(t *testing.T) {
	re, err := Regexp(lang.String(`^v\d+$`))
	if err != nil || !re.MatchString("v12") {
		t.Errorf("Regexp() = %v, %v", re, err)
	}

	if _, err := Regexp(lang.String("(")); !errors.Is(err, lang.ErrInvalidType) {
		t.Errorf("Regexp(bad) error = %v", err)
	}

	u, err := URL(lang.String("https://example.com/a?b=c"))
	if err != nil || u.Host != "example.com" || u.Query().Get("b") != "c" {
		t.Errorf("URL() = %v, %v", u, err)
	}

	if _, err := URL(lang.String("http://[::1")); !errors.Is(err, lang.ErrInvalidType) {
		t.Errorf("URL(bad) error = %v", err)
	}
}

func TestNative(t *testing.T) {
	got, err := Native(lang.Object{"n": lang.Number("3"), "s": lang.String("x")})
	if err != nil {
		t.Fatalf("Native() error = %v", err)
	}

	want := map[string]any{"n": int64(3), "s": "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Native() = %#v, want %#v", got, want)
	}
}

func TestGet(t *testing.T) {
	l, err := lang.New(map[string]lang.File{
		"en": {
			Data: lang.Object{"limits": lang.Object{
				"max":     lang.String("{{REF:limits.base}}0"),
				"timeout": lang.String("{{REF:limits.base}}s"),
			}},
			Refs: lang.Object{"limits": lang.Object{"base": lang.Number("5")}},
		},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	n, err := lang.Get(l, "limits.max", "en", Int)
	if err != nil || n != 50 {
		t.Errorf("Get(Int) = %d, %v", n, err)
	}

	d, err := lang.Get(l, "limits.timeout", "en", Duration)
	if err != nil || d != 5*time.Second {
		t.Errorf("Get(Duration) = %v, %v", d, err)
	}

	if _, err := lang.Get(l, "limits.timeout", "en", Int); !errors.Is(err, lang.ErrInvalidType) {
		t.Errorf("Get(Int) on duration error = %v", err)
	}
}
