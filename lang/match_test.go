package lang

import (
	"errors"
	"log/slog"
	"reflect"
	"testing"
)

func TestLinguini_Match(t *testing.T) {
	l := mustNew(t, map[string]File{"en": {}, "es": {}, "de": {}, "not a tag": {}})

	tests := []struct {
		name      string
		preferred []string
		want      string
		ok        bool
	}{
		{"exact", []string{"es"}, "es", true},
		{"unparseable_exact", []string{"not a tag"}, "not a tag", true},
		{"region", []string{"es-MX"}, "es", true},
		{"accept_language", []string{"fr-CA,de;q=0.8"}, "de", true},
		{"first_acceptable", []string{"ja", "en-GB"}, "en", true},
		{"unsupported", []string{"fr"}, "", false},
		{"garbage", []string{"!!"}, "", false},
		{"none", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.Match(tt.preferred...)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Match(%v) = %q, %v; want %q, %v", tt.preferred, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLinguini_Match_NoTags(t *testing.T) {
	l := mustNew(t, map[string]File{"not a tag": {}})

	if _, ok := l.Match("en"); ok {
		t.Error("Match() succeeded without parseable languages")
	}

	if got, ok := l.Match("not a tag"); !ok || got != "not a tag" {
		t.Errorf("Match(exact) = %q, %v", got, ok)
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"greetings.hello", "greetings.bye", "errors.notFound", "help.text"}

	got := Suggest("greethello", candidates, 3)
	if len(got) == 0 || got[0] != "greetings.hello" {
		t.Errorf("Suggest() = %v", got)
	}

	if got := Suggest("zzz", candidates, 3); len(got) != 0 {
		t.Errorf("Suggest(no match) = %v", got)
	}

	if got := Suggest("g", candidates, 1); len(got) != 1 {
		t.Errorf("Suggest(n=1) = %v", got)
	}

	if got := Suggest("", candidates, 3); got != nil {
		t.Errorf("Suggest(empty) = %v", got)
	}
}

func TestInvalidLocation_Suggestions(t *testing.T) {
	l := mustNew(t, map[string]File{
		"en": {Data: Object{"greetings": Object{"hello": String("Hi")}}},
	})

	_, err := l.GetRaw("greetings.helo", "en")

	var lerr *Error
	if !errors.As(err, &lerr) {
		t.Fatalf("GetRaw() error = %v, want *Error", err)
	}

	attrs := map[string]slog.Value{}
	for _, a := range lerr.Attrs() {
		attrs[a.Key] = a.Value
	}

	if got := attrs["location"].String(); got != "greetings.helo" {
		t.Errorf("location attr = %q", got)
	}

	if got := attrs["suggestions"].Any(); !reflect.DeepEqual(got, []string{"greetings.hello"}) {
		t.Errorf("suggestions attr = %v", got)
	}
}

func TestError(t *testing.T) {
	cause := errors.New("boom")
	err := ErrInvalidLocation.Wrap(cause).With(slog.String("k", "v"))

	if err.Error() != "invalid location: boom" {
		t.Errorf("Error() = %q", err.Error())
	}

	if !errors.Is(err, ErrInvalidLocation) || errors.Is(err, ErrInvalidLanguage) {
		t.Error("errors.Is does not match by sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the cause")
	}

	if len(ErrInvalidLocation.Attrs()) != 0 {
		t.Error("With modified the sentinel")
	}

	if WrapError(err) != err {
		t.Error("WrapError re-wrapped an *Error")
	}

	if got := WrapError(cause).Error(); got != "boom" {
		t.Errorf("WrapError(cause).Error() = %q", got)
	}

	group := err.LogValue().Group()
	if len(group) != 3 || group[0].Key != "error" || group[1].Key != "cause" || group[2].Key != "k" {
		t.Errorf("LogValue() = %v", group)
	}
}
