package source

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/ardnew/linguini/lang"
)

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"lang.common.yaml": file("app:\n  name: Linguini\n"),
		"lang.en.json": file(`{
			"refs": {"msg": {"welcome": "Welcome to {{COM:app.name}}"}},
			"data": {"home": {"title": "{{REF:msg.welcome}}!", "count": 1.50}}
		}`),
		"lang.es.yml": file("refs:\n  msg:\n    welcome: 'Bienvenido a {{COM:app.name}}'\n" +
			"data:\n  home:\n    title: '{{REF:msg.welcome}}!'\n    lines:\n      - uno\n      - dos\n"),
		"lang.de.JSON":   file(`{"data": {"home": {"title": "Willkommen"}}}`),
		"lang.txt":       file("ignored"),
		"other.fr.json":  file(`{"data": {}}`),
		"lang.it.json/x": file("directories are skipped"),
	}
}

func TestLoad(t *testing.T) {
	l, err := Load(testFS(), "lang")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got, want := l.Languages(), []string{"de", "en", "es"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}

	tests := []struct {
		location, lang string
		want           lang.Value
	}{
		{"home.title", "en", lang.String("Welcome to Linguini!")},
		{"home.count", "en", lang.Number("1.50")},
		{"home.title", "es", lang.String("Bienvenido a Linguini!")},
		{"home.lines", "es", lang.Array{lang.String("uno"), lang.String("dos")}},
		{"home.title", "de", lang.String("Willkommen")},
	}

	for _, tt := range tests {
		got, err := l.GetRaw(tt.location, tt.lang)
		if err != nil {
			t.Errorf("GetRaw(%s, %s) error = %v", tt.location, tt.lang, err)

			continue
		}

		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("GetRaw(%s, %s) = %#v, want %#v", tt.location, tt.lang, got, tt.want)
		}
	}

	if got := l.Common(); !reflect.DeepEqual(got, lang.Flat{"app.name": "Linguini"}) {
		t.Errorf("Common() = %v", got)
	}
}

func TestLoad_Options(t *testing.T) {
	override := filepath.Join(t.TempDir(), "shared.json")
	if err := os.WriteFile(override, []byte(`{"app": {"name": "Override"}}`), 0o600); err != nil {
		t.Fatal(err)
	}

	l, err := Load(testFS(), "lang",
		WithCommonFile(override),
		WithReplacementLevels(0),
	)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if l.Levels() != 0 {
		t.Errorf("Levels() = %d, want 0", l.Levels())
	}

	// Zero rounds still apply one substitution pass per stage.
	got, err := l.GetRef("msg.welcome", "en")
	if err != nil || got != "Welcome to Override" {
		t.Errorf("GetRef() = %q, %v", got, err)
	}

	title, err := l.GetRaw("home.title", "en")
	if err != nil || title != lang.String("Welcome to Override!") {
		t.Errorf("GetRaw() = %v, %v", title, err)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		fsys  fstest.MapFS
		opts  []Option
		want  error
		match string
	}{
		{
			name: "duplicate_language",
			fsys: fstest.MapFS{
				"lang.en.json": file(`{}`),
				"lang.en.yaml": file(`{}`),
			},
			want: lang.ErrDuplicateLanguage,
		},
		{
			name: "duplicate_common",
			fsys: fstest.MapFS{
				"lang.common.json": file(`{}`),
				"lang.common.yml":  file(`{}`),
			},
			want: lang.ErrDuplicateLanguage,
		},
		{
			name: "missing_common_override",
			fsys: fstest.MapFS{"lang.en.json": file(`{}`)},
			opts: []Option{WithCommonFile(filepath.Join(os.TempDir(), "linguini-missing", "common.json"))},
			want: lang.ErrCommonNotFound,
		},
		{
			name:  "parse_error",
			fsys:  fstest.MapFS{"lang.en.json": file(`{"data": `)},
			match: "lang.en.json",
		},
		{
			name: "top_level_array",
			fsys: fstest.MapFS{"lang.en.yaml": file("- a\n- b\n")},
			want: lang.ErrInvalidValue,
		},
		{
			name: "section_not_object",
			fsys: fstest.MapFS{"lang.en.json": file(`{"data": ["a"]}`)},
			want: lang.ErrInvalidValue,
		},
		{
			name: "negative_levels",
			fsys: fstest.MapFS{"lang.en.json": file(`{}`)},
			opts: []Option{WithReplacementLevels(-1)},
			want: lang.ErrInvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.fsys, "lang", tt.opts...)
			if err == nil {
				t.Fatal("Load() succeeded")
			}

			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}

			if tt.match != "" && !strings.Contains(err.Error(), tt.match) {
				t.Errorf("Load() error = %q, want it to mention %q", err, tt.match)
			}
		})
	}
}

func TestLoad_EmptyFiles(t *testing.T) {
	l, err := Load(fstest.MapFS{
		"lang.common.json": file(""),
		"lang.en.yaml":     file("\n"),
		"lang.es.yaml":     file("data: null\n"),
	}, "lang")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := l.Languages(); !reflect.DeepEqual(got, []string{"en", "es"}) {
		t.Errorf("Languages() = %v", got)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "msgs.en.yaml"), []byte("data:\n  a:\n    b: c\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	l, err := Open(dir, "msgs")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if got, err := l.GetRaw("a.b", "en"); err != nil || got != lang.String("c") {
		t.Errorf("GetRaw() = %v, %v", got, err)
	}

	if _, err := Open(filepath.Join(dir, "missing"), "msgs"); err == nil {
		t.Error("Open(missing dir) succeeded")
	}
}

func TestLanguages(t *testing.T) {
	got, err := Languages(testFS(), "lang")
	if err != nil {
		t.Fatalf("Languages() error = %v", err)
	}

	if want := []string{"de", "en", "es"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}
}

func TestDecode(t *testing.T) {
	got, err := Decode("x.yaml", []byte("a: [1, true, null, text]\n"))
	if err != nil {
		t.Fatalf("Decode(yaml) error = %v", err)
	}

	want := lang.Object{"a": lang.Array{lang.Number("1"), lang.Bool(true), lang.Null{}, lang.String("text")}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode(yaml) = %#v, want %#v", got, want)
	}

	got, err = Decode("x.json", []byte(`{"n": 1e3}`))
	if err != nil || !reflect.DeepEqual(got, lang.Object{"n": lang.Number("1e3")}) {
		t.Errorf("Decode(json) = %#v, %v", got, err)
	}

	if _, err := Decode("x.toml", nil); !errors.Is(err, lang.ErrInvalidValue) {
		t.Errorf("Decode(toml) error = %v", err)
	}
}
