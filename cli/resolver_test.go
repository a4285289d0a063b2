package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestLoadYAML_ResolvesFlags(t *testing.T) {
	conf := `
log-level: debug
log:
  format: text
  pretty: false
dir: ./i18n
levels: 4
lang_files:
  - a
  - b
`

	resolver, err := loadYAML(strings.NewReader(conf))
	if err != nil {
		t.Fatalf("loadYAML failed: %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-format", "text"},
		{"log-pretty", false},
		{"dir", "./i18n"},
		{"levels", "4"},
		{"lang-files", "a,b"},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			flag := &kong.Flag{Value: &kong.Value{Name: tt.flag}}

			val, err := resolver.Resolve(nil, nil, flag)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}

			if val != tt.want {
				t.Errorf("Resolve(%q) = %#v, want %#v", tt.flag, val, tt.want)
			}
		})
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	resolver, err := loadYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("loadYAML failed: %v", err)
	}

	val, err := resolver.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "dir"}})
	if err != nil || val != nil {
		t.Errorf("Resolve on empty config = %v, %v", val, err)
	}
}

func TestLoadYAML_InvalidSyntax(t *testing.T) {
	if _, err := loadYAML(strings.NewReader("log: [unclosed")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
