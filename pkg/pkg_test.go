package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	if Name != "linguini" {
		t.Errorf("Expected Name to be %q, got %q", "linguini", Name)
	}
}

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version() != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version())
	}

	if !regexp.MustCompile(`^\d+\.\d+\.\d+`).MatchString(Version()) {
		t.Errorf("Version %q is not semantic", Version())
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Fatal("Expected Author to have at least one entry")
	}

	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}

func TestConfigPath(t *testing.T) {
	got := ConfigPath("config.yaml")

	if filepath.Base(got) != "config.yaml" {
		t.Errorf("ConfigPath base = %q", filepath.Base(got))
	}
	if filepath.Dir(got) != ConfigDir() {
		t.Errorf("ConfigPath dir = %q, want %q", filepath.Dir(got), ConfigDir())
	}
	if filepath.Base(ConfigDir()) != Prefix() {
		t.Errorf("ConfigDir %q does not end in %q", ConfigDir(), Prefix())
	}
}
