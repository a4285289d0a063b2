//go:build pprof

package profile

import "testing"

func TestModes_HaveOptions(t *testing.T) {
	for _, m := range Modes() {
		if _, ok := option(m); !ok {
			t.Errorf("mode %q has no profile option", m)
		}
	}

	if _, ok := option("bogus"); ok {
		t.Error("option(bogus) succeeded")
	}
}

func TestModes_ReturnsCopy(t *testing.T) {
	Modes()[0] = "changed"

	if Modes()[0] == "changed" {
		t.Error("Modes() shares its backing array")
	}
}
