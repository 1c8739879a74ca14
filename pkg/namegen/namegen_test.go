package namegen_test

import (
	"math/rand"
	"strings"
	"testing"
	"unicode"

	"github.com/goliatone/go-formbuilder/pkg/namegen"
)

func TestDisplayNameShape(t *testing.T) {
	gen := namegen.NewWithSource(rand.NewSource(1))
	name := gen.DisplayName("Form")

	parts := strings.Split(name, " ")
	if len(parts) != 3 {
		t.Fatalf("expected adjective+color+suffix, got %q", name)
	}
	if parts[2] != "Form" {
		t.Fatalf("expected type label suffix, got %q", parts[2])
	}
	for _, part := range parts[:2] {
		if !unicode.IsUpper(rune(part[0])) {
			t.Fatalf("expected capitalized word, got %q in %q", part, name)
		}
	}
}

func TestDisplayNameDeterministicPerSource(t *testing.T) {
	a := namegen.NewWithSource(rand.NewSource(42)).DisplayName("Field")
	b := namegen.NewWithSource(rand.NewSource(42)).DisplayName("Field")
	if a != b {
		t.Fatalf("same seed produced different names: %q vs %q", a, b)
	}
}

func TestDisplayNameEmptySuffix(t *testing.T) {
	gen := namegen.NewWithSource(rand.NewSource(7))
	name := gen.DisplayName("  ")
	if parts := strings.Split(name, " "); len(parts) != 2 {
		t.Fatalf("expected bare two-word name, got %q", name)
	}
}
