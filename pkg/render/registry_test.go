package render_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "text/plain" }
func (s *stubRenderer) Render(_ context.Context, _ render.Form, _ render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	renderer := &stubRenderer{name: "stub"}

	if err := registry.Register(renderer); err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := registry.Get("stub")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != renderer {
		t.Fatalf("unexpected renderer returned")
	}
	if !registry.Has("stub") {
		t.Fatalf("Has should report registered renderer")
	}
}

func TestRegistryRejectsDuplicatesAndEmpty(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(&stubRenderer{name: "dup"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(&stubRenderer{name: "dup"}); err == nil {
		t.Fatalf("duplicate registration should fail")
	}
	if err := registry.Register(&stubRenderer{}); err == nil {
		t.Fatalf("empty name should fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("nil renderer should fail")
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := render.NewRegistry()
	for _, name := range []string{"zeta", "alpha"} {
		registry.MustRegister(&stubRenderer{name: name})
	}
	names := registry.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Fatalf("expected sorted names, got %v", names)
	}
}

func TestRegistryGetMissing(t *testing.T) {
	registry := render.NewRegistry()
	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("missing renderer should error")
	}
}
