package gotemplate_test

import (
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
)

func TestRenderString(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := engine.RenderString("Hello {{ name }}", map[string]any{"name": "World"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello World" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderTemplateFromFS(t *testing.T) {
	files := fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{Data: []byte("Hi {{ who }}")},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := engine.RenderTemplate("greeting", map[string]any{"who": "there"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hi there" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGlobalContext(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := engine.GlobalContext(map[string]any{"brand": "acme"}); err != nil {
		t.Fatalf("global context: %v", err)
	}
	out, err := engine.RenderString("{{ brand }}", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "acme" {
		t.Fatalf("global value not visible: %q", out)
	}
}

func TestNewRequiresFS(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("missing fs should fail construction")
	}
}
