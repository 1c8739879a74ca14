// Package formbuilder assembles the builder pipeline: a mutable form tree
// that derives a structural JSON Schema plus a presentation layout after
// every change, with pluggable renderers and widget sets.
//
// Most callers only need a session:
//
//	s := formbuilder.New()
//	form := s.AddForm(formtree.FormSimple)
//	s.AddElement(form, formtree.ValueString)
//	schema, _ := s.SchemaJSON()
//
// The sub-packages compose the same way the session wires them: formtree
// owns the mutable structure, jsonschema and uischema derive the two output
// schemas, widgets resolves controls for fragments, and render dispatches to
// registered renderers such as renderers/html.
package formbuilder

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
	"github.com/goliatone/go-formbuilder/pkg/session"
)

// New builds a session with the default wiring: the embedded HTML renderer
// registered under "html" and the built-in widget set.
func New(options ...session.Option) *session.Session {
	registry, err := DefaultRegistry()
	if err != nil {
		// The embedded template bundle always parses; reaching this means a
		// broken build, so fail loudly.
		panic(err)
	}
	base := []session.Option{
		session.WithRegistry(registry),
		session.WithRenderer("html"),
	}
	return session.New(append(base, options...)...)
}

// DefaultRegistry returns a renderer registry with the built-in HTML
// renderer registered.
func DefaultRegistry(options ...html.Option) (*render.Registry, error) {
	renderer, err := html.New(options...)
	if err != nil {
		return nil, fmt.Errorf("formbuilder: configure html renderer: %w", err)
	}
	registry := render.NewRegistry()
	if err := registry.Register(renderer); err != nil {
		return nil, fmt.Errorf("formbuilder: register html renderer: %w", err)
	}
	return registry, nil
}
