// Package session owns the editing state of one form-builder instance: the
// form tree, the breadcrumb path and the derived schema pair. Every mutation
// runs to completion and triggers a full synchronous recompute of both
// schemas; there is no incremental rebuild and no background work. The only
// asynchronous boundary is the widget-set load, which gates rendering only.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/formtree"
	"github.com/goliatone/go-formbuilder/pkg/identity"
	"github.com/goliatone/go-formbuilder/pkg/jsonschema"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/uischema"
	"github.com/goliatone/go-formbuilder/pkg/widgets"
)

// ErrWidgetSetLoading is returned by Render while an external widget set is
// still loading. Schema previews never block on it.
var ErrWidgetSetLoading = errors.New("session: widget set is still loading")

// Option customises session construction.
type Option func(*Session)

// WithTree seeds the session with an existing tree.
func WithTree(tree *formtree.Tree) Option {
	return func(s *Session) {
		if tree != nil {
			s.tree = tree
		}
	}
}

// WithRegistry injects the renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(s *Session) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithRenderer selects the renderer used by Render.
func WithRenderer(name string) Option {
	return func(s *Session) {
		if name != "" {
			s.rendererName = name
		}
	}
}

// WithWidgets injects the widget registry.
func WithWidgets(registry *widgets.Registry) Option {
	return func(s *Session) {
		if registry != nil {
			s.widgets = registry
		}
	}
}

// Session is the single logical owner of one form tree. Not safe for
// concurrent use; the editing surface is single-threaded by design.
type Session struct {
	tree         *formtree.Tree
	path         *formtree.Path
	registry     *render.Registry
	rendererName string
	widgets      *widgets.Registry

	schema *jsonschema.Schema
	layout *uischema.Node

	data       map[string]any
	lastChange *render.ChangeEvent
	editing    string
}

// New constructs a session and performs the initial (empty) build.
func New(options ...Option) *Session {
	s := &Session{
		path: formtree.NewPath(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.tree == nil {
		s.tree = formtree.New()
	}
	if s.widgets == nil {
		s.widgets = widgets.NewRegistry()
	}
	s.rebuild()
	return s
}

// Tree exposes the underlying form tree.
func (s *Session) Tree() *formtree.Tree { return s.tree }

// Schema returns the current structural schema.
func (s *Session) Schema() *jsonschema.Schema { return s.schema }

// Layout returns the current presentation schema.
func (s *Session) Layout() *uischema.Node { return s.layout }

// Data returns the current data value reported by the collaborator.
func (s *Session) Data() map[string]any { return s.data }

// LastChange returns the most recent collaborator change event, or nil.
func (s *Session) LastChange() *render.ChangeEvent { return s.lastChange }

// Breadcrumbs returns the navigation path entries, root first.
func (s *Session) Breadcrumbs() []*formtree.FormNode { return s.path.Forms() }

// CurrentForms lists the forms at the current navigation position.
func (s *Session) CurrentForms() []*formtree.FormNode {
	return s.tree.CurrentForms(s.path)
}

// Editing returns the key of the node currently open for editing, or "".
func (s *Session) Editing() string { return s.editing }

// StartEditing marks a node as open for editing.
func (s *Session) StartEditing(key string) { s.editing = key }

// StopEditing clears the edit state.
func (s *Session) StopEditing() { s.editing = "" }

// AddForm creates a form at the current navigation position and selects it
// for editing.
func (s *Session) AddForm(kind formtree.FormKind) *formtree.FormNode {
	node := s.tree.AddForm(kind, s.path)
	if node != nil {
		s.editing = node.Key
	}
	s.rebuild()
	return node
}

// AddElement appends an element to the form; object elements descend
// navigation into the new group.
func (s *Session) AddElement(form *formtree.FormNode, valueType formtree.ValueType) *formtree.ElementNode {
	element := s.tree.AddElement(form, valueType, s.path)
	s.rebuild()
	return element
}

// UpdateForm applies an edited form copy, cascading the key change. A
// missed lookup leaves the session untouched, edit state included.
func (s *Session) UpdateForm(updated *formtree.FormNode) {
	if updated == nil {
		return
	}
	oldKey := updated.Key
	if !s.tree.UpdateForm(updated, s.path) {
		return
	}
	if s.editing == oldKey {
		s.editing = identity.DeriveKey(updated.Label)
	}
	s.rebuild()
}

// UpdateElement applies an edited element copy within form. A missed lookup
// leaves the session untouched, edit state included.
func (s *Session) UpdateElement(form *formtree.FormNode, updated *formtree.ElementNode) {
	if updated == nil {
		return
	}
	oldKey := updated.Key
	if !s.tree.UpdateElement(form, updated) {
		return
	}
	if s.editing == oldKey {
		s.editing = identity.DeriveKey(updated.Label)
	}
	s.rebuild()
}

// DeleteForm removes a form by key and clears any edit state pointing at it.
func (s *Session) DeleteForm(key string) {
	s.tree.DeleteForm(key, s.path)
	if s.editing == key {
		s.editing = ""
	}
	s.rebuild()
}

// DeleteElement removes an element by key and clears its edit state.
func (s *Session) DeleteElement(form *formtree.FormNode, key string) {
	s.tree.DeleteElement(form, key, s.path)
	if s.editing == key {
		s.editing = ""
	}
	s.rebuild()
}

// Enter descends navigation into a nested form.
func (s *Session) Enter(form *formtree.FormNode) {
	s.path.Enter(form)
	s.rebuild()
}

// Back pops one navigation level.
func (s *Session) Back() {
	s.path.Back()
	s.rebuild()
}

// JumpTo truncates navigation to the indexed breadcrumb entry.
func (s *Session) JumpTo(index int) {
	s.path.JumpTo(index)
	s.rebuild()
}

// ResetPath returns navigation to the root collection.
func (s *Session) ResetPath() {
	s.path.Reset()
	s.rebuild()
}

// ApplyChange records a collaborator change event: updated data plus any
// validation errors.
func (s *Session) ApplyChange(event render.ChangeEvent) {
	s.data = event.Data
	s.lastChange = &event
}

// Render draws the current schema pair through the configured renderer.
func (s *Session) Render(ctx context.Context) ([]byte, error) {
	if s.registry == nil || s.rendererName == "" {
		return nil, errors.New("session: no renderer configured")
	}
	if !s.widgets.Ready() {
		return nil, ErrWidgetSetLoading
	}
	renderer, err := s.registry.Get(s.rendererName)
	if err != nil {
		return nil, err
	}

	options := render.RenderOptions{}
	if s.lastChange != nil {
		options.Errors = render.ErrorsByPath(s.lastChange.Errors)
	}
	out, err := renderer.Render(ctx, render.Form{
		Schema:  s.schema,
		Layout:  s.layout,
		Data:    s.data,
		Widgets: s.widgets.Assign(s.schema),
	}, options)
	if err != nil {
		return nil, fmt.Errorf("session: render: %w", err)
	}
	return out, nil
}

// rebuild recomputes the schema pair from scratch. Mutations call it
// unconditionally; interactive trees are small enough that the simplicity
// beats incremental bookkeeping.
func (s *Session) rebuild() {
	s.schema = jsonschema.Build(s.tree.Roots())
	s.layout = uischema.Build(s.schema, s.tree)
}
