// Package render defines the contract between the schema builders and the
// rendering collaborator. The core treats renderers as opaque sinks: they
// consume the schema pair plus a data value and widget set, and emit change
// events carrying updated data and validation error records.
package render

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/jsonschema"
	"github.com/goliatone/go-formbuilder/pkg/uischema"
)

// Form is the payload handed to a renderer after every recompute.
type Form struct {
	// Schema is the structural (data-shape) schema.
	Schema *jsonschema.Schema
	// Layout is the presentation schema mirroring Schema's shape.
	Layout *uischema.Node
	// Data is the current data value, empty for a fresh form.
	Data map[string]any
	// Widgets maps control scopes to resolved widget names.
	Widgets map[string]string
}

// Renderer converts a form payload into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form Form, options RenderOptions) ([]byte, error)
}
