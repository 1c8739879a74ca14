// Package openapi exports the structural schema as an OpenAPI 3 document.
// Each root form becomes a named component schema plus an upsert operation,
// so a built form collection can seed an API contract directly.
package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/jsonschema"
)

// Option customises document export.
type Option func(*config)

type config struct {
	title   string
	version string
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if title != "" {
			cfg.title = title
		}
	}
}

// WithVersion sets the document version.
func WithVersion(version string) Option {
	return func(cfg *config) {
		if version != "" {
			cfg.version = version
		}
	}
}

// Export builds an OpenAPI document from the structural schema. Every
// top-level property becomes a component schema and a PUT /forms/{key}
// operation accepting that schema. Property order is preserved in the
// path ordering; component maps follow kin-openapi's own serialisation.
func Export(schema *jsonschema.Schema, options ...Option) (*openapi3.T, error) {
	cfg := config{title: "Form Builder", version: "0.1.0"}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if schema == nil {
		return nil, fmt.Errorf("openapi: schema is required")
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   cfg.title,
			Version: cfg.version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{},
		},
	}

	if schema.Properties == nil {
		return doc, nil
	}
	for _, key := range schema.Properties.Keys() {
		fragment := schema.Properties.Get(key)
		if fragment == nil {
			continue
		}
		doc.Components.Schemas[key] = openapi3.NewSchemaRef("", convert(fragment))
		addUpsert(doc, key)
	}
	return doc, nil
}

// convert maps a structural fragment onto the kin-openapi schema model.
func convert(schema *jsonschema.Schema) *openapi3.Schema {
	if schema == nil {
		return openapi3.NewSchema()
	}

	out := &openapi3.Schema{
		Title:  schema.Title,
		Format: schema.Format,
	}
	if schema.Type != "" {
		out.Type = &openapi3.Types{schema.Type}
	}
	if len(schema.Required) > 0 {
		out.Required = append([]string(nil), schema.Required...)
	}
	if schema.Properties != nil && schema.Properties.Len() > 0 {
		out.Properties = openapi3.Schemas{}
		for _, key := range schema.Properties.Keys() {
			out.Properties[key] = openapi3.NewSchemaRef("", convert(schema.Properties.Get(key)))
		}
	}
	if schema.Items != nil {
		out.Items = openapi3.NewSchemaRef("", convert(schema.Items))
	}
	return out
}

func addUpsert(doc *openapi3.T, key string) {
	ref := openapi3.NewSchemaRef("#/components/schemas/"+key, nil)

	body := openapi3.NewRequestBody().
		WithRequired(true).
		WithContent(openapi3.NewContentWithJSONSchemaRef(ref))

	op := openapi3.NewOperation()
	op.OperationID = "upsert-" + key
	op.Summary = "Create or replace a " + key + " submission"
	op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	op.AddResponse(204, openapi3.NewResponse().WithDescription("stored"))

	doc.AddOperation("/forms/"+key, "PUT", op)
}
