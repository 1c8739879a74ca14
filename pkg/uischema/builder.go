package uischema

import (
	"github.com/goliatone/go-formbuilder/pkg/formtree"
	"github.com/goliatone/go-formbuilder/pkg/jsonschema"
)

// FormLookup resolves the form that owns a schema property key. The tree
// satisfies it; tests can stub it.
type FormLookup interface {
	FindForm(key string) (*formtree.FormNode, bool)
}

// Build derives the layout tree for a structural schema. The root is always
// a vertical sequence over the top-level properties in order. The form
// lookup supplies the kind join: the same structural object renders as a
// labelled Group (flat controls) or a single detail control (one level of
// indirection) depending on the owning form's kind, and array details take
// their orientation from the owning form. Properties with no matching form
// fall back to a generic vertical detail wrapper rather than failing.
func Build(schema *jsonschema.Schema, forms FormLookup) *Node {
	root := &Node{Type: TypeVerticalLayout}
	if schema == nil || schema.Properties == nil {
		return root
	}
	for _, key := range schema.Properties.Keys() {
		if node := buildProperty(key, schema.Properties.Get(key), nil, forms); node != nil {
			root.Elements = append(root.Elements, node)
		}
	}
	return root
}

// buildProperty decides the container for one property. ctx is the form
// whose elements own the property, threaded downward so each nested decision
// can repeat the kind lookup against the right sibling scope.
func buildProperty(key string, prop *jsonschema.Schema, ctx *formtree.FormNode, forms FormLookup) *Node {
	if prop == nil {
		return &Node{Type: TypeControl, Scope: Scope(key)}
	}

	switch prop.Type {
	case "object":
		return buildObject(key, prop, ctx, forms)
	case "array":
		return buildArray(key, prop, ctx, forms)
	default:
		return &Node{Type: TypeControl, Label: prop.Title, Scope: Scope(key)}
	}
}

func buildObject(key string, prop *jsonschema.Schema, ctx *formtree.FormNode, forms FormLookup) *Node {
	form, ok := lookup(key, ctx, forms)
	if ok && form.Kind == formtree.FormGroup {
		// Visual group: label plus flat sibling controls, no indirection.
		group := &Node{Type: TypeGroup, Label: prop.Title}
		group.Elements = childNodes(prop, form, forms)
		return group
	}

	// Simple-kind forms and schema-only objects hide their structure behind
	// a single detail control.
	var detailCtx *formtree.FormNode
	if ok {
		detailCtx = form
	}
	detail := &Node{Type: TypeVerticalLayout, Elements: childNodes(prop, detailCtx, forms)}
	return &Node{
		Type:    TypeControl,
		Label:   prop.Title,
		Scope:   Scope(key),
		Options: &Options{Detail: detail},
	}
}

func buildArray(key string, prop *jsonschema.Schema, ctx *formtree.FormNode, forms FormLookup) *Node {
	form, ok := lookup(key, ctx, forms)

	layoutType := TypeVerticalLayout
	if ok && form.Orientation == formtree.OrientationHorizontal {
		layoutType = TypeHorizontalLayout
	}

	detail := &Node{Type: layoutType}
	if prop.Items != nil {
		var itemCtx *formtree.FormNode
		if ok {
			itemCtx = form
		}
		detail.Elements = childNodes(prop.Items, itemCtx, forms)
	}

	return &Node{
		Type:    TypeControl,
		Label:   prop.Title,
		Scope:   Scope(key),
		Options: &Options{Detail: detail},
	}
}

func childNodes(prop *jsonschema.Schema, ctx *formtree.FormNode, forms FormLookup) []*Node {
	if prop == nil || prop.Properties == nil {
		return nil
	}
	var nodes []*Node
	for _, key := range prop.Properties.Keys() {
		if node := buildProperty(key, prop.Properties.Get(key), ctx, forms); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// lookup resolves a property key to its owning form, preferring the current
// form's own embedded forms before falling back to a whole-tree scan.
func lookup(key string, ctx *formtree.FormNode, forms FormLookup) (*formtree.FormNode, bool) {
	if ctx != nil {
		for _, el := range ctx.Elements {
			if el != nil && el.EmbeddedForm != nil && el.EmbeddedForm.Key == key {
				return el.EmbeddedForm, true
			}
		}
	}
	if forms == nil {
		return nil, false
	}
	return forms.FindForm(key)
}
