package jsonschema

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/formtree"
)

// Build derives the structural schema for the supplied forms. Only
// parentless forms seed generation; nested forms contribute through the
// object elements that embed them. A processed set keyed by form key
// guarantees each form contributes exactly once no matter how many times it
// is discovered.
func Build(forms []*formtree.FormNode) *Schema {
	root := &Schema{Type: "object", Properties: NewProperties()}
	b := &builder{processed: make(map[string]struct{})}

	var required []string
	for _, form := range forms {
		if form == nil || form.Parent() != nil {
			// Parented forms never appear at the top level; their fragments
			// are composed where the owning element recurses into them.
			continue
		}
		fragment := b.form(form)
		if fragment == nil {
			continue
		}
		root.Properties.Set(form.Key, fragment)
		if form.HasRequiredElement() {
			required = append(required, form.Key)
		}
	}
	root.Required = required
	return root
}

// BuildFormSchema derives the fragment for a single form, recursing through
// its object elements.
func BuildFormSchema(form *formtree.FormNode) *Schema {
	b := &builder{processed: make(map[string]struct{})}
	return b.form(form)
}

// InsertFragment places a fragment at the dotted key path inside root,
// creating intermediate object fragments as needed. Keys cannot contain the
// separator (the identity generator strips it), so a naive split is safe.
func InsertFragment(root *Schema, path string, fragment *Schema) {
	if root == nil || fragment == nil {
		return
	}
	keys := strings.Split(path, ".")
	if len(keys) == 0 || keys[0] == "" {
		return
	}
	current := root
	for _, key := range keys[:len(keys)-1] {
		if current.Properties == nil {
			current.Properties = NewProperties()
		}
		next := current.Properties.Get(key)
		if next == nil {
			next = &Schema{Type: "object", Properties: NewProperties()}
			current.Properties.Set(key, next)
		}
		current = next
	}
	if current.Properties == nil {
		current.Properties = NewProperties()
	}
	current.Properties.Set(keys[len(keys)-1], fragment)
}

type builder struct {
	processed map[string]struct{}
}

func (b *builder) form(form *formtree.FormNode) *Schema {
	if form == nil {
		return nil
	}
	if _, dup := b.processed[form.Key]; dup {
		return nil
	}
	b.processed[form.Key] = struct{}{}

	properties, required := b.elements(form.Elements)
	if form.Kind == formtree.FormArray {
		items := &Schema{Type: "object", Properties: properties}
		if len(required) > 0 {
			items.Required = required
		}
		return &Schema{Type: "array", Title: form.Label, Items: items}
	}

	fragment := &Schema{Type: "object", Title: form.Label, Properties: properties}
	if len(required) > 0 {
		fragment.Required = required
	}
	return fragment
}

func (b *builder) elements(elements []*formtree.ElementNode) (*Properties, []string) {
	properties := NewProperties()
	var required []string
	for _, el := range elements {
		if el == nil {
			continue
		}
		fragment := b.element(el)
		if fragment == nil {
			continue
		}
		properties.Set(el.Key, fragment)
		if el.Required {
			required = append(required, el.Key)
		}
	}
	return properties, required
}

func (b *builder) element(el *formtree.ElementNode) *Schema {
	switch el.ValueType {
	case formtree.ValueObject:
		return b.form(el.EmbeddedForm)
	case formtree.ValueArray:
		// Bare array fields stay flat string arrays; nested item typing is
		// reserved for array forms.
		return &Schema{Type: "array", Title: el.Label, Items: &Schema{Type: "string"}}
	case formtree.ValueDate:
		return &Schema{Type: "string", Format: "date", Title: el.Label}
	default:
		return &Schema{Type: string(el.ValueType), Title: el.Label}
	}
}
