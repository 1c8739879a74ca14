// Package formtree holds the in-memory ownership structure the schema
// builders walk: forms containing ordered elements, where an object-typed
// element exclusively owns the nested form it expands into. The parent link
// is a weak back-reference kept for breadcrumb display only; builders walk
// strictly downward.
package formtree

import "github.com/goliatone/go-formbuilder/pkg/identity"

// FormKind selects the structural shape and presentation container of a form.
type FormKind string

const (
	FormSimple FormKind = "simple"
	FormArray  FormKind = "array"
	FormGroup  FormKind = "group"
)

// Orientation controls the layout direction of expanded array-item details.
// Only meaningful on FormArray forms.
type Orientation string

const (
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
)

// ValueType enumerates the field types an element can carry.
type ValueType string

const (
	ValueString  ValueType = "string"
	ValueNumber  ValueType = "number"
	ValueBoolean ValueType = "boolean"
	ValueDate    ValueType = "date"
	ValueObject  ValueType = "object"
	ValueArray   ValueType = "array"
)

// FormNode is a container of typed fields. Key is always derived from Label;
// use the Tree mutation methods rather than assigning fields directly so the
// derivation and reference cascade stay intact.
type FormNode struct {
	Kind        FormKind
	Label       string
	Key         string
	Elements    []*ElementNode
	Orientation Orientation

	parent *FormNode
}

// Parent returns the enclosing form, or nil for roots. Display use only.
func (f *FormNode) Parent() *FormNode {
	if f == nil {
		return nil
	}
	return f.parent
}

// HasRequiredElement reports whether any direct element is marked required.
func (f *FormNode) HasRequiredElement() bool {
	if f == nil {
		return false
	}
	for _, el := range f.Elements {
		if el != nil && el.Required {
			return true
		}
	}
	return false
}

// EmbeddedForms returns the forms owned by this form's object elements, in
// element order.
func (f *FormNode) EmbeddedForms() []*FormNode {
	if f == nil {
		return nil
	}
	var forms []*FormNode
	for _, el := range f.Elements {
		if el != nil && el.EmbeddedForm != nil {
			forms = append(forms, el.EmbeddedForm)
		}
	}
	return forms
}

// ElementNode is a field or an embedded-form placeholder inside a form.
// EmbeddedForm is set exactly when ValueType is ValueObject and is the single
// nesting mechanism: the element is a pointer to its child form, not an
// inline field.
type ElementNode struct {
	ValueType    ValueType
	Label        string
	Key          string
	Required     bool
	EmbeddedForm *FormNode
}

// NewFormNode builds a form with its key derived from the label. Array forms
// default to vertical orientation.
func NewFormNode(kind FormKind, label string) *FormNode {
	node := &FormNode{
		Kind:  kind,
		Label: label,
		Key:   identity.DeriveKey(label),
	}
	if kind == FormArray {
		node.Orientation = OrientationVertical
	}
	return node
}

// NewElementNode builds a plain element with its key derived from the label.
func NewElementNode(valueType ValueType, label string) *ElementNode {
	return &ElementNode{
		ValueType: valueType,
		Label:     label,
		Key:       identity.DeriveKey(label),
	}
}
