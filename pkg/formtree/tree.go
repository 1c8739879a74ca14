package formtree

import (
	"github.com/goliatone/go-formbuilder/pkg/identity"
	"github.com/goliatone/go-formbuilder/pkg/namegen"
)

// Option customises tree construction.
type Option func(*Tree)

// WithNameGenerator overrides the generator used for default labels.
func WithNameGenerator(gen *namegen.Generator) Option {
	return func(t *Tree) {
		if gen != nil {
			t.names = gen
		}
	}
}

// Tree owns the root form collection and implements the mutation surface the
// editing session drives. All lookups are linear scans by key within the
// relevant scope; a miss is a silent no-op since it indicates a stale UI
// reference rather than a data-integrity fault.
type Tree struct {
	roots []*FormNode
	names *namegen.Generator
}

// New constructs an empty tree.
func New(options ...Option) *Tree {
	t := &Tree{}
	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}
	if t.names == nil {
		t.names = namegen.New()
	}
	return t
}

// Roots returns the parentless forms in insertion order. Only these seed
// schema generation.
func (t *Tree) Roots() []*FormNode {
	if t == nil {
		return nil
	}
	return t.roots
}

// CurrentForms returns the forms visible at the path's tail: the roots when
// the path is empty, otherwise the embedded form of every object element on
// the tail form, in element order.
func (t *Tree) CurrentForms(path *Path) []*FormNode {
	if t == nil {
		return nil
	}
	tail := path.Tail()
	if tail == nil {
		return t.roots
	}
	return tail.EmbeddedForms()
}

// AddForm creates a form with a generated label, appends it at the path's
// tail (or to the roots when the path is empty) and returns it. Nested forms
// are attached through a new object element on the tail form.
func (t *Tree) AddForm(kind FormKind, path *Path) *FormNode {
	if t == nil {
		return nil
	}
	label := t.names.DisplayName(typeLabelFor(kind))
	node := NewFormNode(kind, label)

	tail := path.Tail()
	if tail == nil {
		t.roots = append(t.roots, node)
		return node
	}
	t.attach(tail, node)
	return node
}

// AddElement appends a field to the form. Object-typed elements create and
// attach a Group form instead, and navigation immediately descends into it.
func (t *Tree) AddElement(form *FormNode, valueType ValueType, path *Path) *ElementNode {
	if t == nil || form == nil {
		return nil
	}
	if valueType == ValueObject {
		node := NewFormNode(FormGroup, t.names.DisplayName("Group"))
		element := t.attach(form, node)
		// The owning form is usually a child of the current tail, not the
		// tail itself; enter it first so the breadcrumb stays a true descent.
		if path.Tail() != form {
			path.Enter(form)
		}
		path.Enter(node)
		return element
	}
	element := NewElementNode(valueType, t.names.DisplayName("Field"))
	form.Elements = append(form.Elements, element)
	return element
}

// UpdateForm applies an edited copy onto the stored form matched by the
// copy's (pre-edit) key, resolved against the path's sibling scope before
// anything else since keys repeat across sibling lists. Because label edits
// change the key, the update re-derives it and then rewrites every element
// embedding this form and any breadcrumb entry still carrying the old
// identity; a stale key anywhere would desynchronise the structural and
// presentation schemas. Reports whether a form matched.
func (t *Tree) UpdateForm(updated *FormNode, path *Path) bool {
	if t == nil || updated == nil {
		return false
	}
	node, ok := t.lookup(updated.Key, path)
	if !ok {
		return false
	}

	oldKey := node.Key
	node.Label = updated.Label
	node.Key = identity.DeriveKey(updated.Label)
	node.Kind = updated.Kind
	if node.Kind == FormArray && updated.Orientation != "" {
		node.Orientation = updated.Orientation
	}

	t.walk(func(owner *FormNode) {
		for _, el := range owner.Elements {
			if el != nil && el.EmbeddedForm == node {
				el.Label = node.Label
				el.Key = node.Key
			}
		}
	})
	path.rewrite(oldKey, node)
	return true
}

// UpdateElement applies an edited copy onto the element matched by key within
// the form's children. Renaming cascades into the embedded form, if any, so
// the element/form pair keeps a single identity. Reports whether an element
// matched.
func (t *Tree) UpdateElement(form *FormNode, updated *ElementNode) bool {
	if t == nil || form == nil || updated == nil {
		return false
	}
	element := findElement(form, updated.Key)
	if element == nil {
		return false
	}

	element.Label = updated.Label
	element.Key = identity.DeriveKey(updated.Label)
	element.Required = updated.Required
	if element.EmbeddedForm == nil && updated.ValueType != ValueObject && updated.ValueType != "" {
		element.ValueType = updated.ValueType
	}
	if element.EmbeddedForm != nil {
		element.EmbeddedForm.Label = element.Label
		element.EmbeddedForm.Key = element.Key
	}
	return true
}

// DeleteForm removes the form with the given key, resolved against the
// path's sibling scope: the roots when the path is empty, otherwise the
// tail's children, then the tail itself (detached from one level up). Keys
// repeat across sibling lists, so a stale reference outside the scope falls
// back to a whole-tree scan that detaches the first embedding found, never
// more than one. Breadcrumb entries at or below the removed form are
// dropped.
func (t *Tree) DeleteForm(key string, path *Path) {
	if t == nil || key == "" {
		return
	}
	tail := path.Tail()

	if tail == nil {
		if t.removeRoot(key) {
			path.dropFrom(key)
			return
		}
	} else {
		if detachEmbedded(tail, key) {
			path.dropFrom(key)
			return
		}
		if tail.Key == key {
			forms := path.Forms()
			if len(forms) > 1 && detachEmbedded(forms[len(forms)-2], key) {
				path.dropFrom(key)
				return
			}
			if t.removeRoot(key) {
				path.dropFrom(key)
				return
			}
		}
	}

	if t.removeRoot(key) {
		path.dropFrom(key)
		return
	}
	detached := false
	t.walk(func(owner *FormNode) {
		if !detached && detachEmbedded(owner, key) {
			detached = true
		}
	})
	if detached {
		path.dropFrom(key)
	}
}

// DeleteElement removes the element matched by key from the form. Deleting
// an object element also drops its embedded form from the breadcrumb.
func (t *Tree) DeleteElement(form *FormNode, key string, path *Path) {
	if t == nil || form == nil || key == "" {
		return
	}
	for i, el := range form.Elements {
		if el == nil || el.Key != key {
			continue
		}
		if el.EmbeddedForm != nil {
			path.dropFrom(el.EmbeddedForm.Key)
		}
		form.Elements = append(form.Elements[:i], form.Elements[i+1:]...)
		return
	}
}

// lookup resolves key against the path's sibling scope first: the forms
// listed at the current position, then the breadcrumb tail itself. Only a
// miss falls back to the whole-tree scan, so same-keyed forms under other
// parents are never picked over the one in scope.
func (t *Tree) lookup(key string, path *Path) (*FormNode, bool) {
	for _, form := range t.CurrentForms(path) {
		if form != nil && form.Key == key {
			return form, true
		}
	}
	if tail := path.Tail(); tail != nil && tail.Key == key {
		return tail, true
	}
	return t.FindForm(key)
}

// removeRoot drops the root form matched by key, reporting whether one was.
func (t *Tree) removeRoot(key string) bool {
	for i, root := range t.roots {
		if root != nil && root.Key == key {
			t.roots = append(t.roots[:i], t.roots[i+1:]...)
			return true
		}
	}
	return false
}

// detachEmbedded removes the object element on owner embedding the form with
// key, reporting whether one was found.
func detachEmbedded(owner *FormNode, key string) bool {
	if owner == nil {
		return false
	}
	for i, el := range owner.Elements {
		if el != nil && el.EmbeddedForm != nil && el.EmbeddedForm.Key == key {
			owner.Elements = append(owner.Elements[:i], owner.Elements[i+1:]...)
			return true
		}
	}
	return false
}

// FindForm scans the whole tree downward for a form by key, first match
// wins. Prefer path-scoped resolution where a Path is available.
func (t *Tree) FindForm(key string) (*FormNode, bool) {
	if t == nil || key == "" {
		return nil, false
	}
	var found *FormNode
	t.walk(func(form *FormNode) {
		if found == nil && form.Key == key {
			found = form
		}
	})
	if found == nil {
		return nil, false
	}
	return found, true
}

// attach wires a nested form under owner through a fresh object element and
// sets the weak parent back-reference.
func (t *Tree) attach(owner, node *FormNode) *ElementNode {
	node.parent = owner
	element := &ElementNode{
		ValueType:    ValueObject,
		Label:        node.Label,
		Key:          node.Key,
		EmbeddedForm: node,
	}
	owner.Elements = append(owner.Elements, element)
	return element
}

// walk visits every form exactly once, ownership edges only. The seen guard
// keeps a malformed graph from recursing forever.
func (t *Tree) walk(visit func(*FormNode)) {
	seen := make(map[*FormNode]struct{})
	var descend func(*FormNode)
	descend = func(form *FormNode) {
		if form == nil {
			return
		}
		if _, dup := seen[form]; dup {
			return
		}
		seen[form] = struct{}{}
		visit(form)
		for _, el := range form.Elements {
			if el != nil && el.EmbeddedForm != nil {
				descend(el.EmbeddedForm)
			}
		}
	}
	for _, root := range t.roots {
		descend(root)
	}
}

func findElement(form *FormNode, key string) *ElementNode {
	for _, el := range form.Elements {
		if el != nil && el.Key == key {
			return el
		}
	}
	return nil
}

func typeLabelFor(kind FormKind) string {
	switch kind {
	case FormGroup:
		return "Group"
	default:
		return "Form"
	}
}
