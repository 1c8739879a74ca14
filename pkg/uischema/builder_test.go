package uischema_test

import (
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/formtree"
	"github.com/goliatone/go-formbuilder/pkg/jsonschema"
	"github.com/goliatone/go-formbuilder/pkg/uischema"
)

type lookupMap map[string]*formtree.FormNode

func (m lookupMap) FindForm(key string) (*formtree.FormNode, bool) {
	form, ok := m[key]
	return form, ok
}

func buildTree(t *testing.T, kind formtree.FormKind) (*formtree.Tree, *formtree.FormNode) {
	t.Helper()
	tree := formtree.New()
	form := tree.AddForm(kind, formtree.NewPath())
	return tree, form
}

func TestBuildRootIsVerticalSequence(t *testing.T) {
	tree := formtree.New()
	path := formtree.NewPath()
	tree.AddForm(formtree.FormSimple, path)
	tree.AddForm(formtree.FormSimple, path)

	schema := jsonschema.Build(tree.Roots())
	layout := uischema.Build(schema, tree)

	if layout.Type != uischema.TypeVerticalLayout {
		t.Fatalf("root layout must be vertical, got %s", layout.Type)
	}
	if len(layout.Elements) != 2 {
		t.Fatalf("expected one decision per root form, got %d", len(layout.Elements))
	}
}

func TestSimpleFormYieldsDetailControl(t *testing.T) {
	tree, form := buildTree(t, formtree.FormSimple)
	tree.AddElement(form, formtree.ValueString, formtree.NewPath())

	schema := jsonschema.Build(tree.Roots())
	layout := uischema.Build(schema, tree)

	control := layout.Elements[0]
	if control.Type != uischema.TypeControl {
		t.Fatalf("simple form must render as a detail control, got %s", control.Type)
	}
	if control.Scope != uischema.Scope(form.Key) {
		t.Fatalf("scope must be compacted to the leaf key, got %q", control.Scope)
	}
	if control.Options == nil || control.Options.Detail == nil {
		t.Fatalf("detail layout missing")
	}
	detail := control.Options.Detail
	if detail.Type != uischema.TypeVerticalLayout || len(detail.Elements) != 1 {
		t.Fatalf("detail must be a vertical layout of plain controls: %+v", detail)
	}
	if detail.Elements[0].Type != uischema.TypeControl {
		t.Fatalf("detail child must be a control")
	}
}

func TestGroupFormYieldsLabelledGroup(t *testing.T) {
	tree := formtree.New()
	path := formtree.NewPath()
	root := tree.AddForm(formtree.FormSimple, path)
	path.Enter(root)
	group := tree.AddForm(formtree.FormGroup, path)
	path.Enter(group)
	tree.AddElement(group, formtree.ValueString, path)
	tree.AddElement(group, formtree.ValueBoolean, path)

	schema := jsonschema.Build(tree.Roots())
	layout := uischema.Build(schema, tree)

	rootControl := layout.Elements[0]
	groupNode := rootControl.Options.Detail.Elements[0]
	if groupNode.Type != uischema.TypeGroup {
		t.Fatalf("group form must render as a Group node, got %s", groupNode.Type)
	}
	if groupNode.Label != group.Label {
		t.Fatalf("group label mismatch: %q vs %q", groupNode.Label, group.Label)
	}
	if len(groupNode.Elements) != 2 {
		t.Fatalf("group must expose flat sibling controls, got %d", len(groupNode.Elements))
	}
	for _, el := range groupNode.Elements {
		if el.Type != uischema.TypeControl {
			t.Fatalf("group children must be plain controls, got %s", el.Type)
		}
	}
	if groupNode.Options != nil {
		t.Fatalf("group must expose children directly, not behind a detail")
	}
}

func TestContainersNeverSwapForSameShape(t *testing.T) {
	// Identical structural shape, different kinds: the presentation must
	// diverge on the kind alone.
	simple := formtree.NewFormNode(formtree.FormSimple, "Same Shape")
	simple.Elements = append(simple.Elements,
		formtree.NewElementNode(formtree.ValueString, "Field"))
	group := formtree.NewFormNode(formtree.FormGroup, "Same Shape")
	group.Elements = append(group.Elements,
		formtree.NewElementNode(formtree.ValueString, "Field"))

	schema := jsonschema.BuildFormSchema(simple)
	prop := &jsonschema.Schema{Type: "object", Properties: jsonschema.NewProperties()}
	prop.Properties.Set(simple.Key, schema)

	asSimple := uischema.Build(prop, lookupMap{simple.Key: simple})
	asGroup := uischema.Build(prop, lookupMap{group.Key: group})

	if asSimple.Elements[0].Type != uischema.TypeControl {
		t.Fatalf("simple kind must yield a detail control")
	}
	if asGroup.Elements[0].Type != uischema.TypeGroup {
		t.Fatalf("group kind must yield a Group node")
	}
}

func TestSchemaOnlyObjectFallsBack(t *testing.T) {
	props := jsonschema.NewProperties()
	inner := jsonschema.NewProperties()
	inner.Set("field-key", &jsonschema.Schema{Type: "string", Title: "Field"})
	props.Set("orphan-key", &jsonschema.Schema{Type: "object", Title: "Orphan", Properties: inner})
	schema := &jsonschema.Schema{Type: "object", Properties: props}

	layout := uischema.Build(schema, lookupMap{})

	control := layout.Elements[0]
	if control.Type != uischema.TypeControl || control.Options == nil || control.Options.Detail == nil {
		t.Fatalf("schema-only objects must fall back to a generic detail wrapper")
	}
	if control.Options.Detail.Type != uischema.TypeVerticalLayout {
		t.Fatalf("fallback detail must be vertical")
	}
}

func TestArrayOrientation(t *testing.T) {
	tree, form := buildTree(t, formtree.FormArray)
	tree.AddElement(form, formtree.ValueString, formtree.NewPath())

	schema := jsonschema.Build(tree.Roots())
	layout := uischema.Build(schema, tree)

	control := layout.Elements[0]
	if control.Options == nil || control.Options.Detail == nil {
		t.Fatalf("array control must carry a detail layout")
	}
	if control.Options.Detail.Type != uischema.TypeVerticalLayout {
		t.Fatalf("default orientation must be vertical, got %s", control.Options.Detail.Type)
	}
	if len(control.Options.Detail.Elements) != 1 {
		t.Fatalf("detail must contain one entry per item property")
	}

	// Flipping the orientation on the owning form flips the detail layout.
	edited := &formtree.FormNode{Kind: formtree.FormArray, Label: form.Label, Key: form.Key,
		Orientation: formtree.OrientationHorizontal}
	tree.UpdateForm(edited, formtree.NewPath())

	schema = jsonschema.Build(tree.Roots())
	layout = uischema.Build(schema, tree)
	if layout.Elements[0].Options.Detail.Type != uischema.TypeHorizontalLayout {
		t.Fatalf("horizontal orientation not honoured")
	}
}

func TestScalarControlScopeIsCompacted(t *testing.T) {
	tree, form := buildTree(t, formtree.FormSimple)
	el := tree.AddElement(form, formtree.ValueString, formtree.NewPath())

	schema := jsonschema.Build(tree.Roots())
	layout := uischema.Build(schema, tree)

	leaf := layout.Elements[0].Options.Detail.Elements[0]
	if leaf.Scope != uischema.Scope(el.Key) {
		t.Fatalf("deep paths must collapse to the leaf key: %q", leaf.Scope)
	}
}

func TestSiblingScopedLookupWinsOverGlobal(t *testing.T) {
	// Two forms share a key (slug collision tolerated by scoping); the
	// context form's own embedded form must win the join.
	owner := formtree.NewFormNode(formtree.FormSimple, "Owner")
	local := formtree.NewFormNode(formtree.FormGroup, "Shared")
	el := formtree.NewElementNode(formtree.ValueObject, "Shared")
	el.EmbeddedForm = local
	owner.Elements = append(owner.Elements, el)

	global := formtree.NewFormNode(formtree.FormSimple, "Shared")

	props := jsonschema.NewProperties()
	props.Set(owner.Key, jsonschema.BuildFormSchema(owner))
	schema := &jsonschema.Schema{Type: "object", Properties: props}

	layout := uischema.Build(schema, lookupMap{
		owner.Key:  owner,
		global.Key: global, // same key as local; global says Simple
	})

	nested := layout.Elements[0].Options.Detail.Elements[0]
	if nested.Type != uischema.TypeGroup {
		t.Fatalf("sibling-scoped lookup should resolve the Group form, got %s", nested.Type)
	}
}
