package jsonschema_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/jsonschema"
)

func TestPropertiesKeepInsertionOrder(t *testing.T) {
	props := jsonschema.NewProperties()
	props.Set("zulu", &jsonschema.Schema{Type: "string"})
	props.Set("alpha", &jsonschema.Schema{Type: "number"})
	props.Set("mike", &jsonschema.Schema{Type: "boolean"})

	want := []string{"zulu", "alpha", "mike"}
	got := props.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys: want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys: want %v, got %v", want, got)
		}
	}

	// Overwriting keeps the original slot.
	props.Set("zulu", &jsonschema.Schema{Type: "string", Title: "Z"})
	if props.Keys()[0] != "zulu" || props.Len() != 3 {
		t.Fatalf("overwrite must not reorder or grow")
	}
}

func TestPropertiesMarshalOrder(t *testing.T) {
	props := jsonschema.NewProperties()
	props.Set("second-field", &jsonschema.Schema{Type: "string"})
	props.Set("first-field", &jsonschema.Schema{Type: "number"})

	payload, err := props.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(payload)
	if strings.Index(text, "second-field") > strings.Index(text, "first-field") {
		t.Fatalf("marshalled order diverges from insertion order: %s", text)
	}
}

func TestPropertiesDelete(t *testing.T) {
	props := jsonschema.NewProperties()
	props.Set("a", &jsonschema.Schema{Type: "string"})
	props.Set("b", &jsonschema.Schema{Type: "string"})

	props.Delete("a")
	if props.Len() != 1 || props.Get("a") != nil {
		t.Fatalf("delete did not remove the property")
	}
	props.Delete("missing") // no-op
	if props.Len() != 1 {
		t.Fatalf("deleting a missing key must be a no-op")
	}
}

func TestSchemaPretty(t *testing.T) {
	props := jsonschema.NewProperties()
	props.Set("name-key", &jsonschema.Schema{Type: "string", Title: "Name"})
	schema := &jsonschema.Schema{Type: "object", Title: "Person", Properties: props}

	text, err := schema.Pretty()
	if err != nil {
		t.Fatalf("pretty: %v", err)
	}
	for _, want := range []string{`"type": "object"`, `"title": "Person"`, `"name-key"`} {
		if !strings.Contains(text, want) {
			t.Fatalf("pretty output missing %q:\n%s", want, text)
		}
	}
}
