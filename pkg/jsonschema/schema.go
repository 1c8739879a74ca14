// Package jsonschema derives the structural (data-shape) schema from a form
// tree. Fragments are plain value types; property order is significant and
// survives marshalling, which is why Properties is an ordered map rather than
// a Go map.
package jsonschema

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Schema is a structural schema fragment. Title always mirrors the
// originating node's label.
type Schema struct {
	Type       string      `json:"type,omitempty"`
	Title      string      `json:"title,omitempty"`
	Format     string      `json:"format,omitempty"`
	Properties *Properties `json:"properties,omitempty"`
	Items      *Schema     `json:"items,omitempty"`
	Required   []string    `json:"required,omitempty"`
}

// Property returns the named property fragment, or nil.
func (s *Schema) Property(key string) *Schema {
	if s == nil || s.Properties == nil {
		return nil
	}
	return s.Properties.Get(key)
}

// Pretty returns the schema as indented JSON, the serialized form handed to
// preview panes and the clipboard.
func (s *Schema) Pretty() (string, error) {
	payload, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("jsonschema: marshal schema: %w", err)
	}
	return string(payload), nil
}

// Properties is an insertion-ordered map of property name to fragment.
type Properties struct {
	keys   []string
	values map[string]*Schema
}

// NewProperties returns an empty ordered property map.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]*Schema)}
}

// Set stores a fragment under key, keeping first-insertion order on
// overwrite.
func (p *Properties) Set(key string, schema *Schema) {
	if p == nil || key == "" {
		return
	}
	if p.values == nil {
		p.values = make(map[string]*Schema)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = schema
}

// Get returns the fragment stored under key, or nil.
func (p *Properties) Get(key string) *Schema {
	if p == nil || p.values == nil {
		return nil
	}
	return p.values[key]
}

// Delete removes the fragment stored under key.
func (p *Properties) Delete(key string) {
	if p == nil || p.values == nil {
		return
	}
	if _, exists := p.values[key]; !exists {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the property names in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// MarshalJSON writes the properties as an object in insertion order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	if p == nil || len(p.keys) == 0 {
		return []byte("{}"), nil
	}
	out := []byte{'{'}
	for i, key := range p.keys {
		if i > 0 {
			out = append(out, ',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("jsonschema: marshal property name %q: %w", key, err)
		}
		value, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, fmt.Errorf("jsonschema: marshal property %q: %w", key, err)
		}
		out = append(out, name...)
		out = append(out, ':')
		out = append(out, value...)
	}
	return append(out, '}'), nil
}
