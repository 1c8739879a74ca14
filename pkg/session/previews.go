package session

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// SchemaJSON returns the pretty-printed structural schema.
func (s *Session) SchemaJSON() (string, error) {
	out, err := s.schema.Pretty()
	if err != nil {
		return "", fmt.Errorf("session: schema preview: %w", err)
	}
	return out, nil
}

// LayoutJSON returns the pretty-printed presentation schema.
func (s *Session) LayoutJSON() (string, error) {
	out, err := s.layout.Pretty()
	if err != nil {
		return "", fmt.Errorf("session: layout preview: %w", err)
	}
	return out, nil
}

// SchemaYAML returns the structural schema as YAML.
func (s *Session) SchemaYAML() (string, error) {
	return toYAML(s.schema)
}

// LayoutYAML returns the presentation schema as YAML.
func (s *Session) LayoutYAML() (string, error) {
	return toYAML(s.layout)
}

// toYAML re-encodes the JSON form as YAML. Going through the JSON bytes and a
// yaml.Node keeps property order intact; marshalling the Go value directly
// would sort map keys.
func toYAML(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("session: yaml preview: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return "", fmt.Errorf("session: yaml preview: %w", err)
	}
	out, err := yaml.Marshal(&node)
	if err != nil {
		return "", fmt.Errorf("session: yaml preview: %w", err)
	}
	return string(out), nil
}
