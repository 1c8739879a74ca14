// Package uischema derives the presentation/layout schema from an
// already-built structural schema. The layout mirrors the structural shape
// one property at a time, but the container chosen for each nested property
// depends on the originating form's kind, not on the structural type alone.
package uischema

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// NodeType enumerates the layout node containers.
type NodeType string

const (
	TypeControl          NodeType = "Control"
	TypeGroup            NodeType = "Group"
	TypeVerticalLayout   NodeType = "VerticalLayout"
	TypeHorizontalLayout NodeType = "HorizontalLayout"
)

// Node is one entry in the layout tree. Controls address their property
// through Scope, a compacted pointer referencing only the immediate property
// ("#/properties/<leaf-key>"), never the full ancestor chain.
type Node struct {
	Type     NodeType `json:"type"`
	Label    string   `json:"label,omitempty"`
	Scope    string   `json:"scope,omitempty"`
	Elements []*Node  `json:"elements,omitempty"`
	Options  *Options `json:"options,omitempty"`
}

// Options carries widget-facing directives attached to a control.
type Options struct {
	// Detail holds the expanded layout of a nested-detail control: the inner
	// structure revealed when the control is opened.
	Detail *Node `json:"detail,omitempty"`
}

// Pretty returns the layout as indented JSON for preview panes.
func (n *Node) Pretty() (string, error) {
	payload, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return "", fmt.Errorf("uischema: marshal layout: %w", err)
	}
	return string(payload), nil
}

// Scope builds the compacted pointer for a property key.
func Scope(key string) string {
	return "#/properties/" + key
}
