// Package widgets resolves widget names for schema fragments. The registry
// ships usable built-ins and can be extended by an externally loaded widget
// set; loading is fire-and-forget and gates only rendering, never the schema
// builders.
package widgets

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/jsonschema"
	"github.com/goliatone/go-formbuilder/pkg/uischema"
)

// Built-in widget identifiers.
const (
	WidgetInput    = "input"
	WidgetToggle   = "toggle"
	WidgetDate     = "date-picker"
	WidgetChips    = "chips"
	WidgetSubform  = "subform"
	WidgetRepeater = "repeater"
)

// Matcher decides whether a widget should handle the fragment.
type Matcher func(schema *jsonschema.Schema) bool

// Definition describes one widget in an externally loaded set.
type Definition struct {
	Name     string
	Priority int
	Match    Matcher
}

// Loader fetches an external widget set.
type Loader func(ctx context.Context) ([]Definition, error)

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fragments. Higher priority wins; ties fall
// back to registration order.
type Registry struct {
	mu      sync.RWMutex
	rules   []rule
	ready   bool
	loadErr error
}

// NewRegistry constructs a registry with the built-in matchers registered
// and marked ready; an external load can extend it later.
func NewRegistry() *Registry {
	r := &Registry{ready: true}
	r.registerBuiltins()
	return r
}

// Register adds a matcher under name with the given priority.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// LoadWidgetSet fetches definitions in the background and registers them on
// completion. The registry is not ready until the load finishes; a failed
// load leaves the built-ins in place and records the error.
func (r *Registry) LoadWidgetSet(ctx context.Context, loader Loader) {
	if r == nil || loader == nil {
		return
	}
	r.mu.Lock()
	r.ready = false
	r.mu.Unlock()

	go func() {
		defs, err := loader(ctx)

		r.mu.Lock()
		defer r.mu.Unlock()
		r.loadErr = err
		for _, def := range defs {
			if def.Match == nil || strings.TrimSpace(def.Name) == "" {
				continue
			}
			r.rules = append(r.rules, rule{
				name:     strings.TrimSpace(def.Name),
				priority: def.Priority,
				match:    def.Match,
				order:    len(r.rules),
			})
		}
		r.ready = true
	}()
}

// Ready reports whether the widget set is available for rendering.
func (r *Registry) Ready() bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ready
}

// LoadErr returns the error recorded by the last widget-set load, if any.
func (r *Registry) LoadErr() error {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadErr
}

// Resolve returns the widget name for a fragment, falling back to the plain
// input widget when nothing matches.
func (r *Registry) Resolve(schema *jsonschema.Schema) string {
	if r == nil || schema == nil {
		return WidgetInput
	}

	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(schema) {
			return entry.name
		}
	}
	return WidgetInput
}

// Assign walks a structural schema and returns the scope→widget map handed
// to renderers as the form's widget set.
func (r *Registry) Assign(schema *jsonschema.Schema) map[string]string {
	if r == nil || schema == nil {
		return nil
	}
	out := make(map[string]string)
	r.assign(schema, out)
	if len(out) == 0 {
		return nil
	}
	return out
}

func (r *Registry) assign(schema *jsonschema.Schema, out map[string]string) {
	if schema == nil || schema.Properties == nil {
		return
	}
	for _, key := range schema.Properties.Keys() {
		prop := schema.Properties.Get(key)
		if prop == nil {
			continue
		}
		out[uischema.Scope(key)] = r.Resolve(prop)
		r.assign(prop, out)
		if prop.Items != nil {
			r.assign(prop.Items, out)
		}
	}
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetToggle, 90, func(schema *jsonschema.Schema) bool {
		return schema.Type == "boolean"
	})

	r.Register(WidgetDate, 80, func(schema *jsonschema.Schema) bool {
		return schema.Type == "string" && schema.Format == "date"
	})

	r.Register(WidgetChips, 70, func(schema *jsonschema.Schema) bool {
		return schema.Type == "array" && schema.Items != nil && schema.Items.Type == "string"
	})

	r.Register(WidgetRepeater, 60, func(schema *jsonschema.Schema) bool {
		return schema.Type == "array" && schema.Items != nil && schema.Items.Type == "object"
	})

	r.Register(WidgetSubform, 50, func(schema *jsonschema.Schema) bool {
		return schema.Type == "object"
	})
}
