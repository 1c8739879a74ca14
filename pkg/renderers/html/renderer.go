// Package html renders the schema pair into plain form markup. It is the
// default rendering collaborator: it walks the presentation layout against
// the structural schema and draws each node through the template engine.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbuilder/pkg/jsonschema"
	"github.com/goliatone/go-formbuilder/pkg/render"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formbuilder/pkg/uischema"
	"github.com/goliatone/go-formbuilder/pkg/widgets"
)

// Option customises renderer construction.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	selector         theme.ThemeSelector
	themeName        string
	themeVariant     string
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeSelector resolves theme tokens ahead of rendering so markup can
// carry CSS custom properties.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// Renderer is the built-in HTML rendering collaborator.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	policy       *bluemonday.Policy
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
}

// New constructs the renderer, defaulting to the embedded template bundle.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template engine: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		templates:    templates,
		policy:       bluemonday.StrictPolicy(),
		selector:     cfg.selector,
		themeName:    cfg.themeName,
		themeVariant: cfg.themeVariant,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render walks the layout tree and emits the form markup. Labels pass
// through a strict sanitiser since they are user-entered text.
func (r *Renderer) Render(ctx context.Context, form render.Form, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template engine is nil")
	}

	themeCfg := options.Theme
	if themeCfg == nil && r.selector != nil {
		resolved, err := r.resolveTheme()
		if err != nil {
			return nil, err
		}
		themeCfg = resolved
	}

	layout := form.Layout
	if layout == nil {
		layout = &uischema.Node{Type: uischema.TypeVerticalLayout}
	}
	body, err := r.node(layout, form, options)
	if err != nil {
		return nil, err
	}

	data := map[string]any{"body": body}
	if themeCfg != nil {
		data["theme"] = themeCfg.Theme
		data["cssvars"] = cssVarStyle(themeCfg.CSSVars)
	}
	out, err := r.templates.RenderTemplate("templates/form", data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render form: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) node(node *uischema.Node, form render.Form, options render.RenderOptions) (string, error) {
	if node == nil {
		return "", nil
	}
	switch node.Type {
	case uischema.TypeControl:
		if node.Options != nil && node.Options.Detail != nil {
			return r.detail(node, form, options)
		}
		return r.control(node, form, options)
	case uischema.TypeGroup:
		children, err := r.children(node.Elements, form, options)
		if err != nil {
			return "", err
		}
		return r.templates.RenderTemplate("templates/group", map[string]any{
			"label":    r.policy.Sanitize(node.Label),
			"children": children,
		})
	case uischema.TypeHorizontalLayout:
		return r.layout(node, "horizontal", form, options)
	default:
		// Unknown node types fall back to a vertical layout wrapper.
		return r.layout(node, "vertical", form, options)
	}
}

func (r *Renderer) layout(node *uischema.Node, direction string, form render.Form, options render.RenderOptions) (string, error) {
	children, err := r.children(node.Elements, form, options)
	if err != nil {
		return "", err
	}
	return r.templates.RenderTemplate("templates/layout", map[string]any{
		"direction": direction,
		"children":  children,
	})
}

func (r *Renderer) detail(node *uischema.Node, form render.Form, options render.RenderOptions) (string, error) {
	inner, err := r.node(node.Options.Detail, form, options)
	if err != nil {
		return "", err
	}
	return r.templates.RenderTemplate("templates/detail", map[string]any{
		"label":    r.policy.Sanitize(node.Label),
		"scope":    node.Scope,
		"widget":   r.widget(node.Scope, form),
		"children": inner,
	})
}

func (r *Renderer) control(node *uischema.Node, form render.Form, options render.RenderOptions) (string, error) {
	key := scopeKey(node.Scope)
	data := map[string]any{
		"label":    r.policy.Sanitize(node.Label),
		"scope":    node.Scope,
		"key":      key,
		"widget":   r.widget(node.Scope, form),
		"required": isRequired(form.Schema, key),
	}
	if value, ok := controlValue(node.Scope, key, form, options); ok {
		data["value"] = value
	}
	if messages := controlErrors(node.Scope, key, options); len(messages) > 0 {
		data["errors"] = messages
	}
	return r.templates.RenderTemplate("templates/control", data)
}

func (r *Renderer) children(nodes []*uischema.Node, form render.Form, options render.RenderOptions) (string, error) {
	var b strings.Builder
	for _, child := range nodes {
		rendered, err := r.node(child, form, options)
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
	}
	return b.String(), nil
}

func (r *Renderer) widget(scope string, form render.Form) string {
	if name, ok := form.Widgets[scope]; ok && name != "" {
		return name
	}
	return widgets.WidgetInput
}

// resolveTheme projects the selector's resolved manifest into the flat
// renderer-facing config: base tokens overlaid with the variant's, CSS vars
// derived from the merge.
func (r *Renderer) resolveTheme() (*render.ThemeConfig, error) {
	selection, err := r.selector.Select(r.themeName, r.themeVariant)
	if err != nil {
		return nil, fmt.Errorf("html renderer: resolve theme: %w", err)
	}
	if selection == nil {
		return nil, nil
	}

	cfg := &render.ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  map[string]string{},
		CSSVars: map[string]string{},
	}
	manifest := selection.Manifest
	if manifest != nil {
		for name, value := range manifest.Tokens {
			cfg.Tokens[name] = value
		}
		if variant, ok := manifest.Variants[selection.Variant]; ok {
			for name, value := range variant.Tokens {
				cfg.Tokens[name] = value
			}
		}
		prefix := manifest.Assets.Prefix
		files := manifest.Assets.Files
		cfg.AssetURL = func(name string) string {
			file, ok := files[name]
			if !ok {
				return ""
			}
			return strings.TrimSuffix(prefix, "/") + "/" + file
		}
	}
	for name, value := range cfg.Tokens {
		cfg.CSSVars["--"+name] = value
	}
	return cfg, nil
}

func cssVarStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+vars[name])
	}
	return strings.Join(parts, "; ")
}

func scopeKey(scope string) string {
	if idx := strings.LastIndex(scope, "/"); idx >= 0 {
		return scope[idx+1:]
	}
	return scope
}

func controlValue(scope, key string, form render.Form, options render.RenderOptions) (any, bool) {
	if value, ok := options.Values[scope]; ok {
		return value, true
	}
	if value, ok := form.Data[key]; ok {
		return value, true
	}
	return nil, false
}

func controlErrors(scope, key string, options render.RenderOptions) []string {
	if messages, ok := options.Errors[scope]; ok {
		return messages
	}
	return options.Errors["/"+key]
}

// isRequired reports whether key appears in the required set of any object
// fragment in the schema. Scopes are compacted to leaf keys, so the first
// fragment that lists the key decides.
func isRequired(schema *jsonschema.Schema, key string) bool {
	if schema == nil {
		return false
	}
	for _, required := range schema.Required {
		if required == key {
			return true
		}
	}
	if schema.Properties != nil {
		for _, name := range schema.Properties.Keys() {
			if isRequired(schema.Properties.Get(name), key) {
				return true
			}
		}
	}
	return isRequired(schema.Items, key)
}
