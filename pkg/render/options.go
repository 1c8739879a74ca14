package render

// RenderOptions carries per-request data renderers can use without mutating
// the build pipeline.
type RenderOptions struct {
	// Values pre-populates controls keyed by scope.
	Values map[string]any
	// Errors surfaces validation feedback keyed by instance path.
	Errors map[string][]string
	// Theme holds the resolved theme configuration, when a selector is
	// configured upstream.
	Theme *ThemeConfig
}

// ThemeConfig is the renderer-facing projection of a resolved theme
// selection: flattened tokens, derived CSS custom properties and an asset
// resolver.
type ThemeConfig struct {
	Theme    string
	Variant  string
	Tokens   map[string]string
	CSSVars  map[string]string
	AssetURL func(name string) string
}
