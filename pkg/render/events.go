package render

// ValidationError is one validation failure reported by the rendering
// collaborator, mirroring its output shape.
type ValidationError struct {
	// InstancePath points at the offending location in the data value.
	InstancePath string `json:"instancePath"`
	// Message is the human-readable failure description.
	Message string `json:"message"`
	// SchemaPath points at the violated schema fragment.
	SchemaPath string `json:"schemaPath"`
	// Keyword names the violated schema keyword.
	Keyword string `json:"keyword"`
	// Params carries keyword-specific parameters.
	Params map[string]any `json:"params,omitempty"`
}

// ChangeEvent is emitted by the collaborator whenever the user edits the
// rendered form.
type ChangeEvent struct {
	Data   map[string]any    `json:"data"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// HasErrors reports whether the event carries validation failures.
func (e ChangeEvent) HasErrors() bool {
	return len(e.Errors) > 0
}

// ErrorsByPath groups validation messages by instance path so renderers can
// attach them inline.
func ErrorsByPath(errs []ValidationError) map[string][]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string][]string)
	for _, err := range errs {
		out[err.InstancePath] = append(out[err.InstancePath], err.Message)
	}
	return out
}
