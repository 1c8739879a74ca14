// Package template defines the engine seam renderers draw markup through,
// mirroring the github.com/goliatone/go-template contract.
package template

import "io"

// TemplateRenderer abstracts the template engine so renderers can be tested
// with a stub and callers can swap implementations.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
