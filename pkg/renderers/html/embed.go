package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// TemplatesFS exposes the embedded default template bundle.
func TemplatesFS() fs.FS {
	return templateFiles
}
