package formrender

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want
// to extend or replace the default form shell.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
