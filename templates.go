package formwidgets

import (
	"io/fs"

	"github.com/goliatone/go-formwidgets/pkg/formrender"
)

// EmbeddedTemplates exposes the built-in form shell templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return formrender.TemplatesFS()
}
