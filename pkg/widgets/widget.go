package widgets

import (
	"html/template"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

// Widget renders one control for a field. Implementations must not mutate
// the field or the supplied attribute map; both may be shared across
// concurrent renders. The attrs argument carries caller overrides and has
// the highest precedence during attribute composition.
type Widget interface {
	Render(field *fields.Field, attrs Attrs) template.HTML
}
