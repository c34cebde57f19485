package widgets

import (
	"html/template"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

// ReadOnly decorates another widget with a readonly default. The wrapped
// widget stays reachable through the embedded field, so capabilities beyond
// Render remain one explicit hop away.
type ReadOnly struct {
	Widget
}

// NewReadOnly wraps w so every render carries readonly unless the caller
// supplies the key explicitly. An explicit readonly, true or false, is left
// untouched.
func NewReadOnly(w Widget) ReadOnly {
	return ReadOnly{Widget: w}
}

func (r ReadOnly) Render(field *fields.Field, attrs Attrs) template.HTML {
	merged := attrs.Clone()
	merged.SetDefault("readonly", true)
	return r.Widget.Render(field, merged)
}
