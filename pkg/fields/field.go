package fields

import "reflect"

// Field models an individual form control. Renderers read it, derive
// attributes from its validators, and emit markup; they never mutate it.
type Field struct {
	// ID overrides the rendered id attribute. Empty falls back to Name.
	ID string
	// Name becomes the control's name attribute and the key used by
	// render-time value and error lookups.
	Name string
	// Label is plain display text; renderers escape it.
	Label string
	// Description may carry limited inline markup (bold, links). Renderers
	// sanitize it before emission.
	Description string
	// Placeholder seeds the placeholder attribute when the renderer supports
	// one.
	Placeholder string
	// Format is a rendering hint ("date", "time", "email", ...) consumed by
	// widget registries when picking a control for the field.
	Format string
	// Data holds the field's current value. Slice-typed data marks
	// multi-valued selection for choice fields.
	Data any
	// Validators are the declared constraints. Widgets read them to derive
	// HTML attributes; they are never executed here.
	Validators []Validator
	// Choices lists selectable entries for choice fields. ChoicesFunc takes
	// precedence when set and is re-invoked on every render, so producers
	// must be restartable.
	Choices     []ChoiceEntry
	ChoicesFunc func() []ChoiceEntry
	// Metadata carries renderer-facing hints such as an explicit "widget"
	// override.
	Metadata map[string]string
}

// HTMLID returns the id attribute for the rendered control, defaulting to
// the field name.
func (f *Field) HTMLID() string {
	if f.ID != "" {
		return f.ID
	}
	return f.Name
}

// ChoiceEntries returns the field's choice sequence in declaration order,
// preferring the lazy producer when one is configured. Callers must not
// mutate the result.
func (f *Field) ChoiceEntries() []ChoiceEntry {
	if f.ChoicesFunc != nil {
		return f.ChoicesFunc()
	}
	return f.Choices
}

// Selected reports whether value matches the field's current data: equality
// for scalar data, membership for slice-typed data. Comparison uses deep
// equality, so mixed-type data and choice values only match when they are
// the same concrete type.
func (f *Field) Selected(value any) bool {
	if f.Data == nil {
		return false
	}
	rv := reflect.ValueOf(f.Data)
	if rv.Kind() == reflect.Slice {
		for i := 0; i < rv.Len(); i++ {
			if reflect.DeepEqual(rv.Index(i).Interface(), value) {
				return true
			}
		}
		return false
	}
	return reflect.DeepEqual(f.Data, value)
}

// Form groups ordered fields under a name plus the attributes a renderer
// places on the form tag. Submission handling stays with the caller.
type Form struct {
	Name   string
	Action string
	Method string
	Legend string
	Fields []Field
}
