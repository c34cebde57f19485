package uiconfig

// Store keeps the parsed form overlays. It is safe for concurrent readers
// when treated as immutable after construction.
type Store struct {
	forms map[string]FormConfig
}

// Form returns the overlay for the supplied form id.
func (s *Store) Form(id string) (FormConfig, bool) {
	if s == nil {
		return FormConfig{}, false
	}
	form, ok := s.forms[id]
	return form, ok
}

// Field returns the overlay for a field inside the named form.
func (s *Store) Field(formID, fieldName string) (FieldConfig, bool) {
	form, ok := s.Form(formID)
	if !ok {
		return FieldConfig{}, false
	}
	cfg, ok := form.Fields[fieldName]
	return cfg, ok
}

// Empty reports whether the store holds any form overlays.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

// FormConfig describes the overrides for one named form.
type FormConfig struct {
	ID     string
	Source string
	Legend string
	Attrs  map[string]any
	Fields map[string]FieldConfig
}

// FieldConfig customises how a single field is presented. Empty strings
// leave the field model's own values in place; Attrs merge into the render
// as caller-level overrides.
type FieldConfig struct {
	Widget      string         `json:"widget,omitempty" yaml:"widget,omitempty"`
	Label       string         `json:"label,omitempty" yaml:"label,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	HelpText    string         `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Placeholder string         `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	ReadOnly    bool           `json:"readonly,omitempty" yaml:"readonly,omitempty"`
	Hidden      bool           `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	VisibleWhen string         `json:"visible_when,omitempty" yaml:"visible_when,omitempty"`
	Attrs       map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}
