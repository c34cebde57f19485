package formrender

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

// ErrorMapping splits a render-time error payload into field-level and
// form-level messages keyed by field name.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapErrors normalises server-side error messages against the form's
// fields. Messages keyed by an unknown field name are treated as form-level
// so they are not lost; an empty key is always form-level.
func MapErrors(form fields.Form, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	known := make(map[string]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		if field.Name != "" {
			known[field.Name] = struct{}{}
		}
	}

	// Sorted key walk keeps form-level aggregation deterministic.
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, rawKey := range keys {
		normalized := normalizeMessages(payload[rawKey])
		if len(normalized) == 0 {
			continue
		}

		key := strings.TrimSpace(rawKey)
		if _, ok := known[key]; !ok || key == "" {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Fields[key] = append(mapping.Fields[key], normalized...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// MergeFormErrors concatenates and normalises form-level error slices,
// trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
