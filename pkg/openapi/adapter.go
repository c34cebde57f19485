package openapi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

// FormFromSchema converts an object schema into a form. Properties become
// fields in sorted name order; required entries, numeric bounds, length
// bounds and patterns become validators; enums become choices; defaults
// seed field data. Nested object properties are skipped, the form model is
// flat.
func FormFromSchema(name string, schema *openapi3.Schema) (fields.Form, error) {
	if schema == nil {
		return fields.Form{}, errors.New("openapi: schema is nil")
	}
	if len(schema.Properties) == 0 {
		return fields.Form{}, fmt.Errorf("openapi: schema %q has no properties", name)
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, entry := range schema.Required {
		required[entry] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for propName := range schema.Properties {
		names = append(names, propName)
	}
	sort.Strings(names)

	form := fields.Form{
		Name:   name,
		Legend: schema.Title,
	}
	for _, propName := range names {
		ref := schema.Properties[propName]
		if ref == nil || ref.Value == nil {
			continue
		}
		if hasType(ref.Value.Type, "object") {
			continue
		}

		_, isRequired := required[propName]
		form.Fields = append(form.Fields, fieldFromProperty(propName, ref.Value, isRequired))
	}

	if len(form.Fields) == 0 {
		return fields.Form{}, fmt.Errorf("openapi: schema %q has no convertible properties", name)
	}
	return form, nil
}

func fieldFromProperty(name string, prop *openapi3.Schema, required bool) fields.Field {
	field := fields.Field{
		Name:        name,
		Label:       humanize(name),
		Description: prop.Description,
		Format:      normalizeFormat(prop.Format),
		Data:        prop.Default,
	}

	if required {
		field.Validators = append(field.Validators, fields.Required{})
	}

	switch {
	case hasType(prop.Type, "boolean"):
		field.Choices = boolChoices()
	case hasType(prop.Type, "array"):
		applyArrayProperty(&field, prop)
	case hasType(prop.Type, "number"), hasType(prop.Type, "integer"):
		applyNumericProperty(&field, prop)
	default:
		applyTextualProperty(&field, prop)
	}

	if len(prop.Enum) > 0 && field.Choices == nil {
		field.Choices = enumChoices(prop.Enum)
	}
	return field
}

func applyNumericProperty(field *fields.Field, prop *openapi3.Schema) {
	if field.Format == "" {
		field.Format = "number"
	}
	if prop.Min == nil && prop.Max == nil {
		return
	}
	bounds := fields.NumberRange{}
	if prop.Min != nil {
		value := *prop.Min
		bounds.Min = &value
	}
	if prop.Max != nil {
		value := *prop.Max
		bounds.Max = &value
	}
	field.Validators = append(field.Validators, bounds)
}

func applyTextualProperty(field *fields.Field, prop *openapi3.Schema) {
	bounds := fields.Length{}
	if prop.MinLength != 0 {
		value := int(prop.MinLength)
		bounds.Min = &value
	}
	if prop.MaxLength != nil {
		value := int(*prop.MaxLength)
		bounds.Max = &value
	}
	if bounds.Min != nil || bounds.Max != nil {
		field.Validators = append(field.Validators, bounds)
	}
	if prop.Pattern != "" {
		field.Validators = append(field.Validators, fields.Pattern{Expr: prop.Pattern})
	}
}

// applyArrayProperty maps arrays of enumerated items onto a multiple
// select. Field data is forced to a slice so widget resolution sees a
// multi-valued field even without a default.
func applyArrayProperty(field *fields.Field, prop *openapi3.Schema) {
	if prop.Items == nil || prop.Items.Value == nil {
		return
	}
	items := prop.Items.Value
	if len(items.Enum) > 0 {
		field.Choices = enumChoices(items.Enum)
	}
	if _, ok := field.Data.([]any); !ok {
		if values, ok := field.Data.([]string); ok {
			data := make([]any, 0, len(values))
			for _, value := range values {
				data = append(data, value)
			}
			field.Data = data
		} else {
			field.Data = []any{}
		}
	}
}

func enumChoices(values []any) []fields.ChoiceEntry {
	choices := make([]fields.ChoiceEntry, 0, len(values))
	for _, value := range values {
		choices = append(choices, fields.NewChoice(value, choiceLabel(value)))
	}
	return choices
}

// boolChoices renders boolean properties as a yes/no select, the closest
// fit in a widget family without a checkbox.
func boolChoices() []fields.ChoiceEntry {
	return []fields.ChoiceEntry{
		fields.NewChoice(true, "Yes"),
		fields.NewChoice(false, "No"),
	}
}

func choiceLabel(value any) string {
	if text, ok := value.(string); ok {
		return humanize(text)
	}
	return fmt.Sprintf("%v", value)
}

// normalizeFormat maps OpenAPI format names onto widget format hints.
// Unknown formats pass through untouched; the registry ignores hints it
// does not recognise.
func normalizeFormat(format string) string {
	switch format {
	case "date-time":
		return "datetime"
	case "uri", "url":
		return "url"
	default:
		return format
	}
}

// humanize turns a property name into display text: underscores and
// hyphens become spaces and each word is capitalised.
func humanize(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func hasType(types *openapi3.Types, want string) bool {
	if types == nil {
		return false
	}
	for _, entry := range types.Slice() {
		if entry == want {
			return true
		}
	}
	return false
}
