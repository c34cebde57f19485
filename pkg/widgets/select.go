package widgets

import (
	"html"
	"html/template"
	"strconv"
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

// Select renders a choice field as a select element with optgroup support.
// Grouped entries emit an optgroup wrapping their options; selection follows
// the field data, scalar equality for single values and membership for
// slice-valued data.
type Select struct {
	Multiple bool
}

// Render emits the select element. The id defaults to the field's id, name
// always comes from the field, and multiple is forced when configured even
// against a caller-supplied value.
func (w Select) Render(field *fields.Field, attrs Attrs) template.HTML {
	merged := attrs.Clone()
	if w.Multiple {
		merged["multiple"] = true
	}
	merged.SetDefault("id", field.HTMLID())
	merged["name"] = field.Name

	var builder strings.Builder
	builder.Grow(256)
	builder.WriteString(`<select`)
	if params := merged.String(); params != "" {
		builder.WriteByte(' ')
		builder.WriteString(params)
	}
	builder.WriteByte('>')

	for _, entry := range field.ChoiceEntries() {
		switch e := entry.(type) {
		case fields.Choice:
			builder.WriteString(renderOption(field, e))
		case fields.ChoiceGroup:
			builder.WriteString(renderGroup(field, e))
		default:
			// nil entries carry nothing to render
			continue
		}
	}

	builder.WriteString(`</select>`)
	return template.HTML(builder.String())
}

func renderGroup(field *fields.Field, group fields.ChoiceGroup) string {
	children := make([]string, 0, len(group.Choices))
	for _, choice := range group.Choices {
		children = append(children, renderOption(field, choice))
	}

	var builder strings.Builder
	builder.Grow(len(group.Label) + 32)
	builder.WriteString(`<optgroup label="`)
	builder.WriteString(html.EscapeString(group.Label))
	builder.WriteString(`">`)
	builder.WriteString(strings.Join(children, "\n"))
	builder.WriteString(`</optgroup>`)
	return builder.String()
}

func renderOption(field *fields.Field, choice fields.Choice) string {
	attrs := Attrs{"value": optionValue(choice.OptionKey())}
	if field.Selected(choice.Value) {
		attrs["selected"] = true
	}

	var builder strings.Builder
	builder.Grow(len(choice.Label) + 32)
	builder.WriteString(`<option`)
	if params := attrs.String(); params != "" {
		builder.WriteByte(' ')
		builder.WriteString(params)
	}
	builder.WriteByte('>')
	builder.WriteString(html.EscapeString(choice.Label))
	builder.WriteString(`</option>`)
	return builder.String()
}

// optionValue keeps boolean keys as literal text. Without the coercion a
// true key would serialize as a bare value attribute and the option would
// submit its label instead.
func optionValue(key any) any {
	if b, ok := key.(bool); ok {
		return strconv.FormatBool(b)
	}
	return key
}
