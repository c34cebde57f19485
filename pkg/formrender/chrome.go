package formrender

import (
	"html"
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

// Built-in chrome class lists, overridable per slot through theme tokens.
const (
	defaultFormClass        = "grid gap-6"
	defaultLegendClass      = "text-base font-semibold text-gray-900"
	defaultFieldClass       = "grid gap-2"
	defaultLabelClass       = "text-sm font-medium text-gray-900"
	defaultDescriptionClass = "text-sm text-gray-500"
	defaultHelpClass        = "text-sm text-gray-600"
	defaultErrorClass       = "text-sm text-red-600"
)

// fieldChrome carries everything buildFieldMarkup needs for one field. The
// description arrives sanitized and is inserted raw; help text and error
// messages are plain text and escaped on output.
type fieldChrome struct {
	field       *fields.Field
	control     string
	description string
	helpText    string
	errors      []string
	theme       themeContext
}

func buildFieldMarkup(c fieldChrome) string {
	var builder strings.Builder
	builder.Grow(len(c.control) + 256)

	builder.WriteString(`<div class="`)
	builder.WriteString(html.EscapeString(c.theme.classFor("field", defaultFieldClass)))
	builder.WriteString(`" data-field="`)
	builder.WriteString(html.EscapeString(c.field.Name))
	builder.WriteString("\">\n")

	if label := strings.TrimSpace(c.field.Label); label != "" {
		builder.WriteString(`    <label for="`)
		builder.WriteString(html.EscapeString(c.field.HTMLID()))
		builder.WriteString(`" class="`)
		builder.WriteString(html.EscapeString(c.theme.classFor("label", defaultLabelClass)))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(label))
		if c.field.HasValidator(fields.KindRequired) {
			builder.WriteString(` *`)
		}
		builder.WriteString("</label>\n")
	}

	for _, line := range strings.Split(c.control, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		builder.WriteString("    ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	if c.description != "" {
		builder.WriteString(`    <small class="`)
		builder.WriteString(html.EscapeString(c.theme.classFor("description", defaultDescriptionClass)))
		builder.WriteString(`">`)
		builder.WriteString(c.description)
		builder.WriteString("</small>\n")
	}

	if help := strings.TrimSpace(c.helpText); help != "" {
		builder.WriteString(`    <small class="`)
		builder.WriteString(html.EscapeString(c.theme.classFor("help", defaultHelpClass)))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(help))
		builder.WriteString("</small>\n")
	}

	if len(c.errors) > 0 {
		builder.WriteString(`    <ul class="`)
		builder.WriteString(html.EscapeString(c.theme.classFor("error", defaultErrorClass)))
		builder.WriteString(`">`)
		for _, message := range c.errors {
			builder.WriteString(`<li>`)
			builder.WriteString(html.EscapeString(message))
			builder.WriteString(`</li>`)
		}
		builder.WriteString("</ul>\n")
	}

	builder.WriteString("</div>\n")
	return builder.String()
}
