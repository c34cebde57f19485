package formrender

import (
	"strings"
	"testing"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

func TestBuildFieldMarkupWrapsControl(t *testing.T) {
	field := &fields.Field{
		Name:  "email",
		Label: "Email",
		Validators: []fields.Validator{
			fields.Required{},
		},
	}

	html := buildFieldMarkup(fieldChrome{
		field:   field,
		control: `<input id="email" name="email" required type="email" value="">`,
	})

	want := `<div class="grid gap-2" data-field="email">
    <label for="email" class="text-sm font-medium text-gray-900">Email *</label>
    <input id="email" name="email" required type="email" value="">
</div>
`
	if html != want {
		t.Fatalf("unexpected markup:\n%s", html)
	}
}

func TestBuildFieldMarkupSkipsEmptyLabel(t *testing.T) {
	field := &fields.Field{Name: "q"}

	html := buildFieldMarkup(fieldChrome{field: field, control: `<input name="q">`})

	if strings.Contains(html, "<label") {
		t.Fatalf("expected no label, got:\n%s", html)
	}
}

func TestBuildFieldMarkupIndentsMultilineControl(t *testing.T) {
	field := &fields.Field{Name: "track"}

	html := buildFieldMarkup(fieldChrome{
		field:   field,
		control: "<select name=\"track\"><option>A</option>\n<option>B</option></select>",
	})

	if !strings.Contains(html, "\n    <option>B</option></select>\n") {
		t.Fatalf("expected continuation lines indented, got:\n%s", html)
	}
}

func TestBuildFieldMarkupInsertsSanitizedDescriptionRaw(t *testing.T) {
	field := &fields.Field{Name: "bio", Label: "Bio"}

	html := buildFieldMarkup(fieldChrome{
		field:       field,
		control:     `<input name="bio">`,
		description: `Accepts <strong>limited</strong> markup`,
	})

	if !strings.Contains(html, `<small class="text-sm text-gray-500">Accepts <strong>limited</strong> markup</small>`) {
		t.Fatalf("expected raw description markup, got:\n%s", html)
	}
}

func TestBuildFieldMarkupEscapesHelpAndErrors(t *testing.T) {
	field := &fields.Field{Name: "note"}

	html := buildFieldMarkup(fieldChrome{
		field:    field,
		control:  `<input name="note">`,
		helpText: `use <b> sparingly`,
		errors:   []string{`value must be < 10`},
	})

	if !strings.Contains(html, `use &lt;b&gt; sparingly`) {
		t.Fatalf("expected help text escaped, got:\n%s", html)
	}
	if !strings.Contains(html, `<li>value must be &lt; 10</li>`) {
		t.Fatalf("expected error message escaped, got:\n%s", html)
	}
}

func TestBuildFieldMarkupThemeTokensOverrideClasses(t *testing.T) {
	field := &fields.Field{Name: "email", Label: "Email"}

	html := buildFieldMarkup(fieldChrome{
		field:   field,
		control: `<input name="email">`,
		theme: themeContext{Tokens: map[string]string{
			"field": "stack",
			"label": "label-lg",
		}},
	})

	if !strings.Contains(html, `<div class="stack" data-field="email">`) {
		t.Fatalf("expected field token applied, got:\n%s", html)
	}
	if !strings.Contains(html, `class="label-lg"`) {
		t.Fatalf("expected label token applied, got:\n%s", html)
	}
}
