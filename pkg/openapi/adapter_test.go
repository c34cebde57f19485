package openapi

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

const registrationDocument = `{
  "openapi": "3.0.3",
  "info": {"title": "Events", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "Registration": {
        "type": "object",
        "title": "Event registration",
        "required": ["email", "full_name"],
        "properties": {
          "full_name": {"type": "string", "minLength": 2, "maxLength": 64},
          "email": {"type": "string", "format": "email"},
          "guests": {"type": "integer", "minimum": 0, "maximum": 6},
          "event_date": {"type": "string", "format": "date"},
          "newsletter": {"type": "boolean", "default": true},
          "track": {"type": "string", "enum": ["backend", "frontend"], "default": "backend"},
          "topics": {"type": "array", "items": {"type": "string", "enum": ["go", "python"]}},
          "website": {"type": "string", "format": "uri", "pattern": "^https://"},
          "metadata": {"type": "object", "properties": {"note": {"type": "string"}}}
        }
      }
    }
  }
}`

func loadRegistrationSchema(t *testing.T) *openapi3.Schema {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData([]byte(registrationDocument))
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	ref := doc.Components.Schemas["Registration"]
	if ref == nil || ref.Value == nil {
		t.Fatalf("schema Registration not found")
	}
	return ref.Value
}

func TestFormFromSchemaConvertsProperties(t *testing.T) {
	form, err := FormFromSchema("registration", loadRegistrationSchema(t))
	if err != nil {
		t.Fatalf("form from schema: %v", err)
	}

	if form.Name != "registration" {
		t.Fatalf("unexpected form name %q", form.Name)
	}
	if form.Legend != "Event registration" {
		t.Fatalf("expected schema title as legend, got %q", form.Legend)
	}

	names := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		names = append(names, field.Name)
	}
	wantOrder := []string{"email", "event_date", "full_name", "guests", "newsletter", "topics", "track", "website"}
	if len(names) != len(wantOrder) {
		t.Fatalf("expected %d fields, got %v", len(wantOrder), names)
	}
	for i, want := range wantOrder {
		if names[i] != want {
			t.Fatalf("expected field %d to be %q, got %v", i, want, names)
		}
	}
}

func TestFormFromSchemaAttachesValidators(t *testing.T) {
	form, err := FormFromSchema("registration", loadRegistrationSchema(t))
	if err != nil {
		t.Fatalf("form from schema: %v", err)
	}

	byName := make(map[string]fields.Field, len(form.Fields))
	for _, field := range form.Fields {
		byName[field.Name] = field
	}

	fullName := byName["full_name"]
	if !fullName.HasValidator(fields.KindRequired) {
		t.Fatalf("expected full_name required, got %+v", fullName.Validators)
	}
	if min, max := fullName.LengthBounds(); min == nil || *min != 2 || max == nil || *max != 64 {
		t.Fatalf("unexpected full_name length bounds %v %v", min, max)
	}
	if fullName.Label != "Full Name" {
		t.Fatalf("unexpected label %q", fullName.Label)
	}

	guests := byName["guests"]
	if min, max := guests.NumberBounds(); min == nil || *min != 0 || max == nil || *max != 6 {
		t.Fatalf("unexpected guests bounds %v %v", min, max)
	}
	if guests.Format != "number" {
		t.Fatalf("expected number hint for integers, got %q", guests.Format)
	}

	email := byName["email"]
	if email.Format != "email" || !email.HasValidator(fields.KindRequired) {
		t.Fatalf("unexpected email field %+v", email)
	}

	website := byName["website"]
	if website.Format != "url" {
		t.Fatalf("expected uri normalised to url, got %q", website.Format)
	}
	if website.PatternExpr() != "^https://" {
		t.Fatalf("unexpected pattern %q", website.PatternExpr())
	}

	if byName["event_date"].Format != "date" {
		t.Fatalf("expected date hint, got %q", byName["event_date"].Format)
	}
}

func TestFormFromSchemaBuildsChoices(t *testing.T) {
	form, err := FormFromSchema("registration", loadRegistrationSchema(t))
	if err != nil {
		t.Fatalf("form from schema: %v", err)
	}

	byName := make(map[string]fields.Field, len(form.Fields))
	for _, field := range form.Fields {
		byName[field.Name] = field
	}

	track := byName["track"]
	if len(track.Choices) != 2 {
		t.Fatalf("expected two track choices, got %d", len(track.Choices))
	}
	first, ok := track.Choices[0].(fields.Choice)
	if !ok || first.Value != "backend" || first.Label != "Backend" {
		t.Fatalf("unexpected first choice %+v", track.Choices[0])
	}
	if track.Data != "backend" {
		t.Fatalf("expected default seeded, got %v", track.Data)
	}

	newsletter := byName["newsletter"]
	if len(newsletter.Choices) != 2 {
		t.Fatalf("expected yes/no choices, got %d", len(newsletter.Choices))
	}
	yes, ok := newsletter.Choices[0].(fields.Choice)
	if !ok || yes.Value != true || yes.Label != "Yes" {
		t.Fatalf("unexpected boolean choice %+v", newsletter.Choices[0])
	}
	if newsletter.Data != true {
		t.Fatalf("expected boolean default, got %v", newsletter.Data)
	}

	topics := byName["topics"]
	if len(topics.Choices) != 2 {
		t.Fatalf("expected item enum choices, got %d", len(topics.Choices))
	}
	if _, ok := topics.Data.([]any); !ok {
		t.Fatalf("expected slice data for array property, got %T", topics.Data)
	}
}

func TestFormFromSchemaSkipsObjectProperties(t *testing.T) {
	form, err := FormFromSchema("registration", loadRegistrationSchema(t))
	if err != nil {
		t.Fatalf("form from schema: %v", err)
	}

	for _, field := range form.Fields {
		if field.Name == "metadata" {
			t.Fatalf("expected object property skipped, got %+v", field)
		}
	}
}

func TestFormFromSchemaRejectsEmptySchemas(t *testing.T) {
	if _, err := FormFromSchema("empty", nil); err == nil {
		t.Fatal("expected error for nil schema")
	}
	if _, err := FormFromSchema("empty", &openapi3.Schema{}); err == nil {
		t.Fatal("expected error for schema without properties")
	}
}

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"full_name":  "Full Name",
		"event-date": "Event Date",
		"email":      "Email",
		"":           "",
	}
	for input, want := range cases {
		if got := humanize(input); got != want {
			t.Fatalf("humanize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeFormat(t *testing.T) {
	cases := map[string]string{
		"date-time": "datetime",
		"uri":       "url",
		"date":      "date",
		"uuid":      "uuid",
	}
	for input, want := range cases {
		if got := normalizeFormat(input); got != want {
			t.Fatalf("normalizeFormat(%q) = %q, want %q", input, got, want)
		}
	}
}
