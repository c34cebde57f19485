package widgets

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

func TestInputDerivesRequiredAndTightestBounds(t *testing.T) {
	field := fields.Field{
		Name: "quantity",
		Validators: []fields.Validator{
			fields.Required{},
			fields.NumberRange{Min: fields.Float64Ptr(3), Max: fields.Float64Ptr(6)},
			fields.NumberRange{Min: fields.Float64Ptr(4), Max: fields.Float64Ptr(7)},
		},
	}

	got := string(NewNumber().Render(&field, nil))
	want := `<input id="quantity" max="6" min="4" name="quantity" required type="number" value="">`
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestInputCallerOverridesDerived(t *testing.T) {
	field := fields.Field{
		Name: "quantity",
		Validators: []fields.Validator{
			fields.Required{},
			fields.NumberRange{Min: fields.Float64Ptr(1), Max: fields.Float64Ptr(10)},
		},
	}

	html := string(NewNumber().Render(&field, Attrs{
		"required": false,
		"min":      "5",
	}))

	if strings.Contains(html, "required") {
		t.Fatalf("explicit required=false should suppress the attribute, got:\n%s", html)
	}
	if !strings.Contains(html, `min="5"`) {
		t.Fatalf("expected caller min to win, got:\n%s", html)
	}
	if !strings.Contains(html, `max="10"`) {
		t.Fatalf("expected derived max to survive, got:\n%s", html)
	}
}

func TestInputOptionsSitBelowDerived(t *testing.T) {
	field := fields.Field{
		Name: "volume",
		Validators: []fields.Validator{
			fields.NumberRange{Min: fields.Float64Ptr(2)},
		},
	}

	html := string(NewRange(Attrs{"step": "any", "min": "0"}).Render(&field, nil))

	if !strings.Contains(html, `step="any"`) {
		t.Fatalf("expected constructor option to survive, got:\n%s", html)
	}
	if !strings.Contains(html, `min="2"`) {
		t.Fatalf("expected derived min to beat the constructor option, got:\n%s", html)
	}
	if !strings.Contains(html, `type="range"`) {
		t.Fatalf("expected range input type, got:\n%s", html)
	}
}

func TestInputTemporalBoundFormats(t *testing.T) {
	min := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)

	field := fields.Field{
		Name: "published",
		Validators: []fields.Validator{
			fields.DateRange{Min: fields.TimePtr(min), Max: fields.TimePtr(max)},
		},
	}

	date := string(NewDate().Render(&field, nil))
	if !strings.Contains(date, `min="2020-01-01"`) || !strings.Contains(date, `max="2020-12-31"`) {
		t.Fatalf("unexpected date bounds, got:\n%s", date)
	}

	local := string(NewDateTimeLocal().Render(&field, nil))
	if !strings.Contains(local, `min="2020-01-01T00:00:00"`) {
		t.Fatalf("unexpected datetime-local min, got:\n%s", local)
	}

	utc := string(NewDateTime().Render(&field, nil))
	if !strings.Contains(utc, `min="2020-01-01T00:00:00Z"`) {
		t.Fatalf("unexpected datetime min, got:\n%s", utc)
	}
}

func TestInputTimeBounds(t *testing.T) {
	opening := time.Date(0, time.January, 1, 9, 0, 0, 0, time.UTC)
	closing := time.Date(0, time.January, 1, 17, 30, 0, 0, time.UTC)

	field := fields.Field{
		Name: "slot",
		Validators: []fields.Validator{
			fields.TimeRange{Min: fields.TimePtr(opening), Max: fields.TimePtr(closing)},
		},
	}

	html := string(NewTime().Render(&field, nil))
	if !strings.Contains(html, `min="09:00:00"`) || !strings.Contains(html, `max="17:30:00"`) {
		t.Fatalf("unexpected time bounds, got:\n%s", html)
	}
}

func TestInputDateTimeValueNormalizedToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*3600)
	field := fields.Field{
		Name: "starts",
		Data: time.Date(2020, time.June, 1, 14, 30, 0, 0, zone),
	}

	html := string(NewDateTime().Render(&field, nil))
	if !strings.Contains(html, `value="2020-06-01T12:30:00Z"`) {
		t.Fatalf("expected UTC-normalized value, got:\n%s", html)
	}
}

func TestInputTextRules(t *testing.T) {
	field := fields.Field{
		Name: "username",
		Validators: []fields.Validator{
			fields.Length{Min: fields.IntPtr(3), Max: fields.IntPtr(64)},
			fields.Pattern{Expr: "[a-z0-9_]+"},
		},
	}

	text := string(NewText().Render(&field, nil))
	for _, attr := range []string{`minlength="3"`, `maxlength="64"`, `pattern="[a-z0-9_]+"`} {
		if !strings.Contains(text, attr) {
			t.Fatalf("expected %s on text input, got:\n%s", attr, text)
		}
	}

	number := string(NewNumber().Render(&field, nil))
	if strings.Contains(number, "minlength") || strings.Contains(number, "pattern") {
		t.Fatalf("number input should not derive text rules, got:\n%s", number)
	}
}

func TestInputRendersIdenticalBytesAcrossCalls(t *testing.T) {
	field := fields.Field{
		Name: "email",
		Data: "a@example.com",
		Validators: []fields.Validator{
			fields.Required{},
			fields.Length{Max: fields.IntPtr(255)},
		},
	}
	overrides := Attrs{"class": "wide", "autocomplete": "email"}

	first := NewEmail().Render(&field, overrides)
	second := NewEmail().Render(&field, overrides)
	if first != second {
		t.Fatalf("renders differ:\n%s\n%s", first, second)
	}
}

func TestInputEscapesAttributeValues(t *testing.T) {
	field := fields.Field{
		Name: "note",
		Data: `a "quoted" <b>`,
	}

	html := string(NewText().Render(&field, nil))
	if !strings.Contains(html, `value="a &#34;quoted&#34; &lt;b&gt;"`) {
		t.Fatalf("expected escaped value, got:\n%s", html)
	}
}

func TestInputDoesNotMutateFieldOrAttrs(t *testing.T) {
	field := fields.Field{
		Name: "quantity",
		Validators: []fields.Validator{
			fields.Required{},
			fields.NumberRange{Min: fields.Float64Ptr(1)},
		},
	}
	attrs := Attrs{"class": "wide"}

	NewNumber().Render(&field, attrs)

	if len(attrs) != 1 || attrs["class"] != "wide" {
		t.Fatalf("caller attrs mutated: %#v", attrs)
	}
	if len(field.Validators) != 2 {
		t.Fatalf("field validators mutated: %#v", field.Validators)
	}
}

func TestInputZeroValueRendersText(t *testing.T) {
	var widget Input
	field := fields.Field{Name: "notes"}

	html := string(widget.Render(&field, nil))
	if !strings.Contains(html, `type="text"`) {
		t.Fatalf("expected text fallback, got:\n%s", html)
	}
}

func TestInputExplicitIDAndValueWin(t *testing.T) {
	field := fields.Field{
		ID:   "qty-field",
		Name: "quantity",
		Data: 3,
	}

	html := string(NewNumber().Render(&field, Attrs{"id": "override", "value": "9"}))
	if !strings.Contains(html, `id="override"`) {
		t.Fatalf("expected caller id to win, got:\n%s", html)
	}
	if !strings.Contains(html, `value="9"`) {
		t.Fatalf("expected caller value to win, got:\n%s", html)
	}
	if !strings.Contains(html, `name="quantity"`) {
		t.Fatalf("name must come from the field, got:\n%s", html)
	}
}
