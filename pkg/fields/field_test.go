package fields_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

func TestHTMLIDFallsBackToName(t *testing.T) {
	field := fields.Field{Name: "billing_email"}
	if got := field.HTMLID(); got != "billing_email" {
		t.Fatalf("expected name fallback, got %q", got)
	}

	field.ID = "billing-email"
	if got := field.HTMLID(); got != "billing-email" {
		t.Fatalf("expected explicit id, got %q", got)
	}
}

func TestSelectedScalar(t *testing.T) {
	field := fields.Field{Name: "country", Data: "se"}

	if !field.Selected("se") {
		t.Fatal("expected scalar match")
	}
	if field.Selected("fi") {
		t.Fatal("unexpected scalar match")
	}
}

func TestSelectedSliceMembership(t *testing.T) {
	cases := []struct {
		name  string
		data  any
		value any
		want  bool
	}{
		{name: "string slice hit", data: []string{"a", "c"}, value: "c", want: true},
		{name: "string slice miss", data: []string{"a", "c"}, value: "b", want: false},
		{name: "any slice hit", data: []any{1, "two"}, value: "two", want: true},
		{name: "int slice hit", data: []int{1, 2, 3}, value: 2, want: true},
		{name: "int slice miss", data: []int{1, 2, 3}, value: 4, want: false},
		{name: "nil data", data: nil, value: "x", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			field := fields.Field{Name: "tags", Data: tc.data}
			if got := field.Selected(tc.value); got != tc.want {
				t.Fatalf("Selected(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestChoiceEntriesPrefersProducer(t *testing.T) {
	static := []fields.ChoiceEntry{fields.NewChoice("a", "A")}
	produced := []fields.ChoiceEntry{
		fields.NewChoice("b", "B"),
		fields.NewChoice("c", "C"),
	}

	field := fields.Field{
		Name:        "letter",
		Choices:     static,
		ChoicesFunc: func() []fields.ChoiceEntry { return produced },
	}

	if diff := cmp.Diff(produced, field.ChoiceEntries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}

	field.ChoicesFunc = nil
	if diff := cmp.Diff(static, field.ChoiceEntries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestChoiceOptionKeyFallsBackToValue(t *testing.T) {
	explicit := fields.Choice{Key: 7, Value: "seven", Label: "Seven"}
	if got := explicit.OptionKey(); got != 7 {
		t.Fatalf("expected explicit key, got %v", got)
	}

	implicit := fields.NewChoice("seven", "Seven")
	if got := implicit.OptionKey(); got != "seven" {
		t.Fatalf("expected value fallback, got %v", got)
	}
}
