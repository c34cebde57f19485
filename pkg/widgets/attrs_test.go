package widgets

import "testing"

func TestAttrsStringSortsAndEscapes(t *testing.T) {
	attrs := Attrs{
		"type":     "text",
		"id":       "note",
		"disabled": true,
		"hidden":   false,
		"step":     nil,
		"title":    `say "hi"`,
		"tabindex": 3,
	}

	got := attrs.String()
	want := `disabled id="note" tabindex="3" title="say &#34;hi&#34;" type="text"`
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestAttrsStringEmpty(t *testing.T) {
	if got := Attrs{}.String(); got != "" {
		t.Fatalf("expected empty serialization, got %q", got)
	}
	var attrs Attrs
	if got := attrs.String(); got != "" {
		t.Fatalf("expected empty serialization for nil map, got %q", got)
	}
}

func TestAttrsSetDefaultKeepsExplicitValues(t *testing.T) {
	attrs := Attrs{"required": false, "placeholder": ""}

	attrs.SetDefault("required", true)
	attrs.SetDefault("placeholder", "Search")
	attrs.SetDefault("min", "1")

	if attrs["required"] != false {
		t.Fatalf("explicit false replaced: %#v", attrs)
	}
	if attrs["placeholder"] != "" {
		t.Fatalf("explicit empty string replaced: %#v", attrs)
	}
	if attrs["min"] != "1" {
		t.Fatalf("absent key not filled: %#v", attrs)
	}
}

func TestAttrsMergeDoesNotMutateSources(t *testing.T) {
	base := Attrs{"a": "1"}
	overlay := Attrs{"a": "2", "b": "3"}

	merged := base.Merge(overlay)
	if merged["a"] != "2" || merged["b"] != "3" {
		t.Fatalf("unexpected merge result: %#v", merged)
	}
	if base["a"] != "1" {
		t.Fatalf("receiver mutated: %#v", base)
	}
	if len(overlay) != 2 {
		t.Fatalf("overlay mutated: %#v", overlay)
	}

	merged["c"] = "4"
	if _, ok := base["c"]; ok {
		t.Fatalf("merge result aliases receiver: %#v", base)
	}
}

func TestAttrsCloneNilIsWritable(t *testing.T) {
	var attrs Attrs
	clone := attrs.Clone()
	clone["a"] = "1"
	if clone["a"] != "1" {
		t.Fatalf("clone not writable: %#v", clone)
	}
}

func TestAttrTextNumbers(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{value: 3, want: "3"},
		{value: int64(9000000000), want: "9000000000"},
		{value: 3.5, want: "3.5"},
		{value: 3.0, want: "3"},
		{value: "as-is", want: "as-is"},
	}

	for _, tc := range cases {
		if got := attrText(tc.value); got != tc.want {
			t.Fatalf("attrText(%v): want %q, got %q", tc.value, tc.want, got)
		}
	}
}
