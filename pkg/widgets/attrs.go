package widgets

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Attrs collects the HTML attributes for a single control render. Maps are
// assembled fresh per render and never retained, so widgets stay safe under
// concurrent use. Boolean values follow HTML semantics: true emits the bare
// attribute, false suppresses it entirely.
type Attrs map[string]any

// Clone returns a copy the caller may mutate freely. A nil receiver clones
// to an empty, writable map.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// SetDefault stores value under key only when the key is absent. An explicit
// entry, including false or an empty string, is never replaced.
func (a Attrs) SetDefault(key string, value any) {
	if _, ok := a[key]; !ok {
		a[key] = value
	}
}

// Merge overlays the sources in order onto a copy of the receiver. Later
// sources win on key collisions; no input map is mutated.
func (a Attrs) Merge(sources ...Attrs) Attrs {
	out := a.Clone()
	for _, src := range sources {
		for key, value := range src {
			out[key] = value
		}
	}
	return out
}

// String serializes the set as HTML attribute text. Keys are emitted in
// lexicographic order so identical input always yields identical bytes.
// Nil and false values are dropped, true becomes the bare attribute, and
// everything else renders as key="value" with the value escaped.
func (a Attrs) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		switch value := a[key].(type) {
		case nil:
			continue
		case bool:
			if !value {
				continue
			}
			parts = append(parts, html.EscapeString(key))
		default:
			var builder strings.Builder
			builder.Grow(len(key) + 16)
			builder.WriteString(html.EscapeString(key))
			builder.WriteString(`="`)
			builder.WriteString(html.EscapeString(attrText(value)))
			builder.WriteString(`"`)
			parts = append(parts, builder.String())
		}
	}
	return strings.Join(parts, " ")
}

// attrText renders a non-boolean attribute value as text. Times fall back to
// RFC 3339; temporal widgets format their values before they reach the set.
func attrText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
