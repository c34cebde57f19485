package widgets

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

// Fixed layouts for temporal attribute values. Each temporal widget carries
// exactly one of these; the browser-facing formats never vary per call.
const (
	TimeLayout          = "15:04:05"
	DateLayout          = "2006-01-02"
	DateTimeLocalLayout = "2006-01-02T15:04:05"
	// DateTimeUTCLayout appends a literal Z; values are converted to UTC
	// before formatting.
	DateTimeUTCLayout = "2006-01-02T15:04:05Z"
)

// Input is the base HTML5 input widget. The zero value renders a bare text
// input; the New* constructors configure the input type, the validator kind
// mined for min/max bounds, the temporal layout, and base attribute options.
// Options sit at the lowest precedence: derived attributes override them and
// caller-supplied attributes override both.
type Input struct {
	inputType string
	bounds    fields.Kind
	layout    string
	textual   bool
	options   Attrs
}

func newInput(inputType string, bounds fields.Kind, layout string, textual bool, options []Attrs) Input {
	return Input{
		inputType: inputType,
		bounds:    bounds,
		layout:    layout,
		textual:   textual,
		options:   Attrs{}.Merge(options...),
	}
}

// NewText builds a plain text input deriving minlength, maxlength and
// pattern from the field's validators.
func NewText(options ...Attrs) Input {
	return newInput("text", "", "", true, options)
}

// NewSearch builds a search input.
func NewSearch(options ...Attrs) Input {
	return newInput("search", "", "", true, options)
}

// NewMonth builds a month input.
func NewMonth(options ...Attrs) Input {
	return newInput("month", "", "", false, options)
}

// NewWeek builds a week input.
func NewWeek(options ...Attrs) Input {
	return newInput("week", "", "", false, options)
}

// NewRange builds a range slider deriving min and max from number range
// validators.
func NewRange(options ...Attrs) Input {
	return newInput("range", fields.KindNumberRange, "", false, options)
}

// NewURL builds a url input.
func NewURL(options ...Attrs) Input {
	return newInput("url", "", "", true, options)
}

// NewColor builds a color picker input.
func NewColor(options ...Attrs) Input {
	return newInput("color", "", "", false, options)
}

// NewTel builds a tel input.
func NewTel(options ...Attrs) Input {
	return newInput("tel", "", "", true, options)
}

// NewEmail builds an email input.
func NewEmail(options ...Attrs) Input {
	return newInput("email", "", "", true, options)
}

// NewNumber builds a number input deriving min and max from number range
// validators.
func NewNumber(options ...Attrs) Input {
	return newInput("number", fields.KindNumberRange, "", false, options)
}

// NewTime builds a time input with HH:MM:SS bounds derived from time range
// validators.
func NewTime(options ...Attrs) Input {
	return newInput("time", fields.KindTimeRange, TimeLayout, false, options)
}

// NewDate builds a date input with YYYY-MM-DD bounds derived from date range
// validators.
func NewDate(options ...Attrs) Input {
	return newInput("date", fields.KindDateRange, DateLayout, false, options)
}

// NewDateTimeLocal builds a datetime-local input; bounds and value render
// without a zone designator.
func NewDateTimeLocal(options ...Attrs) Input {
	return newInput("datetime-local", fields.KindDateRange, DateTimeLocalLayout, false, options)
}

// NewDateTime builds a datetime input; bounds and value are normalized to
// UTC and suffixed with Z.
func NewDateTime(options ...Attrs) Input {
	return newInput("datetime", fields.KindDateRange, DateTimeUTCLayout, false, options)
}

// Type returns the input's type attribute default.
func (w Input) Type() string {
	if w.inputType == "" {
		return "text"
	}
	return w.inputType
}

// Render emits the <input> element. Composition order, lowest to highest:
// constructor options, derived attributes, caller attrs. After the merge,
// type, value and id fill in only when still absent, and name always comes
// from the field.
func (w Input) Render(field *fields.Field, attrs Attrs) template.HTML {
	merged := attrs.Clone()

	if field.HasValidator(fields.KindRequired) {
		merged.SetDefault("required", true)
	}
	w.applyBounds(field, merged)
	if w.textual {
		min, max := field.LengthBounds()
		if min != nil {
			merged.SetDefault("minlength", *min)
		}
		if max != nil {
			merged.SetDefault("maxlength", *max)
		}
		if expr := field.PatternExpr(); expr != "" {
			merged.SetDefault("pattern", expr)
		}
	}
	for key, value := range w.options {
		merged.SetDefault(key, value)
	}

	merged.SetDefault("type", w.Type())
	merged.SetDefault("value", w.formatValue(field.Data))
	merged.SetDefault("id", field.HTMLID())
	merged["name"] = field.Name

	var builder strings.Builder
	builder.Grow(len(merged)*24 + 8)
	builder.WriteString(`<input`)
	if params := merged.String(); params != "" {
		builder.WriteByte(' ')
		builder.WriteString(params)
	}
	builder.WriteByte('>')
	return template.HTML(builder.String())
}

// applyBounds mines the configured validator kind for min and max defaults.
// Absent bounds contribute nothing; rendering never fails.
func (w Input) applyBounds(field *fields.Field, attrs Attrs) {
	switch w.bounds {
	case fields.KindNumberRange:
		min, max := field.NumberBounds()
		if min != nil {
			attrs.SetDefault("min", formatNumber(*min))
		}
		if max != nil {
			attrs.SetDefault("max", formatNumber(*max))
		}
	case fields.KindDateRange:
		min, max := field.DateBounds()
		if min != nil {
			attrs.SetDefault("min", w.formatTime(*min))
		}
		if max != nil {
			attrs.SetDefault("max", w.formatTime(*max))
		}
	case fields.KindTimeRange:
		min, max := field.TimeBounds()
		if min != nil {
			attrs.SetDefault("min", w.formatTime(*min))
		}
		if max != nil {
			attrs.SetDefault("max", w.formatTime(*max))
		}
	}
}

func (w Input) formatValue(data any) string {
	switch v := data.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return w.formatTime(v)
	case *time.Time:
		if v == nil {
			return ""
		}
		return w.formatTime(*v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return formatNumber(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (w Input) formatTime(t time.Time) string {
	layout := w.layout
	if layout == "" {
		layout = time.RFC3339
	}
	if layout == DateTimeUTCLayout {
		t = t.UTC()
	}
	return t.Format(layout)
}

// formatNumber renders a float without a trailing .0, so integral bounds
// serialize the way browsers expect.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
