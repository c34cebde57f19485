package fields

import "time"

// Kind discriminates the closed set of validator variants. Rendering code
// switches on it exhaustively, so adding a kind means revisiting every
// switch rather than silently falling through.
type Kind string

const (
	KindRequired    Kind = "required"
	KindNumberRange Kind = "number-range"
	KindDateRange   Kind = "date-range"
	KindTimeRange   Kind = "time-range"
	KindLength      Kind = "length"
	KindPattern     Kind = "pattern"
)

// Validator is a declared constraint attached to a field. The implementation
// set is closed: Required, NumberRange, DateRange, TimeRange, Length and
// Pattern, all small value types attached by value. Widgets only read
// validators to derive attributes.
type Validator interface {
	Kind() Kind
	sealedValidator()
}

// Required marks a field as mandatory.
type Required struct{}

func (Required) Kind() Kind       { return KindRequired }
func (Required) sealedValidator() {}

// NumberRange bounds numeric input. Nil sides are unbounded.
type NumberRange struct {
	Min *float64
	Max *float64
}

func (NumberRange) Kind() Kind       { return KindNumberRange }
func (NumberRange) sealedValidator() {}

// DateRange bounds calendar input. Nil sides are unbounded.
type DateRange struct {
	Min *time.Time
	Max *time.Time
}

func (DateRange) Kind() Kind       { return KindDateRange }
func (DateRange) sealedValidator() {}

// TimeRange bounds time-of-day input. Nil sides are unbounded.
type TimeRange struct {
	Min *time.Time
	Max *time.Time
}

func (TimeRange) Kind() Kind       { return KindTimeRange }
func (TimeRange) sealedValidator() {}

// Length bounds the character count of textual input. Nil sides are
// unbounded.
type Length struct {
	Min *int
	Max *int
}

func (Length) Kind() Kind       { return KindLength }
func (Length) sealedValidator() {}

// Pattern constrains textual input to a regular expression.
type Pattern struct {
	Expr string
}

func (Pattern) Kind() Kind       { return KindPattern }
func (Pattern) sealedValidator() {}

// HasValidator reports whether the field carries a validator of the given
// kind.
func (f *Field) HasValidator(kind Kind) bool {
	for _, v := range f.Validators {
		if v != nil && v.Kind() == kind {
			return true
		}
	}
	return false
}

// NumberBounds reduces every NumberRange validator on the field into the
// tightest bound: the largest declared minimum and the smallest declared
// maximum. A side nobody declares comes back nil. Bounds are copied, so the
// caller never aliases validator internals.
func (f *Field) NumberBounds() (min, max *float64) {
	for _, v := range f.Validators {
		nr, ok := v.(NumberRange)
		if !ok {
			continue
		}
		if nr.Min != nil && (min == nil || *nr.Min > *min) {
			value := *nr.Min
			min = &value
		}
		if nr.Max != nil && (max == nil || *nr.Max < *max) {
			value := *nr.Max
			max = &value
		}
	}
	return min, max
}

// DateBounds applies the tightest-bound reduction to DateRange validators.
func (f *Field) DateBounds() (min, max *time.Time) {
	return f.temporalBounds(KindDateRange)
}

// TimeBounds applies the tightest-bound reduction to TimeRange validators.
func (f *Field) TimeBounds() (min, max *time.Time) {
	return f.temporalBounds(KindTimeRange)
}

func (f *Field) temporalBounds(kind Kind) (min, max *time.Time) {
	for _, v := range f.Validators {
		var lo, hi *time.Time
		switch r := v.(type) {
		case DateRange:
			if kind != KindDateRange {
				continue
			}
			lo, hi = r.Min, r.Max
		case TimeRange:
			if kind != KindTimeRange {
				continue
			}
			lo, hi = r.Min, r.Max
		default:
			continue
		}
		if lo != nil && (min == nil || lo.After(*min)) {
			value := *lo
			min = &value
		}
		if hi != nil && (max == nil || hi.Before(*max)) {
			value := *hi
			max = &value
		}
	}
	return min, max
}

// LengthBounds reduces Length validators into the tightest character-count
// bound, mirroring NumberBounds.
func (f *Field) LengthBounds() (min, max *int) {
	for _, v := range f.Validators {
		lr, ok := v.(Length)
		if !ok {
			continue
		}
		if lr.Min != nil && (min == nil || *lr.Min > *min) {
			value := *lr.Min
			min = &value
		}
		if lr.Max != nil && (max == nil || *lr.Max < *max) {
			value := *lr.Max
			max = &value
		}
	}
	return min, max
}

// PatternExpr returns the first non-empty Pattern validator expression.
// HTML pattern attributes cannot intersect, so later declarations are
// ignored.
func (f *Field) PatternExpr() string {
	for _, v := range f.Validators {
		if p, ok := v.(Pattern); ok && p.Expr != "" {
			return p.Expr
		}
	}
	return ""
}

// Float64Ptr builds an optional numeric bound in place.
func Float64Ptr(v float64) *float64 { return &v }

// IntPtr builds an optional length bound in place.
func IntPtr(v int) *int { return &v }

// TimePtr builds an optional temporal bound in place.
func TimePtr(v time.Time) *time.Time { return &v }
