// Package fields defines the form field model consumed by widget renderers:
// a Field carries identity, current data, declared validators, and (for
// choice controls) an ordered choice sequence. Validators form a closed
// variant set (Required, NumberRange, DateRange, TimeRange, Length, Pattern)
// that widgets reduce into HTML attributes such as required, min/max and
// minlength/maxlength; nothing in this module ever executes a validator.
// Choice entries form a second closed set (Choice | ChoiceGroup) so select
// renderers can switch over the concrete types instead of sniffing shapes.
// Fields are treated as read-only by every renderer; concurrent renders of
// the same Field are safe as long as the caller does not mutate it.
package fields
