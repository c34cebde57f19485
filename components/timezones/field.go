package timezones

import (
	"fmt"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

type Options struct {
	Name            string
	Label           string
	Default         string
	Grouped         bool
	Required        bool
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode

	Zones []string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Name:            "timezone",
		Label:           "Time zone",
		Grouped:         true,
		DefaultLimit:    50,
		MaxLimit:        200,
		EmptySearchMode: EmptySearchNone,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Name == "" {
		opts.Name = "timezone"
	}
	if opts.Label == "" {
		opts.Label = "Time zone"
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 50
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 200
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchNone
	}
	if opts.Zones != nil {
		opts.Zones = append([]string{}, opts.Zones...)
	}
	return opts
}

func WithName(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Name = name
	}
}

func WithLabel(label string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Label = label
	}
}

func WithDefault(zone string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Default = zone
	}
}

func WithGrouped(grouped bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Grouped = grouped
	}
}

func WithRequired(required bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Required = required
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptySearchMode = mode
	}
}

func WithZones(zones []string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if zones == nil {
			o.Zones = nil
			return
		}
		o.Zones = append([]string{}, zones...)
	}
}

// Field builds a ready select field backed by the configured zone list.
// Grouped mode emits one optgroup per region; a Default zone preselects its
// option. The error surfaces only when the embedded list cannot be read.
func Field(fns ...OptionFn) (fields.Field, error) {
	opts := NewOptions(fns...)

	zones := opts.Zones
	if zones == nil {
		loaded, err := DefaultZones()
		if err != nil {
			return fields.Field{}, fmt.Errorf("timezones: load default zones: %w", err)
		}
		zones = loaded
	}

	var entries []fields.ChoiceEntry
	if opts.Grouped {
		entries = GroupedChoices(zones)
	} else {
		entries = Choices(zones)
	}

	field := fields.Field{
		Name:    opts.Name,
		Label:   opts.Label,
		Choices: entries,
	}
	if opts.Default != "" {
		field.Data = opts.Default
	}
	if opts.Required {
		field.Validators = append(field.Validators, fields.Required{})
	}
	return field, nil
}
