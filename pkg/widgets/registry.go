package widgets

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetText           = "text"
	WidgetSearch         = "search"
	WidgetMonth          = "month"
	WidgetWeek           = "week"
	WidgetRange          = "range"
	WidgetURL            = "url"
	WidgetColor          = "color"
	WidgetTel            = "tel"
	WidgetEmail          = "email"
	WidgetNumber         = "number"
	WidgetTime           = "time"
	WidgetDate           = "date"
	WidgetDateTimeLocal  = "datetime-local"
	WidgetDateTime       = "datetime"
	WidgetSelect         = "select"
	WidgetSelectMultiple = "select-multiple"
)

// Matcher decides whether a named widget should handle the supplied field.
type Matcher func(field *fields.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry pairs named widget instances with prioritized selection rules.
// Explicit Metadata["widget"] hints are honoured before matcher evaluation;
// among matchers, higher priority wins and ties fall back to registration
// order. The zero value is unusable; construct with NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	widgets map[string]Widget
	rules   []rule
}

// NewRegistry constructs a registry with the built-in widget family and its
// matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{widgets: make(map[string]Widget)}
	reg.registerBuiltins()
	return reg
}

// Register binds a widget instance to a name, replacing any existing entry.
func (r *Registry) Register(name string, widget Widget) {
	if r == nil || widget == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.widgets[trimmed] = widget
}

// RegisterMatcher adds a selection rule for the named widget. Higher
// priority values take precedence during resolution.
func (r *Registry) RegisterMatcher(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Lookup returns the widget instance registered under name.
func (r *Registry) Lookup(name string) (Widget, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	widget, ok := r.widgets[strings.TrimSpace(name)]
	return widget, ok
}

// Names lists the registered widget names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.widgets))
	for name := range r.widgets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the widget name for a field. An explicit
// Metadata["widget"] hint wins even when no widget is registered under that
// name; otherwise matchers run in priority order.
func (r *Registry) Resolve(field *fields.Field) (string, bool) {
	if field == nil {
		return "", false
	}
	if hint := strings.TrimSpace(field.Metadata["widget"]); hint != "" {
		return hint, true
	}
	if r == nil {
		return "", false
	}

	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// For resolves a field to a widget instance, falling back to a plain text
// input when nothing matches or the resolved name is unregistered.
func (r *Registry) For(field *fields.Field) Widget {
	if name, ok := r.Resolve(field); ok {
		if widget, ok := r.Lookup(name); ok {
			return widget
		}
	}
	return NewText()
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetText, NewText())
	r.Register(WidgetSearch, NewSearch())
	r.Register(WidgetMonth, NewMonth())
	r.Register(WidgetWeek, NewWeek())
	r.Register(WidgetRange, NewRange())
	r.Register(WidgetURL, NewURL())
	r.Register(WidgetColor, NewColor())
	r.Register(WidgetTel, NewTel())
	r.Register(WidgetEmail, NewEmail())
	r.Register(WidgetNumber, NewNumber())
	r.Register(WidgetTime, NewTime())
	r.Register(WidgetDate, NewDate())
	r.Register(WidgetDateTimeLocal, NewDateTimeLocal())
	r.Register(WidgetDateTime, NewDateTime())
	r.Register(WidgetSelect, Select{})
	r.Register(WidgetSelectMultiple, Select{Multiple: true})

	r.RegisterMatcher(WidgetSelectMultiple, 95, func(field *fields.Field) bool {
		return len(field.ChoiceEntries()) > 0 && sliceData(field.Data)
	})

	r.RegisterMatcher(WidgetSelect, 90, func(field *fields.Field) bool {
		return len(field.ChoiceEntries()) > 0
	})

	for _, name := range []string{
		WidgetSearch, WidgetMonth, WidgetWeek, WidgetRange, WidgetURL,
		WidgetColor, WidgetTel, WidgetEmail, WidgetNumber, WidgetTime,
		WidgetDate, WidgetDateTimeLocal, WidgetDateTime,
	} {
		r.RegisterMatcher(name, 80, formatMatcher(name))
	}

	r.RegisterMatcher(WidgetNumber, 70, func(field *fields.Field) bool {
		return field.HasValidator(fields.KindNumberRange)
	})

	r.RegisterMatcher(WidgetDate, 60, func(field *fields.Field) bool {
		return field.HasValidator(fields.KindDateRange)
	})

	r.RegisterMatcher(WidgetTime, 60, func(field *fields.Field) bool {
		return field.HasValidator(fields.KindTimeRange)
	})
}

func formatMatcher(name string) Matcher {
	return func(field *fields.Field) bool {
		return strings.EqualFold(strings.TrimSpace(field.Format), name)
	}
}

// sliceData reports whether the field data marks multi-valued selection.
// Byte slices stay scalar; they read as raw text, not value lists.
func sliceData(data any) bool {
	if data == nil {
		return false
	}
	if _, ok := data.([]byte); ok {
		return false
	}
	return reflect.ValueOf(data).Kind() == reflect.Slice
}
