// Package formprompt fills forms interactively on a terminal. It walks the
// same field model the HTML renderer consumes, asks one prompt per field,
// re-asks until the declared validators pass, and serializes the collected
// values as a submission payload.
package formprompt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formwidgets/pkg/fields"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// RenderOptions carries the per-session inputs: prefilled values become
// prompt defaults and server errors are announced before the matching field
// is asked again.
type RenderOptions struct {
	Values map[string]any
	Errors map[string][]string
}

// Renderer drives a terminal fill session. The zero driver talks to the
// real terminal; tests swap it for a scripted one.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	transform    SubmitTransformer
}

// New constructs a prompt renderer with defaults (survey driver, JSON
// output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver()
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for every field in order and returns the serialized
// submission payload. Blank input on an optional field keeps the prefilled
// value if one was supplied and otherwise leaves the field out of the
// payload.
func (r *Renderer) Render(ctx context.Context, form fields.Form, opts RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("formprompt: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("formprompt: fill %q: %w", form.Name, err)
	}
	if r.driver == nil {
		return nil, errors.New("formprompt: prompt driver is nil")
	}

	session := NewSession(opts.Values, opts.Errors)
	for idx := range form.Fields {
		if err := r.promptField(ctx, &form.Fields[idx], session); err != nil {
			return nil, err
		}
	}

	values := session.Values()
	if r.transform != nil {
		var err error
		values, err = r.transform(values)
		if err != nil {
			return nil, fmt.Errorf("formprompt: submit transformer: %w", err)
		}
	}

	return r.serialize(values)
}

func (r *Renderer) promptField(ctx context.Context, field *fields.Field, session *Session) error {
	for _, msg := range session.ErrorsFor(field.Name) {
		if err := r.driver.Info(ctx, fmt.Sprintf("%s: %s", promptLabel(field), msg)); err != nil {
			return err
		}
	}

	rules := collectRules(field)
	choices := flatChoices(field.ChoiceEntries())
	switch {
	case isBoolPair(choices):
		return r.promptConfirm(ctx, field, session)
	case len(choices) > 0 && isMultiValued(field, session):
		return r.promptMultiSelect(ctx, field, choices, rules, session)
	case len(choices) > 0:
		return r.promptSelect(ctx, field, choices, session)
	}

	switch field.Format {
	case "password":
		return r.promptPassword(ctx, field, rules, session)
	case widgets.WidgetDate, widgets.WidgetTime, widgets.WidgetDateTimeLocal, widgets.WidgetDateTime:
		return r.promptTemporal(ctx, field, rules, session)
	case widgets.WidgetNumber, widgets.WidgetRange:
		return r.promptNumber(ctx, field, rules, session)
	}
	if field.HasValidator(fields.KindNumberRange) {
		return r.promptNumber(ctx, field, rules, session)
	}
	if field.HasValidator(fields.KindDateRange) || field.HasValidator(fields.KindTimeRange) {
		return r.promptTemporal(ctx, field, rules, session)
	}
	return r.promptText(ctx, field, rules, session)
}

func (r *Renderer) promptText(ctx context.Context, field *fields.Field, rules promptRules, session *Session) error {
	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message: promptLabel(field),
			Default: stringDefault(currentValue(session, field)),
			Help:    promptHelp(field),
		})
		if err != nil {
			return err
		}
		if !rules.required && strings.TrimSpace(response) == "" {
			return nil
		}
		if err := rules.validateString(response); err != nil {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", field.Name, err)); err != nil {
				return err
			}
			continue
		}
		session.SetValue(field.Name, response)
		return nil
	}
}

func (r *Renderer) promptPassword(ctx context.Context, field *fields.Field, rules promptRules, session *Session) error {
	for {
		response, err := r.driver.Password(ctx, InputConfig{
			Message: promptLabel(field),
			Help:    promptHelp(field),
		})
		if err != nil {
			return err
		}
		if !rules.required && response == "" {
			return nil
		}
		if err := rules.validateString(response); err != nil {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", field.Name, err)); err != nil {
				return err
			}
			continue
		}
		session.SetValue(field.Name, response)
		return nil
	}
}

func (r *Renderer) promptConfirm(ctx context.Context, field *fields.Field, session *Session) error {
	def, _ := currentValue(session, field).(bool)
	response, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: promptLabel(field),
		Default: def,
		Help:    promptHelp(field),
	})
	if err != nil {
		return err
	}
	session.SetValue(field.Name, response)
	return nil
}

func (r *Renderer) promptSelect(ctx context.Context, field *fields.Field, choices []fields.Choice, session *Session) error {
	options, values := choiceOptions(choices)
	current := currentValue(session, field)

	defaultIdx := -1
	for i, value := range values {
		if reflect.DeepEqual(value, current) {
			defaultIdx = i
			break
		}
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      promptLabel(field),
			Options:      options,
			DefaultIndex: defaultIdx,
			Help:         promptHelp(field),
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(values) {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s selection", field.Name)); err != nil {
				return err
			}
			continue
		}
		session.SetValue(field.Name, values[idx])
		return nil
	}
}

func (r *Renderer) promptMultiSelect(ctx context.Context, field *fields.Field, choices []fields.Choice, rules promptRules, session *Session) error {
	options, values := choiceOptions(choices)
	defaults := selectedIndices(values, currentValue(session, field))

	for {
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  promptLabel(field),
			Options:  options,
			Defaults: defaults,
			Help:     promptHelp(field),
		})
		if err != nil {
			return err
		}

		selected := make([]any, 0, len(indices))
		for _, idx := range indices {
			if idx >= 0 && idx < len(values) {
				selected = append(selected, values[idx])
			}
		}
		if err := rules.validateCount(len(selected)); err != nil {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", field.Name, err)); err != nil {
				return err
			}
			continue
		}
		session.SetValue(field.Name, selected)
		return nil
	}
}

func (r *Renderer) promptNumber(ctx context.Context, field *fields.Field, rules promptRules, session *Session) error {
	for {
		input, err := r.driver.Input(ctx, InputConfig{
			Message: promptLabel(field),
			Default: stringDefault(currentValue(session, field)),
			Help:    promptHelp(field),
		})
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			if rules.required {
				if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: required", field.Name)); err != nil {
					return err
				}
				continue
			}
			return nil
		}

		if parsed, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			if err := rules.validateNumber(float64(parsed)); err != nil {
				if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", field.Name, err)); err != nil {
					return err
				}
				continue
			}
			session.SetValue(field.Name, parsed)
			return nil
		}

		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: expected a number", field.Name)); err != nil {
				return err
			}
			continue
		}
		if err := rules.validateNumber(parsed); err != nil {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", field.Name, err)); err != nil {
				return err
			}
			continue
		}
		session.SetValue(field.Name, parsed)
		return nil
	}
}

func (r *Renderer) promptTemporal(ctx context.Context, field *fields.Field, rules promptRules, session *Session) error {
	layout, clock := temporalLayout(field)

	var lower, upper *time.Time
	if clock {
		lower, upper = field.TimeBounds()
	} else {
		lower, upper = field.DateBounds()
	}

	for {
		input, err := r.driver.Input(ctx, InputConfig{
			Message: promptLabel(field),
			Default: temporalDefault(currentValue(session, field), layout),
			Help:    promptHelp(field),
		})
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			if rules.required {
				if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: required", field.Name)); err != nil {
					return err
				}
				continue
			}
			return nil
		}

		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: expected %s", field.Name, layout)); err != nil {
				return err
			}
			continue
		}

		// Fixed-width layouts compare correctly as strings, which also
		// sidesteps clock-only bounds carrying arbitrary dates.
		value := parsed.Format(layout)
		if lower != nil && value < formatTemporalBound(*lower, layout) {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: before %s", field.Name, formatTemporalBound(*lower, layout))); err != nil {
				return err
			}
			continue
		}
		if upper != nil && value > formatTemporalBound(*upper, layout) {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: after %s", field.Name, formatTemporalBound(*upper, layout))); err != nil {
				return err
			}
			continue
		}

		session.SetValue(field.Name, value)
		return nil
	}
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(encodeForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyText(values)), nil
	default:
		return json.Marshal(values)
	}
}

func promptLabel(field *fields.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func promptHelp(field *fields.Field) string {
	if h := field.Metadata["cli.help"]; h != "" {
		return h
	}
	return field.Description
}

func currentValue(session *Session, field *fields.Field) any {
	if value, ok := session.Value(field.Name); ok {
		return value
	}
	return field.Data
}

func flatChoices(entries []fields.ChoiceEntry) []fields.Choice {
	var out []fields.Choice
	for _, entry := range entries {
		switch c := entry.(type) {
		case fields.Choice:
			out = append(out, c)
		case fields.ChoiceGroup:
			out = append(out, c.Choices...)
		}
	}
	return out
}

func choiceOptions(choices []fields.Choice) (labels []string, values []any) {
	labels = make([]string, 0, len(choices))
	values = make([]any, 0, len(choices))
	for _, choice := range choices {
		label := choice.Label
		if label == "" {
			label = fmt.Sprint(choice.OptionKey())
		}
		labels = append(labels, label)
		values = append(values, choice.Value)
	}
	return labels, values
}

func isBoolPair(choices []fields.Choice) bool {
	if len(choices) != 2 {
		return false
	}
	for _, choice := range choices {
		if _, ok := choice.Value.(bool); !ok {
			return false
		}
	}
	return true
}

func isMultiValued(field *fields.Field, session *Session) bool {
	if field.Metadata["widget"] == widgets.WidgetSelectMultiple {
		return true
	}
	return isSlice(currentValue(session, field))
}

func isSlice(value any) bool {
	if value == nil {
		return false
	}
	if _, ok := value.([]byte); ok {
		return false
	}
	return reflect.ValueOf(value).Kind() == reflect.Slice
}

func selectedIndices(values []any, current any) []int {
	if !isSlice(current) {
		return nil
	}
	rv := reflect.ValueOf(current)
	var out []int
	for i, value := range values {
		for j := 0; j < rv.Len(); j++ {
			if reflect.DeepEqual(rv.Index(j).Interface(), value) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

func stringDefault(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func temporalLayout(field *fields.Field) (layout string, clock bool) {
	switch field.Format {
	case widgets.WidgetTime:
		return widgets.TimeLayout, true
	case widgets.WidgetDateTimeLocal:
		return widgets.DateTimeLocalLayout, false
	case widgets.WidgetDateTime:
		return widgets.DateTimeUTCLayout, false
	case widgets.WidgetDate:
		return widgets.DateLayout, false
	}
	if field.HasValidator(fields.KindTimeRange) {
		return widgets.TimeLayout, true
	}
	return widgets.DateLayout, false
}

func temporalDefault(value any, layout string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return formatTemporalBound(v, layout)
	default:
		return fmt.Sprint(v)
	}
}

func formatTemporalBound(t time.Time, layout string) string {
	if layout == widgets.DateTimeUTCLayout {
		t = t.UTC()
	}
	return t.Format(layout)
}

type promptRules struct {
	required       bool
	min, max       *float64
	minLen, maxLen *int
	pattern        *regexp.Regexp
}

func collectRules(field *fields.Field) promptRules {
	rules := promptRules{required: field.HasValidator(fields.KindRequired)}
	rules.min, rules.max = field.NumberBounds()
	rules.minLen, rules.maxLen = field.LengthBounds()
	if expr := field.PatternExpr(); expr != "" {
		if re, err := regexp.Compile(expr); err == nil {
			rules.pattern = re
		}
	}
	return rules
}

func (r promptRules) validateString(value string) error {
	if r.required && strings.TrimSpace(value) == "" {
		return errors.New("required")
	}
	if r.minLen != nil && len(value) < *r.minLen {
		return fmt.Errorf("min length %d", *r.minLen)
	}
	if r.maxLen != nil && len(value) > *r.maxLen {
		return fmt.Errorf("max length %d", *r.maxLen)
	}
	if r.pattern != nil && value != "" && !r.pattern.MatchString(value) {
		return errors.New("does not match required pattern")
	}
	return nil
}

func (r promptRules) validateNumber(value float64) error {
	if r.min != nil && value < *r.min {
		return fmt.Errorf("min %v", *r.min)
	}
	if r.max != nil && value > *r.max {
		return fmt.Errorf("max %v", *r.max)
	}
	return nil
}

func (r promptRules) validateCount(count int) error {
	if r.required && count == 0 {
		return errors.New("required")
	}
	if r.minLen != nil && count < *r.minLen {
		return fmt.Errorf("min %d selections", *r.minLen)
	}
	if r.maxLen != nil && count > *r.maxLen {
		return fmt.Errorf("max %d selections", *r.maxLen)
	}
	return nil
}

func encodeForm(values map[string]any) string {
	form := url.Values{}
	for key, value := range values {
		if b, ok := value.([]byte); ok {
			form.Set(key, string(b))
			continue
		}
		if isSlice(value) {
			rv := reflect.ValueOf(value)
			for i := 0; i < rv.Len(); i++ {
				form.Add(key, fmt.Sprint(rv.Index(i).Interface()))
			}
			continue
		}
		form.Set(key, fmt.Sprint(value))
	}
	return form.Encode()
}

func prettyText(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		value := values[key]
		if isSlice(value) {
			rv := reflect.ValueOf(value)
			parts := make([]string, 0, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				parts = append(parts, fmt.Sprint(rv.Index(i).Interface()))
			}
			fmt.Fprintf(&b, "%s: %s\n", key, strings.Join(parts, ", "))
			continue
		}
		fmt.Fprintf(&b, "%s: %v\n", key, value)
	}
	return b.String()
}
