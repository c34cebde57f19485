package formwidgets

import (
	"context"
	"time"

	"github.com/goliatone/go-formwidgets/pkg/fields"
	"github.com/goliatone/go-formwidgets/pkg/formrender"
	"github.com/goliatone/go-formwidgets/pkg/openapi"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// Field models a single form control; see pkg/fields for details.
type Field = fields.Field

// Form groups ordered fields under a name plus form tag metadata.
type Form = fields.Form

// Validator is a declared constraint widgets mine for HTML attributes.
type Validator = fields.Validator

// Validator variants re-exported for convenience.
type (
	Required    = fields.Required
	NumberRange = fields.NumberRange
	DateRange   = fields.DateRange
	TimeRange   = fields.TimeRange
	Length      = fields.Length
	Pattern     = fields.Pattern
)

// Choice entry variants for choice fields.
type (
	ChoiceEntry = fields.ChoiceEntry
	Choice      = fields.Choice
	ChoiceGroup = fields.ChoiceGroup
)

// Attrs collects HTML attributes for a control render.
type Attrs = widgets.Attrs

// RenderOptions carries per-request values, errors and attribute overrides.
type RenderOptions = formrender.RenderOptions

// Option configures the renderer constructed by the render helpers.
type Option = formrender.Option

// NewChoice builds a choice whose key and value are the same.
func NewChoice(value any, label string) Choice {
	return fields.NewChoice(value, label)
}

// Float64Ptr builds an optional numeric bound in place.
func Float64Ptr(v float64) *float64 { return fields.Float64Ptr(v) }

// IntPtr builds an optional length bound in place.
func IntPtr(v int) *int { return fields.IntPtr(v) }

// TimePtr builds an optional temporal bound in place.
func TimePtr(v time.Time) *time.Time { return fields.TimePtr(v) }

// RenderHTML renders a form through a default pipeline: built-in widget
// registry, embedded shell template, no theme. Options customise the
// renderer the same way formrender.New does.
func RenderHTML(ctx context.Context, form Form, opts RenderOptions, options ...Option) ([]byte, error) {
	renderer, err := formrender.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, form, opts)
}

// RenderOperationHTML imports the named operation's request schema from an
// OpenAPI document and renders the resulting form. It is the shortest path
// from a schema file to form markup.
func RenderOperationHTML(ctx context.Context, document []byte, operationID string, opts RenderOptions, options ...Option) ([]byte, error) {
	form, err := openapi.OperationForm(ctx, document, operationID)
	if err != nil {
		return nil, err
	}
	return RenderHTML(ctx, form, opts, options...)
}
