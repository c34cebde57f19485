// Package formrender renders whole forms to HTML. Widgets emit the
// controls, a chrome builder wraps each control with its label,
// description, help text and inline errors, and a pongo2 shell template
// assembles the form tag around them. Presentation overlays come from a
// uiconfig store, class tokens and template overrides from a theme.
package formrender

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formwidgets/pkg/fields"
	"github.com/goliatone/go-formwidgets/pkg/uiconfig"
	"github.com/goliatone/go-formwidgets/pkg/visibility"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// Option configures the renderer during construction.
type Option func(*config)

type config struct {
	registry         *widgets.Registry
	uiConfig         *uiconfig.Store
	theme            *theme.RendererConfig
	templateFS       fs.FS
	templateRenderer TemplateRenderer
	formTemplate     string
}

// WithRegistry supplies the widget registry used to resolve controls.
func WithRegistry(reg *widgets.Registry) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.registry = reg
		}
	}
}

// WithUIConfig supplies presentation overlays applied per form and field.
func WithUIConfig(store *uiconfig.Store) Option {
	return func(cfg *config) {
		cfg.uiConfig = store
	}
}

// WithTheme supplies class tokens, CSS variables and template overrides.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithTemplatesFS supplies an alternate shell template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads shell templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithFormTemplate overrides the shell template name.
func WithFormTemplate(name string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(name)
		if trimmed != "" {
			cfg.formTemplate = trimmed
		}
	}
}

// RenderOptions describe per-request data applied without mutating the
// form.
type RenderOptions struct {
	// Values pre-populates controls by field name, overriding field data for
	// this render only.
	Values map[string]any
	// Errors surfaces server-side validation feedback keyed by field name.
	// Messages under unknown names render as form-level errors.
	Errors map[string][]string
	// ReadOnly wraps every resolved widget in the read-only decorator.
	ReadOnly bool
	// Attrs carries per-field attribute overrides, the highest-precedence
	// layer of attribute composition.
	Attrs map[string]widgets.Attrs
	// Extras feeds visibility rules with context beyond form values, such
	// as user roles or feature flags, under the `extras.` prefix.
	Extras map[string]any
}

// Renderer converts a form into HTML bytes.
type Renderer struct {
	registry     *widgets.Registry
	uiConfig     *uiconfig.Store
	theme        themeContext
	templates    TemplateRenderer
	formTemplate string
}

// New constructs a renderer applying any provided options. Without options
// it renders with the built-in widget registry, no overlays, no theme and
// the embedded shell template.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		formTemplate: "templates/form.tmpl",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.registry == nil {
		cfg.registry = widgets.NewRegistry()
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := NewEngine(
			WithEngineFS(cfg.templateFS),
			WithEngineExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("formrender: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		registry:     cfg.registry,
		uiConfig:     cfg.uiConfig,
		theme:        buildThemeContext(cfg.theme),
		templates:    renderer,
		formTemplate: cfg.formTemplate,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render emits the whole form. Fields render in declaration order; fields
// marked hidden by the uiconfig overlay, or whose visible_when rule
// evaluates false, are skipped. A rule that fails to parse fails the
// render.
func (r *Renderer) Render(ctx context.Context, form fields.Form, opts RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("formrender: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("formrender: render %q: %w", form.Name, err)
	}

	formCfg, _ := r.uiConfig.Form(form.Name)
	mapping := MapErrors(form, opts.Errors)

	rendered := make([]string, 0, len(form.Fields))
	for idx := range form.Fields {
		markup, ok, err := r.renderField(&form.Fields[idx], form.Name, opts, mapping)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		rendered = append(rendered, markup)
	}

	legend := form.Legend
	if formCfg.Legend != "" {
		legend = formCfg.Legend
	}
	method := strings.TrimSpace(form.Method)
	if method == "" {
		method = "post"
	}

	payload := map[string]any{
		"form": map[string]any{
			"name":         form.Name,
			"action":       form.Action,
			"method":       method,
			"legend":       legend,
			"attrs":        widgets.Attrs(formCfg.Attrs).String(),
			"class":        r.theme.classFor("form", defaultFormClass),
			"legend_class": r.theme.classFor("legend", defaultLegendClass),
		},
		"fields":      rendered,
		"errors":      mapping.Form,
		"error_class": r.theme.classFor("error", defaultErrorClass),
		"theme": map[string]any{
			"name":           r.theme.Name,
			"variant":        r.theme.Variant,
			"css_vars_style": r.theme.CSSVarsStyle,
		},
	}

	name := r.theme.partialFor("form", r.formTemplate)
	result, err := r.templates.RenderTemplate(name, payload)
	if err != nil {
		return nil, fmt.Errorf("formrender: render template: %w", err)
	}
	return []byte(result), nil
}

// renderField builds the chrome-wrapped markup for one field. The second
// return is false when the field is configured hidden or its visibility
// rule evaluates false.
func (r *Renderer) renderField(field *fields.Field, formName string, opts RenderOptions, mapping ErrorMapping) (string, bool, error) {
	cfg, _ := r.uiConfig.Field(formName, field.Name)
	if cfg.Hidden {
		return "", false, nil
	}
	if cfg.VisibleWhen != "" {
		visible, err := visibility.Eval(cfg.VisibleWhen, visibility.Context{
			Values: opts.Values,
			Extras: opts.Extras,
		})
		if err != nil {
			return "", false, fmt.Errorf("formrender: visibility rule for %q: %w", field.Name, err)
		}
		if !visible {
			return "", false, nil
		}
	}

	// Work on a copy so overlays and prefills never touch the caller's form.
	fld := *field
	if cfg.Label != "" {
		fld.Label = cfg.Label
	}
	if cfg.Description != "" {
		fld.Description = cfg.Description
	}
	if cfg.Placeholder != "" {
		fld.Placeholder = cfg.Placeholder
	}
	if value, ok := opts.Values[fld.Name]; ok {
		fld.Data = value
	}

	widget := r.widgetFor(&fld, cfg.Widget)
	if opts.ReadOnly || cfg.ReadOnly {
		widget = widgets.NewReadOnly(widget)
	}

	attrs := widgets.Attrs(cfg.Attrs).Merge(opts.Attrs[fld.Name])
	if fld.Placeholder != "" {
		attrs.SetDefault("placeholder", fld.Placeholder)
	}
	fieldErrors := mapping.Fields[fld.Name]
	if len(fieldErrors) > 0 {
		attrs.SetDefault("aria-invalid", "true")
	}

	control := string(widget.Render(&fld, attrs))

	return buildFieldMarkup(fieldChrome{
		field:       &fld,
		control:     control,
		description: sanitizeDescription(fld.Description),
		helpText:    cfg.HelpText,
		errors:      fieldErrors,
		theme:       r.theme,
	}), true, nil
}

func (r *Renderer) widgetFor(field *fields.Field, override string) widgets.Widget {
	if name := strings.TrimSpace(override); name != "" {
		if widget, ok := r.registry.Lookup(name); ok {
			return widget
		}
	}
	return r.registry.For(field)
}
