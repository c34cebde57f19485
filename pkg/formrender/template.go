package formrender

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"
)

// TemplateRenderer renders a named template with the supplied data. Data is
// a map of context values; pre-rendered markup travels as strings the
// template marks safe explicitly.
type TemplateRenderer interface {
	RenderTemplate(name string, data any) (string, error)
}

// EngineOption configures the pongo2 engine before construction.
type EngineOption func(*engineConfig)

type engineConfig struct {
	baseDir   string
	templates fs.FS
	extension string
	globals   map[string]any
}

// WithEngineBaseDir loads templates from a directory on disk.
func WithEngineBaseDir(dir string) EngineOption {
	return func(cfg *engineConfig) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithEngineFS loads templates from an fs.FS.
func WithEngineFS(files fs.FS) EngineOption {
	return func(cfg *engineConfig) {
		cfg.templates = files
	}
}

// WithEngineExtension overrides the default .tmpl extension appended to
// template names.
func WithEngineExtension(ext string) EngineOption {
	return func(cfg *engineConfig) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithEngineGlobals seeds context values available to every template.
func WithEngineGlobals(data map[string]any) EngineOption {
	return func(cfg *engineConfig) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// WithEngineTemplateOptions exists for callers already configured for the
// go-template engine and is currently a no-op.
func WithEngineTemplateOptions(_ ...gotemplatepkg.Option) EngineOption {
	return func(*engineConfig) {}
}

// Engine satisfies TemplateRenderer with a pongo2-backed template set.
// Parsed templates are cached by path; the engine is safe for concurrent
// renders.
type Engine struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
	tplExt      string
}

var _ TemplateRenderer = (*Engine)(nil)

// NewEngine constructs an Engine from the provided options. At least one
// template source, a base directory or an fs.FS, is required.
func NewEngine(options ...EngineOption) (*Engine, error) {
	cfg := &engineConfig{
		extension: ".tmpl",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("formrender: need to provide either base dir or fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("formrender: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	engine := &Engine{
		templateSet: pongo2.NewSet("formwidgets", loaders...),
		templates:   make(map[string]*pongo2.Template),
		tplExt:      cfg.extension,
	}

	if len(cfg.globals) > 0 {
		ctx, err := toContext(cfg.globals)
		if err != nil {
			return nil, fmt.Errorf("formrender: apply globals: %w", err)
		}
		if engine.templateSet.Globals == nil {
			engine.templateSet.Globals = make(pongo2.Context)
		}
		engine.templateSet.Globals.Update(ctx)
	}

	return engine, nil
}

// RenderTemplate loads, caches and executes the named template.
func (e *Engine) RenderTemplate(name string, data any) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("formrender: engine is nil")
	}
	templatePath := name
	if !strings.HasSuffix(templatePath, e.tplExt) {
		templatePath += e.tplExt
	}

	tmpl, err := e.getTemplate(templatePath)
	if err != nil {
		return "", err
	}

	viewContext, err := toContext(data)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer

	e.mu.RLock()
	err = tmpl.ExecuteWriter(viewContext, &buf)
	e.mu.RUnlock()

	if err != nil {
		return "", fmt.Errorf("formrender: execute template %q: %w", templatePath, err)
	}
	return buf.String(), nil
}

func (e *Engine) getTemplate(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}

	tmpl, err := e.templateSet.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("formrender: load template %q: %w", path, err)
	}

	e.templates[path] = tmpl
	return tmpl, nil
}

func toContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	default:
		return nil, fmt.Errorf("formrender: unsupported template data %T", data)
	}
}
