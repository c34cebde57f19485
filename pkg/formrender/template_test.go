package formrender

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testEngine(t *testing.T, files fstest.MapFS, options ...EngineOption) *Engine {
	t.Helper()

	opts := append([]EngineOption{WithEngineFS(files)}, options...)
	engine, err := NewEngine(opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRendersTemplateAndAppendsExtension(t *testing.T) {
	engine := testEngine(t, fstest.MapFS{
		"greet.tmpl": {Data: []byte("hello {{ name }}")},
	})

	out, err := engine.RenderTemplate("greet", map[string]any{"name": "tester"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if out != "hello tester" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEngineEscapesContextValues(t *testing.T) {
	engine := testEngine(t, fstest.MapFS{
		"page.tmpl": {Data: []byte("{{ body }}")},
	})

	out, err := engine.RenderTemplate("page", map[string]any{"body": "<b>hi</b>"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if out != "&lt;b&gt;hi&lt;/b&gt;" {
		t.Fatalf("expected escaped output, got %q", out)
	}
}

func TestEngineSafeFilterPassesMarkupThrough(t *testing.T) {
	engine := testEngine(t, fstest.MapFS{
		"page.tmpl": {Data: []byte("{{ body|safe }}")},
	})

	out, err := engine.RenderTemplate("page", map[string]any{"body": "<b>hi</b>"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if out != "<b>hi</b>" {
		t.Fatalf("expected raw output, got %q", out)
	}
}

func TestEngineGlobalsAvailableToEveryTemplate(t *testing.T) {
	engine := testEngine(t, fstest.MapFS{
		"page.tmpl": {Data: []byte("v{{ version }}")},
	}, WithEngineGlobals(map[string]any{"version": "1"}))

	out, err := engine.RenderTemplate("page", nil)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if out != "v1" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEngineRequiresTemplateSource(t *testing.T) {
	if _, err := NewEngine(); err == nil {
		t.Fatal("expected error when no template source is configured")
	}
}

func TestEngineRejectsUnsupportedData(t *testing.T) {
	engine := testEngine(t, fstest.MapFS{"page.tmpl": {Data: []byte("x")}})

	_, err := engine.RenderTemplate("page", 42)
	if err == nil || !strings.Contains(err.Error(), "unsupported template data") {
		t.Fatalf("expected unsupported data error, got %v", err)
	}
}

func TestEngineMissingTemplate(t *testing.T) {
	engine := testEngine(t, fstest.MapFS{"page.tmpl": {Data: []byte("x")}})

	if _, err := engine.RenderTemplate("absent", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}
