package formrender

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// themeContext is the template-facing view of a theme selection. Tokens map
// chrome slots (form, legend, field, label, control, description, help,
// error) to class lists; CSSVars render as a :root style block on the form.
type themeContext struct {
	Name         string
	Variant      string
	Partials     map[string]string
	Tokens       map[string]string
	CSSVars      map[string]string
	CSSVarsStyle string
}

func buildThemeContext(cfg *theme.RendererConfig) themeContext {
	if cfg == nil {
		return themeContext{}
	}
	ctx := themeContext{
		Name:     cfg.Theme,
		Variant:  cfg.Variant,
		Partials: copyStringMap(cfg.Partials),
		Tokens:   copyStringMap(cfg.Tokens),
		CSSVars:  copyStringMap(cfg.CSSVars),
	}
	ctx.CSSVarsStyle = cssVarsStyle(ctx.CSSVars)
	return ctx
}

// classFor returns the theme token for a chrome slot, falling back to the
// built-in class list.
func (t themeContext) classFor(slot, fallback string) string {
	if cls := strings.TrimSpace(t.Tokens[slot]); cls != "" {
		return cls
	}
	return fallback
}

// partialFor returns the theme's template override for a slot, or the
// default template name.
func (t themeContext) partialFor(slot, fallback string) string {
	if name := strings.TrimSpace(t.Partials[slot]); name != "" {
		return name
	}
	return fallback
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
