package uiconfig

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML overlay files.
// When fsys is nil or holds no overlay files, the returned store is empty.
// A form id declared by more than one document is an error; overlays do not
// merge across files.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]FormConfig)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isConfigFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uiconfig: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for formID, raw := range doc.Forms {
			id := strings.TrimSpace(formID)
			if id == "" {
				return fmt.Errorf("uiconfig: file %s defines an empty form id", path)
			}
			if _, exists := store.forms[id]; exists {
				return fmt.Errorf("uiconfig: duplicate form %q (file %s)", id, path)
			}

			form, err := normalizeForm(raw, id, path)
			if err != nil {
				return err
			}
			store.forms[id] = form
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Legend string                 `json:"legend" yaml:"legend"`
	Attrs  map[string]any         `json:"attrs" yaml:"attrs"`
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uiconfig: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("uiconfig: parse %s: invalid JSON or YAML", source)
}

func normalizeForm(raw formFile, id, source string) (FormConfig, error) {
	form := FormConfig{
		ID:     id,
		Source: source,
		Legend: raw.Legend,
		Attrs:  cloneAnyMap(raw.Attrs),
		Fields: make(map[string]FieldConfig, len(raw.Fields)),
	}

	for key, cfg := range raw.Fields {
		name := strings.TrimSpace(key)
		if name == "" {
			return FormConfig{}, fmt.Errorf("uiconfig: form %q (file %s) defines an empty field name", id, source)
		}
		if _, exists := form.Fields[name]; exists {
			return FormConfig{}, fmt.Errorf("uiconfig: form %q (file %s) defines duplicate field %q", id, source, name)
		}
		cloned := cfg
		cloned.Attrs = cloneAnyMap(cfg.Attrs)
		form.Fields[name] = cloned
	}

	return form, nil
}

func cloneAnyMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
