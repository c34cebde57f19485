// Package uiconfig loads presentation overlays for named forms from JSON or
// YAML documents. Overlays adjust how a field renders, its widget, label,
// description, help text, placeholder, read-only and hidden flags, a
// visible_when rule, and extra attributes, without touching the field model
// itself. The store is immutable after loading and safe for concurrent
// readers.
package uiconfig
