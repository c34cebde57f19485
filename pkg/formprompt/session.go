package formprompt

// Session tracks collected values and server-provided errors keyed by field
// name. Prefilled values are deep-copied so the fill loop never mutates
// caller state.
type Session struct {
	values map[string]any
	errors map[string][]string
}

// NewSession seeds the session with prefilled values and errors.
func NewSession(prefill map[string]any, errs map[string][]string) *Session {
	return &Session{
		values: cloneValues(prefill),
		errors: cloneErrors(errs),
	}
}

// Values returns the collected value map.
func (s *Session) Values() map[string]any {
	if s == nil {
		return nil
	}
	return s.values
}

// Value resolves a collected value by field name.
func (s *Session) Value(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	value, ok := s.values[name]
	return value, ok
}

// SetValue records a collected value.
func (s *Session) SetValue(name string, value any) {
	if s == nil {
		return
	}
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[name] = value
}

// ErrorsFor returns the server errors attached to a field.
func (s *Session) ErrorsFor(name string) []string {
	if s == nil || len(s.errors) == 0 {
		return nil
	}
	return s.errors[name]
}

func cloneValues(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = deepCopy(v)
	}
	return out
}

func cloneErrors(src map[string][]string) map[string][]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string][]string, len(src))
	for k, v := range src {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func deepCopy(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		clone := make(map[string]any, len(typed))
		for k, v := range typed {
			clone[k] = deepCopy(v)
		}
		return clone
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = deepCopy(v)
		}
		return clone
	case []string:
		clone := make([]string, len(typed))
		copy(clone, typed)
		return clone
	default:
		return typed
	}
}
