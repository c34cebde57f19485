package formrender

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// sanitizeDescription reduces field descriptions to the limited inline
// markup the chrome inserts unescaped: emphasis, small, code and links.
// Everything else is stripped.
func sanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	policy := descriptionSanitizer()
	cleaned := strings.TrimSpace(policy.Sanitize(trimmed))
	if cleaned == "" {
		return ""
	}
	return cleaned
}

func descriptionSanitizer() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "i", "em", "strong", "small", "code")
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(true)

		descriptionPolicy = policy
	})
	return descriptionPolicy
}
