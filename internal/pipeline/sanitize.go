package pipeline

import "github.com/microcosm-cc/bluemonday"

// Sanitizer strips unsafe markup from rendered HTML while keeping what the
// combined document needs: heading and anchor ids, and highlight classes.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer based on bluemonday's UGC policy.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("a", "h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("class").OnElements("pre", "code", "span")
	return &Sanitizer{policy: policy}
}

// Sanitize returns the sanitized HTML fragment.
func (s *Sanitizer) Sanitize(fragment string) string {
	return s.policy.Sanitize(fragment)
}
