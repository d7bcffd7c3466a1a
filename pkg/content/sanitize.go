// Package content normalizes feed entry text. Summaries arrive as HTML
// fragments with entities and markup, the analysis layer wants plain text
// with collapsed whitespace.
package content

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips HTML markup from feed text
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer with a strict policy dropping all tags
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Plain strips tags, resolves HTML entities and collapses runs of
// whitespace to single spaces
func (s *Sanitizer) Plain(text string) string {
	if text == "" {
		return ""
	}
	stripped := s.policy.Sanitize(text)
	unescaped := html.UnescapeString(stripped)
	return strings.Join(strings.Fields(unescaped), " ")
}
