// Package bluemonday neutralizes executable markup from fetched pages and
// renders sanitized articles as self-contained HTML documents.
package bluemonday

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/szmeku/silesiaai"
)

// Ensure Sanitizer implements silesiaai.Sanitizer at compile time.
var _ silesiaai.Sanitizer = (*Sanitizer)(nil)

// Sanitizer applies a bluemonday policy to HTML fragments.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer with the user-generated-content policy:
// text formatting, links, images and tables survive; scripts, styles,
// event handlers and javascript: URLs do not.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	return &Sanitizer{policy: p}
}

// Sanitize returns html with all disallowed elements and attributes removed.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
