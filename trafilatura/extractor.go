// Package trafilatura provides a silesiaai.Extractor backed by go-trafilatura,
// which combines its own heuristics with readability and dom-distiller fallbacks.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/szmeku/silesiaai"
	"golang.org/x/net/html"
)

// Ensure Extractor implements silesiaai.Extractor at compile time.
var _ silesiaai.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	includeImages bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithImages keeps images in the extracted content.
func WithImages() Option {
	return func(e *Extractor) {
		e.includeImages = true
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML, pageURL string) (*silesiaai.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, silesiaai.Errorf(silesiaai.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeImages:  e.includeImages,
	}
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, silesiaai.WrapErrorf(silesiaai.EINVALID, err, "invalid page URL %q", pageURL)
		}
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, silesiaai.WrapErrorf(silesiaai.EEXTRACT, err, "trafilatura failed for %s", pageURL)
	}
	if result.ContentNode == nil || strings.TrimSpace(result.ContentText) == "" {
		return nil, silesiaai.Errorf(silesiaai.EEXTRACT, "no readable content in %s", pageURL)
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &silesiaai.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
