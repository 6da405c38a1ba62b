// Package readability isolates the main content of an article page with
// go-readability, a port of Mozilla's Readability.js.
package readability

import (
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/szmeku/silesiaai"
	"golang.org/x/net/html"
)

// DefaultCharThreshold is the number of characters an article must have
// for the first extraction pass to be accepted, as in Readability.js.
const DefaultCharThreshold = 500

// Ensure Extractor implements silesiaai.Extractor at compile time.
var _ silesiaai.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	charThreshold     int
	classesToPreserve []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCharThreshold sets the minimum number of characters per content
// block. Shorter candidates are treated as boilerplate.
func WithCharThreshold(n int) Option {
	return func(e *Extractor) {
		e.charThreshold = n
	}
}

// WithClassesToPreserve keeps the given class names on elements; every
// other class attribute is stripped during cleanup.
func WithClassesToPreserve(classes ...string) Option {
	return func(e *Extractor) {
		e.classesToPreserve = append(e.classesToPreserve, classes...)
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{charThreshold: DefaultCharThreshold}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML into a node tree and runs the readability
// heuristic over it. Returns EINVALID for empty input and EEXTRACT when no
// content block survives.
func (e *Extractor) Extract(rawHTML, pageURL string) (*silesiaai.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, silesiaai.Errorf(silesiaai.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, silesiaai.WrapErrorf(silesiaai.EINVALID, err, "invalid page URL %q", pageURL)
		}
		base = u
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, silesiaai.WrapErrorf(silesiaai.EINVALID, err, "failed to parse HTML")
	}

	parser := readability.NewParser()
	parser.CharThresholds = e.charThreshold
	parser.ClassesToPreserve = e.classesToPreserve

	article, err := parser.ParseDocument(doc, base)
	if err != nil {
		return nil, silesiaai.WrapErrorf(silesiaai.EEXTRACT, err, "readability failed for %s", pageURL)
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, silesiaai.Errorf(silesiaai.EEXTRACT, "no readable content in %s", pageURL)
	}

	return &silesiaai.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
