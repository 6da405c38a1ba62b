package article

import (
	"context"
	"strings"

	"github.com/szmeku/silesiaai"
)

// Ensure Pipeline implements silesiaai.ArticleSource at compile time.
var _ silesiaai.ArticleSource = (*Pipeline)(nil)

// Pipeline chains candidate selection, sequential fetching, readable
// content extraction and sanitization. Unlike the listing extractor it
// reports every failure to the caller.
type Pipeline struct {
	selector  *Selector
	fetcher   silesiaai.Fetcher
	extractor silesiaai.Extractor
	sanitizer silesiaai.Sanitizer
	renderer  silesiaai.Renderer
	minLength int
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithSelector replaces the default candidate selector.
func WithSelector(s *Selector) PipelineOption {
	return func(p *Pipeline) {
		p.selector = s
	}
}

// WithMinLength sets the plausibility threshold in characters.
// Defaults to DefaultMinLength.
func WithMinLength(n int) PipelineOption {
	return func(p *Pipeline) {
		p.minLength = n
	}
}

// NewPipeline creates a Pipeline from its collaborators.
func NewPipeline(
	fetcher silesiaai.Fetcher,
	extractor silesiaai.Extractor,
	sanitizer silesiaai.Sanitizer,
	renderer silesiaai.Renderer,
	opts ...PipelineOption,
) *Pipeline {
	p := &Pipeline{
		selector:  NewSelector(),
		fetcher:   fetcher,
		extractor: extractor,
		sanitizer: sanitizer,
		renderer:  renderer,
		minLength: DefaultMinLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FetchArticle retrieves the article at target through the first viable
// candidate and extracts its readable content. A non-blank title replaces
// the extracted one.
func (p *Pipeline) FetchArticle(ctx context.Context, target, title string) (*silesiaai.Article, error) {
	candidates, err := p.selector.Candidates(target)
	if err != nil {
		return nil, err
	}

	src, err := FirstViable(ctx, p.fetcher, candidates, p.minLength)
	if err != nil {
		return nil, err
	}

	result, err := p.extractor.Extract(src.Content, target)
	if err != nil {
		return nil, err
	}

	content := p.sanitizer.Sanitize(result.ContentHTML)
	if strings.TrimSpace(content) == "" {
		return nil, silesiaai.Errorf(silesiaai.EEXTRACT, "no readable content found at %s", target)
	}

	art := &silesiaai.Article{
		Title:   strings.TrimSpace(result.Title),
		Content: content,
		URL:     target,
		Source:  src.Candidate.Name,
	}
	if t := strings.TrimSpace(title); t != "" {
		art.Title = t
	}
	if art.Title == "" {
		art.Title = target
	}
	return art, nil
}

// Render turns an article into the document handed to the sharing surface.
func (p *Pipeline) Render(art *silesiaai.Article) (*silesiaai.Document, error) {
	html, err := p.renderer.Render(art.Title, art.Content, art.URL)
	if err != nil {
		return nil, err
	}
	return &silesiaai.Document{Title: art.Title, HTML: html}, nil
}
