package silesiaai

import "context"

// SourceCandidate is one way of retrieving a resource: a target URL plus the
// transforms that turn it into a request and the response back into markup.
type SourceCandidate struct {
	// Name identifies the strategy in logs and errors, e.g. "direct".
	Name string

	// URL is the resource the caller asked for.
	URL string

	// Endpoint maps URL to the address actually requested.
	// Nil means URL is requested as is.
	Endpoint func(target string) string

	// Decode unwraps the response body, e.g. a JSON envelope from a proxy.
	// Nil means the body is the markup.
	Decode func(body string) (string, error)
}

// RequestURL returns the address to fetch for this candidate.
func (c SourceCandidate) RequestURL() string {
	if c.Endpoint == nil {
		return c.URL
	}
	return c.Endpoint(c.URL)
}

// Content unwraps a fetched body.
func (c SourceCandidate) Content(body string) (string, error) {
	if c.Decode == nil {
		return body, nil
	}
	return c.Decode(body)
}

// Article is readable content extracted from a page.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"` // sanitized HTML fragment
	URL     string `json:"url"`
	Source  string `json:"source"` // name of the candidate that produced it
}

// Document is a rendered, self-contained output handed to the sharing surface.
type Document struct {
	Title string
	HTML  string
}

// ArticleSource fetches and extracts an article and renders it for hand-off.
type ArticleSource interface {
	// FetchArticle retrieves the article at url. A non-blank title overrides
	// the extracted one.
	FetchArticle(ctx context.Context, url, title string) (*Article, error)

	// Render turns an article into a self-contained document.
	Render(art *Article) (*Document, error)
}

// Sanitizer neutralizes executable markup in an HTML fragment.
type Sanitizer interface {
	Sanitize(html string) string
}

// Renderer produces a self-contained HTML document.
// Implementations must sanitize content and must be pure.
type Renderer interface {
	Render(title, content, sourceURL string) (string, error)
}
