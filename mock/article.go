package mock

import (
	"context"

	"github.com/szmeku/silesiaai"
)

var (
	_ silesiaai.ArticleSource = (*ArticleSource)(nil)
	_ silesiaai.Sanitizer     = (*Sanitizer)(nil)
	_ silesiaai.Renderer      = (*Renderer)(nil)
)

// ArticleSource is a mock implementation of silesiaai.ArticleSource.
type ArticleSource struct {
	FetchArticleFn func(ctx context.Context, url, title string) (*silesiaai.Article, error)
	RenderFn       func(art *silesiaai.Article) (*silesiaai.Document, error)
}

func (s *ArticleSource) FetchArticle(ctx context.Context, url, title string) (*silesiaai.Article, error) {
	return s.FetchArticleFn(ctx, url, title)
}

func (s *ArticleSource) Render(art *silesiaai.Article) (*silesiaai.Document, error) {
	return s.RenderFn(art)
}

// Sanitizer is a mock implementation of silesiaai.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}

// Renderer is a mock implementation of silesiaai.Renderer.
type Renderer struct {
	RenderFn func(title, content, sourceURL string) (string, error)
}

func (r *Renderer) Render(title, content, sourceURL string) (string, error) {
	return r.RenderFn(title, content, sourceURL)
}
