package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/szmeku/silesiaai"
)

// Ensure LoggingArticleSource implements silesiaai.ArticleSource.
var _ silesiaai.ArticleSource = (*LoggingArticleSource)(nil)

// LoggingArticleSource wraps an ArticleSource with logging.
type LoggingArticleSource struct {
	next   silesiaai.ArticleSource
	logger *slog.Logger
}

// NewLoggingArticleSource creates a new LoggingArticleSource.
func NewLoggingArticleSource(next silesiaai.ArticleSource, logger *slog.Logger) *LoggingArticleSource {
	return &LoggingArticleSource{next: next, logger: logger}
}

// FetchArticle delegates to the wrapped source and logs which candidate
// produced the article.
func (s *LoggingArticleSource) FetchArticle(ctx context.Context, url, title string) (art *silesiaai.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
		}
		if art != nil {
			attrs = append(attrs, "source", art.Source, "title", art.Title, "bytes", len(art.Content))
		}
		if err != nil {
			attrs = append(attrs, "code", silesiaai.ErrorCode(err), "err", err)
			s.logger.ErrorContext(ctx, "fetch article", attrs...)
			return
		}
		s.logger.InfoContext(ctx, "fetch article", attrs...)
	}(time.Now())
	return s.next.FetchArticle(ctx, url, title)
}

// Render delegates to the wrapped source and logs the document size.
func (s *LoggingArticleSource) Render(art *silesiaai.Article) (doc *silesiaai.Document, err error) {
	defer func() {
		attrs := []any{"url", art.URL}
		if doc != nil {
			attrs = append(attrs, "bytes", len(doc.HTML))
		}
		if err != nil {
			attrs = append(attrs, "err", err)
			s.logger.Error("render article", attrs...)
			return
		}
		s.logger.Debug("render article", attrs...)
	}()
	return s.next.Render(art)
}
