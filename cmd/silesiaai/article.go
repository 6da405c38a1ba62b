package main

import (
	"fmt"
	"io"

	"github.com/szmeku/silesiaai"
	"github.com/szmeku/silesiaai/fs"
	"github.com/szmeku/silesiaai/htmltomarkdown"
)

// Run executes the article command.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	art, err := deps.Articles.FetchArticle(deps.Ctx, c.URL, c.Title)
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	var content, ext string
	switch c.Format {
	case "markdown":
		content, err = htmltomarkdown.FormatArticle(deps.Converter, art)
		ext = ".md"
	default:
		var doc *silesiaai.Document
		if doc, err = deps.Articles.Render(art); err == nil {
			content = doc.HTML
		}
		ext = ".html"
	}
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	if c.Out == "" {
		_, err := io.WriteString(deps.Stdout, content)
		return err
	}

	path, err := fs.NewWriter(c.Out).Write(deps.Ctx, fs.FileName(art.Title, art.URL, ext), content)
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Saved %q (via %s) to %s\n", art.Title, art.Source, path)
	return nil
}
