// Package htmltomarkdown renders extracted articles as Markdown for readers
// that prefer plain text over an HTML document.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/szmeku/silesiaai"
)

// Ensure Converter implements silesiaai.Converter at compile time.
var _ silesiaai.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", silesiaai.Errorf(silesiaai.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// FormatArticle renders an article as a Markdown document: a title
// heading, the converted content and a link back to the source.
func FormatArticle(conv silesiaai.Converter, art *silesiaai.Article) (string, error) {
	body, err := conv.Convert(art.Content)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(art.Title)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n\n---\n\nSource: <")
	b.WriteString(art.URL)
	b.WriteString(">\n")
	return b.String(), nil
}
