package silesiaai

// Converter converts an HTML fragment to Markdown.
type Converter interface {
	// Convert transforms sanitized article HTML into Markdown.
	Convert(html string) (string, error)
}
