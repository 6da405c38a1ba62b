package silesiaai

// ExtractResult holds the readable content isolated from an HTML page.
type ExtractResult struct {
	// Title is the article title found in the page.
	Title string

	// ContentHTML is the main content as HTML with navigation, ads and
	// sidebars removed.
	ContentHTML string
}

// Extractor isolates the main readable content of an HTML page.
type Extractor interface {
	// Extract parses rawHTML and returns its main content. pageURL is used
	// to resolve relative links and may be empty.
	// Returns EEXTRACT when no content block is found.
	Extract(rawHTML, pageURL string) (*ExtractResult, error)
}
