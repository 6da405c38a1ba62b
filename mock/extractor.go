package mock

import "github.com/szmeku/silesiaai"

var _ silesiaai.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of silesiaai.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML, pageURL string) (*silesiaai.ExtractResult, error)
}

func (e *Extractor) Extract(rawHTML, pageURL string) (*silesiaai.ExtractResult, error) {
	return e.ExtractFn(rawHTML, pageURL)
}
