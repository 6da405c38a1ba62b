package mock

import "github.com/szmeku/silesiaai"

var _ silesiaai.Converter = (*Converter)(nil)

// Converter is a mock implementation of silesiaai.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
