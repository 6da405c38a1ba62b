// Package http provides an HTTP-based implementation of silesiaai.Fetcher
// for pages that do not need JavaScript to expose their content.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/szmeku/silesiaai"
)

const (
	// DefaultFetchTimeout is the default timeout for a single request.
	// Kept consistent with rod.DefaultFetchTimeout (10s).
	DefaultFetchTimeout = 10 * time.Second

	// DefaultMaxBytes caps how much of a response body is read.
	DefaultMaxBytes = 10 << 20

	// DefaultAccept is sent with every request.
	DefaultAccept = "text/html"

	// DefaultUserAgent mimics a desktop browser; listing pages serve a
	// reduced document to unknown clients.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Ensure Fetcher implements silesiaai.Fetcher at compile time.
var _ silesiaai.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page markup with plain HTTP GET requests.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxBytes  int64
	accept    string
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithAccept overrides the Accept header.
func WithAccept(accept string) Option {
	return func(f *Fetcher) {
		f.accept = accept
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBytes limits how many body bytes are read.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// WithClient replaces the underlying HTTP client. The client's own
// Timeout is replaced by the fetcher timeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		maxBytes:  DefaultMaxBytes,
		accept:    DefaultAccept,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	client := &http.Client{}
	if f.client != nil {
		c := *f.client
		client = &c
	}
	client.Timeout = f.timeout
	f.client = client

	return f
}

// Fetch retrieves the body at the given URL.
// Every failure carries code EFETCH. Non-2xx responses wrap a
// *silesiaai.StatusError; transport failures wrap the client error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", silesiaai.WrapErrorf(silesiaai.EFETCH, err, "building request for %s", url)
	}
	if f.accept != "" {
		req.Header.Set("Accept", f.accept)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", silesiaai.WrapErrorf(silesiaai.EFETCH, err, "fetching %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &silesiaai.StatusError{URL: url, StatusCode: resp.StatusCode}
		return "", silesiaai.WrapErrorf(silesiaai.EFETCH, statusErr, "fetching %s", url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", silesiaai.WrapErrorf(silesiaai.EFETCH, err, "reading body of %s", url)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
