package silesiaai

import "context"

// Fetcher retrieves the raw text behind a URL.
// A failed transport and a non-2xx response are both reported with code
// EFETCH; the cause (a *StatusError for HTTP statuses) is kept for
// diagnostics. Fetchers never retry.
type Fetcher interface {
	// Fetch performs a single GET of url and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
