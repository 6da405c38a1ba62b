//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/szmeku/silesiaai"
	"github.com/szmeku/silesiaai/rod"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><body><p>ua=` + r.UserAgent() + `</p></body></html>`))
		}))
		defer srv.Close()

		fetcher, err := rod.NewFetcher(rod.WithUserAgent("silesiaai-reader/1.0"))
		require.NoError(t, err)
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, "ua=silesiaai-reader/1.0")
	})

	t.Run("slow page is a fetch failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
			_, _ = w.Write([]byte(`<html><body>late</body></html>`))
		}))
		defer srv.Close()

		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(100 * time.Millisecond))
		require.NoError(t, err)
		defer fetcher.Close()

		_, err = fetcher.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, silesiaai.EFETCH, silesiaai.ErrorCode(err))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("cancelled context opens no page", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = fetcher.Fetch(ctx, "http://example.com")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	require.NoError(t, fetcher.Close())
	require.NoError(t, fetcher.Close())

	_, err = fetcher.Fetch(context.Background(), "http://example.com")

	assert.Equal(t, silesiaai.EINVALID, silesiaai.ErrorCode(err))
	assert.Contains(t, silesiaai.ErrorMessage(err), "closed")
}
