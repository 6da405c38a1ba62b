package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/szmeku/silesiaai"
	silhttp "github.com/szmeku/silesiaai/http"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := silhttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends accept and user agent headers", func(t *testing.T) {
		t.Parallel()

		var accept, ua string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accept = r.Header.Get("Accept")
			ua = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := silhttp.NewFetcher(silhttp.WithUserAgent("silesiaai-test/1.0"))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, silhttp.DefaultAccept, accept)
		assert.Equal(t, "silesiaai-test/1.0", ua)
	})

	t.Run("default user agent looks like a browser", func(t *testing.T) {
		t.Parallel()

		var ua string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua = r.Header.Get("User-Agent")
		}))
		defer server.Close()

		fetcher := silhttp.NewFetcher(silhttp.WithAccept("application/json"))
		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ua, "Mozilla/5.0"))
	})

	t.Run("truncates body at max bytes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("0123456789"))
		}))
		defer server.Close()

		fetcher := silhttp.NewFetcher(silhttp.WithMaxBytes(4))
		body, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "0123", body)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := silhttp.NewFetcher(silhttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, silesiaai.EFETCH, silesiaai.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := silhttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("transport failure has no status", func(t *testing.T) {
		t.Parallel()

		fetcher := silhttp.NewFetcher(silhttp.WithTimeout(100 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, silesiaai.EFETCH, silesiaai.ErrorCode(err))

		var statusErr *silesiaai.StatusError
		assert.False(t, errors.As(err, &statusErr))
	})

	t.Run("non-2xx status carries the status code", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		fetcher := silhttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, silesiaai.EFETCH, silesiaai.ErrorCode(err))
		assert.Contains(t, err.Error(), "404")

		var statusErr *silesiaai.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})
}

// Compile-time verification that Fetcher implements silesiaai.Fetcher
var _ silesiaai.Fetcher = (*silhttp.Fetcher)(nil)
