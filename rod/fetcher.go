// Package rod fetches script-rendered pages with a headless Chrome.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/szmeku/silesiaai"
)

// DefaultFetchTimeout bounds navigation plus load of a single page.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements silesiaai.Fetcher at compile time.
var _ silesiaai.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	timeout   time.Duration
	userAgent string
	stealth   bool
	closed    atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser's User-Agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithStealth opens pages with evasions that hide headless automation
// from bot checks.
func WithStealth(enabled bool) Option {
	return func(f *Fetcher) {
		f.stealth = enabled
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", silesiaai.Errorf(silesiaai.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.newPage()
	if err != nil {
		return "", silesiaai.WrapErrorf(silesiaai.EFETCH, err, "opening page for %s", url)
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", silesiaai.WrapErrorf(silesiaai.EFETCH, err, "setting user agent for %s", url)
		}
	}
	if err := page.Navigate(url); err != nil {
		return "", silesiaai.WrapErrorf(silesiaai.EFETCH, err, "navigating to %s", url)
	}
	if err := page.WaitLoad(); err != nil {
		return "", silesiaai.WrapErrorf(silesiaai.EFETCH, err, "loading %s", url)
	}

	html, err := page.HTML()
	if err != nil {
		return "", silesiaai.WrapErrorf(silesiaai.EFETCH, err, "reading %s", url)
	}
	return html, nil
}

func (f *Fetcher) newPage() (*rod.Page, error) {
	if f.stealth {
		return stealth.Page(f.browser)
	}
	return f.browser.Page(proto.TargetCreateTarget{})
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}
