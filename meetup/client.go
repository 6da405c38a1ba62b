package meetup

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/szmeku/silesiaai"
	"github.com/szmeku/silesiaai/goquery"
)

// DefaultBaseURL is where group listings are served.
const DefaultBaseURL = "https://www.meetup.com"

// Ensure Client implements the listing interfaces at compile time.
var (
	_ silesiaai.EventSource = (*Client)(nil)
	_ silesiaai.EventLister = (*Client)(nil)
)

// Client extracts group events from meetup.com listing pages.
type Client struct {
	fetcher silesiaai.Fetcher
	baseURL string
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, mostly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithLogger sets the logger that reports failures swallowed by
// PastEvents and UpcomingEvents. Defaults to discarding them.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client that downloads listing pages with fetcher.
func NewClient(fetcher silesiaai.Fetcher, opts ...Option) *Client {
	c := &Client{
		fetcher: fetcher,
		baseURL: DefaultBaseURL,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListingURL returns the events page of group for mode.
func (c *Client) ListingURL(group string, mode silesiaai.ListingMode) string {
	return c.baseURL + "/" + url.PathEscape(group) + "/events/?type=" + url.QueryEscape(string(mode))
}

// FetchEvents fetches the listing of group and extracts its events for
// mode. Every failure is returned to the caller.
func (c *Client) FetchEvents(ctx context.Context, group string, mode silesiaai.ListingMode) ([]*silesiaai.Event, error) {
	if group == "" {
		return nil, silesiaai.Errorf(silesiaai.EINVALID, "group name required")
	}

	html, err := c.fetcher.Fetch(ctx, c.ListingURL(group, mode))
	if err != nil {
		return nil, err
	}

	return ParseEvents(html, group, mode)
}

// PastEvents returns the past events of group. It never fails: any error is
// logged and an empty list is returned.
func (c *Client) PastEvents(ctx context.Context, group string) []*silesiaai.Event {
	return NewLister(c, c.logger).PastEvents(ctx, group)
}

// UpcomingEvents returns the upcoming events of group. Like PastEvents it
// degrades every failure to an empty list.
func (c *Client) UpcomingEvents(ctx context.Context, group string) []*silesiaai.Event {
	return NewLister(c, c.logger).UpcomingEvents(ctx, group)
}

// ParseEvents runs the extraction part of the pipeline on an already
// fetched listing page.
func ParseEvents(html, group string, mode silesiaai.ListingMode) ([]*silesiaai.Event, error) {
	state, err := goquery.LocateState(html)
	if err != nil {
		return nil, err
	}

	edges, err := FindEdges(state, group, mode)
	if err != nil {
		return nil, err
	}

	return Project(state, edges)
}
