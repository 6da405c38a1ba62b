package meetup

import (
	"context"
	"log/slog"

	"github.com/szmeku/silesiaai"
)

// Ensure Lister implements silesiaai.EventLister at compile time.
var _ silesiaai.EventLister = (*Lister)(nil)

// Lister turns an EventSource into the best-effort listing API. A failed
// listing is logged and reported as no events, so callers never have to
// handle scraper breakage.
type Lister struct {
	source silesiaai.EventSource
	logger *slog.Logger
}

// NewLister creates a Lister over source. A nil logger discards reports.
func NewLister(source silesiaai.EventSource, logger *slog.Logger) *Lister {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Lister{source: source, logger: logger}
}

// PastEvents returns the past events of group, or an empty list.
func (l *Lister) PastEvents(ctx context.Context, group string) []*silesiaai.Event {
	return l.list(ctx, group, silesiaai.ListingPast)
}

// UpcomingEvents returns the upcoming events of group, or an empty list.
func (l *Lister) UpcomingEvents(ctx context.Context, group string) []*silesiaai.Event {
	return l.list(ctx, group, silesiaai.ListingUpcoming)
}

func (l *Lister) list(ctx context.Context, group string, mode silesiaai.ListingMode) []*silesiaai.Event {
	events, err := l.source.FetchEvents(ctx, group, mode)
	if err != nil {
		l.logger.Error("fetching meetup events",
			"group", group,
			"mode", string(mode),
			"code", silesiaai.ErrorCode(err),
			"err", err,
		)
		return []*silesiaai.Event{}
	}
	if events == nil {
		return []*silesiaai.Event{}
	}
	return events
}
