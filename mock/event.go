package mock

import (
	"context"
	"io"

	"github.com/szmeku/silesiaai"
)

var (
	_ silesiaai.EventSource  = (*EventSource)(nil)
	_ silesiaai.EventLister  = (*EventLister)(nil)
	_ silesiaai.EventEncoder = (*EventEncoder)(nil)
)

// EventSource is a mock implementation of silesiaai.EventSource.
type EventSource struct {
	FetchEventsFn func(ctx context.Context, group string, mode silesiaai.ListingMode) ([]*silesiaai.Event, error)
}

func (s *EventSource) FetchEvents(ctx context.Context, group string, mode silesiaai.ListingMode) ([]*silesiaai.Event, error) {
	return s.FetchEventsFn(ctx, group, mode)
}

// EventLister is a mock implementation of silesiaai.EventLister.
type EventLister struct {
	PastEventsFn     func(ctx context.Context, group string) []*silesiaai.Event
	UpcomingEventsFn func(ctx context.Context, group string) []*silesiaai.Event
}

func (l *EventLister) PastEvents(ctx context.Context, group string) []*silesiaai.Event {
	return l.PastEventsFn(ctx, group)
}

func (l *EventLister) UpcomingEvents(ctx context.Context, group string) []*silesiaai.Event {
	return l.UpcomingEventsFn(ctx, group)
}

// EventEncoder is a mock implementation of silesiaai.EventEncoder.
type EventEncoder struct {
	EncodeFn func(w io.Writer, events []*silesiaai.Event) error
}

func (e *EventEncoder) Encode(w io.Writer, events []*silesiaai.Event) error {
	return e.EncodeFn(w, events)
}
