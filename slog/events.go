package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/szmeku/silesiaai"
)

// Ensure LoggingEventSource implements silesiaai.EventSource.
var _ silesiaai.EventSource = (*LoggingEventSource)(nil)

// LoggingEventSource wraps an EventSource with logging.
type LoggingEventSource struct {
	next   silesiaai.EventSource
	logger *slog.Logger
}

// NewLoggingEventSource creates a new LoggingEventSource.
func NewLoggingEventSource(next silesiaai.EventSource, logger *slog.Logger) *LoggingEventSource {
	return &LoggingEventSource{next: next, logger: logger}
}

// FetchEvents delegates to the wrapped source and logs the operation.
func (s *LoggingEventSource) FetchEvents(ctx context.Context, group string, mode silesiaai.ListingMode) (events []*silesiaai.Event, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "fetch events",
			"group", group,
			"mode", mode,
			"count", len(events),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchEvents(ctx, group, mode)
}
