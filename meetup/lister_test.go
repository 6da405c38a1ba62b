package meetup_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/szmeku/silesiaai"
	"github.com/szmeku/silesiaai/meetup"
	"github.com/szmeku/silesiaai/mock"
)

func TestLister(t *testing.T) {
	t.Parallel()

	t.Run("asks the source for the matching mode", func(t *testing.T) {
		t.Parallel()

		var modes []silesiaai.ListingMode
		source := &mock.EventSource{
			FetchEventsFn: func(_ context.Context, _ string, mode silesiaai.ListingMode) ([]*silesiaai.Event, error) {
				modes = append(modes, mode)
				return []*silesiaai.Event{{ID: string(mode)}}, nil
			},
		}
		lister := meetup.NewLister(source, nil)

		past := lister.PastEvents(context.Background(), "silesia-ai")
		upcoming := lister.UpcomingEvents(context.Background(), "silesia-ai")

		assert.Equal(t, []silesiaai.ListingMode{silesiaai.ListingPast, silesiaai.ListingUpcoming}, modes)
		assert.Equal(t, "past", past[0].ID)
		assert.Equal(t, "upcoming", upcoming[0].ID)
	})

	t.Run("logs a failure and lists nothing", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		source := &mock.EventSource{
			FetchEventsFn: func(context.Context, string, silesiaai.ListingMode) ([]*silesiaai.Event, error) {
				return nil, silesiaai.Errorf(silesiaai.ENOCOLLECTION, "no upcoming events collection")
			},
		}
		lister := meetup.NewLister(source, slog.New(slog.NewTextHandler(&logs, nil)))

		events := lister.UpcomingEvents(context.Background(), "silesia-ai")

		assert.NotNil(t, events)
		assert.Empty(t, events)
		assert.Contains(t, logs.String(), "code="+silesiaai.ENOCOLLECTION)
		assert.Contains(t, logs.String(), "mode=upcoming")
	})

	t.Run("nil result becomes an empty list", func(t *testing.T) {
		t.Parallel()

		source := &mock.EventSource{
			FetchEventsFn: func(context.Context, string, silesiaai.ListingMode) ([]*silesiaai.Event, error) {
				return nil, nil
			},
		}

		events := meetup.NewLister(source, nil).PastEvents(context.Background(), "g")

		assert.NotNil(t, events)
		assert.Empty(t, events)
	})
}
