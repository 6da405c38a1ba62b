package ical_test

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/szmeku/silesiaai"
	"github.com/szmeku/silesiaai/ical"
)

var stamp = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func encode(t *testing.T, events ...*silesiaai.Event) string {
	t.Helper()
	var buf bytes.Buffer
	enc := ical.NewEncoder(ical.WithNow(func() time.Time { return stamp }))
	require.NoError(t, enc.Encode(&buf, events))
	return buf.String()
}

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("writes a calendar with one event", func(t *testing.T) {
		t.Parallel()

		warsaw := time.FixedZone("CET", 3600)
		out := encode(t, &silesiaai.Event{
			ID:        "456",
			Title:     "Talk",
			URL:       "https://www.meetup.com/silesia-ai/events/456/",
			StartTime: time.Date(2024, 3, 14, 18, 0, 0, 0, warsaw),
			EndTime:   time.Date(2024, 3, 14, 20, 0, 0, 0, warsaw),
			Venue:     &silesiaai.Venue{Name: "Hub", City: "Katowice"},
		})

		assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\n"))
		assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
		assert.Contains(t, out, "UID:456@meetup.com\r\n")
		assert.Contains(t, out, "DTSTAMP:20260102T030405Z\r\n")
		assert.Contains(t, out, "DTSTART:20240314T170000Z\r\n")
		assert.Contains(t, out, "DTEND:20240314T190000Z\r\n")
		assert.Contains(t, out, "SUMMARY:Talk\r\n")
		assert.Contains(t, out, "LOCATION:Hub\\, Katowice\r\n")
		assert.Contains(t, out, "STATUS:CONFIRMED\r\n")
	})

	t.Run("omits DTEND without an end time", func(t *testing.T) {
		t.Parallel()

		out := encode(t, &silesiaai.Event{ID: "1", Title: "x", StartTime: stamp})

		assert.NotContains(t, out, "DTEND")
	})

	t.Run("skips events without a start time", func(t *testing.T) {
		t.Parallel()

		out := encode(t, &silesiaai.Event{ID: "1", Title: "no date"}, nil)

		assert.NotContains(t, out, "BEGIN:VEVENT")
	})

	t.Run("escapes text and marks cancellations", func(t *testing.T) {
		t.Parallel()

		out := encode(t, &silesiaai.Event{
			ID:          "2",
			Title:       "A; B, C",
			Description: "line one\nline two",
			StartTime:   stamp,
			Status:      silesiaai.EventStatusCancelled,
		})

		assert.Contains(t, out, "SUMMARY:A\\; B\\, C\r\n")
		assert.Contains(t, out, "DESCRIPTION:line one\\nline two\r\n")
		assert.Contains(t, out, "STATUS:CANCELLED\r\n")
	})

	t.Run("marks drafts tentative and online events", func(t *testing.T) {
		t.Parallel()

		out := encode(t, &silesiaai.Event{
			ID:        "4",
			Title:     "Remote talk",
			StartTime: stamp,
			IsOnline:  true,
			Status:    silesiaai.EventStatusDraft,
		})

		assert.Contains(t, out, "LOCATION:Online\r\n")
		assert.Contains(t, out, "STATUS:TENTATIVE\r\n")
	})

	t.Run("uses the configured product id and uid domain", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		enc := ical.NewEncoder(ical.WithProdID("-//test//EN"), ical.WithUIDDomain("example.org"))
		require.NoError(t, enc.Encode(&buf, []*silesiaai.Event{{ID: "9", Title: "x", StartTime: stamp}}))

		assert.Contains(t, buf.String(), "PRODID:-//test//EN\r\n")
		assert.Contains(t, buf.String(), "UID:9@example.org\r\n")
	})

	t.Run("folds long lines", func(t *testing.T) {
		t.Parallel()

		out := encode(t, &silesiaai.Event{
			ID:          "3",
			Title:       "long",
			Description: strings.Repeat("ż", 100),
			StartTime:   stamp,
		})

		for _, line := range strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n") {
			assert.True(t, utf8.ValidString(line), line)
		}
		assert.Contains(t, out, "\r\n ")
		unfolded := strings.ReplaceAll(out, "\r\n ", "")
		assert.Contains(t, unfolded, "DESCRIPTION:"+strings.Repeat("ż", 100)+"\r\n")
	})
}
