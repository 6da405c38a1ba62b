package etree_test

import (
	"bytes"
	"testing"
	"time"

	beevik "github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/szmeku/silesiaai"
	"github.com/szmeku/silesiaai/etree"
)

func parse(t *testing.T, b []byte) *beevik.Element {
	t.Helper()
	doc := beevik.NewDocument()
	_, err := doc.ReadFrom(bytes.NewReader(b))
	require.NoError(t, err)
	require.NotNil(t, doc.Root())
	return doc.Root()
}

func TestFeedEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("writes one entry per event in order", func(t *testing.T) {
		t.Parallel()

		events := []*silesiaai.Event{
			{
				ID:          "1",
				Title:       "First",
				URL:         "https://www.meetup.com/silesia-ai/events/1/",
				Description: "Intro <b>talk</b>",
				StartTime:   time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC),
				Venue:       &silesiaai.Venue{Name: "Hub", City: "Katowice"},
			},
			{
				ID:        "2",
				Title:     "Second",
				StartTime: time.Date(2024, 2, 10, 18, 0, 0, 0, time.UTC),
			},
		}

		var buf bytes.Buffer
		enc := etree.NewFeedEncoder(
			etree.WithTitle("silesia-ai past events"),
			etree.WithLink("https://www.meetup.com/silesia-ai/events/?type=past"),
		)
		require.NoError(t, enc.Encode(&buf, events))

		root := parse(t, buf.Bytes())
		assert.Equal(t, "feed", root.Tag)
		assert.Equal(t, etree.AtomNamespace, root.SelectAttrValue("xmlns", ""))
		assert.Equal(t, "silesia-ai past events", root.SelectElement("title").Text())
		assert.Equal(t, "https://www.meetup.com/silesia-ai/events/?type=past", root.SelectElement("id").Text())
		assert.Equal(t, "2024-02-10T18:00:00Z", root.SelectElement("updated").Text())

		entries := root.SelectElements("entry")
		require.Len(t, entries, 2)
		assert.Equal(t, "First", entries[0].SelectElement("title").Text())
		assert.Equal(t, "https://www.meetup.com/silesia-ai/events/1/", entries[0].SelectElement("id").Text())
		assert.Equal(t, "Intro <b>talk</b>", entries[0].SelectElement("summary").Text())
		assert.Equal(t, "Hub, Katowice", entries[0].SelectElement("category").SelectAttrValue("term", ""))
		assert.Equal(t, "urn:meetup:event:2", entries[1].SelectElement("id").Text())
	})

	t.Run("empty list uses the clock", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		var buf bytes.Buffer
		enc := etree.NewFeedEncoder(etree.WithNow(func() time.Time { return now }))
		require.NoError(t, enc.Encode(&buf, nil))

		root := parse(t, buf.Bytes())
		assert.Empty(t, root.SelectElements("entry"))
		assert.Equal(t, "2026-05-01T00:00:00Z", root.SelectElement("updated").Text())
		assert.Equal(t, "urn:silesiaai:events", root.SelectElement("id").Text())
	})
}
