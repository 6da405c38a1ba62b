// Package etree encodes event lists as Atom feeds so a group's listing can
// be followed from any feed reader.
package etree

import (
	"io"
	"time"

	"github.com/beevik/etree"
	"github.com/szmeku/silesiaai"
)

// AtomNamespace is the Atom 1.0 XML namespace.
const AtomNamespace = "http://www.w3.org/2005/Atom"

// Ensure FeedEncoder implements silesiaai.EventEncoder at compile time.
var _ silesiaai.EventEncoder = (*FeedEncoder)(nil)

// FeedEncoder writes events as Atom entries.
type FeedEncoder struct {
	title string
	id    string
	link  string
	now   func() time.Time
}

// Option configures a FeedEncoder.
type Option func(*FeedEncoder)

// WithTitle sets the feed title.
func WithTitle(title string) Option {
	return func(e *FeedEncoder) {
		e.title = title
	}
}

// WithLink sets the feed's alternate link and, unless WithID is given,
// its id.
func WithLink(link string) Option {
	return func(e *FeedEncoder) {
		e.link = link
	}
}

// WithID sets the feed id.
func WithID(id string) Option {
	return func(e *FeedEncoder) {
		e.id = id
	}
}

// WithNow sets the clock used for the feed's updated element when there
// are no entries.
func WithNow(now func() time.Time) Option {
	return func(e *FeedEncoder) {
		e.now = now
	}
}

// NewFeedEncoder creates a new FeedEncoder.
func NewFeedEncoder(opts ...Option) *FeedEncoder {
	e := &FeedEncoder{
		title: "Events",
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.id == "" {
		e.id = e.link
	}
	if e.id == "" {
		e.id = "urn:silesiaai:events"
	}
	return e
}

// Encode writes an indented Atom document. Entries keep the order of
// events; the feed's updated element is the latest event start.
func (e *FeedEncoder) Encode(w io.Writer, events []*silesiaai.Event) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	feed := doc.CreateElement("feed")
	feed.CreateAttr("xmlns", AtomNamespace)
	feed.CreateElement("title").SetText(e.title)
	feed.CreateElement("id").SetText(e.id)
	if e.link != "" {
		link := feed.CreateElement("link")
		link.CreateAttr("rel", "alternate")
		link.CreateAttr("href", e.link)
	}
	updated := feed.CreateElement("updated")

	var latest time.Time
	for _, evt := range events {
		if evt == nil {
			continue
		}
		if evt.StartTime.After(latest) {
			latest = evt.StartTime
		}
		addEntry(feed, evt)
	}
	if latest.IsZero() {
		latest = e.now()
	}
	updated.SetText(formatTime(latest))

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return silesiaai.WrapErrorf(silesiaai.EINTERNAL, err, "writing feed")
	}
	return nil
}

func addEntry(feed *etree.Element, evt *silesiaai.Event) {
	entry := feed.CreateElement("entry")
	entry.CreateElement("title").SetText(evt.Title)

	id := evt.URL
	if id == "" {
		id = "urn:meetup:event:" + evt.ID
	}
	entry.CreateElement("id").SetText(id)

	if evt.URL != "" {
		link := entry.CreateElement("link")
		link.CreateAttr("rel", "alternate")
		link.CreateAttr("href", evt.URL)
	}

	if !evt.StartTime.IsZero() {
		entry.CreateElement("published").SetText(formatTime(evt.StartTime))
		entry.CreateElement("updated").SetText(formatTime(evt.StartTime))
	}

	if loc := evt.Venue.Location(); loc != "" {
		entry.CreateElement("category").CreateAttr("term", loc)
	}
	if evt.Description != "" {
		summary := entry.CreateElement("summary")
		summary.CreateAttr("type", "text")
		summary.SetText(evt.Description)
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
