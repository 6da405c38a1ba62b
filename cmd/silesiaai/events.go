package main

import (
	"github.com/szmeku/silesiaai"
	"github.com/szmeku/silesiaai/etree"
	"github.com/szmeku/silesiaai/ical"
	"golang.org/x/sync/errgroup"
)

// Run executes the events command. A listing that cannot be read prints as
// an empty list; the cause is logged.
func (c *EventsCmd) Run(deps *Dependencies) error {
	modes := c.modes()

	// Each listing is an independent invocation with its own state.
	results := make([][]*silesiaai.Event, len(modes))
	var g errgroup.Group
	for i, mode := range modes {
		g.Go(func() error {
			if mode == silesiaai.ListingUpcoming {
				results[i] = deps.Events.UpcomingEvents(deps.Ctx, c.Group)
			} else {
				results[i] = deps.Events.PastEvents(deps.Ctx, c.Group)
			}
			return nil
		})
	}
	_ = g.Wait()

	events := make([]*silesiaai.Event, 0)
	for _, r := range results {
		events = append(events, r...)
	}

	return c.encoder(deps).Encode(deps.Stdout, events)
}

func (c *EventsCmd) modes() []silesiaai.ListingMode {
	if c.Mode == "all" {
		return []silesiaai.ListingMode{silesiaai.ListingPast, silesiaai.ListingUpcoming}
	}
	return []silesiaai.ListingMode{silesiaai.ListingMode(c.Mode)}
}

func (c *EventsCmd) encoder(deps *Dependencies) silesiaai.EventEncoder {
	switch c.Format {
	case "json":
		return JSONEncoder{}
	case "ics":
		return ical.NewEncoder()
	case "atom":
		opts := []etree.Option{etree.WithTitle(c.Group + " " + c.Mode + " events")}
		if deps.ListingURL != nil && c.Mode != "all" {
			opts = append(opts, etree.WithLink(deps.ListingURL(c.Group, silesiaai.ListingMode(c.Mode))))
		}
		return etree.NewFeedEncoder(opts...)
	default:
		return TextEncoder{}
	}
}
