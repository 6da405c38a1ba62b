package meetup

import (
	"time"

	"github.com/szmeku/silesiaai"
)

// rawEvent mirrors the fields of an Event record in the Apollo state.
type rawEvent struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	EventURL    string               `json:"eventUrl"`
	Description string               `json:"description"`
	DateTime    string               `json:"dateTime"`
	EndTime     string               `json:"endTime"`
	Venue       *silesiaai.EntityRef `json:"venue"`
	Going       *struct {
		TotalCount int `json:"totalCount"`
	} `json:"going"`
	IsOnline bool   `json:"isOnline"`
	Status   string `json:"status"`
}

type rawVenue struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Project dereferences every edge against state and builds events in edge
// order.
//
// A timestamp that fails to parse aborts the whole batch with ETIMESTAMP;
// records are never dropped silently. A missing end time yields a zero
// EndTime. A missing venue yields a nil Venue, a dangling one is ENOTFOUND.
func Project(state *silesiaai.EmbeddedState, edges []silesiaai.Edge) ([]*silesiaai.Event, error) {
	events := make([]*silesiaai.Event, 0, len(edges))
	for _, edge := range edges {
		ev, err := projectEvent(state, edge.Node)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func projectEvent(state *silesiaai.EmbeddedState, ref silesiaai.EntityRef) (*silesiaai.Event, error) {
	var raw rawEvent
	if err := state.Deref(ref, &raw); err != nil {
		return nil, err
	}

	start, err := parseTimestamp(raw.ID, "dateTime", raw.DateTime)
	if err != nil {
		return nil, err
	}

	var end time.Time
	if raw.EndTime != "" {
		if end, err = parseTimestamp(raw.ID, "endTime", raw.EndTime); err != nil {
			return nil, err
		}
	}

	ev := &silesiaai.Event{
		ID:          raw.ID,
		Title:       raw.Title,
		URL:         raw.EventURL,
		Description: raw.Description,
		StartTime:   start,
		EndTime:     end,
		IsOnline:    raw.IsOnline,
		Status:      silesiaai.EventStatus(raw.Status),
	}
	if raw.Going != nil {
		ev.Attendees = raw.Going.TotalCount
	}

	if raw.Venue != nil && raw.Venue.Key != "" {
		var v rawVenue
		if err := state.Deref(*raw.Venue, &v); err != nil {
			return nil, err
		}
		ev.Venue = &silesiaai.Venue{
			ID:      v.ID,
			Name:    v.Name,
			Address: v.Address,
			City:    v.City,
			State:   v.State,
			Country: v.Country,
			Lat:     v.Lat,
			Lng:     v.Lng,
		}
	}

	return ev, nil
}

// parseTimestamp parses Meetup's ISO-8601 timestamps, which always carry an
// offset (e.g. 2024-05-16T18:00:00+02:00).
func parseTimestamp(eventID, field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, silesiaai.Errorf(silesiaai.ETIMESTAMP, "event %q: missing %s", eventID, field)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, silesiaai.WrapErrorf(silesiaai.ETIMESTAMP, err, "event %q: invalid %s %q", eventID, field, value)
	}
	return t, nil
}
