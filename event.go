package silesiaai

import (
	"context"
	"io"
	"strings"
	"time"
)

// EventStatus is the lifecycle status Meetup reports for an event.
// Unknown values are kept verbatim.
type EventStatus string

// EventStatus constants.
const (
	EventStatusActive    EventStatus = "ACTIVE"
	EventStatusUpcoming  EventStatus = "UPCOMING"
	EventStatusPast      EventStatus = "PAST"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusDraft     EventStatus = "DRAFT"
)

// Event is one event extracted from a group listing.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	URL         string      `json:"url"`
	Description string      `json:"description"`
	StartTime   time.Time   `json:"startTime"`
	EndTime     time.Time   `json:"endTime"` // zero when the listing omits it
	Venue       *Venue      `json:"venue,omitempty"`
	Attendees   int         `json:"attendees"`
	IsOnline    bool        `json:"isOnline"`
	Status      EventStatus `json:"status"`
}

// Venue is the physical location of an event.
type Venue struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address,omitempty"`
	City    string  `json:"city,omitempty"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}

// Location formats the venue as "Name, City".
func (v *Venue) Location() string {
	if v == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	for _, s := range []string{v.Name, v.City} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// ListingMode selects which events collection of a group is read.
type ListingMode string

// ListingMode constants.
const (
	ListingPast     ListingMode = "past"
	ListingUpcoming ListingMode = "upcoming"
)

// ParseListingMode parses s case-insensitively.
func ParseListingMode(s string) (ListingMode, error) {
	switch mode := ListingMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ListingPast, ListingUpcoming:
		return mode, nil
	default:
		return "", Errorf(EINVALID, "unknown listing mode %q (want past or upcoming)", s)
	}
}

// EventSource lists the events of a group.
type EventSource interface {
	// FetchEvents returns the group's events for mode in listing order.
	FetchEvents(ctx context.Context, group string, mode ListingMode) ([]*Event, error)
}

// EventLister is the best-effort listing API. It never fails: a listing
// that cannot be read yields an empty, non-nil slice.
type EventLister interface {
	PastEvents(ctx context.Context, group string) []*Event
	UpcomingEvents(ctx context.Context, group string) []*Event
}

// EventEncoder writes a list of events in some interchange format.
type EventEncoder interface {
	Encode(w io.Writer, events []*Event) error
}
