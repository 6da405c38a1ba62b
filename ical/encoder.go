// Package ical encodes event lists as iCalendar (RFC 5545) files with
// golang-ical.
package ical

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/szmeku/silesiaai"
)

// DefaultProdID identifies this module as the producer of the calendar.
const DefaultProdID = "-//silesiaai//events//EN"

// Ensure Encoder implements silesiaai.EventEncoder at compile time.
var _ silesiaai.EventEncoder = (*Encoder)(nil)

// Encoder writes one VCALENDAR holding a VEVENT per event.
type Encoder struct {
	prodID string
	domain string
	now    func() time.Time
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithProdID sets the PRODID property.
func WithProdID(id string) Option {
	return func(e *Encoder) {
		e.prodID = id
	}
}

// WithUIDDomain sets the domain part of generated UIDs.
func WithUIDDomain(domain string) Option {
	return func(e *Encoder) {
		e.domain = domain
	}
}

// WithNow sets the clock used for DTSTAMP.
func WithNow(now func() time.Time) Option {
	return func(e *Encoder) {
		e.now = now
	}
}

// NewEncoder creates a new Encoder.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		prodID: DefaultProdID,
		domain: "meetup.com",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes events to w. Events without a start time are skipped since
// DTSTART is required.
func (e *Encoder) Encode(w io.Writer, events []*silesiaai.Event) error {
	cal := ics.NewCalendar()
	cal.SetProductId(e.prodID)
	cal.SetMethod(ics.MethodPublish)

	stamp := e.now()
	for _, evt := range events {
		if evt == nil || evt.StartTime.IsZero() {
			continue
		}

		vevent := cal.AddEvent(fmt.Sprintf("%s@%s", evt.ID, e.domain))
		vevent.SetDtStampTime(stamp)
		vevent.SetStartAt(evt.StartTime)
		if !evt.EndTime.IsZero() {
			vevent.SetEndAt(evt.EndTime)
		}
		vevent.SetSummary(evt.Title)
		if evt.Description != "" {
			vevent.SetDescription(evt.Description)
		}
		if loc := evt.Venue.Location(); loc != "" {
			vevent.SetLocation(loc)
		} else if evt.IsOnline {
			vevent.SetLocation("Online")
		}
		if evt.Venue != nil && (evt.Venue.Lat != 0 || evt.Venue.Lng != 0) {
			vevent.SetProperty(ics.ComponentPropertyGeo, fmt.Sprintf("%f;%f", evt.Venue.Lat, evt.Venue.Lng))
		}
		if evt.URL != "" {
			vevent.SetURL(evt.URL)
		}
		vevent.SetStatus(status(evt.Status))
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

func status(s silesiaai.EventStatus) ics.ObjectStatus {
	switch s {
	case silesiaai.EventStatusCancelled:
		return ics.ObjectStatusCancelled
	case silesiaai.EventStatusDraft:
		return ics.ObjectStatusTentative
	default:
		return ics.ObjectStatusConfirmed
	}
}
