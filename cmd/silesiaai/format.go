package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/szmeku/silesiaai"
)

var (
	_ silesiaai.EventEncoder = TextEncoder{}
	_ silesiaai.EventEncoder = JSONEncoder{}
)

// TextEncoder writes one line per event for terminals.
type TextEncoder struct{}

// Encode implements silesiaai.EventEncoder.
func (TextEncoder) Encode(w io.Writer, events []*silesiaai.Event) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, "No events found.")
		return err
	}
	for _, e := range events {
		line := e.StartTime.Format("2006-01-02 15:04") + "  " + e.Title
		if loc := e.Venue.Location(); loc != "" {
			line += "  @ " + loc
		} else if e.IsOnline {
			line += "  @ online"
		}
		if e.URL != "" {
			line += "  " + e.URL
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// JSONEncoder writes events as an indented JSON array.
type JSONEncoder struct{}

// Encode implements silesiaai.EventEncoder.
func (JSONEncoder) Encode(w io.Writer, events []*silesiaai.Event) error {
	if events == nil {
		events = []*silesiaai.Event{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(events)
}

// reportedError marks an error whose message was already written for the
// user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already printed by a command.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// reportError prints a user-facing message and returns err marked as
// reported. Application errors carry their cause chain; anything else is
// reported as internal.
func reportError(w io.Writer, err error) error {
	var e *silesiaai.Error
	if errors.As(err, &e) {
		fmt.Fprintf(w, "error: %s\n", err)
	} else {
		fmt.Fprintf(w, "error: %s\n", silesiaai.ErrorMessage(err))
	}
	return &reportedError{err: err}
}
