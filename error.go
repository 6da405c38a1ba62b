package silesiaai

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EINTERNAL = "internal"

	// Fetching.
	EFETCH    = "fetch_failed"
	ENOSOURCE = "no_viable_source"
	ESHORT    = "content_too_short"

	// Embedded state.
	ENOSTATE   = "missing_embedded_state"
	EMALFORMED = "malformed_embedded_state"
	ESHAPE     = "unexpected_shape"

	// Matching and projection.
	ENOENTITY     = "entity_not_found"
	ENOCOLLECTION = "collection_key_not_found"
	ETIMESTAMP    = "invalid_timestamp"

	// Readable content.
	EEXTRACT = "extraction_failed"
)

// Error represents an application-specific error. Err holds the underlying
// cause, if any, and is exposed through Unwrap.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapErrorf is like Errorf but records err as the cause.
func WrapErrorf(code string, err error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// StatusError reports a response with a non-2xx HTTP status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}
