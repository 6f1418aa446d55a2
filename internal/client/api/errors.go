package api

import "errors"

// ErrUnavailable wraps transport-layer failures: the request never produced
// a well-formed response from the remote service.
var ErrUnavailable = errors.New("service unavailable")

// Error is an application-level failure: the remote answered, but with
// success=false or an error status. Message is the server-supplied text and
// is safe to show to the user verbatim.
type Error struct {
	Op      string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Op + " rejected by server"
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }
