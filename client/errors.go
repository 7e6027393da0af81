package client

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKind is returned when an API name is not one of Kinds().
	// It is always returned before any network activity.
	ErrInvalidKind = errors.New("invalid api kind")

	// ErrBodyNotSupported is returned when a body is supplied for a kind
	// that cannot accept POSTed content.
	ErrBodyNotSupported = errors.New("api kind does not accept a request body")

	// ErrMissingToken is returned when a call is made without an API token.
	ErrMissingToken = errors.New("missing api token")

	// ErrTransport is matched by every *TransportError.
	ErrTransport = errors.New("transport failure")
)

// ErrorResponse is the error document the service sends with a failure
// status. Errors reported with a success status are part of the normal
// response and are passed through to the caller.
type ErrorResponse struct {
	Error     string `json:"error"`
	ErrorCode int    `json:"errorCode,omitempty"`
}

// TransportError reports a failed round trip: a network error, an expired
// timeout, a non-success HTTP status, or a body that is not valid JSON.
type TransportError struct {
	// Backend is the name of the transport that served the call.
	Backend string

	// Status is the HTTP status code, or 0 if no response was received.
	Status int

	// Err is the underlying cause.
	Err error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s transport: status %d: %v", e.Backend, e.Status, e.Err)
	}
	return fmt.Sprintf("%s transport: %v", e.Backend, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrTransport) hold for every TransportError.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }
