// Package apperr defines the error kinds shared across services and handlers.
// Services wrap these sentinels with fmt.Errorf("...: %w", ...) so callers can
// classify failures with errors.Is without parsing messages.
package apperr

import "errors"

var (
	// ErrInvalidInput marks malformed or out-of-range user input. It is
	// always raised before any network call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a lookup with no result: a forward geocode with
	// zero matches, or a favorite id with no record.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable marks a network, timeout, or non-200 failure
	// talking to an external service.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrUpstreamMalformed marks an upstream response that arrived but
	// could not be parsed into the expected shape.
	ErrUpstreamMalformed = errors.New("malformed upstream response")
)
