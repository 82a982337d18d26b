package adapter

import "errors"

// Reasons attached to unavailable outcomes and used internally to drive the
// circuit breaker.
var (
	// ErrRateLimited is set when the local sliding window denies a call.
	ErrRateLimited = errors.New("open food facts call denied by local rate limiter")
	// ErrCircuitOpen is set when the breaker short-circuits a call.
	ErrCircuitOpen = errors.New("open food facts circuit breaker is open")
	// ErrUpstreamUnavailable wraps transport failures and 5xx answers.
	ErrUpstreamUnavailable = errors.New("open food facts is unavailable")
	// ErrNotFound is returned by the status mapper on 404.
	ErrNotFound = errors.New("product not found")
	// ErrUnexpectedStatus covers non-2xx answers other than 404 and 5xx.
	ErrUnexpectedStatus = errors.New("unexpected open food facts status")
	// ErrMalformedPayload is set when the body is not valid JSON.
	ErrMalformedPayload = errors.New("malformed open food facts payload")
)
