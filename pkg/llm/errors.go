package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorClass buckets provider failures into the categories that drive
// retry and circuit breaker decisions.
type ErrorClass string

const (
	// ClassAuth: invalid or expired API key. Never retried.
	ClassAuth ErrorClass = "auth_error"
	// ClassRateLimit: provider returned 429. Retried with backoff.
	ClassRateLimit ErrorClass = "rate_limit"
	// ClassBadRequest: the request itself is malformed. Never retried and
	// never failed over, because every provider would reject it.
	ClassBadRequest ErrorClass = "bad_request"
	// ClassUpstreamUnavailable: 5xx or connection refused. Retried and
	// counted against the circuit breaker.
	ClassUpstreamUnavailable ErrorClass = "upstream_unavailable"
	// ClassTimeout: the call exceeded its deadline. Retried and counted
	// against the circuit breaker.
	ClassTimeout ErrorClass = "timeout"
	// ClassProtocol: the provider returned a payload we could not parse.
	ClassProtocol ErrorClass = "protocol_error"
	// ClassCircuitOpen: the breaker rejected the call before it was made.
	ClassCircuitOpen ErrorClass = "circuit_open"
)

// Error is a classified provider failure.
type Error struct {
	Provider string
	Class    ErrorClass
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s: %s: %s", e.Provider, e.Class, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Class, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a provider tag and class.
func NewError(provider string, class ErrorClass, err error) *Error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &Error{Provider: provider, Class: class, Message: msg, Err: err}
}

// ClassOf extracts the error class, defaulting to protocol_error for
// anything unclassified.
func ClassOf(err error) ErrorClass {
	var e *Error
	if errors.As(err, &e) {
		return e.Class
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ClassTimeout
	}
	return ClassProtocol
}

// Retryable reports whether a failed call may be retried against the same
// provider.
func Retryable(err error) bool {
	switch ClassOf(err) {
	case ClassRateLimit, ClassUpstreamUnavailable, ClassTimeout:
		return true
	}
	return false
}

// CountsAgainstBreaker reports whether a failure should trip the circuit
// breaker. Rate limits signal capacity pressure, not provider death, so
// they are excluded. Unparseable payloads count: a provider emitting
// garbage is as unhealthy as one refusing connections.
func CountsAgainstBreaker(err error) bool {
	switch ClassOf(err) {
	case ClassUpstreamUnavailable, ClassTimeout, ClassProtocol:
		return true
	}
	return false
}

// Failover reports whether the router should try the next provider in the
// chain after this failure. Malformed requests fail everywhere identically,
// so they stop the chain.
func Failover(err error) bool {
	return ClassOf(err) != ClassBadRequest
}

// ClassifyStatus maps an HTTP status code to an error class.
func ClassifyStatus(status int) ErrorClass {
	switch {
	case status == 401 || status == 403:
		return ClassAuth
	case status == 429:
		return ClassRateLimit
	case status >= 400 && status < 500:
		return ClassBadRequest
	case status >= 500:
		return ClassUpstreamUnavailable
	}
	return ClassProtocol
}

// ClassifyTransport maps transport-level failures (no HTTP status) to a class.
func ClassifyTransport(err error) ErrorClass {
	if errors.Is(err, context.DeadlineExceeded) {
		return ClassTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ClassTimeout
		}
		return ClassUpstreamUnavailable
	}
	return ClassUpstreamUnavailable
}
