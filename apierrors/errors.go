package apierrors

import (
	"fmt"
)

// Error is the single error type surfaced by the SDK for failures that are
// not convertible to a failover verdict: network-level failures with a
// throw-configured strategy, client errors (4xx), server errors (5xx) with a
// throw-configured strategy and malformed successful responses.
type Error struct {
	StatusCode int
	Status     string
	Body       string

	cause error
}

// New builds an error from an HTTP response the backend actually produced.
func New(statusCode int, status string, body string) Error {
	return Error{
		StatusCode: statusCode,
		Status:     status,
		Body:       body,
	}
}

// Wrap builds an error from a network-level failure, before any HTTP
// response exists. StatusCode is left zero.
func Wrap(cause error) Error {
	return Error{cause: cause}
}

func (e Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("request error: %v", e.cause)
	}
	return fmt.Sprintf("request error: server responded with code %d. %s: `%s`", e.StatusCode, e.Status, e.Body)
}

func (e Error) Unwrap() error {
	return e.cause
}
