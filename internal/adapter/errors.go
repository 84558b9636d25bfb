package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrRequestFailed  = errors.New("request failed")
	ErrDecodeResponse = errors.New("cannot decode response")
	ErrEmptySource    = errors.New("empty config source")
)

// FetchError describes a failed request. StatusCode is 0 when no HTTP
// response was received (connection refused, timeout, DNS failure).
type FetchError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%v", e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("http %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("http %d: %v: %s", e.StatusCode, e.Err, e.Body)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StatusCode extracts the HTTP status carried by err, or 0 when err is not
// a [FetchError].
func StatusCode(err error) int {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.StatusCode
	}
	return 0
}
