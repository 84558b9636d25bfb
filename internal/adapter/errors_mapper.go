package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	fetchErr := &FetchError{StatusCode: resp.StatusCode(), Body: body}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		fetchErr.Err = ErrBadRequest
	case http.StatusUnauthorized:
		fetchErr.Err = ErrUnauthorized
	case http.StatusForbidden:
		fetchErr.Err = ErrForbidden
	case http.StatusNotFound:
		fetchErr.Err = ErrNotFound
	case http.StatusTooManyRequests:
		fetchErr.Err = ErrTooManyRequests
	case http.StatusBadGateway:
		fetchErr.Err = ErrBadGateway
	case http.StatusServiceUnavailable:
		fetchErr.Err = ErrServiceUnavailable
	case http.StatusInternalServerError:
		fetchErr.Err = ErrInternalServerError
	default:
		fetchErr.Err = fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	return fetchErr
}

func mapTransportError(err error) error {
	return &FetchError{Err: fmt.Errorf("%w: %w", ErrRequestFailed, err)}
}
