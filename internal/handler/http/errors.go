// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrRateLimited is reported in the body of a 429 response produced by the
// rate limiting middleware.
var ErrRateLimited = errors.New("rate limit exceeded, please retry shortly")

// ErrMethodNotAllowed is reported for a known path requested with a method
// it does not serve.
var ErrMethodNotAllowed = errors.New("method not allowed")

// errorResponse is the JSON body of every error produced by this package.
type errorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}
