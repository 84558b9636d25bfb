// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the user-list
// client: reading the runtime configuration document and fetching the user
// list from the users API.
//
// Failures are reported as [*FetchError] values carrying the HTTP status code
// (0 for network failures) and the response body. The wrapped sentinel errors
// defined in errors.go let callers use [errors.Is] for status classes
// (e.g. [ErrNotFound] for 404, [ErrInternalServerError] for 500).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-list/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// UsersFetcher performs GET requests against the users endpoint.
type UsersFetcher interface {
	// FetchUsers issues exactly one GET to url and decodes the JSON array
	// response. Order of the returned records matches the response. Any
	// non-2xx status, transport failure or undecodable body is returned as a
	// [*FetchError].
	FetchUsers(ctx context.Context, url string) ([]models.User, error)
}

// ConfigSource reads the runtime configuration document.
type ConfigSource interface {
	// Read fetches and decodes the document once. It performs no retries.
	Read(ctx context.Context) (models.RuntimeConfig, error)

	// Location returns the URL or path the source reads from.
	Location() string
}
