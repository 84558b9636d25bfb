// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user records before they reach storage.
//
// A Validator dispatches on the concrete type it receives and may be scoped
// to a subset of named fields (see the Field* constants). Unknown types
// yield [ErrUnsupportedType] and unknown field names [ErrUnknownField].
// The seeding step of the users backend runs [NewUserValidator] over the
// YAML fixtures so a bad entry is rejected before any row is inserted.
package validators

import "context"

// Validator validates a value, optionally only the given fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
