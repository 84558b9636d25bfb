// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a single record served by the users endpoint and rendered by the
// client list. Records are value types: the client replaces the whole slice
// on every successful fetch.
type User struct {
	// ID is the opaque identifier assigned by the backend.
	ID string `json:"id" yaml:"id"`

	// Name is the display name of the user.
	Name string `json:"name" yaml:"name"`

	// Address is the free-form postal address of the user.
	Address string `json:"address" yaml:"address"`
}
