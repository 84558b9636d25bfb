// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoServices means NewHandlers got nothing to route requests to.
	errNoServices = errors.New("services are not provided")

	// errNoHandlersAreCreated means neither the HTTP nor the gRPC address is
	// configured, so the users backend would expose nothing.
	errNoHandlersAreCreated = errors.New("no handlers are created: set an HTTP or gRPC address")
)
