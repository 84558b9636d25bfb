// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the terminal user-list client: it owns the process
// lifecycle around the TUI.
package client
