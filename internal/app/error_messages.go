// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the terminal
// client and the users server.
//
// Keeping them in one place keeps the wording of the status line, the error
// overlay and HTTP error bodies consistent.
package app

const (
	// MsgConfigNotLoaded is shown when the load control is used before the
	// runtime config is available.
	MsgConfigNotLoaded = "runtime config is not loaded yet"

	// MsgConfigLoadFailed prefixes the reason the runtime config could not be
	// read.
	MsgConfigLoadFailed = "cannot load runtime config"

	// MsgLoadInProgress is shown when the load control is used while a fetch
	// is outstanding.
	MsgLoadInProgress = "users are already loading"

	// MsgServerUnavailable replaces low-level network errors in the status
	// line.
	MsgServerUnavailable = "network is down or the server is unavailable"

	// MsgNoUsers is shown in place of an empty table.
	MsgNoUsers = "no users loaded"

	// MsgUserCopied confirms a clipboard copy of the selected user.
	MsgUserCopied = "user copied to clipboard"

	// MsgNothingToCopy is shown when copy is requested with no selection.
	MsgNothingToCopy = "nothing to copy"

	// MsgInternalServerError is the body of every 5xx response of the users
	// server. Details stay in the server log.
	MsgInternalServerError = "internal server error"
)
