package tui

import (
	"github.com/MKhiriev/go-user-list/models"
)

type configLoadedMsg struct {
	config models.RuntimeConfig
	err    error
}

type usersLoadedMsg struct {
	result models.FetchResult
}

// alertMsg opens the blocking error overlay.
type alertMsg struct {
	message string
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
