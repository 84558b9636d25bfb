// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoadPhase is the phase of the "load users" action.
type LoadPhase int

const (
	// PhaseIdle means no fetch is outstanding; the control shows its idle label.
	PhaseIdle LoadPhase = iota
	// PhaseLoading means a fetch has been dispatched and not yet settled.
	PhaseLoading
)

// String implements fmt.Stringer.
func (p LoadPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// LoadState is a snapshot of the load control.
type LoadState struct {
	// Phase is the current phase of the action.
	Phase LoadPhase

	// Label is the text currently shown on the control.
	Label string
}

// Busy reports whether a fetch is outstanding.
func (s LoadState) Busy() bool {
	return s.Phase == PhaseLoading
}
