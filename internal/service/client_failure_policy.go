package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-list/internal/config"
)

// FailureLabelPolicy selects the label shown after a failed fetch. The phase
// returns to idle under every policy.
type FailureLabelPolicy int

const (
	// RestoreLabelOnFailure puts the idle label back.
	RestoreLabelOnFailure FailureLabelPolicy = iota
	// KeepBusyLabelOnFailure leaves the busy label on the control.
	KeepBusyLabelOnFailure
)

func (p FailureLabelPolicy) String() string {
	switch p {
	case RestoreLabelOnFailure:
		return config.FailurePolicyRestore
	case KeepBusyLabelOnFailure:
		return config.FailurePolicyKeepBusy
	default:
		return fmt.Sprintf("FailureLabelPolicy(%d)", int(p))
	}
}

// ParseFailureLabelPolicy maps a config value to a policy. An empty name
// selects [RestoreLabelOnFailure].
func ParseFailureLabelPolicy(name string) (FailureLabelPolicy, error) {
	switch name {
	case "", config.FailurePolicyRestore:
		return RestoreLabelOnFailure, nil
	case config.FailurePolicyKeepBusy:
		return KeepBusyLabelOnFailure, nil
	default:
		return RestoreLabelOnFailure, fmt.Errorf("%w: %q", ErrUnknownFailurePolicy, name)
	}
}
