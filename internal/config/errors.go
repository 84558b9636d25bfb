package config

import "errors"

// Validation errors returned by [ClientConfig.validate] and
// [ServerConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client transport settings
	// (for example, an empty config source or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWidgetConfigs indicates invalid load-control settings
	// (for example, an empty busy label or an unknown failure policy).
	ErrInvalidWidgetConfigs = errors.New("invalid widget configuration")
	// ErrInvalidServerConfigs indicates invalid server transport settings
	// (for example, a missing HTTP address or a non-positive rate limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing version).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
