// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the client view is usable before the TUI starts.
func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.ConfigSource) == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Widget.BusyLabel) == "" {
		return ErrInvalidWidgetConfigs
	}

	switch cfg.Widget.FailurePolicy {
	case FailurePolicyRestore, FailurePolicyKeepBusy:
	default:
		return ErrInvalidWidgetConfigs
	}

	return nil
}

// validate checks that the server view is usable before listeners open.
func (cfg *ServerConfig) validate() error {
	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Transport.HTTPAddress == "" ||
		cfg.Transport.RequestTimeout < 0 ||
		cfg.Transport.RateLimitRPS <= 0 ||
		cfg.Transport.RateLimitBurst <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
