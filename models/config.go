// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RuntimeConfig is the document the client reads once at startup from the
// static configuration resource (assets/config.json). It is immutable after
// loading.
type RuntimeConfig struct {
	// APIURL is the base URL of the users API, without the trailing "/users".
	APIURL string `json:"apiUrl"`

	// Env is a free-form environment label ("dev", "prod", ...), shown in the UI.
	Env string `json:"env"`
}

// ConfigState is either Unloaded (zero value) or Loaded with a
// [RuntimeConfig]. Callers must check Loaded before reading the config.
type ConfigState struct {
	config *RuntimeConfig
}

// UnloadedConfig returns the Unloaded state.
func UnloadedConfig() ConfigState {
	return ConfigState{}
}

// LoadedConfig returns the Loaded state holding a copy of cfg.
func LoadedConfig(cfg RuntimeConfig) ConfigState {
	return ConfigState{config: &cfg}
}

// Loaded reports whether the configuration has been loaded.
func (s ConfigState) Loaded() bool {
	return s.config != nil
}

// Config returns the loaded configuration and true, or the zero value and
// false when the state is Unloaded.
func (s ConfigState) Config() (RuntimeConfig, bool) {
	if s.config == nil {
		return RuntimeConfig{}, false
	}
	return *s.config, true
}
