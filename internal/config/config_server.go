// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds server application settings.
type ServerApp struct {
	Version  string
	LogLevel string
}

// ServerTransport holds inbound transport settings.
type ServerTransport struct {
	HTTPAddress    string
	GRPCAddress    string
	RequestTimeout time.Duration
	AssetsDir      string
	RateLimitRPS   float64
	RateLimitBurst int
}

// ServerStorage holds database settings.
type ServerStorage struct {
	DSN      string
	SeedFile string
}

// ServerConfig is the users-server view of [StructuredConfig].
type ServerConfig struct {
	App       ServerApp
	Transport ServerTransport
	Storage   ServerStorage
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the server-relevant fields of cfg.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Transport: ServerTransport{
			HTTPAddress:    cfg.Server.HTTPAddress,
			GRPCAddress:    cfg.Server.GRPCAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
			AssetsDir:      cfg.Server.AssetsDir,
			RateLimitRPS:   cfg.Server.RateLimitRPS,
			RateLimitBurst: cfg.Server.RateLimitBurst,
		},
		Storage: ServerStorage{
			DSN:      cfg.Storage.DB.DSN,
			SeedFile: cfg.Storage.SeedFile,
		},
	}
}
