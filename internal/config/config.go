// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Failure label policies accepted by [Client.FailurePolicy].
const (
	// FailurePolicyRestore restores the idle label after a failed fetch.
	FailurePolicyRestore = "restore"
	// FailurePolicyKeepBusy leaves the busy label on the control after a
	// failed fetch; only the phase returns to idle.
	FailurePolicyKeepBusy = "keep-busy"
)

// Defaults applied before any other source is merged.
const (
	DefaultConfigSource   = "assets/config.json"
	DefaultIdleLabel      = "Load users"
	DefaultBusyLabel      = "Loading..."
	DefaultHTTPAddress    = "localhost:8080"
	DefaultAssetsDir      = "assets"
	DefaultDSN            = "file:users.db?cache=shared&_foreign_keys=on"
	DefaultRateLimitRPS   = 25.0
	DefaultRateLimitBurst = 50
	DefaultVersion        = "dev"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging defaults, an optional JSON file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings shared by every role: version and log level.
	App App `envPrefix:"APP_"`

	// Client holds settings of the terminal user-list client.
	Client Client `envPrefix:"CLIENT_"`

	// Server holds network, asset and rate-limit settings of the users server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds database settings of the users server.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFile is the optional path to a dotenv file loaded into the process
	// environment before environment variables are parsed.
	EnvFile string `env:"ENV_FILE"`
}

// App holds role-independent settings.
type App struct {
	// Version is the semantic version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Client holds settings of the terminal client.
type Client struct {
	// ConfigSource is the location of the runtime config document: an
	// http(s) URL or a file path.
	// Env: CLIENT_CONFIG_SOURCE
	ConfigSource string `env:"CONFIG_SOURCE"`

	// RequestTimeout bounds every outbound request. Zero means no timeout.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// IdleLabel is the initial text of the load control.
	// Env: CLIENT_IDLE_LABEL
	IdleLabel string `env:"IDLE_LABEL"`

	// BusyLabel is shown on the load control while a fetch is outstanding.
	// Env: CLIENT_BUSY_LABEL
	BusyLabel string `env:"BUSY_LABEL"`

	// FailurePolicy is either [FailurePolicyRestore] or [FailurePolicyKeepBusy].
	// Env: CLIENT_FAILURE_POLICY
	FailurePolicy string `env:"FAILURE_POLICY"`

	// LogFile is where the client writes its diagnostic log.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Server holds network and transport settings of the users server.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AssetsDir is the directory served under /assets/ (holds config.json).
	// Env: SERVER_ASSETS_DIR
	AssetsDir string `env:"ASSETS_DIR"`

	// RateLimitRPS is the token-bucket refill rate for /users.
	// Env: SERVER_RATE_LIMIT_RPS
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS"`

	// RateLimitBurst is the token-bucket size for /users.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`
}

// Storage groups the database settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// SeedFile is an optional YAML file with users inserted at startup
	// when the users table is empty.
	// Env: STORAGE_SEED_FILE
	SeedFile string `env:"SEED_FILE"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a SQLite DSN
	// ("file:users.db?...").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// using the process arguments.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(args).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func defaultStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: DefaultVersion,
		},
		Client: Client{
			ConfigSource:  DefaultConfigSource,
			IdleLabel:     DefaultIdleLabel,
			BusyLabel:     DefaultBusyLabel,
			FailurePolicy: FailurePolicyRestore,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			AssetsDir:      DefaultAssetsDir,
			RateLimitRPS:   DefaultRateLimitRPS,
			RateLimitBurst: DefaultRateLimitBurst,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
	}
}
