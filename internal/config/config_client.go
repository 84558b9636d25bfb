package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogFile is the diagnostic log destination of the TUI.
	LogFile string
	// LogLevel is the zerolog level name.
	LogLevel string
}

// ClientAdapter holds settings used by the client transport layer.
type ClientAdapter struct {
	// ConfigSource is the URL or file path of the runtime config document.
	ConfigSource string
	// RequestTimeout is the timeout for outbound requests; zero disables it.
	RequestTimeout time.Duration
}

// ClientWidget holds settings of the load control.
type ClientWidget struct {
	// IdleLabel is the initial label of the control.
	IdleLabel string
	// BusyLabel is the label shown while a fetch is outstanding.
	BusyLabel string
	// FailurePolicy selects the label shown after a failed fetch.
	FailurePolicy string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains transport settings.
	Adapter ClientAdapter
	// Widget contains load-control settings.
	Widget ClientWidget
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the client-relevant fields of cfg.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:  cfg.Client.LogFile,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			ConfigSource:   cfg.Client.ConfigSource,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Widget: ClientWidget{
			IdleLabel:     cfg.Client.IdleLabel,
			BusyLabel:     cfg.Client.BusyLabel,
			FailurePolicy: cfg.Client.FailurePolicy,
		},
	}
}
