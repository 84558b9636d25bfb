package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Client struct {
		ConfigSource   string   `json:"config_source"`
		RequestTimeout Duration `json:"request_timeout"`
		IdleLabel      string   `json:"idle_label"`
		BusyLabel      string   `json:"busy_label"`
		FailurePolicy  string   `json:"failure_policy"`
		LogFile        string   `json:"log_file"`
	} `json:"client,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AssetsDir      string   `json:"assets_dir"`
		RateLimit      struct {
			RPS   float64 `json:"rps"`
			Burst int     `json:"burst"`
		} `json:"rate_limit"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		SeedFile string `json:"seed_file"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Client: Client{
			ConfigSource:   jsonCfg.Client.ConfigSource,
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
			IdleLabel:      jsonCfg.Client.IdleLabel,
			BusyLabel:      jsonCfg.Client.BusyLabel,
			FailurePolicy:  jsonCfg.Client.FailurePolicy,
			LogFile:        jsonCfg.Client.LogFile,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AssetsDir:      jsonCfg.Server.AssetsDir,
			RateLimitRPS:   jsonCfg.Server.RateLimit.RPS,
			RateLimitBurst: jsonCfg.Server.RateLimit.Burst,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			SeedFile: jsonCfg.Storage.SeedFile,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
