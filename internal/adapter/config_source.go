package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-user-list/internal/config"
	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/utils"
	"github.com/MKhiriev/go-user-list/models"
)

// NewConfigSource picks the implementation by location: http(s) URLs are
// fetched with resty, anything else is read from the file system relative to
// the working directory.
func NewConfigSource(adapterCfg config.ClientAdapter, logger *logger.Logger) (ConfigSource, error) {
	location := strings.TrimSpace(adapterCfg.ConfigSource)
	if location == "" {
		return nil, ErrEmptySource
	}

	if isHTTPLocation(location) {
		return &httpConfigSource{
			client: utils.NewHTTPClient(adapterCfg.RequestTimeout),
			url:    location,
			logger: logger,
		}, nil
	}

	return &fileConfigSource{path: location, logger: logger}, nil
}

func isHTTPLocation(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

type httpConfigSource struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// Read implements [ConfigSource].
func (s *httpConfigSource) Read(ctx context.Context) (models.RuntimeConfig, error) {
	var cfg models.RuntimeConfig

	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.url)
	if err != nil {
		return cfg, mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return cfg, err
	}

	if err = json.Unmarshal(resp.Body(), &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	s.logger.Debug().Str("source", s.url).Msg("runtime config fetched")
	return cfg, nil
}

// Location implements [ConfigSource].
func (s *httpConfigSource) Location() string {
	return s.url
}

type fileConfigSource struct {
	path string

	logger *logger.Logger
}

// Read implements [ConfigSource].
func (s *fileConfigSource) Read(_ context.Context) (models.RuntimeConfig, error) {
	var cfg models.RuntimeConfig

	data, err := os.ReadFile(s.path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err = json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	s.logger.Debug().Str("source", s.path).Msg("runtime config read")
	return cfg, nil
}

// Location implements [ConfigSource].
func (s *fileConfigSource) Location() string {
	return s.path
}
