package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-user-list/internal/adapter"
	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/models"
)

type configLoader struct {
	source adapter.ConfigSource

	once    sync.Once
	loadErr error

	mu    sync.RWMutex
	state models.ConfigState

	logger *logger.Logger
}

// NewConfigLoader creates a ConfigLoader reading from source. The state is
// Unloaded until Load succeeds.
func NewConfigLoader(source adapter.ConfigSource, logger *logger.Logger) ConfigLoader {
	return &configLoader{
		source: source,
		state:  models.UnloadedConfig(),
		logger: logger,
	}
}

// Load implements ConfigLoader.
func (l *configLoader) Load(ctx context.Context) error {
	l.once.Do(func() {
		l.loadErr = l.load(ctx)
	})
	return l.loadErr
}

func (l *configLoader) load(ctx context.Context) error {
	cfg, err := l.source.Read(ctx)
	if err != nil {
		l.logger.Err(err).
			Str("event", "config_load_failure").
			Str("source", l.source.Location()).
			Int("status", adapter.StatusCode(err)).
			Msg("cannot load runtime config")
		return fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	if strings.TrimSpace(cfg.APIURL) == "" {
		l.logger.Error().
			Str("event", "config_load_failure").
			Str("source", l.source.Location()).
			Msg("runtime config has no apiUrl")
		return fmt.Errorf("%w: %w", ErrConfigLoad, ErrAPIURLMissing)
	}

	l.mu.Lock()
	l.state = models.LoadedConfig(cfg)
	l.mu.Unlock()

	l.logger.Info().
		Str("source", l.source.Location()).
		Str("api_url", cfg.APIURL).
		Str("env", cfg.Env).
		Msg("runtime config loaded")
	return nil
}

// State implements ConfigLoader.
func (l *configLoader) State() models.ConfigState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}
