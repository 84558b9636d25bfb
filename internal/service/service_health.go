package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/store"
)

type healthService struct {
	pinger store.Pinger

	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

// Check implements HealthService.
func (s *healthService) Check(ctx context.Context) error {
	if s.pinger == nil {
		return ErrStorageUnavailable
	}

	if err := s.pinger.PingContext(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "*healthService.Check").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
