package http

import (
	"github.com/MKhiriev/go-user-list/internal/config"
	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.ServerTransport
	limiter  rateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerTransport, logger *logger.Logger) *Handler {
	logger.Info().
		Float64("rate_limit_rps", cfg.RateLimitRPS).
		Int("rate_limit_burst", cfg.RateLimitBurst).
		Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		limiter:  newTokenBucketLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		logger:   logger,
	}
}
