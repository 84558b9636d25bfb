package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-list/internal/config"
	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/store"
	"github.com/MKhiriev/go-user-list/models"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	return &Services{
		UserService:    NewUserService(storages.UserRepository, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.Pinger, logger),
	}, nil
}
