package service

import (
	"context"

	"github.com/MKhiriev/go-user-list/internal/config"
	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/models"
)

type appInfoService struct {
	version   string
	buildInfo models.AppBuildInfo
}

// NewAppInfoService resolves the version reported by the server. A version
// injected at link time wins; cfg.Version covers builds without one (go run,
// tests). Neither being set is ErrVersionIsNotSpecified.
func NewAppInfoService(cfg config.ServerApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if buildInfo.HasVersion() {
		version = buildInfo.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("version", version).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("serving app info")

	return &appInfoService{
		version:   version,
		buildInfo: buildInfo,
	}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}

func (s *appInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return s.buildInfo
}
