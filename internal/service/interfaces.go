package service

import (
	"context"

	"github.com/MKhiriev/go-user-list/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService serves the users backend.
type UserService interface {
	// ListUsers returns every stored user. An empty table yields an empty,
	// non-nil slice.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	// GetAppVersion returns the version served by /api/version.
	GetAppVersion(ctx context.Context) string

	// GetBuildInfo returns the link-time build metadata.
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService checks the dependencies the users backend needs to serve.
type HealthService interface {
	// Check returns nil when the database answers.
	Check(ctx context.Context) error
}
