package store

import (
	"context"

	"github.com/MKhiriev/go-user-list/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads and writes the users table.
type UserRepository interface {
	// ListUsers performs a full scan ordered by creation time, then id.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateUsers inserts users in a single transaction. A duplicate id
	// yields [ErrUserAlreadyExists] and nothing is written.
	CreateUsers(ctx context.Context, users ...models.User) error

	// CountUsers returns the number of stored users.
	CountUsers(ctx context.Context) (int, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
