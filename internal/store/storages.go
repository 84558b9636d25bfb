package store

import "github.com/MKhiriev/go-user-list/internal/logger"

type Storages struct {
	UserRepository UserRepository
	Pinger         Pinger
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		Pinger:         db,
	}
}
