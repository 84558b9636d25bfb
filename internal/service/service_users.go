package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/store"
	"github.com/MKhiriev/go-user-list/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers implements UserService. It performs a full scan of the users
// table.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContextOr(ctx, s.logger)

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userService.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrListingUsers, err)
	}

	if users == nil {
		users = []models.User{}
	}

	log.Info().Msgf("%d user(s) retrieved", len(users))
	return users, nil
}
